// Package scoring turns submitted answer values into scores and conformity
// levels. It is pure: no database access, time is passed in by the caller.
package scoring

import (
	"errors"
	"math"
	"strings"
	"time"

	"secueval/internal/models"
)

var (
	// ErrTypeMismatch is returned when the value variant does not match the question's answer type
	ErrTypeMismatch = errors.New("answer value does not match question answer type")
	// ErrMissingSystemCount is returned when an INTEGER question is scored without a positive system count
	ErrMissingSystemCount = errors.New("evaluation has no information systems to score against")
	// ErrMissingVerificationWindow is returned when a DATE question has no verification window configured
	ErrMissingVerificationWindow = errors.New("question has no verification window configured")
)

// Value is a submitted answer value. Exactly one variant exists per answer type.
type Value interface {
	answerType() string
}

// BoolValue answers a BOOLEAN question
type BoolValue bool

// IntValue answers an INTEGER question with a count of conforming systems
type IntValue int

// TextValue answers a TEXT question
type TextValue string

// DateValue answers a DATE question with the date of the last verification
type DateValue time.Time

func (BoolValue) answerType() string { return models.AnswerTypeBoolean }
func (IntValue) answerType() string  { return models.AnswerTypeInteger }
func (TextValue) answerType() string { return models.AnswerTypeText }
func (DateValue) answerType() string { return models.AnswerTypeDate }

// Result is the outcome of scoring one answer
type Result struct {
	Score      int
	Conformity string
	// IsDynamic marks answers whose score can change over time (date-based)
	IsDynamic bool
	// ExpiresAt is set for date-based answers: the verification date plus the window
	ExpiresAt *time.Time
}

// Score evaluates a value against its question. siCount is the evaluation's
// number of information systems, now is the reference time for date answers.
func Score(question *models.Question, value Value, siCount int, now time.Time) (Result, error) {
	if value.answerType() != question.AnswerType {
		return Result{}, ErrTypeMismatch
	}

	switch v := value.(type) {
	case BoolValue:
		score := 0
		if v {
			score = 10
		}
		return Result{Score: score, Conformity: ConformityForScore(score)}, nil

	case IntValue:
		if siCount <= 0 {
			return Result{}, ErrMissingSystemCount
		}
		score := int(math.Round(float64(v) / float64(siCount) * 10))
		if score < 0 {
			score = 0
		}
		if score > 10 {
			score = 10
		}
		return Result{Score: score, Conformity: ConformityForScore(score)}, nil

	case TextValue:
		score := 0
		if strings.TrimSpace(string(v)) != "" {
			score = 10
		}
		return Result{Score: score, Conformity: ConformityForScore(score)}, nil

	case DateValue:
		if question.MonthsBeforeVerification == nil {
			return Result{}, ErrMissingVerificationWindow
		}
		expiresAt := time.Time(v).AddDate(0, *question.MonthsBeforeVerification, 0)
		score := 0
		if !now.After(expiresAt) {
			score = 10
		}
		return Result{
			Score:      score,
			Conformity: ConformityForScore(score),
			IsDynamic:  true,
			ExpiresAt:  &expiresAt,
		}, nil

	default:
		// Value variants are closed over this package, so the type check
		// above has already rejected anything that lands here
		return Result{}, ErrTypeMismatch
	}
}

// ConformityForScore maps a score to its conformity level: a full score is
// compliant, zero is non-compliant, everything between is partial.
func ConformityForScore(score int) string {
	switch {
	case score >= 10:
		return models.ConformityCompliant
	case score <= 0:
		return models.ConformityNonCompliant
	default:
		return models.ConformityPartiallyCompliant
	}
}
