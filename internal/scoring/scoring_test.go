package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secueval/internal/models"
)

func question(answerType string) *models.Question {
	return &models.Question{ID: 1, ObjectiveID: 1, AnswerType: answerType}
}

func dateQuestion(months int) *models.Question {
	q := question(models.AnswerTypeDate)
	q.MonthsBeforeVerification = &months
	return q
}

func TestScoreBoolean(t *testing.T) {
	now := time.Now()

	result, err := Score(question(models.AnswerTypeBoolean), BoolValue(true), 0, now)
	require.NoError(t, err)
	assert.Equal(t, 10, result.Score)
	assert.Equal(t, models.ConformityCompliant, result.Conformity)
	assert.False(t, result.IsDynamic)
	assert.Nil(t, result.ExpiresAt)

	result, err = Score(question(models.AnswerTypeBoolean), BoolValue(false), 0, now)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, models.ConformityNonCompliant, result.Conformity)
}

func TestScoreInteger(t *testing.T) {
	now := time.Now()
	q := question(models.AnswerTypeInteger)

	tests := []struct {
		name       string
		value      int
		siCount    int
		wantScore  int
		conformity string
	}{
		{"all systems conform", 4, 4, 10, models.ConformityCompliant},
		{"none conform", 0, 4, 0, models.ConformityNonCompliant},
		{"half conform", 2, 4, 5, models.ConformityPartiallyCompliant},
		{"rounds to nearest", 1, 3, 3, models.ConformityPartiallyCompliant},
		{"rounds half up", 1, 4, 3, models.ConformityPartiallyCompliant},
		{"two thirds", 2, 3, 7, models.ConformityPartiallyCompliant},
		{"clamps above ten", 12, 4, 10, models.ConformityCompliant},
		{"clamps below zero", -3, 4, 0, models.ConformityNonCompliant},
		{"single system", 1, 1, 10, models.ConformityCompliant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Score(q, IntValue(tt.value), tt.siCount, now)
			require.NoError(t, err)
			assert.Equal(t, tt.wantScore, result.Score)
			assert.Equal(t, tt.conformity, result.Conformity)
			assert.False(t, result.IsDynamic)
		})
	}
}

func TestScoreIntegerWithoutSystems(t *testing.T) {
	_, err := Score(question(models.AnswerTypeInteger), IntValue(3), 0, time.Now())
	assert.ErrorIs(t, err, ErrMissingSystemCount)

	_, err = Score(question(models.AnswerTypeInteger), IntValue(3), -1, time.Now())
	assert.ErrorIs(t, err, ErrMissingSystemCount)
}

func TestScoreText(t *testing.T) {
	now := time.Now()
	q := question(models.AnswerTypeText)

	result, err := Score(q, TextValue("we use a documented patch process"), 0, now)
	require.NoError(t, err)
	assert.Equal(t, 10, result.Score)
	assert.Equal(t, models.ConformityCompliant, result.Conformity)

	for _, empty := range []string{"", "   ", "\t\n"} {
		result, err = Score(q, TextValue(empty), 0, now)
		require.NoError(t, err)
		assert.Equal(t, 0, result.Score)
		assert.Equal(t, models.ConformityNonCompliant, result.Conformity)
	}
}

func TestScoreDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	q := dateQuestion(12)

	// Verified five months ago, window of twelve: still valid
	verified := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	result, err := Score(q, DateValue(verified), 0, now)
	require.NoError(t, err)
	assert.Equal(t, 10, result.Score)
	assert.True(t, result.IsDynamic)
	require.NotNil(t, result.ExpiresAt)
	assert.Equal(t, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), *result.ExpiresAt)

	// Verified two years ago: expired
	verified = time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	result, err = Score(q, DateValue(verified), 0, now)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, models.ConformityNonCompliant, result.Conformity)
	assert.True(t, result.IsDynamic)
}

func TestScoreDateExactExpiry(t *testing.T) {
	q := dateQuestion(6)
	verified := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	expiry := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	// Exactly at expiry the answer is still compliant
	result, err := Score(q, DateValue(verified), 0, expiry)
	require.NoError(t, err)
	assert.Equal(t, 10, result.Score)

	result, err = Score(q, DateValue(verified), 0, expiry.Add(time.Second))
	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)
}

func TestScoreDateMonthOverflow(t *testing.T) {
	// Jan 31 + 1 month normalizes past Feb into early March
	q := dateQuestion(1)
	verified := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	result, err := Score(q, DateValue(verified), 0, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, result.ExpiresAt)
	assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), *result.ExpiresAt)
}

func TestScoreDateWithoutWindow(t *testing.T) {
	_, err := Score(question(models.AnswerTypeDate), DateValue(time.Now()), 0, time.Now())
	assert.ErrorIs(t, err, ErrMissingVerificationWindow)
}

func TestScoreTypeMismatch(t *testing.T) {
	now := time.Now()

	_, err := Score(question(models.AnswerTypeBoolean), IntValue(3), 4, now)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = Score(question(models.AnswerTypeInteger), TextValue("three"), 4, now)
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = Score(question("UNKNOWN"), BoolValue(true), 0, now)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestConformityForScore(t *testing.T) {
	assert.Equal(t, models.ConformityCompliant, ConformityForScore(10))
	assert.Equal(t, models.ConformityNonCompliant, ConformityForScore(0))
	for score := 1; score <= 9; score++ {
		assert.Equal(t, models.ConformityPartiallyCompliant, ConformityForScore(score))
	}
}
