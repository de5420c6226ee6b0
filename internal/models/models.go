package models

import (
	"time"
)

// Answer type determines how a submitted value is validated and scored
const (
	AnswerTypeBoolean = "BOOLEAN"
	AnswerTypeInteger = "INTEGER"
	AnswerTypeText    = "TEXT"
	AnswerTypeDate    = "DATE"
)

// Question type distinguishes yes/no questions from graded ones
const (
	QuestionTypeBinary    = "BINARY"
	QuestionTypeNonBinary = "NON_BINARY"
)

// Entity types: EE (essential entity) answers the full catalog,
// EI (important entity) only questions flagged for it
const (
	EntityTypeEssential = "EE"
	EntityTypeImportant = "EI"
)

// Conformity levels derived from an answer's score
const (
	ConformityCompliant          = "COMPLIANT"
	ConformityPartiallyCompliant = "PARTIALLY_COMPLIANT"
	ConformityNonCompliant       = "NON_COMPLIANT"
)

// Axe represents a top-level security domain grouping objectives
type Axe struct {
	ID          uint      `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Objective represents a security objective within an axe
type Objective struct {
	ID          uint      `json:"id" db:"id"`
	AxeID       uint      `json:"axe_id" db:"axe_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Question represents a single assessment question within an objective
type Question struct {
	ID                       uint      `json:"id" db:"id"`
	ObjectiveID              uint      `json:"objective_id" db:"objective_id"`
	Label                    string    `json:"label" db:"label"`
	MeasureName              *string   `json:"measure_name,omitempty" db:"measure_name"`
	AnswerType               string    `json:"answer_type" db:"answer_type"`
	QuestionType             string    `json:"question_type" db:"question_type"`
	AppliesToImportantEntity bool      `json:"applies_to_important_entity" db:"applies_to_important_entity"`
	IsDependent              bool      `json:"is_dependent" db:"is_dependent"`
	ParentQuestionID         *uint     `json:"parent_question_id,omitempty" db:"parent_question_id"`
	MinScore                 *int      `json:"min_score,omitempty" db:"min_score"`
	MonthsBeforeVerification *int      `json:"months_before_verification,omitempty" db:"months_before_verification"`
	Recommendation           *string   `json:"recommendation,omitempty" db:"recommendation"`
	CreatedAt                time.Time `json:"created_at" db:"created_at"`
	UpdatedAt                time.Time `json:"updated_at" db:"updated_at"`
}

// Evaluation represents one entity's assessment session
type Evaluation struct {
	ID                 uint      `json:"id" db:"id"`
	UserID             uint      `json:"user_id" db:"user_id"`
	EntityName         string    `json:"entity_name" db:"entity_name"`
	EntityType         string    `json:"entity_type" db:"entity_type"`
	SICount            int       `json:"si_count" db:"si_count"`
	CurrentObjectiveID uint      `json:"current_objective_id" db:"current_objective_id"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

// Answer represents a scored response to a question within an evaluation.
// Exactly one of the value columns is set, matching the question's answer type.
type Answer struct {
	ID           uint       `json:"id" db:"id"`
	EvaluationID uint       `json:"evaluation_id" db:"evaluation_id"`
	QuestionID   uint       `json:"question_id" db:"question_id"`
	UserID       uint       `json:"user_id" db:"user_id"`
	BooleanValue *bool      `json:"boolean_value,omitempty" db:"boolean_value"`
	IntegerValue *int       `json:"integer_value,omitempty" db:"integer_value"`
	TextValue    *string    `json:"text_value,omitempty" db:"text_value"`
	DateValue    *time.Time `json:"date_value,omitempty" db:"date_value"`
	Score        int        `json:"score" db:"score"`
	Conformity   string     `json:"conformity" db:"conformity"`
	IsDynamic    bool       `json:"is_dynamic" db:"is_dynamic"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty" db:"expires_at"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// CurrentInfo describes the objective an evaluation is currently positioned on
type CurrentInfo struct {
	EvaluationID         uint   `json:"evaluation_id"`
	ObjectiveID          uint   `json:"objective_id"`
	ObjectiveName        string `json:"objective_name"`
	ObjectiveDescription string `json:"objective_description"`
	AxeID                uint   `json:"axe_id"`
	AxeName              string `json:"axe_name"`
}

// ObjectiveTransition reports whether the flow moved to a new objective
type ObjectiveTransition struct {
	Changed     bool  `json:"changed"`
	ObjectiveID *uint `json:"objective_id,omitempty"`
}

// AnsweredQuestion is one answer joined with its question for detail views:
// the question's full metadata plus the scored answer
type AnsweredQuestion struct {
	QuestionID               uint       `json:"question_id"`
	Label                    string     `json:"label"`
	MeasureName              *string    `json:"measure_name,omitempty"`
	AnswerType               string     `json:"answer_type"`
	QuestionType             string     `json:"question_type"`
	AppliesToImportantEntity bool       `json:"applies_to_important_entity"`
	IsDependent              bool       `json:"is_dependent"`
	ParentQuestionID         *uint      `json:"parent_question_id,omitempty"`
	MinScore                 *int       `json:"min_score,omitempty"`
	MonthsBeforeVerification *int       `json:"months_before_verification,omitempty"`
	Recommendation           *string    `json:"recommendation,omitempty"`
	AnswerID                 uint       `json:"answer_id"`
	BooleanValue             *bool      `json:"boolean_value,omitempty"`
	IntegerValue             *int       `json:"integer_value,omitempty"`
	TextValue                *string    `json:"text_value,omitempty"`
	DateValue                *time.Time `json:"date_value,omitempty"`
	Score                    int        `json:"score"`
	Conformity               string     `json:"conformity"`
	IsDynamic                bool       `json:"is_dynamic"`
	ExpiresAt                *time.Time `json:"expires_at,omitempty"`
}

// AnsweredDetailRow is one row of the answers/questions/objectives join,
// before grouping by objective
type AnsweredDetailRow struct {
	ObjectiveID   uint
	ObjectiveName string
	AnsweredQuestion
}

// ObjectiveDetails groups the answered questions of one objective
type ObjectiveDetails struct {
	ObjectiveID      uint               `json:"objective_id"`
	ObjectiveName    string             `json:"objective_name"`
	MinResponseScore *int               `json:"min_response_score"`
	Questions        []AnsweredQuestion `json:"questions"`
}

// EvaluationDetails is the full answered-questions breakdown of an evaluation
type EvaluationDetails struct {
	EvaluationID uint               `json:"evaluation_id"`
	Objectives   []ObjectiveDetails `json:"objectives"`
}

// DashboardEntry summarizes one evaluation's progress and conformity counts
type DashboardEntry struct {
	EvaluationID       uint      `json:"evaluation_id"`
	EntityName         string    `json:"entity_name"`
	EntityType         string    `json:"entity_type"`
	AnsweredCount      int       `json:"answered_count"`
	TotalCount         int       `json:"total_count"`
	ProgressPct        *float64  `json:"progress_pct"`
	CompliantCount     int       `json:"compliant_count"`
	PartialCount       int       `json:"partial_count"`
	NonCompliantCount  int       `json:"non_compliant_count"`
	CurrentObjectiveID uint      `json:"current_objective_id"`
	LastModified       time.Time `json:"last_modified"`
}
