package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	"secueval/internal/models"
)

// Fixtures holds test data
type Fixtures struct {
	DB         *sql.DB
	Axes       []models.Axe
	Objectives []models.Objective
	Questions  []models.Question
}

// SetupFixtures seeds a small questionnaire catalog: two axes, two
// objectives each, and a handful of questions covering every answer type.
func SetupFixtures(t *testing.T, db *sql.DB) *Fixtures {
	t.Helper()

	fixtures := &Fixtures{
		DB: db,
	}

	axeNames := []string{"Governance", "Protection"}
	for _, name := range axeNames {
		fixtures.Axes = append(fixtures.Axes, createAxe(t, db, name))
	}

	objectiveNames := map[string][]string{
		"Governance": {"Risk Analysis", "Security Policy"},
		"Protection": {"System Hardening", "Access Control"},
	}
	for _, axe := range fixtures.Axes {
		for _, name := range objectiveNames[axe.Name] {
			fixtures.Objectives = append(fixtures.Objectives, createObjective(t, db, axe.ID, name))
		}
	}

	fixtures.Questions = createQuestions(t, db, fixtures.Objectives)

	return fixtures
}

// Cleanup removes all test data
func (f *Fixtures) Cleanup(t *testing.T) {
	t.Helper()

	// Cleanup is handled by container termination
	// Data is not persisted between tests
}

func createAxe(t *testing.T, db *sql.DB, name string) models.Axe {
	t.Helper()

	var axe models.Axe
	err := db.QueryRow(`
		INSERT INTO axes (name, description)
		VALUES ($1, $2)
		RETURNING id, name, description, created_at, updated_at
	`, name, fmt.Sprintf("Description for %s", name)).Scan(
		&axe.ID, &axe.Name, &axe.Description, &axe.CreatedAt, &axe.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("Failed to create axe %s: %v", name, err)
	}

	return axe
}

func createObjective(t *testing.T, db *sql.DB, axeID uint, name string) models.Objective {
	t.Helper()

	var objective models.Objective
	err := db.QueryRow(`
		INSERT INTO objectives (axe_id, name, description)
		VALUES ($1, $2, $3)
		RETURNING id, axe_id, name, description, created_at, updated_at
	`, axeID, name, fmt.Sprintf("Description for %s", name)).Scan(
		&objective.ID, &objective.AxeID, &objective.Name, &objective.Description,
		&objective.CreatedAt, &objective.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("Failed to create objective %s: %v", name, err)
	}

	return objective
}

// createQuestions seeds one question per answer type on the first objective
// and a dependent question pair on the second.
func createQuestions(t *testing.T, db *sql.DB, objectives []models.Objective) []models.Question {
	t.Helper()

	questions := []models.Question{}

	first := objectives[0].ID
	second := objectives[1].ID

	months := 12
	minScore := 10
	measure := "Risk analysis"

	questions = append(questions,
		insertQuestion(t, db, models.Question{
			ObjectiveID:              first,
			Label:                    "Has a risk analysis been performed?",
			MeasureName:              &measure,
			AnswerType:               models.AnswerTypeBoolean,
			QuestionType:             models.QuestionTypeBinary,
			AppliesToImportantEntity: true,
		}),
		insertQuestion(t, db, models.Question{
			ObjectiveID:              first,
			Label:                    "How many information systems are covered by the analysis?",
			AnswerType:               models.AnswerTypeInteger,
			QuestionType:             models.QuestionTypeNonBinary,
			AppliesToImportantEntity: true,
		}),
		insertQuestion(t, db, models.Question{
			ObjectiveID:              first,
			Label:                    "Who is the designated security officer?",
			AnswerType:               models.AnswerTypeText,
			QuestionType:             models.QuestionTypeNonBinary,
			AppliesToImportantEntity: false,
		}),
		insertQuestion(t, db, models.Question{
			ObjectiveID:              second,
			Label:                    "When was the security policy last reviewed?",
			AnswerType:               models.AnswerTypeDate,
			QuestionType:             models.QuestionTypeNonBinary,
			AppliesToImportantEntity: true,
			MonthsBeforeVerification: &months,
		}),
	)

	parentID := questions[0].ID
	questions = append(questions,
		insertQuestion(t, db, models.Question{
			ObjectiveID:              second,
			Label:                    "Is the risk analysis reviewed annually?",
			AnswerType:               models.AnswerTypeBoolean,
			QuestionType:             models.QuestionTypeBinary,
			AppliesToImportantEntity: true,
			IsDependent:              true,
			ParentQuestionID:         &parentID,
			MinScore:                 &minScore,
		}),
	)

	return questions
}

func insertQuestion(t *testing.T, db *sql.DB, q models.Question) models.Question {
	t.Helper()

	err := db.QueryRow(`
		INSERT INTO questions (objective_id, label, measure_name, answer_type,
			question_type, applies_to_important_entity, is_dependent,
			parent_question_id, min_score, months_before_verification, recommendation)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`, q.ObjectiveID, q.Label, q.MeasureName, q.AnswerType, q.QuestionType,
		q.AppliesToImportantEntity, q.IsDependent, q.ParentQuestionID,
		q.MinScore, q.MonthsBeforeVerification, q.Recommendation).Scan(
		&q.ID, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("Failed to create question %q: %v", q.Label, err)
	}

	return q
}

// CreateEvaluation creates an evaluation for testing
func (f *Fixtures) CreateEvaluation(t *testing.T, userID uint, entityName, entityType string, siCount int) *models.Evaluation {
	t.Helper()

	var evaluation models.Evaluation
	err := f.DB.QueryRow(`
		INSERT INTO evaluations (user_id, entity_name, entity_type, si_count, current_objective_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, entity_name, entity_type, si_count, current_objective_id, created_at, updated_at
	`, userID, entityName, entityType, siCount, f.Objectives[0].ID).Scan(
		&evaluation.ID, &evaluation.UserID, &evaluation.EntityName, &evaluation.EntityType,
		&evaluation.SICount, &evaluation.CurrentObjectiveID, &evaluation.CreatedAt, &evaluation.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("Failed to create evaluation: %v", err)
	}

	return &evaluation
}
