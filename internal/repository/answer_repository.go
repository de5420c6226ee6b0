package repository

import (
	"database/sql"

	"secueval/internal/models"
)

// AnswerRepository handles database operations for answers
type AnswerRepository struct {
	db *sql.DB
}

// NewAnswerRepository creates a new answer repository
func NewAnswerRepository(db *sql.DB) *AnswerRepository {
	return &AnswerRepository{db: db}
}

const answerColumns = `
	id, evaluation_id, question_id, user_id,
	boolean_value, integer_value, text_value, date_value,
	score, conformity, is_dynamic, expires_at,
	created_at, updated_at
`

func scanAnswer(row interface{ Scan(...any) error }, a *models.Answer) error {
	return row.Scan(
		&a.ID,
		&a.EvaluationID,
		&a.QuestionID,
		&a.UserID,
		&a.BooleanValue,
		&a.IntegerValue,
		&a.TextValue,
		&a.DateValue,
		&a.Score,
		&a.Conformity,
		&a.IsDynamic,
		&a.ExpiresAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
}

// Upsert inserts an answer, or replaces the existing one for the same
// evaluation and question so a resubmission overwrites instead of duplicating
func (r *AnswerRepository) Upsert(a *models.Answer) error {
	query := `
		INSERT INTO answers (
			evaluation_id, question_id, user_id,
			boolean_value, integer_value, text_value, date_value,
			score, conformity, is_dynamic, expires_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (evaluation_id, question_id) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			boolean_value = EXCLUDED.boolean_value,
			integer_value = EXCLUDED.integer_value,
			text_value = EXCLUDED.text_value,
			date_value = EXCLUDED.date_value,
			score = EXCLUDED.score,
			conformity = EXCLUDED.conformity,
			is_dynamic = EXCLUDED.is_dynamic,
			expires_at = EXCLUDED.expires_at,
			updated_at = CURRENT_TIMESTAMP
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(query,
		a.EvaluationID, a.QuestionID, a.UserID,
		a.BooleanValue, a.IntegerValue, a.TextValue, a.DateValue,
		a.Score, a.Conformity, a.IsDynamic, a.ExpiresAt,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

// GetByID retrieves an answer by ID, nil if not found
func (r *AnswerRepository) GetByID(id uint) (*models.Answer, error) {
	var a models.Answer
	query := `SELECT ` + answerColumns + ` FROM answers WHERE id = $1`
	err := scanAnswer(r.db.QueryRow(query, id), &a)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetByEvaluationAndQuestion retrieves the answer to a question within an
// evaluation, nil if the question has not been answered
func (r *AnswerRepository) GetByEvaluationAndQuestion(evaluationID, questionID uint) (*models.Answer, error) {
	var a models.Answer
	query := `SELECT ` + answerColumns + ` FROM answers WHERE evaluation_id = $1 AND question_id = $2`
	err := scanAnswer(r.db.QueryRow(query, evaluationID, questionID), &a)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetByEvaluation retrieves all answers of an evaluation ordered by question ID
func (r *AnswerRepository) GetByEvaluation(evaluationID uint) ([]models.Answer, error) {
	query := `SELECT ` + answerColumns + ` FROM answers WHERE evaluation_id = $1 ORDER BY question_id ASC`
	rows, err := r.db.Query(query, evaluationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var answers []models.Answer
	for rows.Next() {
		var a models.Answer
		if err := scanAnswer(rows, &a); err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}

// LastAnsweredQuestionID returns the highest question ID answered in an
// evaluation, zero when nothing has been answered yet
func (r *AnswerRepository) LastAnsweredQuestionID(evaluationID uint) (uint, error) {
	var lastID uint
	query := `SELECT COALESCE(MAX(question_id), 0) FROM answers WHERE evaluation_id = $1`
	err := r.db.QueryRow(query, evaluationID).Scan(&lastID)
	return lastID, err
}

// ListAnsweredDetails joins answers with their questions and objectives for
// an evaluation, carrying the full question metadata and the stored answer,
// ordered by objective then question
func (r *AnswerRepository) ListAnsweredDetails(evaluationID, userID uint) ([]models.AnsweredDetailRow, error) {
	query := `
		SELECT o.id, o.name,
			q.id, q.label, q.measure_name, q.answer_type, q.question_type,
			q.applies_to_important_entity, q.is_dependent, q.parent_question_id,
			q.min_score, q.months_before_verification, q.recommendation,
			a.id, a.boolean_value, a.integer_value, a.text_value, a.date_value,
			a.score, a.conformity, a.is_dynamic, a.expires_at
		FROM answers a
		JOIN questions q ON a.question_id = q.id
		JOIN objectives o ON q.objective_id = o.id
		WHERE a.evaluation_id = $1 AND a.user_id = $2
		ORDER BY o.id ASC, q.id ASC
	`
	rows, err := r.db.Query(query, evaluationID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []models.AnsweredDetailRow
	for rows.Next() {
		var row models.AnsweredDetailRow
		err := rows.Scan(
			&row.ObjectiveID,
			&row.ObjectiveName,
			&row.QuestionID,
			&row.Label,
			&row.MeasureName,
			&row.AnswerType,
			&row.QuestionType,
			&row.AppliesToImportantEntity,
			&row.IsDependent,
			&row.ParentQuestionID,
			&row.MinScore,
			&row.MonthsBeforeVerification,
			&row.Recommendation,
			&row.AnswerID,
			&row.BooleanValue,
			&row.IntegerValue,
			&row.TextValue,
			&row.DateValue,
			&row.Score,
			&row.Conformity,
			&row.IsDynamic,
			&row.ExpiresAt,
		)
		if err != nil {
			return nil, err
		}
		details = append(details, row)
	}
	return details, rows.Err()
}

// Delete removes an answer
func (r *AnswerRepository) Delete(id uint) error {
	_, err := r.db.Exec(`DELETE FROM answers WHERE id = $1`, id)
	return err
}
