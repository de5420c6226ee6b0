package repository

import (
	"database/sql"

	"secueval/internal/models"
)

// QuestionRepository handles database operations for assessment questions
type QuestionRepository struct {
	db *sql.DB
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db *sql.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

const questionColumns = `
	id, objective_id, label, measure_name, answer_type, question_type,
	applies_to_important_entity, is_dependent, parent_question_id,
	min_score, months_before_verification, recommendation,
	created_at, updated_at
`

func scanQuestion(row interface{ Scan(...any) error }, q *models.Question) error {
	return row.Scan(
		&q.ID,
		&q.ObjectiveID,
		&q.Label,
		&q.MeasureName,
		&q.AnswerType,
		&q.QuestionType,
		&q.AppliesToImportantEntity,
		&q.IsDependent,
		&q.ParentQuestionID,
		&q.MinScore,
		&q.MonthsBeforeVerification,
		&q.Recommendation,
		&q.CreatedAt,
		&q.UpdatedAt,
	)
}

// Create inserts a new question and fills in its generated fields
func (r *QuestionRepository) Create(q *models.Question) error {
	query := `
		INSERT INTO questions (
			objective_id, label, measure_name, answer_type, question_type,
			applies_to_important_entity, is_dependent, parent_question_id,
			min_score, months_before_verification, recommendation
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(query,
		q.ObjectiveID, q.Label, q.MeasureName, q.AnswerType, q.QuestionType,
		q.AppliesToImportantEntity, q.IsDependent, q.ParentQuestionID,
		q.MinScore, q.MonthsBeforeVerification, q.Recommendation,
	).Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
}

// GetByID retrieves a question by ID, nil if not found
func (r *QuestionRepository) GetByID(id uint) (*models.Question, error) {
	var q models.Question
	query := `SELECT ` + questionColumns + ` FROM questions WHERE id = $1`
	err := scanQuestion(r.db.QueryRow(query, id), &q)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// GetAll retrieves all questions ordered by ID
func (r *QuestionRepository) GetAll() ([]models.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions ORDER BY id ASC`
	return r.queryQuestions(query)
}

// GetByObjectiveID retrieves all questions of an objective ordered by ID
func (r *QuestionRepository) GetByObjectiveID(objectiveID uint) ([]models.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE objective_id = $1 ORDER BY id ASC`
	return r.queryQuestions(query, objectiveID)
}

// ListAfter retrieves all questions with an ID greater than the given one,
// in ascending ID order. This is the candidate pool for the flow cursor.
func (r *QuestionRepository) ListAfter(questionID uint) ([]models.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE id > $1 ORDER BY id ASC`
	return r.queryQuestions(query, questionID)
}

// FirstAfter retrieves the question with the smallest ID greater than the
// given one, nil if no question follows
func (r *QuestionRepository) FirstAfter(questionID uint) (*models.Question, error) {
	var q models.Question
	query := `SELECT ` + questionColumns + ` FROM questions WHERE id > $1 ORDER BY id ASC LIMIT 1`
	err := scanQuestion(r.db.QueryRow(query, questionID), &q)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuestionRepository) queryQuestions(query string, args ...any) ([]models.Question, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []models.Question
	for rows.Next() {
		var q models.Question
		if err := scanQuestion(rows, &q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// Update updates a question's definition
func (r *QuestionRepository) Update(q *models.Question) error {
	query := `
		UPDATE questions
		SET objective_id = $1, label = $2, measure_name = $3, answer_type = $4,
		    question_type = $5, applies_to_important_entity = $6, is_dependent = $7,
		    parent_question_id = $8, min_score = $9, months_before_verification = $10,
		    recommendation = $11, updated_at = CURRENT_TIMESTAMP
		WHERE id = $12
		RETURNING updated_at
	`
	return r.db.QueryRow(query,
		q.ObjectiveID, q.Label, q.MeasureName, q.AnswerType, q.QuestionType,
		q.AppliesToImportantEntity, q.IsDependent, q.ParentQuestionID,
		q.MinScore, q.MonthsBeforeVerification, q.Recommendation,
		q.ID,
	).Scan(&q.UpdatedAt)
}

// Delete removes a question
func (r *QuestionRepository) Delete(id uint) error {
	_, err := r.db.Exec(`DELETE FROM questions WHERE id = $1`, id)
	return err
}
