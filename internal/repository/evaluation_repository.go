package repository

import (
	"database/sql"
	"log/slog"
	"math"

	"secueval/internal/models"
)

// EvaluationRepository handles database operations for evaluations
type EvaluationRepository struct {
	db *sql.DB
}

// NewEvaluationRepository creates a new evaluation repository
func NewEvaluationRepository(db *sql.DB) *EvaluationRepository {
	return &EvaluationRepository{db: db}
}

// Create inserts a new evaluation and fills in its generated fields
func (r *EvaluationRepository) Create(e *models.Evaluation) error {
	query := `
		INSERT INTO evaluations (user_id, entity_name, entity_type, si_count, current_objective_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(query, e.UserID, e.EntityName, e.EntityType, e.SICount, e.CurrentObjectiveID).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

// GetByIDAndUser retrieves an evaluation owned by the given user, nil if not found
func (r *EvaluationRepository) GetByIDAndUser(id, userID uint) (*models.Evaluation, error) {
	var e models.Evaluation
	query := `
		SELECT id, user_id, entity_name, entity_type, si_count, current_objective_id, created_at, updated_at
		FROM evaluations
		WHERE id = $1 AND user_id = $2
	`
	err := r.db.QueryRow(query, id, userID).Scan(
		&e.ID,
		&e.UserID,
		&e.EntityName,
		&e.EntityType,
		&e.SICount,
		&e.CurrentObjectiveID,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// GetAllByUser retrieves all evaluations of a user, most recently modified first
func (r *EvaluationRepository) GetAllByUser(userID uint) ([]models.Evaluation, error) {
	query := `
		SELECT id, user_id, entity_name, entity_type, si_count, current_objective_id, created_at, updated_at
		FROM evaluations
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var evaluations []models.Evaluation
	for rows.Next() {
		var e models.Evaluation
		err := rows.Scan(
			&e.ID, &e.UserID, &e.EntityName, &e.EntityType,
			&e.SICount, &e.CurrentObjectiveID, &e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		evaluations = append(evaluations, e)
	}
	return evaluations, rows.Err()
}

// Update updates an evaluation's entity fields
func (r *EvaluationRepository) Update(e *models.Evaluation) error {
	query := `
		UPDATE evaluations
		SET entity_name = $1, entity_type = $2, si_count = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4 AND user_id = $5
		RETURNING updated_at
	`
	return r.db.QueryRow(query, e.EntityName, e.EntityType, e.SICount, e.ID, e.UserID).
		Scan(&e.UpdatedAt)
}

// Delete removes an evaluation owned by the given user; answers cascade
func (r *EvaluationRepository) Delete(id, userID uint) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM evaluations WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// AdvanceObjectiveCursor moves the evaluation to the next objective after its
// current one, holding a row lock so concurrent finalizations serialize.
// Returns the new objective ID, or nil when no objective follows (the
// evaluation is complete). Returns sql.ErrNoRows when the evaluation does
// not exist for this user.
func (r *EvaluationRepository) AdvanceObjectiveCursor(evaluationID, userID uint) (*uint, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, err
	}
	defer rollback(tx)

	var current uint
	err = tx.QueryRow(
		`SELECT current_objective_id FROM evaluations WHERE id = $1 AND user_id = $2 FOR UPDATE`,
		evaluationID, userID,
	).Scan(&current)
	if err != nil {
		return nil, err
	}

	// MIN over an empty set yields a NULL row, not ErrNoRows
	var next sql.NullInt64
	if err := tx.QueryRow(`SELECT MIN(id) FROM objectives WHERE id > $1`, current).Scan(&next); err != nil {
		return nil, err
	}
	if !next.Valid {
		return nil, tx.Commit()
	}

	nextID := uint(next.Int64)
	_, err = tx.Exec(
		`UPDATE evaluations SET current_objective_id = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		nextID, evaluationID,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &nextID, nil
}

// SetObjectiveCursor moves the evaluation's cursor to the given objective,
// holding a row lock. Returns sql.ErrNoRows when the evaluation does not
// exist for this user.
func (r *EvaluationRepository) SetObjectiveCursor(evaluationID, userID, objectiveID uint) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer rollback(tx)

	var current uint
	err = tx.QueryRow(
		`SELECT current_objective_id FROM evaluations WHERE id = $1 AND user_id = $2 FOR UPDATE`,
		evaluationID, userID,
	).Scan(&current)
	if err != nil {
		return err
	}

	_, err = tx.Exec(
		`UPDATE evaluations SET current_objective_id = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		objectiveID, evaluationID,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// Dashboard aggregates progress and conformity counts for all of a user's
// evaluations. The total only counts independent questions scoped to the
// evaluation's entity type, so the denominator matches what the flow will
// actually ask.
func (r *EvaluationRepository) Dashboard(userID uint) ([]models.DashboardEntry, error) {
	query := `
		SELECT
			e.id,
			e.entity_name,
			e.entity_type,
			COUNT(a.id) AS answered_count,
			(SELECT COUNT(*) FROM questions q
			 WHERE q.is_dependent = FALSE
			   AND q.applies_to_important_entity = (e.entity_type = 'EI')) AS total_count,
			COUNT(a.id) FILTER (WHERE a.conformity = 'COMPLIANT') AS compliant_count,
			COUNT(a.id) FILTER (WHERE a.conformity = 'PARTIALLY_COMPLIANT') AS partial_count,
			COUNT(a.id) FILTER (WHERE a.conformity = 'NON_COMPLIANT') AS non_compliant_count,
			e.current_objective_id,
			e.updated_at
		FROM evaluations e
		LEFT JOIN answers a ON a.evaluation_id = e.id
		WHERE e.user_id = $1
		GROUP BY e.id
		ORDER BY e.updated_at DESC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.DashboardEntry
	for rows.Next() {
		var entry models.DashboardEntry
		err := rows.Scan(
			&entry.EvaluationID,
			&entry.EntityName,
			&entry.EntityType,
			&entry.AnsweredCount,
			&entry.TotalCount,
			&entry.CompliantCount,
			&entry.PartialCount,
			&entry.NonCompliantCount,
			&entry.CurrentObjectiveID,
			&entry.LastModified,
		)
		if err != nil {
			return nil, err
		}
		if entry.TotalCount > 0 {
			pct := math.Round(float64(entry.AnsweredCount) / float64(entry.TotalCount) * 100)
			entry.ProgressPct = &pct
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func rollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
		slog.Error("Failed to rollback transaction", "error", err)
	}
}
