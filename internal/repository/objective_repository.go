package repository

import (
	"database/sql"

	"secueval/internal/models"
)

// ObjectiveRepository handles database operations for security objectives
type ObjectiveRepository struct {
	db *sql.DB
}

// NewObjectiveRepository creates a new objective repository
func NewObjectiveRepository(db *sql.DB) *ObjectiveRepository {
	return &ObjectiveRepository{db: db}
}

// Create inserts a new objective and fills in its generated fields
func (r *ObjectiveRepository) Create(objective *models.Objective) error {
	query := `
		INSERT INTO objectives (axe_id, name, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(query, objective.AxeID, objective.Name, objective.Description).
		Scan(&objective.ID, &objective.CreatedAt, &objective.UpdatedAt)
}

// GetByID retrieves an objective by ID, nil if not found
func (r *ObjectiveRepository) GetByID(id uint) (*models.Objective, error) {
	var objective models.Objective
	query := `
		SELECT id, axe_id, name, description, created_at, updated_at
		FROM objectives
		WHERE id = $1
	`
	err := r.db.QueryRow(query, id).Scan(
		&objective.ID,
		&objective.AxeID,
		&objective.Name,
		&objective.Description,
		&objective.CreatedAt,
		&objective.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &objective, nil
}

// GetWithAxe retrieves an objective joined with its axe, nil if not found
func (r *ObjectiveRepository) GetWithAxe(id uint) (*models.CurrentInfo, error) {
	var info models.CurrentInfo
	query := `
		SELECT o.id, o.name, o.description, a.id, a.name
		FROM objectives o
		JOIN axes a ON o.axe_id = a.id
		WHERE o.id = $1
	`
	err := r.db.QueryRow(query, id).Scan(
		&info.ObjectiveID,
		&info.ObjectiveName,
		&info.ObjectiveDescription,
		&info.AxeID,
		&info.AxeName,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// GetAll retrieves all objectives ordered by ID
func (r *ObjectiveRepository) GetAll() ([]models.Objective, error) {
	query := `
		SELECT id, axe_id, name, description, created_at, updated_at
		FROM objectives
		ORDER BY id ASC
	`
	return r.queryObjectives(query)
}

// GetByAxeID retrieves all objectives of an axe ordered by ID
func (r *ObjectiveRepository) GetByAxeID(axeID uint) ([]models.Objective, error) {
	query := `
		SELECT id, axe_id, name, description, created_at, updated_at
		FROM objectives
		WHERE axe_id = $1
		ORDER BY id ASC
	`
	return r.queryObjectives(query, axeID)
}

func (r *ObjectiveRepository) queryObjectives(query string, args ...any) ([]models.Objective, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var objectives []models.Objective
	for rows.Next() {
		var o models.Objective
		if err := rows.Scan(&o.ID, &o.AxeID, &o.Name, &o.Description, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		objectives = append(objectives, o)
	}
	return objectives, rows.Err()
}

// Update updates an objective's axe, name and description
func (r *ObjectiveRepository) Update(objective *models.Objective) error {
	query := `
		UPDATE objectives
		SET axe_id = $1, name = $2, description = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4
		RETURNING updated_at
	`
	return r.db.QueryRow(query, objective.AxeID, objective.Name, objective.Description, objective.ID).
		Scan(&objective.UpdatedAt)
}

// Delete removes an objective; its questions cascade
func (r *ObjectiveRepository) Delete(id uint) error {
	_, err := r.db.Exec(`DELETE FROM objectives WHERE id = $1`, id)
	return err
}
