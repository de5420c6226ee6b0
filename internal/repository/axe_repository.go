package repository

import (
	"database/sql"

	"secueval/internal/models"
)

// AxeRepository handles database operations for security axes
type AxeRepository struct {
	db *sql.DB
}

// NewAxeRepository creates a new axe repository
func NewAxeRepository(db *sql.DB) *AxeRepository {
	return &AxeRepository{db: db}
}

// Create inserts a new axe and fills in its generated fields
func (r *AxeRepository) Create(axe *models.Axe) error {
	query := `
		INSERT INTO axes (name, description)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(query, axe.Name, axe.Description).
		Scan(&axe.ID, &axe.CreatedAt, &axe.UpdatedAt)
}

// GetByID retrieves an axe by ID, nil if not found
func (r *AxeRepository) GetByID(id uint) (*models.Axe, error) {
	var axe models.Axe
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM axes
		WHERE id = $1
	`
	err := r.db.QueryRow(query, id).Scan(
		&axe.ID,
		&axe.Name,
		&axe.Description,
		&axe.CreatedAt,
		&axe.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &axe, nil
}

// GetAll retrieves all axes ordered by ID
func (r *AxeRepository) GetAll() ([]models.Axe, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM axes
		ORDER BY id ASC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var axes []models.Axe
	for rows.Next() {
		var axe models.Axe
		if err := rows.Scan(&axe.ID, &axe.Name, &axe.Description, &axe.CreatedAt, &axe.UpdatedAt); err != nil {
			return nil, err
		}
		axes = append(axes, axe)
	}
	return axes, rows.Err()
}

// Update updates an axe's name and description
func (r *AxeRepository) Update(axe *models.Axe) error {
	query := `
		UPDATE axes
		SET name = $1, description = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3
		RETURNING updated_at
	`
	return r.db.QueryRow(query, axe.Name, axe.Description, axe.ID).Scan(&axe.UpdatedAt)
}

// Delete removes an axe; objectives and questions cascade
func (r *AxeRepository) Delete(id uint) error {
	_, err := r.db.Exec(`DELETE FROM axes WHERE id = $1`, id)
	return err
}
