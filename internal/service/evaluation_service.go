package service

import (
	"fmt"

	"secueval/internal/models"
)

// evaluationRepository is the full evaluation repository surface used here
type evaluationRepository interface {
	Create(e *models.Evaluation) error
	GetByIDAndUser(id, userID uint) (*models.Evaluation, error)
	GetAllByUser(userID uint) ([]models.Evaluation, error)
	Update(e *models.Evaluation) error
	Delete(id, userID uint) (bool, error)
	Dashboard(userID uint) ([]models.DashboardEntry, error)
}

// EvaluationService handles business logic for evaluations
type EvaluationService struct {
	evaluations evaluationRepository
}

// NewEvaluationService creates a new evaluation service
func NewEvaluationService(evaluations evaluationRepository) *EvaluationService {
	return &EvaluationService{evaluations: evaluations}
}

// CreateEvaluationRequest carries the fields to open a new evaluation.
// EntityCategory accepts the public vocabulary ("essential"/"important").
type CreateEvaluationRequest struct {
	UserID         uint   `json:"user_id"`
	EntityName     string `json:"entity_name"`
	EntityCategory string `json:"entity_category"`
	SICount        int    `json:"si_count"`
}

// entityTypeFor maps the public entity vocabulary to the stored type codes
func entityTypeFor(category string) (string, error) {
	switch category {
	case "essential":
		return models.EntityTypeEssential, nil
	case "important":
		return models.EntityTypeImportant, nil
	default:
		return "", NewValidationError(fmt.Sprintf("unknown entity category %q, expected \"essential\" or \"important\"", category))
	}
}

// CreateEvaluation validates the request and opens a new evaluation
// positioned on the first objective
func (s *EvaluationService) CreateEvaluation(req CreateEvaluationRequest) (*models.Evaluation, error) {
	if req.EntityName == "" {
		return nil, NewValidationError("entity_name is required")
	}
	if req.SICount < 0 {
		return nil, NewValidationError("si_count cannot be negative")
	}

	entityType, err := entityTypeFor(req.EntityCategory)
	if err != nil {
		return nil, err
	}

	evaluation := &models.Evaluation{
		UserID:             req.UserID,
		EntityName:         req.EntityName,
		EntityType:         entityType,
		SICount:            req.SICount,
		CurrentObjectiveID: 1,
	}

	if err := s.evaluations.Create(evaluation); err != nil {
		return nil, err
	}
	return evaluation, nil
}

// GetEvaluation retrieves an evaluation owned by the given user
func (s *EvaluationService) GetEvaluation(id, userID uint) (*models.Evaluation, error) {
	evaluation, err := s.evaluations.GetByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}
	if evaluation == nil {
		return nil, fmt.Errorf("evaluation %d: %w", id, ErrNotFound)
	}
	return evaluation, nil
}

// GetUserEvaluations retrieves all evaluations of a user
func (s *EvaluationService) GetUserEvaluations(userID uint) ([]models.Evaluation, error) {
	return s.evaluations.GetAllByUser(userID)
}

// UpdateEvaluationRequest carries the editable fields of an evaluation
type UpdateEvaluationRequest struct {
	EntityName     string `json:"entity_name"`
	EntityCategory string `json:"entity_category"`
	SICount        int    `json:"si_count"`
}

// UpdateEvaluation updates an evaluation's entity fields
func (s *EvaluationService) UpdateEvaluation(id, userID uint, req UpdateEvaluationRequest) (*models.Evaluation, error) {
	evaluation, err := s.GetEvaluation(id, userID)
	if err != nil {
		return nil, err
	}

	if req.EntityName == "" {
		return nil, NewValidationError("entity_name is required")
	}
	if req.SICount < 0 {
		return nil, NewValidationError("si_count cannot be negative")
	}
	entityType, err := entityTypeFor(req.EntityCategory)
	if err != nil {
		return nil, err
	}

	evaluation.EntityName = req.EntityName
	evaluation.EntityType = entityType
	evaluation.SICount = req.SICount

	if err := s.evaluations.Update(evaluation); err != nil {
		return nil, err
	}
	return evaluation, nil
}

// DeleteEvaluation removes an evaluation and its answers
func (s *EvaluationService) DeleteEvaluation(id, userID uint) error {
	deleted, err := s.evaluations.Delete(id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("evaluation %d: %w", id, ErrNotFound)
	}
	return nil
}

// GetDashboard returns progress and conformity summaries for all of a user's
// evaluations, most recently modified first
func (s *EvaluationService) GetDashboard(userID uint) ([]models.DashboardEntry, error) {
	return s.evaluations.Dashboard(userID)
}
