package service

import (
	"fmt"

	"secueval/internal/models"
	"secueval/internal/repository"
)

// CatalogService handles business logic for the question catalog:
// axes, objectives and questions
type CatalogService struct {
	axes       *repository.AxeRepository
	objectives *repository.ObjectiveRepository
	questions  *repository.QuestionRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	axes *repository.AxeRepository,
	objectives *repository.ObjectiveRepository,
	questions *repository.QuestionRepository,
) *CatalogService {
	return &CatalogService{
		axes:       axes,
		objectives: objectives,
		questions:  questions,
	}
}

// Axes

// CreateAxe creates a new security axe
func (s *CatalogService) CreateAxe(axe *models.Axe) error {
	if axe.Name == "" {
		return NewValidationError("name is required")
	}
	return s.axes.Create(axe)
}

// GetAxe retrieves an axe by ID
func (s *CatalogService) GetAxe(id uint) (*models.Axe, error) {
	axe, err := s.axes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if axe == nil {
		return nil, fmt.Errorf("axe %d: %w", id, ErrNotFound)
	}
	return axe, nil
}

// GetAllAxes retrieves all axes
func (s *CatalogService) GetAllAxes() ([]models.Axe, error) {
	return s.axes.GetAll()
}

// UpdateAxe updates an axe after checking it exists
func (s *CatalogService) UpdateAxe(axe *models.Axe) error {
	if axe.Name == "" {
		return NewValidationError("name is required")
	}
	if _, err := s.GetAxe(axe.ID); err != nil {
		return err
	}
	return s.axes.Update(axe)
}

// DeleteAxe removes an axe and everything under it
func (s *CatalogService) DeleteAxe(id uint) error {
	if _, err := s.GetAxe(id); err != nil {
		return err
	}
	return s.axes.Delete(id)
}

// Objectives

// CreateObjective creates a new objective under an existing axe
func (s *CatalogService) CreateObjective(objective *models.Objective) error {
	if objective.Name == "" {
		return NewValidationError("name is required")
	}
	if _, err := s.GetAxe(objective.AxeID); err != nil {
		return err
	}
	return s.objectives.Create(objective)
}

// GetObjective retrieves an objective by ID
func (s *CatalogService) GetObjective(id uint) (*models.Objective, error) {
	objective, err := s.objectives.GetByID(id)
	if err != nil {
		return nil, err
	}
	if objective == nil {
		return nil, fmt.Errorf("objective %d: %w", id, ErrNotFound)
	}
	return objective, nil
}

// GetAllObjectives retrieves all objectives
func (s *CatalogService) GetAllObjectives() ([]models.Objective, error) {
	return s.objectives.GetAll()
}

// GetObjectivesByAxe retrieves all objectives of an axe
func (s *CatalogService) GetObjectivesByAxe(axeID uint) ([]models.Objective, error) {
	if _, err := s.GetAxe(axeID); err != nil {
		return nil, err
	}
	return s.objectives.GetByAxeID(axeID)
}

// UpdateObjective updates an objective after checking it and its axe exist
func (s *CatalogService) UpdateObjective(objective *models.Objective) error {
	if objective.Name == "" {
		return NewValidationError("name is required")
	}
	if _, err := s.GetObjective(objective.ID); err != nil {
		return err
	}
	if _, err := s.GetAxe(objective.AxeID); err != nil {
		return err
	}
	return s.objectives.Update(objective)
}

// DeleteObjective removes an objective and its questions
func (s *CatalogService) DeleteObjective(id uint) error {
	if _, err := s.GetObjective(id); err != nil {
		return err
	}
	return s.objectives.Delete(id)
}

// Questions

// validateQuestion checks a question definition is internally consistent
func (s *CatalogService) validateQuestion(q *models.Question) error {
	if q.Label == "" {
		return NewValidationError("label is required")
	}

	switch q.AnswerType {
	case models.AnswerTypeBoolean, models.AnswerTypeInteger, models.AnswerTypeText, models.AnswerTypeDate:
	default:
		return NewValidationError(fmt.Sprintf("unknown answer type %q", q.AnswerType))
	}

	switch q.QuestionType {
	case models.QuestionTypeBinary, models.QuestionTypeNonBinary:
	default:
		return NewValidationError(fmt.Sprintf("unknown question type %q", q.QuestionType))
	}

	if q.AnswerType == models.AnswerTypeDate && q.MonthsBeforeVerification == nil {
		return NewValidationError("date questions require months_before_verification")
	}

	if q.IsDependent {
		if q.ParentQuestionID == nil {
			return NewValidationError("dependent questions require parent_question_id")
		}
		parent, err := s.questions.GetByID(*q.ParentQuestionID)
		if err != nil {
			return err
		}
		if parent == nil {
			return NewValidationError(fmt.Sprintf("parent question %d does not exist", *q.ParentQuestionID))
		}
	}

	if q.MinScore != nil && (*q.MinScore < 0 || *q.MinScore > 10) {
		return NewValidationError("min_score must be between 0 and 10")
	}

	if _, err := s.GetObjective(q.ObjectiveID); err != nil {
		return err
	}
	return nil
}

// CreateQuestion creates a new question under an existing objective
func (s *CatalogService) CreateQuestion(q *models.Question) error {
	if err := s.validateQuestion(q); err != nil {
		return err
	}
	return s.questions.Create(q)
}

// GetQuestion retrieves a question by ID
func (s *CatalogService) GetQuestion(id uint) (*models.Question, error) {
	question, err := s.questions.GetByID(id)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, fmt.Errorf("question %d: %w", id, ErrNotFound)
	}
	return question, nil
}

// GetAllQuestions retrieves all questions
func (s *CatalogService) GetAllQuestions() ([]models.Question, error) {
	return s.questions.GetAll()
}

// GetQuestionsByObjective retrieves all questions of an objective
func (s *CatalogService) GetQuestionsByObjective(objectiveID uint) ([]models.Question, error) {
	if _, err := s.GetObjective(objectiveID); err != nil {
		return nil, err
	}
	return s.questions.GetByObjectiveID(objectiveID)
}

// UpdateQuestion updates a question after revalidating its definition
func (s *CatalogService) UpdateQuestion(q *models.Question) error {
	if _, err := s.GetQuestion(q.ID); err != nil {
		return err
	}
	if err := s.validateQuestion(q); err != nil {
		return err
	}
	return s.questions.Update(q)
}

// DeleteQuestion removes a question
func (s *CatalogService) DeleteQuestion(id uint) error {
	if _, err := s.GetQuestion(id); err != nil {
		return err
	}
	return s.questions.Delete(id)
}
