package service

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"secueval/internal/models"
	"secueval/internal/scoring"
)

// evaluationStore is the subset of the evaluation repository the flow needs
type evaluationStore interface {
	GetByIDAndUser(id, userID uint) (*models.Evaluation, error)
	AdvanceObjectiveCursor(evaluationID, userID uint) (*uint, error)
	SetObjectiveCursor(evaluationID, userID, objectiveID uint) error
}

type questionStore interface {
	GetByID(id uint) (*models.Question, error)
	ListAfter(questionID uint) ([]models.Question, error)
	FirstAfter(questionID uint) (*models.Question, error)
}

type objectiveStore interface {
	GetWithAxe(id uint) (*models.CurrentInfo, error)
}

type answerStore interface {
	Upsert(a *models.Answer) error
	GetByID(id uint) (*models.Answer, error)
	GetByEvaluation(evaluationID uint) ([]models.Answer, error)
	GetByEvaluationAndQuestion(evaluationID, questionID uint) (*models.Answer, error)
	LastAnsweredQuestionID(evaluationID uint) (uint, error)
	ListAnsweredDetails(evaluationID, userID uint) ([]models.AnsweredDetailRow, error)
	Delete(id uint) error
}

// completionNotifier is told when an evaluation runs out of objectives
type completionNotifier interface {
	SendEvaluationCompleted(evaluationID uint, entityName string)
}

// FlowService drives an evaluation through the question catalog: scoring
// answers, selecting the next eligible question and moving the objective cursor
type FlowService struct {
	evaluations evaluationStore
	questions   questionStore
	objectives  objectiveStore
	answers     answerStore
	notifier    completionNotifier
	now         func() time.Time
}

// NewFlowService creates a new flow service. notifier may be nil when
// completion notifications are disabled.
func NewFlowService(
	evaluations evaluationStore,
	questions questionStore,
	objectives objectiveStore,
	answers answerStore,
	notifier completionNotifier,
) *FlowService {
	return &FlowService{
		evaluations: evaluations,
		questions:   questions,
		objectives:  objectives,
		answers:     answers,
		notifier:    notifier,
		now:         time.Now,
	}
}

// PostAnswer scores a submitted value against its question and stores the
// answer, replacing any previous answer to the same question
func (s *FlowService) PostAnswer(evaluationID, userID, questionID uint, value scoring.Value) (*models.Answer, error) {
	evaluation, err := s.evaluations.GetByIDAndUser(evaluationID, userID)
	if err != nil {
		return nil, err
	}
	if evaluation == nil {
		return nil, fmt.Errorf("evaluation %d: %w", evaluationID, ErrNotFound)
	}

	question, err := s.questions.GetByID(questionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, fmt.Errorf("question %d: %w", questionID, ErrNotFound)
	}

	result, err := scoring.Score(question, value, evaluation.SICount, s.now())
	if err != nil {
		switch {
		case errors.Is(err, scoring.ErrTypeMismatch),
			errors.Is(err, scoring.ErrMissingSystemCount),
			errors.Is(err, scoring.ErrMissingVerificationWindow):
			return nil, NewValidationError(err.Error())
		default:
			return nil, err
		}
	}

	answer := &models.Answer{
		EvaluationID: evaluationID,
		QuestionID:   questionID,
		UserID:       userID,
		Score:        result.Score,
		Conformity:   result.Conformity,
		IsDynamic:    result.IsDynamic,
		ExpiresAt:    result.ExpiresAt,
	}

	switch v := value.(type) {
	case scoring.BoolValue:
		b := bool(v)
		answer.BooleanValue = &b
	case scoring.IntValue:
		i := int(v)
		answer.IntegerValue = &i
	case scoring.TextValue:
		t := string(v)
		answer.TextValue = &t
	case scoring.DateValue:
		d := time.Time(v)
		answer.DateValue = &d
	}

	if err := s.answers.Upsert(answer); err != nil {
		return nil, err
	}
	return answer, nil
}

// GetNextQuestion returns the first unanswered question the evaluation's
// entity is eligible for, walking the catalog in question ID order from the
// highest answered question onward
func (s *FlowService) GetNextQuestion(evaluationID, userID uint) (*models.Question, error) {
	evaluation, err := s.evaluations.GetByIDAndUser(evaluationID, userID)
	if err != nil {
		return nil, err
	}
	if evaluation == nil {
		return nil, fmt.Errorf("evaluation %d: %w", evaluationID, ErrNotFound)
	}

	lastAnswered, err := s.answers.LastAnsweredQuestionID(evaluationID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.questions.ListAfter(lastAnswered)
	if err != nil {
		return nil, err
	}

	for i := range candidates {
		eligible, err := s.isEligible(&candidates[i], evaluation)
		if err != nil {
			return nil, err
		}
		if eligible {
			return &candidates[i], nil
		}
	}

	return nil, fmt.Errorf("no next question: %w", ErrNotFound)
}

// isEligible decides whether a question applies to this evaluation: important
// entities only see questions flagged for them, and dependent questions are
// gated on their parent's answer reaching the minimum score
func (s *FlowService) isEligible(question *models.Question, evaluation *models.Evaluation) (bool, error) {
	if evaluation.EntityType == models.EntityTypeImportant && !question.AppliesToImportantEntity {
		return false, nil
	}

	if question.IsDependent {
		if question.ParentQuestionID == nil {
			return false, nil
		}
		parent, err := s.answers.GetByEvaluationAndQuestion(evaluation.ID, *question.ParentQuestionID)
		if err != nil {
			return false, err
		}
		if parent == nil {
			return false, nil
		}
		if question.MinScore != nil && parent.Score < *question.MinScore {
			return false, nil
		}
	}

	return true, nil
}

// GetCurrentInfo returns the objective and axe the evaluation is currently on
func (s *FlowService) GetCurrentInfo(evaluationID, userID uint) (*models.CurrentInfo, error) {
	evaluation, err := s.evaluations.GetByIDAndUser(evaluationID, userID)
	if err != nil {
		return nil, err
	}
	if evaluation == nil {
		return nil, fmt.Errorf("evaluation %d: %w", evaluationID, ErrNotFound)
	}

	info, err := s.objectives.GetWithAxe(evaluation.CurrentObjectiveID)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, fmt.Errorf("objective %d: %w", evaluation.CurrentObjectiveID, ErrNotFound)
	}

	info.EvaluationID = evaluationID
	return info, nil
}

// FinalizeObjective moves the evaluation's cursor to the next objective.
// When no objective follows, the evaluation is complete: a notification is
// sent and ErrNotFound is returned so the client stops asking.
func (s *FlowService) FinalizeObjective(evaluationID, userID uint) (*models.CurrentInfo, error) {
	evaluation, err := s.evaluations.GetByIDAndUser(evaluationID, userID)
	if err != nil {
		return nil, err
	}
	if evaluation == nil {
		return nil, fmt.Errorf("evaluation %d: %w", evaluationID, ErrNotFound)
	}

	next, err := s.evaluations.AdvanceObjectiveCursor(evaluationID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("evaluation %d: %w", evaluationID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if next == nil {
		if s.notifier != nil {
			go s.notifier.SendEvaluationCompleted(evaluationID, evaluation.EntityName)
		}
		return nil, fmt.Errorf("no next objective, evaluation complete: %w", ErrNotFound)
	}

	info, err := s.objectives.GetWithAxe(*next)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, fmt.Errorf("objective %d: %w", *next, ErrNotFound)
	}

	info.EvaluationID = evaluationID
	return info, nil
}

// VerifyNextObjective checks whether the next question in the catalog belongs
// to a different objective than the cursor, and if so moves the cursor there.
// Returns whether the objective changed.
func (s *FlowService) VerifyNextObjective(evaluationID, userID uint) (*models.ObjectiveTransition, error) {
	evaluation, err := s.evaluations.GetByIDAndUser(evaluationID, userID)
	if err != nil {
		return nil, err
	}
	if evaluation == nil {
		return nil, fmt.Errorf("evaluation %d: %w", evaluationID, ErrNotFound)
	}

	lastAnswered, err := s.answers.LastAnsweredQuestionID(evaluationID)
	if err != nil {
		return nil, err
	}

	next, err := s.questions.FirstAfter(lastAnswered)
	if err != nil {
		return nil, err
	}
	if next == nil || next.ObjectiveID == evaluation.CurrentObjectiveID {
		return &models.ObjectiveTransition{Changed: false}, nil
	}

	if err := s.evaluations.SetObjectiveCursor(evaluationID, userID, next.ObjectiveID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("evaluation %d: %w", evaluationID, ErrNotFound)
		}
		return nil, err
	}

	objectiveID := next.ObjectiveID
	return &models.ObjectiveTransition{Changed: true, ObjectiveID: &objectiveID}, nil
}

// GetAnswer retrieves a single answer, scoped to the requesting user
func (s *FlowService) GetAnswer(id, userID uint) (*models.Answer, error) {
	answer, err := s.answers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if answer == nil || answer.UserID != userID {
		return nil, fmt.Errorf("answer %d: %w", id, ErrNotFound)
	}
	return answer, nil
}

// GetEvaluationAnswers retrieves all answers of an evaluation in question order
func (s *FlowService) GetEvaluationAnswers(evaluationID, userID uint) ([]models.Answer, error) {
	evaluation, err := s.evaluations.GetByIDAndUser(evaluationID, userID)
	if err != nil {
		return nil, err
	}
	if evaluation == nil {
		return nil, fmt.Errorf("evaluation %d: %w", evaluationID, ErrNotFound)
	}
	return s.answers.GetByEvaluation(evaluationID)
}

// DeleteAnswer removes an answer owned by the requesting user
func (s *FlowService) DeleteAnswer(id, userID uint) error {
	answer, err := s.answers.GetByID(id)
	if err != nil {
		return err
	}
	if answer == nil || answer.UserID != userID {
		return fmt.Errorf("answer %d: %w", id, ErrNotFound)
	}
	return s.answers.Delete(id)
}

// GetAnsweredDetails returns every answered question of an evaluation grouped
// by objective, with each objective's lowest answer score
func (s *FlowService) GetAnsweredDetails(evaluationID, userID uint) (*models.EvaluationDetails, error) {
	evaluation, err := s.evaluations.GetByIDAndUser(evaluationID, userID)
	if err != nil {
		return nil, err
	}
	if evaluation == nil {
		return nil, fmt.Errorf("evaluation %d: %w", evaluationID, ErrNotFound)
	}

	rows, err := s.answers.ListAnsweredDetails(evaluationID, userID)
	if err != nil {
		return nil, err
	}

	details := &models.EvaluationDetails{EvaluationID: evaluationID}
	for _, row := range rows {
		n := len(details.Objectives)
		if n == 0 || details.Objectives[n-1].ObjectiveID != row.ObjectiveID {
			details.Objectives = append(details.Objectives, models.ObjectiveDetails{
				ObjectiveID:   row.ObjectiveID,
				ObjectiveName: row.ObjectiveName,
			})
			n++
		}

		group := &details.Objectives[n-1]
		group.Questions = append(group.Questions, row.AnsweredQuestion)
		if group.MinResponseScore == nil || row.Score < *group.MinResponseScore {
			score := row.Score
			group.MinResponseScore = &score
		}
	}

	return details, nil
}
