package service

import (
	"database/sql"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secueval/internal/models"
	"secueval/internal/scoring"
)

// fakeStore backs all flow service dependencies with in-memory data
type fakeStore struct {
	evaluations map[uint]*models.Evaluation
	questions   []models.Question
	objectives  map[uint]models.CurrentInfo
	answers     map[[2]uint]*models.Answer
	nextAnswer  uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		evaluations: make(map[uint]*models.Evaluation),
		objectives:  make(map[uint]models.CurrentInfo),
		answers:     make(map[[2]uint]*models.Answer),
	}
}

func (f *fakeStore) GetByIDAndUser(id, userID uint) (*models.Evaluation, error) {
	e, ok := f.evaluations[id]
	if !ok || e.UserID != userID {
		return nil, nil
	}
	copied := *e
	return &copied, nil
}

func (f *fakeStore) AdvanceObjectiveCursor(evaluationID, userID uint) (*uint, error) {
	e, ok := f.evaluations[evaluationID]
	if !ok || e.UserID != userID {
		return nil, sql.ErrNoRows
	}
	var next *uint
	for id := range f.objectives {
		if id > e.CurrentObjectiveID && (next == nil || id < *next) {
			id := id
			next = &id
		}
	}
	if next == nil {
		return nil, nil
	}
	e.CurrentObjectiveID = *next
	return next, nil
}

func (f *fakeStore) SetObjectiveCursor(evaluationID, userID, objectiveID uint) error {
	e, ok := f.evaluations[evaluationID]
	if !ok || e.UserID != userID {
		return sql.ErrNoRows
	}
	e.CurrentObjectiveID = objectiveID
	return nil
}

func (f *fakeStore) GetByID(id uint) (*models.Question, error) {
	for i := range f.questions {
		if f.questions[i].ID == id {
			copied := f.questions[i]
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ListAfter(questionID uint) ([]models.Question, error) {
	var out []models.Question
	for _, q := range f.questions {
		if q.ID > questionID {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeStore) FirstAfter(questionID uint) (*models.Question, error) {
	after, _ := f.ListAfter(questionID)
	if len(after) == 0 {
		return nil, nil
	}
	return &after[0], nil
}

func (f *fakeStore) GetWithAxe(id uint) (*models.CurrentInfo, error) {
	info, ok := f.objectives[id]
	if !ok {
		return nil, nil
	}
	return &info, nil
}

func (f *fakeStore) Upsert(a *models.Answer) error {
	key := [2]uint{a.EvaluationID, a.QuestionID}
	if existing, ok := f.answers[key]; ok {
		a.ID = existing.ID
	} else {
		f.nextAnswer++
		a.ID = f.nextAnswer
	}
	copied := *a
	f.answers[key] = &copied
	return nil
}

func (f *fakeStore) GetByEvaluationAndQuestion(evaluationID, questionID uint) (*models.Answer, error) {
	a, ok := f.answers[[2]uint{evaluationID, questionID}]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (f *fakeStore) LastAnsweredQuestionID(evaluationID uint) (uint, error) {
	var last uint
	for key := range f.answers {
		if key[0] == evaluationID && key[1] > last {
			last = key[1]
		}
	}
	return last, nil
}

func (f *fakeStore) ListAnsweredDetails(evaluationID, userID uint) ([]models.AnsweredDetailRow, error) {
	var rows []models.AnsweredDetailRow
	for key, a := range f.answers {
		if key[0] != evaluationID || a.UserID != userID {
			continue
		}
		q, _ := f.GetByID(key[1])
		if q == nil {
			continue
		}
		info := f.objectives[q.ObjectiveID]
		rows = append(rows, models.AnsweredDetailRow{
			ObjectiveID:   q.ObjectiveID,
			ObjectiveName: info.ObjectiveName,
			AnsweredQuestion: models.AnsweredQuestion{
				QuestionID:               q.ID,
				Label:                    q.Label,
				MeasureName:              q.MeasureName,
				AnswerType:               q.AnswerType,
				QuestionType:             q.QuestionType,
				AppliesToImportantEntity: q.AppliesToImportantEntity,
				IsDependent:              q.IsDependent,
				ParentQuestionID:         q.ParentQuestionID,
				MinScore:                 q.MinScore,
				MonthsBeforeVerification: q.MonthsBeforeVerification,
				Recommendation:           q.Recommendation,
				AnswerID:                 a.ID,
				BooleanValue:             a.BooleanValue,
				IntegerValue:             a.IntegerValue,
				TextValue:                a.TextValue,
				DateValue:                a.DateValue,
				Score:                    a.Score,
				Conformity:               a.Conformity,
				IsDynamic:                a.IsDynamic,
				ExpiresAt:                a.ExpiresAt,
			},
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].ObjectiveID != rows[j].ObjectiveID {
			return rows[i].ObjectiveID < rows[j].ObjectiveID
		}
		return rows[i].QuestionID < rows[j].QuestionID
	})
	return rows, nil
}

// fakeAnswers adapts fakeStore to the answer store interface; a separate type
// because GetByID means questions on fakeStore itself
type fakeAnswers struct {
	s *fakeStore
}

func (f *fakeAnswers) Upsert(a *models.Answer) error { return f.s.Upsert(a) }

func (f *fakeAnswers) GetByID(id uint) (*models.Answer, error) {
	for _, a := range f.s.answers {
		if a.ID == id {
			copied := *a
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeAnswers) GetByEvaluation(evaluationID uint) ([]models.Answer, error) {
	var out []models.Answer
	for key, a := range f.s.answers {
		if key[0] == evaluationID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].QuestionID < out[j].QuestionID })
	return out, nil
}

func (f *fakeAnswers) GetByEvaluationAndQuestion(evaluationID, questionID uint) (*models.Answer, error) {
	return f.s.GetByEvaluationAndQuestion(evaluationID, questionID)
}

func (f *fakeAnswers) LastAnsweredQuestionID(evaluationID uint) (uint, error) {
	return f.s.LastAnsweredQuestionID(evaluationID)
}

func (f *fakeAnswers) ListAnsweredDetails(evaluationID, userID uint) ([]models.AnsweredDetailRow, error) {
	return f.s.ListAnsweredDetails(evaluationID, userID)
}

func (f *fakeAnswers) Delete(id uint) error {
	for key, a := range f.s.answers {
		if a.ID == id {
			delete(f.s.answers, key)
			return nil
		}
	}
	return nil
}

type fakeNotifier struct {
	completed chan uint
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{completed: make(chan uint, 1)}
}

func (n *fakeNotifier) SendEvaluationCompleted(evaluationID uint, entityName string) {
	n.completed <- evaluationID
}

// newTestFlow builds a flow service over a small catalog: two objectives,
// three questions, the third only for important entities
func newTestFlow(t *testing.T) (*FlowService, *fakeStore, *fakeNotifier) {
	t.Helper()
	store := newFakeStore()
	store.objectives[1] = models.CurrentInfo{ObjectiveID: 1, ObjectiveName: "Governance", AxeID: 1, AxeName: "Organization"}
	store.objectives[2] = models.CurrentInfo{ObjectiveID: 2, ObjectiveName: "Patching", AxeID: 2, AxeName: "Protection"}
	measure := "Security policy"
	recommendation := "Automate patch deployment"
	store.questions = []models.Question{
		{ID: 1, ObjectiveID: 1, Label: "Is a security policy in place?", MeasureName: &measure, AnswerType: models.AnswerTypeBoolean, QuestionType: models.QuestionTypeBinary, AppliesToImportantEntity: true},
		{ID: 2, ObjectiveID: 1, Label: "How many systems are inventoried?", AnswerType: models.AnswerTypeInteger, QuestionType: models.QuestionTypeNonBinary, AppliesToImportantEntity: true},
		{ID: 3, ObjectiveID: 2, Label: "Is patching automated?", AnswerType: models.AnswerTypeBoolean, QuestionType: models.QuestionTypeBinary, Recommendation: &recommendation},
	}
	store.evaluations[1] = &models.Evaluation{ID: 1, UserID: 7, EntityName: "Acme", EntityType: models.EntityTypeEssential, SICount: 4, CurrentObjectiveID: 1}

	notifier := newFakeNotifier()
	svc := NewFlowService(store, store, store, &fakeAnswers{s: store}, notifier)
	return svc, store, notifier
}

func TestPostAnswerStoresScoredAnswer(t *testing.T) {
	svc, store, _ := newTestFlow(t)

	answer, err := svc.PostAnswer(1, 7, 1, scoring.BoolValue(true))
	require.NoError(t, err)
	assert.Equal(t, 10, answer.Score)
	assert.Equal(t, models.ConformityCompliant, answer.Conformity)
	require.NotNil(t, answer.BooleanValue)
	assert.True(t, *answer.BooleanValue)

	stored := store.answers[[2]uint{1, 1}]
	require.NotNil(t, stored)
	assert.Equal(t, 10, stored.Score)
}

func TestPostAnswerUnknownEvaluation(t *testing.T) {
	svc, _, _ := newTestFlow(t)

	_, err := svc.PostAnswer(99, 7, 1, scoring.BoolValue(true))
	assert.ErrorIs(t, err, ErrNotFound)

	// Wrong user looks the same as a missing evaluation
	_, err = svc.PostAnswer(1, 8, 1, scoring.BoolValue(true))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostAnswerUnknownQuestion(t *testing.T) {
	svc, _, _ := newTestFlow(t)

	_, err := svc.PostAnswer(1, 7, 42, scoring.BoolValue(true))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostAnswerIntegerWithoutSystems(t *testing.T) {
	svc, store, _ := newTestFlow(t)
	store.evaluations[1].SICount = 0

	_, err := svc.PostAnswer(1, 7, 2, scoring.IntValue(3))
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestPostAnswerTypeMismatch(t *testing.T) {
	svc, _, _ := newTestFlow(t)

	_, err := svc.PostAnswer(1, 7, 1, scoring.TextValue("yes"))
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestPostAnswerResubmissionOverwrites(t *testing.T) {
	svc, store, _ := newTestFlow(t)

	first, err := svc.PostAnswer(1, 7, 1, scoring.BoolValue(false))
	require.NoError(t, err)
	assert.Equal(t, 0, first.Score)

	second, err := svc.PostAnswer(1, 7, 1, scoring.BoolValue(true))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 10, second.Score)
	assert.Len(t, store.answers, 1)
}

func TestPostAnswerScoresDateAgainstInjectedClock(t *testing.T) {
	svc, store, _ := newTestFlow(t)
	months := 12
	store.questions = append(store.questions, models.Question{
		ID: 4, ObjectiveID: 2, Label: "Date of last audit?",
		AnswerType: models.AnswerTypeDate, QuestionType: models.QuestionTypeNonBinary,
		MonthsBeforeVerification: &months,
	})
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }

	answer, err := svc.PostAnswer(1, 7, 4, scoring.DateValue(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	assert.Equal(t, 10, answer.Score)
	assert.True(t, answer.IsDynamic)
	require.NotNil(t, answer.ExpiresAt)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), *answer.ExpiresAt)
}

func TestGetNextQuestionWalksCatalogInOrder(t *testing.T) {
	svc, _, _ := newTestFlow(t)

	next, err := svc.GetNextQuestion(1, 7)
	require.NoError(t, err)
	assert.Equal(t, uint(1), next.ID)

	_, err = svc.PostAnswer(1, 7, 1, scoring.BoolValue(true))
	require.NoError(t, err)

	next, err = svc.GetNextQuestion(1, 7)
	require.NoError(t, err)
	assert.Equal(t, uint(2), next.ID)
}

func TestGetNextQuestionSkipsEssentialOnlyForImportantEntity(t *testing.T) {
	svc, store, _ := newTestFlow(t)
	store.evaluations[1].EntityType = models.EntityTypeImportant

	_, err := svc.PostAnswer(1, 7, 1, scoring.BoolValue(true))
	require.NoError(t, err)
	_, err = svc.PostAnswer(1, 7, 2, scoring.IntValue(4))
	require.NoError(t, err)

	// Question 3 is not flagged for important entities
	_, err = svc.GetNextQuestion(1, 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetNextQuestionDependencyGate(t *testing.T) {
	svc, store, _ := newTestFlow(t)
	parentID := uint(3)
	minScore := 8
	store.questions = append(store.questions, models.Question{
		ID: 4, ObjectiveID: 2, Label: "Which patching tool is used?",
		AnswerType: models.AnswerTypeText, QuestionType: models.QuestionTypeNonBinary,
		IsDependent: true, ParentQuestionID: &parentID, MinScore: &minScore,
	})

	_, err := svc.PostAnswer(1, 7, 1, scoring.BoolValue(true))
	require.NoError(t, err)
	_, err = svc.PostAnswer(1, 7, 2, scoring.IntValue(4))
	require.NoError(t, err)
	_, err = svc.PostAnswer(1, 7, 3, scoring.BoolValue(false))
	require.NoError(t, err)

	// Parent scored 0, below the gate of 8: the dependent question is skipped
	_, err = svc.GetNextQuestion(1, 7)
	assert.ErrorIs(t, err, ErrNotFound)

	// Re-answer the parent positively and the gate opens
	_, err = svc.PostAnswer(1, 7, 3, scoring.BoolValue(true))
	require.NoError(t, err)
	next, err := svc.GetNextQuestion(1, 7)
	require.NoError(t, err)
	assert.Equal(t, uint(4), next.ID)
}

func TestGetNextQuestionSkipsUnansweredParent(t *testing.T) {
	svc, store, _ := newTestFlow(t)
	parentID := uint(2)
	store.questions = []models.Question{
		{ID: 1, ObjectiveID: 1, Label: "root", AnswerType: models.AnswerTypeBoolean, QuestionType: models.QuestionTypeBinary, AppliesToImportantEntity: true},
		{ID: 5, ObjectiveID: 2, Label: "dependent", AnswerType: models.AnswerTypeText, QuestionType: models.QuestionTypeNonBinary, IsDependent: true, ParentQuestionID: &parentID},
	}

	_, err := svc.PostAnswer(1, 7, 1, scoring.BoolValue(true))
	require.NoError(t, err)

	// Parent never answered, so the dependent question never surfaces
	_, err = svc.GetNextQuestion(1, 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetCurrentInfo(t *testing.T) {
	svc, _, _ := newTestFlow(t)

	info, err := svc.GetCurrentInfo(1, 7)
	require.NoError(t, err)
	assert.Equal(t, uint(1), info.EvaluationID)
	assert.Equal(t, uint(1), info.ObjectiveID)
	assert.Equal(t, "Governance", info.ObjectiveName)
	assert.Equal(t, "Organization", info.AxeName)
}

func TestGetCurrentInfoMissingObjective(t *testing.T) {
	svc, store, _ := newTestFlow(t)
	store.evaluations[1].CurrentObjectiveID = 42

	_, err := svc.GetCurrentInfo(1, 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFinalizeObjectiveAdvances(t *testing.T) {
	svc, store, _ := newTestFlow(t)

	info, err := svc.FinalizeObjective(1, 7)
	require.NoError(t, err)
	assert.Equal(t, uint(2), info.ObjectiveID)
	assert.Equal(t, "Patching", info.ObjectiveName)
	assert.Equal(t, uint(2), store.evaluations[1].CurrentObjectiveID)
}

func TestFinalizeObjectiveCompletionNotifies(t *testing.T) {
	svc, store, notifier := newTestFlow(t)
	store.evaluations[1].CurrentObjectiveID = 2

	_, err := svc.FinalizeObjective(1, 7)
	assert.ErrorIs(t, err, ErrNotFound)

	select {
	case id := <-notifier.completed:
		assert.Equal(t, uint(1), id)
	case <-time.After(time.Second):
		t.Fatal("expected completion notification")
	}
}

func TestVerifyNextObjective(t *testing.T) {
	svc, store, _ := newTestFlow(t)

	// Next question is still in objective 1: no transition
	transition, err := svc.VerifyNextObjective(1, 7)
	require.NoError(t, err)
	assert.False(t, transition.Changed)

	_, err = svc.PostAnswer(1, 7, 1, scoring.BoolValue(true))
	require.NoError(t, err)
	_, err = svc.PostAnswer(1, 7, 2, scoring.IntValue(4))
	require.NoError(t, err)

	// Next question belongs to objective 2: cursor follows
	transition, err = svc.VerifyNextObjective(1, 7)
	require.NoError(t, err)
	assert.True(t, transition.Changed)
	require.NotNil(t, transition.ObjectiveID)
	assert.Equal(t, uint(2), *transition.ObjectiveID)
	assert.Equal(t, uint(2), store.evaluations[1].CurrentObjectiveID)
}

func TestVerifyNextObjectiveEndOfCatalog(t *testing.T) {
	svc, _, _ := newTestFlow(t)

	for _, submit := range []func() (*models.Answer, error){
		func() (*models.Answer, error) { return svc.PostAnswer(1, 7, 1, scoring.BoolValue(true)) },
		func() (*models.Answer, error) { return svc.PostAnswer(1, 7, 2, scoring.IntValue(4)) },
		func() (*models.Answer, error) { return svc.PostAnswer(1, 7, 3, scoring.BoolValue(true)) },
	} {
		_, err := submit()
		require.NoError(t, err)
	}

	transition, err := svc.VerifyNextObjective(1, 7)
	require.NoError(t, err)
	assert.False(t, transition.Changed)
}

func TestGetAnsweredDetailsGroupsByObjective(t *testing.T) {
	svc, _, _ := newTestFlow(t)

	_, err := svc.PostAnswer(1, 7, 1, scoring.BoolValue(true))
	require.NoError(t, err)
	_, err = svc.PostAnswer(1, 7, 2, scoring.IntValue(2))
	require.NoError(t, err)
	_, err = svc.PostAnswer(1, 7, 3, scoring.BoolValue(false))
	require.NoError(t, err)

	details, err := svc.GetAnsweredDetails(1, 7)
	require.NoError(t, err)
	require.Len(t, details.Objectives, 2)

	governance := details.Objectives[0]
	assert.Equal(t, uint(1), governance.ObjectiveID)
	require.Len(t, governance.Questions, 2)
	require.NotNil(t, governance.MinResponseScore)
	assert.Equal(t, 5, *governance.MinResponseScore)

	// Each entry carries the question's metadata and the stored answer
	policy := governance.Questions[0]
	assert.Equal(t, uint(1), policy.QuestionID)
	assert.Equal(t, "Is a security policy in place?", policy.Label)
	require.NotNil(t, policy.MeasureName)
	assert.Equal(t, "Security policy", *policy.MeasureName)
	assert.Equal(t, models.QuestionTypeBinary, policy.QuestionType)
	assert.True(t, policy.AppliesToImportantEntity)
	assert.False(t, policy.IsDependent)
	assert.NotZero(t, policy.AnswerID)
	require.NotNil(t, policy.BooleanValue)
	assert.True(t, *policy.BooleanValue)
	assert.False(t, policy.IsDynamic)
	assert.Nil(t, policy.ExpiresAt)

	inventory := governance.Questions[1]
	require.NotNil(t, inventory.IntegerValue)
	assert.Equal(t, 2, *inventory.IntegerValue)
	assert.Equal(t, 5, inventory.Score)

	patching := details.Objectives[1]
	assert.Equal(t, uint(2), patching.ObjectiveID)
	require.NotNil(t, patching.MinResponseScore)
	assert.Equal(t, 0, *patching.MinResponseScore)
	require.Len(t, patching.Questions, 1)
	require.NotNil(t, patching.Questions[0].Recommendation)
	assert.Equal(t, "Automate patch deployment", *patching.Questions[0].Recommendation)
	require.NotNil(t, patching.Questions[0].BooleanValue)
	assert.False(t, *patching.Questions[0].BooleanValue)
}

func TestGetAnsweredDetailsEmpty(t *testing.T) {
	svc, _, _ := newTestFlow(t)

	details, err := svc.GetAnsweredDetails(1, 7)
	require.NoError(t, err)
	assert.Empty(t, details.Objectives)
}

func TestDeleteAnswerScopedToOwner(t *testing.T) {
	svc, store, _ := newTestFlow(t)

	answer, err := svc.PostAnswer(1, 7, 1, scoring.BoolValue(true))
	require.NoError(t, err)

	err = svc.DeleteAnswer(answer.ID, 8)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.DeleteAnswer(answer.ID, 7)
	require.NoError(t, err)
	assert.Empty(t, store.answers)
}
