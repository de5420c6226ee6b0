package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secueval/internal/models"
)

type fakeEvaluationRepo struct {
	evaluations map[uint]*models.Evaluation
	nextID      uint
}

func newFakeEvaluationRepo() *fakeEvaluationRepo {
	return &fakeEvaluationRepo{evaluations: make(map[uint]*models.Evaluation)}
}

func (f *fakeEvaluationRepo) Create(e *models.Evaluation) error {
	f.nextID++
	e.ID = f.nextID
	copied := *e
	f.evaluations[e.ID] = &copied
	return nil
}

func (f *fakeEvaluationRepo) GetByIDAndUser(id, userID uint) (*models.Evaluation, error) {
	e, ok := f.evaluations[id]
	if !ok || e.UserID != userID {
		return nil, nil
	}
	copied := *e
	return &copied, nil
}

func (f *fakeEvaluationRepo) GetAllByUser(userID uint) ([]models.Evaluation, error) {
	var out []models.Evaluation
	for _, e := range f.evaluations {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEvaluationRepo) Update(e *models.Evaluation) error {
	copied := *e
	f.evaluations[e.ID] = &copied
	return nil
}

func (f *fakeEvaluationRepo) Delete(id, userID uint) (bool, error) {
	e, ok := f.evaluations[id]
	if !ok || e.UserID != userID {
		return false, nil
	}
	delete(f.evaluations, id)
	return true, nil
}

func (f *fakeEvaluationRepo) Dashboard(userID uint) ([]models.DashboardEntry, error) {
	return nil, nil
}

func TestCreateEvaluationMapsEntityCategory(t *testing.T) {
	svc := NewEvaluationService(newFakeEvaluationRepo())

	evaluation, err := svc.CreateEvaluation(CreateEvaluationRequest{
		UserID: 7, EntityName: "Acme", EntityCategory: "essential", SICount: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, models.EntityTypeEssential, evaluation.EntityType)
	assert.Equal(t, uint(1), evaluation.CurrentObjectiveID)

	evaluation, err = svc.CreateEvaluation(CreateEvaluationRequest{
		UserID: 7, EntityName: "Beta", EntityCategory: "important", SICount: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, models.EntityTypeImportant, evaluation.EntityType)
}

func TestCreateEvaluationRejectsBadInput(t *testing.T) {
	svc := NewEvaluationService(newFakeEvaluationRepo())
	var vErr *ValidationError

	_, err := svc.CreateEvaluation(CreateEvaluationRequest{UserID: 7, EntityName: "Acme", EntityCategory: "municipal"})
	assert.ErrorAs(t, err, &vErr)

	_, err = svc.CreateEvaluation(CreateEvaluationRequest{UserID: 7, EntityCategory: "essential"})
	assert.ErrorAs(t, err, &vErr)

	_, err = svc.CreateEvaluation(CreateEvaluationRequest{UserID: 7, EntityName: "Acme", EntityCategory: "essential", SICount: -1})
	assert.ErrorAs(t, err, &vErr)
}

func TestDeleteEvaluationScopedToOwner(t *testing.T) {
	repo := newFakeEvaluationRepo()
	svc := NewEvaluationService(repo)

	evaluation, err := svc.CreateEvaluation(CreateEvaluationRequest{
		UserID: 7, EntityName: "Acme", EntityCategory: "essential",
	})
	require.NoError(t, err)

	err = svc.DeleteEvaluation(evaluation.ID, 8)
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.DeleteEvaluation(evaluation.ID, 7)
	require.NoError(t, err)
	assert.Empty(t, repo.evaluations)
}
