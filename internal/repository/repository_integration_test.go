package repository_test

import (
	"testing"
	"time"

	"secueval/internal/models"
	"secueval/internal/repository"
	"secueval/internal/testutil"
)

// TestAnswerUpsertReplacesPreviousAnswer verifies that resubmitting an answer
// for the same question overwrites the stored values instead of adding a row.
func TestAnswerUpsertReplacesPreviousAnswer(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	fixtures := testutil.SetupFixtures(t, containers.DB)
	evaluation := fixtures.CreateEvaluation(t, 1, "Test Hospital", models.EntityTypeEssential, 4)

	answers := repository.NewAnswerRepository(containers.DB)

	yes := true
	first := &models.Answer{
		EvaluationID: evaluation.ID,
		QuestionID:   fixtures.Questions[0].ID,
		UserID:       1,
		BooleanValue: &yes,
		Score:        10,
		Conformity:   models.ConformityCompliant,
	}
	if err := answers.Upsert(first); err != nil {
		t.Fatalf("Failed to insert answer: %v", err)
	}

	no := false
	second := &models.Answer{
		EvaluationID: evaluation.ID,
		QuestionID:   fixtures.Questions[0].ID,
		UserID:       1,
		BooleanValue: &no,
		Score:        0,
		Conformity:   models.ConformityNonCompliant,
	}
	if err := answers.Upsert(second); err != nil {
		t.Fatalf("Failed to upsert answer: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("Upsert should reuse the existing row, got id %d, want %d", second.ID, first.ID)
	}

	stored, err := answers.GetByEvaluationAndQuestion(evaluation.ID, fixtures.Questions[0].ID)
	if err != nil {
		t.Fatalf("Failed to load answer: %v", err)
	}
	if stored == nil {
		t.Fatal("Expected a stored answer, got nil")
	}
	if stored.Score != 0 || stored.Conformity != models.ConformityNonCompliant {
		t.Errorf("Expected overwritten score 0 / %s, got %d / %s",
			models.ConformityNonCompliant, stored.Score, stored.Conformity)
	}

	all, err := answers.GetByEvaluation(evaluation.ID)
	if err != nil {
		t.Fatalf("Failed to list answers: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("Expected a single answer row after resubmission, got %d", len(all))
	}
}

// TestCatalogDescriptionsDefaultEmpty verifies that rows created without a
// description still scan into the string-typed model fields.
func TestCatalogDescriptionsDefaultEmpty(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	axes := repository.NewAxeRepository(containers.DB)
	objectives := repository.NewObjectiveRepository(containers.DB)

	var axeID uint
	err := containers.DB.QueryRow(
		`INSERT INTO axes (name) VALUES ($1) RETURNING id`, "Resilience",
	).Scan(&axeID)
	if err != nil {
		t.Fatalf("Failed to insert axe: %v", err)
	}

	axe, err := axes.GetByID(axeID)
	if err != nil {
		t.Fatalf("Failed to load axe: %v", err)
	}
	if axe.Description != "" {
		t.Errorf("Expected empty description, got %q", axe.Description)
	}

	var objectiveID uint
	err = containers.DB.QueryRow(
		`INSERT INTO objectives (axe_id, name) VALUES ($1, $2) RETURNING id`, axeID, "Backups",
	).Scan(&objectiveID)
	if err != nil {
		t.Fatalf("Failed to insert objective: %v", err)
	}

	objective, err := objectives.GetByID(objectiveID)
	if err != nil {
		t.Fatalf("Failed to load objective: %v", err)
	}
	if objective.Description != "" {
		t.Errorf("Expected empty description, got %q", objective.Description)
	}
}

func TestLastAnsweredQuestionID(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	fixtures := testutil.SetupFixtures(t, containers.DB)
	evaluation := fixtures.CreateEvaluation(t, 1, "Test Hospital", models.EntityTypeEssential, 4)

	answers := repository.NewAnswerRepository(containers.DB)

	last, err := answers.LastAnsweredQuestionID(evaluation.ID)
	if err != nil {
		t.Fatalf("Failed to get last answered question: %v", err)
	}
	if last != 0 {
		t.Errorf("Expected 0 for an evaluation without answers, got %d", last)
	}

	yes := true
	for _, q := range fixtures.Questions[:2] {
		a := &models.Answer{
			EvaluationID: evaluation.ID,
			QuestionID:   q.ID,
			UserID:       1,
			BooleanValue: &yes,
			Score:        10,
			Conformity:   models.ConformityCompliant,
		}
		if err := answers.Upsert(a); err != nil {
			t.Fatalf("Failed to insert answer: %v", err)
		}
	}

	last, err = answers.LastAnsweredQuestionID(evaluation.ID)
	if err != nil {
		t.Fatalf("Failed to get last answered question: %v", err)
	}
	if last != fixtures.Questions[1].ID {
		t.Errorf("Expected last answered question %d, got %d", fixtures.Questions[1].ID, last)
	}
}

// TestListAnsweredDetailsCarriesQuestionAndAnswer verifies the details join
// returns the question's metadata alongside the stored answer values.
func TestListAnsweredDetailsCarriesQuestionAndAnswer(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	fixtures := testutil.SetupFixtures(t, containers.DB)
	evaluation := fixtures.CreateEvaluation(t, 1, "Test Hospital", models.EntityTypeEssential, 4)

	answers := repository.NewAnswerRepository(containers.DB)

	yes := true
	boolAnswer := &models.Answer{
		EvaluationID: evaluation.ID,
		QuestionID:   fixtures.Questions[0].ID,
		UserID:       1,
		BooleanValue: &yes,
		Score:        10,
		Conformity:   models.ConformityCompliant,
	}
	if err := answers.Upsert(boolAnswer); err != nil {
		t.Fatalf("Failed to insert answer: %v", err)
	}

	verified := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	expires := verified.AddDate(0, 12, 0)
	dateAnswer := &models.Answer{
		EvaluationID: evaluation.ID,
		QuestionID:   fixtures.Questions[3].ID,
		UserID:       1,
		DateValue:    &verified,
		Score:        10,
		Conformity:   models.ConformityCompliant,
		IsDynamic:    true,
		ExpiresAt:    &expires,
	}
	if err := answers.Upsert(dateAnswer); err != nil {
		t.Fatalf("Failed to insert answer: %v", err)
	}

	rows, err := answers.ListAnsweredDetails(evaluation.ID, 1)
	if err != nil {
		t.Fatalf("Failed to list answered details: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 detail rows, got %d", len(rows))
	}

	first := rows[0]
	if first.QuestionID != fixtures.Questions[0].ID {
		t.Errorf("Expected question %d first, got %d", fixtures.Questions[0].ID, first.QuestionID)
	}
	if first.Label != fixtures.Questions[0].Label {
		t.Errorf("Expected label %q, got %q", fixtures.Questions[0].Label, first.Label)
	}
	if first.MeasureName == nil || *first.MeasureName != "Risk analysis" {
		t.Errorf("Expected measure name %q, got %v", "Risk analysis", first.MeasureName)
	}
	if first.QuestionType != models.QuestionTypeBinary {
		t.Errorf("Expected question type %s, got %s", models.QuestionTypeBinary, first.QuestionType)
	}
	if !first.AppliesToImportantEntity {
		t.Error("Expected applies_to_important_entity to be carried through")
	}
	if first.AnswerID != boolAnswer.ID {
		t.Errorf("Expected answer id %d, got %d", boolAnswer.ID, first.AnswerID)
	}
	if first.BooleanValue == nil || !*first.BooleanValue {
		t.Errorf("Expected boolean value true, got %v", first.BooleanValue)
	}

	second := rows[1]
	if second.QuestionID != fixtures.Questions[3].ID {
		t.Errorf("Expected question %d second, got %d", fixtures.Questions[3].ID, second.QuestionID)
	}
	if second.MonthsBeforeVerification == nil || *second.MonthsBeforeVerification != 12 {
		t.Errorf("Expected verification window of 12 months, got %v", second.MonthsBeforeVerification)
	}
	if second.DateValue == nil || !second.DateValue.Equal(verified) {
		t.Errorf("Expected date value %v, got %v", verified, second.DateValue)
	}
	if !second.IsDynamic {
		t.Error("Expected a dynamic answer")
	}
	if second.ExpiresAt == nil || !second.ExpiresAt.Equal(expires) {
		t.Errorf("Expected expiry %v, got %v", expires, second.ExpiresAt)
	}
}

// TestAdvanceObjectiveCursor walks the cursor through all seeded objectives
// and verifies completion is reported once no objective remains.
func TestAdvanceObjectiveCursor(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	fixtures := testutil.SetupFixtures(t, containers.DB)
	evaluation := fixtures.CreateEvaluation(t, 1, "Test Hospital", models.EntityTypeEssential, 4)

	evaluations := repository.NewEvaluationRepository(containers.DB)

	for i := 1; i < len(fixtures.Objectives); i++ {
		next, err := evaluations.AdvanceObjectiveCursor(evaluation.ID, 1)
		if err != nil {
			t.Fatalf("Failed to advance cursor: %v", err)
		}
		if next == nil {
			t.Fatalf("Expected next objective after %d advances, got completion", i)
		}
		if *next != fixtures.Objectives[i].ID {
			t.Errorf("Expected cursor at objective %d, got %d", fixtures.Objectives[i].ID, *next)
		}
	}

	next, err := evaluations.AdvanceObjectiveCursor(evaluation.ID, 1)
	if err != nil {
		t.Fatalf("Failed to advance cursor past the last objective: %v", err)
	}
	if next != nil {
		t.Errorf("Expected completion after the last objective, got next objective %d", *next)
	}

	stored, err := evaluations.GetByIDAndUser(evaluation.ID, 1)
	if err != nil {
		t.Fatalf("Failed to load evaluation: %v", err)
	}
	lastID := fixtures.Objectives[len(fixtures.Objectives)-1].ID
	if stored.CurrentObjectiveID != lastID {
		t.Errorf("Cursor should stay at objective %d once complete, got %d", lastID, stored.CurrentObjectiveID)
	}
}

func TestAdvanceObjectiveCursorScopedToOwner(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	fixtures := testutil.SetupFixtures(t, containers.DB)
	evaluation := fixtures.CreateEvaluation(t, 1, "Test Hospital", models.EntityTypeEssential, 4)

	evaluations := repository.NewEvaluationRepository(containers.DB)

	if _, err := evaluations.AdvanceObjectiveCursor(evaluation.ID, 99); err == nil {
		t.Error("Expected an error when advancing another user's evaluation")
	}
}

// TestDashboard verifies the per-evaluation aggregate counts. The entity type
// decides which questions count towards the total: essential entities see the
// full catalog minus dependent questions, important entities only the flagged
// subset.
func TestDashboard(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	fixtures := testutil.SetupFixtures(t, containers.DB)
	evaluation := fixtures.CreateEvaluation(t, 1, "Test Hospital", models.EntityTypeEssential, 4)

	evaluations := repository.NewEvaluationRepository(containers.DB)
	answers := repository.NewAnswerRepository(containers.DB)

	yes := true
	no := false
	submitted := []*models.Answer{
		{
			EvaluationID: evaluation.ID,
			QuestionID:   fixtures.Questions[0].ID,
			UserID:       1,
			BooleanValue: &yes,
			Score:        10,
			Conformity:   models.ConformityCompliant,
		},
		{
			EvaluationID: evaluation.ID,
			QuestionID:   fixtures.Questions[1].ID,
			UserID:       1,
			IntegerValue: intPtr(2),
			Score:        5,
			Conformity:   models.ConformityPartiallyCompliant,
		},
		{
			EvaluationID: evaluation.ID,
			QuestionID:   fixtures.Questions[4].ID,
			UserID:       1,
			BooleanValue: &no,
			Score:        0,
			Conformity:   models.ConformityNonCompliant,
		},
	}
	for _, a := range submitted {
		if err := answers.Upsert(a); err != nil {
			t.Fatalf("Failed to insert answer: %v", err)
		}
	}

	entries, err := evaluations.Dashboard(1)
	if err != nil {
		t.Fatalf("Failed to load dashboard: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected one dashboard entry, got %d", len(entries))
	}

	entry := entries[0]
	if entry.EvaluationID != evaluation.ID {
		t.Errorf("Expected evaluation %d, got %d", evaluation.ID, entry.EvaluationID)
	}
	// The catalog seeds 5 questions, one of which is dependent. For an
	// essential entity only non-dependent questions not reserved for
	// important entities count: the text question is the only one.
	if entry.TotalCount != 1 {
		t.Errorf("Expected total of 1 for an essential entity, got %d", entry.TotalCount)
	}
	if entry.AnsweredCount != 3 {
		t.Errorf("Expected 3 answered questions, got %d", entry.AnsweredCount)
	}
	if entry.CompliantCount != 1 || entry.PartialCount != 1 || entry.NonCompliantCount != 1 {
		t.Errorf("Unexpected conformity counts: %d / %d / %d",
			entry.CompliantCount, entry.PartialCount, entry.NonCompliantCount)
	}
	if entry.ProgressPct == nil {
		t.Error("Expected a progress percentage, got nil")
	}
}

func TestDashboardImportantEntityDenominator(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	fixtures := testutil.SetupFixtures(t, containers.DB)
	evaluation := fixtures.CreateEvaluation(t, 2, "Regional Utility", models.EntityTypeImportant, 3)

	evaluations := repository.NewEvaluationRepository(containers.DB)

	entries, err := evaluations.Dashboard(2)
	if err != nil {
		t.Fatalf("Failed to load dashboard: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected one dashboard entry, got %d", len(entries))
	}

	// Important entities count the non-dependent questions flagged for them:
	// boolean, integer and date from the seeded catalog.
	if entries[0].TotalCount != 3 {
		t.Errorf("Expected total of 3 for an important entity, got %d", entries[0].TotalCount)
	}
	if entries[0].ProgressPct == nil || *entries[0].ProgressPct != 0 {
		t.Errorf("Expected 0%% progress without answers, got %v", entries[0].ProgressPct)
	}
	if entries[0].EvaluationID != evaluation.ID {
		t.Errorf("Expected evaluation %d, got %d", evaluation.ID, entries[0].EvaluationID)
	}
}

func intPtr(v int) *int {
	return &v
}
