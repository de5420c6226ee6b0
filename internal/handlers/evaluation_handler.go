package handlers

import (
	"encoding/json"
	"net/http"

	"secueval/internal/service"
)

// EvaluationHandler handles evaluation HTTP requests
type EvaluationHandler struct {
	evaluationService *service.EvaluationService
}

// NewEvaluationHandler creates a new evaluation handler
func NewEvaluationHandler(evaluationService *service.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{evaluationService: evaluationService}
}

// CreateEvaluation opens a new evaluation
// @Summary Create evaluation
// @Description Open a new evaluation for an entity, positioned on the first objective
// @Tags Evaluations
// @Accept json
// @Produce json
// @Param evaluation body service.CreateEvaluationRequest true "Evaluation payload"
// @Success 201 {object} models.Evaluation
// @Failure 400 {object} map[string]string "Invalid payload"
// @Router /evaluations [post]
func (h *EvaluationHandler) CreateEvaluation(w http.ResponseWriter, r *http.Request) {
	var req service.CreateEvaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	evaluation, err := h.evaluationService.CreateEvaluation(req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	JSONResponse(w, evaluation)
}

// GetEvaluation returns one evaluation
// @Summary Get evaluation
// @Description Return an evaluation owned by the given user
// @Tags Evaluations
// @Produce json
// @Param id path int true "Evaluation ID"
// @Param user_id query int true "User ID"
// @Success 200 {object} models.Evaluation
// @Failure 404 {object} map[string]string "Evaluation not found"
// @Router /evaluations/{id} [get]
func (h *EvaluationHandler) GetEvaluation(w http.ResponseWriter, r *http.Request) {
	id, userID, ok := h.params(w, r)
	if !ok {
		return
	}

	evaluation, err := h.evaluationService.GetEvaluation(id, userID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	JSONResponse(w, evaluation)
}

// GetUserEvaluations returns all evaluations of a user
// @Summary List user evaluations
// @Description Return all evaluations of a user, most recently modified first
// @Tags Evaluations
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} models.Evaluation
// @Router /users/{userId}/evaluations [get]
func (h *EvaluationHandler) GetUserEvaluations(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	evaluations, err := h.evaluationService.GetUserEvaluations(userID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	JSONResponse(w, evaluations)
}

// UpdateEvaluation updates an evaluation's entity fields
// @Summary Update evaluation
// @Description Update an evaluation's entity name, category and system count
// @Tags Evaluations
// @Accept json
// @Produce json
// @Param id path int true "Evaluation ID"
// @Param user_id query int true "User ID"
// @Param evaluation body service.UpdateEvaluationRequest true "Evaluation payload"
// @Success 200 {object} models.Evaluation
// @Failure 400 {object} map[string]string "Invalid payload"
// @Failure 404 {object} map[string]string "Evaluation not found"
// @Router /evaluations/{id} [put]
func (h *EvaluationHandler) UpdateEvaluation(w http.ResponseWriter, r *http.Request) {
	id, userID, ok := h.params(w, r)
	if !ok {
		return
	}

	var req service.UpdateEvaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	evaluation, err := h.evaluationService.UpdateEvaluation(id, userID, req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	JSONResponse(w, evaluation)
}

// DeleteEvaluation removes an evaluation
// @Summary Delete evaluation
// @Description Remove an evaluation and all its answers
// @Tags Evaluations
// @Param id path int true "Evaluation ID"
// @Param user_id query int true "User ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Evaluation not found"
// @Router /evaluations/{id} [delete]
func (h *EvaluationHandler) DeleteEvaluation(w http.ResponseWriter, r *http.Request) {
	id, userID, ok := h.params(w, r)
	if !ok {
		return
	}

	if err := h.evaluationService.DeleteEvaluation(id, userID); err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetDashboard returns progress summaries for a user's evaluations
// @Summary Get dashboard
// @Description Return progress and conformity counts for all of a user's evaluations
// @Tags Dashboard
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} models.DashboardEntry
// @Router /users/{userId}/dashboard [get]
func (h *EvaluationHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entries, err := h.evaluationService.GetDashboard(userID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	JSONResponse(w, entries)
}

func (h *EvaluationHandler) params(w http.ResponseWriter, r *http.Request) (id, userID uint, ok bool) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return 0, 0, false
	}
	userID, err = queryUserID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return 0, 0, false
	}
	return id, userID, true
}
