package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"secueval/internal/scoring"
	"secueval/internal/service"
)

// FlowHandler handles the evaluation flow HTTP requests
type FlowHandler struct {
	flowService *service.FlowService
}

// NewFlowHandler creates a new flow handler
func NewFlowHandler(flowService *service.FlowService) *FlowHandler {
	return &FlowHandler{flowService: flowService}
}

// PostAnswerRequest carries a submitted answer. Exactly one value field must
// be set, matching the question's answer type. Dates use YYYY-MM-DD.
type PostAnswerRequest struct {
	EvaluationID uint    `json:"evaluation_id"`
	UserID       uint    `json:"user_id"`
	QuestionID   uint    `json:"question_id"`
	BooleanValue *bool   `json:"boolean_value,omitempty"`
	IntegerValue *int    `json:"integer_value,omitempty"`
	TextValue    *string `json:"text_value,omitempty"`
	DateValue    *string `json:"date_value,omitempty"`
}

// value converts the request payload into its typed answer value
func (req *PostAnswerRequest) value() (scoring.Value, error) {
	var values []scoring.Value
	if req.BooleanValue != nil {
		values = append(values, scoring.BoolValue(*req.BooleanValue))
	}
	if req.IntegerValue != nil {
		values = append(values, scoring.IntValue(*req.IntegerValue))
	}
	if req.TextValue != nil {
		values = append(values, scoring.TextValue(*req.TextValue))
	}
	if req.DateValue != nil {
		date, err := time.Parse("2006-01-02", *req.DateValue)
		if err != nil {
			return nil, service.NewValidationError("date_value must be formatted as YYYY-MM-DD")
		}
		values = append(values, scoring.DateValue(date))
	}

	if len(values) != 1 {
		return nil, service.NewValidationError("exactly one of boolean_value, integer_value, text_value, date_value must be set")
	}
	return values[0], nil
}

// PostAnswer scores and stores an answer
// @Summary Submit an answer
// @Description Score a submitted value against its question and store the answer. Resubmitting replaces the previous answer.
// @Tags Flow
// @Accept json
// @Produce json
// @Param answer body PostAnswerRequest true "Answer payload"
// @Success 201 {object} models.Answer
// @Failure 400 {object} map[string]string "Invalid payload"
// @Failure 404 {object} map[string]string "Evaluation or question not found"
// @Router /answers [post]
func (h *FlowHandler) PostAnswer(w http.ResponseWriter, r *http.Request) {
	var req PostAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	value, err := req.value()
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	answer, err := h.flowService.PostAnswer(req.EvaluationID, req.UserID, req.QuestionID, value)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	JSONResponse(w, answer)
}

// GetNextQuestion returns the next unanswered eligible question
// @Summary Get next question
// @Description Return the first unanswered question the evaluation's entity is eligible for
// @Tags Flow
// @Produce json
// @Param evaluationId path int true "Evaluation ID"
// @Param user_id query int true "User ID"
// @Success 200 {object} models.Question
// @Failure 404 {object} map[string]string "No next question"
// @Router /evaluations/{evaluationId}/next-question [get]
func (h *FlowHandler) GetNextQuestion(w http.ResponseWriter, r *http.Request) {
	evaluationID, userID, ok := h.flowParams(w, r)
	if !ok {
		return
	}

	question, err := h.flowService.GetNextQuestion(evaluationID, userID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	JSONResponse(w, question)
}

// GetCurrentInfo returns the objective the evaluation is positioned on
// @Summary Get current objective info
// @Description Return the evaluation's current objective with its axe
// @Tags Flow
// @Produce json
// @Param evaluationId path int true "Evaluation ID"
// @Param user_id query int true "User ID"
// @Success 200 {object} models.CurrentInfo
// @Failure 404 {object} map[string]string "Evaluation or objective not found"
// @Router /evaluations/{evaluationId}/current-info [get]
func (h *FlowHandler) GetCurrentInfo(w http.ResponseWriter, r *http.Request) {
	evaluationID, userID, ok := h.flowParams(w, r)
	if !ok {
		return
	}

	info, err := h.flowService.GetCurrentInfo(evaluationID, userID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	JSONResponse(w, info)
}

// FinalizeObjective moves the evaluation to the next objective
// @Summary Finalize current objective
// @Description Move the evaluation's cursor to the next objective. Returns 404 when the evaluation is complete.
// @Tags Flow
// @Produce json
// @Param evaluationId path int true "Evaluation ID"
// @Param user_id query int true "User ID"
// @Success 200 {object} models.CurrentInfo
// @Failure 404 {object} map[string]string "No next objective"
// @Router /evaluations/{evaluationId}/finalize-objective [post]
func (h *FlowHandler) FinalizeObjective(w http.ResponseWriter, r *http.Request) {
	evaluationID, userID, ok := h.flowParams(w, r)
	if !ok {
		return
	}

	info, err := h.flowService.FinalizeObjective(evaluationID, userID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	JSONResponse(w, info)
}

// VerifyNextObjective syncs the cursor with the next question's objective
// @Summary Verify next objective
// @Description Check whether the next question belongs to a different objective and move the cursor there if so
// @Tags Flow
// @Produce json
// @Param evaluationId path int true "Evaluation ID"
// @Param user_id query int true "User ID"
// @Success 200 {object} models.ObjectiveTransition
// @Failure 404 {object} map[string]string "Evaluation not found"
// @Router /evaluations/{evaluationId}/verify-next-objective [get]
func (h *FlowHandler) VerifyNextObjective(w http.ResponseWriter, r *http.Request) {
	evaluationID, userID, ok := h.flowParams(w, r)
	if !ok {
		return
	}

	transition, err := h.flowService.VerifyNextObjective(evaluationID, userID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	JSONResponse(w, transition)
}

// GetAnsweredDetails returns every answered question grouped by objective
// @Summary Get answered details
// @Description Return all answered questions of an evaluation grouped by objective, with each objective's lowest score
// @Tags Flow
// @Produce json
// @Param evaluationId path int true "Evaluation ID"
// @Param user_id query int true "User ID"
// @Success 200 {object} models.EvaluationDetails
// @Failure 404 {object} map[string]string "Evaluation not found"
// @Router /evaluations/{evaluationId}/answered-details [get]
func (h *FlowHandler) GetAnsweredDetails(w http.ResponseWriter, r *http.Request) {
	evaluationID, userID, ok := h.flowParams(w, r)
	if !ok {
		return
	}

	details, err := h.flowService.GetAnsweredDetails(evaluationID, userID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	JSONResponse(w, details)
}

// GetEvaluationAnswers returns all answers of an evaluation
// @Summary List evaluation answers
// @Description Return all answers of an evaluation in question order
// @Tags Answers
// @Produce json
// @Param evaluationId path int true "Evaluation ID"
// @Param user_id query int true "User ID"
// @Success 200 {array} models.Answer
// @Failure 404 {object} map[string]string "Evaluation not found"
// @Router /evaluations/{evaluationId}/answers [get]
func (h *FlowHandler) GetEvaluationAnswers(w http.ResponseWriter, r *http.Request) {
	evaluationID, userID, ok := h.flowParams(w, r)
	if !ok {
		return
	}

	answers, err := h.flowService.GetEvaluationAnswers(evaluationID, userID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	JSONResponse(w, answers)
}

// GetAnswer returns a single answer
// @Summary Get answer
// @Description Return one answer by ID
// @Tags Answers
// @Produce json
// @Param id path int true "Answer ID"
// @Param user_id query int true "User ID"
// @Success 200 {object} models.Answer
// @Failure 404 {object} map[string]string "Answer not found"
// @Router /answers/{id} [get]
func (h *FlowHandler) GetAnswer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	userID, err := queryUserID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	answer, err := h.flowService.GetAnswer(id, userID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	JSONResponse(w, answer)
}

// DeleteAnswer removes an answer
// @Summary Delete answer
// @Description Remove an answer by ID
// @Tags Answers
// @Param id path int true "Answer ID"
// @Param user_id query int true "User ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Answer not found"
// @Router /answers/{id} [delete]
func (h *FlowHandler) DeleteAnswer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	userID, err := queryUserID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.flowService.DeleteAnswer(id, userID); err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// flowParams parses the evaluation ID path parameter and user_id query
// parameter shared by all flow endpoints
func (h *FlowHandler) flowParams(w http.ResponseWriter, r *http.Request) (evaluationID, userID uint, ok bool) {
	evaluationID, err := pathID(r, "evaluationId")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return 0, 0, false
	}
	userID, err = queryUserID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return 0, 0, false
	}
	return evaluationID, userID, true
}
