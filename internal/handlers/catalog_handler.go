package handlers

import (
	"encoding/json"
	"net/http"

	"secueval/internal/models"
	"secueval/internal/service"
)

// CatalogHandler handles question catalog HTTP requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// Axes

// CreateAxe creates a security axe
// @Summary Create axe
// @Tags Catalog
// @Accept json
// @Produce json
// @Param axe body models.Axe true "Axe payload"
// @Success 201 {object} models.Axe
// @Failure 400 {object} map[string]string "Invalid payload"
// @Router /axes [post]
func (h *CatalogHandler) CreateAxe(w http.ResponseWriter, r *http.Request) {
	var axe models.Axe
	if err := json.NewDecoder(r.Body).Decode(&axe); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.catalogService.CreateAxe(&axe); err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	JSONResponse(w, axe)
}

// GetAxes lists all axes
// @Summary List axes
// @Tags Catalog
// @Produce json
// @Success 200 {array} models.Axe
// @Router /axes [get]
func (h *CatalogHandler) GetAxes(w http.ResponseWriter, r *http.Request) {
	axes, err := h.catalogService.GetAllAxes()
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	JSONResponse(w, axes)
}

// GetAxe returns one axe
// @Summary Get axe
// @Tags Catalog
// @Produce json
// @Param id path int true "Axe ID"
// @Success 200 {object} models.Axe
// @Failure 404 {object} map[string]string "Axe not found"
// @Router /axes/{id} [get]
func (h *CatalogHandler) GetAxe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	axe, err := h.catalogService.GetAxe(id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	JSONResponse(w, axe)
}

// UpdateAxe updates an axe
// @Summary Update axe
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path int true "Axe ID"
// @Param axe body models.Axe true "Axe payload"
// @Success 200 {object} models.Axe
// @Failure 404 {object} map[string]string "Axe not found"
// @Router /axes/{id} [put]
func (h *CatalogHandler) UpdateAxe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var axe models.Axe
	if err := json.NewDecoder(r.Body).Decode(&axe); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	axe.ID = id

	if err := h.catalogService.UpdateAxe(&axe); err != nil {
		handleServiceError(w, r, err)
		return
	}
	JSONResponse(w, axe)
}

// DeleteAxe removes an axe
// @Summary Delete axe
// @Tags Catalog
// @Param id path int true "Axe ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Axe not found"
// @Router /axes/{id} [delete]
func (h *CatalogHandler) DeleteAxe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.catalogService.DeleteAxe(id); err != nil {
		handleServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Objectives

// CreateObjective creates an objective
// @Summary Create objective
// @Tags Catalog
// @Accept json
// @Produce json
// @Param objective body models.Objective true "Objective payload"
// @Success 201 {object} models.Objective
// @Failure 400 {object} map[string]string "Invalid payload"
// @Router /objectives [post]
func (h *CatalogHandler) CreateObjective(w http.ResponseWriter, r *http.Request) {
	var objective models.Objective
	if err := json.NewDecoder(r.Body).Decode(&objective); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.catalogService.CreateObjective(&objective); err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	JSONResponse(w, objective)
}

// GetObjectives lists all objectives
// @Summary List objectives
// @Tags Catalog
// @Produce json
// @Success 200 {array} models.Objective
// @Router /objectives [get]
func (h *CatalogHandler) GetObjectives(w http.ResponseWriter, r *http.Request) {
	objectives, err := h.catalogService.GetAllObjectives()
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	JSONResponse(w, objectives)
}

// GetObjective returns one objective
// @Summary Get objective
// @Tags Catalog
// @Produce json
// @Param id path int true "Objective ID"
// @Success 200 {object} models.Objective
// @Failure 404 {object} map[string]string "Objective not found"
// @Router /objectives/{id} [get]
func (h *CatalogHandler) GetObjective(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	objective, err := h.catalogService.GetObjective(id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	JSONResponse(w, objective)
}

// GetAxeObjectives lists the objectives of an axe
// @Summary List objectives of an axe
// @Tags Catalog
// @Produce json
// @Param id path int true "Axe ID"
// @Success 200 {array} models.Objective
// @Failure 404 {object} map[string]string "Axe not found"
// @Router /axes/{id}/objectives [get]
func (h *CatalogHandler) GetAxeObjectives(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	objectives, err := h.catalogService.GetObjectivesByAxe(id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	JSONResponse(w, objectives)
}

// UpdateObjective updates an objective
// @Summary Update objective
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path int true "Objective ID"
// @Param objective body models.Objective true "Objective payload"
// @Success 200 {object} models.Objective
// @Failure 404 {object} map[string]string "Objective not found"
// @Router /objectives/{id} [put]
func (h *CatalogHandler) UpdateObjective(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var objective models.Objective
	if err := json.NewDecoder(r.Body).Decode(&objective); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	objective.ID = id

	if err := h.catalogService.UpdateObjective(&objective); err != nil {
		handleServiceError(w, r, err)
		return
	}
	JSONResponse(w, objective)
}

// DeleteObjective removes an objective
// @Summary Delete objective
// @Tags Catalog
// @Param id path int true "Objective ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Objective not found"
// @Router /objectives/{id} [delete]
func (h *CatalogHandler) DeleteObjective(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.catalogService.DeleteObjective(id); err != nil {
		handleServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Questions

// CreateQuestion creates a question
// @Summary Create question
// @Tags Catalog
// @Accept json
// @Produce json
// @Param question body models.Question true "Question payload"
// @Success 201 {object} models.Question
// @Failure 400 {object} map[string]string "Invalid payload"
// @Router /questions [post]
func (h *CatalogHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var question models.Question
	if err := json.NewDecoder(r.Body).Decode(&question); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.catalogService.CreateQuestion(&question); err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	JSONResponse(w, question)
}

// GetQuestions lists all questions
// @Summary List questions
// @Tags Catalog
// @Produce json
// @Success 200 {array} models.Question
// @Router /questions [get]
func (h *CatalogHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.catalogService.GetAllQuestions()
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	JSONResponse(w, questions)
}

// GetQuestion returns one question
// @Summary Get question
// @Tags Catalog
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} models.Question
// @Failure 404 {object} map[string]string "Question not found"
// @Router /questions/{id} [get]
func (h *CatalogHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	question, err := h.catalogService.GetQuestion(id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	JSONResponse(w, question)
}

// GetObjectiveQuestions lists the questions of an objective
// @Summary List questions of an objective
// @Tags Catalog
// @Produce json
// @Param id path int true "Objective ID"
// @Success 200 {array} models.Question
// @Failure 404 {object} map[string]string "Objective not found"
// @Router /objectives/{id}/questions [get]
func (h *CatalogHandler) GetObjectiveQuestions(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	questions, err := h.catalogService.GetQuestionsByObjective(id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	JSONResponse(w, questions)
}

// UpdateQuestion updates a question
// @Summary Update question
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param question body models.Question true "Question payload"
// @Success 200 {object} models.Question
// @Failure 404 {object} map[string]string "Question not found"
// @Router /questions/{id} [put]
func (h *CatalogHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var question models.Question
	if err := json.NewDecoder(r.Body).Decode(&question); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	question.ID = id

	if err := h.catalogService.UpdateQuestion(&question); err != nil {
		handleServiceError(w, r, err)
		return
	}
	JSONResponse(w, question)
}

// DeleteQuestion removes a question
// @Summary Delete question
// @Tags Catalog
// @Param id path int true "Question ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Question not found"
// @Router /questions/{id} [delete]
func (h *CatalogHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.catalogService.DeleteQuestion(id); err != nil {
		handleServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
