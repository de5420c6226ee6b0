package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"secueval/internal/service"
)

// pathID parses a uint path parameter
func pathID(r *http.Request, name string) (uint, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return uint(id), nil
}

// queryUserID parses the user_id query parameter that scopes flow requests
func queryUserID(r *http.Request) (uint, error) {
	raw := r.URL.Query().Get("user_id")
	if raw == "" {
		return 0, errors.New("user_id is required")
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errors.New("invalid user_id")
	}
	return uint(id), nil
}

// handleServiceError translates service errors into HTTP status codes
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *service.ValidationError
	switch {
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &validationErr):
		http.Error(w, validationErr.Message, http.StatusBadRequest)
	default:
		slog.Error("Request handling failed", "method", r.Method, "path", r.URL.Path, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
