package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"warehouse-picker-service/internal/api/dto"
	"warehouse-picker-service/internal/domain"
	"warehouse-picker-service/internal/platform/obs"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// allowMethod writes 405 and returns false when r does not use method.
func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	return false
}

// decodeBody reads exactly one JSON object into v and validates it.
// On failure the 400 response has already been written.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	if err := validate.Struct(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request: "+err.Error())
		return false
	}
	return true
}

// writeDomainError maps service errors to HTTP statuses.
func writeDomainError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		writeError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrDuplicateItem):
		writeError(w, r, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrTooFewItems):
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
	default:
		log.Printf("req_id=%s %s failed: %v", obs.RequestID(r.Context()), op, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

func toLocationResponse(l *domain.Location) dto.LocationResponse {
	return dto.LocationResponse{
		Name:    l.Name,
		X:       l.X,
		Y:       l.Y,
		Display: l.String(),
	}
}
