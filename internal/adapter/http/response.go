package http

import (
	"encoding/json"
	"net/http"

	"pizza-delivery/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func respondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

// respondDomainError maps the error taxonomy to HTTP status codes. Storage
// and internal error text never reaches clients.
func respondDomainError(w http.ResponseWriter, err error) {
	kind := domain.KindOf(err)
	code := domain.CodeOf(err)

	var status int
	message := err.Error()

	switch kind {
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindValidation, domain.KindState:
		status = http.StatusBadRequest
	case domain.KindConflict:
		status = http.StatusConflict
	case domain.KindUnavailable:
		status = http.StatusServiceUnavailable
		message = "service temporarily unavailable"
	default:
		status = http.StatusInternalServerError
		message = "internal server error"
	}

	respondJSON(w, status, ErrorResponse{Error: message, Code: code})
}
