package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/rfidcredits/internal/common"
)

// statusFor maps service and access errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrorUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrorForbidden):
		return http.StatusForbidden
	case errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrorInsufficientCredits):
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}

func (s *HTTPServer) respondJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error(r.Context(), "encode response", "error", err)
	}
}

func (s *HTTPServer) respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	s.respondJSON(w, r, status, map[string]string{"error": message})
}
