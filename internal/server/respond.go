package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"affidavit/pkg/types"
)

type errorBody struct {
	Error string `json:"error"`
}

func (s *Service) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.WithError(err).Error("failed to encode json response")
	}
}

// respondError maps the error taxonomy onto status codes. Authorization and
// validation failures surface with their message; everything else is an
// opaque 500.
func (s *Service) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, types.ErrForbidden):
		s.respondJSON(w, http.StatusForbidden, errorBody{Error: err.Error()})
	case errors.Is(err, types.ErrInvalidInput):
		s.respondJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	case errors.Is(err, types.ErrUserNotFound),
		errors.Is(err, types.ErrCaseNotFound),
		errors.Is(err, types.ErrRowNotFound):
		s.respondJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
	case errors.Is(err, types.ErrTemplateMissing):
		s.logger.WithError(err).Error("affidavit template missing")
		s.respondJSON(w, http.StatusInternalServerError, errorBody{Error: "form template unavailable"})
	default:
		s.logger.WithError(err).Error("unexpected error")
		s.respondJSON(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
	}
}

func (s *Service) unauthorized(w http.ResponseWriter) {
	s.respondJSON(w, http.StatusUnauthorized, errorBody{Error: "authentication required"})
}

func (s *Service) internalServerError(w http.ResponseWriter) {
	s.respondJSON(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
}
