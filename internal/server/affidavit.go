package server

import (
	"fmt"
	"net/http"

	"affidavit/internal/affidavit"
	"affidavit/pkg/types"
)

func (s *Service) affidavitQuery(r *http.Request) (affidavit.Query, error) {
	var q affidavit.Query
	if err := decoder.Decode(&q, r.URL.Query()); err != nil {
		return affidavit.Query{}, fmt.Errorf("failed to decode affidavit query: %w", err)
	}
	return q, nil
}

func (s *Service) handleGetSummary(w http.ResponseWriter, r *http.Request) {
	principal, err := s.principalFromContext(r.Context())
	if err != nil {
		s.unauthorized(w)
		return
	}

	q, err := s.affidavitQuery(r)
	if err != nil {
		s.logger.WithError(err).Warn("bad summary query")
		s.respondJSON(w, http.StatusBadRequest, errorBody{Error: "invalid query parameters"})
		return
	}

	summary, err := s.engine.Summary(r.Context(), principal, q)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, summary)
}

func (s *Service) handleGetGenericPDF(w http.ResponseWriter, r *http.Request) {
	principal, err := s.principalFromContext(r.Context())
	if err != nil {
		s.unauthorized(w)
		return
	}

	q, err := s.affidavitQuery(r)
	if err != nil {
		s.logger.WithError(err).Warn("bad pdf query")
		s.respondJSON(w, http.StatusBadRequest, errorBody{Error: "invalid query parameters"})
		return
	}

	pdf, form, err := s.engine.GenericPDF(r.Context(), principal, q)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.writePDF(w, form, pdf)
}

func (s *Service) handleGetOfficialPDF(w http.ResponseWriter, r *http.Request) {
	principal, err := s.principalFromContext(r.Context())
	if err != nil {
		s.unauthorized(w)
		return
	}

	q, err := s.affidavitQuery(r)
	if err != nil {
		s.logger.WithError(err).Warn("bad official pdf query")
		s.respondJSON(w, http.StatusBadRequest, errorBody{Error: "invalid query parameters"})
		return
	}

	pdf, form, err := s.engine.OfficialPDF(r.Context(), principal, q)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.writePDF(w, form, pdf)
}

func (s *Service) writePDF(w http.ResponseWriter, form types.FormKind, pdf []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="affidavit-%s.pdf"`, form))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		s.logger.WithError(err).Error("failed to write pdf response")
	}
}
