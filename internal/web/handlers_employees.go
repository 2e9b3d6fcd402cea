package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/JonMunkholm/prejoin/internal/core"
	"github.com/JonMunkholm/prejoin/internal/logging"
)

// handleCreateEmployee stores one multipart onboarding submission.
// POST /api/employees
func (s *Server) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	r = withClient(r)
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Upload.MaxRequestSize)

	mr, err := r.MultipartReader()
	if err != nil {
		respondError(w, r, &core.UploadError{Err: fmt.Errorf("%w: %v", core.ErrMalformedForm, err)}, http.StatusBadRequest, msgUploadError)
		return
	}

	id, err := s.service.Submit(r.Context(), mr)
	if err != nil {
		status, message := classifySubmitError(err)
		respondError(w, r, err, status, message)
		return
	}

	writeJSON(w, http.StatusOK, CreateResponse{
		Success: true,
		ID:      id,
		Message: msgSaved,
	})
}

// handleListEmployees returns every record, newest first.
// GET /api/employees
func (s *Server) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	records, err := s.service.ListEmployees(r.Context())
	if err != nil {
		respondError(w, r, err, http.StatusInternalServerError, msgServerError)
		return
	}
	writeJSON(w, http.StatusOK, ListResponse{Success: true, Data: records})
}

// handleExportEmployees downloads every record as CSV.
// GET /api/employees/export
//
// Failures answer with a plain-text body, not the JSON envelope, since the
// request is a browser download.
func (s *Server) handleExportEmployees(w http.ResponseWriter, r *http.Request) {
	data, err := s.service.ExportCSV(r.Context())
	if err != nil {
		logging.FromContext(r.Context()).Error("csv export failed",
			"error", err,
			"code", core.MapError(err).Code,
			"request_id", middleware.GetReqID(r.Context()),
		)
		http.Error(w, msgServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+core.ExportFilename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		slog.Warn("csv export write failed", "error", err)
	}
}
