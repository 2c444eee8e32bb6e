// Package chi exposes the driveseek HTTP API.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/altadigital/driveseek/internal/domain"
	"github.com/altadigital/driveseek/internal/domain/search/request"
	healthuc "github.com/altadigital/driveseek/internal/usecase/health"
	lookupuc "github.com/altadigital/driveseek/internal/usecase/lookup"
	searchuc "github.com/altadigital/driveseek/internal/usecase/search"
)

// DefaultExportMime is used when the export handler gets no mime parameter.
const DefaultExportMime = "application/pdf"

// Streamer streams raw and exported file content from the store.
type Streamer interface {
	Download(ctx context.Context, fileID string) (io.ReadCloser, string, error)
	Export(ctx context.Context, fileID, mimeType string) (io.ReadCloser, error)
}

// Defaults are applied to unset optional search request fields.
type Defaults struct {
	WindowDays int
	PageSize   int
	MaxPasses  int
}

// Server hosts the HTTP handlers.
type Server struct {
	search   *searchuc.Service
	lookup   *lookupuc.Service
	health   *healthuc.Service
	streamer Streamer
	defaults Defaults
	logger   *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	lookup *lookupuc.Service,
	health *healthuc.Service,
	streamer Streamer,
	defaults Defaults,
	logger *zap.Logger,
) *Server {
	return &Server{
		search:   search,
		lookup:   lookup,
		health:   health,
		streamer: streamer,
		defaults: defaults,
		logger:   logger,
	}
}

// Routes mounts all handlers on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/search", s.IntelligentSearch)
		r.Get("/files", s.ListFiles)
		r.Get("/files/{id}/download", s.DownloadFile)
		r.Get("/files/{id}/export", s.ExportFile)
	})
}

// IntelligentSearch handles POST /api/v1/search.
func (s *Server) IntelligentSearch(w http.ResponseWriter, r *http.Request) {
	var dto searchRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	req, err := s.requestFromDTO(dto)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	report, err := s.search.Search(r.Context(), &req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, reportToDTO(report))
}

// ListFiles handles GET /api/v1/files.
func (s *Server) ListFiles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	pageSize := 0
	if raw := q.Get("pageSize"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, codeValidationFailed, "pageSize must be a positive integer")
			return
		}
		pageSize = n
	}

	records, err := s.lookup.Find(r.Context(), q.Get("query"), q.Get("folderId"), pageSize)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	files := make([]fileDTO, len(records))
	for i := range records {
		files[i] = fileToDTO(&records[i])
	}
	writeJSON(w, http.StatusOK, listResponseDTO{Files: files})
}

// DownloadFile handles GET /api/v1/files/{id}/download.
func (s *Server) DownloadFile(w http.ResponseWriter, r *http.Request) {
	fileID := chi.URLParam(r, "id")
	if fileID == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "missing file id")
		return
	}

	body, contentType, err := s.streamer.Download(r.Context(), fileID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	defer func() { _ = body.Close() }()

	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	if _, err := io.Copy(w, body); err != nil {
		s.logger.Warn("download stream interrupted", zap.String("file_id", fileID), zap.Error(err))
	}
}

// ExportFile handles GET /api/v1/files/{id}/export.
func (s *Server) ExportFile(w http.ResponseWriter, r *http.Request) {
	fileID := chi.URLParam(r, "id")
	if fileID == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "missing file id")
		return
	}

	mime := r.URL.Query().Get("mime")
	if mime == "" {
		mime = DefaultExportMime
	}

	body, err := s.streamer.Export(r.Context(), fileID, mime)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	defer func() { _ = body.Close() }()

	w.Header().Set("Content-Type", mime)
	if _, err := io.Copy(w, body); err != nil {
		s.logger.Warn("export stream interrupted", zap.String("file_id", fileID), zap.Error(err))
	}
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": string(report.Status),
		"checks": checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func (s *Server) requestFromDTO(dto searchRequestDTO) (request.Request, error) {
	windowDays := s.defaults.WindowDays
	if dto.WindowDays != nil {
		windowDays = *dto.WindowDays
	}
	pageSize := s.defaults.PageSize
	if dto.PageSize != nil {
		pageSize = *dto.PageSize
	}
	maxPasses := s.defaults.MaxPasses
	if dto.MaxPasses != nil {
		maxPasses = *dto.MaxPasses
	}

	return request.New(
		dto.Goal, dto.Client,
		dto.Types, dto.FolderWhitelist,
		windowDays, pageSize, maxPasses,
	)
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, "file not found")
	case errors.Is(err, domain.ErrUpstream):
		s.logger.Warn("upstream error", zap.Error(err))
		writeError(w, http.StatusBadGateway, codeUpstreamError, "file store unavailable")
	case errors.Is(err, context.Canceled):
		// Client went away; nothing useful to write.
	default:
		s.logger.Error("internal error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}
