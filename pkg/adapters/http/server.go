package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/fae"
	"github.com/aretw0/fae/internal/presentation/report"
	"github.com/aretw0/fae/pkg/domain"
	"github.com/aretw0/fae/pkg/loader"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// MaxDocumentSize caps POST /check bodies.
const MaxDocumentSize = 1 << 20

// Checker defines what the server needs from the fae checker.
type Checker interface {
	Check(ctx context.Context, data []byte) ([]*domain.Report, error)
	Report(ctx context.Context, id string) (*domain.Report, error)
	Reports(ctx context.Context) ([]string, error)
}

var _ Checker = (*fae.Checker)(nil)

// Server serves the check API.
type Server struct {
	Checker Checker
	Logger  *slog.Logger
	metrics http.Handler
}

// Option configures the handler.
type Option func(*Server)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.Logger = logger
		}
	}
}

// WithMetrics mounts a metrics handler at /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// CheckResponse is the body of a successful POST /check.
type CheckResponse struct {
	Passed  bool             `json:"passed"`
	Reports []*domain.Report `json:"reports"`
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error   string           `json:"error"`
	Reports []*domain.Report `json:"reports,omitempty"`
}

// NewHandler creates a new HTTP handler for the checker.
//
//	POST /check          body: diagram document (YAML or JSON)
//	GET  /reports        stored report IDs
//	GET  /reports/{id}   one report; ?format=markdown for a markdown rendering
//	GET  /healthz, /info
func NewHandler(checker Checker, opts ...Option) http.Handler {
	s := &Server{
		Checker: checker,
		Logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/check", s.Check)
	r.Get("/reports", s.ListReports)
	r.Get("/reports/{id}", s.GetReport)
	r.Get("/healthz", s.GetHealth)
	r.Get("/info", s.GetInfo)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "error", err)
	}
}

// Check handles the POST /check request.
func (s *Server) Check(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxDocumentSize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: "document too large"})
			return
		}
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
		return
	}

	reports, err := s.Checker.Check(r.Context(), data)
	if err != nil {
		status := http.StatusInternalServerError
		var lerr *loader.Error
		if errors.As(err, &lerr) {
			status = http.StatusBadRequest
		}
		s.Logger.Warn("check failed", "error", err, "status", status)
		s.writeJSON(w, status, ErrorResponse{Error: err.Error(), Reports: reports})
		return
	}

	resp := CheckResponse{Passed: true, Reports: reports}
	for _, rep := range reports {
		resp.Passed = resp.Passed && rep.Passed()
	}
	s.Logger.Debug("check served", "reports", len(reports), "passed", resp.Passed)
	s.writeJSON(w, http.StatusOK, resp)
}

// ListReports handles the GET /reports request.
func (s *Server) ListReports(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Checker.Reports(r.Context())
	if err != nil {
		s.Logger.Error("list reports failed", "error", err)
		s.writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"ids": ids})
}

// GetReport handles the GET /reports/{id} request.
func (s *Server) GetReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rep, err := s.Checker.Report(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrReportNotFound) {
			s.writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		s.Logger.Error("load report failed", "id", id, "error", err)
		s.writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	if strings.EqualFold(r.URL.Query().Get("format"), string(report.FormatMarkdown)) {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		_, _ = io.WriteString(w, report.MarkdownDocument(&rep.Result))
		return
	}
	s.writeJSON(w, http.StatusOK, rep)
}

// GetHealth handles the GET /healthz request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "fae-http",
		"version": strings.TrimSpace(fae.Version),
	})
}
