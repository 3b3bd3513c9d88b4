package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/typecheck/internal/document"
	"github.com/aretw0/typecheck/internal/service"
	"github.com/aretw0/typecheck/pkg/registry"
)

// MaxPayloadBytes bounds the body of a check request.
const MaxPayloadBytes = 1 << 20

// Validator defines what the HTTP adapter needs from the validation service.
type Validator interface {
	Shapes() []registry.Entry
	Shape(name string) (registry.Entry, error)
	Validate(ctx context.Context, shape string, payload []byte, format document.Format) (service.Verdict, error)
}

// ShapeResponse describes one registered shape.
type ShapeResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server exposes a Validator over HTTP.
type Server struct {
	Validator Validator
	Logger    *slog.Logger
}

// NewHandler creates a new HTTP handler for the validator. When gatherer is
// not nil its metrics are served on /metrics.
func NewHandler(v Validator, gatherer prometheus.Gatherer, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	server := &Server{Validator: v, Logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok"))
	})
	r.Get("/shapes", server.ListShapes)
	r.Get("/shapes/{name}", server.GetShape)
	r.Post("/check/{name}", server.Check)

	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return r
}

// ListShapes handles the GET /shapes request.
func (s *Server) ListShapes(w http.ResponseWriter, r *http.Request) {
	entries := s.Validator.Shapes()
	resp := make([]ShapeResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, toShapeResponse(e))
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// GetShape handles the GET /shapes/{name} request.
func (s *Server) GetShape(w http.ResponseWriter, r *http.Request) {
	e, err := s.Validator.Shape(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toShapeResponse(e))
}

// Check handles the POST /check/{name} request. The body is the document to
// validate; its format comes from the Content-Type header or the "format"
// query parameter, and is sniffed otherwise.
func (s *Server) Check(w http.ResponseWriter, r *http.Request) {
	format, err := requestFormat(r)
	if err != nil {
		s.writeJSON(w, http.StatusUnsupportedMediaType, ErrorResponse{Error: err.Error()})
		return
	}

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxPayloadBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{Error: "payload too large"})
			return
		}
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "cannot read body"})
		return
	}

	verdict, err := s.Validator.Validate(r.Context(), chi.URLParam(r, "name"), payload, format)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, verdict)
}

// -- Helpers --

func toShapeResponse(e registry.Entry) ShapeResponse {
	return ShapeResponse{
		Name:        e.Name,
		Description: e.Description,
		Type:        e.Checker.String(),
	}
}

func requestFormat(r *http.Request) (document.Format, error) {
	if q := r.URL.Query().Get("format"); q != "" {
		return document.ParseFormat(q)
	}
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return document.FormatAuto, nil
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return document.FormatAuto, nil
	}
	switch mediaType {
	case "application/json":
		return document.FormatJSON, nil
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return document.FormatYAML, nil
	}
	return document.FormatAuto, nil
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, registry.ErrShapeNotFound):
		s.writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, document.ErrDecode):
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		s.Logger.Error("request failed", "error", err)
		s.writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.Logger.Warn("response encode failed", "error", err)
	}
}
