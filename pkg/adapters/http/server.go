package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/fixtura"
	"github.com/aretw0/fixtura/internal/logging"
	"github.com/aretw0/fixtura/pkg/domain"
	"github.com/aretw0/fixtura/pkg/ports"
	"github.com/aretw0/fixtura/pkg/schema"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:generate go tool oapi-codegen -package http -generate types,chi-server,spec -o api.gen.go ../../../api/openapi.yaml

const (
	// DefaultCount is used when a cases request has no count parameter.
	DefaultCount = 5
	// DefaultMaxCount caps the number of records per request.
	DefaultMaxCount = 10000
	// DefaultMaxLength caps any string or list length in a request schema.
	DefaultMaxLength = 10000
	// DefaultMaxElements caps the worst-case values and characters per request.
	DefaultMaxElements = 5_000_000

	maxBodyBytes = 1 << 20
)

// Engine defines the generation core used by the HTTP API.
type Engine interface {
	GenerateTestCasesContext(ctx context.Context, count int, schema domain.Schema) (domain.TestCaseSet, error)
}

// Server implements the generated ServerInterface
type Server struct {
	Engine   Engine
	Store    ports.SchemaStore
	MaxCount int
	Limits   schema.Limits
	Metrics  http.Handler
	Logger   *slog.Logger
}

// Ensure Server implements ServerInterface
var _ ServerInterface = (*Server)(nil)

// Option defines a functional option for configuring the Server.
type Option func(*Server)

// WithMaxCount overrides DefaultMaxCount.
func WithMaxCount(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.MaxCount = n
		}
	}
}

// WithLimits overrides DefaultMaxLength and DefaultMaxElements.
// Zero fields disable the corresponding check.
func WithLimits(l schema.Limits) Option {
	return func(s *Server) {
		s.Limits = l
	}
}

// WithMetricsHandler mounts h (usually promhttp.HandlerFor) on GET /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.Metrics = h
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// NewHandler creates a new HTTP handler for the engine and schema store.
func NewHandler(engine Engine, store ports.SchemaStore, opts ...Option) http.Handler {
	s := &Server{
		Engine:   engine,
		Store:    store,
		MaxCount: DefaultMaxCount,
		Limits:   schema.Limits{MaxLength: DefaultMaxLength, MaxElements: DefaultMaxElements},
		Logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(limitBody)
	if validator, err := newValidator(s.Logger); err != nil {
		s.Logger.Error("Request validation disabled", "error", err)
	} else {
		r.Use(validator)
	}

	// Swagger UI
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		spec, err := rawSpec()
		if err != nil {
			http.Error(w, "Failed to load spec", http.StatusInternalServerError)
			s.Logger.Error("Failed to load OpenAPI spec", "error", err)
			return
		}
		w.Write(spec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics)
	}

	handler := HandlerFromMux(s, r)
	return enableCORS(handler)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Fixtura API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, Health{Status: "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, Info{
		Name:    "fixtura",
		Version: strings.TrimSpace(fixtura.Version),
	})
}

// ListTypes handles GET /types.
func (s *Server) ListTypes(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, domain.KnownTypes)
}

// ListSchemas handles GET /schemas.
func (s *Server) ListSchemas(w http.ResponseWriter, r *http.Request) {
	names, err := s.Store.List(r.Context())
	if err != nil {
		s.fail(w, "List schemas", err)
		return
	}
	s.writeJSON(w, http.StatusOK, names)
}

// PutSchema handles PUT /schemas/{name} with a YAML or JSON body.
func (s *Server) PutSchema(w http.ResponseWriter, r *http.Request, name string) {
	sc, ok := s.readSchema(w, r)
	if !ok {
		return
	}
	if err := s.Store.Save(r.Context(), name, sc); err != nil {
		s.fail(w, "Save schema", err)
		return
	}
	s.Logger.Info("Schema saved", "name", name, "fields", len(sc))
	s.writeJSON(w, http.StatusOK, sc)
}

// GetSchema handles GET /schemas/{name}.
func (s *Server) GetSchema(w http.ResponseWriter, r *http.Request, name string) {
	sc, err := s.Store.Load(r.Context(), name)
	if err != nil {
		s.fail(w, "Load schema", err)
		return
	}
	s.writeJSON(w, http.StatusOK, sc)
}

// DeleteSchema handles DELETE /schemas/{name}.
func (s *Server) DeleteSchema(w http.ResponseWriter, r *http.Request, name string) {
	if err := s.Store.Delete(r.Context(), name); err != nil {
		s.fail(w, "Delete schema", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GenerateNamed handles POST /schemas/{name}/cases?count=N.
func (s *Server) GenerateNamed(w http.ResponseWriter, r *http.Request, name string, params GenerateNamedParams) {
	count := s.countOf(params.Count)
	sc, err := s.Store.Load(r.Context(), name)
	if err != nil {
		s.fail(w, "Load schema", err)
		return
	}
	s.generate(w, r, count, sc)
}

// GenerateInline handles POST /cases?count=N with the schema as body.
func (s *Server) GenerateInline(w http.ResponseWriter, r *http.Request, params GenerateInlineParams) {
	count := s.countOf(params.Count)
	sc, ok := s.readSchema(w, r)
	if !ok {
		return
	}
	s.generate(w, r, count, sc)
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request, count int, sc domain.Schema) {
	if err := schema.CheckLimits(sc, count, s.Limits); err != nil {
		s.fail(w, "Generate", err)
		return
	}
	cases, err := s.Engine.GenerateTestCasesContext(r.Context(), count, sc)
	if err != nil {
		s.fail(w, "Generate", err)
		return
	}
	s.writeJSON(w, http.StatusOK, cases)
}

// -- Helpers --

func (s *Server) countOf(requested *int) int {
	if requested == nil {
		return DefaultCount
	}
	if n := *requested; n > s.MaxCount {
		s.Logger.Debug("Count capped", "requested", n, "max", s.MaxCount)
		return s.MaxCount
	}
	return *requested
}

func (s *Server) readSchema(w http.ResponseWriter, r *http.Request) (domain.Schema, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("Invalid request body", "error", err)
		return nil, false
	}
	sc, err := schema.Parse(body)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid schema: %v", err), http.StatusBadRequest)
		s.Logger.Warn("Invalid schema", "error", err)
		return nil, false
	}
	return sc, true
}

func limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) fail(w http.ResponseWriter, op string, err error) {
	status := statusFor(err)
	http.Error(w, fmt.Sprintf("%s error: %v", op, err), status)
	if status >= http.StatusInternalServerError {
		s.Logger.Error(op+" failed", "error", err)
		return
	}
	s.Logger.Debug(op+" rejected", "error", err, "status", status)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrRange):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrSchemaNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("Response encode failed", "error", err)
	}
}
