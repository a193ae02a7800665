package fixtura

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/fixtura/internal/logging"
	"github.com/aretw0/fixtura/pkg/domain"
	"github.com/aretw0/fixtura/pkg/generator"
	"github.com/aretw0/fixtura/pkg/observability"
)

// Engine is the high-level entry point for the fixtura library.
// It owns a Generator and serializes access to it, so an Engine may be shared
// by concurrent callers.
type Engine struct {
	mu      sync.Mutex
	gen     *generator.Generator
	genOpts []generator.Option
	workers int
	metrics *observability.Metrics
	logger  *slog.Logger
	source  string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithSeed makes the engine reproducible: the same seed and the same sequence
// of calls produce the same values.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.genOpts = append(e.genOpts, generator.WithSeed(seed))
	}
}

// WithWorkers sets how many goroutines a batch may use (default 1).
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = n
	}
}

// WithMetrics records batch and failure metrics.
func WithMetrics(m *observability.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithSource labels the engine's metrics and logs, e.g. "http" or "cli".
func WithSource(source string) Option {
	return func(e *Engine) {
		e.source = source
	}
}

// WithMaxLength rejects string and list lengths above n with a RangeError.
// Zero, the default, leaves lengths unbounded.
func WithMaxLength(n int) Option {
	return func(e *Engine) {
		e.genOpts = append(e.genOpts, generator.WithMaxLength(n))
	}
}

// WithStrategy registers a generation rule for a custom type tag, or
// overrides a built-in one.
func WithStrategy(tag domain.TypeTag, s generator.Strategy) Option {
	return func(e *Engine) {
		e.genOpts = append(e.genOpts, generator.WithStrategy(tag, s))
	}
}

// New initializes a new fixtura Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{
		workers: 1,
		source:  "library",
	}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	eng.logger = eng.logger.With("source", eng.source)

	genOpts := append([]generator.Option{generator.WithLogger(eng.logger)}, eng.genOpts...)
	eng.gen = generator.New(genOpts...)
	return eng
}

// GenerateComplexData produces one value of type tag under constraints.
// Unknown tags yield nil and no error.
func (e *Engine) GenerateComplexData(tag domain.TypeTag, c domain.Constraints) (any, error) {
	e.mu.Lock()
	v, err := e.gen.Generate(tag, c)
	e.mu.Unlock()

	e.metrics.ObserveValue(e.source, err)
	if err != nil {
		e.logger.Debug("Value generation failed", "type", tag, "error", err)
	}
	return v, err
}

// GenerateTestCases produces count records from schema.
func (e *Engine) GenerateTestCases(count int, schema domain.Schema) (domain.TestCaseSet, error) {
	return e.GenerateTestCasesContext(context.Background(), count, schema)
}

// GenerateTestCasesContext is GenerateTestCases with cancellation. With more
// than one worker the batch is generated in parallel.
func (e *Engine) GenerateTestCasesContext(ctx context.Context, count int, schema domain.Schema) (domain.TestCaseSet, error) {
	start := time.Now()

	e.mu.Lock()
	cases, err := e.gen.GenerateCasesParallel(ctx, count, schema, e.workers)
	e.mu.Unlock()

	elapsed := time.Since(start)
	e.metrics.ObserveBatch(e.source, len(cases), elapsed, err)
	if err != nil {
		e.logger.Warn("Test case generation failed", "count", count, "error", err)
		return nil, err
	}
	e.logger.Debug("Generated test cases", "count", count, "fields", len(schema), "duration", elapsed)
	return cases, nil
}

var defaultEngine = sync.OnceValue(func() *Engine { return New() })

// GenerateComplexData produces one value using the process-default Engine.
func GenerateComplexData(tag domain.TypeTag, c domain.Constraints) (any, error) {
	return defaultEngine().GenerateComplexData(tag, c)
}

// GenerateTestCases produces count records using the process-default Engine.
func GenerateTestCases(count int, schema domain.Schema) (domain.TestCaseSet, error) {
	return defaultEngine().GenerateTestCases(count, schema)
}
