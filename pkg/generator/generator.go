package generator

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"log/slog"
	mrand "math/rand/v2"

	"github.com/aretw0/fixtura/internal/logging"
	"github.com/aretw0/fixtura/pkg/domain"
)

// Strategy generates one value of a given type from its constraints.
// Strategies may call back into g for nested values.
type Strategy func(g *Generator, c domain.Constraints) (any, error)

// Generator produces values conforming to field specs.
type Generator struct {
	src        *mrand.ChaCha8
	rng        *mrand.Rand
	strategies map[domain.TypeTag]Strategy
	logger     *slog.Logger
	maxLength  int
}

// Option defines a functional option for configuring the Generator.
type Option func(*Generator)

// WithSeed makes the generator's output reproducible for the same seed and
// the same sequence of calls.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		var key [32]byte
		binary.LittleEndian.PutUint64(key[:8], seed)
		g.setSource(mrand.NewChaCha8(key))
	}
}

// WithSeedBytes seeds the generator with a full 32-byte key.
func WithSeedBytes(key [32]byte) Option {
	return func(g *Generator) {
		g.setSource(mrand.NewChaCha8(key))
	}
}

// WithStrategy registers or replaces the strategy for a type tag.
func WithStrategy(tag domain.TypeTag, s Strategy) Option {
	return func(g *Generator) {
		g.strategies[tag] = s
	}
}

// WithMaxLength rejects string and list lengths above n with a RangeError.
// Zero leaves lengths unbounded.
func WithMaxLength(n int) Option {
	return func(g *Generator) {
		g.maxLength = max(n, 0)
	}
}

// WithLogger sets a structured logger for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// New creates a Generator. Without WithSeed the source is seeded from
// crypto/rand.
func New(opts ...Option) *Generator {
	g := &Generator{
		strategies: make(map[domain.TypeTag]Strategy, len(builtins)),
		logger:     logging.NewNop(),
	}
	for tag, s := range builtins {
		g.strategies[tag] = s
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.src == nil {
		var key [32]byte
		if _, err := io.ReadFull(rand.Reader, key[:]); err != nil {
			// crypto/rand does not fail on supported platforms.
			panic("generator: reading seed: " + err.Error())
		}
		g.setSource(mrand.NewChaCha8(key))
	}
	return g
}

func (g *Generator) setSource(src *mrand.ChaCha8) {
	g.src = src
	g.rng = mrand.New(src)
}

// Rand exposes the generator's random stream to custom strategies.
func (g *Generator) Rand() *mrand.Rand {
	return g.rng
}

// Fork returns an independent Generator seeded from g's stream.
// The child shares g's strategies, logger and limits but not its source.
func (g *Generator) Fork() *Generator {
	var key [32]byte
	// ChaCha8.Read never returns an error.
	_, _ = g.src.Read(key[:])

	child := &Generator{
		strategies: g.strategies,
		logger:     g.logger,
		maxLength:  g.maxLength,
	}
	child.setSource(mrand.NewChaCha8(key))
	return child
}

// Generate produces one value of type tag. Tags without a strategy yield nil
// and no error, so a record keeps its shape even when a field references an
// unrecognized type.
func (g *Generator) Generate(tag domain.TypeTag, c domain.Constraints) (any, error) {
	s, ok := g.strategies[tag]
	if !ok {
		g.logger.Debug("No strategy for type, yielding nil", "type", tag)
		return nil, nil
	}
	return s(g, c)
}

// GenerateRecord produces one Record with a value per schema field, in
// schema order. Fields without a type default to string.
func (g *Generator) GenerateRecord(schema domain.Schema) (domain.Record, error) {
	rec := make(domain.Record, 0, len(schema))
	for _, field := range schema {
		spec := field.Spec.Resolved()
		v, err := g.Generate(spec.Type, spec.Constraints)
		if err != nil {
			return nil, wrapPath(field.Name, err)
		}
		rec = append(rec, domain.Entry{Name: field.Name, Value: v})
	}
	return rec, nil
}
