package dsl

import (
	"github.com/aretw0/fixtura/pkg/domain"
)

// Builder manages the schema construction.
type Builder struct {
	order  []string
	fields map[string]*FieldBuilder
}

// New creates a new schema builder.
func New() *Builder {
	return &Builder{
		fields: make(map[string]*FieldBuilder),
	}
}

// Add creates a new field in the schema.
// If the field already exists, it returns the existing builder.
func (b *Builder) Add(name string) *FieldBuilder {
	if fb, ok := b.fields[name]; ok {
		return fb
	}
	fb := &FieldBuilder{}
	b.fields[name] = fb
	b.order = append(b.order, name)
	return fb
}

// Build compiles the fields into a Schema, in the order they were added.
// The result does not share memory with the builder.
func (b *Builder) Build() domain.Schema {
	s := make(domain.Schema, 0, len(b.order))
	for _, name := range b.order {
		s = append(s, domain.Field{Name: name, Spec: b.fields[name].Spec()})
	}
	return s
}
