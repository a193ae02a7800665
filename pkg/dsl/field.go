package dsl

import "github.com/aretw0/fixtura/pkg/domain"

// FieldBuilder provides a fluent API for configuring a field spec.
type FieldBuilder struct {
	spec domain.FieldSpec
}

// Field starts a standalone spec, e.g. for generator.Generate.
func Field() *FieldBuilder {
	return &FieldBuilder{}
}

// Spec returns a copy of the configured spec.
func (f *FieldBuilder) Spec() domain.FieldSpec {
	return domain.FieldSpec{
		Type:        f.spec.Type,
		Constraints: f.spec.Constraints.Clone(),
	}
}

// Type sets an arbitrary type tag. Tags without a generation rule yield null values.
func (f *FieldBuilder) Type(tag domain.TypeTag) *FieldBuilder {
	f.spec.Type = tag
	return f
}

func (f *FieldBuilder) Integer() *FieldBuilder { return f.Type(domain.TypeInteger) }
func (f *FieldBuilder) Float() *FieldBuilder   { return f.Type(domain.TypeFloat) }
func (f *FieldBuilder) String() *FieldBuilder  { return f.Type(domain.TypeString) }
func (f *FieldBuilder) Boolean() *FieldBuilder { return f.Type(domain.TypeBoolean) }
func (f *FieldBuilder) Date() *FieldBuilder    { return f.Type(domain.TypeDate) }
func (f *FieldBuilder) UUID() *FieldBuilder    { return f.Type(domain.TypeUUID) }
func (f *FieldBuilder) List() *FieldBuilder    { return f.Type(domain.TypeList) }

// Min sets the lower bound of an integer or float field.
func (f *FieldBuilder) Min(v float64) *FieldBuilder {
	n := domain.Float(v)
	f.spec.Constraints.Min = &n
	return f
}

// Max sets the upper bound of an integer or float field.
func (f *FieldBuilder) Max(v float64) *FieldBuilder {
	n := domain.Float(v)
	f.spec.Constraints.Max = &n
	return f
}

// Range sets both numeric bounds.
func (f *FieldBuilder) Range(lo, hi float64) *FieldBuilder {
	return f.Min(lo).Max(hi)
}

// IntRange sets exact integer bounds, for values a float64 cannot hold.
func (f *FieldBuilder) IntRange(lo, hi int64) *FieldBuilder {
	nlo, nhi := domain.Int(lo), domain.Int(hi)
	f.spec.Constraints.Min, f.spec.Constraints.Max = &nlo, &nhi
	return f
}

// Length fixes the length of a string or list field.
func (f *FieldBuilder) Length(n int) *FieldBuilder {
	f.spec.Constraints.Length = &n
	return f
}

// Chars sets the alphabet of a string field.
func (f *FieldBuilder) Chars(chars string) *FieldBuilder {
	f.spec.Constraints.Chars = &chars
	return f
}

// Start sets the first day of a date field's window.
func (f *FieldBuilder) Start(d domain.Date) *FieldBuilder {
	f.spec.Constraints.Start = &d
	return f
}

// End sets the exclusive last day of a date field's window.
func (f *FieldBuilder) End(d domain.Date) *FieldBuilder {
	f.spec.Constraints.End = &d
	return f
}

// Between sets the date window [start, end).
func (f *FieldBuilder) Between(start, end domain.Date) *FieldBuilder {
	return f.Start(start).End(end)
}

// Items configures the element spec of a list field. It marks the field as a list.
func (f *FieldBuilder) Items(configure func(item *FieldBuilder)) *FieldBuilder {
	item := &FieldBuilder{}
	configure(item)

	spec := item.Spec()
	f.spec.Type = domain.TypeList
	f.spec.Constraints.ItemType = spec.Type
	if spec.Constraints.IsZero() {
		f.spec.Constraints.ItemConstraints = nil
	} else {
		f.spec.Constraints.ItemConstraints = &spec.Constraints
	}
	return f
}

// Dict configures the nested fields of a dict field. It marks the field as a dict.
func (f *FieldBuilder) Dict(configure func(fields *Builder)) *FieldBuilder {
	nested := New()
	configure(nested)

	f.spec.Type = domain.TypeDict
	f.spec.Constraints.Fields = nested.Build()
	return f
}
