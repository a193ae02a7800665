package domain

import (
	"bytes"
	"encoding/json"
)

// FieldSpec describes how one field is generated.
// An empty Type resolves to DefaultFieldType.
type FieldSpec struct {
	Type        TypeTag     `json:"type,omitempty"`
	Constraints Constraints `json:"constraints"`
}

// Resolved returns the spec with its type defaulted.
func (f FieldSpec) Resolved() FieldSpec {
	f.Type = f.Type.Or(DefaultFieldType)
	return f
}

// MarshalJSON omits empty constraints.
func (f FieldSpec) MarshalJSON() ([]byte, error) {
	type spec struct {
		Type        TypeTag      `json:"type,omitempty"`
		Constraints *Constraints `json:"constraints,omitempty"`
	}
	out := spec{Type: f.Type}
	if !f.Constraints.IsZero() {
		out.Constraints = &f.Constraints
	}
	return json.Marshal(out)
}

// Field is a named FieldSpec.
type Field struct {
	Name string
	Spec FieldSpec
}

// Schema is an ordered mapping of field names to FieldSpecs.
// Order determines the field order of generated records.
type Schema []Field

// Lookup returns the spec for name.
func (s Schema) Lookup(name string) (FieldSpec, bool) {
	for _, f := range s {
		if f.Name == name {
			return f.Spec, true
		}
	}
	return FieldSpec{}, false
}

// With returns a copy of s with name set to spec.
// An existing field keeps its position; a new one is appended.
func (s Schema) With(name string, spec FieldSpec) Schema {
	out := make(Schema, len(s), len(s)+1)
	copy(out, s)
	for i := range out {
		if out[i].Name == name {
			out[i].Spec = spec
			return out
		}
	}
	return append(out, Field{Name: name, Spec: spec})
}

// Names returns the field names in order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// Clone returns a deep copy.
func (s Schema) Clone() Schema {
	if s == nil {
		return nil
	}
	out := make(Schema, len(s))
	for i, f := range s {
		out[i] = Field{
			Name: f.Name,
			Spec: FieldSpec{Type: f.Spec.Type, Constraints: f.Spec.Constraints.Clone()},
		}
	}
	return out
}

// MarshalJSON encodes the schema as a JSON object in field order.
func (s Schema) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.Spec)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
