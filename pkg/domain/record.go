package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Entry is one generated field value.
type Entry struct {
	Name  string
	Value any
}

// Record is one generated instance of a Schema. Entries follow schema order.
//
// Values are one of: int64, float64, string, bool, Date, []any, Record, or nil
// for fields whose type has no generation rule.
type Record []Entry

// TestCaseSet is an ordered batch of Records.
type TestCaseSet []Record

// Get returns the value stored under name.
func (r Record) Get(name string) (any, bool) {
	for _, e := range r {
		if e.Name == name {
			return e.Value, true
		}
	}
	return nil, false
}

// Names returns the field names in order.
func (r Record) Names() []string {
	names := make([]string, len(r))
	for i, e := range r {
		names[i] = e.Name
	}
	return names
}

// MarshalJSON encodes the record as a JSON object, preserving field order.
func (r Record) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", e.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// String renders the record in a compact human-readable form:
//
//	{id: 3f2c..., age: 42, tags: [ab cd], address: {zip: 01234}}
func (r Record) String() string {
	var sb strings.Builder
	writeValue(&sb, r)
	return sb.String()
}

func writeValue(sb *strings.Builder, v any) {
	switch val := v.(type) {
	case Record:
		sb.WriteByte('{')
		for i, e := range val {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(e.Name)
			sb.WriteString(": ")
			writeValue(sb, e.Value)
		}
		sb.WriteByte('}')
	case []any:
		sb.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				sb.WriteByte(' ')
			}
			writeValue(sb, item)
		}
		sb.WriteByte(']')
	case nil:
		sb.WriteString("null")
	default:
		fmt.Fprint(sb, val)
	}
}
