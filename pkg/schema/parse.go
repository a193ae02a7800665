package schema

import (
	"fmt"
	"math"
	"os"
	"reflect"
	"time"

	"github.com/aretw0/fixtura/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// rawConstraints holds the scalar constraint keys. Nested keys
// (item_constraints, fields) are walked on the yaml.Node tree to keep order.
type rawConstraints struct {
	Min      *domain.Number `mapstructure:"min"`
	Max      *domain.Number `mapstructure:"max"`
	Length   *int           `mapstructure:"length"`
	Chars    *string        `mapstructure:"chars"`
	Start    *domain.Date   `mapstructure:"start"`
	End      *domain.Date   `mapstructure:"end"`
	ItemType string         `mapstructure:"item_type"`
}

var (
	dateType   = reflect.TypeOf(domain.Date{})
	numberType = reflect.TypeOf(domain.Number{})
)

// Parse decodes a YAML or JSON schema document.
// An empty document yields an empty schema.
func Parse(data []byte) (domain.Schema, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return domain.Schema{}, nil
	}

	s, err := parseSchema(doc.Content[0], "")
	if err != nil {
		return nil, err
	}
	if s == nil {
		s = domain.Schema{}
	}
	return s, nil
}

// ParseConstraints decodes a standalone constraints mapping, as accepted
// under a field's "constraints" key.
func ParseConstraints(data []byte) (domain.Constraints, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return domain.Constraints{}, fmt.Errorf("failed to parse constraints: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return domain.Constraints{}, nil
	}
	return parseConstraints(doc.Content[0], "")
}

// Load reads and parses a schema file.
func Load(path string) (domain.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// MustParse is Parse for literals known to be valid. It panics on error.
func MustParse(doc string) domain.Schema {
	s, err := Parse([]byte(doc))
	if err != nil {
		panic(err)
	}
	return s
}

func parseSchema(n *yaml.Node, path string) (domain.Schema, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, nodeError(n, path, "expected a mapping of field names")
	}

	s := make(domain.Schema, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		name := n.Content[i].Value
		spec, err := parseFieldSpec(n.Content[i+1], joinPath(path, name))
		if err != nil {
			return nil, err
		}
		// Repeated keys keep the first position and the last spec.
		s = s.With(name, spec)
	}
	return s, nil
}

func parseFieldSpec(n *yaml.Node, path string) (domain.FieldSpec, error) {
	var spec domain.FieldSpec

	switch {
	case isNull(n):
		return spec, nil
	case n.Kind == yaml.ScalarNode:
		spec.Type = domain.TypeTag(n.Value)
		return spec, nil
	case n.Kind != yaml.MappingNode:
		return spec, nodeError(n, path, "expected a field spec mapping")
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i].Value, n.Content[i+1]
		switch key {
		case "type":
			if !isNull(val) {
				spec.Type = domain.TypeTag(val.Value)
			}
		case "constraints":
			c, err := parseConstraints(val, path)
			if err != nil {
				return spec, err
			}
			spec.Constraints = c
		}
	}
	return spec, nil
}

func parseConstraints(n *yaml.Node, path string) (domain.Constraints, error) {
	var c domain.Constraints
	if isNull(n) {
		return c, nil
	}
	if n.Kind != yaml.MappingNode {
		return c, nodeError(n, path, "constraints must be a mapping")
	}

	scalars := make(map[string]any)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i].Value, n.Content[i+1]
		switch key {
		case "item_constraints":
			ic, err := parseConstraints(val, path+"[]")
			if err != nil {
				return c, err
			}
			c.ItemConstraints = &ic
		case "fields":
			fields, err := parseSchema(val, path)
			if err != nil {
				return c, err
			}
			c.Fields = fields
		default:
			var v any
			if err := val.Decode(&v); err != nil {
				return c, nodeError(val, path, err.Error())
			}
			scalars[key] = v
		}
	}

	var raw rawConstraints
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(dateHook, numberHook),
		Result:     &raw,
	})
	if err != nil {
		return c, err
	}
	if err := decoder.Decode(scalars); err != nil {
		return c, fmt.Errorf("field %q: invalid constraints: %w", path, err)
	}

	c.Min, c.Max = raw.Min, raw.Max
	c.Length, c.Chars = raw.Length, raw.Chars
	c.Start, c.End = raw.Start, raw.End
	c.ItemType = domain.TypeTag(raw.ItemType)
	return c, nil
}

// dateHook turns YYYY-MM-DD strings (and timestamps) into domain.Date.
func dateHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != dateType {
		return data, nil
	}
	switch v := data.(type) {
	case string:
		return domain.ParseDate(v)
	case time.Time:
		return domain.DateOf(v), nil
	}
	return data, nil
}

// numberHook keeps integer literals exact; a float64 detour would round
// anything beyond 2^53.
func numberHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != numberType {
		return data, nil
	}
	switch v := data.(type) {
	case int:
		return domain.Int(int64(v)), nil
	case int64:
		return domain.Int(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return domain.Float(float64(v)), nil
		}
		return domain.Int(int64(v)), nil
	case float64:
		return domain.Float(v), nil
	case domain.Number:
		return v, nil
	}
	return nil, fmt.Errorf("expected a number, got %T", data)
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.Tag == "!!null")
}

func nodeError(n *yaml.Node, path, reason string) error {
	if path == "" {
		return fmt.Errorf("line %d: %s", n.Line, reason)
	}
	return fmt.Errorf("field %q (line %d): %s", path, n.Line, reason)
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}
