package schema

import (
	"math"

	"github.com/aretw0/fixtura/pkg/domain"
)

// Limits bounds how large a batch generated from a schema may get.
// Zero fields are not enforced.
type Limits struct {
	// MaxLength caps any single string or list length.
	MaxLength int
	// MaxElements caps the worst-case number of values and characters in a
	// whole batch.
	MaxElements int64
}

// CheckLimits reports a *domain.RangeError when count records of s could
// exceed l. It inspects the schema only; nothing is generated.
func CheckLimits(s domain.Schema, count int, l Limits) error {
	if l.MaxLength > 0 {
		if err := checkLengths(s, l.MaxLength); err != nil {
			return err
		}
	}
	if l.MaxElements > 0 && count > 0 {
		if total := saturatingMul(Footprint(s), int64(count)); total > l.MaxElements {
			return domain.NewRangeError(domain.TypeDict, "%d records may hold up to %d elements, over the limit of %d", count, total, l.MaxElements)
		}
	}
	return nil
}

// Footprint is the worst-case number of values and characters in one record
// of s. Saturates at math.MaxInt64.
func Footprint(s domain.Schema) int64 {
	var total int64
	for _, field := range s {
		spec := field.Spec.Resolved()
		total = saturatingAdd(total, valueFootprint(spec.Type, spec.Constraints))
	}
	return total
}

func valueFootprint(tag domain.TypeTag, c domain.Constraints) int64 {
	switch tag {
	case domain.TypeString:
		n := int64(domain.DefaultStringMaxLen)
		if c.Length != nil {
			n = int64(max(*c.Length, 0))
		}
		return saturatingAdd(n, 1)
	case domain.TypeList:
		n := int64(domain.DefaultListMaxLen)
		if c.Length != nil {
			n = int64(max(*c.Length, 0))
		}
		var item domain.Constraints
		if c.ItemConstraints != nil {
			item = *c.ItemConstraints
		}
		per := valueFootprint(c.ItemType.Or(domain.DefaultItemType), item)
		return saturatingAdd(saturatingMul(n, per), 1)
	case domain.TypeDict:
		return saturatingAdd(Footprint(c.Fields), 1)
	default:
		return 1
	}
}

func checkLengths(s domain.Schema, limit int) error {
	for _, field := range s {
		spec := field.Spec.Resolved()
		if err := checkLength(field.Name, spec.Type, spec.Constraints, limit); err != nil {
			return err
		}
	}
	return nil
}

func checkLength(path string, tag domain.TypeTag, c domain.Constraints, limit int) error {
	switch tag {
	case domain.TypeString, domain.TypeList:
		if c.Length != nil && *c.Length > limit {
			return domain.NewRangeError(tag, "field %q: length %d exceeds the limit of %d", path, *c.Length, limit)
		}
	case domain.TypeDict:
		return checkLengths(prefixed(path, c.Fields), limit)
	}
	if tag == domain.TypeList && c.ItemConstraints != nil {
		return checkLength(path+"[]", c.ItemType.Or(domain.DefaultItemType), *c.ItemConstraints, limit)
	}
	return nil
}

// prefixed renames fields to their dotted path for error messages.
func prefixed(parent string, s domain.Schema) domain.Schema {
	out := make(domain.Schema, len(s))
	for i, f := range s {
		out[i] = domain.Field{Name: joinPath(parent, f.Name), Spec: f.Spec}
	}
	return out
}

func saturatingAdd(a, b int64) int64 {
	if a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

func saturatingMul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt64/b {
		return math.MaxInt64
	}
	return a * b
}
