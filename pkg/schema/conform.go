package schema

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/fixtura/pkg/domain"
	"github.com/google/uuid"
)

// Conforms checks that rec is a valid instance of s: same fields in the same
// order, and every value within the bounds its spec describes.
// Returns an AggregateError with all failures found.
func Conforms(s domain.Schema, rec domain.Record) error {
	errs := checkRecord("", s, rec)
	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

func checkRecord(path string, s domain.Schema, rec domain.Record) []error {
	var errs []error

	if want, got := s.Names(), rec.Names(); !slices.Equal(want, got) {
		errs = append(errs, &ValidationError{
			Key:    displayPath(path),
			Reason: fmt.Sprintf("fields %v, want %v", got, want),
		})
	}

	for _, field := range s {
		key := joinPath(path, field.Name)
		value, exists := rec.Get(field.Name)
		if !exists {
			errs = append(errs, &ValidationError{Key: key, Reason: "required"})
			continue
		}
		spec := field.Spec.Resolved()
		errs = append(errs, checkValue(key, spec.Type, spec.Constraints, value)...)
	}
	return errs
}

func checkValue(key string, tag domain.TypeTag, c domain.Constraints, value any) []error {
	fail := func(format string, args ...any) []error {
		return []error{&ValidationError{Key: key, Reason: fmt.Sprintf(format, args...), Value: value}}
	}

	switch tag {
	case domain.TypeInteger:
		n, ok := value.(int64)
		if !ok {
			return fail("expected int64")
		}
		lo, hi := domain.DefaultIntMin, domain.DefaultIntMax
		ok = true
		if c.Min != nil {
			lo, ok = c.Min.Ceil()
		}
		if c.Max != nil && ok {
			hi, ok = c.Max.Floor()
		}
		if !ok {
			return fail("bounds [%v, %v] exceed int64", c.Min, c.Max)
		}
		if n < lo || n > hi {
			return fail("%d outside [%d, %d]", n, lo, hi)
		}

	case domain.TypeFloat:
		f, ok := value.(float64)
		if !ok {
			return fail("expected float64")
		}
		lo, hi := domain.DefaultFloatMin, domain.DefaultFloatMax
		if c.Min != nil {
			lo = c.Min.Float64()
		}
		if c.Max != nil {
			hi = c.Max.Float64()
		}
		if f < lo || f > hi {
			return fail("%v outside [%v, %v]", f, lo, hi)
		}

	case domain.TypeString:
		s, ok := value.(string)
		if !ok {
			return fail("expected string")
		}
		n := utf8.RuneCountInString(s)
		if c.Length != nil && n != *c.Length {
			return fail("length %d, want %d", n, *c.Length)
		}
		if c.Length == nil && (n < domain.DefaultStringMinLen || n > domain.DefaultStringMaxLen) {
			return fail("length %d outside [%d, %d]", n, domain.DefaultStringMinLen, domain.DefaultStringMaxLen)
		}
		chars := domain.DefaultChars
		if c.Chars != nil {
			chars = *c.Chars
		}
		for _, r := range s {
			if !strings.ContainsRune(chars, r) {
				return fail("character %q not in allowed set", r)
			}
		}

	case domain.TypeBoolean:
		if _, ok := value.(bool); !ok {
			return fail("expected bool")
		}

	case domain.TypeDate:
		d, ok := value.(domain.Date)
		if !ok {
			return fail("expected date")
		}
		start, end := domain.DefaultStartDate, domain.DefaultEndDate
		if c.Start != nil {
			start = *c.Start
		}
		if c.End != nil {
			end = *c.End
		}
		if d.Before(start) || !d.Before(end) {
			return fail("%s outside [%s, %s)", d, start, end)
		}

	case domain.TypeUUID:
		s, ok := value.(string)
		if !ok {
			return fail("expected uuid string")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return fail("invalid uuid: %v", err)
		}
		if id.Version() != 4 || id.String() != s {
			return fail("not a canonical version 4 uuid")
		}

	case domain.TypeList:
		items, ok := value.([]any)
		if !ok {
			return fail("expected list")
		}
		if c.Length != nil && len(items) != *c.Length {
			return fail("length %d, want %d", len(items), *c.Length)
		}
		if c.Length == nil && (len(items) < domain.DefaultListMinLen || len(items) > domain.DefaultListMaxLen) {
			return fail("length %d outside [%d, %d]", len(items), domain.DefaultListMinLen, domain.DefaultListMaxLen)
		}
		var itemConstraints domain.Constraints
		if c.ItemConstraints != nil {
			itemConstraints = *c.ItemConstraints
		}
		itemType := c.ItemType.Or(domain.DefaultItemType)
		var errs []error
		for i, item := range items {
			errs = append(errs, checkValue(fmt.Sprintf("%s[%d]", key, i), itemType, itemConstraints, item)...)
		}
		return errs

	case domain.TypeDict:
		rec, ok := value.(domain.Record)
		if !ok {
			return fail("expected record")
		}
		return checkRecord(key, c.Fields, rec)

	default:
		if value != nil {
			return fail("type %q has no generation rule, want null", tag)
		}
	}
	return nil
}

func displayPath(path string) string {
	if path == "" {
		return "$"
	}
	return path
}
