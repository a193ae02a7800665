package domain

// Default constraint values applied when a key is absent.
const (
	DefaultIntMin       int64   = -1000
	DefaultIntMax       int64   = 1000
	DefaultFloatMin     float64 = -1000.0
	DefaultFloatMax     float64 = 1000.0
	DefaultStringMinLen         = 5
	DefaultStringMaxLen         = 20
	DefaultListMinLen           = 1
	DefaultListMaxLen           = 10
	DefaultChars                = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	DefaultFieldType            = TypeString
	DefaultItemType             = TypeInteger
)

// Default date window: [2000-01-01, 2024-01-01).
var (
	DefaultStartDate = NewDate(2000, 1, 1)
	DefaultEndDate   = NewDate(2024, 1, 1)
)

// Constraints holds the named parameters of a FieldSpec.
// Every field is optional; which ones apply depends on the TypeTag:
//
//	integer, float: Min, Max
//	string:         Length, Chars
//	date:           Start, End
//	list:           ItemType, Length, ItemConstraints
//	dict:           Fields
//
// Keys that do not apply to the tag are ignored.
type Constraints struct {
	Min             *Number      `json:"min,omitempty"`
	Max             *Number      `json:"max,omitempty"`
	Length          *int         `json:"length,omitempty"`
	Chars           *string      `json:"chars,omitempty"`
	Start           *Date        `json:"start,omitempty"`
	End             *Date        `json:"end,omitempty"`
	ItemType        TypeTag      `json:"item_type,omitempty"`
	ItemConstraints *Constraints `json:"item_constraints,omitempty"`
	Fields          Schema       `json:"fields,omitempty"`
}

// IsZero reports whether no constraint is set.
func (c Constraints) IsZero() bool {
	return c.Min == nil && c.Max == nil && c.Length == nil && c.Chars == nil &&
		c.Start == nil && c.End == nil && c.ItemType == "" &&
		c.ItemConstraints == nil && len(c.Fields) == 0
}

// Clone returns a deep copy.
func (c Constraints) Clone() Constraints {
	out := Constraints{
		Min:      clonePtr(c.Min),
		Max:      clonePtr(c.Max),
		Length:   clonePtr(c.Length),
		Chars:    clonePtr(c.Chars),
		Start:    clonePtr(c.Start),
		End:      clonePtr(c.End),
		ItemType: c.ItemType,
		Fields:   c.Fields.Clone(),
	}
	if c.ItemConstraints != nil {
		ic := c.ItemConstraints.Clone()
		out.ItemConstraints = &ic
	}
	return out
}

// Ptr returns a pointer to v. It keeps constraint literals short:
//
//	domain.Constraints{Min: domain.Ptr(domain.Int(18)), Length: domain.Ptr(5)}
func Ptr[T any](v T) *T {
	return &v
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
