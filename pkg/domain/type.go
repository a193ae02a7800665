package domain

// TypeTag is the discriminator selecting which generation rule applies to a field.
// Tags outside the known set are valid and generate an absent (nil) value.
type TypeTag string

const (
	TypeInteger TypeTag = "integer"
	TypeFloat   TypeTag = "float"
	TypeString  TypeTag = "string"
	TypeBoolean TypeTag = "boolean"
	TypeDate    TypeTag = "date"
	TypeUUID    TypeTag = "uuid"
	TypeList    TypeTag = "list"
	TypeDict    TypeTag = "dict"
)

// KnownTypes lists every tag with a generation rule, in documentation order.
var KnownTypes = []TypeTag{
	TypeInteger,
	TypeFloat,
	TypeString,
	TypeBoolean,
	TypeDate,
	TypeUUID,
	TypeList,
	TypeDict,
}

// Known reports whether the tag has a generation rule.
func (t TypeTag) Known() bool {
	for _, k := range KnownTypes {
		if t == k {
			return true
		}
	}
	return false
}

func (t TypeTag) String() string { return string(t) }

// Or returns t, or fallback when t is empty.
func (t TypeTag) Or(fallback TypeTag) TypeTag {
	if t == "" {
		return fallback
	}
	return t
}
