package generator

import "strings"

// PathError locates a generation failure inside a nested schema.
// Path uses dots for dict fields and brackets for list items, e.g.
// "address.coordinates[1]".
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// wrapPath prefixes err's path with seg.
func wrapPath(seg string, err error) error {
	pe, ok := err.(*PathError)
	if !ok {
		return &PathError{Path: seg, Err: err}
	}
	if strings.HasPrefix(pe.Path, "[") {
		return &PathError{Path: seg + pe.Path, Err: pe.Err}
	}
	return &PathError{Path: seg + "." + pe.Path, Err: pe.Err}
}
