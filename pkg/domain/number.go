package domain

import (
	"cmp"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number is a numeric constraint bound. Integral values within int64 are
// held exactly, so integer bounds beyond 2^53 survive decoding.
// The zero value is the integer 0.
type Number struct {
	i    int64
	f    float64
	frac bool // only f is meaningful
}

// Int returns v as an exact Number.
func Int(v int64) Number {
	return Number{i: v, f: float64(v)}
}

// Float returns v as a Number. Integral values that fit int64 are stored
// exactly, like Int.
func Float(v float64) Number {
	if v == math.Trunc(v) && v >= -(1<<63) && v < 1<<63 {
		return Int(int64(v))
	}
	return Number{f: v, frac: true}
}

// ParseNumber parses a decimal integer or floating-point literal.
func ParseNumber(s string) (Number, error) {
	s = strings.TrimSpace(s)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(i), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Number{}, fmt.Errorf("invalid number %q", s)
	}
	return Float(f), nil
}

// Float64 returns the nearest float64.
func (n Number) Float64() float64 {
	return n.f
}

// Int64 returns the exact integer value, if n holds one.
func (n Number) Int64() (int64, bool) {
	return n.i, !n.frac
}

// IsNaN reports whether n is not a number.
func (n Number) IsNaN() bool {
	return n.frac && math.IsNaN(n.f)
}

// Ceil returns the smallest int64 not below n. ok is false when that
// integer does not fit int64 or n is NaN.
func (n Number) Ceil() (v int64, ok bool) {
	if !n.frac {
		return n.i, true
	}
	return toInt64(math.Ceil(n.f))
}

// Floor returns the largest int64 not above n.
func (n Number) Floor() (v int64, ok bool) {
	if !n.frac {
		return n.i, true
	}
	return toInt64(math.Floor(n.f))
}

func toInt64(f float64) (int64, bool) {
	if math.IsNaN(f) || f < -(1<<63) || f >= 1<<63 {
		return 0, false
	}
	return int64(f), true
}

// Cmp compares n and m, exactly when both are integers.
func (n Number) Cmp(m Number) int {
	if !n.frac && !m.frac {
		return cmp.Compare(n.i, m.i)
	}
	return cmp.Compare(n.f, m.f)
}

func (n Number) String() string {
	if !n.frac {
		return strconv.FormatInt(n.i, 10)
	}
	return strconv.FormatFloat(n.f, 'g', -1, 64)
}

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.frac {
		return []byte(strconv.FormatInt(n.i, 10)), nil
	}
	return json.Marshal(n.f)
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	v, err := ParseNumber(string(data))
	if err != nil {
		return err
	}
	*n = v
	return nil
}
