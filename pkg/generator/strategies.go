package generator

import (
	"fmt"
	"math"
	"strings"

	"github.com/aretw0/fixtura/pkg/domain"
	"github.com/google/uuid"
)

// builtins maps every known TypeTag to its strategy.
var builtins = map[domain.TypeTag]Strategy{
	domain.TypeInteger: genInteger,
	domain.TypeFloat:   genFloat,
	domain.TypeString:  genString,
	domain.TypeBoolean: genBoolean,
	domain.TypeDate:    genDate,
	domain.TypeUUID:    genUUID,
	domain.TypeList:    genList,
	domain.TypeDict:    genDict,
}

// preallocCap bounds up-front allocation; longer values grow as they fill.
const preallocCap = 1024

func genInteger(g *Generator, c domain.Constraints) (any, error) {
	lo, hi := domain.DefaultIntMin, domain.DefaultIntMax
	if c.Min != nil || c.Max != nil {
		nmin, nmax := domain.Int(lo), domain.Int(hi)
		if c.Min != nil {
			nmin = *c.Min
		}
		if c.Max != nil {
			nmax = *c.Max
		}
		if nmin.IsNaN() || nmax.IsNaN() {
			return nil, domain.NewRangeError(domain.TypeInteger, "bounds must be numbers")
		}
		if nmin.Cmp(nmax) > 0 {
			return nil, domain.NewRangeError(domain.TypeInteger, "min %v is greater than max %v", nmin, nmax)
		}
		// Fractional bounds shrink to the integers inside them.
		var okMin, okMax bool
		lo, okMin = nmin.Ceil()
		hi, okMax = nmax.Floor()
		if !okMin || !okMax {
			return nil, domain.NewRangeError(domain.TypeInteger, "bounds [%v, %v] exceed int64", nmin, nmax)
		}
		if lo > hi {
			return nil, domain.NewRangeError(domain.TypeInteger, "no integer between min %v and max %v", nmin, nmax)
		}
	}

	span := uint64(hi) - uint64(lo)
	if span == math.MaxUint64 {
		return int64(g.rng.Uint64()), nil
	}
	return lo + int64(g.rng.Uint64N(span+1)), nil
}

func genFloat(g *Generator, c domain.Constraints) (any, error) {
	lo, hi := domain.DefaultFloatMin, domain.DefaultFloatMax
	if c.Min != nil {
		lo = c.Min.Float64()
	}
	if c.Max != nil {
		hi = c.Max.Float64()
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, domain.NewRangeError(domain.TypeFloat, "bounds must be finite numbers")
	}
	if lo > hi {
		return nil, domain.NewRangeError(domain.TypeFloat, "min %v is greater than max %v", lo, hi)
	}

	// Interpolate instead of lo+(hi-lo)*u so that hi-lo cannot overflow.
	u := g.rng.Float64()
	v := lo*(1-u) + hi*u
	return min(max(v, lo), hi), nil
}

func genString(g *Generator, c domain.Constraints) (any, error) {
	var n int
	if c.Length != nil {
		var err error
		if n, err = g.checkLength(domain.TypeString, *c.Length); err != nil {
			return nil, err
		}
	} else {
		n = domain.DefaultStringMinLen + g.rng.IntN(domain.DefaultStringMaxLen-domain.DefaultStringMinLen+1)
	}

	chars := domain.DefaultChars
	if c.Chars != nil {
		chars = *c.Chars
	}
	alphabet := []rune(chars)
	if len(alphabet) == 0 && n > 0 {
		return nil, domain.NewRangeError(domain.TypeString, "chars is empty")
	}

	var sb strings.Builder
	sb.Grow(min(n, preallocCap))
	for range n {
		sb.WriteRune(alphabet[g.rng.IntN(len(alphabet))])
	}
	return sb.String(), nil
}

func genBoolean(g *Generator, _ domain.Constraints) (any, error) {
	return g.rng.IntN(2) == 1, nil
}

func genDate(g *Generator, c domain.Constraints) (any, error) {
	start, end := domain.DefaultStartDate, domain.DefaultEndDate
	if c.Start != nil {
		start = *c.Start
	}
	if c.End != nil {
		end = *c.End
	}

	days := start.DaysUntil(end)
	if days <= 0 {
		return nil, domain.NewRangeError(domain.TypeDate, "end %s is not after start %s", end, start)
	}
	return start.AddDays(int(g.rng.Int64N(days))), nil
}

func genUUID(g *Generator, _ domain.Constraints) (any, error) {
	id, err := uuid.NewRandomFromReader(g.src)
	if err != nil {
		return nil, fmt.Errorf("uuid: %w", err)
	}
	return id.String(), nil
}

func genList(g *Generator, c domain.Constraints) (any, error) {
	itemType := c.ItemType.Or(domain.DefaultItemType)

	var n int
	if c.Length != nil {
		var err error
		if n, err = g.checkLength(domain.TypeList, *c.Length); err != nil {
			return nil, err
		}
	} else {
		n = domain.DefaultListMinLen + g.rng.IntN(domain.DefaultListMaxLen-domain.DefaultListMinLen+1)
	}

	var itemConstraints domain.Constraints
	if c.ItemConstraints != nil {
		itemConstraints = *c.ItemConstraints
	}

	items := make([]any, 0, min(n, preallocCap))
	for i := range n {
		v, err := g.Generate(itemType, itemConstraints)
		if err != nil {
			return nil, wrapPath(fmt.Sprintf("[%d]", i), err)
		}
		items = append(items, v)
	}
	return items, nil
}

func (g *Generator) checkLength(tag domain.TypeTag, n int) (int, error) {
	if n < 0 {
		return 0, domain.NewRangeError(tag, "length %d is negative", n)
	}
	if g.maxLength > 0 && n > g.maxLength {
		return 0, domain.NewRangeError(tag, "length %d exceeds the limit of %d", n, g.maxLength)
	}
	return n, nil
}

func genDict(g *Generator, c domain.Constraints) (any, error) {
	rec, err := g.GenerateRecord(c.Fields)
	if err != nil {
		return nil, err
	}
	return rec, nil
}
