package generator

import (
	"errors"
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/aretw0/fixtura/pkg/domain"
	"github.com/aretw0/fixtura/pkg/schema"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const trials = 1000

func TestGenerate_Integer(t *testing.T) {
	g := New(WithSeed(1))

	tests := []struct {
		name     string
		c        domain.Constraints
		min, max int64
	}{
		{"defaults", domain.Constraints{}, -1000, 1000},
		{"explicit", domain.Constraints{Min: domain.Ptr(domain.Int(18)), Max: domain.Ptr(domain.Int(65))}, 18, 65},
		{"single value", domain.Constraints{Min: domain.Ptr(domain.Int(7)), Max: domain.Ptr(domain.Int(7))}, 7, 7},
		{"only min", domain.Constraints{Min: domain.Ptr(domain.Int(990))}, 990, 1000},
		{"only max", domain.Constraints{Max: domain.Ptr(domain.Int(-995))}, -1000, -995},
		{"fractional bounds", domain.Constraints{Min: domain.Ptr(domain.Float(0.5)), Max: domain.Ptr(domain.Float(2.5))}, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range trials {
				v, err := g.Generate(domain.TypeInteger, tt.c)
				require.NoError(t, err)
				n, ok := v.(int64)
				require.True(t, ok, "got %T", v)
				assert.GreaterOrEqual(t, n, tt.min)
				assert.LessOrEqual(t, n, tt.max)
			}
		})
	}
}

func TestGenerate_Integer_CoversBounds(t *testing.T) {
	g := New(WithSeed(2))
	seen := map[int64]bool{}
	for range trials {
		v, err := g.Generate(domain.TypeInteger, domain.Constraints{Min: domain.Ptr(domain.Int(0)), Max: domain.Ptr(domain.Int(3))})
		require.NoError(t, err)
		seen[v.(int64)] = true
	}
	assert.Equal(t, map[int64]bool{0: true, 1: true, 2: true, 3: true}, seen)
}

func TestGenerate_Integer_FullRange(t *testing.T) {
	g := New(WithSeed(3))
	_, err := g.Generate(domain.TypeInteger, domain.Constraints{
		Min: domain.Ptr(domain.Int(math.MinInt64)),
		Max: domain.Ptr(domain.Int(math.MaxInt64)),
	})
	assert.NoError(t, err)

	_, err = g.Generate(domain.TypeInteger, domain.Constraints{Max: domain.Ptr(domain.Float(1e19))})
	assert.ErrorIs(t, err, domain.ErrRange)
}

func TestGenerate_Integer_BeyondFloatPrecision(t *testing.T) {
	g := New(WithSeed(3))
	const big = 1<<53 + 1

	v, err := g.Generate(domain.TypeInteger, domain.Constraints{
		Min: domain.Ptr(domain.Int(big)),
		Max: domain.Ptr(domain.Int(big)),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(big), v)

	for range trials {
		v, err := g.Generate(domain.TypeInteger, domain.Constraints{
			Min: domain.Ptr(domain.Int(math.MaxInt64 - 2)),
			Max: domain.Ptr(domain.Int(math.MaxInt64 - 1)),
		})
		require.NoError(t, err)
		assert.Contains(t, []any{int64(math.MaxInt64 - 2), int64(math.MaxInt64 - 1)}, v)
	}

	_, err = g.Generate(domain.TypeInteger, domain.Constraints{
		Min: domain.Ptr(domain.Int(big + 1)),
		Max: domain.Ptr(domain.Int(big)),
	})
	assert.ErrorIs(t, err, domain.ErrRange)
}

func TestGenerateRecord_ParsedIntegerBounds(t *testing.T) {
	sc := schema.MustParse("n: {type: integer, constraints: {min: 9007199254740993, max: 9007199254740993}}")

	rec, err := New(WithSeed(3)).GenerateRecord(sc)
	require.NoError(t, err)
	n, _ := rec.Get("n")
	assert.Equal(t, int64(9007199254740993), n)
	assert.NoError(t, schema.Conforms(sc, rec))
}

func TestGenerate_Float(t *testing.T) {
	g := New(WithSeed(4))

	tests := []struct {
		name     string
		c        domain.Constraints
		min, max float64
	}{
		{"defaults", domain.Constraints{}, -1000, 1000},
		{"price", domain.Constraints{Min: domain.Ptr(domain.Int(0)), Max: domain.Ptr(domain.Int(100))}, 0, 100},
		{"degenerate", domain.Constraints{Min: domain.Ptr(domain.Float(1.5)), Max: domain.Ptr(domain.Float(1.5))}, 1.5, 1.5},
		{"huge span", domain.Constraints{Min: domain.Ptr(domain.Float(-1.7e308)), Max: domain.Ptr(domain.Float(1.7e308))}, -1.7e308, 1.7e308},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range trials {
				v, err := g.Generate(domain.TypeFloat, tt.c)
				require.NoError(t, err)
				f, ok := v.(float64)
				require.True(t, ok, "got %T", v)
				assert.GreaterOrEqual(t, f, tt.min)
				assert.LessOrEqual(t, f, tt.max)
			}
		})
	}
}

func TestGenerate_InvertedNumericRange(t *testing.T) {
	g := New(WithSeed(5))

	for _, tag := range []domain.TypeTag{domain.TypeInteger, domain.TypeFloat} {
		_, err := g.Generate(tag, domain.Constraints{Min: domain.Ptr(domain.Int(10)), Max: domain.Ptr(domain.Int(1))})
		var re *domain.RangeError
		require.ErrorAs(t, err, &re, "type %s", tag)
		assert.Equal(t, tag, re.Type)
	}

	_, err := g.Generate(domain.TypeInteger, domain.Constraints{Min: domain.Ptr(domain.Float(1.2)), Max: domain.Ptr(domain.Float(1.8))})
	assert.ErrorIs(t, err, domain.ErrRange)
}

func TestGenerate_String(t *testing.T) {
	g := New(WithSeed(6))

	t.Run("explicit length and chars", func(t *testing.T) {
		for range trials {
			v, err := g.Generate(domain.TypeString, domain.Constraints{Length: domain.Ptr(5), Chars: domain.Ptr("0123456789")})
			require.NoError(t, err)
			s := v.(string)
			assert.Len(t, s, 5)
			for _, r := range s {
				assert.Contains(t, "0123456789", string(r))
			}
		}
	})

	t.Run("default alphabet", func(t *testing.T) {
		v, err := g.Generate(domain.TypeString, domain.Constraints{Length: domain.Ptr(200)})
		require.NoError(t, err)
		for _, r := range v.(string) {
			assert.True(t, strings.ContainsRune(domain.DefaultChars, r), "unexpected %q", r)
		}
	})

	t.Run("unicode alphabet counts runes", func(t *testing.T) {
		v, err := g.Generate(domain.TypeString, domain.Constraints{Length: domain.Ptr(4), Chars: domain.Ptr("αβγ")})
		require.NoError(t, err)
		assert.Equal(t, 4, utf8.RuneCountInString(v.(string)))
	})

	t.Run("zero length", func(t *testing.T) {
		v, err := g.Generate(domain.TypeString, domain.Constraints{Length: domain.Ptr(0), Chars: domain.Ptr("")})
		require.NoError(t, err)
		assert.Equal(t, "", v)
	})

	t.Run("unconstrained length redrawn per call", func(t *testing.T) {
		lengths := map[int]bool{}
		for range trials {
			v, err := g.Generate(domain.TypeString, domain.Constraints{})
			require.NoError(t, err)
			n := len(v.(string))
			assert.GreaterOrEqual(t, n, 5)
			assert.LessOrEqual(t, n, 20)
			lengths[n] = true
		}
		assert.Greater(t, len(lengths), 1)
	})

	t.Run("over the length limit", func(t *testing.T) {
		limited := New(WithSeed(6), WithMaxLength(16))
		_, err := limited.Generate(domain.TypeString, domain.Constraints{Length: domain.Ptr(17)})
		var re *domain.RangeError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, domain.TypeString, re.Type)

		v, err := limited.Generate(domain.TypeString, domain.Constraints{Length: domain.Ptr(16)})
		require.NoError(t, err)
		assert.Len(t, v, 16)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := g.Generate(domain.TypeString, domain.Constraints{Length: domain.Ptr(-1)})
		assert.ErrorIs(t, err, domain.ErrRange)
		_, err = g.Generate(domain.TypeString, domain.Constraints{Length: domain.Ptr(3), Chars: domain.Ptr("")})
		assert.ErrorIs(t, err, domain.ErrRange)
	})
}

func TestGenerate_Boolean(t *testing.T) {
	g := New(WithSeed(7))
	seen := map[bool]int{}
	for range trials {
		v, err := g.Generate(domain.TypeBoolean, domain.Constraints{})
		require.NoError(t, err)
		seen[v.(bool)]++
	}
	assert.Len(t, seen, 2)
}

func TestGenerate_Date(t *testing.T) {
	g := New(WithSeed(8))

	t.Run("defaults", func(t *testing.T) {
		for range trials {
			v, err := g.Generate(domain.TypeDate, domain.Constraints{})
			require.NoError(t, err)
			d := v.(domain.Date)
			assert.False(t, d.Before(domain.DefaultStartDate))
			assert.True(t, d.Before(domain.DefaultEndDate))
		}
	})

	t.Run("single day window", func(t *testing.T) {
		start, end := domain.NewDate(2023, 1, 1), domain.NewDate(2023, 1, 2)
		for range 100 {
			v, err := g.Generate(domain.TypeDate, domain.Constraints{Start: &start, End: &end})
			require.NoError(t, err)
			assert.Equal(t, start, v)
		}
	})

	t.Run("empty window", func(t *testing.T) {
		start := domain.NewDate(2023, 1, 1)
		_, err := g.Generate(domain.TypeDate, domain.Constraints{Start: &start, End: &start})
		var re *domain.RangeError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, domain.TypeDate, re.Type)
	})

	t.Run("start after default end", func(t *testing.T) {
		start := domain.NewDate(2025, 6, 1)
		_, err := g.Generate(domain.TypeDate, domain.Constraints{Start: &start})
		assert.ErrorIs(t, err, domain.ErrRange)
	})
}

func TestGenerate_UUID(t *testing.T) {
	g := New(WithSeed(9))
	seen := make(map[string]struct{}, trials)

	for range trials {
		v, err := g.Generate(domain.TypeUUID, domain.Constraints{})
		require.NoError(t, err)
		s := v.(string)

		id, err := uuid.Parse(s)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), id.Version())
		assert.Equal(t, uuid.RFC4122, id.Variant())
		assert.Equal(t, id.String(), s, "canonical form")

		seen[s] = struct{}{}
	}
	assert.Len(t, seen, trials)
}

func TestGenerate_List(t *testing.T) {
	g := New(WithSeed(10))

	t.Run("integer items", func(t *testing.T) {
		for range 100 {
			v, err := g.Generate(domain.TypeList, domain.Constraints{
				ItemType:        domain.TypeInteger,
				Length:          domain.Ptr(4),
				ItemConstraints: &domain.Constraints{Min: domain.Ptr(domain.Int(0)), Max: domain.Ptr(domain.Int(9))},
			})
			require.NoError(t, err)
			items := v.([]any)
			require.Len(t, items, 4)
			for _, item := range items {
				n := item.(int64)
				assert.GreaterOrEqual(t, n, int64(0))
				assert.LessOrEqual(t, n, int64(9))
			}
		}
	})

	t.Run("defaults to integer items", func(t *testing.T) {
		v, err := g.Generate(domain.TypeList, domain.Constraints{Length: domain.Ptr(3)})
		require.NoError(t, err)
		for _, item := range v.([]any) {
			assert.IsType(t, int64(0), item)
		}
	})

	t.Run("unconstrained length within default window", func(t *testing.T) {
		for range 100 {
			v, err := g.Generate(domain.TypeList, domain.Constraints{})
			require.NoError(t, err)
			n := len(v.([]any))
			assert.GreaterOrEqual(t, n, 1)
			assert.LessOrEqual(t, n, 10)
		}
	})

	t.Run("nested lists", func(t *testing.T) {
		v, err := g.Generate(domain.TypeList, domain.Constraints{
			ItemType: domain.TypeList,
			Length:   domain.Ptr(2),
			ItemConstraints: &domain.Constraints{
				ItemType: domain.TypeBoolean,
				Length:   domain.Ptr(3),
			},
		})
		require.NoError(t, err)
		outer := v.([]any)
		require.Len(t, outer, 2)
		for _, inner := range outer {
			assert.Len(t, inner.([]any), 3)
		}
	})

	t.Run("zero length", func(t *testing.T) {
		v, err := g.Generate(domain.TypeList, domain.Constraints{Length: domain.Ptr(0)})
		require.NoError(t, err)
		assert.Empty(t, v)
	})

	t.Run("over the length limit", func(t *testing.T) {
		limited := New(WithSeed(10), WithMaxLength(100))
		_, err := limited.Generate(domain.TypeList, domain.Constraints{ItemType: domain.TypeBoolean, Length: domain.Ptr(1 << 40)})
		assert.ErrorIs(t, err, domain.ErrRange)

		// The limit also applies to nested items and to forked generators.
		_, err = limited.Fork().Generate(domain.TypeList, domain.Constraints{
			ItemType:        domain.TypeString,
			Length:          domain.Ptr(2),
			ItemConstraints: &domain.Constraints{Length: domain.Ptr(101)},
		})
		var pe *PathError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "[0]", pe.Path)
		assert.ErrorIs(t, err, domain.ErrRange)

		v, err := limited.Generate(domain.TypeList, domain.Constraints{Length: domain.Ptr(100)})
		require.NoError(t, err)
		assert.Len(t, v, 100)
	})

	t.Run("item error aborts list", func(t *testing.T) {
		start := domain.NewDate(2023, 1, 1)
		v, err := g.Generate(domain.TypeList, domain.Constraints{
			ItemType:        domain.TypeDate,
			Length:          domain.Ptr(3),
			ItemConstraints: &domain.Constraints{Start: &start, End: &start},
		})
		assert.Nil(t, v)
		assert.ErrorIs(t, err, domain.ErrRange)

		var pe *PathError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "[0]", pe.Path)
	})
}

func TestGenerate_Dict(t *testing.T) {
	g := New(WithSeed(11))
	fields := domain.Schema{
		{Name: "street", Spec: domain.FieldSpec{Type: domain.TypeString}},
		{Name: "city", Spec: domain.FieldSpec{}},
		{Name: "zip", Spec: domain.FieldSpec{Type: domain.TypeString, Constraints: domain.Constraints{
			Length: domain.Ptr(5), Chars: domain.Ptr("0123456789"),
		}}},
		{Name: "coordinates", Spec: domain.FieldSpec{Type: domain.TypeList, Constraints: domain.Constraints{
			ItemType: domain.TypeFloat, Length: domain.Ptr(2),
		}}},
		{Name: "geo", Spec: domain.FieldSpec{Type: "geohash"}},
	}

	v, err := g.Generate(domain.TypeDict, domain.Constraints{Fields: fields})
	require.NoError(t, err)
	rec, ok := v.(domain.Record)
	require.True(t, ok, "got %T", v)

	assert.Equal(t, []string{"street", "city", "zip", "coordinates", "geo"}, rec.Names())

	city, _ := rec.Get("city")
	assert.IsType(t, "", city, "missing type defaults to string")

	zip, _ := rec.Get("zip")
	assert.Len(t, zip, 5)

	coords, _ := rec.Get("coordinates")
	assert.Len(t, coords, 2)

	geo, ok := rec.Get("geo")
	assert.True(t, ok, "unknown types keep their slot")
	assert.Nil(t, geo)
}

func TestGenerate_Dict_Empty(t *testing.T) {
	v, err := New(WithSeed(12)).Generate(domain.TypeDict, domain.Constraints{})
	require.NoError(t, err)
	assert.Equal(t, domain.Record{}, v)
}

func TestGenerate_Dict_ErrorPath(t *testing.T) {
	start := domain.NewDate(2023, 1, 1)
	fields := domain.Schema{
		{Name: "address", Spec: domain.FieldSpec{Type: domain.TypeDict, Constraints: domain.Constraints{
			Fields: domain.Schema{
				{Name: "moves", Spec: domain.FieldSpec{Type: domain.TypeList, Constraints: domain.Constraints{
					ItemType:        domain.TypeDate,
					Length:          domain.Ptr(1),
					ItemConstraints: &domain.Constraints{Start: &start, End: &start},
				}}},
			},
		}}},
	}

	_, err := New(WithSeed(13)).GenerateRecord(fields)
	var pe *PathError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "address.moves[0]", pe.Path)
	assert.True(t, errors.Is(err, domain.ErrRange))
}

func TestGenerate_UnknownType(t *testing.T) {
	g := New(WithSeed(14))
	for _, tag := range []domain.TypeTag{"", "geohash", "INTEGER"} {
		v, err := g.Generate(tag, domain.Constraints{Min: domain.Ptr(domain.Int(1))})
		assert.NoError(t, err)
		assert.Nil(t, v, "tag %q", tag)
	}
}

func TestGenerate_DoesNotMutateConstraints(t *testing.T) {
	c := domain.Constraints{
		ItemType:        domain.TypeString,
		ItemConstraints: &domain.Constraints{Length: domain.Ptr(2)},
	}
	before := c.Clone()

	_, err := New(WithSeed(15)).Generate(domain.TypeList, c)
	require.NoError(t, err)
	assert.Equal(t, before, c)
}

func TestWithStrategy(t *testing.T) {
	constant := func(g *Generator, c domain.Constraints) (any, error) {
		return "fixed", nil
	}
	g := New(WithSeed(16), WithStrategy("constant", constant))

	v, err := g.Generate("constant", domain.Constraints{})
	require.NoError(t, err)
	assert.Equal(t, "fixed", v)

	// Strategies are per generator.
	v, err = New(WithSeed(16)).Generate("constant", domain.Constraints{})
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestWithSeed_Reproducible(t *testing.T) {
	c := domain.Constraints{Fields: domain.Schema{
		{Name: "id", Spec: domain.FieldSpec{Type: domain.TypeUUID}},
		{Name: "name", Spec: domain.FieldSpec{}},
		{Name: "n", Spec: domain.FieldSpec{Type: domain.TypeFloat}},
	}}

	a, err := New(WithSeed(99)).Generate(domain.TypeDict, c)
	require.NoError(t, err)
	b, err := New(WithSeed(99)).Generate(domain.TypeDict, c)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	other, err := New(WithSeed(100)).Generate(domain.TypeDict, c)
	require.NoError(t, err)
	assert.NotEqual(t, a, other)
}

func TestFork_Independent(t *testing.T) {
	parent := New(WithSeed(17))
	a, b := parent.Fork(), parent.Fork()

	va, err := a.Generate(domain.TypeUUID, domain.Constraints{})
	require.NoError(t, err)
	vb, err := b.Generate(domain.TypeUUID, domain.Constraints{})
	require.NoError(t, err)
	assert.NotEqual(t, va, vb)
}
