package generator

import (
	"context"
	"testing"

	"github.com/aretw0/fixtura/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleSchema() domain.Schema {
	start := domain.NewDate(2023, 1, 1)
	return domain.Schema{
		{Name: "id", Spec: domain.FieldSpec{Type: domain.TypeUUID}},
		{Name: "name", Spec: domain.FieldSpec{Type: domain.TypeString, Constraints: domain.Constraints{Length: domain.Ptr(25)}}},
		{Name: "age", Spec: domain.FieldSpec{Type: domain.TypeInteger, Constraints: domain.Constraints{Min: domain.Ptr(domain.Int(18)), Max: domain.Ptr(domain.Int(65))}}},
		{Name: "is_active", Spec: domain.FieldSpec{Type: domain.TypeBoolean}},
		{Name: "created_at", Spec: domain.FieldSpec{Type: domain.TypeDate, Constraints: domain.Constraints{Start: &start}}},
		{Name: "price", Spec: domain.FieldSpec{Type: domain.TypeFloat, Constraints: domain.Constraints{Min: domain.Ptr(domain.Int(0)), Max: domain.Ptr(domain.Int(100))}}},
		{Name: "tags", Spec: domain.FieldSpec{Type: domain.TypeList, Constraints: domain.Constraints{
			ItemType: domain.TypeString, Length: domain.Ptr(3), ItemConstraints: &domain.Constraints{Length: domain.Ptr(5)},
		}}},
	}
}

func TestGenerateCases_Count(t *testing.T) {
	g := New(WithSeed(20))
	schema := exampleSchema()

	for _, n := range []int{0, 1, 5, 50} {
		cases, err := g.GenerateCases(n, schema)
		require.NoError(t, err)
		assert.NotNil(t, cases)
		assert.Len(t, cases, n)
		for _, rec := range cases {
			assert.Equal(t, schema.Names(), rec.Names())
		}
	}
}

func TestGenerateCases_EmptySchema(t *testing.T) {
	cases, err := New(WithSeed(21)).GenerateCases(3, nil)
	require.NoError(t, err)
	require.Len(t, cases, 3)
	for _, rec := range cases {
		assert.Empty(t, rec)
	}
}

func TestGenerateCases_FieldContracts(t *testing.T) {
	cases, err := New(WithSeed(22)).GenerateCases(200, exampleSchema())
	require.NoError(t, err)

	for _, rec := range cases {
		age, _ := rec.Get("age")
		assert.GreaterOrEqual(t, age.(int64), int64(18))
		assert.LessOrEqual(t, age.(int64), int64(65))

		name, _ := rec.Get("name")
		assert.Len(t, name, 25)

		created, _ := rec.Get("created_at")
		assert.False(t, created.(domain.Date).Before(domain.NewDate(2023, 1, 1)))

		tags, _ := rec.Get("tags")
		require.Len(t, tags, 3)
		for _, tag := range tags.([]any) {
			assert.Len(t, tag, 5)
		}
	}
}

func TestGenerateCases_ErrorAbortsBatch(t *testing.T) {
	start := domain.NewDate(2030, 1, 1)
	schema := domain.Schema{
		{Name: "ok", Spec: domain.FieldSpec{Type: domain.TypeBoolean}},
		{Name: "when", Spec: domain.FieldSpec{Type: domain.TypeDate, Constraints: domain.Constraints{Start: &start}}},
	}

	cases, err := New(WithSeed(23)).GenerateCases(5, schema)
	assert.Nil(t, cases)
	assert.ErrorIs(t, err, domain.ErrRange)

	var ce *CaseError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 0, ce.Index)
	assert.Contains(t, err.Error(), "case 0: when: date:")
}

func TestGenerateCases_NegativeCount(t *testing.T) {
	_, err := New(WithSeed(24)).GenerateCases(-1, exampleSchema())
	assert.ErrorIs(t, err, domain.ErrRange)
}

func TestGenerateCasesContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(WithSeed(25)).GenerateCasesContext(ctx, 10, exampleSchema())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateCasesParallel(t *testing.T) {
	schema := exampleSchema()

	for _, workers := range []int{0, 1, 3, 8, 100} {
		cases, err := New(WithSeed(26)).GenerateCasesParallel(context.Background(), 20, schema, workers)
		require.NoError(t, err, "workers=%d", workers)
		require.Len(t, cases, 20)
		for _, rec := range cases {
			assert.Equal(t, schema.Names(), rec.Names())
		}
	}
}

func TestGenerateCasesParallel_Reproducible(t *testing.T) {
	schema := exampleSchema()
	a, err := New(WithSeed(27)).GenerateCasesParallel(context.Background(), 40, schema, 4)
	require.NoError(t, err)
	b, err := New(WithSeed(27)).GenerateCasesParallel(context.Background(), 40, schema, 4)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateCasesParallel_Error(t *testing.T) {
	start := domain.NewDate(2030, 1, 1)
	schema := domain.Schema{
		{Name: "when", Spec: domain.FieldSpec{Type: domain.TypeDate, Constraints: domain.Constraints{Start: &start}}},
	}

	cases, err := New(WithSeed(28)).GenerateCasesParallel(context.Background(), 50, schema, 4)
	assert.Nil(t, cases)
	assert.ErrorIs(t, err, domain.ErrRange)
}

func TestGenerateCasesParallel_Zero(t *testing.T) {
	cases, err := New(WithSeed(29)).GenerateCasesParallel(context.Background(), 0, exampleSchema(), 4)
	require.NoError(t, err)
	assert.Empty(t, cases)
	assert.NotNil(t, cases)
}
