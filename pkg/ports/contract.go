package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/fixtura/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contractSchema() domain.Schema {
	start := domain.NewDate(2023, 1, 1)
	return domain.Schema{
		{Name: "id", Spec: domain.FieldSpec{Type: domain.TypeUUID}},
		{Name: "age", Spec: domain.FieldSpec{Type: domain.TypeInteger, Constraints: domain.Constraints{
			Min: domain.Ptr(domain.Int(18)), Max: domain.Ptr(domain.Int(65)),
		}}},
		{Name: "created_at", Spec: domain.FieldSpec{Type: domain.TypeDate, Constraints: domain.Constraints{Start: &start}}},
		{Name: "address", Spec: domain.FieldSpec{Type: domain.TypeDict, Constraints: domain.Constraints{
			Fields: domain.Schema{
				{Name: "zip", Spec: domain.FieldSpec{Type: domain.TypeString, Constraints: domain.Constraints{
					Length: domain.Ptr(5), Chars: domain.Ptr("0123456789"),
				}}},
				{Name: "coordinates", Spec: domain.FieldSpec{Type: domain.TypeList, Constraints: domain.Constraints{
					ItemType: domain.TypeFloat, Length: domain.Ptr(2),
				}}},
			},
		}}},
	}
}

// RunSchemaStoreContract runs a suite of tests to verify that a SchemaStore implementation
// adheres to the defined interface contract.
func RunSchemaStoreContract(t *testing.T, store SchemaStore) {
	ctx := context.Background()
	name := "contract-test-schema-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		schema := contractSchema()

		err := store.Save(ctx, name, schema)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, schema, loaded, "Load should return the saved schema, field order included")
	})

	t.Run("Save Replaces", func(t *testing.T) {
		replacement := domain.Schema{{Name: "only", Spec: domain.FieldSpec{Type: domain.TypeBoolean}}}
		require.NoError(t, store.Save(ctx, name, replacement))

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, []string{"only"}, loaded.Names())
	})

	t.Run("Load Isolated From Caller", func(t *testing.T) {
		schema := contractSchema()
		require.NoError(t, store.Save(ctx, name, schema))
		*schema[1].Spec.Constraints.Min = domain.Int(-1)

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, domain.Int(18), *loaded[1].Spec.Constraints.Min)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+name)
		assert.ErrorIs(t, err, domain.ErrSchemaNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, name, contractSchema()))

		err := store.Delete(ctx, name)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, name)
		assert.ErrorIs(t, err, domain.ErrSchemaNotFound, "Load after Delete should return ErrSchemaNotFound")

		assert.NoError(t, store.Delete(ctx, name), "Delete of a missing schema should not fail")
	})

	t.Run("List", func(t *testing.T) {
		id1 := name + "-b"
		id2 := name + "-a"
		_ = store.Save(ctx, id1, contractSchema())
		_ = store.Save(ctx, id2, contractSchema())

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, id1)
		assert.Contains(t, names, id2)
		assert.IsNonDecreasing(t, names)
	})
}
