package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/aretw0/fixtura/pkg/adapters/memory"
	"github.com/aretw0/fixtura/pkg/domain"
	"github.com/aretw0/fixtura/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	ports.RunSchemaStoreContract(t, store)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	schema := domain.Schema{{Name: "n", Spec: domain.FieldSpec{Type: domain.TypeInteger}}}

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := string(rune('a' + i))
			assert.NoError(t, store.Save(ctx, name, schema))
			_, err := store.Load(ctx, name)
			assert.NoError(t, err)
			_, err = store.List(ctx)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, names, 20)
}

func TestMemoryStore_SaveNil(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "empty", nil))
	loaded, err := store.Load(ctx, "empty")
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
