package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/fixtura/pkg/adapters/redis"
	"github.com/aretw0/fixtura/pkg/domain"
	"github.com/aretw0/fixtura/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	return mr, client
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := newClient(t)

	store := redis.NewFromClient(client)
	ports.RunSchemaStoreContract(t, store)
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, client := newClient(t)

	store := redis.NewFromClient(client, redis.WithTTL(1*time.Second))
	ctx := context.Background()
	name := "schema-ttl"
	sc := domain.Schema{{Name: "id", Spec: domain.FieldSpec{Type: domain.TypeUUID}}}

	// 1. Save
	require.NoError(t, store.Save(ctx, name, sc))

	// 2. Verify List (immediately)
	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, names, name)

	// 3. Fast Forward time in miniredis (for Key Expiration)
	mr.FastForward(2 * time.Second)

	// 4. Verify Load (should fail)
	_, err = store.Load(ctx, name)
	assert.ErrorIs(t, err, domain.ErrSchemaNotFound)

	// 5. Verify List (lazily cleaned up)
	// The index is pruned against time.Now(), which miniredis cannot fast forward.
	time.Sleep(1200 * time.Millisecond)

	names, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, client := newClient(t)

	store := redis.NewFromClient(client, redis.WithPrefix("custom:app:"))
	ctx := context.Background()

	err := store.Save(ctx, "users", domain.Schema{{Name: "n", Spec: domain.FieldSpec{Type: domain.TypeInteger}}})
	require.NoError(t, err)

	assert.True(t, mr.Exists("custom:app:schema:users"), "Expected key with custom prefix to exist")
	assert.True(t, mr.Exists("custom:app:schemas"), "Expected index with custom prefix to exist")

	raw, err := mr.Get("custom:app:schema:users")
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":{"type":"integer"}}`, raw)

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"users"}, list)
}

func TestRedisStore_CorruptValue(t *testing.T) {
	mr, client := newClient(t)
	store := redis.NewFromClient(client)

	require.NoError(t, mr.Set(redis.DefaultPrefix+"schema:broken", "[not a mapping"))

	_, err := store.Load(context.Background(), "broken")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrSchemaNotFound)
}

func TestRedisStore_Ping(t *testing.T) {
	mr, client := newClient(t)
	store := redis.NewFromClient(client)
	assert.NoError(t, store.Ping(context.Background()))

	mr.Close()
	assert.Error(t, store.Ping(context.Background()))
}

func TestRedisStore_NameMatchingIndex(t *testing.T) {
	_, client := newClient(t)
	store := redis.NewFromClient(client)
	ctx := context.Background()

	sc := domain.Schema{{Name: "ok", Spec: domain.FieldSpec{Type: domain.TypeBoolean}}}
	require.NoError(t, store.Save(ctx, "schemas", sc))

	got, err := store.Load(ctx, "schemas")
	require.NoError(t, err)
	assert.Equal(t, sc, got)

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"schemas"}, names)
}
