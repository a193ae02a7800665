package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_MarshalJSON_PreservesOrder(t *testing.T) {
	rec := Record{
		{Name: "zeta", Value: int64(1)},
		{Name: "alpha", Value: "a"},
		{Name: "created_at", Value: NewDate(2023, 1, 1)},
		{Name: "nested", Value: Record{{Name: "b", Value: true}, {Name: "a", Value: nil}}},
		{Name: "list", Value: []any{1.5, 2.5}},
	}

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Equal(t,
		`{"zeta":1,"alpha":"a","created_at":"2023-01-01","nested":{"b":true,"a":null},"list":[1.5,2.5]}`,
		string(data))
}

func TestRecord_Get(t *testing.T) {
	rec := Record{{Name: "a", Value: int64(1)}}

	v, ok := rec.Get("a")
	assert.True(t, ok)
	assert.Equal(t, int64(1), v)

	_, ok = rec.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, []string{"a"}, rec.Names())
}

func TestRecord_String(t *testing.T) {
	rec := Record{
		{Name: "age", Value: int64(42)},
		{Name: "tags", Value: []any{"ab", "cd"}},
		{Name: "address", Value: Record{{Name: "zip", Value: "01234"}}},
		{Name: "unknown", Value: nil},
	}
	assert.Equal(t, "{age: 42, tags: [ab cd], address: {zip: 01234}, unknown: null}", rec.String())
}

func TestRecord_EmptyMarshal(t *testing.T) {
	data, err := json.Marshal(Record(nil))
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}
