package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestCollectionSeedsDefaultsOnFirstRead(t *testing.T) {
	kv := NewMemory()
	defaults := []widget{{ID: "w-1", Name: "first"}}
	coll := NewCollection(kv, "widgets", defaults, nil)

	items, err := coll.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, defaults, items)

	// The defaults must now be persisted, not just returned.
	raw, ok, err := kv.Read(context.Background(), "widgets")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, string(raw), "w-1")
}

func TestCollectionAllIsIdempotent(t *testing.T) {
	coll := NewCollection(NewMemory(), "widgets", []widget{{ID: "a"}, {ID: "b"}}, nil)
	ctx := context.Background()

	first, err := coll.All(ctx)
	require.NoError(t, err)
	second, err := coll.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCollectionReplaceRoundTrip(t *testing.T) {
	coll := NewCollection[widget](NewMemory(), "widgets", nil, nil)
	ctx := context.Background()

	require.NoError(t, coll.Replace(ctx, []widget{{ID: "x", Name: "replaced"}}))

	items, err := coll.All(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "replaced", items[0].Name)
}

func TestCollectionMutateAppends(t *testing.T) {
	coll := NewCollection(NewMemory(), "widgets", []widget{}, nil)
	ctx := context.Background()

	err := coll.Mutate(ctx, func(items []widget) ([]widget, error) {
		return append(items, widget{ID: "new"}), nil
	})
	require.NoError(t, err)

	items, err := coll.All(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "new", items[0].ID)
}

func TestCollectionReseedsOnCorruptBlob(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()
	require.NoError(t, kv.Write(ctx, "widgets", []byte("{not json")))

	var corruptKey string
	defaults := []widget{{ID: "seed"}}
	coll := NewCollection(kv, "widgets", defaults, func(key string, err error) {
		corruptKey = key
		assert.Error(t, err)
	})

	items, err := coll.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, defaults, items)
	assert.Equal(t, "widgets", corruptKey)

	// Recovery persists the defaults so the next read is clean.
	raw, ok, err := kv.Read(ctx, "widgets")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, string(raw), "seed")
}

func TestMemoryStoreDelete(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()

	require.NoError(t, kv.Write(ctx, "k", []byte("v")))
	require.NoError(t, kv.Delete(ctx, "k"))

	_, ok, err := kv.Read(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}
