package catalogrepo

import (
	"context"
	"testing"

	"lendshelf/model"

	"github.com/stretchr/testify/require"
)

func TestMemory_ListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	r := NewMemory([]model.Item{
		{ID: 5, Title: "five"},
		{ID: 1, Title: "one"},
		{ID: 3, Title: "three"},
	})

	items, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, int64(5), items[0].ID)
	require.Equal(t, int64(1), items[1].ID)
	require.Equal(t, int64(3), items[2].ID)
}

func TestMemory_GetUnknown(t *testing.T) {
	r := NewMemory(nil)
	_, err := r.Get(context.Background(), 9)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_SetAvailabilityIdempotent(t *testing.T) {
	ctx := context.Background()
	r := NewMemory([]model.Item{{ID: 1, Title: "one", Available: true}})

	it, err := r.SetAvailability(ctx, 1, true)
	require.NoError(t, err)
	require.True(t, it.Available)

	it, err = r.SetAvailability(ctx, 1, false)
	require.NoError(t, err)
	require.False(t, it.Available)

	_, err = r.SetAvailability(ctx, 9, false)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_ReturnedCopiesDoNotAliasStore(t *testing.T) {
	ctx := context.Background()
	r := NewMemory([]model.Item{{ID: 1, Title: "one", Available: true}})

	items, err := r.List(ctx)
	require.NoError(t, err)
	items[0].Available = false

	got, err := r.Get(ctx, 1)
	require.NoError(t, err)
	require.True(t, got.Available)
}
