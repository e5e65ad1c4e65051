package requestrepo

import (
	"context"
	"testing"

	"lendshelf/model"

	"github.com/stretchr/testify/require"
)

func TestCreate_IdsMonotonicNeverReused(t *testing.T) {
	ctx := context.Background()
	r := NewMemory()

	first, err := r.Create(ctx, 2, 10, "Programming in C")
	require.NoError(t, err)

	require.NoError(t, r.Cancel(ctx, first.ID))

	second, err := r.Create(ctx, 2, 10, "Programming in C")
	require.NoError(t, err)
	require.Greater(t, second.ID, first.ID)
}

func TestCreate_TimestampsNonDecreasing(t *testing.T) {
	ctx := context.Background()
	r := NewMemory()

	a, err := r.Create(ctx, 1, 10, "x")
	require.NoError(t, err)
	b, err := r.Create(ctx, 2, 10, "y")
	require.NoError(t, err)
	require.False(t, b.CreatedAt.Before(a.CreatedAt))
}

func TestCreate_DuplicatePendingBlocked(t *testing.T) {
	ctx := context.Background()
	r := NewMemory()

	_, err := r.Create(ctx, 2, 10, "Programming in C")
	require.NoError(t, err)

	_, err = r.Create(ctx, 2, 10, "Programming in C")
	require.ErrorIs(t, err, ErrDuplicatePending)

	ok, err := r.HasPending(ctx, 2, 10)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = r.HasPending(ctx, 2, 11)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCancel_RemovesPendingOnly(t *testing.T) {
	ctx := context.Background()
	r := NewMemory()

	req, err := r.Create(ctx, 2, 10, "Programming in C")
	require.NoError(t, err)

	_, err = r.SetStatus(ctx, req.ID, model.RequestApproved)
	require.NoError(t, err)

	err = r.Cancel(ctx, req.ID)
	require.ErrorIs(t, err, ErrInvalidState)

	// ledger unchanged
	got, err := r.Get(ctx, req.ID)
	require.NoError(t, err)
	require.Equal(t, model.RequestApproved, got.Status)

	require.ErrorIs(t, r.Cancel(ctx, 404), ErrNotFound)
}

func TestSetStatus_LegalTransitionsOnly(t *testing.T) {
	ctx := context.Background()
	r := NewMemory()

	req, err := r.Create(ctx, 2, 10, "Programming in C")
	require.NoError(t, err)

	// pending -> pending is not a transition
	_, err = r.SetStatus(ctx, req.ID, model.RequestPending)
	require.ErrorIs(t, err, ErrInvalidState)

	out, err := r.SetStatus(ctx, req.ID, model.RequestRejected)
	require.NoError(t, err)
	require.Equal(t, model.RequestRejected, out.Status)

	// terminal -> anything fails
	_, err = r.SetStatus(ctx, req.ID, model.RequestApproved)
	require.ErrorIs(t, err, ErrInvalidState)

	_, err = r.SetStatus(ctx, 404, model.RequestApproved)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListFor_InsertionOrderPerRequester(t *testing.T) {
	ctx := context.Background()
	r := NewMemory()

	a, err := r.Create(ctx, 1, 10, "a")
	require.NoError(t, err)
	_, err = r.Create(ctx, 1, 11, "a")
	require.NoError(t, err)
	b, err := r.Create(ctx, 2, 10, "b")
	require.NoError(t, err)

	rows, err := r.ListFor(ctx, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, a.ID, rows[0].ID)
	require.Equal(t, b.ID, rows[1].ID)
}

func TestHasPending_FalseAfterTerminal(t *testing.T) {
	ctx := context.Background()
	r := NewMemory()

	req, err := r.Create(ctx, 2, 10, "x")
	require.NoError(t, err)
	_, err = r.SetStatus(ctx, req.ID, model.RequestApproved)
	require.NoError(t, err)

	ok, err := r.HasPending(ctx, 2, 10)
	require.NoError(t, err)
	require.False(t, ok)
}
