package server

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuard(t *testing.T) (*InFlightGuard, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewInFlightGuard(rdb), mr
}

func TestGuardAcquireIsExclusive(t *testing.T) {
	guard, _ := newGuard(t)
	ctx := context.Background()

	acquired, err := guard.Acquire(ctx, "ORD-1")
	require.NoError(t, err)
	assert.True(t, acquired)

	again, err := guard.Acquire(ctx, "ORD-1")
	require.NoError(t, err)
	assert.False(t, again)

	other, err := guard.Acquire(ctx, "ORD-2")
	require.NoError(t, err)
	assert.True(t, other)
}

func TestGuardReleaseFreesSlot(t *testing.T) {
	guard, _ := newGuard(t)
	ctx := context.Background()

	_, err := guard.Acquire(ctx, "ORD-1")
	require.NoError(t, err)
	require.NoError(t, guard.Release(ctx, "ORD-1"))

	acquired, err := guard.Acquire(ctx, "ORD-1")
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestGuardSlotExpires(t *testing.T) {
	guard, mr := newGuard(t)
	ctx := context.Background()

	_, err := guard.Acquire(ctx, "ORD-1")
	require.NoError(t, err)

	mr.FastForward(inFlightTTL)

	acquired, err := guard.Acquire(ctx, "ORD-1")
	require.NoError(t, err)
	assert.True(t, acquired)
}
