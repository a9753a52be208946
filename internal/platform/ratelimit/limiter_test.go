package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudget_BurstThenBlocks(t *testing.T) {
	b := NewBudget(1, 2)

	assert.True(t, b.Allow())
	assert.True(t, b.Allow())
	assert.False(t, b.Allow())
}

func TestBudget_WaitHonoursContext(t *testing.T) {
	b := NewBudget(1, 1)
	require.True(t, b.Allow())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	assert.Error(t, b.Wait(ctx))
}

func TestBudget_DisabledNeverBlocks(t *testing.T) {
	b := NewBudget(0, 0)
	for i := 0; i < 100; i++ {
		require.True(t, b.Allow())
	}
	require.NoError(t, b.Wait(context.Background()))
}

func TestBudget_DrainEmptiesBucket(t *testing.T) {
	b := NewBudget(1, 5)
	b.Drain()
	assert.False(t, b.Allow())
}

func TestBudget_NilIsPermissive(t *testing.T) {
	var b *Budget
	assert.True(t, b.Allow())
	assert.NoError(t, b.Wait(context.Background()))
	assert.NotPanics(t, b.Drain)
}

func TestBudget_AcquireWithoutWaitNeverBlocks(t *testing.T) {
	b := NewBudget(1, 1)
	b.Drain()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.Error(t, b.Acquire(ctx))

	started := time.Now()
	require.NoError(t, b.Acquire(WithoutWait(context.Background())))
	assert.Less(t, time.Since(started), 10*time.Millisecond)
}

func TestBudget_AcquireWithoutWaitTakesFreeToken(t *testing.T) {
	b := NewBudget(1, 1)
	require.NoError(t, b.Acquire(WithoutWait(context.Background())))
	assert.False(t, b.Allow())
}
