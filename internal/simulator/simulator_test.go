package simulator

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetworkDelayStaysWithinWindow(t *testing.T) {
	sim := NewNetworkWithSource(0, rand.NewSource(1))
	w := Window{Min: 5 * time.Millisecond, Max: 20 * time.Millisecond}

	start := time.Now()
	err := sim.Delay(context.Background(), w)
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, elapsed, w.Min)
}

func TestNetworkDelayHonorsContextCancel(t *testing.T) {
	sim := NewNetworkWithSource(0, rand.NewSource(1))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sim.Delay(ctx, Window{Min: time.Second, Max: 2 * time.Second})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNetworkFailureRate(t *testing.T) {
	never := NewNetworkWithSource(0, rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		assert.False(t, never.ShouldFail())
	}

	always := NewNetworkWithSource(1, rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		assert.True(t, always.ShouldFail())
	}
}

func TestStaticIsDeterministic(t *testing.T) {
	sim := NewStatic()

	start := time.Now()
	require.NoError(t, sim.Delay(context.Background(), AI))
	assert.Less(t, time.Since(start), 10*time.Millisecond)
	assert.False(t, sim.ShouldFail())

	sim.Fail = true
	assert.True(t, sim.ShouldFail())
}
