// Package simulator fabricates network behavior for the in-memory
// backend: randomized latency within a window and randomized failure
// injection. It exists so the client layers can exercise their loading
// and error paths without a real network.
package simulator

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Window is an inclusive [Min, Max] latency range.
type Window struct {
	Min time.Duration
	Max time.Duration
}

// Latency windows used by the data service. AI operations take longer;
// logout and current-user lookups are quick; Chunk paces canned streaming
// output.
var (
	Default = Window{Min: 300 * time.Millisecond, Max: 800 * time.Millisecond}
	Quick   = Window{Min: 100 * time.Millisecond, Max: 300 * time.Millisecond}
	AI      = Window{Min: 800 * time.Millisecond, Max: 2 * time.Second}
	Chunk   = Window{Min: 50 * time.Millisecond, Max: 150 * time.Millisecond}
)

// Simulator decides how long an operation waits and whether it is
// short-circuited to a failure. Implementations must be safe for
// concurrent use.
type Simulator interface {
	// Delay blocks for a duration within w, or returns early with the
	// context's error.
	Delay(ctx context.Context, w Window) error

	// ShouldFail rolls the failure check. Every operation rolls
	// independently; there is no retry logic at this layer.
	ShouldFail() bool
}

// Network is the production simulator: uniform random latency and a fixed
// failure probability.
type Network struct {
	rate float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewNetwork creates a simulator with the given failure rate in [0, 1].
func NewNetwork(failureRate float64) *Network {
	return &Network{
		rate: failureRate,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewNetworkWithSource creates a simulator with a caller-supplied random
// source, for reproducible runs.
func NewNetworkWithSource(failureRate float64, src rand.Source) *Network {
	return &Network{
		rate: failureRate,
		rng:  rand.New(src),
	}
}

func (n *Network) Delay(ctx context.Context, w Window) error {
	n.mu.Lock()
	span := w.Max - w.Min
	d := w.Min
	if span > 0 {
		d += time.Duration(n.rng.Int63n(int64(span) + 1))
	}
	n.mu.Unlock()

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (n *Network) ShouldFail() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.rng.Float64() < n.rate
}

// Static is a deterministic simulator for tests: zero delay and a fixed
// failure decision.
type Static struct {
	Fail bool
}

// NewStatic creates a simulator that never delays and never fails.
func NewStatic() *Static {
	return &Static{}
}

func (s *Static) Delay(ctx context.Context, _ Window) error {
	return ctx.Err()
}

func (s *Static) ShouldFail() bool {
	return s.Fail
}
