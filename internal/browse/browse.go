// Package browse is the content service the browser screens talk to. Only a
// mock exists: it sleeps, sometimes fails, and otherwise returns 0..item+1.
package browse

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

var (
	ErrBadResponse    = errors.New("browse: bad response")
	ErrItemOutOfRange = errors.New("browse: item out of range")
)

const (
	DefaultDelay          = 500 * time.Millisecond
	DefaultFailurePercent = 20

	// MaxItem is the largest item the mock serves; its contents hold
	// MaxItem+2 entries.
	MaxItem = 1 << 16
)

// Client fetches the contents behind an item.
type Client interface {
	Browse(ctx context.Context, item int) ([]int, error)
}

type MockOpts struct {
	Delay time.Duration
	// FailurePercent is the chance (0..100) that a call fails.
	FailurePercent int
	// Rand overrides the random source; nil uses a time-seeded PCG.
	Rand *rand.Rand
}

type Mock struct {
	delay          time.Duration
	failurePercent int

	mu  sync.Mutex
	rng *rand.Rand
}

func NewMock(opts MockOpts) *Mock {
	pct := opts.FailurePercent
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	rng := opts.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	return &Mock{delay: opts.Delay, failurePercent: pct, rng: rng}
}

func (m *Mock) Browse(ctx context.Context, item int) ([]int, error) {
	if item < 0 || item > MaxItem {
		return nil, fmt.Errorf("%w: %d (want 0..%d)", ErrItemOutOfRange, item, MaxItem)
	}
	if m.delay > 0 {
		t := time.NewTimer(m.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-t.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.fails() {
		return nil, ErrBadResponse
	}
	return Contents(item), nil
}

func (m *Mock) fails() bool {
	if m.failurePercent <= 0 {
		return false
	}
	if m.failurePercent >= 100 {
		return true
	}
	m.mu.Lock()
	n := m.rng.IntN(100)
	m.mu.Unlock()
	return n < m.failurePercent
}

// Contents is the successful response for item: 0 through item+1. Items
// outside 0..MaxItem have no contents.
func Contents(item int) []int {
	if item < 0 || item > MaxItem {
		return []int{}
	}
	out := make([]int, item+2)
	for i := range out {
		out[i] = i
	}
	return out
}

// Func adapts a function to Client.
type Func func(ctx context.Context, item int) ([]int, error)

func (f Func) Browse(ctx context.Context, item int) ([]int, error) { return f(ctx, item) }
