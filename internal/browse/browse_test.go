package browse

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestContents(t *testing.T) {
	t.Parallel()

	if diff := cmp.Diff([]int{0, 1}, Contents(0)); diff != "" {
		t.Fatalf("Contents(0) (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3}, Contents(2)); diff != "" {
		t.Fatalf("Contents(2) (-want +got):\n%s", diff)
	}
	if got := len(Contents(MaxItem)); got != MaxItem+2 {
		t.Fatalf("expected %d entries for MaxItem; got %d", MaxItem+2, got)
	}

	for _, item := range []int{-1, -5, MaxItem + 1, math.MaxInt - 1, math.MaxInt, math.MinInt} {
		if got := Contents(item); len(got) != 0 {
			t.Fatalf("expected empty contents for item %d; got %d entries", item, len(got))
		}
	}
}

func TestMock_RejectsOutOfRangeItems(t *testing.T) {
	t.Parallel()

	m := NewMock(MockOpts{FailurePercent: 0})
	for _, item := range []int{-1, MaxItem + 1, math.MaxInt - 1, math.MaxInt, math.MinInt} {
		got, err := m.Browse(context.Background(), item)
		if !errors.Is(err, ErrItemOutOfRange) {
			t.Fatalf("Browse(%d): expected ErrItemOutOfRange; got %v", item, err)
		}
		if got != nil {
			t.Fatalf("Browse(%d): expected no contents; got %d entries", item, len(got))
		}
	}

	got, err := m.Browse(context.Background(), MaxItem)
	if err != nil {
		t.Fatalf("Browse(MaxItem): %v", err)
	}
	if len(got) != MaxItem+2 {
		t.Fatalf("expected %d entries; got %d", MaxItem+2, len(got))
	}
}

func TestMock_NeverFails(t *testing.T) {
	t.Parallel()

	m := NewMock(MockOpts{FailurePercent: 0})
	for i := 0; i < 50; i++ {
		got, err := m.Browse(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("expected 3 items; got %v", got)
		}
	}
}

func TestMock_AlwaysFails(t *testing.T) {
	t.Parallel()

	m := NewMock(MockOpts{FailurePercent: 150})
	if _, err := m.Browse(context.Background(), 0); !errors.Is(err, ErrBadResponse) {
		t.Fatalf("expected ErrBadResponse; got %v", err)
	}
}

func TestMock_FailureRateIsRoughlyHonoured(t *testing.T) {
	t.Parallel()

	m := NewMock(MockOpts{FailurePercent: 20, Rand: rand.New(rand.NewPCG(1, 2))})
	fails := 0
	const n = 2000
	for i := 0; i < n; i++ {
		if _, err := m.Browse(context.Background(), 0); err != nil {
			fails++
		}
	}
	if fails < n/10 || fails > n*3/10 {
		t.Fatalf("expected about 20%% failures; got %d/%d", fails, n)
	}
}

func TestMock_HonoursContext(t *testing.T) {
	t.Parallel()

	m := NewMock(MockOpts{Delay: time.Hour})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := m.Browse(ctx, 0); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled; got %v", err)
	}
}
