package pool

import (
	"errors"
	"testing"
)

type widget struct {
	id    int
	dirty bool
}

func newWidgetPool() *Pool[widget] {
	next := 0
	return New(
		func() *widget {
			next++
			return &widget{id: next}
		},
		func(w *widget) { w.dirty = false },
	)
}

func TestPoolGrowsOnDemand(t *testing.T) {
	p := newWidgetPool()

	a := p.Acquire()
	b := p.Acquire()
	if a == b {
		t.Fatal("Acquire should return distinct items")
	}
	if p.ActiveCount() != 2 {
		t.Errorf("ActiveCount() = %d, expected 2", p.ActiveCount())
	}
	if p.PooledCount() != 0 {
		t.Errorf("PooledCount() = %d, expected 0", p.PooledCount())
	}
	if p.AllocatedCount() != 2 {
		t.Errorf("AllocatedCount() = %d, expected 2", p.AllocatedCount())
	}
}

func TestPoolReusesReleasedItems(t *testing.T) {
	p := newWidgetPool()

	a := p.Acquire()
	if err := p.Release(a); err != nil {
		t.Fatalf("Release() failed: %v", err)
	}

	b := p.Acquire()
	if a != b {
		t.Error("Acquire after Release should reuse the pooled item")
	}
	if p.AllocatedCount() != 1 {
		t.Errorf("AllocatedCount() = %d, expected 1", p.AllocatedCount())
	}
}

func TestPoolResetOnRelease(t *testing.T) {
	p := newWidgetPool()

	a := p.Acquire()
	a.dirty = true
	if err := p.Release(a); err != nil {
		t.Fatalf("Release() failed: %v", err)
	}

	b := p.Acquire()
	if b.dirty {
		t.Error("released item should have transient state reset before reuse")
	}
}

func TestPoolDoubleReleaseFails(t *testing.T) {
	p := newWidgetPool()

	a := p.Acquire()
	if err := p.Release(a); err != nil {
		t.Fatalf("first Release() failed: %v", err)
	}

	err := p.Release(a)
	if !errors.Is(err, ErrInvalidRelease) {
		t.Errorf("double Release() = %v, expected ErrInvalidRelease", err)
	}

	// Pool bijection must survive the bad call.
	if p.AllocatedCount() != 1 || p.PooledCount() != 1 || p.ActiveCount() != 0 {
		t.Errorf("counts after double release: active=%d pooled=%d allocated=%d",
			p.ActiveCount(), p.PooledCount(), p.AllocatedCount())
	}
}

func TestPoolReleaseOfForeignItemFails(t *testing.T) {
	p := newWidgetPool()
	stray := &widget{id: 999}

	if err := p.Release(stray); !errors.Is(err, ErrInvalidRelease) {
		t.Errorf("Release of foreign item = %v, expected ErrInvalidRelease", err)
	}
	if p.AllocatedCount() != 0 {
		t.Errorf("foreign release must not grow the pool, allocated=%d", p.AllocatedCount())
	}
}

func TestPoolBijectionUnderChurn(t *testing.T) {
	p := newWidgetPool()
	var held []*widget

	// Deterministic churn: acquire in bursts, release every third item.
	for round := 0; round < 50; round++ {
		for i := 0; i < 4; i++ {
			held = append(held, p.Acquire())
		}
		for len(held) > 0 && len(held)%3 == 0 {
			last := held[len(held)-1]
			held = held[:len(held)-1]
			if err := p.Release(last); err != nil {
				t.Fatalf("Release() failed: %v", err)
			}
		}

		if p.ActiveCount()+p.PooledCount() != p.AllocatedCount() {
			t.Fatalf("bijection broken: active=%d pooled=%d allocated=%d",
				p.ActiveCount(), p.PooledCount(), p.AllocatedCount())
		}
		if p.ActiveCount() != len(held) {
			t.Fatalf("ActiveCount() = %d, expected %d", p.ActiveCount(), len(held))
		}
	}

	// Allocation never shrinks.
	before := p.AllocatedCount()
	for _, w := range held {
		if err := p.Release(w); err != nil {
			t.Fatalf("Release() failed: %v", err)
		}
	}
	if p.AllocatedCount() != before {
		t.Errorf("AllocatedCount changed on release: %d -> %d", before, p.AllocatedCount())
	}
}
