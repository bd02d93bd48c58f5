// Package pool provides a generic free-list object pool for recyclable
// game entities. Pooled items live in exactly one of two places at any
// time: the free list or the active set. The pool grows on demand
// through a caller-supplied factory and never shrinks.
package pool

import "errors"

// ErrInvalidRelease is reported when an item is released that is not in
// the active set: either it was already released, or the pool never
// issued it. The pool is left untouched in both cases.
var ErrInvalidRelease = errors.New("pool: release of item not in active set")

// Pool is a free-list/active-set pool for *T items.
// It is not safe for concurrent use; all operations must run on the
// simulation goroutine, like the rest of the game core.
type Pool[T any] struct {
	factory func() *T
	reset   func(*T)
	free    []*T
	active  map[*T]struct{}
}

// New creates a pool. factory constructs a fresh item when the free
// list is empty; reset clears an item's transient state before it
// re-enters the free list. Both must be non-nil.
func New[T any](factory func() *T, reset func(*T)) *Pool[T] {
	if factory == nil {
		panic("pool: nil factory")
	}
	if reset == nil {
		panic("pool: nil reset")
	}
	return &Pool[T]{
		factory: factory,
		reset:   reset,
		active:  make(map[*T]struct{}),
	}
}

// Acquire removes one item from the free list, or constructs a new one
// if the list is empty. It never fails and never blocks.
func (p *Pool[T]) Acquire() *T {
	var item *T
	if n := len(p.free); n > 0 {
		item = p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
	} else {
		item = p.factory()
	}
	p.active[item] = struct{}{}
	return item
}

// Release resets an item's transient state and returns it to the free
// list. Releasing an item that is not currently active returns
// ErrInvalidRelease without modifying the pool.
func (p *Pool[T]) Release(item *T) error {
	if _, ok := p.active[item]; !ok {
		return ErrInvalidRelease
	}
	delete(p.active, item)
	p.reset(item)
	p.free = append(p.free, item)
	return nil
}

// ActiveCount returns the number of items currently in use.
func (p *Pool[T]) ActiveCount() int {
	return len(p.active)
}

// PooledCount returns the number of items waiting in the free list.
func (p *Pool[T]) PooledCount() int {
	return len(p.free)
}

// AllocatedCount returns the total number of items the pool has ever
// constructed. Always equals ActiveCount() + PooledCount().
func (p *Pool[T]) AllocatedCount() int {
	return len(p.active) + len(p.free)
}
