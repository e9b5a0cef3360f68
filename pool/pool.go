// Package pool provides a small free list for instances that can be reset to
// their initial state, so hot loops can reuse them instead of allocating.
package pool

// Resettable is implemented by types whose instances can be restored to their
// initial state, readying them for a new logical lifetime. Reset is invoked by
// the pool when an instance is reclaimed, never by the instance itself.
type Resettable interface {
	Reset()
}

// Pool keeps reclaimed instances in a free list. An instance obtained from the
// pool has a single logical owner until it is freed again; the pool never hands
// the same instance to two owners. A Pool is not safe for concurrent use.
type Pool[T Resettable] struct {
	factory func() T
	maxSize int
	free    []T
}

// New returns a pool that creates instances with factory when the free list is
// empty and keeps at most maxSize reclaimed instances.
func New[T Resettable](factory func() T, maxSize int) *Pool[T] {
	return &Pool[T]{
		factory: factory,
		maxSize: maxSize,
		free:    make([]T, 0, maxSize),
	}
}

// Obtain returns an instance from the free list, or a fresh one when the list
// is empty.
func (p *Pool[T]) Obtain() T {
	n := len(p.free)
	if n == 0 {
		return p.factory()
	}
	instance := p.free[n-1]
	p.free = p.free[:n-1]
	return instance
}

// Free resets the instance and returns it to the free list. When the list is
// full the instance is dropped for the garbage collector to take. The caller
// must not use the instance afterwards.
func (p *Pool[T]) Free(instance T) {
	instance.Reset()
	if len(p.free) < p.maxSize {
		p.free = append(p.free, instance)
	}
}

// Len is the number of instances currently in the free list.
func (p *Pool[T]) Len() int {
	return len(p.free)
}

// Clear drops all instances from the free list.
func (p *Pool[T]) Clear() {
	p.free = p.free[:0]
}
