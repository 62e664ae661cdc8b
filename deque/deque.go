// Package deque implements a bounded array-backed double-ended queue kept
// in most-recent-first order. The array backing gives the store's hot
// cache good locality when listings traverse it on every request.
package deque

// Deque is not safe for concurrent use; callers hold their own locks.
type Deque[T any] struct {
	buf  []T
	head int
	size int
}

func New[T any](capacity int) *Deque[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Deque[T]{buf: make([]T, capacity)}
}

func (d *Deque[T]) Size() int { return d.size }

func (d *Deque[T]) Cap() int { return len(d.buf) }

func (d *Deque[T]) IsEmpty() bool { return d.size == 0 }

func (d *Deque[T]) IsFull() bool { return d.size == len(d.buf) }

// AddFirst pushes v to the front, evicting the last element when full.
func (d *Deque[T]) AddFirst(v T) {
	d.head = (d.head - 1 + len(d.buf)) % len(d.buf)
	d.buf[d.head] = v
	if d.size < len(d.buf) {
		d.size++
	}
}

// RemoveLast pops the oldest element.
func (d *Deque[T]) RemoveLast() (T, bool) {
	var zero T
	if d.size == 0 {
		return zero, false
	}
	i := (d.head + d.size - 1) % len(d.buf)
	v := d.buf[i]
	d.buf[i] = zero
	d.size--
	return v, true
}

// Get returns the element at position i, 0 being the most recent.
// The index must be in [0, Size).
func (d *Deque[T]) Get(i int) T {
	return d.buf[(d.head+i)%len(d.buf)]
}

// Traverse visits elements front to back, newest first.
func (d *Deque[T]) Traverse(f func(i int, v T)) {
	for i := 0; i < d.size; i++ {
		f(i, d.Get(i))
	}
}

func (d *Deque[T]) Clear() {
	var zero T
	for i := range d.buf {
		d.buf[i] = zero
	}
	d.head = 0
	d.size = 0
}
