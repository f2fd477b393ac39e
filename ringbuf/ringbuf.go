// File: ringbuf/ringbuf.go
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>
//
// Bounded circular FIFO queue over a single contiguous slice.
// Cursors wrap modulo the capacity; a count field disambiguates the
// full and empty states when head and tail coincide.

package ringbuf

// RingBuffer is a fixed-capacity FIFO queue. The zero value is not usable;
// construct with New.
type RingBuffer[T any] struct {
	buf   []T
	head  int // oldest element, next Pop target
	tail  int // next free slot, next Push target
	count int // live elements; 0 <= count <= len(buf)
}

// New allocates a buffer holding up to capacity elements.
// Returns ErrInvalidCapacity when capacity < 1.
func New[T any](capacity int) (*RingBuffer[T], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &RingBuffer[T]{buf: make([]T, capacity)}, nil
}

// Cap returns the fixed capacity chosen at construction.
func (r *RingBuffer[T]) Cap() int { return len(r.buf) }

// Len returns the number of elements currently stored.
func (r *RingBuffer[T]) Len() int { return r.count }

// Free returns the number of unoccupied slots, Cap()-Len().
func (r *RingBuffer[T]) Free() int { return len(r.buf) - r.count }

// IsEmpty reports whether no element is stored.
func (r *RingBuffer[T]) IsEmpty() bool { return r.count == 0 }

// IsFull reports whether every slot holds an unread element.
func (r *RingBuffer[T]) IsFull() bool { return r.count == len(r.buf) }

// Push appends v after the newest element. Returns ErrFull when the buffer
// is at capacity; the buffer is unchanged on failure.
func (r *RingBuffer[T]) Push(v T) error {
	if r.count == len(r.buf) {
		return ErrFull
	}
	r.buf[r.tail] = v
	r.tail = (r.tail + 1) % len(r.buf)
	r.count++
	return nil
}

// Pop removes and returns the oldest element. Returns ErrEmpty when nothing
// is stored; the buffer is unchanged on failure.
func (r *RingBuffer[T]) Pop() (T, error) {
	var zero T
	if r.count == 0 {
		return zero, ErrEmpty
	}
	v := r.buf[r.head]
	r.buf[r.head] = zero // drop the stored value so it can be collected
	r.head = (r.head + 1) % len(r.buf)
	r.count--
	return v, nil
}

// Front returns the oldest element without removing it.
// Returns ErrEmpty when nothing is stored.
func (r *RingBuffer[T]) Front() (T, error) {
	var zero T
	if r.count == 0 {
		return zero, ErrEmpty
	}
	return r.buf[r.head], nil
}

// Back returns the newest element without removing it.
// Returns ErrEmpty when nothing is stored.
func (r *RingBuffer[T]) Back() (T, error) {
	var zero T
	if r.count == 0 {
		return zero, ErrEmpty
	}
	i := r.tail - 1
	if i < 0 {
		i = len(r.buf) - 1
	}
	return r.buf[i], nil
}

// Clone returns a copy with its own storage and identical capacity, cursors
// and contents. Subsequent operations on either buffer never affect the
// other. Element values are copied with plain assignment, so pointer-typed
// elements share their referents.
//
// Clone is the supported copy path: assigning or dereferencing a RingBuffer
// value would alias the underlying slice between the two copies.
func (r *RingBuffer[T]) Clone() *RingBuffer[T] {
	c := &RingBuffer[T]{
		buf:   make([]T, len(r.buf)),
		head:  r.head,
		tail:  r.tail,
		count: r.count,
	}
	copy(c.buf, r.buf)
	return c
}
