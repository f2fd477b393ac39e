// File: ringbuf/errors.go
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>
//
// Sentinel errors reported by RingBuffer operations.

package ringbuf

import "fmt"

// Errors returned by RingBuffer operations. Callers distinguish the
// conditions with errors.Is; none of them is ever retried internally.
var (
	// ErrInvalidCapacity is returned by New when the requested capacity
	// leaves no room for even a single element.
	ErrInvalidCapacity = fmt.Errorf("ringbuf: capacity must be at least 1")

	// ErrFull is returned by Push when every slot holds an unread element.
	ErrFull = fmt.Errorf("ringbuf: buffer is full")

	// ErrEmpty is returned by Pop, Front and Back when no element is stored.
	ErrEmpty = fmt.Errorf("ringbuf: buffer is empty")
)
