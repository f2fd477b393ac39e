// Package ringbuf
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>
//
// Fixed-capacity circular FIFO queue ("ring buffer") for arbitrary element types.
// Capacity is chosen once at construction; the buffer never grows, shrinks, or
// overwrites unread elements. Head and tail cursors advance modulo the capacity,
// so a long-lived buffer reuses the same storage indefinitely.
//
// All operations are synchronous and complete in O(1). Failed operations
// (Push on a full buffer, Pop/Front/Back on an empty one) report a sentinel
// error and leave the buffer exactly as it was. The type is not safe for
// concurrent use; callers that share a buffer across goroutines must provide
// their own synchronization.
package ringbuf
