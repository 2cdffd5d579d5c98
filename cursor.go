// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pfq

// Cursor is a mutable handle that walks a sequence of queue versions.
//
// Each Enqueue or Dequeue replaces the held version with the one derived
// from it, so Cursor reads like an ordinary FIFO while every Snapshot
// stays valid forever. All operations are worst-case O(1).
//
// A Cursor is owned by one goroutine at a time. Snapshots may be handed
// to other goroutines freely.
//
// Example:
//
//	c := pfq.NewCursor(pfq.New[string]())
//	msg := "hello"
//	c.Enqueue(&msg)
//	saved := c.Snapshot()
//	v, _ := c.Dequeue() // "hello"; saved still holds it
type Cursor[T any] struct {
	q Queue[T]
}

// NewCursor creates a cursor starting at q.
func NewCursor[T any](q Queue[T]) *Cursor[T] {
	return &Cursor[T]{q: q}
}

// Enqueue appends a copy of *elem. It never fails.
func (c *Cursor[T]) Enqueue(elem *T) error {
	c.q = c.q.PushBack(*elem)
	return nil
}

// Dequeue removes and returns the element at the front.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (c *Cursor[T]) Dequeue() (T, error) {
	next, v, ok := c.q.PopFront()
	if !ok {
		return v, ErrWouldBlock
	}
	c.q = next
	return v, nil
}

// Snapshot returns the current version.
func (c *Cursor[T]) Snapshot() Queue[T] {
	return c.q
}

// Reset moves the cursor to q.
func (c *Cursor[T]) Reset(q Queue[T]) {
	c.q = q
}

// Len returns the number of elements in the current version.
func (c *Cursor[T]) Len() int {
	return c.q.size
}
