// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pfq

// Producer is the interface for enqueueing elements.
//
// The element is passed by pointer, matching code.hybscloud.com/lfq, so a
// Cursor can stand in where an lfq producer is expected. The queue
// stores a copy of the pointed-to value.
type Producer[T any] interface {
	// Enqueue adds an element at the back.
	Enqueue(elem *T) error
}

// Consumer is the interface for dequeueing elements.
type Consumer[T any] interface {
	// Dequeue removes and returns the element at the front.
	// Returns (zero-value, ErrWouldBlock) if the queue is empty.
	Dequeue() (T, error)
}

// Snapshotter exposes the persistent version behind a mutable handle.
type Snapshotter[T any] interface {
	// Snapshot returns the current version. Later operations on the
	// handle do not affect it.
	Snapshot() Queue[T]
}

var (
	_ Producer[int]    = (*Cursor[int])(nil)
	_ Consumer[int]    = (*Cursor[int])(nil)
	_ Snapshotter[int] = (*Cursor[int])(nil)
)
