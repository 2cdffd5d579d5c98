// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pfq

// Queue is a fully persistent FIFO queue with worst-case O(1) operations.
//
// Queue is a small value. Copying it is the O(1) clone: the copy and the
// original share all nodes and evolve independently. PushBack and PopFront
// never modify the receiver.
//
// Internally the queue is Okasaki's real-time queue. front is the readable
// chain, back holds elements pushed during the current rotation in reverse
// order, and jump marks the node whose rotation step is paid next. A nil
// jump means no rotation is in progress.
//
// The zero value is an empty queue ready to use.
//
// Example:
//
//	a := pfq.New[int]().PushBack(1).PushBack(2)
//	b := a.PushBack(3)
//	c := a.PushBack(4)
//	// a is [1 2], b is [1 2 3], c is [1 2 4]
type Queue[T any] struct {
	front *node[T]
	back  *node[T]
	jump  *node[T]
	size  int
}

// New returns an empty queue.
func New[T any]() Queue[T] {
	return Queue[T]{}
}

// PushBack returns a new queue with v appended at the back.
func (q Queue[T]) PushBack(v T) Queue[T] {
	n := &node[T]{value: v, next: q.back}

	if q.jump != nil {
		return Queue[T]{
			front: q.front,
			back:  n,
			jump:  q.jump.successor(),
			size:  q.size + 1,
		}
	}

	z := merge(q.front, n)
	return Queue[T]{front: z, jump: z, size: q.size + 1}
}

// PopFront removes the element at the front.
//
// Returns the new queue, the removed element and true. Returns the
// receiver, the zero value and false if the queue is empty.
func (q Queue[T]) PopFront() (Queue[T], T, bool) {
	if q.front == nil {
		var zero T
		return q, zero, false
	}
	v := q.front.value

	if q.jump != nil {
		// jump may be front itself; pay its step before reading front's successor.
		jump := q.jump.successor()
		return Queue[T]{
			front: q.front.successor(),
			back:  q.back,
			jump:  jump,
			size:  q.size - 1,
		}, v, true
	}

	z := merge(q.front.successor(), q.back)
	return Queue[T]{front: z, jump: z, size: q.size - 1}, v, true
}

// Front returns the element at the front without removing it.
// Returns (zero-value, false) if the queue is empty.
func (q Queue[T]) Front() (T, bool) {
	if q.front == nil {
		var zero T
		return zero, false
	}
	return q.front.value, true
}

// Len returns the number of elements.
func (q Queue[T]) Len() int {
	return q.size
}

// IsEmpty reports whether the queue holds no elements.
func (q Queue[T]) IsEmpty() bool {
	return q.front == nil
}
