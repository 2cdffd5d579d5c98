// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pfq

import (
	"fmt"
	"iter"
)

// From builds a queue holding values in order.
func From[T any](values ...T) Queue[T] {
	var q Queue[T]
	for _, v := range values {
		q = q.PushBack(v)
	}
	return q
}

// FromSeq builds a queue from a finite sequence, preserving order.
func FromSeq[T any](seq iter.Seq[T]) Queue[T] {
	var q Queue[T]
	for v := range seq {
		q = q.PushBack(v)
	}
	return q
}

// All returns the elements front to back.
//
// The sequence pops from a private copy of q, so q is left untouched and
// the sequence can be ranged over any number of times.
func (q Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		cur := q
		for {
			next, v, ok := cur.PopFront()
			if !ok || !yield(v) {
				return
			}
			cur = next
		}
	}
}

// Slice returns the elements front to back in a new slice.
func (q Queue[T]) Slice() []T {
	s := make([]T, 0, q.size)
	for v := range q.All() {
		s = append(s, v)
	}
	return s
}

// String renders the elements in fmt's slice form, e.g. "[1 2 3]".
func (q Queue[T]) String() string {
	return fmt.Sprint(q.Slice())
}

// Equal reports whether a and b hold the same elements in the same order.
func Equal[T comparable](a, b Queue[T]) bool {
	if a.size != b.size {
		return false
	}
	for range a.size {
		var x, y T
		a, x, _ = a.PopFront()
		b, y, _ = b.PopFront()
		if x != y {
			return false
		}
	}
	return true
}
