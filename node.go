// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pfq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Node states. A node moves pending → claimed → idle exactly once;
// nodes created idle never leave idle.
const (
	stateIdle    int32 = 0
	statePending int32 = 1
	stateClaimed int32 = 2
)

// rotation is one suspended step of an incremental rotation.
//
// source is the next back-stack node whose value must be relocated.
// acc is the merged tail built so far (nil on the first step).
type rotation[T any] struct {
	source *node[T]
	acc    *node[T]
}

// node is a shared cell of the front chain or the back stack.
//
// value is fixed at construction. next and debt are written once more by
// the goroutine that wins the claim in discharge, and are published to
// everyone else by the release store of stateIdle.
type node[T any] struct {
	state atomix.Int32
	value T
	next  *node[T]
	debt  rotation[T]
}

// newPending creates a node that still owes one rotation step.
func newPending[T any](value T, next, source, acc *node[T]) *node[T] {
	n := &node[T]{
		value: value,
		next:  next,
		debt:  rotation[T]{source: source, acc: acc},
	}
	n.state.StoreRelaxed(statePending)
	return n
}

// successor returns the node after n, paying n's debt first if any.
func (n *node[T]) successor() *node[T] {
	n.discharge()
	return n.next
}

// discharge performs the single rotation step anchored at n.
// It is a no-op on idle nodes. When another goroutine holds the claim,
// discharge waits until that goroutine has published the result.
func (n *node[T]) discharge() {
	if n.state.LoadAcquire() == stateIdle {
		return
	}
	if !n.state.CompareAndSwapAcqRel(statePending, stateClaimed) {
		sw := spin.Wait{}
		for n.state.LoadAcquire() != stateIdle {
			sw.Once()
		}
		return
	}

	c, d := n.debt.source, n.debt.acc
	built := &node[T]{value: c.value, next: d}

	cNext := c.successor()
	if cNext == nil {
		panic("pfq: rotation imbalance")
	}

	var carry *node[T]
	if rest := n.next; rest != nil {
		carry = newPending(rest.value, rest.successor(), cNext, built)
	} else {
		carry = &node[T]{value: cNext.value, next: built}
	}

	n.next = carry
	n.debt = rotation[T]{}
	n.state.StoreRelease(stateIdle)
}

// merge starts a rotation of back onto the front suffix x.
//
// With x empty the back stack becomes the chain verbatim. Otherwise the
// result copies x's head and carries the first step of the rotation.
// Callers guarantee back is one longer than x.
func merge[T any](x, back *node[T]) *node[T] {
	if x == nil {
		return back
	}
	if back == nil {
		panic("pfq: merge imbalance")
	}
	return newPending(x.value, x.successor(), back, nil)
}
