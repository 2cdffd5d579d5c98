// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pfq provides a fully persistent FIFO queue with worst-case O(1)
// operations.
//
// Fully persistent means every operation returns a new queue and leaves
// the old one valid and unchanged, so one version can be extended in
// several directions:
//
//	a := pfq.New[int]().PushBack(3)
//
//	b1 := a.PushBack(4)
//	b2 := a.PushBack(5)
//
//	// a  is [3]
//	// b1 is [3 4]
//	// b2 is [3 5]
//
// Worst-case O(1) means New, PushBack, PopFront and copying a Queue each
// do a bounded amount of work no matter how many elements the queue holds.
// The bound is per call, not amortized: no single call pays for deferred
// work built up by earlier calls.
//
// If you only need an ordinary queue, a slice or one of the lfq ring
// buffers is faster. Persistence is the point here.
//
// # Basic Usage
//
//	q := pfq.New[string]()
//	q = q.PushBack("a").PushBack("b")
//
//	q, v, ok := q.PopFront() // v == "a", ok == true
//	if !ok {
//	    // Queue was empty
//	}
//
// Bulk construction and read-out:
//
//	q := pfq.From(1, 2, 3)
//	for v := range q.All() {
//	    fmt.Println(v) // 1, 2, 3; q is not consumed
//	}
//	fmt.Println(q) // [1 2 3]
//
// # Cursor
//
// [Cursor] wraps a queue in a mutable handle with the Enqueue/Dequeue
// shape of the lfq queues. Snapshot forks a persistent version at any
// point:
//
//	c := pfq.NewCursor(pfq.New[Job]())
//	c.Enqueue(&job)
//	undo := c.Snapshot()
//	j, err := c.Dequeue()
//	if pfq.IsWouldBlock(err) {
//	    // Empty
//	}
//	c.Reset(undo) // roll back the dequeue
//
// # Algorithm
//
// The queue is Okasaki's real-time queue. A rotation appends the reversed
// back stack to the front chain. Instead of a lazily evaluated suspension,
// the rotation is an explicit state machine stored in the chain nodes
// themselves: a pending node knows the next back-stack element to move and
// the merged tail built so far. Every PushBack and PopFront performs exactly
// one step at the node named by the queue's jump pointer and then moves the
// pointer along. A new rotation starts only once jump has run off the end
// of the chain, so outstanding work never piles up.
//
// # Error Handling
//
// PopFront and Front report an empty queue with a false result.
// [Cursor.Dequeue] returns [ErrWouldBlock], sourced from
// [code.hybscloud.com/iox] for ecosystem consistency.
//
// A rotation finding back-stack and front chain out of balance panics.
// It cannot be reached through the public API.
//
// # Thread Safety
//
// Queue values are immutable from the caller's point of view and may be
// shared between goroutines without locking. Paying a rotation step writes
// to a shared node; the write is guarded by a per-node atomic claim so the
// step runs exactly once, and the result is published with release
// ordering. A goroutine that finds a step claimed by another spins until
// it is published.
//
// A [Cursor] is a mutable handle and must be owned by one goroutine at a
// time.
//
// # Race Detection
//
// The per-node claim uses atomix orderings that Go's race detector cannot
// observe. Tests sharing queue versions between goroutines are excluded
// when [RaceEnabled] is true.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for the node claim,
// [code.hybscloud.com/spin] for CPU pause while waiting on a claim, and
// [code.hybscloud.com/iox] for semantic errors.
package pfq
