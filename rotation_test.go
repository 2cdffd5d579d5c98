// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pfq

import (
	"math/rand/v2"
	"testing"
)

// =============================================================================
// Work Bound (internal)
// =============================================================================

// nodeStates collects every node reachable from q without paying any debt,
// together with its state.
func nodeStates[T any](q Queue[T]) map[*node[T]]int32 {
	seen := make(map[*node[T]]int32)
	stack := []*node[T]{q.front, q.back, q.jump}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == nil {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = n.state.LoadAcquire()
		stack = append(stack, n.next, n.debt.source, n.debt.acc)
	}
	return seen
}

// measure applies op to q and reports how many pending nodes it discharged
// and how many nodes it allocated.
func measure(q Queue[int], op func(Queue[int]) Queue[int]) (r Queue[int], steps, allocs int) {
	before := nodeStates(q)
	r = op(q)
	for n, st := range before {
		if st == statePending && n.state.LoadAcquire() == stateIdle {
			steps++
		}
	}
	for n := range nodeStates(r) {
		if _, ok := before[n]; !ok {
			allocs++
		}
	}
	return r, steps, allocs
}

func pushOp(v int) func(Queue[int]) Queue[int] {
	return func(q Queue[int]) Queue[int] { return q.PushBack(v) }
}

func popOp(q Queue[int]) Queue[int] {
	r, _, _ := q.PopFront()
	return r
}

const (
	maxStepsPerOp  = 1
	maxAllocsPerOp = 3
)

// TestWorkBoundPerOperation checks every single operation of a long mixed
// run, including operations on older versions.
func TestWorkBoundPerOperation(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	versions := []Queue[int]{New[int]()}

	for i := range 2000 {
		src := versions[rng.IntN(len(versions))]
		var r Queue[int]
		var steps, allocs int
		if rng.IntN(3) == 0 {
			r, steps, allocs = measure(src, popOp)
		} else {
			r, steps, allocs = measure(src, pushOp(i))
		}
		if steps > maxStepsPerOp {
			t.Fatalf("op %d (len %d): discharged %d steps, want <= %d", i, src.Len(), steps, maxStepsPerOp)
		}
		if allocs > maxAllocsPerOp {
			t.Fatalf("op %d (len %d): allocated %d nodes, want <= %d", i, src.Len(), allocs, maxAllocsPerOp)
		}
		versions = append(versions, r)
	}
}

// TestWorkBoundIndependentOfSize checks that the worst operation stays under
// the same constant as the queue grows. Small sizes are measured in full;
// large sizes are built unmeasured and probed over a window of operations.
// At 16400 the push window contains the rotation started at push 16382.
func TestWorkBoundIndependentOfSize(t *testing.T) {
	const window = 128
	for _, size := range []int{1, 10, 100, 1000, 16400} {
		q := New[int]()
		worstSteps, worstAllocs := 0, 0
		probe := func(op func(Queue[int]) Queue[int]) {
			var steps, allocs int
			q, steps, allocs = measure(q, op)
			worstSteps = max(worstSteps, steps)
			worstAllocs = max(worstAllocs, allocs)
		}

		for i := range size {
			if size-i <= window || size <= 1000 {
				probe(pushOp(i))
			} else {
				q = q.PushBack(i)
			}
		}
		for i := range size {
			if i < window || size <= 1000 {
				probe(popOp)
			} else {
				q, _, _ = q.PopFront()
			}
		}

		if !q.IsEmpty() {
			t.Fatalf("size %d: queue not drained, Len %d", size, q.Len())
		}
		if worstSteps > maxStepsPerOp || worstAllocs > maxAllocsPerOp {
			t.Fatalf("size %d: worst op did %d steps and %d allocations, want <= %d and <= %d",
				size, worstSteps, worstAllocs, maxStepsPerOp, maxAllocsPerOp)
		}
	}
}

func chainLen[T any](n *node[T]) int {
	l := 0
	for ; n != nil; n = n.next {
		l++
	}
	return l
}

// TestRotationStartsBalanced checks that every rotation starts with a back
// stack exactly as long as the front chain, and that rotations are rare.
func TestRotationStartsBalanced(t *testing.T) {
	q := New[int]()
	rotations := 0
	for i := range 4096 {
		if q.jump == nil {
			rotations++
			if f, b := chainLen(q.front), chainLen(q.back); f != b {
				t.Fatalf("push %d: rotation starts with front %d, back %d", i, f, b)
			}
		}
		q = q.PushBack(i)
	}
	// Each rotation doubles the chain: pushes 0, 2, 6, 14, ... start one.
	if rotations != 12 {
		t.Fatalf("rotations: got %d, want 12", rotations)
	}
	if q.Len() != 4096 {
		t.Fatalf("Len: got %d, want 4096", q.Len())
	}
}

// =============================================================================
// Invariant Violations
// =============================================================================

func expectPanic(t *testing.T, want string, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic %q", want)
		}
		if r != want {
			t.Fatalf("panic: got %v, want %q", r, want)
		}
	}()
	f()
}

func TestMergeImbalancePanics(t *testing.T) {
	expectPanic(t, "pfq: merge imbalance", func() {
		merge(&node[int]{value: 1}, nil)
	})
}

func TestDischargeImbalancePanics(t *testing.T) {
	// A one-element back stack cannot feed a step that needs its successor.
	n := newPending(1, nil, &node[int]{value: 2}, nil)
	expectPanic(t, "pfq: rotation imbalance", func() {
		n.discharge()
	})
}

func TestMergeEmptyFrontReturnsBack(t *testing.T) {
	back := &node[int]{value: 9}
	if got := merge(nil, back); got != back {
		t.Fatalf("merge(nil, back): got %p, want %p", got, back)
	}
	if got := merge[int](nil, nil); got != nil {
		t.Fatalf("merge(nil, nil): got %p, want nil", got)
	}
}

func TestDischargeOnce(t *testing.T) {
	// front [1], back [3 2] (top first): one step builds 3, the terminal
	// step links 2 in front of it.
	b2 := &node[int]{value: 2}
	b3 := &node[int]{value: 3, next: b2}
	n := newPending(1, nil, b3, nil)

	n.discharge()
	if n.state.LoadAcquire() != stateIdle {
		t.Fatalf("state after discharge: got %d, want idle", n.state.LoadAcquire())
	}
	first := n.next

	n.discharge()
	if n.next != first {
		t.Fatal("second discharge replaced next")
	}

	var got []int
	for c := n; c != nil; c = c.successor() {
		got = append(got, c.value)
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("chain: got %v, want [1 2 3]", got)
	}
}
