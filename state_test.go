// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package statem_test

import (
	"testing"

	"code.hybscloud.com/statem"
)

func TestStateGetPut(t *testing.T) {
	// Bind(Get, func(s) Then(Put(s+1), Get))
	comp := statem.Bind(statem.Get[int](), func(s int) statem.State[int, int] {
		return statem.Then(statem.Put(s+1), statem.Get[int]())
	})

	finalState, result := comp.Run(10)
	if result != 11 {
		t.Fatalf("got result %d, want 11", result)
	}
	if finalState != 11 {
		t.Fatalf("got state %d, want 11", finalState)
	}
}

func TestStateModify(t *testing.T) {
	comp := statem.Modify(func(s int) int { return s * 2 })

	finalState, result := comp.Run(21)
	if result != 42 {
		t.Fatalf("got result %d, want 42", result)
	}
	if finalState != 42 {
		t.Fatalf("got state %d, want 42", finalState)
	}
}

func TestStateGets(t *testing.T) {
	comp := statem.Gets(func(s int) string {
		if s > 0 {
			return "positive"
		}
		return "non-positive"
	})

	finalState, result := comp.Run(7)
	if result != "positive" {
		t.Fatalf("got %q, want %q", result, "positive")
	}
	if finalState != 7 {
		t.Fatalf("got state %d, want 7", finalState)
	}
}

func TestStateEval(t *testing.T) {
	comp := statem.Then(statem.Put(100), statem.Get[int]())

	result := comp.Eval(0)
	if result != 100 {
		t.Fatalf("got %d, want 100", result)
	}
}

func TestStateExec(t *testing.T) {
	comp := statem.Then(statem.Put(50), statem.Pure[int]("done"))

	finalState := comp.Exec(0)
	if finalState != 50 {
		t.Fatalf("got state %d, want 50", finalState)
	}
}

func TestStateChained(t *testing.T) {
	// Multiple state updates in sequence
	comp := statem.Then(statem.Put(1),
		statem.Then(statem.Modify(func(x int) int { return x + 1 }),
			statem.Then(statem.Modify(func(x int) int { return x * 2 }),
				statem.Get[int](),
			),
		),
	)

	_, result := comp.Run(0)
	if result != 4 { // (1 + 1) * 2 = 4
		t.Fatalf("got %d, want 4", result)
	}
}

func TestStatePure(t *testing.T) {
	// Pure value should not affect state
	comp := statem.Pure[int](42)

	finalState, result := comp.Run(100)
	if result != 42 {
		t.Fatalf("got result %d, want 42", result)
	}
	if finalState != 100 {
		t.Fatalf("got state %d, want 100", finalState)
	}
}

func TestStateNew(t *testing.T) {
	comp := statem.New(func(s int) (int, string) {
		if s%2 == 0 {
			return s + 1, "even"
		}
		return s + 1, "odd"
	})

	finalState, result := comp.Run(4)
	if result != "even" {
		t.Fatalf("got %q, want %q", result, "even")
	}
	if finalState != 5 {
		t.Fatalf("got state %d, want 5", finalState)
	}
}

func TestStateRerun(t *testing.T) {
	// Running twice from the same state yields the same pair — the
	// computation holds no cursor.
	comp := statem.Bind(statem.NextUint64(), func(a uint64) statem.State[statem.Seed, uint64] {
		return statem.Map(statem.NextUint64(), func(b uint64) uint64 { return a ^ b })
	})

	s1, v1 := comp.Run(7)
	s2, v2 := comp.Run(7)
	if s1 != s2 || v1 != v2 {
		t.Fatalf("rerun diverged: (%d,%d) != (%d,%d)", s1, v1, s2, v2)
	}
}

func TestRunPropagatesPanic(t *testing.T) {
	// Failures from wrapped functions must reach the caller unchanged.
	comp := statem.Map(
		statem.New(func(s int) (int, int) { panic("boom") }),
		func(v int) int { return v + 1 },
	)

	defer func() {
		r := recover()
		if r != "boom" {
			t.Fatalf("got panic %v, want boom", r)
		}
	}()
	comp.Run(0)
	t.Fatal("expected panic")
}
