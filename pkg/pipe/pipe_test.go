package pipe

import (
	"strconv"
	"testing"
)

func addOne(n int) int { return n + 1 }

func double(n int) int { return n * 2 }

func TestPipe_AppliesLeftToRight(t *testing.T) {
	t.Parallel()
	if got := Pipe(1, addOne, double); got != 4 {
		t.Fatalf("expected (1+1)*2 == 4, got %v", got)
	}
	if got := Pipe(1, double, addOne); got != 3 {
		t.Fatalf("order must matter, got %v", got)
	}
}

func TestPipe_NoFunctions(t *testing.T) {
	t.Parallel()
	if got := Pipe(42); got != 42 {
		t.Fatalf("start value must pass through unchanged, got %v", got)
	}
}

func TestPipe_EachStepFeedsTheNext(t *testing.T) {
	t.Parallel()
	var seen []int
	record := func(n int) int {
		seen = append(seen, n)
		return n + 10
	}

	Pipe(0, record, record, record)
	if len(seen) != 3 || seen[0] != 0 || seen[1] != 10 || seen[2] != 20 {
		t.Fatalf("unexpected step inputs: %v", seen)
	}
}

func TestPipeN_TypeChanging(t *testing.T) {
	t.Parallel()
	got := Pipe3(41,
		addOne,
		strconv.Itoa,
		func(s string) string { return "n=" + s },
	)
	if got != "n=42" {
		t.Fatalf("got %q", got)
	}
}

func TestPipe_FailFast(t *testing.T) {
	t.Parallel()
	ran := false

	defer func() {
		if recover() == nil {
			t.Fatalf("the step's panic must propagate")
		}
		if ran {
			t.Fatalf("steps after a failing one must not run")
		}
	}()
	Pipe(1,
		addOne,
		func(int) int { panic("step failed") },
		func(n int) int { ran = true; return n },
	)
}
