package fixedmath

import (
	"sync"
	"testing"

	"github.com/tphakala/go-fixedmath/internal/testutil"
)

// TestEvalSliceParallel tests that parallel evaluation produces the same results as sequential.
func TestEvalSliceParallel(t *testing.T) {
	e := testEngine(t)
	const numSamples = 50000 // several chunks

	inputs := map[Func][]int64{
		FuncAcos:     testutil.Grid(-1, 1, numSamples, q),
		FuncAsin:     testutil.Grid(-1, 1, numSamples, q),
		FuncAtan:     testutil.Grid(-100, 100, numSamples, q),
		FuncAtanFast: testutil.Grid(-100, 100, numSamples, q),
		FuncSin:      testutil.Grid(-50, 50, numSamples, q),
		FuncCos:      testutil.Grid(-50, 50, numSamples, q),
		FuncTan:      testutil.Grid(-1.5, 1.5, numSamples, q),
		FuncLog2:     testutil.Grid(1e-6, 1e6, numSamples, q),
	}

	for fn, src := range inputs {
		for _, workers := range []int{0, 1, 3, 8} {
			seq := make([]int64, len(src))
			par := make([]int64, len(src))
			if err := e.EvalSlice(fn, seq, src, q); err != nil {
				t.Fatalf("%s: EvalSlice failed: %v", fn, err)
			}
			if err := e.EvalSliceParallel(fn, par, src, q, workers); err != nil {
				t.Fatalf("%s: EvalSliceParallel failed: %v", fn, err)
			}

			// Outputs must be bit-identical
			for i := range seq {
				if seq[i] != par[i] {
					t.Errorf("%s workers=%d sample %d mismatch: seq=%d, par=%d",
						fn, workers, i, seq[i], par[i])
					break // Don't flood with errors
				}
			}
		}
	}
}

// TestEvalSliceParallelSmall verifies short inputs fall back to sequential evaluation.
func TestEvalSliceParallelSmall(t *testing.T) {
	e := testEngine(t)
	src := testutil.Grid(0, 1, 10, q)
	dst := make([]int64, len(src))
	if err := e.EvalSliceParallel(FuncAtan, dst, src, q, 4); err != nil {
		t.Fatalf("EvalSliceParallel failed: %v", err)
	}
	for i, x := range src {
		if want := e.Atan(x, q); dst[i] != want {
			t.Errorf("sample %d: got %d, want %d", i, dst[i], want)
		}
	}

	if err := e.EvalSliceParallel(FuncAtan, nil, nil, q, 4); err != nil {
		t.Fatalf("empty input failed: %v", err)
	}
}

// TestConcurrentCallers verifies that concurrent readers of one engine see identical results.
func TestConcurrentCallers(t *testing.T) {
	e := testEngine(t)
	src := testutil.Grid(-1, 1, 2000, q)
	want := make([]int64, len(src))
	for i, x := range src {
		want[i] = e.Acos(x, q) ^ e.Sin(x, q) ^ e.Log2(x+2*Pi(q), q)
	}

	const goroutines = 8
	var wg sync.WaitGroup
	errs := make(chan int, goroutines)
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, x := range src {
				if Acos(x, q)^Sin(x, q)^Log2(x+2*Pi(q), q) != want[i] {
					errs <- i
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for i := range errs {
		t.Errorf("concurrent result mismatch at sample %d", i)
	}
}
