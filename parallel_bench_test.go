package fixedmath

import (
	"testing"

	"github.com/tphakala/go-fixedmath/internal/testutil"
)

// BenchmarkEvalSliceSequential benchmarks sequential batch evaluation.
func BenchmarkEvalSliceSequential(b *testing.B) {
	benchmarkEvalSlice(b, 1)
}

// BenchmarkEvalSliceParallel benchmarks parallel batch evaluation.
func BenchmarkEvalSliceParallel(b *testing.B) {
	benchmarkEvalSlice(b, 0)
}

func benchmarkEvalSlice(b *testing.B, workers int) {
	b.Helper()
	e := testEngine(b)

	const numSamples = 1 << 16
	src := testutil.Grid(-1, 1, numSamples, q)
	dst := make([]int64, numSamples)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if err := e.EvalSliceParallel(FuncAcos, dst, src, q, workers); err != nil {
			b.Fatalf("EvalSliceParallel failed: %v", err)
		}
	}
}

// BenchmarkFuncs benchmarks single evaluations of every function.
func BenchmarkFuncs(b *testing.B) {
	e := testEngine(b)
	x := FromFloat(0.7, q)
	for _, fn := range Funcs() {
		b.Run(fn.String(), func(b *testing.B) {
			b.ReportAllocs()
			var sink int64
			for i := 0; i < b.N; i++ {
				sink += e.Eval(fn, x, q)
			}
			_ = sink
		})
	}
}

// BenchmarkAtan2 benchmarks the two-argument arctangent.
func BenchmarkAtan2(b *testing.B) {
	e := testEngine(b)
	y, x := FromFloat(0.3, q), FromFloat(-0.9, q)
	b.ReportAllocs()
	var sink int64
	for i := 0; i < b.N; i++ {
		sink += e.Atan2(y, x, q)
	}
	_ = sink
}
