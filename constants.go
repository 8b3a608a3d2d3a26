package fixedmath

// Small-angle branch of acos near x = 1. With ε = 1 - x,
//
//	acos(x) = √(2ε)·(1 + ε/12 + 3ε²/160 + 5ε³/896 + O(ε⁴))
const (
	acosSeriesNum1 = 1
	acosSeriesDen1 = 12
	acosSeriesNum2 = 3
	acosSeriesDen2 = 160
	acosSeriesNum3 = 5
	acosSeriesDen3 = 896
)

// Batch evaluation
const (
	// minParallelChunk is the smallest slice worth handing to a worker.
	minParallelChunk = 4096
)

// Fractional-bit shifts of π multiples relative to the stored constant.
const (
	halfShift    = 1 // π/2 = π >> 1
	quarterShift = 2 // π/4 = π >> 2
)
