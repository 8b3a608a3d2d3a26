package lut

// Export internals for testing.
var (
	InterpLinear    = linear
	InterpQuadratic = quadratic
	InterpNewton    = newton
	InterpHermite   = hermite
)
