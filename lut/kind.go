package lut

// Kind selects the interpolation rule of a region.
type Kind uint8

// Interpolation kinds.
const (
	// Linear interpolates between two samples.
	Linear Kind = iota
	// Quadratic fits a parabola through three consecutive samples.
	Quadratic
	// Hermite fits a cubic through two samples and their derivatives.
	Hermite
)

func (k Kind) String() string {
	switch k {
	case Linear:
		return "Linear"
	case Quadratic:
		return "Quadratic"
	case Hermite:
		return "Hermite"
	default:
		return "Kind(?)"
	}
}

// Spacing selects how sample coordinates are placed inside a region.
type Spacing uint8

// Sample spacings.
const (
	// Uniform samples are equally spaced; brackets are found in closed form.
	Uniform Spacing = iota
	// Chebyshev samples sit on Chebyshev-Lobatto nodes; brackets are found
	// by binary search over Nodes.
	Chebyshev
)

func (s Spacing) String() string {
	switch s {
	case Uniform:
		return "Uniform"
	case Chebyshev:
		return "Chebyshev"
	default:
		return "Spacing(?)"
	}
}
