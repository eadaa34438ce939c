// Package noise implements deterministic 2D coherent-noise primitives:
// integer lattice hashing, value noise, and gradient noise with a
// selectable interpolation quality. All functions are pure and produce
// identical output for identical input on every run.
package noise

import (
	"math"
)

// Quality selects the curve applied to the fractional part of a
// coordinate before the surrounding lattice values are blended.
type Quality int

const (
	// QualityFast uses the raw fraction. Fastest, but the derivative is
	// discontinuous at integer boundaries, which shows up as creasing
	// once the output is shaded or bump-mapped.
	QualityFast Quality = iota

	// QualityStandard remaps the fraction with the cubic S-curve
	// 3a^2 - 2a^3, giving a continuous first derivative.
	QualityStandard

	// QualityBest remaps the fraction with the quintic S-curve
	// 6a^5 - 15a^4 + 10a^3, giving continuous first and second
	// derivatives at roughly twice the cost of QualityStandard.
	QualityBest
)

// Prime multipliers for the lattice hash. Distinct primes per axis and
// seed keep translated or seed-shifted fields uncorrelated.
const (
	xPrime    = 1619
	yPrime    = 6971
	seedPrime = 1013
)

// IntValueNoise2D hashes a lattice point and seed into a pseudo-random
// integer in [0, 2^31). All arithmetic wraps in int32, so results are
// identical on every platform.
func IntValueNoise2D(x, y, seed int32) int32 {
	n := (xPrime*x + yPrime*y + seedPrime*seed) & 0x7fffffff
	n = (n >> 13) ^ n
	return (n*(n*n*60493+19990303) + 1376312589) & 0x7fffffff
}

// ValueNoise2D returns a pseudo-random value in [-1, 1] for a lattice
// point and seed.
func ValueNoise2D(x, y, seed int32) float64 {
	return 1.0 - float64(IntValueNoise2D(x, y, seed))/1073741824.0
}

// GradientNoise2D returns the dot product between a pseudo-random unit
// gradient anchored at the lattice point (ix, iz) and the offset from
// that point to (fx, fz). The gradient direction is derived from the
// lattice hash, so it is fixed per (ix, iz, seed). For points within one
// unit of the lattice point the result lies in [-1, 1] once blended by
// GradientCoherentNoise2D.
func GradientNoise2D(fx, fz float64, ix, iz, seed int32) float64 {
	angle := float64(IntValueNoise2D(ix, iz, seed)) * (2.0 * math.Pi / 2147483648.0)
	xGradient := math.Cos(angle)
	zGradient := math.Sin(angle)

	// sqrt(2) rescales the blended extreme (sqrt(2)/2 for unit
	// gradients in two dimensions) to exactly 1.
	return (xGradient*(fx-float64(ix)) + zGradient*(fz-float64(iz))) * math.Sqrt2
}

// GradientCoherentNoise2D samples smooth gradient noise at (x, y) for
// the given seed. The gradients at the four corners of the surrounding
// lattice cell are blended with the interpolation selected by q. Output
// lies in [-1, 1] and is exactly zero at integer lattice points.
func GradientCoherentNoise2D(x, y float64, seed int32, q Quality) float64 {
	// Lattice cell containing the point. Truncation with a step down on
	// the non-positive side, so -2.0 falls in cell -3 rather than -2.
	var x0, y0 int32
	if x > 0.0 {
		x0 = int32(x)
	} else {
		x0 = int32(x) - 1
	}
	if y > 0.0 {
		y0 = int32(y)
	} else {
		y0 = int32(y) - 1
	}
	x1 := x0 + 1
	y1 := y0 + 1

	var xs, ys float64
	switch q {
	case QualityStandard:
		xs = SCurve3(x - float64(x0))
		ys = SCurve3(y - float64(y0))
	case QualityBest:
		xs = SCurve5(x - float64(x0))
		ys = SCurve5(y - float64(y0))
	default:
		xs = x - float64(x0)
		ys = y - float64(y0)
	}

	n00 := GradientNoise2D(x, y, x0, y0, seed)
	n10 := GradientNoise2D(x, y, x1, y0, seed)
	n01 := GradientNoise2D(x, y, x0, y1, seed)
	n11 := GradientNoise2D(x, y, x1, y1, seed)
	ix0 := LinearInterp(n00, n10, xs)
	ix1 := LinearInterp(n01, n11, xs)
	return LinearInterp(ix0, ix1, ys)
}

// MakeInt32Range folds n into the range representable by an int32.
// Octave generators apply it before lattice hashing so coordinates
// pushed far out by high frequencies still hash consistently.
func MakeInt32Range(n float64) float64 {
	if n >= 1073741824.0 {
		return 2.0*math.Mod(n, 1073741824.0) - 1073741824.0
	}
	if n <= -1073741824.0 {
		return 2.0*math.Mod(n, 1073741824.0) + 1073741824.0
	}
	return n
}
