package module

import (
	"math"

	"noisegraph/pkg/noise"
)

// DefaultDisplacement is the default displacement of a Voronoi module.
const DefaultDisplacement = 1.0

const sqrt3 = 1.7320508075688772935

// Voronoi partitions the plane into cells around one pseudo-random
// seed point per unit square and returns a constant per-cell value
// scaled by displacement. With distance enabled, the distance to the
// nearest seed point is added, which shades each cell radially.
//
// Voronoi has no source modules.
type Voronoi struct {
	Base
	displacement   float64
	enableDistance bool
	frequency      float64
	seed           int32
}

// NewVoronoi creates a Voronoi generator with displacement 1.0,
// frequency 1.0, seed 0 and the distance term disabled.
func NewVoronoi() *Voronoi {
	return &Voronoi{
		displacement: DefaultDisplacement,
		frequency:    DefaultFrequency,
		seed:         DefaultSeed,
	}
}

// SetDisplacement scales the per-cell random value.
func (v *Voronoi) SetDisplacement(displacement float64) { v.displacement = displacement }

// Displacement returns the per-cell value scale.
func (v *Voronoi) Displacement() float64 { return v.displacement }

// EnableDistance toggles adding the distance to the nearest seed point
// into the output.
func (v *Voronoi) EnableDistance(enable bool) { v.enableDistance = enable }

// DistanceEnabled reports whether the distance term is applied.
func (v *Voronoi) DistanceEnabled() bool { return v.enableDistance }

// SetFrequency sets the density of cells per unit length.
func (v *Voronoi) SetFrequency(frequency float64) { v.frequency = frequency }

// Frequency returns the cell frequency.
func (v *Voronoi) Frequency() float64 { return v.frequency }

// SetSeed changes the seed-point layout and per-cell values.
func (v *Voronoi) SetSeed(seed int32) { v.seed = seed }

// Seed returns the generator seed.
func (v *Voronoi) Seed() int32 { return v.seed }

// GetValue returns the value of the cell owning (x, y).
func (v *Voronoi) GetValue(x, y float64) float64 {
	x *= v.frequency
	y *= v.frequency

	var xInt, yInt int32
	if x > 0.0 {
		xInt = int32(x)
	} else {
		xInt = int32(x) - 1
	}
	if y > 0.0 {
		yInt = int32(y)
	} else {
		yInt = int32(y) - 1
	}

	minDist := 2147483647.0
	xCandidate := 0.0
	yCandidate := 0.0

	// Each unit square owns one seed point at a hashed position. A
	// point two squares away can still be the nearest, so scan the 5x5
	// neighborhood around the containing square.
	for yCur := yInt - 2; yCur <= yInt+2; yCur++ {
		for xCur := xInt - 2; xCur <= xInt+2; xCur++ {
			xPos := float64(xCur) + noise.ValueNoise2D(xCur, yCur, v.seed)
			yPos := float64(yCur) + noise.ValueNoise2D(xCur, yCur, v.seed+1)
			xDist := xPos - x
			yDist := yPos - y
			dist := xDist*xDist + yDist*yDist

			if dist < minDist {
				minDist = dist
				xCandidate = xPos
				yCandidate = yPos
			}
		}
	}

	var value float64
	if v.enableDistance {
		xDist := xCandidate - x
		yDist := yCandidate - y
		value = math.Sqrt(xDist*xDist+yDist*yDist)*sqrt3 - 1.0
	}

	return value + v.displacement*noise.ValueNoise2D(
		int32(math.Floor(xCandidate)),
		int32(math.Floor(yCandidate)),
		0)
}
