package module

import "math"

// Billow is a Perlin variant that folds every octave to its absolute
// value, turning zero crossings into creases. The result reads as
// billowy clouds or rounded rubble rather than rolling hills.
//
// Billow has no source modules.
type Billow struct {
	Base
	fractalParams
}

// NewBillow creates a Billow generator with the same defaults as
// NewPerlin.
func NewBillow() *Billow {
	return &Billow{fractalParams: defaultFractalParams()}
}

// GetValue sums the folded octaves at (x, y) and recenters the result.
func (b *Billow) GetValue(x, y float64) float64 {
	value := 0.0
	curPersistence := 1.0

	x *= b.frequency
	y *= b.frequency

	for octave := 0; octave < b.octaveCount; octave++ {
		signal := b.coherentOctave(x, y, octave)
		signal = 2.0*math.Abs(signal) - 1.0
		value += signal * curPersistence

		x *= b.lacunarity
		y *= b.lacunarity
		curPersistence *= b.persistence
	}
	value += 0.5

	return value
}
