package module

// Perlin sums successive octaves of coherent gradient noise, each
// octave at a higher frequency (scaled by lacunarity) and lower
// amplitude (scaled by persistence) than the last. Output is centered
// on zero; with default parameters it stays roughly within [-1, 1].
//
// Perlin has no source modules.
type Perlin struct {
	Base
	fractalParams
}

// NewPerlin creates a Perlin generator with default parameters:
// frequency 1.0, lacunarity 2.0, persistence 0.5, 6 octaves, standard
// quality, seed 0.
func NewPerlin() *Perlin {
	return &Perlin{fractalParams: defaultFractalParams()}
}

// GetValue sums the configured octaves at (x, y).
func (p *Perlin) GetValue(x, y float64) float64 {
	value := 0.0
	curPersistence := 1.0

	x *= p.frequency
	y *= p.frequency

	for octave := 0; octave < p.octaveCount; octave++ {
		signal := p.coherentOctave(x, y, octave)
		value += signal * curPersistence

		x *= p.lacunarity
		y *= p.lacunarity
		curPersistence *= p.persistence
	}

	return value
}
