package module

import (
	"fmt"

	opensimplex "github.com/ojrac/opensimplex-go"

	"noisegraph/pkg/noise"
)

// Simplex sums octaves of OpenSimplex noise. It mirrors the Perlin
// parameter set minus the quality knob, which the basis does not have;
// each octave runs its own basis seeded seed, seed+1, and so on, so
// octaves stay uncorrelated.
//
// Simplex has no source modules.
type Simplex struct {
	Base
	frequency   float64
	lacunarity  float64
	persistence float64
	octaveCount int
	seed        int32
	bases       []opensimplex.Noise
}

// NewSimplex creates an OpenSimplex fractal generator with the same
// defaults as NewPerlin.
func NewSimplex() *Simplex {
	s := &Simplex{
		frequency:   DefaultFrequency,
		lacunarity:  DefaultLacunarity,
		persistence: DefaultPersistence,
		octaveCount: DefaultOctaveCount,
		seed:        DefaultSeed,
	}
	s.rebuild()
	return s
}

// rebuild recreates the per-octave basis tables. Called whenever the
// seed or octave count changes; evaluation never mutates the tables.
func (s *Simplex) rebuild() {
	s.bases = make([]opensimplex.Noise, s.octaveCount)
	for i := range s.bases {
		s.bases[i] = opensimplex.New(int64(s.seed) + int64(i))
	}
}

// SetFrequency sets the frequency of the first octave.
func (s *Simplex) SetFrequency(frequency float64) { s.frequency = frequency }

// Frequency returns the frequency of the first octave.
func (s *Simplex) Frequency() float64 { return s.frequency }

// SetLacunarity sets the frequency multiplier between octaves.
func (s *Simplex) SetLacunarity(lacunarity float64) { s.lacunarity = lacunarity }

// Lacunarity returns the frequency multiplier between octaves.
func (s *Simplex) Lacunarity() float64 { return s.lacunarity }

// SetPersistence sets the amplitude multiplier between octaves.
func (s *Simplex) SetPersistence(persistence float64) { s.persistence = persistence }

// Persistence returns the amplitude multiplier between octaves.
func (s *Simplex) Persistence() float64 { return s.persistence }

// SetOctaveCount sets how many octaves are summed per sample. Counts
// outside [1, MaxOctaveCount] are rejected.
func (s *Simplex) SetOctaveCount(n int) error {
	if n < 1 || n > MaxOctaveCount {
		return fmt.Errorf("%w: octave count %d outside [1, %d]", noise.ErrInvalidParam, n, MaxOctaveCount)
	}
	s.octaveCount = n
	s.rebuild()
	return nil
}

// OctaveCount returns the number of octaves summed per sample.
func (s *Simplex) OctaveCount() int { return s.octaveCount }

// SetSeed reseeds every octave basis.
func (s *Simplex) SetSeed(seed int32) {
	s.seed = seed
	s.rebuild()
}

// Seed returns the generator seed.
func (s *Simplex) Seed() int32 { return s.seed }

// GetValue sums the configured octaves at (x, y).
func (s *Simplex) GetValue(x, y float64) float64 {
	value := 0.0
	curPersistence := 1.0

	x *= s.frequency
	y *= s.frequency

	for octave := 0; octave < s.octaveCount; octave++ {
		value += s.bases[octave].Eval2(x, y) * curPersistence

		x *= s.lacunarity
		y *= s.lacunarity
		curPersistence *= s.persistence
	}

	return value
}
