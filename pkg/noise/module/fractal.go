package module

import (
	"fmt"

	"noisegraph/pkg/noise"
)

// MaxOctaveCount bounds the octave count of all fractal generators.
const MaxOctaveCount = 30

// Defaults shared by the fractal generators.
const (
	DefaultFrequency   = 1.0
	DefaultLacunarity  = 2.0
	DefaultPersistence = 0.5
	DefaultOctaveCount = 6
	DefaultSeed        = 0
)

// fractalParams holds the knobs common to octave-summation generators
// and provides their accessors; embedding types promote the methods.
type fractalParams struct {
	frequency   float64
	lacunarity  float64
	persistence float64
	octaveCount int
	quality     noise.Quality
	seed        int32
}

func defaultFractalParams() fractalParams {
	return fractalParams{
		frequency:   DefaultFrequency,
		lacunarity:  DefaultLacunarity,
		persistence: DefaultPersistence,
		octaveCount: DefaultOctaveCount,
		quality:     noise.QualityStandard,
		seed:        DefaultSeed,
	}
}

// SetFrequency sets the frequency of the first octave.
func (p *fractalParams) SetFrequency(frequency float64) { p.frequency = frequency }

// Frequency returns the frequency of the first octave.
func (p *fractalParams) Frequency() float64 { return p.frequency }

// SetLacunarity sets the frequency multiplier between octaves. Values
// between 1.5 and 3.5 give the most natural results.
func (p *fractalParams) SetLacunarity(lacunarity float64) { p.lacunarity = lacunarity }

// Lacunarity returns the frequency multiplier between octaves.
func (p *fractalParams) Lacunarity() float64 { return p.lacunarity }

// SetPersistence sets the amplitude multiplier between octaves. Values
// near 0.5 keep the octave sum roughly within [-1, 1].
func (p *fractalParams) SetPersistence(persistence float64) { p.persistence = persistence }

// Persistence returns the amplitude multiplier between octaves.
func (p *fractalParams) Persistence() float64 { return p.persistence }

// SetOctaveCount sets how many octaves are summed per sample. Counts
// outside [1, MaxOctaveCount] are rejected.
func (p *fractalParams) SetOctaveCount(n int) error {
	if n < 1 || n > MaxOctaveCount {
		return fmt.Errorf("%w: octave count %d outside [1, %d]", noise.ErrInvalidParam, n, MaxOctaveCount)
	}
	p.octaveCount = n
	return nil
}

// OctaveCount returns the number of octaves summed per sample.
func (p *fractalParams) OctaveCount() int { return p.octaveCount }

// SetQuality selects the interpolation quality of every octave.
func (p *fractalParams) SetQuality(q noise.Quality) { p.quality = q }

// Quality returns the interpolation quality.
func (p *fractalParams) Quality() noise.Quality { return p.quality }

// SetSeed sets the seed of the first octave; octave n uses seed+n.
func (p *fractalParams) SetSeed(seed int32) { p.seed = seed }

// Seed returns the generator seed.
func (p *fractalParams) Seed() int32 { return p.seed }

// coherentOctave samples one octave at already frequency-scaled
// coordinates. Coordinates are folded into int32 range first so extreme
// frequencies keep hashing consistently; the octave index perturbs the
// seed with int32 wraparound.
func (p *fractalParams) coherentOctave(x, y float64, octave int) float64 {
	nx := noise.MakeInt32Range(x)
	ny := noise.MakeInt32Range(y)
	seed := p.seed + int32(octave)
	return noise.GradientCoherentNoise2D(nx, ny, seed, p.quality)
}
