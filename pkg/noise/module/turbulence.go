package module

// Defaults for Turbulence.
const (
	DefaultPower     = 1.0
	DefaultRoughness = 3
)

// Turbulence randomly displaces the coordinates handed to its source
// module. Three internal Perlin generators drive the displacement:
// power scales how far points move, roughness (their octave count)
// controls how ragged the displacement is.
//
// Turbulence has one source module, the module to distort.
type Turbulence struct {
	Base
	power    float64
	xDistort Perlin
	yDistort Perlin
	zDistort Perlin
}

// NewTurbulence creates a Turbulence module with power 1.0, frequency
// 1.0, roughness 3 and seed 0.
func NewTurbulence() *Turbulence {
	t := &Turbulence{
		Base:     NewBase(1),
		power:    DefaultPower,
		xDistort: *NewPerlin(),
		yDistort: *NewPerlin(),
		zDistort: *NewPerlin(),
	}
	t.SetSeed(DefaultSeed)
	t.SetFrequency(DefaultFrequency)
	if err := t.SetRoughness(DefaultRoughness); err != nil {
		panic(err)
	}
	return t
}

// SetPower scales the displacement distance.
func (t *Turbulence) SetPower(power float64) { t.power = power }

// Power returns the displacement scale.
func (t *Turbulence) Power() float64 { return t.power }

// SetFrequency sets the frequency of the displacement field.
func (t *Turbulence) SetFrequency(frequency float64) {
	t.xDistort.SetFrequency(frequency)
	t.yDistort.SetFrequency(frequency)
	t.zDistort.SetFrequency(frequency)
}

// Frequency returns the frequency of the displacement field.
func (t *Turbulence) Frequency() float64 { return t.xDistort.Frequency() }

// SetRoughness sets the octave count of the displacement field. Higher
// values tear the displacement into finer swirls.
func (t *Turbulence) SetRoughness(roughness int) error {
	if err := t.xDistort.SetOctaveCount(roughness); err != nil {
		return err
	}
	if err := t.yDistort.SetOctaveCount(roughness); err != nil {
		return err
	}
	return t.zDistort.SetOctaveCount(roughness)
}

// Roughness returns the octave count of the displacement field.
func (t *Turbulence) Roughness() int { return t.xDistort.OctaveCount() }

// SetSeed seeds the displacement generators. Each axis gets a slightly
// different seed so the displacement components stay uncorrelated.
func (t *Turbulence) SetSeed(seed int32) {
	t.xDistort.SetSeed(seed)
	t.yDistort.SetSeed(seed + 1)
	t.zDistort.SetSeed(seed + 2)
}

// Seed returns the base seed of the displacement generators.
func (t *Turbulence) Seed() int32 { return t.xDistort.Seed() }

// GetValue evaluates the source module at displaced coordinates.
func (t *Turbulence) GetValue(x, y float64) float64 {
	// The displacement samples are taken at fixed fractional offsets
	// from the input point. Without the offsets, inputs on integer
	// boundaries would sample coherent noise exactly at lattice points,
	// where it is zero, and the distortion would vanish there.
	x0 := x + (12414.0 / 65536.0)
	y0 := y + (65124.0 / 65536.0)
	x1 := x + (26519.0 / 65536.0)
	y1 := y + (18128.0 / 65536.0)
	xDistort := x + t.xDistort.GetValue(x0, y0)*t.power
	yDistort := y + t.yDistort.GetValue(x1, y1)*t.power

	return t.SourceModule(0).GetValue(xDistort, yDistort)
}
