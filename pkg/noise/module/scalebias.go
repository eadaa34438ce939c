package module

// Defaults for ScaleBias.
const (
	DefaultScale = 1.0
	DefaultBias  = 0.0
)

// ScaleBias multiplies its source by a constant factor and adds a
// constant offset, typically to fit generator output into the range a
// consumer expects.
//
// ScaleBias has one source module.
type ScaleBias struct {
	Base
	scale float64
	bias  float64
}

// NewScaleBias creates a pass-through (scale 1, bias 0) module.
func NewScaleBias() *ScaleBias {
	return &ScaleBias{
		Base:  NewBase(1),
		scale: DefaultScale,
		bias:  DefaultBias,
	}
}

// SetScale sets the multiplication factor.
func (s *ScaleBias) SetScale(scale float64) { s.scale = scale }

// Scale returns the multiplication factor.
func (s *ScaleBias) Scale() float64 { return s.scale }

// SetBias sets the constant offset.
func (s *ScaleBias) SetBias(bias float64) { s.bias = bias }

// Bias returns the constant offset.
func (s *ScaleBias) Bias() float64 { return s.bias }

// GetValue scales and offsets the source value at (x, y).
func (s *ScaleBias) GetValue(x, y float64) float64 {
	return s.SourceModule(0).GetValue(x, y)*s.scale + s.bias
}
