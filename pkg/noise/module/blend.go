package module

import "noisegraph/pkg/noise"

// Blend mixes its first two sources with a weight taken from a control
// module: a control value of -1 selects the first source entirely, +1
// the second, and values in between interpolate linearly.
//
// Blend has three source modules: slots 0 and 1 are blended, slot 2 is
// the control.
type Blend struct {
	Base
}

// NewBlend creates a Blend module with all three slots unbound.
func NewBlend() *Blend {
	return &Blend{Base: NewBase(3)}
}

// SetControlModule binds the module whose output selects the blend
// weight. Shorthand for SetSourceModule(2, m).
func (b *Blend) SetControlModule(m Module) {
	b.SetSourceModule(2, m)
}

// ControlModule returns the control module.
func (b *Blend) ControlModule() Module {
	return b.SourceModule(2)
}

// GetValue blends the two sources at (x, y).
func (b *Blend) GetValue(x, y float64) float64 {
	v0 := b.SourceModule(0).GetValue(x, y)
	v1 := b.SourceModule(1).GetValue(x, y)
	alpha := (b.SourceModule(2).GetValue(x, y) + 1.0) / 2.0
	return noise.LinearInterp(v0, v1, alpha)
}
