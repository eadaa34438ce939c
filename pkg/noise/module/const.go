package module

// Const outputs the same value at every coordinate. Useful as a fixed
// input to combining modules and in pipeline definitions.
//
// Const has no source modules.
type Const struct {
	Base
	value float64
}

// NewConst creates a module that always outputs value.
func NewConst(value float64) *Const {
	return &Const{value: value}
}

// SetConstValue changes the emitted value.
func (c *Const) SetConstValue(value float64) { c.value = value }

// ConstValue returns the emitted value.
func (c *Const) ConstValue() float64 { return c.value }

// GetValue returns the constant regardless of position.
func (c *Const) GetValue(x, y float64) float64 {
	return c.value
}
