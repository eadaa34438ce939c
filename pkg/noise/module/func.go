package module

// Func adapts a plain function to the Module interface so external
// noise sources can participate in a graph. The function is fixed at
// construction and must be safe for concurrent calls.
//
// Func has no source modules.
type Func struct {
	Base
	fn func(x, y float64) float64
}

// NewFunc wraps fn as a module. A nil fn panics.
func NewFunc(fn func(x, y float64) float64) *Func {
	if fn == nil {
		panic("module: nil function")
	}
	return &Func{fn: fn}
}

// GetValue evaluates the wrapped function at (x, y).
func (f *Func) GetValue(x, y float64) float64 {
	return f.fn(x, y)
}
