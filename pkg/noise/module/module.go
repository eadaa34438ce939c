// Package module provides composable noise modules: generators that
// synthesize coherent-noise fields and operators that transform or
// combine the outputs of other modules. Modules form a directed acyclic
// graph that is evaluated lazily through GetValue; the caller owns
// module lifetimes and is responsible for keeping the graph acyclic.
package module

// Module is one node in a noise graph. GetValue must not mutate module
// state, so a fully configured graph can be sampled from any number of
// goroutines at once. Configuration (setters, source binding) is not
// synchronized and has to finish before evaluation starts.
type Module interface {
	// GetValue evaluates the module at (x, y).
	GetValue(x, y float64) float64

	// SourceModuleCount returns the number of source slots of this
	// module type.
	SourceModuleCount() int

	// SetSourceModule binds source to a slot. Panics when index is out
	// of range. Slots hold plain references; binding does not copy.
	SetSourceModule(index int, source Module)

	// SourceModule returns the module bound to a slot. Panics when the
	// slot is out of range or has not been bound.
	SourceModule(index int) Module
}

// Base carries the source-slot bookkeeping shared by all modules.
// Module types embed it; types without sources embed the zero value,
// types with sources initialize it via NewBase.
type Base struct {
	sources []Module
}

// NewBase returns slot storage for the given number of source modules.
func NewBase(count int) Base {
	return Base{sources: make([]Module, count)}
}

// SourceModuleCount returns the number of source slots.
func (b *Base) SourceModuleCount() int {
	return len(b.sources)
}

// SetSourceModule binds source to the given slot.
func (b *Base) SetSourceModule(index int, source Module) {
	if index < 0 || index >= len(b.sources) {
		panic("module: source index out of range")
	}
	b.sources[index] = source
}

// SourceModule returns the module bound to the given slot.
func (b *Base) SourceModule(index int) Module {
	if index < 0 || index >= len(b.sources) {
		panic("module: source index out of range")
	}
	m := b.sources[index]
	if m == nil {
		panic("module: source module is not set")
	}
	return m
}
