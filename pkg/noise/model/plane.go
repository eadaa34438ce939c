// Package model maps points of simple geometric shapes onto the input
// plane of a noise module.
package model

import "noisegraph/pkg/noise/module"

// Plane passes (x, z) plane coordinates straight through to a module.
// The raster builder samples terrain through it.
type Plane struct {
	module module.Module
}

// NewPlane creates a plane model over m. m may be nil and bound later
// with SetModule.
func NewPlane(m module.Module) *Plane {
	return &Plane{module: m}
}

// SetModule binds the module evaluated by GetValue.
func (p *Plane) SetModule(m module.Module) {
	p.module = m
}

// Module returns the bound module.
func (p *Plane) Module() module.Module {
	return p.module
}

// GetValue evaluates the bound module at the plane position (x, z).
func (p *Plane) GetValue(x, z float64) float64 {
	if p.module == nil {
		panic("model: plane module is not set")
	}
	return p.module.GetValue(x, z)
}
