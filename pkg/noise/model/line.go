package model

import (
	"github.com/go-gl/mathgl/mgl64"

	"noisegraph/pkg/noise/module"
)

// Line evaluates a module along a straight segment between two points,
// which is useful for displacing roads and rivers. The parameter p runs
// from the start point (p = 0) to the end point (p = 1). With
// attenuation enabled (the default) the output tapers to zero at both
// endpoints; without it, p may range outside [0, 1] and the value is
// extrapolated along the carrier line.
type Line struct {
	module    module.Module
	start     mgl64.Vec3
	end       mgl64.Vec3
	attenuate bool
}

// NewLine creates a line model over m with both endpoints at the
// origin and attenuation enabled.
func NewLine(m module.Module) *Line {
	return &Line{module: m, attenuate: true}
}

// SetModule binds the module evaluated by GetValue.
func (l *Line) SetModule(m module.Module) {
	l.module = m
}

// Module returns the bound module.
func (l *Line) Module() module.Module {
	return l.module
}

// SetStartPoint places the p = 0 end of the segment. The z coordinate
// is carried with the point but does not enter 2D evaluation.
func (l *Line) SetStartPoint(x, y, z float64) {
	l.start = mgl64.Vec3{x, y, z}
}

// SetEndPoint places the p = 1 end of the segment.
func (l *Line) SetEndPoint(x, y, z float64) {
	l.end = mgl64.Vec3{x, y, z}
}

// SetAttenuate toggles tapering the output toward zero at the segment
// endpoints.
func (l *Line) SetAttenuate(att bool) {
	l.attenuate = att
}

// Attenuate reports whether endpoint tapering is enabled.
func (l *Line) Attenuate() bool {
	return l.attenuate
}

// GetValue evaluates the bound module at the position p along the
// segment.
func (l *Line) GetValue(p float64) float64 {
	if l.module == nil {
		panic("model: line module is not set")
	}
	pos := l.start.Add(l.end.Sub(l.start).Mul(p))
	value := l.module.GetValue(pos.X(), pos.Y())
	if l.attenuate {
		return p * (1.0 - p) * 4.0 * value
	}
	return value
}
