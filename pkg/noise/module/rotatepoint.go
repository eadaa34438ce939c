package module

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RotatePoint rotates the input coordinates around the origin before
// handing them to its source module, leaving the source itself
// untouched. Angles are Euler angles in degrees.
//
// RotatePoint has one source module.
type RotatePoint struct {
	Base
	xAngle float64
	yAngle float64
	zAngle float64
	matrix mgl64.Mat3
}

// NewRotatePoint creates a rotation of 0 degrees around every axis.
func NewRotatePoint() *RotatePoint {
	r := &RotatePoint{Base: NewBase(1)}
	r.SetAngles(0, 0, 0)
	return r
}

// SetAngles precomputes the rotation matrix for the given Euler angles
// in degrees.
func (r *RotatePoint) SetAngles(xAngle, yAngle, zAngle float64) {
	xCos := math.Cos(mgl64.DegToRad(xAngle))
	yCos := math.Cos(mgl64.DegToRad(yAngle))
	zCos := math.Cos(mgl64.DegToRad(zAngle))
	xSin := math.Sin(mgl64.DegToRad(xAngle))
	ySin := math.Sin(mgl64.DegToRad(yAngle))
	zSin := math.Sin(mgl64.DegToRad(zAngle))

	x1 := ySin*xSin*zSin + yCos*zCos
	y1 := xCos * zSin
	z1 := ySin*zCos - yCos*xSin*zSin
	x2 := ySin*xSin*zCos - yCos*zSin
	y2 := xCos * zCos
	z2 := -yCos*xSin*zCos - ySin*zSin
	x3 := -ySin * xCos
	y3 := xSin
	z3 := yCos * xCos

	// mgl64 matrices are column-major: column j holds the coefficients
	// Mul3x1 applies to input coordinate j.
	r.matrix = mgl64.Mat3{
		x1, x2, x3,
		y1, y2, y3,
		z1, z2, z3,
	}

	r.xAngle = xAngle
	r.yAngle = yAngle
	r.zAngle = zAngle
}

// SetXAngle sets the rotation around the x axis, keeping the others.
func (r *RotatePoint) SetXAngle(angle float64) { r.SetAngles(angle, r.yAngle, r.zAngle) }

// SetYAngle sets the rotation around the y axis, keeping the others.
func (r *RotatePoint) SetYAngle(angle float64) { r.SetAngles(r.xAngle, angle, r.zAngle) }

// SetZAngle sets the rotation around the z axis, keeping the others.
func (r *RotatePoint) SetZAngle(angle float64) { r.SetAngles(r.xAngle, r.yAngle, angle) }

// XAngle returns the rotation around the x axis in degrees.
func (r *RotatePoint) XAngle() float64 { return r.xAngle }

// YAngle returns the rotation around the y axis in degrees.
func (r *RotatePoint) YAngle() float64 { return r.yAngle }

// ZAngle returns the rotation around the z axis in degrees.
func (r *RotatePoint) ZAngle() float64 { return r.zAngle }

// GetValue evaluates the source module at the rotated coordinates.
func (r *RotatePoint) GetValue(x, y float64) float64 {
	rotated := r.matrix.Mul3x1(mgl64.Vec3{x, y, 0})
	return r.SourceModule(0).GetValue(rotated.X(), rotated.Y())
}
