package noisemap

import (
	"fmt"

	"github.com/dgravesa/go-parallel/parallel"

	"noisegraph/pkg/noise"
	"noisegraph/pkg/noise/model"
	"noisegraph/pkg/noise/module"
)

// Builder samples a module graph over a rectangular window of the
// plane into a NoiseMap. Cell (x, z) of a width x height raster maps
// to world position (lowerX + x*xExtent/width, lowerZ + z*zExtent/height),
// so the window is inclusive at the lower bounds and exclusive at the
// upper ones.
//
// In seamless mode each cell blends four samples taken one window
// extent apart, which forces opposite raster edges toward the same
// values; the rendered tile then repeats without visible seams.
type Builder struct {
	source     module.Module
	dest       *NoiseMap
	destWidth  int
	destHeight int
	lowerX     float64
	upperX     float64
	lowerZ     float64
	upperZ     float64
	seamless   bool
}

// NewBuilder creates a builder with no source, no destination, an
// empty window and seamless mode off.
func NewBuilder() *Builder {
	return &Builder{}
}

// SetSourceModule binds the module graph to sample.
func (b *Builder) SetSourceModule(m module.Module) { b.source = m }

// SetDestNoiseMap binds the map that Build fills.
func (b *Builder) SetDestNoiseMap(dst *NoiseMap) { b.dest = dst }

// SetDestSize sets the raster resolution in cells.
func (b *Builder) SetDestSize(width, height int) {
	b.destWidth = width
	b.destHeight = height
}

// SetBounds frames the world-space window [lowerX, upperX) x
// [lowerZ, upperZ) to sample.
func (b *Builder) SetBounds(lowerX, upperX, lowerZ, upperZ float64) {
	b.lowerX = lowerX
	b.upperX = upperX
	b.lowerZ = lowerZ
	b.upperZ = upperZ
}

// EnableSeamless toggles seamless tiling mode.
func (b *Builder) EnableSeamless(enable bool) { b.seamless = enable }

func (b *Builder) validate() error {
	if b.upperX <= b.lowerX || b.upperZ <= b.lowerZ {
		return fmt.Errorf("%w: builder bounds [%v, %v) x [%v, %v)",
			noise.ErrInvalidParam, b.lowerX, b.upperX, b.lowerZ, b.upperZ)
	}
	if b.destWidth <= 0 || b.destHeight <= 0 {
		return fmt.Errorf("%w: builder size %dx%d", noise.ErrInvalidParam, b.destWidth, b.destHeight)
	}
	if b.source == nil {
		return fmt.Errorf("%w: builder source module is not set", noise.ErrInvalidParam)
	}
	return nil
}

// Build resizes the destination map and fills it with samples of the
// source module. Rows are computed in parallel; every cell depends
// only on its own indices, so the output matches a sequential pass
// bit for bit. An unbound source or destination map is rejected like
// any other invalid parameter.
func (b *Builder) Build() error {
	if err := b.validate(); err != nil {
		return err
	}
	if b.dest == nil {
		return fmt.Errorf("%w: builder destination map is not set", noise.ErrInvalidParam)
	}
	if err := b.dest.SetSize(b.destWidth, b.destHeight); err != nil {
		return err
	}

	plane := model.NewPlane(b.source)
	xDelta := (b.upperX - b.lowerX) / float64(b.destWidth)
	zDelta := (b.upperZ - b.lowerZ) / float64(b.destHeight)

	parallel.For(b.destHeight, func(z, _ int) {
		worldZ := b.lowerZ + float64(z)*zDelta
		row := b.dest.Row(z)
		for x := 0; x < b.destWidth; x++ {
			worldX := b.lowerX + float64(x)*xDelta
			row[x] = b.sampleAt(plane, worldX, worldZ)
		}
	})
	return nil
}

// BuildWithCallback samples the window like Build but streams every
// cell through fn in row-major order instead of writing a map. The
// destination map, if bound, is left untouched. An unbound source or
// a nil fn is rejected.
func (b *Builder) BuildWithCallback(fn func(x, z int, value float64)) error {
	if fn == nil {
		return fmt.Errorf("%w: nil build callback", noise.ErrInvalidParam)
	}
	if err := b.validate(); err != nil {
		return err
	}

	plane := model.NewPlane(b.source)
	xDelta := (b.upperX - b.lowerX) / float64(b.destWidth)
	zDelta := (b.upperZ - b.lowerZ) / float64(b.destHeight)

	for z := 0; z < b.destHeight; z++ {
		worldZ := b.lowerZ + float64(z)*zDelta
		for x := 0; x < b.destWidth; x++ {
			worldX := b.lowerX + float64(x)*xDelta
			fn(x, z, b.sampleAt(plane, worldX, worldZ))
		}
	}
	return nil
}

func (b *Builder) sampleAt(plane *model.Plane, worldX, worldZ float64) float64 {
	if !b.seamless {
		return plane.GetValue(worldX, worldZ)
	}

	xExtent := b.upperX - b.lowerX
	zExtent := b.upperZ - b.lowerZ
	sw := plane.GetValue(worldX, worldZ)
	se := plane.GetValue(worldX+xExtent, worldZ)
	nw := plane.GetValue(worldX, worldZ+zExtent)
	ne := plane.GetValue(worldX+xExtent, worldZ+zExtent)
	xBlend := 1.0 - (worldX-b.lowerX)/xExtent
	zBlend := 1.0 - (worldZ-b.lowerZ)/zExtent
	z0 := noise.LinearInterp(sw, se, xBlend)
	z1 := noise.LinearInterp(nw, ne, xBlend)
	return noise.LinearInterp(z0, z1, zBlend)
}
