// Package noisemap renders module graphs into row-major rasters and
// colors them through gradient tables. A Builder samples a module
// over a rectangular window of the plane into a NoiseMap; RenderImage
// turns a NoiseMap into an Image using a GradientColor table.
package noisemap

import (
	"fmt"

	"noisegraph/pkg/noise"
)

// Raster dimension limits. Rasters larger than this are rejected with
// ErrInvalidParam before any allocation happens.
const (
	MaxMapWidth  = 32767
	MaxMapHeight = 32767
)

func validateMapSize(width, height int) error {
	if width < 0 || height < 0 || width > MaxMapWidth || height > MaxMapHeight {
		return fmt.Errorf("%w: raster size %dx%d", noise.ErrInvalidParam, width, height)
	}
	return nil
}

// NoiseMap is an owned row-major float64 raster. Reads outside the
// bounds return the border value, writes outside the bounds are
// dropped. A zero NoiseMap is an empty 0x0 map ready for use.
type NoiseMap struct {
	width  int
	height int
	border float64
	cells  []float64
}

// NewNoiseMap creates an empty 0x0 noise map.
func NewNoiseMap() *NoiseMap {
	return &NoiseMap{}
}

// SetSize resizes the map to width x height cells. The existing
// allocation is reused whenever its capacity suffices, so shrinking
// never reallocates; cell contents after a resize are unspecified.
func (m *NoiseMap) SetSize(width, height int) error {
	if err := validateMapSize(width, height); err != nil {
		return err
	}
	if width == 0 || height == 0 {
		m.width, m.height = 0, 0
		m.cells = m.cells[:0]
		return nil
	}

	cellCount := width * height
	if cellCount/width != height {
		return fmt.Errorf("%w: raster of %dx%d cells", noise.ErrOutOfMemory, width, height)
	}
	if cellCount > cap(m.cells) {
		m.cells = make([]float64, cellCount)
	} else {
		m.cells = m.cells[:cellCount]
	}
	m.width = width
	m.height = height
	return nil
}

// Width returns the map width in cells.
func (m *NoiseMap) Width() int { return m.width }

// Height returns the map height in cells.
func (m *NoiseMap) Height() int { return m.height }

// Stride returns the number of cells between vertically adjacent
// positions in the backing store.
func (m *NoiseMap) Stride() int { return m.width }

// SetBorderValue sets the value returned for out-of-bounds reads.
func (m *NoiseMap) SetBorderValue(value float64) { m.border = value }

// BorderValue returns the out-of-bounds read value.
func (m *NoiseMap) BorderValue() float64 { return m.border }

// GetValue returns the cell at (x, y), or the border value when the
// position lies outside the map.
func (m *NoiseMap) GetValue(x, y int) float64 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return m.border
	}
	return m.cells[y*m.width+x]
}

// SetValue writes the cell at (x, y). Writes outside the map are
// silently dropped.
func (m *NoiseMap) SetValue(x, y int, value float64) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.cells[y*m.width+x] = value
}

// Clear sets every cell to value.
func (m *NoiseMap) Clear(value float64) {
	for i := range m.cells {
		m.cells[i] = value
	}
}

// CopyFrom deep-copies src, including its border value. The two maps
// share no storage afterwards.
func (m *NoiseMap) CopyFrom(src *NoiseMap) error {
	if src == nil {
		return fmt.Errorf("%w: nil source noise map", noise.ErrInvalidParam)
	}
	if err := m.SetSize(src.width, src.height); err != nil {
		return err
	}
	copy(m.cells, src.cells)
	m.border = src.border
	return nil
}

// TakeOwnership steals src's backing store instead of copying it and
// leaves src as an empty 0x0 map with a zero border value. The
// destination keeps its own border value.
func (m *NoiseMap) TakeOwnership(src *NoiseMap) {
	if src == nil || src == m {
		return
	}
	m.width = src.width
	m.height = src.height
	m.cells = src.cells

	src.width = 0
	src.height = 0
	src.cells = nil
	src.border = 0
}

// Row returns the cells of row y as a slice sharing the map's backing
// store. Out-of-range rows return nil.
func (m *NoiseMap) Row(y int) []float64 {
	if y < 0 || y >= m.height {
		return nil
	}
	start := y * m.width
	return m.cells[start : start+m.width]
}
