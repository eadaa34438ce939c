package noisemap

import (
	"fmt"
	"image"
	"image/color"

	"noisegraph/pkg/noise"
)

// Image is an owned row-major color raster with the same bounds and
// border semantics as NoiseMap. The border color defaults to
// transparent black.
type Image struct {
	width  int
	height int
	border color.RGBA
	cells  []color.RGBA
}

// NewImage creates an empty 0x0 image.
func NewImage() *Image {
	return &Image{}
}

// SetSize resizes the image to width x height cells, reusing the
// existing allocation when its capacity suffices. Cell contents after
// a resize are unspecified.
func (im *Image) SetSize(width, height int) error {
	if err := validateMapSize(width, height); err != nil {
		return err
	}
	if width == 0 || height == 0 {
		im.width, im.height = 0, 0
		im.cells = im.cells[:0]
		return nil
	}

	cellCount := width * height
	if cellCount/width != height {
		return fmt.Errorf("%w: raster of %dx%d cells", noise.ErrOutOfMemory, width, height)
	}
	if cellCount > cap(im.cells) {
		im.cells = make([]color.RGBA, cellCount)
	} else {
		im.cells = im.cells[:cellCount]
	}
	im.width = width
	im.height = height
	return nil
}

// Width returns the image width in cells.
func (im *Image) Width() int { return im.width }

// Height returns the image height in cells.
func (im *Image) Height() int { return im.height }

// Stride returns the number of cells between vertically adjacent
// positions in the backing store.
func (im *Image) Stride() int { return im.width }

// SetBorderColor sets the color returned for out-of-bounds reads.
func (im *Image) SetBorderColor(c color.RGBA) { im.border = c }

// BorderColor returns the out-of-bounds read color.
func (im *Image) BorderColor() color.RGBA { return im.border }

// GetValue returns the cell at (x, y), or the border color when the
// position lies outside the image.
func (im *Image) GetValue(x, y int) color.RGBA {
	if x < 0 || x >= im.width || y < 0 || y >= im.height {
		return im.border
	}
	return im.cells[y*im.width+x]
}

// SetValue writes the cell at (x, y). Writes outside the image are
// silently dropped.
func (im *Image) SetValue(x, y int, c color.RGBA) {
	if x < 0 || x >= im.width || y < 0 || y >= im.height {
		return
	}
	im.cells[y*im.width+x] = c
}

// Clear sets every cell to c.
func (im *Image) Clear(c color.RGBA) {
	for i := range im.cells {
		im.cells[i] = c
	}
}

// CopyFrom deep-copies src, including its border color.
func (im *Image) CopyFrom(src *Image) error {
	if src == nil {
		return fmt.Errorf("%w: nil source image", noise.ErrInvalidParam)
	}
	if err := im.SetSize(src.width, src.height); err != nil {
		return err
	}
	copy(im.cells, src.cells)
	im.border = src.border
	return nil
}

// TakeOwnership steals src's backing store instead of copying it and
// leaves src as an empty 0x0 image with a zero border color.
func (im *Image) TakeOwnership(src *Image) {
	if src == nil || src == im {
		return
	}
	im.width = src.width
	im.height = src.height
	im.cells = src.cells

	src.width = 0
	src.height = 0
	src.cells = nil
	src.border = color.RGBA{}
}

// RGBA converts the image into a stdlib RGBA image for encoding.
func (im *Image) RGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, im.width, im.height))
	for y := 0; y < im.height; y++ {
		for x := 0; x < im.width; x++ {
			out.SetRGBA(x, y, im.cells[y*im.width+x])
		}
	}
	return out
}
