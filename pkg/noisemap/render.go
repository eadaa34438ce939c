package noisemap

import (
	"fmt"

	"noisegraph/pkg/noise"
)

// RenderImage colors every cell of src through grad into dst, sizing
// dst to match src. The destination keeps its border color.
func RenderImage(src *NoiseMap, grad *GradientColor, dst *Image) error {
	if src == nil || grad == nil || dst == nil {
		return fmt.Errorf("%w: renderer needs a source map, a gradient and a destination image",
			noise.ErrInvalidParam)
	}
	if grad.PointCount() == 0 {
		return fmt.Errorf("%w: empty gradient color table", noise.ErrInvalidParam)
	}
	if err := dst.SetSize(src.Width(), src.Height()); err != nil {
		return err
	}

	for z := 0; z < src.Height(); z++ {
		for x := 0; x < src.Width(); x++ {
			dst.SetValue(x, z, grad.GetColor(src.GetValue(x, z)))
		}
	}
	return nil
}
