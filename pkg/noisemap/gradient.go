package noisemap

import (
	"fmt"
	"image/color"
	"math"

	"noisegraph/pkg/noise"
)

// GradientPoint is one stop of a GradientColor table.
type GradientPoint struct {
	Pos   float64
	Color color.RGBA
}

// GradientColor maps scalar positions to colors by blending between
// sorted gradient stops. Positions outside the table clamp to the
// nearest stop.
type GradientColor struct {
	points []GradientPoint
}

// NewGradientColor creates an empty gradient table.
func NewGradientColor() *GradientColor {
	return &GradientColor{}
}

// AddGradientPoint inserts a stop, keeping the table sorted by
// position. A position already present in the table is rejected.
func (g *GradientColor) AddGradientPoint(pos float64, c color.RGBA) error {
	insertAt := len(g.points)
	for i, pt := range g.points {
		if pos == pt.Pos {
			return fmt.Errorf("%w: duplicate gradient position %v", noise.ErrInvalidParam, pos)
		}
		if pos < pt.Pos {
			insertAt = i
			break
		}
	}

	g.points = append(g.points, GradientPoint{})
	copy(g.points[insertAt+1:], g.points[insertAt:])
	g.points[insertAt] = GradientPoint{Pos: pos, Color: c}
	return nil
}

// Clear removes every stop.
func (g *GradientColor) Clear() {
	g.points = g.points[:0]
}

// PointCount returns the number of stops.
func (g *GradientColor) PointCount() int {
	return len(g.points)
}

// Point returns stop i in ascending position order.
func (g *GradientColor) Point(i int) GradientPoint {
	return g.points[i]
}

// GetColor returns the color at pos. Between two stops the colors
// blend channel-wise, rounding to the nearest byte; outside the table
// the nearest stop wins. An empty table panics.
func (g *GradientColor) GetColor(pos float64) color.RGBA {
	if len(g.points) == 0 {
		panic("noisemap: gradient color table is empty")
	}

	// First stop strictly above pos; len(points) when pos is past the
	// last stop.
	indexPos := len(g.points)
	for i, pt := range g.points {
		if pos < pt.Pos {
			indexPos = i
			break
		}
	}

	index0 := clampIndex(indexPos-1, 0, len(g.points)-1)
	index1 := clampIndex(indexPos, 0, len(g.points)-1)
	if index0 == index1 {
		return g.points[index1].Color
	}

	input0 := g.points[index0].Pos
	input1 := g.points[index1].Pos
	alpha := (pos - input0) / (input1 - input0)
	return blendColors(g.points[index0].Color, g.points[index1].Color, alpha)
}

func clampIndex(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func blendColors(c0, c1 color.RGBA, alpha float64) color.RGBA {
	return color.RGBA{
		R: blendChannel(c0.R, c1.R, alpha),
		G: blendChannel(c0.G, c1.G, alpha),
		B: blendChannel(c0.B, c1.B, alpha),
		A: blendChannel(c0.A, c1.A, alpha),
	}
}

func blendChannel(a, b uint8, alpha float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*alpha))
}
