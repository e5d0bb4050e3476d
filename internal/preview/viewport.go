// Package preview rasterizes curl mesh frames into images for inspection.
package preview

import (
	gomath "math"

	"github.com/Faultbox/pagecurl/pkg/math"
)

// Viewport maps world coordinates (y up) onto image pixels (y down). The
// world rectangle is fitted into the image keeping its aspect ratio.
type Viewport struct {
	Width, Height int

	toPix math.Mat3
}

// NewViewport fits world into a width x height image. margin grows the world
// rectangle on every side by that fraction of its larger dimension, which
// leaves room for geometry that curls past the page edges.
func NewViewport(world math.Rect, width, height int, margin float64) Viewport {
	minX := gomath.Min(world.Left, world.Right)
	maxX := gomath.Max(world.Left, world.Right)
	minY := gomath.Min(world.Top, world.Bottom)
	maxY := gomath.Max(world.Top, world.Bottom)

	pad := margin * gomath.Max(maxX-minX, maxY-minY)
	minX, maxX = minX-pad, maxX+pad
	minY, maxY = minY-pad, maxY+pad

	w, h := maxX-minX, maxY-minY
	scale := 1.0
	if w > 0 && h > 0 {
		scale = gomath.Min(float64(width)/w, float64(height)/h)
	}

	offX := (float64(width) - w*scale) / 2
	offY := (float64(height) - h*scale) / 2

	return Viewport{
		Width:  width,
		Height: height,
		toPix: math.Translate(offX, offY).
			Mul(math.Scale(scale, -scale)).
			Mul(math.Translate(-minX, -maxY)),
	}
}

// ToPixel converts a world position to pixel coordinates.
func (v Viewport) ToPixel(x, y float64) (float32, float32) {
	p := v.toPix.Transform(math.Vec2{X: x, Y: y})
	return float32(p.X), float32(p.Y)
}
