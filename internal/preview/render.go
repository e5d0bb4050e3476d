package preview

import (
	"image"
	"image/color"
	"image/draw"
	gomath "math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/Faultbox/pagecurl/pkg/curl"
)

// Options control what the renderer draws besides the page strips.
type Options struct {
	Background curl.Color
	// Outlines strokes every page triangle.
	Outlines     bool
	OutlineColor curl.Color
	// Checker modulates page triangles with an n x n checkerboard looked up
	// by texture coordinates. Zero disables it.
	Checker int
	// Label draws the text passed to Render in the top-left corner.
	Label      bool
	LabelColor curl.Color
}

// DefaultOptions returns the settings used by curlshot.
func DefaultOptions() Options {
	return Options{
		Background:   curl.RGB(0x30, 0x30, 0x30),
		OutlineColor: curl.RGBA(0x20, 0x60, 0xff, 0xc0),
		Checker:      8,
		Label:        true,
		LabelColor:   curl.ColorWhite,
	}
}

var curlLineColor = color.NRGBA{0xff, 0x30, 0x30, 0xff}

// Renderer draws frames with flat-shaded triangles. A Renderer reuses its
// rasterizer and is not safe for concurrent use.
type Renderer struct {
	vp   Viewport
	opts Options
	z    *vector.Rasterizer
}

// NewRenderer creates a renderer for the given viewport.
func NewRenderer(vp Viewport, opts Options) *Renderer {
	return &Renderer{
		vp:   vp,
		opts: opts,
		z:    vector.NewRasterizer(vp.Width, vp.Height),
	}
}

// Render draws f into a new image. Strips are composited in the order a GL
// renderer would issue them: drop shadow, front, back, self shadow.
func (r *Renderer) Render(f curl.Frame, label string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.vp.Width, r.vp.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(toNRGBA(r.opts.Background)), image.Point{}, draw.Src)

	r.drawStrip(img, f.ShadowPositions, f.ShadowColors, nil, f.DropShadowRange())
	r.drawStrip(img, f.Positions, f.Colors, f.TexCoords, f.FrontRange())
	r.drawStrip(img, f.Positions, f.Colors, f.TexCoords, f.BackRange())
	r.drawStrip(img, f.ShadowPositions, f.ShadowColors, nil, f.SelfShadowRange())

	if r.opts.Outlines {
		c := toNRGBA(r.opts.OutlineColor)
		r.outlineStrip(img, f.Positions, f.FrontRange(), c)
		r.outlineStrip(img, f.Positions, f.BackRange(), c)
	}

	for i := 0; i+3 < len(f.CurlLines); i += 4 {
		l := f.CurlLines[i : i+4]
		x0, y0 := r.vp.ToPixel(float64(l[0]), float64(l[1]))
		x1, y1 := r.vp.ToPixel(float64(l[2]), float64(l[3]))
		r.strokeLine(img, x0, y0, x1, y1, 1.5, curlLineColor)
	}

	if r.opts.Label && label != "" {
		r.drawLabel(img, label)
	}
	return img
}

// drawStrip fills the triangles of a strip, each with the average color of
// its vertices.
func (r *Renderer) drawStrip(img *image.RGBA, pos, col, tex []float32, rng curl.DrawRange) {
	for i := rng.Start; i+2 < rng.Start+rng.Count; i++ {
		var p [3][2]float32
		var c [4]float32
		for k := range 3 {
			j := i + k
			p[k][0], p[k][1] = r.vp.ToPixel(float64(pos[j*3]), float64(pos[j*3+1]))
			for ch := range 4 {
				c[ch] += col[j*4+ch] / 3
			}
		}
		if c[3] <= 0 {
			continue
		}
		if tex != nil && r.opts.Checker > 0 && r.checkerDark(tex, i) {
			c[0], c[1], c[2] = c[0]*0.85, c[1]*0.85, c[2]*0.85
		}
		r.fillPolygon(img, p[:], toNRGBA(curl.Color{R: c[0], G: c[1], B: c[2], A: c[3]}))
	}
}

// checkerDark reports whether the centroid of triangle i falls on a dark
// checker cell.
func (r *Renderer) checkerDark(tex []float32, i int) bool {
	var u, v float32
	for k := range 3 {
		u += tex[(i+k)*2] / 3
		v += tex[(i+k)*2+1] / 3
	}
	n := float64(r.opts.Checker)
	cell := int(gomath.Floor(float64(u)*n)) + int(gomath.Floor(float64(v)*n))
	return cell&1 == 1
}

func (r *Renderer) outlineStrip(img *image.RGBA, pos []float32, rng curl.DrawRange, c color.NRGBA) {
	for i := rng.Start; i+2 < rng.Start+rng.Count; i++ {
		var p [3][2]float32
		for k := range 3 {
			j := i + k
			p[k][0], p[k][1] = r.vp.ToPixel(float64(pos[j*3]), float64(pos[j*3+1]))
		}
		for k := range 3 {
			a, b := p[k], p[(k+1)%3]
			r.strokeLine(img, a[0], a[1], b[0], b[1], 1, c)
		}
	}
}

// fillPolygon composites a closed polygon over img. Only the polygon's
// bounding box is rasterized.
func (r *Renderer) fillPolygon(img *image.RGBA, p [][2]float32, c color.NRGBA) {
	minX, minY := p[0][0], p[0][1]
	maxX, maxY := minX, minY
	for _, q := range p[1:] {
		minX, maxX = min(minX, q[0]), max(maxX, q[0])
		minY, maxY = min(minY, q[1]), max(maxY, q[1])
	}

	box := image.Rect(
		int(gomath.Floor(float64(minX))), int(gomath.Floor(float64(minY))),
		int(gomath.Ceil(float64(maxX))), int(gomath.Ceil(float64(maxY))),
	).Intersect(img.Bounds())
	if box.Empty() {
		return
	}

	ox, oy := float32(box.Min.X), float32(box.Min.Y)
	r.z.Reset(box.Dx(), box.Dy())
	r.z.DrawOp = draw.Over
	r.z.MoveTo(p[0][0]-ox, p[0][1]-oy)
	for _, q := range p[1:] {
		r.z.LineTo(q[0]-ox, q[1]-oy)
	}
	r.z.ClosePath()
	r.z.Draw(img, box, image.NewUniform(c), image.Point{})
}

// strokeLine draws a segment as a quad of the given pixel width.
func (r *Renderer) strokeLine(img *image.RGBA, x0, y0, x1, y1, width float32, c color.NRGBA) {
	dx, dy := x1-x0, y1-y0
	l := float32(gomath.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	r.fillPolygon(img, [][2]float32{
		{x0 + nx, y0 + ny},
		{x1 + nx, y1 + ny},
		{x1 - nx, y1 - ny},
		{x0 - nx, y0 - ny},
	}, c)
}

func (r *Renderer) drawLabel(img *image.RGBA, label string) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(toNRGBA(r.opts.LabelColor)),
		Face: face,
		Dot:  fixed.P(4, 4+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(label)
}

func toNRGBA(c curl.Color) color.NRGBA {
	v := c.Pack()
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
}
