package math

// Rect is an axis-aligned rectangle given by its edges. Top and Bottom are
// not ordered: a page in GL coordinates usually has Top > Bottom.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// NewRect creates a rectangle from its edges.
func NewRect(left, top, right, bottom float64) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// UnitRect returns the (0,0)-(1,1) rectangle.
func UnitRect() Rect {
	return Rect{Left: 0, Top: 0, Right: 1, Bottom: 1}
}

// Width returns Right - Left.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns Bottom - Top.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Corners returns top-left, bottom-left, top-right and bottom-right.
func (r Rect) Corners() [4]Vec2 {
	return [4]Vec2{
		{r.Left, r.Top},
		{r.Left, r.Bottom},
		{r.Right, r.Top},
		{r.Right, r.Bottom},
	}
}

// Map maps normalized (u, v) into the rectangle.
func (r Rect) Map(u, v float64) (float64, float64) {
	return r.Left + u*r.Width(), r.Top + v*r.Height()
}
