package curl

// Side selects a face of a page.
type Side int

// Page sides.
const (
	SideFront Side = 1
	SideBack  Side = 2
	SideBoth  Side = 3
)

func (s Side) String() string {
	switch s {
	case SideFront:
		return "front"
	case SideBack:
		return "back"
	case SideBoth:
		return "both"
	}
	return "unknown"
}

// Page holds the blend colors for both faces of a page. Bitmaps live with
// the caller; the mesh only needs the tints.
type Page struct {
	front Color
	back  Color
}

// NewPage returns a page with both sides white.
func NewPage() Page {
	return Page{front: ColorWhite, back: ColorWhite}
}

// Color returns the tint for side. Anything but SideFront yields the back
// color.
func (p *Page) Color(side Side) Color {
	if side == SideFront {
		return p.front
	}
	return p.back
}

// SetColor sets the tint for side. SideBoth (or any unknown side) sets both.
func (p *Page) SetColor(c Color, side Side) {
	switch side {
	case SideFront:
		p.front = c
	case SideBack:
		p.back = c
	default:
		p.front = c
		p.back = c
	}
}
