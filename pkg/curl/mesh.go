// Package curl builds the triangle strips for a page curl: a rectangle
// rolled around a moving cylinder axis into a flat front part, a curved
// part and a flat back part, together with fake drop and self shadows.
//
// A Mesh is created once with the maximum number of curl splits, which
// sizes every internal buffer. After that Curl and Reset rewrite the
// buffers in place without allocating:
//
//	m := curl.New(10)
//	m.SetRect(math.NewRect(-1, 1, 1, -1))
//	m.Curl(math.Vec2{X: 0.5}, math.Vec2{X: 1}, 0.3)
//	f := m.Frame()
//	draw(f.Positions, f.FrontRange(), f.BackRange())
//
// Each Mesh serializes its own methods; separate meshes are independent.
package curl

import (
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/pagecurl/pkg/math"
)

// Rectangle corner indices.
const (
	cornerTopLeft = iota
	cornerBottomLeft
	cornerTopRight
	cornerBottomRight
)

// bandCapacity bounds the vertices one scan band can produce: every corner
// with its edge intersection plus the two scan line intersections.
const bandCapacity = 4*2 + 2

// Mesh generates curled page geometry.
type Mesh struct {
	mu   sync.Mutex
	opts options
	log  *zap.Logger

	maxSplits int

	// rect holds top-left, bottom-left, top-right and bottom-right.
	rect     [4]Vertex
	page     Page
	texFront math.Rect
	texBack  math.Rect
	flip     bool

	// Scratch state reused by every Curl call.
	rotated       [4]Vertex
	lines         [4][2]int
	scanLines     *fixedList[float64]
	intersections *fixedList[Vertex]
	band          *fixedList[Vertex]
	dropShadows   *fixedList[ShadowVertex]
	selfShadows   *fixedList[ShadowVertex]

	buf buffers
}

// New creates a mesh. maxCurlSplits is the number of lines the curved part
// is divided into; bigger values give a smoother curl at the cost of more
// triangles. Values below 1 are raised to 1.
func New(maxCurlSplits int, opts ...Option) *Mesh {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	splits := max(1, maxCurlSplits)
	shadowCap := (splits + 2) * 2

	m := &Mesh{
		opts:          o,
		log:           o.logger,
		maxSplits:     splits,
		page:          NewPage(),
		texFront:      math.UnitRect(),
		texBack:       math.UnitRect(),
		scanLines:     newFixedList[float64]("scan line", splits+2),
		intersections: newFixedList[Vertex]("intersection", 4),
		band:          newFixedList[Vertex]("band vertex", bandCapacity),
		dropShadows:   newFixedList[ShadowVertex]("drop shadow", shadowCap),
		selfShadows:   newFixedList[ShadowVertex]("self shadow", shadowCap),
		// 4 corners, up to 2 vertices where the rectangle edges cross the
		// corners' x, and 2 per curl split line.
		buf: newBuffers(4+2+2*splits, shadowCap*2, o),
	}

	for i := range m.rect {
		m.rect[i] = newVertex()
	}
	// Penumbra directions point away from the rectangle center and drive
	// the self shadow offsets.
	m.rect[cornerTopLeft].Penumbra = math.Vec2{X: -1, Y: 1}
	m.rect[cornerBottomLeft].Penumbra = math.Vec2{X: -1, Y: -1}
	m.rect[cornerTopRight].Penumbra = math.Vec2{X: 1, Y: 1}
	m.rect[cornerBottomRight].Penumbra = math.Vec2{X: 1, Y: -1}
	m.setTextureCoords(0, 0, 1, 1)

	m.reset()

	m.log.Debug("curl mesh created",
		zap.Int("maxCurlSplits", splits),
		zap.Int("maxVertices", m.buf.maxVertices),
		zap.Int("maxShadowVertices", m.buf.maxShadows),
		zap.Bool("shadows", o.shadows),
		zap.Bool("textures", o.textures))

	return m
}

// MaxCurlSplits returns the split count the mesh was sized for.
func (m *Mesh) MaxCurlSplits() int {
	return m.maxSplits
}

// SetRect updates the page bounds. Takes effect on the next Curl or Reset.
func (m *Mesh) SetRect(r math.Rect) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := r.Corners()
	for i := range m.rect {
		m.rect[i].Pos = math.Vec3{X: c[i].X, Y: c[i].Y}
	}
}

// SetTextureCoords sets the normalized texture coordinates of the page
// corners.
func (m *Mesh) SetTextureCoords(left, top, right, bottom float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setTextureCoords(left, top, right, bottom)
}

func (m *Mesh) setTextureCoords(left, top, right, bottom float64) {
	m.rect[cornerTopLeft].Tex = math.Vec2{X: left, Y: top}
	m.rect[cornerBottomLeft].Tex = math.Vec2{X: left, Y: bottom}
	m.rect[cornerTopRight].Tex = math.Vec2{X: right, Y: top}
	m.rect[cornerBottomRight].Tex = math.Vec2{X: right, Y: bottom}
}

// SetTextureRects sets the sub-rectangles of the front and back textures
// that hold the page image, e.g. the used part of a power-of-two texture.
func (m *Mesh) SetTextureRects(front, back math.Rect) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.texFront = front
	m.texBack = back
}

// SetFlipTexture mirrors the texture sideways and swaps which texture and
// tint are used for the front and back faces.
func (m *Mesh) SetFlipTexture(flip bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.flip = flip
	if flip {
		m.setTextureCoords(1, 0, 0, 1)
	} else {
		m.setTextureCoords(0, 0, 1, 1)
	}
}

// FlipTexture reports whether the texture is flipped.
func (m *Mesh) FlipTexture() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flip
}

// SetColor sets the blend color for a page side.
func (m *Mesh) SetColor(c Color, side Side) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.page.SetColor(c, side)
}

// Color returns the blend color for a page side.
func (m *Mesh) Color(side Side) Color {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.page.Color(side)
}

// Frame returns the buffers produced by the last Curl or Reset. The slices
// alias mesh storage.
func (m *Mesh) Frame() Frame {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.buf.frame()
}

// Reset turns the mesh back into a plain flat rectangle: four front-facing
// vertices and no shadow.
func (m *Mesh) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset()
}

func (m *Mesh) reset() {
	side, texRect := SideFront, m.texFront
	if m.flip {
		side, texRect = SideBack, m.texBack
	}

	m.buf.rewind()
	for i := range m.rect {
		v := m.rect[i]
		v.Tex.X, v.Tex.Y = texRect.Map(v.Tex.X, v.Tex.Y)
		v.Color = m.page.Color(side)
		m.buf.addVertex(&v)
	}
	m.buf.front = 4
	m.buf.back = 0
	m.buf.rewindShadows()
}
