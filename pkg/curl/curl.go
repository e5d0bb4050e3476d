package curl

import (
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/pagecurl/pkg/math"
)

// Curl rolls the page around a cylinder of the given radius. pos is any
// point on the curl axis, dir the direction the curl moves towards. dir is
// normalized here; a zero direction leaves the page flat. Negative or NaN
// radii are treated as 0, which folds the page sharply along the axis, and
// an infinite radius leaves the page flat.
//
// Curl panics with *CapacityError if the geometry needs more vertices than
// the mesh was created for.
func (m *Mesh) Curl(pos, dir math.Vec2, radius float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.curl(pos, dir, radius)
}

func (m *Mesh) curl(pos, dir math.Vec2, radius float64) {
	dir = dir.Normalize()
	if dir == (math.Vec2{}) || !pos.IsFinite() || gomath.IsInf(radius, 1) {
		m.log.Debug("degenerate curl, keeping page flat",
			zap.Float64("posX", pos.X), zap.Float64("posY", pos.Y),
			zap.Float64("dirX", dir.X), zap.Float64("dirY", dir.Y),
			zap.Float64("radius", radius))
		m.reset()
		return
	}
	if !(radius > 0) {
		radius = 0
	}

	m.writeCurlLines(pos, dir)

	// Local frame: curl axis through the origin, curl heading to +X.
	angle := dir.Angle()
	toLocalSin, toLocalCos := gomath.Sincos(-angle)
	toWorldSin, toWorldCos := gomath.Sincos(angle)

	m.rotateCorners(pos, toLocalSin, toLocalCos)
	m.resolveLines()

	m.buf.rewind()
	m.dropShadows.Clear()
	m.selfShadows.Clear()

	// Length of the half circle the page wraps around.
	curlLength := gomath.Pi * radius
	m.buildScanLines(curlLength)

	// The first scan area starts right of the rightmost corner, which is
	// the same as starting from infinity.
	scanXmax := m.rotated[0].Pos.X + 1
	last := m.scanLines.Len() - 1

	for i, scanXmin := range m.scanLines.Slice() {
		m.band.Clear()
		m.clipCorners(scanXmin, scanXmax)
		m.clipScanLine(scanXmin)

		for k := range m.band.Len() {
			v := m.band.At(k)
			front := m.wrap(v, i, last, curlLength, radius)
			m.applySide(v, front)

			v.rotateZ(toWorldSin, toWorldCos)
			v.translate(pos)
			m.buf.addVertex(v)

			if m.opts.shadows {
				m.collectShadow(v, dir, radius)
			}
		}
		scanXmax = scanXmin
	}

	if m.opts.shadows {
		m.flushShadows()
	}
}

// rotateCorners moves the rectangle into the local frame and orders the
// corners by descending x; equal x puts the higher y first.
func (m *Mesh) rotateCorners(pos math.Vec2, sin, cos float64) {
	offset := pos.Neg()
	n := 0
	for i := range m.rect {
		v := m.rect[i]
		v.translate(offset)
		v.rotateZ(sin, cos)

		j := 0
		for ; j < n; j++ {
			o := &m.rotated[j]
			if v.Pos.X > o.Pos.X || (v.Pos.X == o.Pos.X && v.Pos.Y > o.Pos.Y) {
				break
			}
		}
		copy(m.rotated[j+1:n+1], m.rotated[j:n])
		m.rotated[j] = v
		n++
	}
}

// resolveLines picks the rectangle edges as index pairs into the sorted
// corners, larger x first. After sorting, corner 3 is not always opposite
// corner 0 when two corners have nearly equal x, so the farther of corners
// 2 and 3 is taken as the diagonal.
func (m *Mesh) resolveLines() {
	m.lines = [4][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}}

	v0 := m.rotated[0].Pos.XY()
	d2 := v0.Distance(m.rotated[2].Pos.XY())
	d3 := v0.Distance(m.rotated[3].Pos.XY())
	if d2 > d3 {
		m.lines[1][1] = 3
		m.lines[2][1] = 2
	}
}

// buildScanLines fills the scan line x positions, right to left: the curl
// start, evenly spaced lines across the curl, and a line left of the
// leftmost corner that catches everything rolled completely over.
func (m *Mesh) buildScanLines(curlLength float64) {
	m.scanLines.Clear()
	m.scanLines.Push(0)
	// With no curl length every split line coincides with the axis.
	if curlLength > 0 {
		for i := 1; i < m.maxSplits; i++ {
			m.scanLines.Push(-curlLength * float64(i) / float64(m.maxSplits-1))
		}
	}
	m.scanLines.Push(m.rotated[3].Pos.X - 1)
}

// intersect returns the points where rectangle edges strictly cross the
// vertical line x = scanX. The result is reused by the next call.
func (m *Mesh) intersect(scanX float64) *fixedList[Vertex] {
	m.intersections.Clear()
	for _, l := range m.lines {
		v1 := &m.rotated[l[0]]
		v2 := &m.rotated[l[1]]
		if v1.Pos.X > scanX && v2.Pos.X < scanX {
			c := (scanX - v2.Pos.X) / (v1.Pos.X - v2.Pos.X)
			n := *v2
			n.Pos.X = scanX
			n.Pos.Y += (v1.Pos.Y - v2.Pos.Y) * c
			n.Tex = v2.Tex.Lerp(v1.Tex, c)
			n.Penumbra = v2.Penumbra.Lerp(v1.Penumbra, c)
			m.intersections.Push(n)
		}
	}
	return m.intersections
}

// clipCorners adds the corners inside [scanXmin, scanXmax] to the band.
// Each corner is paired with the point where the opposite edge crosses its
// x, higher vertex first, so the strip triangulates.
func (m *Mesh) clipCorners(scanXmin, scanXmax float64) {
	for j := range m.rotated {
		v := m.rotated[j]
		if v.Pos.X < scanXmin || v.Pos.X > scanXmax {
			continue
		}

		pairs := m.intersect(v.Pos.X)
		switch {
		case pairs.Len() == 1 && pairs.At(0).Pos.Y > v.Pos.Y:
			m.band.Push(*pairs.At(0))
			m.band.Push(v)
		case pairs.Len() <= 1:
			m.band.Push(v)
			if pairs.Len() == 1 {
				m.band.Push(*pairs.At(0))
			}
		default:
			// A rotated rectangle has at most one edge across a corner.
			m.log.Debug("dropping corner with unexpected intersections",
				zap.Int("corner", j),
				zap.Int("intersections", pairs.Len()))
		}
	}
}

// clipScanLine adds where the scan line crosses the rectangle, higher
// vertex first. One crossing means a corner lies on the line and was
// already added; three or more is a numerical anomaly. Both are skipped.
func (m *Mesh) clipScanLine(scanX float64) {
	is := m.intersect(scanX)
	switch is.Len() {
	case 0:
	case 2:
		a, b := is.At(0), is.At(1)
		if a.Pos.Y < b.Pos.Y {
			a, b = b, a
		}
		m.band.Push(*a)
		m.band.Push(*b)
	default:
		m.log.Debug("dropping scan line intersections",
			zap.Float64("scanX", scanX),
			zap.Int("intersections", is.Len()))
	}
}

// wrap maps a local vertex of band i onto the cylinder and reports whether
// it faces front. Band 0 is untouched, the last band rolled completely over.
func (m *Mesh) wrap(v *Vertex, i, last int, curlLength, radius float64) bool {
	switch {
	case i == 0:
		m.buf.front++
		return true

	case i == last || curlLength == 0:
		v.Pos.X = -(curlLength + v.Pos.X)
		v.Pos.Z = 2 * radius
		v.Penumbra.X = -v.Penumbra.X
		m.buf.back++
		return false
	}

	// Here x is within [-curlLength, 0]: treat it as arc length on the
	// half cylinder.
	rotY := gomath.Pi * (v.Pos.X / curlLength)
	sin, cos := gomath.Sincos(rotY)
	v.Pos.X = radius * sin
	v.Pos.Z = radius - radius*cos
	v.Penumbra.X *= cos
	// Map to [0.1, 1]: darker towards the fold.
	v.ColorFactor = float32(0.1 + 0.9*gomath.Sqrt(sin+1))

	if v.Pos.Z >= radius {
		m.buf.back++
		return false
	}
	m.buf.front++
	return true
}

// applySide scales texture coordinates into the texture sub-rectangle and
// sets the tint. Flipped meshes use the back texture on front faces.
func (m *Mesh) applySide(v *Vertex, front bool) {
	if front != m.flip {
		v.Tex.X, v.Tex.Y = m.texFront.Map(v.Tex.X, v.Tex.Y)
		v.Color = m.page.Color(SideFront)
		return
	}
	v.Tex.X, v.Tex.Y = m.texBack.Map(v.Tex.X, v.Tex.Y)
	v.Color = m.page.Color(SideBack)
}

// writeCurlLines fills the debug lines: a cross at pos and a segment from
// pos along dir.
func (m *Mesh) writeCurlLines(pos, dir math.Vec2) {
	l := m.buf.curlLines
	if l == nil {
		return
	}
	x, y := float32(pos.X), float32(pos.Y)
	copy(l, []float32{
		x, y - 1, x, y + 1,
		x - 1, y, x + 1, y,
		x, y, x + float32(dir.X*2), y + float32(dir.Y*2),
	})
}
