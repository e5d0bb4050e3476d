package curl

import "github.com/Faultbox/pagecurl/pkg/math"

// Vertex is a mesh point. Penumbra is only used as the offset direction for
// self shadow vertices; it is not a surface normal.
type Vertex struct {
	Pos      math.Vec3
	Tex      math.Vec2
	Penumbra math.Vec2
	Color    Color
	// ColorFactor darkens vertices inside the curl, range [0.1, 1].
	ColorFactor float32
}

// newVertex returns a vertex at the origin with a neutral color factor.
func newVertex() Vertex {
	return Vertex{ColorFactor: 1}
}

// translate moves the vertex in the XY plane.
func (v *Vertex) translate(d math.Vec2) {
	v.Pos = v.Pos.WithXY(v.Pos.XY().Add(d))
}

// rotateZ rotates position and penumbra counter-clockwise around the Z axis.
func (v *Vertex) rotateZ(sin, cos float64) {
	x, y := v.Pos.X, v.Pos.Y
	v.Pos.X = x*cos - y*sin
	v.Pos.Y = x*sin + y*cos

	px, py := v.Penumbra.X, v.Penumbra.Y
	v.Penumbra.X = px*cos - py*sin
	v.Penumbra.Y = px*sin + py*cos
}

// ShadowVertex is the inner half of a shadow vertex pair. The outer vertex
// sits at Pos + Penumbra; Intensity blends between the inner and outer
// shadow colors.
type ShadowVertex struct {
	Pos       math.Vec3
	Penumbra  math.Vec2
	Intensity float64
}

// Outer returns the faded end of the pair.
func (sv ShadowVertex) Outer() math.Vec3 {
	return math.Vec3{X: sv.Pos.X + sv.Penumbra.X, Y: sv.Pos.Y + sv.Penumbra.Y, Z: sv.Pos.Z}
}
