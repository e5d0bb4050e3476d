package math

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

// XY returns the XY components as Vec2.
func (v Vec3) XY() Vec2 {
	return Vec2{v.X, v.Y}
}

// WithXY returns a copy of v with X and Y replaced.
func (v Vec3) WithXY(xy Vec2) Vec3 {
	return Vec3{xy.X, xy.Y, v.Z}
}
