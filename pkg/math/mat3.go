package math

// Mat3 is a 3x3 homogeneous 2D transform in column-major order.
// Layout: [m0 m3 m6]
//
//	[m1 m4 m7]
//	[m2 m5 m8]
type Mat3 [9]float64

// Translate returns a translation matrix.
func Translate(x, y float64) Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		x, y, 1,
	}
}

// Scale returns a scaling matrix. A negative factor mirrors that axis.
func Scale(sx, sy float64) Mat3 {
	return Mat3{
		sx, 0, 0,
		0, sy, 0,
		0, 0, 1,
	}
}

// Mul returns m * other. The result applies other first.
func (m Mat3) Mul(other Mat3) Mat3 {
	var r Mat3
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			r[col*3+row] = m[row]*other[col*3] +
				m[3+row]*other[col*3+1] +
				m[6+row]*other[col*3+2]
		}
	}
	return r
}

// Transform applies the matrix to a point.
func (m Mat3) Transform(v Vec2) Vec2 {
	return Vec2{
		X: m[0]*v.X + m[3]*v.Y + m[6],
		Y: m[1]*v.X + m[4]*v.Y + m[7],
	}
}
