package curl

import "github.com/Faultbox/pagecurl/pkg/math"

// shadowColor blends from outer to inner by intensity, clamped to [0, 1].
func shadowColor(inner, outer Color, intensity float64) Color {
	t := float32(intensity)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return outer.Lerp(inner, t)
}

// collectShadow records shadow vertices for a vertex already moved back to
// world space. Drop shadow is cast behind the curl, self shadow partly over
// the mesh itself. Pairs are inserted at the list midpoint so the strip
// stays consistently wound while bands are processed outer to inner.
func (m *Mesh) collectShadow(v *Vertex, dir math.Vec2, radius float64) {
	z := v.Pos.Z
	if z > 0 && z <= radius {
		sv := ShadowVertex{
			Pos:       v.Pos,
			Penumbra:  dir.Neg().Scale(z / 2),
			Intensity: z / radius,
		}
		m.dropShadows.Insert((m.dropShadows.Len()+1)/2, sv)
	}
	if z > radius {
		sv := ShadowVertex{
			Pos:       v.Pos,
			Penumbra:  v.Penumbra.Scale((z - radius) / 3),
			Intensity: (z - radius) / (2 * radius),
		}
		m.selfShadows.Insert((m.selfShadows.Len()+1)/2, sv)
	}
}

// flushShadows writes the collected shadow vertices, drop shadows first.
func (m *Mesh) flushShadows() {
	b := &m.buf
	b.rewindShadows()
	for _, sv := range m.dropShadows.Slice() {
		b.addShadowPair(&sv, m.opts.shadowInner, m.opts.shadowOuter)
		b.drop += 2
	}
	for _, sv := range m.selfShadows.Slice() {
		b.addShadowPair(&sv, m.opts.shadowInner, m.opts.shadowOuter)
		b.self += 2
	}
}
