package curl

// DrawRange is a vertex range for a single triangle strip draw call.
type DrawRange struct {
	Start int
	Count int
}

// Empty reports whether the range draws nothing.
func (r DrawRange) Empty() bool {
	return r.Count <= 0
}

// Frame is a read view over the buffers produced by the last Curl or Reset.
// Slices returned by Mesh.Frame alias mesh storage and are only valid until
// the next call that mutates the mesh; use Clone to keep them.
type Frame struct {
	// Positions holds x, y, z per vertex.
	Positions []float32
	// Colors holds r, g, b, a per vertex.
	Colors []float32
	// TexCoords holds u, v per vertex. Nil when textures are disabled.
	TexCoords []float32

	FrontCount int
	BackCount  int

	// ShadowPositions holds x, y, z per shadow vertex, drop shadows first.
	ShadowPositions []float32
	// ShadowColors holds r, g, b, a per shadow vertex.
	ShadowColors []float32

	DropShadowCount int
	SelfShadowCount int

	// CurlLines holds three 2D line segments (x0, y0, x1, y1 each) marking
	// the curl position and direction. Nil unless enabled.
	CurlLines []float32
}

// VertexCount returns the number of vertices in the position buffer.
func (f Frame) VertexCount() int {
	return len(f.Positions) / 3
}

// FrontRange returns the front-facing strip.
func (f Frame) FrontRange() DrawRange {
	return DrawRange{Start: 0, Count: f.FrontCount}
}

// BackRange returns the back-facing strip. It starts two vertices before the
// end of the front strip so both strips share an edge.
func (f Frame) BackRange() DrawRange {
	start := max(0, f.FrontCount-2)
	return DrawRange{Start: start, Count: f.FrontCount + f.BackCount - start}
}

// DropShadowRange returns the drop shadow strip within the shadow buffers.
func (f Frame) DropShadowRange() DrawRange {
	return DrawRange{Start: 0, Count: f.DropShadowCount}
}

// SelfShadowRange returns the self shadow strip within the shadow buffers.
func (f Frame) SelfShadowRange() DrawRange {
	return DrawRange{Start: f.DropShadowCount, Count: f.SelfShadowCount}
}

// Clone returns a deep copy that does not alias mesh storage.
func (f Frame) Clone() Frame {
	c := f
	c.Positions = cloneFloats(f.Positions)
	c.Colors = cloneFloats(f.Colors)
	c.TexCoords = cloneFloats(f.TexCoords)
	c.ShadowPositions = cloneFloats(f.ShadowPositions)
	c.ShadowColors = cloneFloats(f.ShadowColors)
	c.CurlLines = cloneFloats(f.CurlLines)
	return c
}

func cloneFloats(s []float32) []float32 {
	if s == nil {
		return nil
	}
	out := make([]float32, len(s))
	copy(out, s)
	return out
}

// buffers are the fixed-size output arrays fed to a renderer.
type buffers struct {
	maxVertices int
	maxShadows  int

	positions []float32
	colors    []float32
	texCoords []float32

	shadowPositions []float32
	shadowColors    []float32

	curlLines []float32

	count int
	front int
	back  int

	shadowCount int
	drop        int
	self        int
}

func newBuffers(maxVertices, maxShadows int, o options) buffers {
	b := buffers{
		maxVertices: maxVertices,
		maxShadows:  maxShadows,
		positions:   make([]float32, maxVertices*3),
		colors:      make([]float32, maxVertices*4),
	}
	if o.textures {
		b.texCoords = make([]float32, maxVertices*2)
	}
	if o.shadows {
		b.shadowPositions = make([]float32, maxShadows*3)
		b.shadowColors = make([]float32, maxShadows*4)
	}
	if o.curlLines {
		b.curlLines = make([]float32, 3*4)
	}
	return b
}

func (b *buffers) rewind() {
	b.count, b.front, b.back = 0, 0, 0
}

func (b *buffers) rewindShadows() {
	b.shadowCount, b.drop, b.self = 0, 0, 0
}

// addVertex appends v with its color scaled by the color factor.
func (b *buffers) addVertex(v *Vertex) {
	if b.count >= b.maxVertices {
		panic(&CapacityError{Pool: "output vertex", Capacity: b.maxVertices})
	}
	i := b.count

	p := b.positions[i*3 : i*3+3]
	p[0] = float32(v.Pos.X)
	p[1] = float32(v.Pos.Y)
	p[2] = float32(v.Pos.Z)

	c := b.colors[i*4 : i*4+4]
	c[0] = v.ColorFactor * v.Color.R
	c[1] = v.ColorFactor * v.Color.G
	c[2] = v.ColorFactor * v.Color.B
	c[3] = v.Color.A

	if b.texCoords != nil {
		t := b.texCoords[i*2 : i*2+2]
		t[0] = float32(v.Tex.X)
		t[1] = float32(v.Tex.Y)
	}
	b.count++
}

// addShadowPair appends the inner and outer vertex of sv.
func (b *buffers) addShadowPair(sv *ShadowVertex, inner, outer Color) {
	if b.shadowCount+2 > b.maxShadows {
		panic(&CapacityError{Pool: "output shadow vertex", Capacity: b.maxShadows})
	}
	i := b.shadowCount
	o := sv.Outer()

	p := b.shadowPositions[i*3 : i*3+6]
	p[0], p[1], p[2] = float32(sv.Pos.X), float32(sv.Pos.Y), float32(sv.Pos.Z)
	p[3], p[4], p[5] = float32(o.X), float32(o.Y), float32(o.Z)

	c := shadowColor(inner, outer, sv.Intensity)
	cs := b.shadowColors[i*4 : i*4+8]
	cs[0], cs[1], cs[2], cs[3] = c.R, c.G, c.B, c.A
	cs[4], cs[5], cs[6], cs[7] = outer.R, outer.G, outer.B, outer.A

	b.shadowCount += 2
}

func (b *buffers) frame() Frame {
	f := Frame{
		Positions:  b.positions[:b.count*3],
		Colors:     b.colors[:b.count*4],
		FrontCount: b.front,
		BackCount:  b.back,
		CurlLines:  b.curlLines,
	}
	if b.texCoords != nil {
		f.TexCoords = b.texCoords[:b.count*2]
	}
	if b.shadowPositions != nil {
		f.ShadowPositions = b.shadowPositions[:b.shadowCount*3]
		f.ShadowColors = b.shadowColors[:b.shadowCount*4]
		f.DropShadowCount = b.drop
		f.SelfShadowCount = b.self
	}
	return f
}
