package inkmesh

// Mesh is a triangle list ready for upload: the triangles index Vertices.
type Mesh struct {
	Vertices  []Point
	Triangles []Triangle
}

// BuildStrokeMesh builds the stroke outline and triangulates it. The mesh
// vertices are the outline points, in outline order.
func BuildStrokeMesh(samples []Sample, opts StrokeOptions) (*Mesh, error) {
	outline, err := BuildStrokeOutline(samples, opts)
	if err != nil {
		return nil, err
	}
	return FillPolygon(outline)
}

// FillPolygon is Triangulate packaged as a Mesh. The polygon is not copied.
func FillPolygon(polygon []Point, opts ...TriangulateOption) (*Mesh, error) {
	triangles, err := Triangulate(polygon, opts...)
	if err != nil {
		return nil, err
	}
	return &Mesh{Vertices: polygon, Triangles: triangles}, nil
}

// Indices flattens the triangles into an index buffer.
func (m *Mesh) Indices() []uint32 {
	indices := make([]uint32, 0, len(m.Triangles)*3)
	for _, t := range m.Triangles {
		indices = append(indices, uint32(t[0]), uint32(t[1]), uint32(t[2]))
	}
	return indices
}

// Float32Vertices interleaves the vertices as x, y pairs.
func (m *Mesh) Float32Vertices() []float32 {
	vertices := make([]float32, 0, len(m.Vertices)*2)
	for _, p := range m.Vertices {
		vertices = append(vertices, float32(p.X), float32(p.Y))
	}
	return vertices
}

// Area is the total unsigned area of the triangles.
func (m *Mesh) Area() float64 {
	var area float64
	for _, t := range m.Triangles {
		a := t.SignedArea(m.Vertices)
		if a < 0 {
			a = -a
		}
		area += a
	}
	return area
}
