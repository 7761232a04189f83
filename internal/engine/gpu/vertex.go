package gpu

import "github.com/Faultbox/compose/pkg/math"

// Vertex is a 2D position with its texture coordinate.
type Vertex struct {
	Position math.Vec2
	UV       math.Vec2
}

// VertexArray is an immutable list of triangles (three vertices each, no
// index buffer). Transformables share a *VertexArray freely; it is never
// mutated after construction.
type VertexArray struct {
	vertices []Vertex
}

// NewVertexArray copies vertices into a new array.
func NewVertexArray(vertices []Vertex) *VertexArray {
	v := make([]Vertex, len(vertices))
	copy(v, vertices)
	return &VertexArray{vertices: v}
}

// Vertices returns the backing slice. Callers must not modify it.
func (va *VertexArray) Vertices() []Vertex {
	if va == nil {
		return nil
	}
	return va.vertices
}

// Len returns the vertex count. A nil array is empty.
func (va *VertexArray) Len() int {
	if va == nil {
		return 0
	}
	return len(va.vertices)
}
