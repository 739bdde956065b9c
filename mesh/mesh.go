// Package mesh loads triangular meshes with per-vertex UV coordinates from
// Wavefront OBJ files. It is kept separate from the root pentrace package
// the way the teacher (esimov-caire) isolates its imop image-operation
// helpers from the main package — see DESIGN.md.
package mesh

import "math"

// Mesh is a triangular mesh with per-vertex UV coordinates, stored as flat
// row-major buffers per spec §9's guidance ("prefer a flat row-major buffer
// ... over per-row heap allocations").
type Mesh struct {
	// Vertices is len 3*NumVerts, (x,y,z) per vertex.
	Vertices []float64
	// UV is len 2*NumVerts, (u,v) per vertex. Empty when HasUV is false.
	UV []float64
	// Faces is len 3*NumFaces, vertex indices per triangle.
	Faces []int
	// FaceNormals is len 3*NumFaces, one unit-length normal per face.
	FaceNormals []float64
	// HasUV reports whether every vertex has a UV coordinate. A mesh
	// without per-vertex UV is unusable by the projector (spec §3).
	HasUV bool
}

// NumVerts returns the vertex count.
func (m *Mesh) NumVerts() int { return len(m.Vertices) / 3 }

// NumFaces returns the triangle count.
func (m *Mesh) NumFaces() int { return len(m.Faces) / 3 }

// Vertex returns the (x,y,z) position of vertex i.
func (m *Mesh) Vertex(i int) (x, y, z float64) {
	return m.Vertices[3*i], m.Vertices[3*i+1], m.Vertices[3*i+2]
}

// VertexUV returns the (u,v) coordinate of vertex i.
func (m *Mesh) VertexUV(i int) (u, v float64) {
	return m.UV[2*i], m.UV[2*i+1]
}

// Face returns the three vertex indices of triangle f.
func (m *Mesh) Face(f int) (i0, i1, i2 int) {
	return m.Faces[3*f], m.Faces[3*f+1], m.Faces[3*f+2]
}

// Normal returns the unit face normal of triangle f.
func (m *Mesh) Normal(f int) (x, y, z float64) {
	return m.FaceNormals[3*f], m.FaceNormals[3*f+1], m.FaceNormals[3*f+2]
}

// computeFaceNormals fills FaceNormals as the unit cross product of two edge
// vectors of each triangle, per spec §9's explicit fallback guidance.
func (m *Mesh) computeFaceNormals() {
	nf := m.NumFaces()
	m.FaceNormals = make([]float64, nf*3)
	for f := 0; f < nf; f++ {
		i0, i1, i2 := m.Face(f)
		x0, y0, z0 := m.Vertex(i0)
		x1, y1, z1 := m.Vertex(i1)
		x2, y2, z2 := m.Vertex(i2)

		ux, uy, uz := x1-x0, y1-y0, z1-z0
		vx, vy, vz := x2-x0, y2-y0, z2-z0

		nx := uy*vz - uz*vy
		ny := uz*vx - ux*vz
		nz := ux*vy - uy*vx

		length := math.Sqrt(nx*nx + ny*ny + nz*nz)
		if length > 0 {
			nx, ny, nz = nx/length, ny/length, nz/length
		}
		m.FaceNormals[3*f], m.FaceNormals[3*f+1], m.FaceNormals[3*f+2] = nx, ny, nz
	}
}
