package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMesh_AccessorsIndexFlatBuffersCorrectly(t *testing.T) {
	assert := assert.New(t)

	m := &Mesh{
		Vertices: []float64{0, 0, 0, 1, 0, 0, 0, 1, 0},
		UV:       []float64{0, 0, 1, 0, 0, 1},
		Faces:    []int{0, 1, 2},
		HasUV:    true,
	}

	assert.Equal(3, m.NumVerts())
	assert.Equal(1, m.NumFaces())

	x, y, z := m.Vertex(1)
	assert.Equal(1.0, x)
	assert.Equal(0.0, y)
	assert.Equal(0.0, z)

	u, v := m.VertexUV(2)
	assert.Equal(0.0, u)
	assert.Equal(1.0, v)

	i0, i1, i2 := m.Face(0)
	assert.Equal(0, i0)
	assert.Equal(1, i1)
	assert.Equal(2, i2)
}

func TestMesh_ComputeFaceNormalsIsUnitLength(t *testing.T) {
	assert := assert.New(t)

	m := &Mesh{
		Vertices: []float64{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Faces:    []int{0, 1, 2},
	}
	m.computeFaceNormals()

	nx, ny, nz := m.Normal(0)
	length := nx*nx + ny*ny + nz*nz
	assert.InDelta(1.0, length, 1e-9)
	assert.InDelta(0.0, nx, 1e-9)
	assert.InDelta(0.0, ny, 1e-9)
	assert.InDelta(1.0, nz, 1e-9)
}

func TestMesh_ComputeFaceNormalsGuardsDegenerateTriangle(t *testing.T) {
	assert := assert.New(t)

	// Three collinear points: zero-area triangle, zero-length cross product.
	m := &Mesh{
		Vertices: []float64{0, 0, 0, 1, 0, 0, 2, 0, 0},
		Faces:    []int{0, 1, 2},
	}
	assert.NotPanics(func() { m.computeFaceNormals() })

	nx, ny, nz := m.Normal(0)
	assert.Equal(0.0, nx)
	assert.Equal(0.0, ny)
	assert.Equal(0.0, nz)
}
