package pentrace

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/duckify/pentrace/mesh"
)

// singleTriangleMesh returns a mesh with one triangle covering the lower-left
// half of the UV unit square ((0,0), (1,0), (0,1)), mapped to the triangle
// (0,0,0), (2,0,0), (0,2,0) in the XY plane at Z=0.
func singleTriangleMesh() *mesh.Mesh {
	m := &mesh.Mesh{
		Vertices: []float64{
			0, 0, 0,
			2, 0, 0,
			0, 2, 0,
		},
		UV: []float64{
			0, 0,
			1, 0,
			0, 1,
		},
		Faces: []int{0, 1, 2},
		HasUV: true,
	}
	// computeFaceNormals is unexported in mesh, so build the mesh through
	// mesh.Load-equivalent assembly by hand here and set the normal
	// directly; this mirrors a face lying flat in the XY plane (normal +Z
	// or -Z depending on winding — the exact sign does not matter to these
	// tests, only parallelism does).
	m.FaceNormals = []float64{0, 0, 1}
	return m
}

func TestProject_InterpolatesBarycentricPosition(t *testing.T) {
	assert := assert.New(t)

	m := singleTriangleMesh()
	cfg := NewConfig()

	// UV (0.5, 0) is the midpoint of the (0,0)-(1,0) edge, which maps to
	// the midpoint of (0,0,0)-(2,0,0).
	trace := Trace2D{Color: 0, Path: []Point2{{X: 0.5, Y: 0}, {X: 0, Y: 0.5}}}
	out, err := Project(trace, m, cfg)
	assert.NoError(err)
	assert.NotNil(out)
	assert.InDelta(1.0, out.Path[0].X, 1e-9)
	assert.InDelta(0.0, out.Path[0].Y, 1e-9)
	assert.InDelta(0.0, out.Path[1].X, 1e-9)
	assert.InDelta(1.0, out.Path[1].Y, 1e-9)
}

func TestProject_OutsideTriangleIsRejectedNotAnError(t *testing.T) {
	assert := assert.New(t)

	m := singleTriangleMesh()
	cfg := NewConfig()

	trace := Trace2D{Color: 0, Path: []Point2{{X: 5, Y: 5}}}
	out, err := Project(trace, m, cfg)
	assert.NoError(err)
	assert.Nil(out)
}

func TestProject_MeshWithoutUVIsFatal(t *testing.T) {
	assert := assert.New(t)

	m := &mesh.Mesh{HasUV: false}
	cfg := NewConfig()

	trace := Trace2D{Color: 0, Path: []Point2{{X: 0, Y: 0}}}
	out, err := Project(trace, m, cfg)
	assert.Nil(out)
	assert.Error(err)
	assert.Equal(Fatal, KindOf(err))
}
