package mesh

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_TriangleWithUV(t *testing.T) {
	assert := assert.New(t)

	doc := `
# a single triangle
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
f 1/1 2/2 3/3
`
	m, err := Parse(strings.NewReader(doc))
	assert.NoError(err)
	assert.True(m.HasUV)
	assert.Equal(3, m.NumVerts())
	assert.Equal(1, m.NumFaces())

	u, v := m.VertexUV(0)
	assert.Equal(0.0, u)
	assert.Equal(0.0, v)
}

func TestParse_QuadFaceIsFanTriangulated(t *testing.T) {
	assert := assert.New(t)

	doc := `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
f 1/1 2/2 3/3 4/4
`
	m, err := Parse(strings.NewReader(doc))
	assert.NoError(err)
	assert.Equal(2, m.NumFaces())
}

func TestParse_MissingUVOnAnyCornerMeansHasUVFalse(t *testing.T) {
	assert := assert.New(t)

	doc := `
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
f 1/1 2/2 3
`
	m, err := Parse(strings.NewReader(doc))
	assert.NoError(err)
	assert.False(m.HasUV)
}

func TestParse_DeduplicatesSharedUVSeams(t *testing.T) {
	assert := assert.New(t)

	// Two triangles sharing OBJ vertices 1 and 3 (the shared edge), with
	// vertex 3 carrying a different UV index in each face: that position
	// must be split into separate output vertices (spec's per-mesh-vertex
	// UV model), while vertex 1, same UV in both faces, is not.
	doc := `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vt 0.999 0.999
f 1/1 2/2 3/3
f 1/1 3/5 4/4
`
	m, err := Parse(strings.NewReader(doc))
	assert.NoError(err)
	// Position 2 (0-based index 2, OBJ vertex 3) is referenced with two
	// different UVs across the two faces, so it must produce two distinct
	// output vertices even though both share the same 3D position.
	assert.Equal(5, m.NumVerts())
}

func TestParse_RejectsFaceWithFewerThanThreeVertices(t *testing.T) {
	assert := assert.New(t)

	doc := `
v 0 0 0
v 1 0 0
f 1 2
`
	_, err := Parse(strings.NewReader(doc))
	assert.Error(err)
}

func TestParse_NoVerticesIsAnError(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse(strings.NewReader("# empty\n"))
	assert.Error(err)
}
