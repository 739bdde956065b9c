package pentrace

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// writeTestTexture writes a 4x4 PNG whose top-left 2x2 block is red and
// whose remaining pixels are white.
func writeTestTexture(t *testing.T, path string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c := color.NRGBA{255, 255, 255, 255}
			if x < 2 && y < 2 {
				c = color.NRGBA{255, 0, 0, 255}
			}
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path)
	assert.NoError(t, err)
	defer f.Close()
	assert.NoError(t, png.Encode(f, img))
}

// writeTestMesh writes a single UV-unit-square quad (fan-triangulated into
// two triangles) spanning a 4x4 region in the XY plane at Z=0.
func writeTestMesh(t *testing.T, path string) {
	t.Helper()
	doc := `v 0 0 0
v 4 0 0
v 4 4 0
v 0 4 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
f 1/1 2/2 3/3 4/4
`
	assert.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
}

func TestComputeTraces_EndToEnd(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	texPath := filepath.Join(dir, "texture.png")
	modelPath := filepath.Join(dir, "model.obj")
	outPath := filepath.Join(dir, "out.json")

	writeTestTexture(t, texPath)
	writeTestMesh(t, modelPath)

	pal := Palette{{255, 0, 0}, {255, 255, 255}}
	cfg := NewConfig()
	cfg.FillSliceSpacing = 0.1

	tr := New(texPath, modelPath, outPath, pal, cfg)
	err := tr.ComputeTraces()
	assert.NoError(err)
	assert.NotEmpty(tr.Traces)

	_, statErr := os.Stat(outPath)
	assert.NoError(statErr)

	for _, tr3 := range tr.Traces {
		assert.GreaterOrEqual(tr3.Color, 0)
		assert.NotEmpty(tr3.Path)
	}
}

func TestComputeTraces_RejectsOversizedPalette(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	texPath := filepath.Join(dir, "texture.png")
	modelPath := filepath.Join(dir, "model.obj")
	writeTestTexture(t, texPath)
	writeTestMesh(t, modelPath)

	pal := make(Palette, 257)
	tr := New(texPath, modelPath, "", pal, NewConfig())
	err := tr.ComputeTraces()
	assert.Error(err)
	assert.Equal(InvalidInput, KindOf(err))
}

func TestComputeTraces_MeshWithoutUVIsInvalidInput(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	texPath := filepath.Join(dir, "texture.png")
	modelPath := filepath.Join(dir, "model.obj")
	writeTestTexture(t, texPath)
	assert.NoError(os.WriteFile(modelPath, []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), 0o644))

	pal := Palette{{255, 0, 0}, {255, 255, 255}}
	tr := New(texPath, modelPath, "", pal, NewConfig())
	err := tr.ComputeTraces()
	assert.Error(err)
	assert.Equal(InvalidInput, KindOf(err))
}
