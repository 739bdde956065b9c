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

func TestLoadTexture_DecodesPNG(t *testing.T) {
	assert := assert.New(t)

	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{1, 2, 3, 255})
	path := filepath.Join(t.TempDir(), "tex.png")
	f, err := os.Create(path)
	assert.NoError(err)
	assert.NoError(png.Encode(f, img))
	assert.NoError(f.Close())

	got, err := LoadTexture(path)
	assert.NoError(err)
	r, g, b, _ := got.At(0, 0).RGBA()
	assert.Equal(uint32(1), r>>8)
	assert.Equal(uint32(2), g>>8)
	assert.Equal(uint32(3), b>>8)
}

func TestLoadTexture_RejectsUnsupportedFormat(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "not-an-image.txt")
	assert.NoError(os.WriteFile(path, []byte("hello"), 0o644))

	_, err := LoadTexture(path)
	assert.Error(err)
	assert.Equal(InvalidInput, KindOf(err))
}

func TestLoadTexture_MissingFileIsIoError(t *testing.T) {
	assert := assert.New(t)

	_, err := LoadTexture(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(err)
	assert.Equal(IoError, KindOf(err))
}
