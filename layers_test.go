package pentrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitColors_PartitionsPixelsExactlyOnce(t *testing.T) {
	assert := assert.New(t)

	pal := Palette{{0, 0, 0}, {255, 255, 255}}
	idx := &IndexedImage{W: 2, H: 2, Pixels: []uint8{0, 1, 1, 0}}

	layers, err := SplitColors(idx, pal)
	assert.NoError(err)
	assert.Len(layers, 2)

	for i := range idx.Pixels {
		hits := 0
		for _, l := range layers {
			if l.Pixels[i] == 255 {
				hits++
				assert.Equal(int(idx.Pixels[i]), l.Color)
			}
		}
		assert.Equal(1, hits, "pixel %d must belong to exactly one layer", i)
	}
}

func TestSplitColors_EmptyPaletteIsInvalidInput(t *testing.T) {
	assert := assert.New(t)

	idx := &IndexedImage{W: 1, H: 1, Pixels: []uint8{0}}
	_, err := SplitColors(idx, nil)
	assert.Error(err)
	assert.Equal(InvalidInput, KindOf(err))
}
