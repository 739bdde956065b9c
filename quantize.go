package pentrace

import "image"

// Quantize maps each texel of tex to the nearest palette color, breaking
// ties by lowest palette index, producing a W×H image of palette indices
// (spec §4.1). No dithering; alpha is ignored.
//
// This is implemented by direct scan rather than image/color.Palette.Index
// because the tie-break rule must be exactly "lowest index wins", which the
// stdlib nearest-match does not document or guarantee — see DESIGN.md.
func Quantize(tex *image.NRGBA, pal Palette) (*IndexedImage, error) {
	if len(pal) == 0 {
		return nil, newErrf(InvalidInput, "quantize", "palette is empty")
	}
	b := tex.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, newErrf(InvalidInput, "quantize", "texture has zero size (%dx%d)", w, h)
	}

	out := &IndexedImage{W: w, H: h, Pixels: make([]uint8, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// NRGBAAt returns the stored, non-premultiplied channels, so
			// the alpha channel has no effect on the RGB match.
			c := tex.NRGBAAt(b.Min.X+x, b.Min.Y+y)
			px := Color{c.R, c.G, c.B}
			out.Pixels[y*w+x] = uint8(nearestPaletteIndex(px, pal))
		}
	}
	return out, nil
}

// nearestPaletteIndex returns the index of the palette entry with the
// smallest squared Euclidean RGB distance to px, breaking ties by the
// lowest index (spec §4.1).
func nearestPaletteIndex(px Color, pal Palette) int {
	best := 0
	bestDist := -1
	for i, c := range pal {
		dist := sqDist(px, c)
		if bestDist == -1 || dist < bestDist {
			bestDist = dist
			best = i
		}
	}
	return best
}

func sqDist(a, b Color) int {
	dr := int(a[0]) - int(b[0])
	dg := int(a[1]) - int(b[1])
	db := int(a[2]) - int(b[2])
	return dr*dr + dg*dg + db*db
}
