package pentrace

// SplitColors returns exactly one binary layer per palette entry, in
// palette index order. Layer c has pixel=255 where idx==c, else 0
// (spec §4.2). The union of the returned layers covers every pixel exactly
// once, since idx.Pixels are already palette indices produced by Quantize.
func SplitColors(idx *IndexedImage, pal Palette) ([]*Layer, error) {
	if len(pal) == 0 {
		return nil, newErrf(InvalidInput, "split", "palette is empty")
	}

	layers := make([]*Layer, len(pal))
	for c := range pal {
		layers[c] = &Layer{W: idx.W, H: idx.H, Color: c, Pixels: make([]uint8, idx.W*idx.H)}
	}
	for i, v := range idx.Pixels {
		layers[v].Pixels[i] = 255
	}
	return layers, nil
}
