package pentrace

// DetectIslands finds external contours in layer and converts them to
// closed UV polygons (spec §4.3). Contours with fewer than 3 vertices are
// dropped as degenerate.
func DetectIslands(layer *Layer) []Island {
	contours := detectExternalContours(layer)

	islands := make([]Island, 0, len(contours))
	idx := 0
	for _, contour := range contours {
		if len(contour) < 3 {
			continue
		}
		border := make([]Point2, len(contour))
		for i, p := range contour {
			border[i] = textureToUV(Point2{X: float64(p.X), Y: float64(p.Y)}, layer.W, layer.H)
		}
		islands = append(islands, Island{Idx: idx, Color: layer.Color, Border: border})
		idx++
	}
	return islands
}
