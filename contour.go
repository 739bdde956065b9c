package pentrace

// pixel is an integer texture-pixel coordinate used internally by contour
// tracing, kept separate from Point2 (which is always a float coordinate in
// either texture or UV space) to make the integer/float boundary explicit.
type pixel struct{ X, Y int }

// dirsCW lists the 8-connected neighbor offsets in clockwise order starting
// at West, matching screen coordinates (origin top-left, y increases
// downward): W, NW, N, NE, E, SE, S, SW.
var dirsCW = [8]pixel{
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
}

func neighborIndex(center, p pixel) int {
	dx, dy := p.X-center.X, p.Y-center.Y
	for i, d := range dirsCW {
		if d.X == dx && d.Y == dy {
			return i
		}
	}
	return 0
}

// mooreTrace walks the 8-connected outer boundary of the foreground region
// containing start, using the Moore-neighbor tracing algorithm with Jacob's
// stopping criterion. backtrack must be a background pixel adjacent to
// start (conventionally its west neighbor, per the raster-scan start
// condition in detectExternalContours). The returned path does not repeat
// start at the end (spec §4.3: "no repeated closing vertex").
func mooreTrace(isFG func(x, y int) bool, start, backtrack pixel) []pixel {
	boundary := []pixel{start}
	b, c := start, backtrack

	for step := 0; ; step++ {
		idx := neighborIndex(b, c)
		foundAt := -1
		var newB, newC pixel
		for k := 1; k <= 8; k++ {
			ni := (idx + k) % 8
			np := pixel{b.X + dirsCW[ni].X, b.Y + dirsCW[ni].Y}
			if isFG(np.X, np.Y) {
				newB = np
				pi := (idx + k - 1) % 8
				newC = pixel{b.X + dirsCW[pi].X, b.Y + dirsCW[pi].Y}
				foundAt = ni
				break
			}
		}
		if foundAt == -1 {
			// isolated pixel: no foreground neighbor at all.
			break
		}
		if newB == start && newC == backtrack {
			// Jacob's stopping criterion: the trace state (current pixel,
			// entry backtrack) has repeated the initial state, so the
			// boundary has closed.
			break
		}
		boundary = append(boundary, newB)
		b, c = newB, newC

		if step > maxStepsBound(len(boundary)) {
			break
		}
	}
	return boundary
}

// maxStepsBound is a defensive cutoff guarding against a malformed mask
// producing a non-terminating trace; legitimate boundaries never approach
// this, since a simple boundary visits each pixel O(1) times.
func maxStepsBound(n int) int {
	return n*8 + 64
}

// detectExternalContours returns every external (outer) 8-connected
// boundary in layer, as integer texture-pixel paths, ignoring holes (spec
// §4.3). Internal hole boundaries are suppressed by flood-filling and
// marking an entire connected component visited once its outer contour has
// been traced, so a hole's inward-facing edge pixels (which also satisfy
// the naive "west neighbor is background" start test) are never revisited.
func detectExternalContours(layer *Layer) [][]pixel {
	w, h := layer.W, layer.H
	visited := make([]bool, w*h)
	isFG := func(x, y int) bool {
		if x < 0 || y < 0 || x >= w || y >= h {
			return false
		}
		return layer.Pixels[y*w+x] == 255
	}

	var contours [][]pixel
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if !isFG(x, y) || visited[idx] {
				continue
			}
			if isFG(x-1, y) {
				// Not a left edge of a run; the component this pixel
				// belongs to must already have been traced and marked
				// (its true leftmost/topmost pixel precedes this one in
				// raster order), so this should be unreachable in
				// practice. Skip defensively rather than emit a
				// duplicate or hole contour.
				continue
			}
			start := pixel{x, y}
			backtrack := pixel{x - 1, y}
			boundary := mooreTrace(isFG, start, backtrack)
			contours = append(contours, boundary)
			floodFillVisit(isFG, visited, w, h, start)
		}
	}
	return contours
}

// floodFillVisit marks every pixel of the 8-connected foreground component
// containing start as visited, using an explicit stack to avoid recursion
// depth issues on large components.
func floodFillVisit(isFG func(x, y int) bool, visited []bool, w, h int, start pixel) {
	stack := []pixel{start}
	visited[start.Y*w+start.X] = true
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range dirsCW {
			nx, ny := p.X+d.X, p.Y+d.Y
			if nx < 0 || ny < 0 || nx >= w || ny >= h {
				continue
			}
			ni := ny*w + nx
			if visited[ni] || !isFG(nx, ny) {
				continue
			}
			visited[ni] = true
			stack = append(stack, pixel{nx, ny})
		}
	}
}
