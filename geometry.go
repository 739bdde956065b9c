package pentrace

import (
	"math"
)

// textureToUV converts an integer texture-pixel coordinate to UV space:
// uv = (x/W, 1 - y/H). Texture space has its origin top-left; UV space has
// its origin bottom-left (spec §3).
func textureToUV(p Point2, w, h int) Point2 {
	return Point2{
		X: p.X / float64(w),
		Y: 1 - p.Y/float64(h),
	}
}

// uvToTexture is the inverse of textureToUV, used by the debug overlay and
// by round-trip tests (spec §8).
func uvToTexture(p Point2, w, h int) Point2 {
	return Point2{
		X: p.X * float64(w),
		Y: (1 - p.Y) * float64(h),
	}
}

// polygonBounds returns the axis-aligned bounding box of a polygon.
func polygonBounds(poly []Point2) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range poly {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	return
}

// ResamplePolyline redistributes n points evenly along the cumulative arc
// length of xy. When closed is true, xy is treated as a closed polygon (the
// first point is implicitly repeated at the end, and the duplicate is
// dropped from the result). Ported from
// original_source/tracing/tracer.py's resample_polygon, which the original
// defines but never calls from compute_traces; this repo wires it in behind
// Config.ResamplePoints (see SPEC_FULL.md §3/§7).
//
// xy must have at least 2 points.
func ResamplePolyline(xy []Point2, n int, closed bool) []Point2 {
	pts := xy
	if closed {
		pts = make([]Point2, len(xy)+1)
		copy(pts, xy)
		pts[len(xy)] = xy[0]
	}

	// Cumulative Euclidean distance between successive points; this is the
	// parametrization we resample along.
	d := make([]float64, len(pts))
	for i := 1; i < len(pts); i++ {
		dx := pts[i].X - pts[i-1].X
		dy := pts[i].Y - pts[i-1].Y
		d[i] = d[i-1] + math.Hypot(dx, dy)
	}
	total := d[len(d)-1]

	outN := n
	if closed {
		outN = n + 1
	}
	out := make([]Point2, outN)
	if total == 0 {
		for i := range out {
			out[i] = pts[0]
		}
	} else {
		for i := 0; i < outN; i++ {
			target := total * float64(i) / float64(outN-1)
			out[i] = interpolateAlong(pts, d, target)
		}
	}

	if closed {
		out = out[:len(out)-1]
	}
	return out
}

// interpolateAlong finds the point along the polyline pts (with cumulative
// distances d) at arc-length target, linearly interpolating between the
// bracketing vertices.
func interpolateAlong(pts []Point2, d []float64, target float64) Point2 {
	i := 0
	for i < len(d)-1 && d[i+1] < target {
		i++
	}
	if i >= len(pts)-1 {
		return pts[len(pts)-1]
	}
	span := d[i+1] - d[i]
	if span == 0 {
		return pts[i]
	}
	t := (target - d[i]) / span
	return Point2{
		X: pts[i].X + t*(pts[i+1].X-pts[i].X),
		Y: pts[i].Y + t*(pts[i+1].Y-pts[i].Y),
	}
}

// resamplePathSegments resamples path to n evenly spaced points and
// re-expresses it as consecutive Segments: a closed ring for a border trace,
// an open chain for a fill-hatch trace, mirroring the distinction
// original_source/tracing/tracer.py draws between resample_border and
// resample_fill_segment.
func resamplePathSegments(path []Point2, n int, closed bool, color int) []Segment {
	pts := ResamplePolyline(path, n, closed)
	count := len(pts) - 1
	if closed {
		count = len(pts)
	}
	segs := make([]Segment, count)
	for i := range segs {
		segs[i] = Segment{P1: pts[i], P2: pts[(i+1)%len(pts)], Color: color}
	}
	return segs
}

// segmentsToPath flattens a chain or ring of consecutive Segments back into
// its vertex path: segs[i].P2 always equals segs[i+1].P1, so only the first
// point of each Segment is kept, plus the final closing point for an open
// chain.
func segmentsToPath(segs []Segment, closed bool) []Point2 {
	if len(segs) == 0 {
		return nil
	}
	path := make([]Point2, 0, len(segs)+1)
	for _, s := range segs {
		path = append(path, s.P1)
	}
	if !closed {
		path = append(path, segs[len(segs)-1].P2)
	}
	return path
}
