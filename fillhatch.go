package pentrace

import (
	"sort"

	"github.com/duckify/pentrace/utils"
)

// intersectionKind tags the result of clipping one horizontal sweep line
// against an island polygon. Modeled on spec §9's re-architecture note for
// the Python original's heterogeneous LineString/MultiLineString return
// value: a tagged variant rather than a dynamically typed list.
type intersectionKind int

const (
	intersectionEmpty intersectionKind = iota
	intersectionSegment
	intersectionSegments
)

// intersection is the result of clipping a horizontal line against a
// polygon: zero, one, or several disjoint Segments at the same height.
type intersection struct {
	kind     intersectionKind
	segments []Segment
}

// EmitTraces emits, in order, the island's border trace followed by zero or
// more fill-hatch traces from a horizontal-line sweep (spec §4.4).
func EmitTraces(island Island, cfg Config) []Trace2D {
	traces := make([]Trace2D, 0, 1)
	traces = append(traces, Trace2D{Color: island.Color, Path: island.Border})
	traces = append(traces, computeFillSlices(island, cfg)...)
	return traces
}

// computeFillSlices generates the fill-hatch traces for one island (spec §4.4).
func computeFillSlices(island Island, cfg Config) []Trace2D {
	if cfg.FillSliceSpacing <= 0 {
		return nil
	}
	minX, minY, maxX, maxY := polygonBounds(island.Border)

	var traces []Trace2D
	for v := minY + cfg.FillSliceSpacing; v < maxY; v += cfg.FillSliceSpacing {
		xs := sweepCrossings(island.Border, v, cfg.BarycentricEpsilon)
		inter := pairCrossings(xs, minX, maxX, v, island.Color)
		for _, seg := range inter.segments {
			if seg.P2.X <= seg.P1.X {
				continue
			}
			traces = append(traces, Trace2D{Color: seg.Color, Path: []Point2{seg.P1, seg.P2}})
		}
	}
	return traces
}

// sweepCrossings returns the sorted list of u-coordinates where the polygon
// border crosses the horizontal line y=v, applying spec §4.4's robustness
// rules: horizontal edges lying on v contribute both endpoint u's directly;
// a vertex within eps of v is snapped to exactly v before the standard
// even-odd half-open-interval crossing test is applied.
func sweepCrossings(border []Point2, v, eps float64) []float64 {
	n := len(border)
	var xs []float64
	for i := 0; i < n; i++ {
		p1 := border[i]
		p2 := border[(i+1)%n]

		y1, y2 := snapToV(p1.Y, v, eps), snapToV(p2.Y, v, eps)

		if y1 == v && y2 == v {
			// Horizontal edge lying exactly on the sweep line: contribute
			// both endpoint u's (spec §4.4).
			xs = append(xs, p1.X, p2.X)
			continue
		}

		// Standard even-odd half-open-interval crossing test: an edge
		// counts when one endpoint is at or below v and the other is
		// strictly above it. A vertex exactly at v therefore counts once
		// when its two neighbors lie on opposite sides of v, and twice
		// (both above) or not at all (both below) when they lie on the
		// same side, which keeps the crossing count even.
		if (y1 <= v && y2 > v) || (y2 <= v && y1 > v) {
			t := (v - y1) / (y2 - y1)
			x := p1.X + t*(p2.X-p1.X)
			xs = append(xs, x)
		}
	}
	sort.Float64s(xs)
	return xs
}

func snapToV(y, v, eps float64) float64 {
	if utils.Abs(y-v) < eps {
		return v
	}
	return y
}

// pairCrossings pairs consecutive sorted crossings as enter/exit spans,
// clamped to [minX, maxX] since spec §4.4's sweep segment itself spans
// exactly the polygon bounding box. v and color fill out the resulting
// Segments so computeFillSlices can hand them straight to a Trace2D.
func pairCrossings(xs []float64, minX, maxX, v float64, color int) intersection {
	if len(xs) < 2 {
		return intersection{kind: intersectionEmpty}
	}
	var segs []Segment
	for i := 0; i+1 < len(xs); i += 2 {
		a, b := utils.Max(xs[i], minX), utils.Min(xs[i+1], maxX)
		segs = append(segs, Segment{P1: Point2{X: a, Y: v}, P2: Point2{X: b, Y: v}, Color: color})
	}
	if len(segs) == 0 {
		return intersection{kind: intersectionEmpty}
	}
	kind := intersectionSegment
	if len(segs) > 1 {
		kind = intersectionSegments
	}
	return intersection{kind: kind, segments: segs}
}
