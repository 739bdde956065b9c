package pentrace

// Config holds the numerical tolerances and feature toggles shared across
// pipeline stages. Field names and defaults mirror
// original_source/tracing/config.py's TracerConfig dataclass.
type Config struct {
	// Debug enables debug visualizations via the debugview package. It never
	// changes pipeline output (spec §7).
	Debug bool

	// BarycentricEpsilon accounts for floating-point error in the
	// "inside triangle" barycentric test (spec §4.5) and in the fill-sweep
	// even-odd vertex test (spec §4.4).
	BarycentricEpsilon float64

	// ParallelNormalEpsilon accounts for floating-point error when comparing
	// two triangles' face normals for face-coherence (spec §4.5).
	ParallelNormalEpsilon float64

	// FillSliceSpacing is the gap, in UV units, between horizontal fill-hatch
	// sweep lines (spec §4.4).
	FillSliceSpacing float64

	// ResamplePoints, when > 0, resamples every emitted 2D path to this many
	// evenly spaced points (by cumulative arc length) before 3D projection.
	// 0 disables resampling, which is the default and matches spec.md's
	// described behavior exactly. See ResamplePolyline (geometry.go) and
	// SPEC_FULL.md §3/§7.
	ResamplePoints int
}

// NewConfig returns a Config populated with the defaults from spec §6.
func NewConfig() Config {
	return Config{
		Debug:                 false,
		BarycentricEpsilon:    1e-8,
		ParallelNormalEpsilon: 1e-6,
		FillSliceSpacing:      0.005,
		ResamplePoints:        0,
	}
}
