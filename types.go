package pentrace

// Color is a reference color in the palette, three unsigned 8-bit channels.
type Color [3]uint8

// Palette is an ordered, stable list of reference colors. Index into Palette
// is the "color index" used by every downstream entity.
type Palette []Color

// Point2 is a 2D point, used both in texture-pixel space and UV space
// depending on context.
type Point2 struct {
	X, Y float64
}

// Point3 is a 3D point or vector.
type Point3 struct {
	X, Y, Z float64
}

// IndexedImage is a W×H image whose pixels are palette indices.
type IndexedImage struct {
	W, H   int
	Pixels []uint8 // row-major, len == W*H
}

// Layer is a binary mask (0 or 255 per texel) tagged with the palette color
// index it was split from.
type Layer struct {
	W, H   int
	Pixels []uint8 // row-major, len == W*H
	Color  int
}

// Island is one connected color region's outline: a simple closed polygon
// in UV space with no repeated closing vertex.
type Island struct {
	Idx    int
	Color  int
	Border []Point2
}

// Trace2D is a polyline to draw on the texture, in UV space.
type Trace2D struct {
	Color int
	Path  []Point2
}

// Trace3D is a polyline to draw on the mesh. All points in Path lie on one
// planar face (or on faces whose normals are parallel within
// Config.ParallelNormalEpsilon); Face is that face's normal.
type Trace3D struct {
	Color int
	Face  Point3
	Path  []Point3
}

// Point3D is the result of projecting a single UV vertex onto the mesh: its
// 3D position and the index of the face it was found in.
type Point3D struct {
	Pos     Point3
	FaceIdx int
}

// Segment is a single drawable 2D sub-span tagged with its source island's
// color: the shared currency between fillhatch.go's sweep-line clipping
// (each fill-hatch span is one Segment) and geometry.go's resampling helper
// (a resampled path is re-expressed as a ring or chain of Segments).
type Segment struct {
	P1, P2 Point2
	Color  int
}
