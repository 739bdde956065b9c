package pentrace

import (
	"math"

	"github.com/duckify/pentrace/mesh"
)

// Project locates, for every vertex of trace, the UV triangle of m that
// contains it and interpolates the corresponding 3D position by barycentric
// weights (spec §4.5). It returns (nil, nil) — not an error — if any vertex
// lies outside every UV triangle, or if the matched triangles do not share
// a common face normal within cfg.ParallelNormalEpsilon: per spec §7, a
// failed projection is reported by absence, not by an error value.
func Project(trace Trace2D, m *mesh.Mesh, cfg Config) (*Trace3D, error) {
	if !m.HasUV {
		return nil, newErrf(Fatal, "project", "mesh has no per-vertex UV coordinates")
	}

	pts := make([]Point3, len(trace.Path))
	faceIdx := -1
	var normal Point3

	for i, p := range trace.Path {
		hit, ok := interpolatePosition(p, m, cfg.BarycentricEpsilon)
		if !ok {
			return nil, nil
		}
		if i == 0 {
			faceIdx = hit.FaceIdx
			normal = faceNormal(m, faceIdx)
		} else if faceIdx != hit.FaceIdx {
			n2 := faceNormal(m, hit.FaceIdx)
			if normalDistance(normal, n2) > cfg.ParallelNormalEpsilon {
				return nil, nil
			}
		}
		pts[i] = hit.Pos
	}

	return &Trace3D{Color: trace.Color, Face: normal, Path: pts}, nil
}

// interpolatePosition finds the lowest-indexed UV triangle of m containing
// uv and returns the barycentric-interpolated 3D position (spec §4.5).
func interpolatePosition(uv Point2, m *mesh.Mesh, eps float64) (Point3D, bool) {
	nf := m.NumFaces()
	for f := 0; f < nf; f++ {
		i0, i1, i2 := m.Face(f)
		u0, v0 := m.VertexUV(i0)
		u1, v1 := m.VertexUV(i1)
		u2, v2 := m.VertexUV(i2)

		denom := (v1-v2)*(u0-u2) + (u2-u1)*(v0-v2)
		if denom == 0 {
			continue // degenerate UV triangle, cannot contain any point
		}

		w0 := ((v1-v2)*(uv.X-u2) + (u2-u1)*(uv.Y-v2)) / denom
		w1 := ((v2-v0)*(uv.X-u2) + (u0-u2)*(uv.Y-v2)) / denom
		w2 := 1.0 - w0 - w1

		if w0 >= -eps && w1 >= -eps && w2 >= -eps {
			x0, y0, z0 := m.Vertex(i0)
			x1, y1, z1 := m.Vertex(i1)
			x2, y2, z2 := m.Vertex(i2)
			pos := Point3{
				X: w0*x0 + w1*x1 + w2*x2,
				Y: w0*y0 + w1*y1 + w2*y2,
				Z: w0*z0 + w1*z1 + w2*z2,
			}
			return Point3D{Pos: pos, FaceIdx: f}, true
		}
	}
	return Point3D{}, false
}

func faceNormal(m *mesh.Mesh, f int) Point3 {
	x, y, z := m.Normal(f)
	return Point3{X: x, Y: y, Z: z}
}

func normalDistance(a, b Point3) float64 {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
