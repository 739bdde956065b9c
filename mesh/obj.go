package mesh

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Load reads a triangular mesh with per-vertex UVs from a Wavefront OBJ
// file at path. Per spec §9's explicit fallback guidance ("If no mature
// mesh library exists, implement: OBJ parser for v, vt, f v/vt/vn
// records"), this is a minimal hand-rolled parser: it reads v/vt/f records,
// triangulates polygonal faces by fanning from the first vertex, and
// ignores everything else (vn, g, o, s, mtllib/usemtl, comments).
//
// Relative (negative) OBJ indices are not supported, matching the scope of
// the spec's own "implement" directive rather than a general-purpose OBJ
// importer.
func Load(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open mesh file %q", path)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse mesh file %q", path)
	}
	return m, nil
}

// faceVert identifies one polygon corner by its OBJ position and UV index
// (0-based, after conversion from OBJ's 1-based convention).
type faceVert struct {
	pos int
	uv  int // -1 if this corner had no vt reference
}

// Parse reads an OBJ document from r and builds a Mesh, per-vertex-UV-
// deduplicated and triangulated, with computed face normals.
func Parse(r io.Reader) (*Mesh, error) {
	var positions [][3]float64
	var uvs [][2]float64
	var faces [][]faceVert
	anyMissingUV := false

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			p, err := parseFloat3(fields[1:])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: bad vertex", lineNo)
			}
			positions = append(positions, p)
		case "vt":
			uv, err := parseFloat2(fields[1:])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: bad texcoord", lineNo)
			}
			uvs = append(uvs, uv)
		case "f":
			fv, missing, err := parseFace(fields[1:], len(positions), len(uvs))
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: bad face", lineNo)
			}
			if missing {
				anyMissingUV = true
			}
			faces = append(faces, fv)
		default:
			// vn, g, o, s, mtllib, usemtl, and anything else: ignored.
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "scanning OBJ file")
	}
	if len(positions) == 0 {
		return nil, errors.New("OBJ file has no vertices")
	}

	hasUV := !anyMissingUV && len(uvs) > 0
	return buildMesh(positions, uvs, faces, hasUV), nil
}

func parseFloat3(fields []string) ([3]float64, error) {
	var out [3]float64
	if len(fields) < 3 {
		return out, errors.New("expected 3 components")
	}
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return out, err
		}
		out[i] = v
	}
	return out, nil
}

func parseFloat2(fields []string) ([2]float64, error) {
	var out [2]float64
	if len(fields) < 2 {
		return out, errors.New("expected 2 components")
	}
	for i := 0; i < 2; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return out, err
		}
		out[i] = v
	}
	return out, nil
}

// parseFace parses the corner list of an `f` record ("v/vt/vn" or "v/vt" or
// "v" tokens), converting OBJ's 1-based indices to 0-based. missing is true
// if any corner lacks a vt reference.
func parseFace(tokens []string, numPos, numUV int) (fv []faceVert, missing bool, err error) {
	if len(tokens) < 3 {
		return nil, false, errors.New("face has fewer than 3 vertices")
	}
	fv = make([]faceVert, len(tokens))
	for i, tok := range tokens {
		parts := strings.Split(tok, "/")
		posIdx, perr := strconv.Atoi(parts[0])
		if perr != nil {
			return nil, false, errors.Wrapf(perr, "bad vertex index %q", tok)
		}
		posIdx = objIndex(posIdx, numPos)
		if posIdx < 0 || posIdx >= numPos {
			return nil, false, errors.Errorf("vertex index %d out of range", posIdx)
		}

		uvIdx := -1
		if len(parts) >= 2 && parts[1] != "" {
			uvIdx, perr = strconv.Atoi(parts[1])
			if perr != nil {
				return nil, false, errors.Wrapf(perr, "bad uv index %q", tok)
			}
			uvIdx = objIndex(uvIdx, numUV)
			if uvIdx < 0 || uvIdx >= numUV {
				return nil, false, errors.Errorf("uv index %d out of range", uvIdx)
			}
		} else {
			missing = true
		}
		fv[i] = faceVert{pos: posIdx, uv: uvIdx}
	}
	return fv, missing, nil
}

// objIndex converts a 1-based OBJ index to 0-based. Negative (relative)
// indices are deliberately not supported (see Load's doc comment).
func objIndex(i, count int) int {
	if i <= 0 {
		return -1
	}
	return i - 1
}

// buildMesh deduplicates (position, uv) corner pairs into unique output
// vertices, fan-triangulates each polygon face, and computes face normals.
func buildMesh(positions [][3]float64, uvs [][2]float64, faces [][]faceVert, hasUV bool) *Mesh {
	type key struct{ pos, uv int }
	index := make(map[key]int)

	var outVerts [][3]float64
	var outUV [][2]float64

	vertexFor := func(v faceVert) int {
		uv := v.uv
		if !hasUV {
			uv = -1
		}
		k := key{v.pos, uv}
		if idx, ok := index[k]; ok {
			return idx
		}
		idx := len(outVerts)
		index[k] = idx
		outVerts = append(outVerts, positions[v.pos])
		if hasUV {
			outUV = append(outUV, uvs[uv])
		}
		return idx
	}

	var outFaces []int
	for _, poly := range faces {
		for i := 1; i+1 < len(poly); i++ {
			a := vertexFor(poly[0])
			b := vertexFor(poly[i])
			c := vertexFor(poly[i+1])
			outFaces = append(outFaces, a, b, c)
		}
	}

	m := &Mesh{
		Vertices: flatten3(outVerts),
		Faces:    outFaces,
		HasUV:    hasUV,
	}
	if hasUV {
		m.UV = flatten2(outUV)
	}
	m.computeFaceNormals()
	return m
}

func flatten3(pts [][3]float64) []float64 {
	out := make([]float64, len(pts)*3)
	for i, p := range pts {
		out[3*i], out[3*i+1], out[3*i+2] = p[0], p[1], p[2]
	}
	return out
}

func flatten2(pts [][2]float64) []float64 {
	out := make([]float64, len(pts)*2)
	for i, p := range pts {
		out[2*i], out[2*i+1] = p[0], p[1]
	}
	return out
}
