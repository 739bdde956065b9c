package pentrace

import (
	"fmt"
	"image"
	"io/fs"
	"time"

	"github.com/pkg/errors"

	"github.com/duckify/pentrace/debugview"
	"github.com/duckify/pentrace/mesh"
	"github.com/duckify/pentrace/utils"
)

// Tracer orchestrates the full pipeline described in spec §2: texture and
// mesh loading, quantization, per-color layer splitting, island detection,
// border/fill trace emission, UV-to-3D projection, and JSON export.
// It mirrors the teacher's Processor (processor.go): a single struct built
// once from CLI-level inputs, driven by one top-level method.
type Tracer struct {
	TexturePath string
	ModelPath   string
	OutputPath  string
	Palette     Palette
	Config      Config

	// Viewer receives intermediate artifacts for optional visual inspection
	// (spec §7's supplemented debug overlay). It defaults to a no-op and is
	// only backed by a real window when Config.Debug is true.
	Viewer debugview.Viewer

	// Traces holds the projected 3D trace set after a successful
	// ComputeTraces call.
	Traces []Trace3D
}

// New builds a Tracer for the given inputs. outputPath may be empty if the
// caller intends to inspect Traces directly rather than export them.
func New(texturePath, modelPath, outputPath string, palette Palette, cfg Config) *Tracer {
	var viewer debugview.Viewer = debugview.NopViewer{}
	if cfg.Debug {
		viewer = debugview.NewGioViewer()
	}
	return &Tracer{
		TexturePath: texturePath,
		ModelPath:   modelPath,
		OutputPath:  outputPath,
		Palette:     palette,
		Config:      cfg,
		Viewer:      viewer,
	}
}

// ComputeTraces runs the full pipeline end to end and, if t.OutputPath is
// non-empty, exports the result as JSON (spec §6). Stage lines are printed
// to stdout with utils.DecorateText, and a utils.Spinner on stderr covers
// island detection, trace emission and projection (the teacher's idiom; see
// processor.go's use of the same package in the teacher).
func (t *Tracer) ComputeTraces() error {
	if len(t.Palette) == 0 || len(t.Palette) > 256 {
		return newErrf(InvalidInput, "compute-traces",
			"palette has %d colors, expected between 1 and 256", len(t.Palette))
	}

	fmt.Println(utils.DecorateText("⇢ loading texture...", utils.StatusMessage))
	tex, err := LoadTexture(t.TexturePath)
	if err != nil {
		return err
	}
	t.Viewer.ShowTexture(tex)

	fmt.Println(utils.DecorateText("⇢ loading mesh...", utils.StatusMessage))
	m, err := mesh.Load(t.ModelPath)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return newErr(IoError, "load-mesh", err)
		}
		return newErr(InvalidInput, "load-mesh", err)
	}
	if !m.HasUV {
		return newErrf(InvalidInput, "load-mesh",
			"mesh %q has no per-vertex UV coordinates", t.ModelPath)
	}

	fmt.Println(utils.DecorateText("⇢ quantizing texture...", utils.StatusMessage))
	idx, err := Quantize(tex, t.Palette)
	if err != nil {
		return err
	}

	layers, err := SplitColors(idx, t.Palette)
	if err != nil {
		return err
	}

	spinner := utils.NewSpinner(utils.DecorateText("⇢ detecting islands and emitting traces... ", utils.StatusMessage), 80*time.Millisecond, true)
	spinner.Start()

	var islands []Island
	for _, layer := range layers {
		t.Viewer.ShowMask(layer.Color, layerMask(layer))
		islands = append(islands, DetectIslands(layer)...)
	}

	var traces2D []Trace2D
	for _, isl := range islands {
		tr := EmitTraces(isl, t.Config)
		if t.Config.ResamplePoints > 0 {
			tr = resampleTraces(tr, t.Config.ResamplePoints)
		}
		traces2D = append(traces2D, tr...)
	}

	var traces3D []Trace3D
	rejected := 0
	for _, tr := range traces2D {
		t3, err := Project(tr, m, t.Config)
		if err != nil {
			spinner.Stop()
			return err
		}
		if t3 == nil {
			rejected++
			continue
		}
		traces3D = append(traces3D, *t3)
	}

	spinner.StopMsg = fmt.Sprintf("%s\n", utils.DecorateText("✓", utils.SuccessMessage))
	spinner.Stop()

	fmt.Println(utils.DecorateText(
		fmt.Sprintf("  %d islands, %d traces emitted, %d rejected by projection",
			len(islands), len(traces3D), rejected), utils.DefaultMessage))

	texBounds := tex.Bounds()
	t.Viewer.ShowScene(toSceneTraces(traces2D, texBounds.Dx(), texBounds.Dy()))
	t.Traces = traces3D

	if t.OutputPath != "" {
		fmt.Println(utils.DecorateText("⇢ writing output...", utils.StatusMessage))
		if err := ExportTraces(traces3D, t.ModelPath, t.TexturePath, t.OutputPath, time.Now()); err != nil {
			return err
		}
	}
	return nil
}

// resampleTraces applies resamplePathSegments to every 2D trace path emitted
// by EmitTraces, then flattens the result back to a path. A border trace
// (more than two points) is resampled as a closed ring; a fill-hatch segment
// (always exactly two points) is resampled as an open chain, matching the
// distinction original_source/tracing/tracer.py draws between
// resample_border and resample_fill_segment.
func resampleTraces(traces []Trace2D, n int) []Trace2D {
	out := make([]Trace2D, len(traces))
	for i, tr := range traces {
		closed := len(tr.Path) != 2
		segs := resamplePathSegments(tr.Path, n, closed, tr.Color)
		out[i] = Trace2D{Color: tr.Color, Path: segmentsToPath(segs, closed)}
	}
	return out
}

// layerMask renders a binary Layer as an image.Alpha mask for the debug
// viewer: opaque where the layer's color is present, transparent elsewhere.
func layerMask(layer *Layer) image.Image {
	img := image.NewAlpha(image.Rect(0, 0, layer.W, layer.H))
	for i, on := range layer.Pixels {
		if on != 0 {
			img.Pix[i] = 0xff
		}
	}
	return img
}

// toSceneTraces converts the pipeline's internal Trace2D slice (UV space)
// to the debugview package's decoupled SceneTrace type (texture-pixel
// space), so the debug viewer can draw it directly over the source texture.
func toSceneTraces(traces []Trace2D, texW, texH int) []debugview.SceneTrace {
	out := make([]debugview.SceneTrace, len(traces))
	for i, tr := range traces {
		path := make([]debugview.Point2, len(tr.Path))
		for j, p := range tr.Path {
			px := uvToTexture(p, texW, texH)
			path[j] = debugview.Point2{X: px.X, Y: px.Y}
		}
		out[i] = debugview.SceneTrace{Color: tr.Color, Path: path}
	}
	return out
}
