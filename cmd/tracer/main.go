package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"gioui.org/app"
	"github.com/duckify/pentrace"
	"github.com/duckify/pentrace/utils"
)

const helpBanner = `
┌─┐┌─┐┌┐┌┌┬┐┬─┐┌─┐┌─┐┌─┐
├─┘├┤ │││ │ ├┬┘├─┤│  ├┤
┴  └─┘┘└┘ ┴ ┴└─┴ ┴└─┘└─┘

Pen-stroke trace generator for textured, UV-mapped meshes.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	texturePath  = flag.String("texture", "", "Source texture (PNG, JPEG or BMP)")
	modelPath    = flag.String("model", "", "Textured mesh (Wavefront OBJ with per-vertex UVs)")
	palettePath  = flag.String("palette", "", "Palette file: JSON array of [r,g,b] triplets")
	outputPath   = flag.String("out", "", "Output path for the generated trace JSON document")
	debug        = flag.Bool("debug", false, "Show the debug preview window")
	baryEps      = flag.Float64("barycentric-epsilon", 0, "Barycentric containment tolerance (0 = use default)")
	normalEps    = flag.Float64("parallel-normal-epsilon", 0, "Face-normal coherence tolerance (0 = use default)")
	fillSpacing  = flag.Float64("fill-spacing", 0, "Fill-hatch sweep-line spacing in UV units (0 = use default)")
	resamplePts  = flag.Int("resample-points", 0, "Resample every trace to N evenly spaced points (0 = disabled)")
)

func main() {
	log.SetFlags(0)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *texturePath == "" || *modelPath == "" || *palettePath == "" || *outputPath == "" {
		flag.Usage()
		log.Fatal(utils.DecorateText("\nPlease provide -texture, -model, -palette and -out.", utils.ErrorMessage))
	}

	palette, err := loadPalette(*palettePath)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			fatalCode(2, "Failed to read the palette: %v", err)
		}
		fatal("Failed to load the palette: %v", err)
	}

	cfg := pentrace.NewConfig()
	cfg.Debug = *debug
	if *baryEps > 0 {
		cfg.BarycentricEpsilon = *baryEps
	}
	if *normalEps > 0 {
		cfg.ParallelNormalEpsilon = *normalEps
	}
	if *fillSpacing > 0 {
		cfg.FillSliceSpacing = *fillSpacing
	}
	cfg.ResamplePoints = *resamplePts

	t := pentrace.New(*texturePath, *modelPath, *outputPath, palette, cfg)

	if *debug {
		// The debug viewer opens a gioui.org window, which must run on the
		// main OS thread on operating systems like macOS; run the pipeline
		// itself in a separate goroutine, same split as the teacher's
		// preview-mode main() (go execute(proc); app.Main()).
		go execute(t)
		app.Main()
		return
	}
	execute(t)
}

// execute runs the pipeline and terminates the process with an exit code
// derived from the error's Kind (spec §9): 0 success, 1 invalid input,
// 2 I/O failure, 3 zero traces emitted.
func execute(t *pentrace.Tracer) {
	if err := t.ComputeTraces(); err != nil {
		switch pentrace.KindOf(err) {
		case pentrace.InvalidInput:
			fatalCode(1, "Invalid input: %v", err)
		case pentrace.IoError:
			fatalCode(2, "I/O error: %v", err)
		default:
			fatalCode(1, "%v", err)
		}
	}
	if len(t.Traces) == 0 {
		fatalCode(3, "No traces were emitted for this palette and mesh.")
	}
	t.Viewer.Close()
}

// loadPalette reads a JSON array of [r,g,b] triplets from path.
func loadPalette(path string) (pentrace.Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var triplets [][3]uint8
	if err := json.Unmarshal(data, &triplets); err != nil {
		return nil, err
	}
	pal := make(pentrace.Palette, len(triplets))
	for i, t := range triplets {
		pal[i] = pentrace.Color{t[0], t[1], t[2]}
	}
	return pal, nil
}

func fatal(format string, args ...interface{}) {
	fatalCode(1, format, args...)
}

func fatalCode(code int, format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, utils.DecorateText(fmt.Sprintf(format, args...), utils.ErrorMessage))
	os.Exit(code)
}
