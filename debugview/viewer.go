// Package debugview provides an optional window-backed preview of the
// pentrace pipeline's intermediate artifacts (source texture, per-color
// masks, emitted 2D traces), gated behind Config.Debug the way the teacher
// gates its own preview window behind Processor.Debug (see the teacher's
// gui.go/preview.go). It never affects pipeline output — it only observes.
package debugview

import "image"

// Viewer receives intermediate pipeline artifacts for optional visual
// inspection. The zero-cost path is NopViewer; a window-backed
// implementation is provided by NewGioViewer (see gio_viewer.go).
//
// Viewer is deliberately decoupled from the root pentrace package's types
// (Layer, Trace3D, ...) so that pentrace can depend on debugview without a
// cycle; callers convert to SceneTrace/image.Image at the call site.
type Viewer interface {
	// ShowTexture displays the loaded source texture.
	ShowTexture(img image.Image)
	// ShowMask hands one per-color binary layer to the viewer. GioViewer
	// stores it but does not draw it.
	ShowMask(colorIndex int, mask image.Image)
	// ShowScene displays the emitted 2D traces (before 3D projection,
	// including traces the projector later rejects) over the texture.
	ShowScene(traces []SceneTrace)
	// Close releases any window resources. Safe to call multiple times,
	// and safe to call when no window was ever opened.
	Close()
}

// SceneTrace is a window-renderable copy of one emitted Trace2D, converted
// from UV space to texture-pixel space.
type SceneTrace struct {
	Color int
	Path  []Point2
}

// Point2 is a 2D point in texture-pixel space.
type Point2 struct {
	X, Y float64
}

// NopViewer discards every call. It is the default Viewer when
// Config.Debug is false.
type NopViewer struct{}

// ShowTexture implements Viewer.
func (NopViewer) ShowTexture(image.Image) {}

// ShowMask implements Viewer.
func (NopViewer) ShowMask(int, image.Image) {}

// ShowScene implements Viewer.
func (NopViewer) ShowScene([]SceneTrace) {}

// Close implements Viewer.
func (NopViewer) Close() {}
