package debugview

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/widget"
	"gioui.org/widget/material"
)

// GioViewer is a Viewer backed by a gioui.org window, mirroring the
// teacher's Gui (gui.go): a single window fed frames from pipeline stages
// through a small mutex-guarded state blob, redrawn on every FrameEvent.
// The window opens lazily on the first Show* call.
type GioViewer struct {
	mu      sync.Mutex
	texture image.Image
	masks   map[int]image.Image
	scene   []SceneTrace

	theme   *material.Theme
	started bool
	done    chan struct{}
}

// NewGioViewer constructs a GioViewer.
func NewGioViewer() *GioViewer {
	v := &GioViewer{
		masks: make(map[int]image.Image),
		theme: material.NewTheme(),
		done:  make(chan struct{}),
	}
	v.theme.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	return v
}

func (v *GioViewer) ensureStarted() {
	v.mu.Lock()
	if v.started {
		v.mu.Unlock()
		return
	}
	v.started = true
	v.mu.Unlock()

	go v.run()
}

// run hosts the Gio event loop on its own goroutine, same pattern as the
// teacher's Gui.Run.
func (v *GioViewer) run() {
	w := new(app.Window)
	w.Option(app.Title("pentrace debug viewer"))

	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			v.layout(gtx)
			e.Frame(gtx.Ops)
		case app.DestroyEvent:
			close(v.done)
			return
		}
	}
}

func (v *GioViewer) layout(gtx layout.Context) {
	v.mu.Lock()
	tex := v.texture
	scene := v.scene
	v.mu.Unlock()

	paint.FillShape(gtx.Ops, color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff},
		clip.Rect{Max: gtx.Constraints.Max}.Op())

	if tex == nil {
		return
	}
	bounds := tex.Bounds()
	src := paint.NewImageOp(toNRGBA(tex))
	src.Add(gtx.Ops)
	widget.Image{Src: src, Fit: widget.Contain}.Layout(gtx)

	if len(scene) == 0 {
		return
	}
	sw, sh := float32(gtx.Constraints.Max.X), float32(gtx.Constraints.Max.Y)
	tw, th := float32(bounds.Dx()), float32(bounds.Dy())
	if tw == 0 || th == 0 {
		return
	}
	for _, tr := range scene {
		drawPolyline(gtx, tr.Path, sw/tw, sh/th)
	}
}

// drawPolyline draws a thin stroked path scaled from texture-pixel space
// into window space by the given per-axis ratios.
func drawPolyline(gtx layout.Context, path []Point2, sx, sy float32) {
	if len(path) < 2 {
		return
	}
	var p clip.Path
	p.Begin(gtx.Ops)
	p.MoveTo(f32.Pt(float32(path[0].X)*sx, float32(path[0].Y)*sy))
	for _, pt := range path[1:] {
		p.LineTo(f32.Pt(float32(pt.X)*sx, float32(pt.Y)*sy))
	}
	outline := clip.Stroke{Path: p.End(), Width: 1}.Op()
	paint.FillShape(gtx.Ops, color.NRGBA{R: 0xff, G: 0x6b, B: 0x4a, A: 0xff}, outline)
}

func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, src, b.Min, draw.Src)
	return dst
}

// ShowTexture implements Viewer.
func (v *GioViewer) ShowTexture(img image.Image) {
	v.ensureStarted()
	v.mu.Lock()
	v.texture = img
	v.mu.Unlock()
}

// ShowMask implements Viewer. The mask is stored, but layout draws only the
// texture and the trace overlay; masks are not rendered.
func (v *GioViewer) ShowMask(colorIndex int, mask image.Image) {
	v.ensureStarted()
	v.mu.Lock()
	v.masks[colorIndex] = mask
	v.mu.Unlock()
}

// ShowScene implements Viewer.
func (v *GioViewer) ShowScene(traces []SceneTrace) {
	v.ensureStarted()
	v.mu.Lock()
	v.scene = traces
	v.mu.Unlock()
}

// Close waits for the window to be dismissed by the user. It is a no-op if
// no window was ever opened (Config.Debug was false for the whole run).
func (v *GioViewer) Close() {
	v.mu.Lock()
	started := v.started
	v.mu.Unlock()
	if !started {
		return
	}
	<-v.done
}
