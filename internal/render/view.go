package render

import (
	"image"
	"image/color"

	"LocalDraw/internal/state"
	"LocalDraw/internal/viewport"
)

// ViewSurface forwards canvas-space drawing to a screen-space surface,
// applying the viewport's pan and zoom on the way.
type ViewSurface struct {
	screen state.Surface
	view   *viewport.Viewport
}

func NewViewSurface(screen state.Surface, v *viewport.Viewport) *ViewSurface {
	return &ViewSurface{screen: screen, view: v}
}

func (v *ViewSurface) pt(x, y float64) (float64, float64) {
	return v.view.CanvasToScreenF(x, y)
}

func (v *ViewSurface) scale(d float64) float64 {
	return d * v.view.Zoom()
}

func (v *ViewSurface) SetColor(c color.Color) { v.screen.SetColor(c) }
func (v *ViewSurface) SetLineWidth(w float64) { v.screen.SetLineWidth(v.scale(w)) }

func (v *ViewSurface) Line(x1, y1, x2, y2 float64) {
	sx1, sy1 := v.pt(x1, y1)
	sx2, sy2 := v.pt(x2, y2)
	v.screen.Line(sx1, sy1, sx2, sy2)
}

func (v *ViewSurface) Rect(x, y, w, h float64, fill bool) {
	sx, sy := v.pt(x, y)
	v.screen.Rect(sx, sy, v.scale(w), v.scale(h), fill)
}

func (v *ViewSurface) Ellipse(x, y, w, h float64, fill bool) {
	sx, sy := v.pt(x, y)
	v.screen.Ellipse(sx, sy, v.scale(w), v.scale(h), fill)
}

func (v *ViewSurface) Polyline(pts []image.Point) {
	out := make([]image.Point, len(pts))
	for i, p := range pts {
		out[i] = image.Pt(v.view.CanvasToScreen(p.X, p.Y))
	}
	v.screen.Polyline(out)
}

func (v *ViewSurface) Text(s string, x, y float64, f state.Font) {
	sx, sy := v.pt(x, y)
	f.Size = v.scale(f.Size)
	v.screen.Text(s, sx, sy, f)
}

func (v *ViewSurface) Image(img image.Image, x, y, w, h float64) {
	sx, sy := v.pt(x, y)
	v.screen.Image(img, sx, sy, v.scale(w), v.scale(h))
}
