// Package viewport maps between screen pixels and canvas coordinates under
// a pan offset and a zoom factor.
package viewport

import (
	"image"
	"math"
)

const (
	MinZoom  = 0.1
	MaxZoom  = 5.0
	ZoomStep = 0.1
)

// Direction selects whether a zoom step enlarges or shrinks the view.
type Direction int

const (
	ZoomOut Direction = -1
	ZoomIn  Direction = 1
)

// Viewport is a pan offset in screen pixels plus a zoom factor.
type Viewport struct {
	zoom       float64
	panX, panY int

	minZoom, maxZoom, step float64
}

// New returns an identity viewport with the default zoom limits.
func New() *Viewport {
	return NewWithLimits(MinZoom, MaxZoom, ZoomStep)
}

// NewWithLimits returns an identity viewport that clamps zoom to
// [minZoom, maxZoom] and moves it by step.
func NewWithLimits(minZoom, maxZoom, step float64) *Viewport {
	return &Viewport{zoom: 1, minZoom: minZoom, maxZoom: maxZoom, step: step}
}

func (v *Viewport) Zoom() float64            { return v.zoom }
func (v *Viewport) Pan() (x, y int)          { return v.panX, v.panY }
func (v *Viewport) SetPan(x, y int)          { v.panX, v.panY = x, y }
func (v *Viewport) IsIdentity() bool         { return v.zoom == 1 && v.panX == 0 && v.panY == 0 }
func (v *Viewport) Limits() (lo, hi float64) { return v.minZoom, v.maxZoom }

// PanBy shifts the view by a screen-space delta. Zoom does not scale it.
func (v *Viewport) PanBy(dx, dy int) {
	v.panX += dx
	v.panY += dy
}

// ScreenToCanvas undoes the pan, then the zoom.
func (v *Viewport) ScreenToCanvas(sx, sy int) (int, int) {
	return int(math.Round(float64(sx-v.panX) / v.zoom)),
		int(math.Round(float64(sy-v.panY) / v.zoom))
}

// CanvasToScreen applies the zoom, then the pan.
func (v *Viewport) CanvasToScreen(cx, cy int) (int, int) {
	x, y := v.CanvasToScreenF(float64(cx), float64(cy))
	return int(math.Round(x)), int(math.Round(y))
}

// CanvasToScreenF is CanvasToScreen without rounding, for renderers.
func (v *Viewport) CanvasToScreenF(cx, cy float64) (float64, float64) {
	return cx*v.zoom + float64(v.panX), cy*v.zoom + float64(v.panY)
}

// ZoomAt steps the zoom in dir and shifts the pan so the canvas point that
// was under p stays under p. It reports whether the zoom changed.
func (v *Viewport) ZoomAt(p image.Point, dir Direction) bool {
	cx := float64(p.X-v.panX) / v.zoom
	cy := float64(p.Y-v.panY) / v.zoom

	next := v.clamp(v.zoom + float64(dir)*v.step)
	if next == v.zoom {
		return false
	}
	v.zoom = next

	sx, sy := v.CanvasToScreenF(cx, cy)
	v.panX += int(math.Round(float64(p.X) - sx))
	v.panY += int(math.Round(float64(p.Y) - sy))
	return true
}

// SetZoom clamps z and applies it without touching the pan.
func (v *Viewport) SetZoom(z float64) {
	v.zoom = v.clamp(z)
}

// Reset restores 100% zoom and no pan.
func (v *Viewport) Reset() {
	v.zoom = 1
	v.panX, v.panY = 0, 0
}

// clamp bounds z and rounds off the float drift of repeated steps.
func (v *Viewport) clamp(z float64) float64 {
	z = math.Round(z*1e6) / 1e6
	return math.Max(v.minZoom, math.Min(v.maxZoom, z))
}
