package state

import (
	"image"
	"image/color"
)

// Surface is what shapes draw onto. Coordinates are in canvas space; a
// surface that shows a panned or zoomed view maps them itself.
type Surface interface {
	SetColor(c color.Color)
	SetLineWidth(w float64)
	Line(x1, y1, x2, y2 float64)
	Rect(x, y, w, h float64, fill bool)
	Ellipse(x, y, w, h float64, fill bool)
	// Polyline strokes consecutive points with round caps and joins.
	Polyline(pts []image.Point)
	// Text draws s with its baseline starting at (x, y).
	Text(s string, x, y float64, f Font)
	Image(img image.Image, x, y, w, h float64)
}
