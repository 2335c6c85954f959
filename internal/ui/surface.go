package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"LocalDraw/internal/state"
)

// canvasSurface turns drawing calls into fyne canvas objects, in the
// order they should be painted.
type canvasSurface struct {
	objects []fyne.CanvasObject
	color   color.Color
	width   float32
}

func newCanvasSurface() *canvasSurface {
	return &canvasSurface{color: color.Black, width: 1}
}

func (s *canvasSurface) add(o fyne.CanvasObject) {
	s.objects = append(s.objects, o)
}

func (s *canvasSurface) SetColor(c color.Color) { s.color = c }
func (s *canvasSurface) SetLineWidth(w float64) { s.width = float32(w) }

func (s *canvasSurface) Line(x1, y1, x2, y2 float64) {
	l := canvas.NewLine(s.color)
	l.StrokeWidth = s.width
	l.Position1 = fyne.NewPos(float32(x1), float32(y1))
	l.Position2 = fyne.NewPos(float32(x2), float32(y2))
	s.add(l)
}

func (s *canvasSurface) Rect(x, y, w, h float64, fill bool) {
	r := canvas.NewRectangle(color.Transparent)
	if fill {
		r.FillColor = s.color
	} else {
		r.StrokeColor = s.color
		r.StrokeWidth = s.width
	}
	place(r, x, y, w, h)
	s.add(r)
}

func (s *canvasSurface) Ellipse(x, y, w, h float64, fill bool) {
	c := canvas.NewCircle(color.Transparent)
	if fill {
		c.FillColor = s.color
	} else {
		c.StrokeColor = s.color
		c.StrokeWidth = s.width
	}
	place(c, x, y, w, h)
	s.add(c)
}

func (s *canvasSurface) Polyline(pts []image.Point) {
	for i := 1; i < len(pts); i++ {
		s.Line(float64(pts[i-1].X), float64(pts[i-1].Y), float64(pts[i].X), float64(pts[i].Y))
	}
}

// Text is placed by its baseline; fyne places text by its top-left corner
// and draws the baseline one ascent below it.
func (s *canvasSurface) Text(str string, x, y float64, f state.Font) {
	t := canvas.NewText(str, s.color)
	t.TextSize = float32(f.Size)
	t.TextStyle = fyne.TextStyle{Bold: f.Bold, Italic: f.Italic, Monospace: f.Monospace()}
	w, h := f.Measure(str)
	place(t, x, y-float64(f.Ascent()), float64(w), float64(h))
	s.add(t)
}

func (s *canvasSurface) Image(img image.Image, x, y, w, h float64) {
	i := canvas.NewImageFromImage(img)
	i.FillMode = canvas.ImageFillStretch
	place(i, x, y, w, h)
	s.add(i)
}

func place(o fyne.CanvasObject, x, y, w, h float64) {
	o.Move(fyne.NewPos(float32(x), float32(y)))
	o.Resize(fyne.NewSize(float32(w), float32(h)))
}
