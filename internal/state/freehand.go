package state

import (
	"image"
	"math"
)

// PickTolerance is how far, in canvas pixels, a click may land from a
// freehand stroke and still hit it.
const PickTolerance = 5

// FreeDrawing is a polyline of raw pointer samples. Its anchors track the
// running bounding box of the samples: start is the top-left corner and
// end the bottom-right.
type FreeDrawing struct {
	base
	points []image.Point
}

// NewFreeDrawing starts a stroke at (x, y). The stroke begins with two
// samples so that it is drawable before the pointer moves.
func NewFreeDrawing(style Style, x, y int) *FreeDrawing {
	return &FreeDrawing{
		base:   newBase(style, x, y, x, y),
		points: []image.Point{image.Pt(x, y), image.Pt(x, y)},
	}
}

func (f *FreeDrawing) Kind() Kind { return KindFreeDrawing }

// Points returns a copy of the samples in drawing order.
func (f *FreeDrawing) Points() []image.Point {
	return append([]image.Point(nil), f.points...)
}

// SetEndPoint appends a sample and grows the bounding box to cover it.
// The box never shrinks.
func (f *FreeDrawing) SetEndPoint(x, y int) {
	f.points = append(f.points, image.Pt(x, y))
	f.start = image.Pt(min(f.start.X, x), min(f.start.Y, y))
	f.end = image.Pt(max(f.end.X, x), max(f.end.Y, y))
}

func (f *FreeDrawing) Move(dx, dy int) {
	f.base.Move(dx, dy)
	d := image.Pt(dx, dy)
	for i := range f.points {
		f.points[i] = f.points[i].Add(d)
	}
}

// ContainsPoint tests the distance from (x, y) to every segment.
func (f *FreeDrawing) ContainsPoint(x, y int) bool {
	for i := 0; i+1 < len(f.points); i++ {
		if segmentDistance(x, y, f.points[i], f.points[i+1]) <= PickTolerance {
			return true
		}
	}
	return false
}

func (f *FreeDrawing) Draw(s Surface) {
	if len(f.points) < 2 {
		return
	}
	f.stroke(s)
	s.Polyline(f.points)
	if f.selected {
		drawSelection(s, f.Bounds())
	}
}

func (f *FreeDrawing) Clone() Shape {
	return &FreeDrawing{base: f.copyBase(), points: f.Points()}
}

// segmentDistance is the shortest distance from (x, y) to segment ab.
func segmentDistance(x, y int, a, b image.Point) float64 {
	px, py := float64(x), float64(y)
	ax, ay := float64(a.X), float64(a.Y)
	bx, by := float64(b.X), float64(b.Y)

	lenSq := (bx-ax)*(bx-ax) + (by-ay)*(by-ay)
	if lenSq == 0 {
		return math.Hypot(px-ax, py-ay)
	}
	t := ((px-ax)*(bx-ax) + (py-ay)*(by-ay)) / lenSq
	switch {
	case t < 0:
		return math.Hypot(px-ax, py-ay)
	case t > 1:
		return math.Hypot(px-bx, py-by)
	}
	return math.Hypot(px-(ax+t*(bx-ax)), py-(ay+t*(by-ay)))
}
