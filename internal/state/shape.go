package state

import (
	"image"
	"image/color"
)

// HandleSize is the side of the square resize handles drawn on the corners
// of a selected shape, and the pick tolerance around each corner.
const HandleSize = 8

// Kind names a shape variant.
type Kind int

const (
	KindLine Kind = iota
	KindRectangle
	KindCircle
	KindFreeDrawing
	KindText
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindRectangle:
		return "rectangle"
	case KindCircle:
		return "circle"
	case KindFreeDrawing:
		return "free"
	case KindText:
		return "text"
	case KindImage:
		return "image"
	}
	return "unknown"
}

// Style is the paint state captured when a shape is created.
type Style struct {
	Color       color.NRGBA
	StrokeWidth float32
	Filled      bool
}

// DefaultStyle is opaque black, 1px, unfilled.
func DefaultStyle() Style {
	return Style{Color: color.NRGBA{A: 0xff}, StrokeWidth: 1}
}

// Rect is an inclusive axis-aligned box in canvas space.
type Rect struct {
	Left, Top, Right, Bottom int
}

// RectFromAnchors orders two arbitrary corners into a Rect.
func RectFromAnchors(a, b image.Point) Rect {
	return Rect{
		Left:   min(a.X, b.X),
		Top:    min(a.Y, b.Y),
		Right:  max(a.X, b.X),
		Bottom: max(a.Y, b.Y),
	}
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}

func (r Rect) Width() int  { return r.Right - r.Left }
func (r Rect) Height() int { return r.Bottom - r.Top }

// NearCorner reports whether (x, y) lies within HandleSize of a corner.
func (r Rect) NearCorner(x, y int) bool {
	near := func(cx, cy int) bool {
		return abs(x-cx) <= HandleSize && abs(y-cy) <= HandleSize
	}
	return near(r.Left, r.Top) || near(r.Right, r.Top) ||
		near(r.Left, r.Bottom) || near(r.Right, r.Bottom)
}

// Shape is implemented only by the variants in this package: Line,
// Rectangle, Circle, FreeDrawing, Text and Image.
type Shape interface {
	ID() string
	Kind() Kind
	Anchors() (start, end image.Point)
	Bounds() Rect
	Style() Style
	SetStrokeWidth(w float32)
	Selected() bool
	SetSelected(sel bool)

	Draw(s Surface)
	ContainsPoint(x, y int) bool
	IsResizeHandle(x, y int) bool
	Move(dx, dy int)
	SetEndPoint(x, y int)

	// Clone returns an independent copy with the same ID. The copy is
	// never selected.
	Clone() Shape

	sealed()
}

type base struct {
	id         string
	start, end image.Point
	style      Style
	selected   bool
}

func newBase(style Style, x1, y1, x2, y2 int) base {
	return base{
		id:    NewID(),
		start: image.Pt(x1, y1),
		end:   image.Pt(x2, y2),
		style: style,
	}
}

func (b *base) ID() string                          { return b.id }
func (b *base) Anchors() (image.Point, image.Point) { return b.start, b.end }
func (b *base) Bounds() Rect                        { return RectFromAnchors(b.start, b.end) }
func (b *base) Style() Style                        { return b.style }
func (b *base) SetStrokeWidth(w float32)            { b.style.StrokeWidth = max(w, 0) }
func (b *base) Selected() bool                      { return b.selected }
func (b *base) SetSelected(sel bool)                { b.selected = sel }
func (b *base) sealed()                             {}

func (b *base) ContainsPoint(x, y int) bool {
	return b.Bounds().Contains(x, y)
}

func (b *base) IsResizeHandle(x, y int) bool {
	return b.selected && b.Bounds().NearCorner(x, y)
}

func (b *base) Move(dx, dy int) {
	b.start = b.start.Add(image.Pt(dx, dy))
	b.end = b.end.Add(image.Pt(dx, dy))
}

func (b *base) SetEndPoint(x, y int) {
	b.end = image.Pt(x, y)
}

func (b *base) copyBase() base {
	c := *b
	c.selected = false
	return c
}

func (b *base) stroke(s Surface) {
	s.SetColor(b.style.Color)
	s.SetLineWidth(float64(b.style.StrokeWidth))
}

var (
	selectionColor = color.NRGBA{B: 0xff, A: 0xff}
	handleFill     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// drawSelection outlines r and puts a handle on each corner.
func drawSelection(s Surface, r Rect) {
	s.SetColor(selectionColor)
	s.SetLineWidth(2)
	s.Rect(float64(r.Left), float64(r.Top), float64(r.Width()), float64(r.Height()), false)

	s.SetLineWidth(1)
	const half = HandleSize / 2
	for _, c := range [4]image.Point{
		image.Pt(r.Left, r.Top), image.Pt(r.Right, r.Top),
		image.Pt(r.Left, r.Bottom), image.Pt(r.Right, r.Bottom),
	} {
		x, y := float64(c.X-half), float64(c.Y-half)
		s.SetColor(handleFill)
		s.Rect(x, y, HandleSize, HandleSize, true)
		s.SetColor(selectionColor)
		s.Rect(x, y, HandleSize, HandleSize, false)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Line is a straight segment from the start anchor to the end anchor.
type Line struct {
	base
}

func NewLine(style Style, x, y int) *Line {
	return &Line{base: newBase(style, x, y, x, y)}
}

func (l *Line) Kind() Kind { return KindLine }

func (l *Line) Draw(s Surface) {
	l.stroke(s)
	s.Line(float64(l.start.X), float64(l.start.Y), float64(l.end.X), float64(l.end.Y))
	if l.selected {
		drawSelection(s, l.Bounds())
	}
}

func (l *Line) Clone() Shape {
	return &Line{base: l.copyBase()}
}

// Rectangle fills or outlines the box spanned by its anchors.
type Rectangle struct {
	base
}

func NewRectangle(style Style, x, y int) *Rectangle {
	return &Rectangle{base: newBase(style, x, y, x, y)}
}

func (r *Rectangle) Kind() Kind { return KindRectangle }

func (r *Rectangle) Draw(s Surface) {
	r.stroke(s)
	b := r.Bounds()
	s.Rect(float64(b.Left), float64(b.Top), float64(b.Width()), float64(b.Height()), r.style.Filled)
	if r.selected {
		drawSelection(s, b)
	}
}

func (r *Rectangle) Clone() Shape {
	return &Rectangle{base: r.copyBase()}
}

// Circle is an ellipse inscribed in the box spanned by its anchors.
type Circle struct {
	base
}

func NewCircle(style Style, x, y int) *Circle {
	return &Circle{base: newBase(style, x, y, x, y)}
}

func (c *Circle) Kind() Kind { return KindCircle }

func (c *Circle) Draw(s Surface) {
	c.stroke(s)
	b := c.Bounds()
	s.Ellipse(float64(b.Left), float64(b.Top), float64(b.Width()), float64(b.Height()), c.style.Filled)
	if c.selected {
		drawSelection(s, b)
	}
}

func (c *Circle) Clone() Shape {
	return &Circle{base: c.copyBase()}
}
