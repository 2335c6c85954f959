package state

import "slices"

// Layer is an ordered list of shapes. Order is paint order: the first
// shape is drawn first and so sits at the back.
type Layer struct {
	id      string
	Name    string
	Visible bool
	shapes  []Shape
}

func NewLayer(name string) *Layer {
	return &Layer{id: NewID(), Name: name, Visible: true}
}

func (l *Layer) ID() string { return l.id }
func (l *Layer) Len() int   { return len(l.shapes) }

// Shapes returns the shapes back to front. The slice is a copy; the
// shapes are not.
func (l *Layer) Shapes() []Shape {
	return slices.Clone(l.shapes)
}

func (l *Layer) IndexOf(s Shape) int {
	return slices.Index(l.shapes, s)
}

func (l *Layer) Contains(s Shape) bool {
	return l.IndexOf(s) >= 0
}

func (l *Layer) AddShape(s Shape) {
	l.shapes = append(l.shapes, s)
}

// RemoveShape removes s by identity and reports whether it was present.
func (l *Layer) RemoveShape(s Shape) bool {
	i := l.IndexOf(s)
	if i < 0 {
		return false
	}
	l.shapes = slices.Delete(l.shapes, i, i+1)
	return true
}

// BringForward swaps s with the shape painted just above it.
func (l *Layer) BringForward(s Shape) bool {
	i := l.IndexOf(s)
	if i < 0 || i == len(l.shapes)-1 {
		return false
	}
	l.shapes[i], l.shapes[i+1] = l.shapes[i+1], l.shapes[i]
	return true
}

// SendBackward swaps s with the shape painted just below it.
func (l *Layer) SendBackward(s Shape) bool {
	i := l.IndexOf(s)
	if i <= 0 {
		return false
	}
	l.shapes[i], l.shapes[i-1] = l.shapes[i-1], l.shapes[i]
	return true
}

func (l *Layer) BringToFront(s Shape) bool {
	i := l.IndexOf(s)
	if i < 0 || i == len(l.shapes)-1 {
		return false
	}
	l.shapes = append(slices.Delete(l.shapes, i, i+1), s)
	return true
}

func (l *Layer) SendToBack(s Shape) bool {
	i := l.IndexOf(s)
	if i <= 0 {
		return false
	}
	l.shapes = slices.Insert(slices.Delete(l.shapes, i, i+1), 0, s)
	return true
}

// ShapeAt returns the topmost shape containing (x, y), or nil. A hidden
// layer never hits.
func (l *Layer) ShapeAt(x, y int) Shape {
	if !l.Visible {
		return nil
	}
	for i := len(l.shapes) - 1; i >= 0; i-- {
		if l.shapes[i].ContainsPoint(x, y) {
			return l.shapes[i]
		}
	}
	return nil
}

func (l *Layer) Draw(s Surface) {
	if !l.Visible {
		return
	}
	for _, sh := range l.shapes {
		sh.Draw(s)
	}
}

// Clone copies the layer and every shape in it.
func (l *Layer) Clone() *Layer {
	c := &Layer{id: l.id, Name: l.Name, Visible: l.Visible, shapes: make([]Shape, len(l.shapes))}
	for i, s := range l.shapes {
		c.shapes[i] = s.Clone()
	}
	return c
}
