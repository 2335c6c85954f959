package ui

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"LocalDraw/internal/editor"
	"LocalDraw/internal/render"
)

// BoardWidget is the drawing area. It forwards pointer, wheel and key
// input to the editor and paints the editor's scene through its viewport.
type BoardWidget struct {
	widget.BaseWidget
	editor       *editor.Editor
	checkerboard bool

	held    editor.Modifier
	lastPos fyne.Position
	pressed bool
	button  editor.Button
}

var (
	_ fyne.Widget       = (*BoardWidget)(nil)
	_ fyne.Draggable    = (*BoardWidget)(nil)
	_ fyne.Scrollable   = (*BoardWidget)(nil)
	_ desktop.Mouseable = (*BoardWidget)(nil)
	_ desktop.Keyable   = (*BoardWidget)(nil)
	_ desktop.Hoverable = (*BoardWidget)(nil)
)

func NewBoardWidget(e *editor.Editor, checkerboard bool) *BoardWidget {
	b := &BoardWidget{editor: e, checkerboard: checkerboard}
	b.ExtendBaseWidget(b)
	return b
}

func point(p fyne.Position) (int, int) {
	return int(math.Round(float64(p.X))), int(math.Round(float64(p.Y)))
}

func modifiers(m fyne.KeyModifier) editor.Modifier {
	var out editor.Modifier
	if m&fyne.KeyModifierShift != 0 {
		out |= editor.ModShift
	}
	if m&fyne.KeyModifierControl != 0 {
		out |= editor.ModControl
	}
	if m&fyne.KeyModifierAlt != 0 {
		out |= editor.ModAlt
	}
	if m&fyne.KeyModifierSuper != 0 {
		out |= editor.ModSuper
	}
	return out
}

func button(b desktop.MouseButton) editor.Button {
	switch b {
	case desktop.MouseButtonSecondary:
		return editor.ButtonSecondary
	case desktop.MouseButtonTertiary:
		return editor.ButtonTertiary
	}
	return editor.ButtonPrimary
}

func (b *BoardWidget) MouseDown(ev *desktop.MouseEvent) {
	b.focus()
	x, y := point(ev.Position)
	b.lastPos = ev.Position
	b.pressed = true
	b.button = button(ev.Button)
	b.editor.PointerDown(editor.PointerEvent{
		X:         x,
		Y:         y,
		Button:    b.button,
		Modifiers: modifiers(ev.Modifier) | b.held,
	})
}

func (b *BoardWidget) Dragged(ev *fyne.DragEvent) {
	x, y := point(ev.Position)
	b.lastPos = ev.Position
	b.editor.PointerDrag(editor.PointerEvent{X: x, Y: y, Modifiers: b.held})
}

func (b *BoardWidget) MouseUp(ev *desktop.MouseEvent) {
	b.release(ev.Position, button(ev.Button), modifiers(ev.Modifier))
}

// DragEnd can arrive without a matching MouseUp when the pointer leaves
// the window mid-drag.
func (b *BoardWidget) DragEnd() {
	b.release(b.lastPos, editor.ButtonPrimary, b.held)
}

func (b *BoardWidget) release(p fyne.Position, btn editor.Button, mods editor.Modifier) {
	if !b.pressed {
		return
	}
	b.pressed = false
	x, y := point(p)
	b.editor.PointerUp(editor.PointerEvent{X: x, Y: y, Button: btn, Modifiers: mods})
}

func (b *BoardWidget) Scrolled(ev *fyne.ScrollEvent) {
	x, y := point(ev.Position)
	b.editor.Scroll(editor.ScrollEvent{
		X:         x,
		Y:         y,
		DX:        float64(ev.Scrolled.DX),
		DY:        float64(ev.Scrolled.DY),
		Modifiers: b.held,
	})
}

func (b *BoardWidget) focus() {
	if c := fyne.CurrentApp().Driver().CanvasForObject(b); c != nil {
		c.Focus(b)
	}
}

func (b *BoardWidget) FocusGained() {}

func (b *BoardWidget) FocusLost() { b.held = 0 }

func (b *BoardWidget) TypedRune(r rune) {
	if r == '+' {
		b.editor.KeyDown(editor.KeyEvent{Key: editor.KeyPlus, Modifiers: b.held})
	}
}

func (b *BoardWidget) TypedKey(ev *fyne.KeyEvent) {
	b.editor.KeyDown(editor.KeyEvent{Key: editor.Key(ev.Name), Modifiers: b.held})
}

// KeyDown and KeyUp track held modifiers; fyne's key events do not carry
// them.
func (b *BoardWidget) KeyDown(ev *fyne.KeyEvent) { b.held |= modifierKey(ev.Name) }
func (b *BoardWidget) KeyUp(ev *fyne.KeyEvent)   { b.held &^= modifierKey(ev.Name) }

func modifierKey(k fyne.KeyName) editor.Modifier {
	switch k {
	case desktop.KeyShiftLeft, desktop.KeyShiftRight:
		return editor.ModShift
	case desktop.KeyControlLeft, desktop.KeyControlRight:
		return editor.ModControl
	case desktop.KeyAltLeft, desktop.KeyAltRight:
		return editor.ModAlt
	case desktop.KeySuperLeft, desktop.KeySuperRight:
		return editor.ModSuper
	}
	return 0
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}
func (b *BoardWidget) MouseOut()                   {}

// MouseMoved carries secondary-button pans: fyne only sends Dragged for
// the other buttons.
func (b *BoardWidget) MouseMoved(ev *desktop.MouseEvent) {
	if !b.pressed || b.button != editor.ButtonSecondary {
		return
	}
	x, y := point(ev.Position)
	b.lastPos = ev.Position
	b.editor.PointerDrag(editor.PointerEvent{X: x, Y: y, Button: b.button, Modifiers: b.held})
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardRenderer{board: b}
	if b.checkerboard {
		r.background = canvas.NewRasterWithPixels(r.tile)
	} else {
		r.background = canvas.NewRectangle(color.White)
	}
	r.rebuild()
	return r
}

type boardRenderer struct {
	board      *BoardWidget
	background fyne.CanvasObject
	objects    []fyne.CanvasObject
	size       fyne.Size
}

// tile maps a raster pixel back to canvas space and picks its
// checkerboard colour.
func (r *boardRenderer) tile(px, py, w, h int) color.Color {
	sx, sy := px, py
	if w > 0 && h > 0 && r.size.Width > 0 && r.size.Height > 0 {
		sx = int(float32(px) * r.size.Width / float32(w))
		sy = int(float32(py) * r.size.Height / float32(h))
	}
	cx, cy := r.board.editor.View().ScreenToCanvas(sx, sy)
	return render.TileColor(cx, cy)
}

func (r *boardRenderer) rebuild() {
	s := newCanvasSurface()
	render.Draw(render.NewViewSurface(s, r.board.editor.View()), r.board.editor.Scene())
	r.objects = append([]fyne.CanvasObject{r.background}, s.objects...)
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.size = size
	r.background.Resize(size)
	r.board.editor.SetViewportSize(int(size.Width), int(size.Height))
}

func (r *boardRenderer) Refresh() {
	r.rebuild()
	r.background.Refresh()
	canvas.Refresh(r.board)
}

func (r *boardRenderer) MinSize() fyne.Size           { return fyne.NewSize(300, 300) }
func (r *boardRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *boardRenderer) Destroy()                     {}
