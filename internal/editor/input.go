package editor

import (
	"image"

	"LocalDraw/internal/state"
	"LocalDraw/internal/viewport"
)

// PointerDown starts a gesture: panning, picking a shape, or drawing one.
func (e *Editor) PointerDown(ev PointerEvent) {
	if e.mode != ModeIdle {
		return
	}
	cx, cy := e.view.ScreenToCanvas(ev.X, ev.Y)
	e.last = image.Pt(cx, cy)

	if isPanTrigger(ev) {
		e.mode = ModePanning
		e.panLast = image.Pt(ev.X, ev.Y)
		return
	}

	if e.tool == ToolSelect || ev.Modifiers.Has(ModControl) {
		if e.pick(cx, cy) {
			e.redraw()
			return
		}
		e.clearSelection()
		if e.tool == ToolSelect {
			e.redraw()
			return
		}
	}

	l := e.CurrentLayer()
	if l == nil {
		return
	}
	e.clearSelection()

	var s state.Shape
	switch e.tool {
	case ToolText:
		e.placeTextAt(cx, cy)
		return
	case ToolImage:
		if e.pendingImage == nil {
			return
		}
		s = state.NewImage(e.pendingImage, cx, cy, cx, cy)
	case ToolRectangle:
		s = state.NewRectangle(e.style, cx, cy)
	case ToolCircle:
		s = state.NewCircle(e.style, cx, cy)
	case ToolFree:
		s = state.NewFreeDrawing(e.style, cx, cy)
	default:
		s = state.NewLine(e.style, cx, cy)
	}
	e.drawing = s
	e.mode = ModeDrawing
	e.log().Debug("[EDITOR] drawing", "kind", s.Kind(), "x", cx, "y", cy)
	e.redraw()
}

// pick selects the topmost shape under (x, y). Layers are searched from
// the last in the stack to the first.
func (e *Editor) pick(x, y int) bool {
	for i := len(e.layers) - 1; i >= 0; i-- {
		l := e.layers[i]
		s := l.ShapeAt(x, y)
		if s == nil {
			continue
		}
		e.selectShape(s, l)
		if e.current != i {
			e.current = i
			e.layersChanged()
		}
		e.gestureBefore = state.CopyLayers(e.layers)
		e.gestureDirty = false
		if s.IsResizeHandle(x, y) {
			e.mode = ModeResizing
		} else {
			e.mode = ModeMoving
		}
		return true
	}
	return false
}

// PointerDrag advances the gesture in progress, if any.
func (e *Editor) PointerDrag(ev PointerEvent) {
	if e.mode == ModePanning {
		e.view.PanBy(ev.X-e.panLast.X, ev.Y-e.panLast.Y)
		e.panLast = image.Pt(ev.X, ev.Y)
		e.viewportChanged()
		return
	}

	cx, cy := e.view.ScreenToCanvas(ev.X, ev.Y)
	switch e.mode {
	case ModeDrawing:
		e.drawing.SetEndPoint(cx, cy)
	case ModeMoving:
		dx, dy := cx-e.last.X, cy-e.last.Y
		if dx != 0 || dy != 0 {
			e.selected.Move(dx, dy)
			e.gestureDirty = true
		}
	case ModeResizing:
		start, end := e.selected.Anchors()
		e.selected.SetEndPoint(cx, cy)
		if s, n := e.selected.Anchors(); s != start || n != end || e.selected.Kind() == state.KindFreeDrawing {
			e.gestureDirty = true
		}
	default:
		return
	}
	e.last = image.Pt(cx, cy)
	e.redraw()
}

// PointerUp finishes the gesture. A drawn shape is committed to the current
// layer; a move or resize that changed the shape becomes one undo step.
func (e *Editor) PointerUp(ev PointerEvent) {
	switch e.mode {
	case ModePanning:
	case ModeDrawing:
		if l := e.CurrentLayer(); l != nil {
			e.history.Snapshot(e.layers)
			l.AddShape(e.drawing)
			e.log().Debug("[EDITOR] committed", "kind", e.drawing.Kind(), "layer", l.Name)
			e.drawing = nil
			e.mode = ModeIdle
			e.layersChanged()
			return
		}
		e.drawing = nil
	case ModeMoving, ModeResizing:
		if e.gestureDirty {
			e.history.Push(e.gestureBefore)
			e.log().Debug("[EDITOR] transformed", "mode", e.mode, "kind", e.selected.Kind())
		}
		e.gestureBefore = nil
		e.gestureDirty = false
		e.mode = ModeIdle
		e.layersChanged()
		return
	}
	e.mode = ModeIdle
	e.redraw()
}

// KeyDown handles deletion, zoom, undo and redo shortcuts.
func (e *Editor) KeyDown(ev KeyEvent) {
	ctrl := ev.Modifiers.Has(ModControl)
	switch {
	case ev.Key == KeyDelete || ev.Key == KeyBackspace:
		e.DeleteSelected()
	case ev.Key == KeyEscape:
		e.ClearSelection()
	case ctrl && ev.Key == Key0:
		e.ResetView()
	case ctrl && (ev.Key == KeyEqual || ev.Key == KeyPlus):
		e.ZoomIn()
	case ctrl && ev.Key == KeyMinus:
		e.ZoomOut()
	case ctrl && ev.Key == KeyZ && ev.Modifiers.Has(ModShift):
		e.Redo()
	case ctrl && ev.Key == KeyZ:
		e.Undo()
	case ctrl && ev.Key == KeyY:
		e.Redo()
	}
}

// Scroll zooms about the pointer when Ctrl is held and pans otherwise.
func (e *Editor) Scroll(ev ScrollEvent) {
	if ev.Modifiers.Has(ModControl) {
		dir := viewport.ZoomOut
		if ev.DY > 0 {
			dir = viewport.ZoomIn
		}
		e.ZoomAt(ev.X, ev.Y, dir)
		return
	}
	if e.mode != ModeIdle {
		return
	}
	e.view.PanBy(int(ev.DX), int(ev.DY))
	e.viewportChanged()
}

// ZoomAt steps the zoom keeping the canvas point under (x, y) in place.
func (e *Editor) ZoomAt(x, y int, dir viewport.Direction) {
	if e.view.ZoomAt(image.Pt(x, y), dir) {
		e.viewportChanged()
	}
}

// ZoomIn and ZoomOut anchor on the centre of the viewport.
func (e *Editor) ZoomIn()  { e.ZoomAt(e.viewSize.X/2, e.viewSize.Y/2, viewport.ZoomIn) }
func (e *Editor) ZoomOut() { e.ZoomAt(e.viewSize.X/2, e.viewSize.Y/2, viewport.ZoomOut) }

func (e *Editor) ResetView() {
	e.view.Reset()
	e.viewportChanged()
}

// PlaceText commits a Text shape with its baseline at canvas (x, y). Empty
// text is ignored. The text is kept for later clicks with the Text tool.
func (e *Editor) PlaceText(x, y int, text string) {
	if text == "" {
		return
	}
	e.pendingText = text
	l := e.CurrentLayer()
	if l == nil {
		return
	}
	e.history.Snapshot(e.layers)
	l.AddShape(state.NewText(e.style, x, y, text, e.font))
	e.log().Debug("[EDITOR] committed", "kind", state.KindText, "layer", l.Name)
	e.layersChanged()
}

func (e *Editor) placeTextAt(x, y int) {
	if e.pendingText != "" {
		e.PlaceText(x, y, e.pendingText)
		return
	}
	if e.RequestText != nil {
		e.RequestText(x, y)
	}
}
