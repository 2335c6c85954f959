package editor

import (
	"fmt"

	"LocalDraw/internal/state"
)

// AddLayer appends an empty layer, named after its position, and makes it
// current.
func (e *Editor) AddLayer() *state.Layer {
	e.history.Snapshot(e.layers)
	l := state.NewLayer(fmt.Sprintf("Layer %d", len(e.layers)+1))
	e.layers = append(e.layers, l)
	e.current = len(e.layers) - 1
	e.log().Info("[EDITOR] layer added", "name", l.Name, "count", len(e.layers))
	e.layersChanged()
	return l
}

// DeleteLayer removes the layer at i. The last remaining layer cannot be
// deleted. The current layer stays current; if it is the one removed, the
// layer now at its index (or the new last layer) takes over.
func (e *Editor) DeleteLayer(i int) error {
	if i < 0 || i >= len(e.layers) {
		return fmt.Errorf("delete layer %d: %w", i, ErrLayerIndex)
	}
	if len(e.layers) == 1 {
		e.log().Warn("[EDITOR] refusing to delete the last layer")
		return ErrLastLayer
	}
	if e.mode != ModeIdle {
		return nil
	}
	l := e.layers[i]
	if e.selectedLayer == l {
		e.clearSelection()
	}
	e.history.Snapshot(e.layers)
	e.layers = append(e.layers[:i:i], e.layers[i+1:]...)
	switch {
	case i < e.current:
		e.current--
	case i == e.current:
		e.current = min(i, len(e.layers)-1)
	}
	e.log().Info("[EDITOR] layer deleted", "name", l.Name, "count", len(e.layers))
	e.layersChanged()
	return nil
}

func (e *Editor) DeleteCurrentLayer() error {
	if e.CurrentLayer() == nil {
		return ErrNoLayer
	}
	return e.DeleteLayer(e.current)
}

// SetCurrentLayer chooses the layer new shapes go into. -1 means none.
func (e *Editor) SetCurrentLayer(i int) error {
	if i < -1 || i >= len(e.layers) {
		return fmt.Errorf("select layer %d: %w", i, ErrLayerIndex)
	}
	if e.current == i {
		return nil
	}
	e.current = i
	e.layersChanged()
	return nil
}

// RaiseLayer moves layer i one step up the stack, towards the front.
func (e *Editor) RaiseLayer(i int) error { return e.swapLayers(i, i+1) }

// LowerLayer moves layer i one step down the stack.
func (e *Editor) LowerLayer(i int) error { return e.swapLayers(i, i-1) }

func (e *Editor) swapLayers(i, j int) error {
	if i < 0 || i >= len(e.layers) {
		return fmt.Errorf("reorder layer %d: %w", i, ErrLayerIndex)
	}
	if j < 0 || j >= len(e.layers) || e.mode != ModeIdle {
		return nil
	}
	e.history.Snapshot(e.layers)
	e.layers[i], e.layers[j] = e.layers[j], e.layers[i]
	switch e.current {
	case i:
		e.current = j
	case j:
		e.current = i
	}
	e.layersChanged()
	return nil
}

// SetLayerVisible shows or hides layer i. Visibility is a view setting and
// is not recorded in history. Hiding a layer drops a selection on it.
func (e *Editor) SetLayerVisible(i int, visible bool) error {
	if i < 0 || i >= len(e.layers) {
		return fmt.Errorf("layer visibility %d: %w", i, ErrLayerIndex)
	}
	l := e.layers[i]
	if l.Visible == visible {
		return nil
	}
	l.Visible = visible
	if !visible && e.selectedLayer == l {
		e.clearSelection()
	}
	e.layersChanged()
	return nil
}

func (e *Editor) RenameLayer(i int, name string) error {
	if i < 0 || i >= len(e.layers) {
		return fmt.Errorf("rename layer %d: %w", i, ErrLayerIndex)
	}
	if name == "" || e.layers[i].Name == name {
		return nil
	}
	e.layers[i].Name = name
	e.layersChanged()
	return nil
}

// DeleteSelected removes the selected shape from its layer.
func (e *Editor) DeleteSelected() {
	if e.selected == nil || e.mode != ModeIdle {
		return
	}
	l := e.selectedLayer
	if l == nil || !l.Contains(e.selected) {
		e.clearSelection()
		e.redraw()
		return
	}
	e.history.Snapshot(e.layers)
	s := e.selected
	l.RemoveShape(s)
	e.clearSelection()
	e.log().Debug("[EDITOR] deleted", "kind", s.Kind(), "layer", l.Name)
	e.layersChanged()
}

// BringForward, SendBackward, BringToFront and SendToBack change the paint
// order of the selected shape within its layer.
func (e *Editor) BringForward() { e.restack((*state.Layer).BringForward) }
func (e *Editor) SendBackward() { e.restack((*state.Layer).SendBackward) }
func (e *Editor) BringToFront() { e.restack((*state.Layer).BringToFront) }
func (e *Editor) SendToBack()   { e.restack((*state.Layer).SendToBack) }

func (e *Editor) restack(op func(*state.Layer, state.Shape) bool) {
	if e.selected == nil || e.selectedLayer == nil || e.mode != ModeIdle {
		return
	}
	before := state.CopyLayers(e.layers)
	if !op(e.selectedLayer, e.selected) {
		return
	}
	e.history.Push(before)
	e.layersChanged()
}
