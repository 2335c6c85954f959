package state

import (
	"LocalDraw/internal/logging"
)

// CopyLayers deep-copies a layer stack: new layers holding new shapes.
func CopyLayers(layers []*Layer) []*Layer {
	out := make([]*Layer, len(layers))
	for i, l := range layers {
		out[i] = l.Clone()
	}
	return out
}

// History keeps linear undo and redo stacks of whole layer stacks.
type History struct {
	undo [][]*Layer
	redo [][]*Layer
}

func NewHistory() *History {
	return &History{}
}

// Snapshot records layers as they are now, before a mutation is applied.
// Any redo entries are discarded.
func (h *History) Snapshot(layers []*Layer) {
	h.Push(CopyLayers(layers))
}

// Push records an already copied stack, such as one captured at the start
// of a drag. The caller must not keep using the pushed layers.
func (h *History) Push(layers []*Layer) {
	h.undo = append(h.undo, layers)
	h.redo = nil
	logging.Logger().Debug("[HISTORY] snapshot", "undo", len(h.undo))
}

// Undo returns the previous state and files current under redo. It
// returns false, and current unchanged, when there is nothing to undo.
func (h *History) Undo(current []*Layer) ([]*Layer, bool) {
	if len(h.undo) == 0 {
		return current, false
	}
	prev := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, CopyLayers(current))
	logging.Logger().Debug("[HISTORY] undo", "undo", len(h.undo), "redo", len(h.redo))
	return prev, true
}

// Redo is the mirror of Undo.
func (h *History) Redo(current []*Layer) ([]*Layer, bool) {
	if len(h.redo) == 0 {
		return current, false
	}
	next := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, CopyLayers(current))
	logging.Logger().Debug("[HISTORY] redo", "undo", len(h.undo), "redo", len(h.redo))
	return next, true
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 }
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

func (h *History) Clear() {
	h.undo, h.redo = nil, nil
}
