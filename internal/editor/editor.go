// Package editor is the drawing session: the layer stack, the active tool
// and selection, the viewport and undo history, and the state machine that
// turns pointer and keyboard input into edits.
//
// An Editor is not safe for concurrent use. All input is expected on one
// goroutine; use SnapshotLayers to hand the model to another goroutine.
package editor

import (
	"errors"
	"image"
	"log/slog"

	"LocalDraw/internal/config"
	"LocalDraw/internal/logging"
	"LocalDraw/internal/render"
	"LocalDraw/internal/state"
	"LocalDraw/internal/viewport"
)

var (
	// ErrLastLayer is returned when deleting the only remaining layer.
	ErrLastLayer = errors.New("cannot delete the last layer")
	// ErrNoLayer is returned when an edit needs a current layer and there is none.
	ErrNoLayer = errors.New("no current layer")
	// ErrLayerIndex is returned for a layer index outside the stack.
	ErrLayerIndex = errors.New("layer index out of range")
)

// Editor owns the drawing model and is its only mutator.
type Editor struct {
	layers   []*state.Layer
	current  int
	history  *state.History
	view     *viewport.Viewport
	viewSize image.Point

	tool         Tool
	style        state.Style
	font         state.Font
	pendingText  string
	pendingImage image.Image

	mode          Mode
	drawing       state.Shape
	selected      state.Shape
	selectedLayer *state.Layer
	gestureBefore []*state.Layer
	gestureDirty  bool
	last          image.Point // canvas space
	panLast       image.Point // screen space

	// RequestText is called when the Text tool is clicked with no pending
	// text. The collaborator asks the user and answers with PlaceText.
	RequestText func(x, y int)

	OnLayersChanged    func()
	OnSelectionChanged func(s state.Shape)
	OnViewportChanged  func()
	OnRedraw           func()
}

// Option configures a new Editor.
type Option func(*Editor)

// WithConfig applies tool, font and zoom settings from cfg.
func WithConfig(cfg *config.Config) Option {
	return func(e *Editor) {
		if t, err := ParseTool(cfg.Tools.Default); err == nil {
			e.tool = t
		}
		if c, err := config.ParseColor(cfg.Tools.Color); err == nil {
			e.style.Color = c
		}
		e.style.StrokeWidth = cfg.Tools.StrokeWidth
		e.style.Filled = cfg.Tools.Filled
		e.font = state.Font{
			Family: cfg.Font.Family,
			Size:   cfg.Font.Size,
			Bold:   cfg.Font.Bold,
			Italic: cfg.Font.Italic,
		}
		e.view = viewport.NewWithLimits(cfg.View.ZoomMin, cfg.View.ZoomMax, cfg.View.ZoomStep)
		e.viewSize = image.Pt(cfg.Canvas.Width, cfg.Canvas.Height)
	}
}

func WithTool(t Tool) Option {
	return func(e *Editor) { e.tool = t }
}

// New starts a session with a single empty "Layer 1".
func New(opts ...Option) *Editor {
	e := &Editor{
		history: state.NewHistory(),
		view:    viewport.New(),
		tool:    ToolLine,
		style:   state.DefaultStyle(),
		font:    state.DefaultFont(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.resetLayers()
	return e
}

func (e *Editor) resetLayers() {
	e.layers = []*state.Layer{state.NewLayer("Layer 1")}
	e.current = 0
}

// Reset discards the drawing and history and starts over with one layer.
func (e *Editor) Reset() {
	e.clearSelection()
	e.drawing = nil
	e.mode = ModeIdle
	e.gestureBefore = nil
	e.history.Clear()
	e.resetLayers()
	e.log().Info("[EDITOR] new drawing")
	e.layersChanged()
}

// Layers returns the live layer stack, back to front. Callers must not
// modify it; use SnapshotLayers for an independent copy.
func (e *Editor) Layers() []*state.Layer {
	return e.layers
}

// SnapshotLayers deep-copies the layer stack so it can be read off the
// input goroutine, for example by a background export.
func (e *Editor) SnapshotLayers() []*state.Layer {
	return state.CopyLayers(e.layers)
}

// Scene is what the renderer should draw right now.
func (e *Editor) Scene() render.Scene {
	return render.Scene{Layers: e.layers, InProgress: e.drawing}
}

// CurrentLayer returns the layer new shapes go into, or nil.
func (e *Editor) CurrentLayer() *state.Layer {
	if e.current < 0 || e.current >= len(e.layers) {
		return nil
	}
	return e.layers[e.current]
}

func (e *Editor) CurrentIndex() int        { return e.current }
func (e *Editor) Selected() state.Shape    { return e.selected }
func (e *Editor) Drawing() state.Shape     { return e.drawing }
func (e *Editor) Mode() Mode               { return e.mode }
func (e *Editor) Tool() Tool               { return e.tool }
func (e *Editor) Style() state.Style       { return e.style }
func (e *Editor) Font() state.Font         { return e.font }
func (e *Editor) PendingText() string      { return e.pendingText }
func (e *Editor) View() *viewport.Viewport { return e.view }
func (e *Editor) History() *state.History  { return e.history }
func (e *Editor) SetViewportSize(w, h int) { e.viewSize = image.Pt(w, h) }
func (e *Editor) CanUndo() bool            { return e.history.CanUndo() }
func (e *Editor) CanRedo() bool            { return e.history.CanRedo() }
func (e *Editor) log() *slog.Logger        { return logging.Logger() }

func (e *Editor) selectShape(s state.Shape, l *state.Layer) {
	if e.selected != nil && e.selected != s {
		e.selected.SetSelected(false)
	}
	e.selected = s
	e.selectedLayer = l
	s.SetSelected(true)
	e.selectionChanged()
}

func (e *Editor) clearSelection() {
	if e.selected == nil {
		return
	}
	e.selected.SetSelected(false)
	e.selected = nil
	e.selectedLayer = nil
	e.selectionChanged()
}

// ClearSelection deselects without touching the model.
func (e *Editor) ClearSelection() {
	e.clearSelection()
	e.redraw()
}

func (e *Editor) layersChanged() {
	if e.OnLayersChanged != nil {
		e.OnLayersChanged()
	}
	e.redraw()
}

func (e *Editor) selectionChanged() {
	if e.OnSelectionChanged != nil {
		e.OnSelectionChanged(e.selected)
	}
}

func (e *Editor) viewportChanged() {
	if e.OnViewportChanged != nil {
		e.OnViewportChanged()
	}
	e.redraw()
}

func (e *Editor) redraw() {
	if e.OnRedraw != nil {
		e.OnRedraw()
	}
}

// Undo restores the state before the last committed edit. It does nothing
// while a gesture is in progress or when there is nothing to undo.
func (e *Editor) Undo() {
	e.travel(e.history.Undo, "undo")
}

// Redo re-applies the last undone edit.
func (e *Editor) Redo() {
	e.travel(e.history.Redo, "redo")
}

func (e *Editor) travel(step func([]*state.Layer) ([]*state.Layer, bool), what string) {
	if e.mode != ModeIdle {
		return
	}
	layers, ok := step(e.layers)
	if !ok {
		return
	}
	e.clearSelection()
	e.layers = layers
	e.current = min(e.current, len(e.layers)-1)
	e.log().Debug("[EDITOR] history", "op", what, "layers", len(e.layers))
	e.layersChanged()
}

// InsertShape commits a ready-made shape, such as an imported image, to
// the current layer as one undoable edit.
func (e *Editor) InsertShape(s state.Shape) error {
	l := e.CurrentLayer()
	if l == nil {
		return ErrNoLayer
	}
	e.history.Snapshot(e.layers)
	l.AddShape(s)
	e.log().Debug("[EDITOR] inserted", "kind", s.Kind(), "layer", l.Name)
	e.layersChanged()
	return nil
}
