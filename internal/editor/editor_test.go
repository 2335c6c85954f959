package editor

import (
	"bytes"
	"image"
	"image/color"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalDraw/internal/config"
	"LocalDraw/internal/logging"
	"LocalDraw/internal/state"
)

func press(e *Editor, x, y int, mods Modifier) {
	e.PointerDown(PointerEvent{X: x, Y: y, Modifiers: mods})
}

func drag(e *Editor, x0, y0, x1, y1 int) {
	press(e, x0, y0, 0)
	e.PointerDrag(PointerEvent{X: x1, Y: y1})
	e.PointerUp(PointerEvent{X: x1, Y: y1})
}

func shapesOf(e *Editor) []state.Shape {
	return e.CurrentLayer().Shapes()
}

func TestNewEditorHasOneLayer(t *testing.T) {
	e := New()
	require.Len(t, e.Layers(), 1)
	assert.Equal(t, "Layer 1", e.Layers()[0].Name)
	assert.Equal(t, 0, e.CurrentIndex())
	assert.Equal(t, ToolLine, e.Tool())
	assert.Equal(t, ModeIdle, e.Mode())
	assert.False(t, e.CanUndo())
}

func TestRectangleUndoRedo(t *testing.T) {
	e := New(WithTool(ToolRectangle))
	drag(e, 10, 10, 50, 50)

	require.Len(t, shapesOf(e), 1)
	orig := shapesOf(e)[0]
	assert.Equal(t, state.KindRectangle, orig.Kind())
	assert.Equal(t, state.Rect{Left: 10, Top: 10, Right: 50, Bottom: 50}, orig.Bounds())
	assert.Nil(t, e.Drawing())

	e.Undo()
	assert.Empty(t, shapesOf(e))

	e.Redo()
	require.Len(t, shapesOf(e), 1)
	got := shapesOf(e)[0]
	assert.Equal(t, orig.ID(), got.ID())
	assert.Equal(t, orig.Bounds(), got.Bounds())
	assert.Equal(t, orig.Style(), got.Style())
}

func TestNewEditClearsRedo(t *testing.T) {
	e := New(WithTool(ToolLine))
	drag(e, 0, 0, 10, 10)
	e.Undo()
	require.True(t, e.CanRedo())

	drag(e, 5, 5, 20, 20)
	assert.False(t, e.CanRedo())
	e.Redo()
	assert.Len(t, shapesOf(e), 1)
}

func TestInProgressShapeIsNotInLayer(t *testing.T) {
	e := New(WithTool(ToolCircle))
	press(e, 10, 10, 0)
	e.PointerDrag(PointerEvent{X: 40, Y: 30})

	assert.Equal(t, ModeDrawing, e.Mode())
	require.NotNil(t, e.Drawing())
	assert.Empty(t, shapesOf(e))
	assert.Equal(t, e.Drawing(), e.Scene().InProgress)
}

func TestUndoIgnoredMidGesture(t *testing.T) {
	e := New(WithTool(ToolLine))
	drag(e, 0, 0, 10, 10)
	press(e, 20, 20, 0)
	e.Undo()
	assert.Len(t, shapesOf(e), 1)
	e.PointerUp(PointerEvent{X: 20, Y: 20})
	assert.Len(t, shapesOf(e), 2)
}

func TestMoveIsOneUndoStep(t *testing.T) {
	e := New(WithTool(ToolRectangle))
	drag(e, 10, 10, 50, 50)
	e.SetTool(ToolSelect)

	press(e, 30, 30, 0)
	assert.Equal(t, ModeMoving, e.Mode())
	e.PointerDrag(PointerEvent{X: 35, Y: 32})
	e.PointerDrag(PointerEvent{X: 40, Y: 35})
	e.PointerUp(PointerEvent{X: 40, Y: 35})

	s := shapesOf(e)[0]
	assert.Equal(t, state.Rect{Left: 20, Top: 15, Right: 60, Bottom: 55}, s.Bounds())
	assert.True(t, s.Selected())

	e.Undo()
	assert.Equal(t, state.Rect{Left: 10, Top: 10, Right: 50, Bottom: 50}, shapesOf(e)[0].Bounds())
	assert.Nil(t, e.Selected())
	e.Undo()
	assert.Empty(t, shapesOf(e))
}

func TestClickWithoutDragRecordsNothing(t *testing.T) {
	e := New(WithTool(ToolRectangle))
	drag(e, 10, 10, 50, 50)
	e.SetTool(ToolSelect)

	press(e, 30, 30, 0)
	e.PointerUp(PointerEvent{X: 30, Y: 30})
	require.NotNil(t, e.Selected())

	e.Undo()
	assert.Empty(t, shapesOf(e), "the only undo step is the draw")
}

func TestResizeFromCorner(t *testing.T) {
	e := New(WithTool(ToolRectangle))
	drag(e, 10, 10, 50, 50)
	e.SetTool(ToolSelect)

	press(e, 50, 50, 0)
	assert.Equal(t, ModeResizing, e.Mode())
	e.PointerDrag(PointerEvent{X: 70, Y: 80})
	e.PointerUp(PointerEvent{X: 70, Y: 80})

	assert.Equal(t, state.Rect{Left: 10, Top: 10, Right: 70, Bottom: 80}, shapesOf(e)[0].Bounds())
	e.Undo()
	assert.Equal(t, state.Rect{Left: 10, Top: 10, Right: 50, Bottom: 50}, shapesOf(e)[0].Bounds())
}

func TestSelectMissClearsAndDrawsNothing(t *testing.T) {
	e := New(WithTool(ToolRectangle))
	drag(e, 10, 10, 50, 50)
	e.SetTool(ToolSelect)
	press(e, 30, 30, 0)
	e.PointerUp(PointerEvent{X: 30, Y: 30})
	require.NotNil(t, e.Selected())

	drag(e, 200, 200, 250, 250)
	assert.Nil(t, e.Selected())
	assert.Len(t, shapesOf(e), 1)
	assert.Equal(t, ModeIdle, e.Mode())
}

func TestControlSelectsWithDrawingTool(t *testing.T) {
	e := New(WithTool(ToolRectangle))
	drag(e, 10, 10, 50, 50)

	press(e, 30, 30, ModControl)
	assert.Equal(t, ModeMoving, e.Mode())
	e.PointerUp(PointerEvent{X: 30, Y: 30})
	assert.Len(t, shapesOf(e), 1)

	press(e, 200, 200, ModControl)
	assert.Equal(t, ModeDrawing, e.Mode(), "a miss falls through to the tool")
}

func TestDrawingClearsSelection(t *testing.T) {
	e := New(WithTool(ToolRectangle))
	drag(e, 10, 10, 50, 50)
	shape := shapesOf(e)[0]

	press(e, 30, 30, ModControl)
	e.PointerUp(PointerEvent{X: 30, Y: 30})
	require.Equal(t, shape, e.Selected())
	require.True(t, shape.Selected())

	press(e, 200, 200, 0)
	assert.Equal(t, ModeDrawing, e.Mode())
	assert.Nil(t, e.Selected())
	assert.False(t, shape.Selected())
}

func TestPickPrefersLaterLayers(t *testing.T) {
	e := New(WithTool(ToolRectangle))
	drag(e, 10, 10, 50, 50)
	bottom := shapesOf(e)[0]
	e.AddLayer()
	drag(e, 20, 20, 60, 60)
	top := shapesOf(e)[0]
	require.NoError(t, e.SetCurrentLayer(0))

	e.SetTool(ToolSelect)
	press(e, 30, 30, 0)
	e.PointerUp(PointerEvent{X: 30, Y: 30})
	assert.Equal(t, top.ID(), e.Selected().ID())
	assert.Equal(t, 1, e.CurrentIndex())

	require.NoError(t, e.SetLayerVisible(1, false))
	assert.Nil(t, e.Selected())
	press(e, 30, 30, 0)
	e.PointerUp(PointerEvent{X: 30, Y: 30})
	assert.Equal(t, bottom.ID(), e.Selected().ID())
	assert.Equal(t, 0, e.CurrentIndex())
}

func TestPanIsNotUndoable(t *testing.T) {
	e := New(WithTool(ToolLine))
	e.PointerDown(PointerEvent{X: 0, Y: 0, Button: ButtonSecondary})
	assert.Equal(t, ModePanning, e.Mode())
	e.PointerDrag(PointerEvent{X: 30, Y: 20})
	e.PointerUp(PointerEvent{X: 30, Y: 20})

	x, y := e.View().Pan()
	assert.Equal(t, 30, x)
	assert.Equal(t, 20, y)
	assert.Empty(t, shapesOf(e))
	assert.False(t, e.CanUndo())
}

func TestCtrlShiftPans(t *testing.T) {
	e := New(WithTool(ToolLine))
	press(e, 10, 10, ModControl|ModShift)
	assert.Equal(t, ModePanning, e.Mode())
}

func TestDrawingUnderZoomUsesCanvasCoordinates(t *testing.T) {
	e := New(WithTool(ToolLine))
	e.View().SetZoom(2)
	e.View().SetPan(10, 0)
	drag(e, 30, 40, 110, 80)

	start, end := shapesOf(e)[0].Anchors()
	assert.Equal(t, image.Pt(10, 20), start)
	assert.Equal(t, image.Pt(50, 40), end)
}

func TestTextToolAsksThenReusesText(t *testing.T) {
	e := New(WithTool(ToolText))
	var asked []image.Point
	e.RequestText = func(x, y int) { asked = append(asked, image.Pt(x, y)) }

	press(e, 40, 60, 0)
	e.PointerUp(PointerEvent{X: 40, Y: 60})
	require.Equal(t, []image.Point{image.Pt(40, 60)}, asked)
	assert.Empty(t, shapesOf(e))

	e.PlaceText(40, 60, "hello")
	require.Len(t, shapesOf(e), 1)
	txt, ok := shapesOf(e)[0].(*state.Text)
	require.True(t, ok)
	assert.Equal(t, "hello", txt.Content())

	press(e, 100, 100, 0)
	e.PointerUp(PointerEvent{X: 100, Y: 100})
	assert.Len(t, asked, 1)
	assert.Len(t, shapesOf(e), 2)
	assert.Equal(t, ModeIdle, e.Mode())
}

func TestPlaceEmptyTextIsIgnored(t *testing.T) {
	e := New()
	e.PlaceText(0, 0, "")
	assert.Empty(t, shapesOf(e))
	assert.False(t, e.CanUndo())
}

func TestImageToolNeedsPendingImage(t *testing.T) {
	e := New(WithTool(ToolImage))
	drag(e, 0, 0, 20, 20)
	assert.Empty(t, shapesOf(e))

	e.SetPendingImage(image.NewNRGBA(image.Rect(0, 0, 4, 4)))
	assert.Equal(t, ToolImage, e.Tool())
	drag(e, 10, 10, 40, 30)
	require.Len(t, shapesOf(e), 1)
	w, h := shapesOf(e)[0].(*state.Image).Size()
	assert.Equal(t, 30, w)
	assert.Equal(t, 20, h)
}

func TestScrollZoomKeepsAnchor(t *testing.T) {
	e := New()
	e.Scroll(ScrollEvent{X: 100, Y: 100, DY: 1, Modifiers: ModControl})
	assert.InDelta(t, 1.1, e.View().Zoom(), 1e-9)
	x, y := e.View().CanvasToScreen(100, 100)
	assert.Equal(t, 100, x)
	assert.Equal(t, 100, y)

	e.Scroll(ScrollEvent{X: 100, Y: 100, DY: -1, Modifiers: ModControl})
	assert.InDelta(t, 1.0, e.View().Zoom(), 1e-9)
}

func TestScrollWithoutControlPans(t *testing.T) {
	e := New()
	e.Scroll(ScrollEvent{DX: -5, DY: 12})
	x, y := e.View().Pan()
	assert.Equal(t, -5, x)
	assert.Equal(t, 12, y)
	assert.InDelta(t, 1.0, e.View().Zoom(), 1e-9)
}

func TestKeyboardShortcuts(t *testing.T) {
	e := New(WithTool(ToolLine))
	e.SetViewportSize(200, 100)
	drag(e, 0, 0, 10, 10)

	e.KeyDown(KeyEvent{Key: KeyZ, Modifiers: ModControl})
	assert.Empty(t, shapesOf(e))
	e.KeyDown(KeyEvent{Key: KeyZ, Modifiers: ModControl | ModShift})
	assert.Len(t, shapesOf(e), 1)
	e.KeyDown(KeyEvent{Key: KeyZ, Modifiers: ModControl})
	e.KeyDown(KeyEvent{Key: KeyY, Modifiers: ModControl})
	assert.Len(t, shapesOf(e), 1)

	e.KeyDown(KeyEvent{Key: KeyEqual, Modifiers: ModControl})
	assert.InDelta(t, 1.1, e.View().Zoom(), 1e-9)
	x, y := e.View().CanvasToScreen(100, 50)
	assert.Equal(t, image.Pt(100, 50), image.Pt(x, y))
	e.KeyDown(KeyEvent{Key: KeyMinus, Modifiers: ModControl})
	e.KeyDown(KeyEvent{Key: KeyMinus, Modifiers: ModControl})
	assert.InDelta(t, 0.9, e.View().Zoom(), 1e-9)
	e.KeyDown(KeyEvent{Key: Key0, Modifiers: ModControl})
	assert.True(t, e.View().IsIdentity())

	e.KeyDown(KeyEvent{Key: KeyEqual})
	assert.True(t, e.View().IsIdentity(), "zoom needs Ctrl")
}

func TestDeleteSelected(t *testing.T) {
	e := New(WithTool(ToolRectangle))
	drag(e, 10, 10, 50, 50)
	e.SetTool(ToolSelect)
	press(e, 30, 30, 0)
	e.PointerUp(PointerEvent{X: 30, Y: 30})

	e.KeyDown(KeyEvent{Key: KeyDelete})
	assert.Empty(t, shapesOf(e))
	assert.Nil(t, e.Selected())

	e.Undo()
	assert.Len(t, shapesOf(e), 1)
}

func TestDeleteSoleLayerRejected(t *testing.T) {
	e := New()
	err := e.DeleteLayer(0)
	assert.ErrorIs(t, err, ErrLastLayer)
	assert.Len(t, e.Layers(), 1)
	assert.False(t, e.CanUndo())

	assert.ErrorIs(t, e.DeleteLayer(3), ErrLayerIndex)
}

func TestLayerLifecycle(t *testing.T) {
	e := New()
	e.AddLayer()
	e.AddLayer()
	require.Len(t, e.Layers(), 3)
	assert.Equal(t, "Layer 3", e.Layers()[2].Name)
	assert.Equal(t, 2, e.CurrentIndex())

	require.NoError(t, e.DeleteLayer(2))
	assert.Len(t, e.Layers(), 2)
	assert.Equal(t, 1, e.CurrentIndex())

	require.NoError(t, e.LowerLayer(1))
	assert.Equal(t, "Layer 2", e.Layers()[0].Name)
	assert.Equal(t, 0, e.CurrentIndex(), "current follows the moved layer")

	e.Undo()
	assert.Equal(t, "Layer 1", e.Layers()[0].Name)
	e.Undo()
	assert.Len(t, e.Layers(), 3)

	require.NoError(t, e.RenameLayer(0, "Background"))
	assert.Equal(t, "Background", e.Layers()[0].Name)
	require.NoError(t, e.SetCurrentLayer(-1))
	assert.Nil(t, e.CurrentLayer())
	assert.ErrorIs(t, e.DeleteCurrentLayer(), ErrNoLayer)
}

func TestDeleteLayerKeepsCurrent(t *testing.T) {
	tests := []struct {
		name    string
		current int
		del     int
		want    string
	}{
		{"below current", 2, 0, "Layer 3"},
		{"above current", 0, 2, "Layer 1"},
		{"current in the middle", 1, 1, "Layer 3"},
		{"current on top", 2, 2, "Layer 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New()
			e.AddLayer()
			e.AddLayer()
			require.NoError(t, e.SetCurrentLayer(tt.current))

			require.NoError(t, e.DeleteLayer(tt.del))
			require.NotNil(t, e.CurrentLayer())
			assert.Equal(t, tt.want, e.CurrentLayer().Name)
		})
	}

	e := New()
	e.AddLayer()
	require.NoError(t, e.SetCurrentLayer(-1))
	require.NoError(t, e.DeleteLayer(0))
	assert.Equal(t, -1, e.CurrentIndex(), "no current layer stays none")
}

func TestNoCurrentLayerDrawsNothing(t *testing.T) {
	e := New(WithTool(ToolRectangle))
	require.NoError(t, e.SetCurrentLayer(-1))
	drag(e, 10, 10, 50, 50)
	assert.Equal(t, ModeIdle, e.Mode())
	assert.Empty(t, e.Layers()[0].Shapes())
	assert.ErrorIs(t, e.InsertShape(state.NewLine(state.DefaultStyle(), 0, 0)), ErrNoLayer)
}

func TestRestackSelected(t *testing.T) {
	e := New(WithTool(ToolRectangle))
	drag(e, 10, 10, 50, 50)
	drag(e, 100, 100, 150, 150)
	first := shapesOf(e)[0].ID()

	e.SetTool(ToolSelect)
	press(e, 30, 30, 0)
	e.PointerUp(PointerEvent{X: 30, Y: 30})

	e.SendToBack()
	e.BringToFront()
	assert.Equal(t, first, shapesOf(e)[1].ID())

	e.Undo()
	assert.Equal(t, first, shapesOf(e)[0].ID())
	e.Undo()
	assert.Len(t, shapesOf(e), 1, "a restack that changed nothing is not recorded")
}

func TestStrokeWidthRestylesSelection(t *testing.T) {
	e := New(WithTool(ToolLine))
	drag(e, 0, 0, 40, 40)
	e.SetTool(ToolSelect)
	press(e, 20, 20, 0)
	e.PointerUp(PointerEvent{X: 20, Y: 20})

	e.SetStrokeWidth(6)
	assert.Equal(t, float32(6), shapesOf(e)[0].Style().StrokeWidth)
	assert.Equal(t, float32(6), e.Style().StrokeWidth)

	e.SetTool(ToolLine)
	assert.Nil(t, e.Selected())
	assert.False(t, shapesOf(e)[0].Selected())
}

func TestStyleAppliesToNewShapes(t *testing.T) {
	e := New(WithTool(ToolRectangle))
	e.SetColor(color.RGBA{G: 255, A: 255})
	e.SetFilled(true)
	drag(e, 0, 0, 10, 10)

	st := shapesOf(e)[0].Style()
	assert.Equal(t, color.NRGBA{G: 255, A: 255}, st.Color)
	assert.True(t, st.Filled)
}

func TestWithConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Tools.Default = "circle"
	cfg.Tools.Color = "#ff0000"
	cfg.Tools.StrokeWidth = 4
	cfg.View.ZoomMax = 2

	e := New(WithConfig(cfg))
	assert.Equal(t, ToolCircle, e.Tool())
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, e.Style().Color)
	assert.Equal(t, float32(4), e.Style().StrokeWidth)
	_, hi := e.View().Limits()
	assert.Equal(t, 2.0, hi)
}

func TestNotifications(t *testing.T) {
	e := New(WithTool(ToolRectangle))
	var layers, redraws, views int
	var selection []state.Shape
	e.OnLayersChanged = func() { layers++ }
	e.OnRedraw = func() { redraws++ }
	e.OnViewportChanged = func() { views++ }
	e.OnSelectionChanged = func(s state.Shape) { selection = append(selection, s) }

	drag(e, 10, 10, 50, 50)
	assert.Equal(t, 1, layers)
	assert.Positive(t, redraws)

	e.SetTool(ToolSelect)
	press(e, 30, 30, 0)
	e.PointerUp(PointerEvent{X: 30, Y: 30})
	require.NotEmpty(t, selection)
	assert.NotNil(t, selection[len(selection)-1])

	e.ClearSelection()
	assert.Nil(t, selection[len(selection)-1])

	e.ZoomIn()
	assert.Equal(t, 1, views)
}

func TestResetStartsOver(t *testing.T) {
	e := New(WithTool(ToolLine))
	drag(e, 0, 0, 10, 10)
	e.AddLayer()
	e.Reset()

	require.Len(t, e.Layers(), 1)
	assert.Equal(t, "Layer 1", e.Layers()[0].Name)
	assert.Empty(t, shapesOf(e))
	assert.False(t, e.CanUndo())
}

func TestHistoryStepsLogOperation(t *testing.T) {
	var buf bytes.Buffer
	logging.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { logging.SetLogger(nil) })

	e := New(WithTool(ToolRectangle))
	drag(e, 10, 10, 50, 50)
	e.Undo()
	e.Redo()

	out := buf.String()
	assert.Contains(t, out, `msg="[EDITOR] history" op=undo layers=1`)
	assert.Contains(t, out, `msg="[EDITOR] history" op=redo layers=1`)
}
