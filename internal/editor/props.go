package editor

import (
	"image"
	"image/color"

	"LocalDraw/internal/state"
)

// SetTool switches the active tool. Leaving the Select tool drops the
// selection.
func (e *Editor) SetTool(t Tool) {
	if e.tool == t {
		return
	}
	if e.tool == ToolSelect {
		e.clearSelection()
	}
	e.tool = t
	e.log().Debug("[EDITOR] tool", "tool", t)
	e.redraw()
}

// SetColor sets the colour of shapes drawn from now on.
func (e *Editor) SetColor(c color.Color) {
	e.style.Color = color.NRGBAModel.Convert(c).(color.NRGBA)
}

// SetStrokeWidth sets the width for new shapes and also restyles the
// selected shape, if any.
func (e *Editor) SetStrokeWidth(w float32) {
	e.style.StrokeWidth = max(w, 0)
	if e.selected != nil {
		e.selected.SetStrokeWidth(e.style.StrokeWidth)
		e.redraw()
	}
}

func (e *Editor) SetFilled(filled bool) { e.style.Filled = filled }
func (e *Editor) SetFont(f state.Font)  { e.font = f }

// SetPendingText stores text for the next Text-tool click and switches to
// the Text tool.
func (e *Editor) SetPendingText(text string) {
	e.pendingText = text
	if text != "" {
		e.SetTool(ToolText)
	}
}

// SetPendingImage stores a raster for the Image tool to place by dragging.
func (e *Editor) SetPendingImage(img image.Image) {
	e.pendingImage = img
	if img != nil {
		e.SetTool(ToolImage)
	}
}

func (e *Editor) PendingImage() image.Image { return e.pendingImage }
