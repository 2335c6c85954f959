package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"LocalDraw/internal/editor"
)

// LayerPanel lists the layers topmost first, with visibility toggles and
// buttons for the layer commands.
type LayerPanel struct {
	List *widget.List

	editor  *editor.Editor
	win     fyne.Window
	onError func(error)
	syncing bool
}

func NewLayerPanel(e *editor.Editor, win fyne.Window, onError func(error)) *LayerPanel {
	p := &LayerPanel{editor: e, win: win, onError: onError}
	p.List = widget.NewList(
		func() int { return len(e.Layers()) },
		func() fyne.CanvasObject {
			return container.NewHBox(widget.NewCheck("", nil), widget.NewLabel("Layer"))
		},
		p.updateRow,
	)
	p.List.OnSelected = func(row widget.ListItemID) {
		if p.syncing {
			return
		}
		p.report(e.SetCurrentLayer(p.index(row)))
	}
	return p
}

// index converts a list row to a stack index; row 0 is the top layer.
func (p *LayerPanel) index(row widget.ListItemID) int {
	return len(p.editor.Layers()) - 1 - row
}

func (p *LayerPanel) updateRow(row widget.ListItemID, o fyne.CanvasObject) {
	layers := p.editor.Layers()
	i := p.index(row)
	if i < 0 || i >= len(layers) {
		return
	}
	box := o.(*fyne.Container)
	check := box.Objects[0].(*widget.Check)
	label := box.Objects[1].(*widget.Label)

	check.OnChanged = nil
	check.SetChecked(layers[i].Visible)
	check.OnChanged = func(on bool) { p.report(p.editor.SetLayerVisible(i, on)) }
	label.SetText(layers[i].Name)
}

func (p *LayerPanel) report(err error) {
	if err != nil && p.onError != nil {
		p.onError(err)
	}
}

// Refresh redraws the rows and moves the highlight to the current layer.
func (p *LayerPanel) Refresh() {
	p.syncing = true
	defer func() { p.syncing = false }()
	p.List.Refresh()
	if cur := p.editor.CurrentIndex(); cur >= 0 {
		p.List.Select(len(p.editor.Layers()) - 1 - cur)
	} else {
		p.List.UnselectAll()
	}
}

func (p *LayerPanel) rename() {
	l := p.editor.CurrentLayer()
	if l == nil {
		return
	}
	i := p.editor.CurrentIndex()
	entry := widget.NewEntry()
	entry.SetText(l.Name)
	dialog.ShowForm("Rename layer", "Rename", "Cancel",
		[]*widget.FormItem{widget.NewFormItem("Name", entry)},
		func(ok bool) {
			if ok {
				p.report(p.editor.RenameLayer(i, entry.Text))
			}
		}, p.win)
}

// Object is the list with its command buttons underneath.
func (p *LayerPanel) Object() fyne.CanvasObject {
	e := p.editor
	buttons := container.NewHBox(
		widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() { e.AddLayer() }),
		widget.NewButtonWithIcon("", theme.DeleteIcon(), func() { p.report(e.DeleteCurrentLayer()) }),
		widget.NewButtonWithIcon("", theme.MoveUpIcon(), func() { p.report(e.RaiseLayer(e.CurrentIndex())) }),
		widget.NewButtonWithIcon("", theme.MoveDownIcon(), func() { p.report(e.LowerLayer(e.CurrentIndex())) }),
		widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), p.rename),
	)
	return container.NewBorder(widget.NewLabel("Layers"), buttons, nil, nil, p.List)
}
