package ui

import (
	"fmt"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"LocalDraw/internal/config"
	"LocalDraw/internal/editor"
	"LocalDraw/internal/export"
	"LocalDraw/internal/logging"
	"LocalDraw/internal/state"
)

// Window is the editor's main window and the collaborators around the
// drawing core: menus, toolbar, layer panel, dialogs and file I/O.
type Window struct {
	Editor  *editor.Editor
	Board   *BoardWidget
	Toolbar *Toolbar
	Layers  *LayerPanel
	Status  *widget.Label

	cfg *config.Config
	win fyne.Window
}

// RunApp opens the main window and blocks until it is closed.
func RunApp(cfg *config.Config) {
	a := app.NewWithID("io.localdraw")
	w := NewWindow(a, cfg)
	w.win.ShowAndRun()
}

func NewWindow(a fyne.App, cfg *config.Config) *Window {
	w := &Window{
		Editor: editor.New(editor.WithConfig(cfg)),
		Status: widget.NewLabel("Ready"),
		cfg:    cfg,
		win:    a.NewWindow("LocalDraw"),
	}
	a.Settings().SetTheme(newDrawingTheme(theme.DefaultTheme()))
	w.win.Resize(fyne.NewSize(float32(cfg.Canvas.Width), float32(cfg.Canvas.Height)))

	w.Board = NewBoardWidget(w.Editor, cfg.Canvas.Checkerboard)
	w.Toolbar = NewToolbar(w.Editor, w.win)
	w.Layers = NewLayerPanel(w.Editor, w.win, w.showError)

	e := w.Editor
	e.OnRedraw = w.Board.Refresh
	e.OnLayersChanged = w.Layers.Refresh
	e.OnViewportChanged = w.showZoom
	e.OnSelectionChanged = w.showSelection
	e.RequestText = w.askText

	w.win.SetMainMenu(w.menu())
	w.win.SetContent(container.NewBorder(
		w.Toolbar.Object(), w.Status, nil,
		container.NewGridWrap(fyne.NewSize(200, 300), w.Layers.Object()),
		w.Board,
	))
	w.Layers.Refresh()
	return w
}

func (w *Window) SetStatus(text string) {
	w.Status.SetText(text)
}

func (w *Window) showError(err error) {
	logging.Logger().Warn("[UI] operation failed", "err", err)
	w.SetStatus(err.Error())
	dialog.ShowError(err, w.win)
}

func (w *Window) showZoom() {
	w.SetStatus(fmt.Sprintf("Zoom %.0f%%", w.Editor.View().Zoom()*100))
}

func (w *Window) showSelection(s state.Shape) {
	if s == nil {
		w.SetStatus("Ready")
		return
	}
	b := s.Bounds()
	w.SetStatus(fmt.Sprintf("Selected %s at %d,%d (%dx%d)", s.Kind(), b.Left, b.Top, b.Width(), b.Height()))
}

func (w *Window) askText(x, y int) {
	entry := widget.NewEntry()
	dialog.ShowForm("Add text", "Place", "Cancel",
		[]*widget.FormItem{widget.NewFormItem("Text", entry)},
		func(ok bool) {
			if ok {
				w.Editor.PlaceText(x, y, entry.Text)
			}
		}, w.win)
}

func shortcut(k fyne.KeyName, mods fyne.KeyModifier) fyne.Shortcut {
	return &desktop.CustomShortcut{KeyName: k, Modifier: mods}
}

// item builds a menu entry and also binds its shortcut on the canvas.
func (w *Window) item(label string, sc fyne.Shortcut, fn func()) *fyne.MenuItem {
	it := fyne.NewMenuItem(label, fn)
	it.Shortcut = sc
	w.win.Canvas().AddShortcut(sc, func(fyne.Shortcut) { fn() })
	return it
}

func (w *Window) menu() *fyne.MainMenu {
	e := w.Editor
	ctrl := fyne.KeyModifierShortcutDefault
	return fyne.NewMainMenu(
		fyne.NewMenu("File",
			w.item("New", shortcut(fyne.KeyN, ctrl), w.newDrawing),
			w.item("Insert Image…", shortcut(fyne.KeyO, ctrl), w.insertImage),
			fyne.NewMenuItemSeparator(),
			w.item("Save PNG…", shortcut(fyne.KeyS, ctrl), w.savePNG),
			fyne.NewMenuItem("Export PDF…", w.exportPDF),
		),
		fyne.NewMenu("Edit",
			w.item("Undo", shortcut(fyne.KeyZ, ctrl), e.Undo),
			w.item("Redo", shortcut(fyne.KeyY, ctrl), e.Redo),
			fyne.NewMenuItemSeparator(),
			fyne.NewMenuItem("Delete", e.DeleteSelected),
			fyne.NewMenuItem("Bring Forward", e.BringForward),
			fyne.NewMenuItem("Send Backward", e.SendBackward),
			fyne.NewMenuItem("Bring to Front", e.BringToFront),
			fyne.NewMenuItem("Send to Back", e.SendToBack),
		),
		fyne.NewMenu("View",
			w.item("Zoom In", shortcut(fyne.KeyEqual, ctrl), e.ZoomIn),
			w.item("Zoom Out", shortcut(fyne.KeyMinus, ctrl), e.ZoomOut),
			w.item("Actual Size", shortcut(fyne.Key0, ctrl), e.ResetView),
		),
		fyne.NewMenu("Layer",
			fyne.NewMenuItem("Add Layer", func() { e.AddLayer() }),
			fyne.NewMenuItem("Delete Layer", func() {
				if err := e.DeleteCurrentLayer(); err != nil {
					w.showError(err)
				}
			}),
			fyne.NewMenuItem("Rename Layer…", w.Layers.rename),
		),
	)
}

func (w *Window) newDrawing() {
	dialog.ShowConfirm("New drawing", "Discard the current drawing?", func(ok bool) {
		if !ok {
			return
		}
		w.Editor.Reset()
		w.Toolbar.Sync()
		w.SetStatus("New drawing")
	}, w.win)
}

// insertImage decodes a raster file and hands it to the Image tool, which
// places it by dragging.
func (w *Window) insertImage() {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			w.showError(err)
			return
		}
		if r == nil {
			return
		}
		defer r.Close()
		img, err := export.DecodeRaster(r)
		if err != nil {
			w.showError(fmt.Errorf("open %s: %w", r.URI().Name(), err))
			return
		}
		w.Editor.SetPendingImage(img)
		w.Toolbar.Sync()
		w.SetStatus(fmt.Sprintf("Drag to place %s", r.URI().Name()))
	}, w.win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}))
	d.Show()
}

func (w *Window) savePNG() {
	w.saveAs("drawing.png", ".png", export.WritePNG)
}

func (w *Window) exportPDF() {
	w.saveAs("drawing.pdf", ".pdf", export.WritePDF)
}

type writeFunc func(io.Writer, []*state.Layer, int, int) error

// saveAs asks for a destination, then renders a snapshot of the layers on
// a background goroutine so the window stays responsive.
func (w *Window) saveAs(name, ext string, write writeFunc) {
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			w.showError(err)
			return
		}
		if wc == nil {
			return
		}
		layers := w.Editor.SnapshotLayers()
		width, height := export.CanvasSize(layers, w.cfg.Canvas.Width, w.cfg.Canvas.Height)
		w.SetStatus("Saving…")
		go func() {
			err := write(wc, layers, width, height)
			if cerr := wc.Close(); err == nil {
				err = cerr
			}
			fyne.Do(func() {
				if err != nil {
					w.showError(fmt.Errorf("save %s: %w", wc.URI().Name(), err))
					return
				}
				w.SetStatus(fmt.Sprintf("Saved %s (%dx%d)", wc.URI().Name(), width, height))
			})
		}()
	}, w.win)
	d.SetFileName(name)
	d.SetFilter(storage.NewExtensionFileFilter([]string{ext}))
	d.Show()
}
