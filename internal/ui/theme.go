package ui

import (
	"fyne.io/fyne/v2"

	"LocalDraw/internal/state"
)

// drawingTheme renders text in the bundled Go fonts so that text on the
// board matches its measured bounds and the exported files.
type drawingTheme struct {
	fyne.Theme
	fonts map[fyne.TextStyle]fyne.Resource
}

func newDrawingTheme(base fyne.Theme) *drawingTheme {
	t := &drawingTheme{Theme: base, fonts: make(map[fyne.TextStyle]fyne.Resource)}
	for name, f := range map[string]state.Font{
		"GoRegular.ttf":    {},
		"GoBold.ttf":       {Bold: true},
		"GoItalic.ttf":     {Italic: true},
		"GoBoldItalic.ttf": {Bold: true, Italic: true},
		"GoMono.ttf":       {Family: "mono"},
	} {
		style := fyne.TextStyle{Bold: f.Bold, Italic: f.Italic, Monospace: f.Monospace()}
		t.fonts[style] = fyne.NewStaticResource(name, f.TTF())
	}
	return t
}

func (t *drawingTheme) Font(s fyne.TextStyle) fyne.Resource {
	if s.Monospace {
		return t.fonts[fyne.TextStyle{Monospace: true}]
	}
	if r, ok := t.fonts[fyne.TextStyle{Bold: s.Bold, Italic: s.Italic}]; ok && !s.Symbol {
		return r
	}
	return t.Theme.Font(s)
}
