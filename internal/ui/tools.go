package ui

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"LocalDraw/internal/editor"
)

var palette = []color.Color{
	color.Black,
	color.White,
	color.NRGBA{R: 255, A: 255},
	color.NRGBA{G: 255, A: 255},
	color.NRGBA{B: 255, A: 255},
	color.NRGBA{R: 255, G: 255, A: 255},
}

// colorSwatch is a tappable square of one colour.
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// Toolbar holds the tool and property controls. Its widgets are exported
// so the window can keep them in step with the editor.
type Toolbar struct {
	Tools   *widget.RadioGroup
	Current *canvas.Rectangle
	Stroke  *widget.Slider
	Filled  *widget.Check
	Font    *widget.Select
	Text    *widget.Entry
	Picker  *widget.Button

	editor *editor.Editor
}

var fontSizes = []string{"8", "10", "12", "14", "18", "24", "36", "48", "72"}

func NewToolbar(e *editor.Editor, win fyne.Window) *Toolbar {
	t := &Toolbar{editor: e}

	names := make([]string, 0, len(editor.Tools()))
	for _, tool := range editor.Tools() {
		names = append(names, tool.String())
	}
	t.Tools = widget.NewRadioGroup(names, func(name string) {
		if tool, err := editor.ParseTool(name); err == nil {
			e.SetTool(tool)
		}
	})
	t.Tools.Horizontal = true
	t.Tools.Required = true

	t.Current = canvas.NewRectangle(e.Style().Color)
	t.Current.SetMinSize(fyne.NewSize(24, 24))
	t.Current.StrokeColor = color.Gray{Y: 100}
	t.Current.StrokeWidth = 1

	t.Stroke = widget.NewSlider(0, 50)
	t.Stroke.Step = 0.5
	t.Stroke.OnChanged = func(v float64) { e.SetStrokeWidth(float32(v)) }

	t.Filled = widget.NewCheck("Fill", e.SetFilled)

	t.Font = widget.NewSelect(fontSizes, func(size string) {
		v, err := strconv.ParseFloat(size, 64)
		if err != nil {
			return
		}
		f := e.Font()
		f.Size = v
		e.SetFont(f)
	})

	t.Text = widget.NewEntry()
	t.Text.SetPlaceHolder("Text to place")
	t.Text.OnSubmitted = func(s string) {
		e.SetPendingText(s)
		t.Sync()
	}

	t.Picker = widget.NewButtonWithIcon("", theme.ColorPaletteIcon(), func() {
		d := dialog.NewColorPicker("Colour", "Pick a drawing colour", t.setColor, win)
		d.Advanced = true
		d.Show()
	})
	t.Sync()
	return t
}

func (t *Toolbar) setColor(c color.Color) {
	t.editor.SetColor(c)
	t.Current.FillColor = c
	t.Current.Refresh()
}

// Sync copies the editor's tool and style into the controls.
func (t *Toolbar) Sync() {
	e := t.editor
	t.Tools.SetSelected(e.Tool().String())
	t.Stroke.SetValue(float64(e.Style().StrokeWidth))
	t.Filled.SetChecked(e.Style().Filled)
	t.Font.SetSelected(strconv.FormatFloat(e.Font().Size, 'f', -1, 64))
	t.Current.FillColor = e.Style().Color
	t.Current.Refresh()
}

// Object lays the controls out in two rows.
func (t *Toolbar) Object() fyne.CanvasObject {
	colours := container.NewHBox()
	for _, c := range palette {
		colours.Add(newColorSwatch(c, t.setColor))
	}
	return container.NewVBox(
		container.NewHBox(widget.NewLabel("Tool:"), t.Tools, layout.NewSpacer()),
		container.NewHBox(
			widget.NewLabel("Colour:"), t.Current, colours, t.Picker,
			widget.NewSeparator(),
			widget.NewLabel("Width:"),
			container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), t.Stroke),
			t.Filled,
			widget.NewSeparator(),
			widget.NewLabel("Font:"), t.Font,
			container.New(layout.NewGridWrapLayout(fyne.NewSize(180, 35)), t.Text),
			layout.NewSpacer(),
		),
	)
}
