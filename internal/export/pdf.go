package export

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"

	"LocalDraw/internal/logging"
	"LocalDraw/internal/render"
	"LocalDraw/internal/state"
)

// PDFSurface draws shapes as vector PDF operators. One canvas pixel is one
// point, so the page matches the canvas size.
type PDFSurface struct {
	pdf    *gofpdf.Fpdf
	fonts  map[string]bool
	images int
	err    error
}

func NewPDFSurface(width, height int) *PDFSurface {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(width), Ht: float64(height)},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")
	return &PDFSurface{pdf: pdf, fonts: make(map[string]bool)}
}

func (p *PDFSurface) SetColor(c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	p.pdf.SetDrawColor(int(n.R), int(n.G), int(n.B))
	p.pdf.SetFillColor(int(n.R), int(n.G), int(n.B))
	p.pdf.SetTextColor(int(n.R), int(n.G), int(n.B))
	p.pdf.SetAlpha(float64(n.A)/255, "Normal")
}

func (p *PDFSurface) SetLineWidth(w float64) { p.pdf.SetLineWidth(w) }

func (p *PDFSurface) Line(x1, y1, x2, y2 float64) {
	p.pdf.Line(x1, y1, x2, y2)
}

func (p *PDFSurface) Rect(x, y, w, h float64, fill bool) {
	p.pdf.Rect(x, y, w, h, style(fill))
}

func (p *PDFSurface) Ellipse(x, y, w, h float64, fill bool) {
	p.pdf.Ellipse(x+w/2, y+h/2, w/2, h/2, 0, style(fill))
}

func style(fill bool) string {
	if fill {
		return "F"
	}
	return "D"
}

func (p *PDFSurface) Polyline(pts []image.Point) {
	if len(pts) < 2 {
		return
	}
	p.pdf.MoveTo(float64(pts[0].X), float64(pts[0].Y))
	for _, pt := range pts[1:] {
		p.pdf.LineTo(float64(pt.X), float64(pt.Y))
	}
	p.pdf.DrawPath("D")
}

func (p *PDFSurface) Text(s string, x, y float64, f state.Font) {
	// One embedded font per family and style; size is set per call.
	name := state.Font{Family: f.Family, Bold: f.Bold, Italic: f.Italic}.String()
	if !p.fonts[name] {
		p.pdf.AddUTF8FontFromBytes(name, "", f.TTF())
		p.fonts[name] = true
	}
	size := f.Size
	if size <= 0 {
		size = state.DefaultFont().Size
	}
	p.pdf.SetFont(name, "", size)
	p.pdf.Text(x, y, s)
}

func (p *PDFSurface) Image(img image.Image, x, y, w, h float64) {
	if p.err != nil {
		return
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		p.err = fmt.Errorf("encode image: %w", err)
		return
	}
	p.images++
	name := fmt.Sprintf("image%d", p.images)
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.pdf.RegisterImageOptionsReader(name, opts, &buf)
	p.pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
}

// Err reports the first failure, from this surface or from gofpdf.
func (p *PDFSurface) Err() error {
	if p.err != nil {
		return p.err
	}
	return p.pdf.Error()
}

// Output writes the finished document.
func (p *PDFSurface) Output(w io.Writer) error {
	if err := p.Err(); err != nil {
		return err
	}
	return p.pdf.Output(w)
}

// WritePDF renders the visible layers onto a white page of the given size.
func WritePDF(w io.Writer, layers []*state.Layer, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("export pdf %dx%d: %w", width, height, ErrCanvasSize)
	}
	s := NewPDFSurface(width, height)
	render.Background(s, state.Rect{Right: width, Bottom: height}, color.White)
	render.Draw(s, render.Scene{Layers: layers})
	if err := s.Output(w); err != nil {
		return fmt.Errorf("export pdf: %w", err)
	}
	logging.Logger().Info("[EXPORT] pdf written", "width", width, "height", height, "layers", len(layers))
	return nil
}
