// Package export writes drawings out as PNG and PDF and brings raster
// images in as Image shapes.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"LocalDraw/internal/logging"
	"LocalDraw/internal/render"
	"LocalDraw/internal/state"
)

// ErrCanvasSize is returned when an export is asked for an empty canvas.
var ErrCanvasSize = errors.New("canvas size must be positive")

// RasterSurface draws shapes into a gg context. Drawing calls cannot fail
// one by one, so the first error is kept and reported by Err.
type RasterSurface struct {
	dc  *gg.Context
	err error
}

func NewRasterSurface(dc *gg.Context) *RasterSurface {
	dc.SetLineCap(gg.LineCapRound)
	return &RasterSurface{dc: dc}
}

func (r *RasterSurface) Err() error { return r.err }

func (r *RasterSurface) keep(err error) {
	if err != nil && r.err == nil {
		r.err = err
	}
}

func (r *RasterSurface) SetColor(c color.Color) { r.dc.SetColor(c) }
func (r *RasterSurface) SetLineWidth(w float64) { r.dc.SetLineWidth(w) }

func (r *RasterSurface) Line(x1, y1, x2, y2 float64) {
	r.dc.DrawLine(x1, y1, x2, y2)
	r.keep(r.dc.Stroke())
}

func (r *RasterSurface) Rect(x, y, w, h float64, fill bool) {
	r.dc.DrawRectangle(x, y, w, h)
	r.paint(fill)
}

func (r *RasterSurface) Ellipse(x, y, w, h float64, fill bool) {
	r.dc.DrawEllipse(x+w/2, y+h/2, w/2, h/2)
	r.paint(fill)
}

func (r *RasterSurface) paint(fill bool) {
	if fill {
		r.keep(r.dc.Fill())
	} else {
		r.keep(r.dc.Stroke())
	}
}

func (r *RasterSurface) Polyline(pts []image.Point) {
	if len(pts) < 2 {
		return
	}
	r.dc.MoveTo(float64(pts[0].X), float64(pts[0].Y))
	for _, p := range pts[1:] {
		r.dc.LineTo(float64(p.X), float64(p.Y))
	}
	r.keep(r.dc.Stroke())
}

func (r *RasterSurface) Text(s string, x, y float64, f state.Font) {
	face, err := faces.face(f)
	if err != nil {
		r.keep(err)
		return
	}
	r.dc.SetFont(face)
	r.dc.DrawString(s, x, y)
}

func (r *RasterSurface) Image(img image.Image, x, y, w, h float64) {
	r.dc.DrawImageEx(gg.ImageBufFromImage(img), gg.DrawImageOptions{
		X:         x,
		Y:         y,
		DstWidth:  w,
		DstHeight: h,
	})
}

// fontSources caches parsed font files. Faces are cheap to make from a
// source, sources are not.
type fontSources struct {
	mu      sync.Mutex
	sources map[string]*text.FontSource
}

var faces = &fontSources{sources: make(map[string]*text.FontSource)}

func (c *fontSources) face(f state.Font) (text.Face, error) {
	key := state.Font{Family: f.Family, Bold: f.Bold, Italic: f.Italic}.String()
	c.mu.Lock()
	defer c.mu.Unlock()
	src, ok := c.sources[key]
	if !ok {
		var err error
		src, err = text.NewFontSource(f.TTF())
		if err != nil {
			return nil, fmt.Errorf("load font %s: %w", f, err)
		}
		c.sources[key] = src
	}
	size := f.Size
	if size <= 0 {
		size = state.DefaultFont().Size
	}
	return src.Face(size), nil
}

// ExportToRaster composites the visible layers at 1:1 onto opaque white.
// Pan and zoom play no part.
func ExportToRaster(layers []*state.Layer, width, height int) (image.Image, error) {
	dc, err := rasterize(layers, width, height)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	return dc.Image(), nil
}

// WritePNG renders the layers and encodes them as PNG.
func WritePNG(w io.Writer, layers []*state.Layer, width, height int) error {
	dc, err := rasterize(layers, width, height)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func rasterize(layers []*state.Layer, width, height int) (*gg.Context, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("export %dx%d: %w", width, height, ErrCanvasSize)
	}
	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.White)
	s := NewRasterSurface(dc)
	render.Draw(s, render.Scene{Layers: layers})
	err := s.Err()
	if err == nil {
		err = dc.FlushGPU()
	}
	if err != nil {
		dc.Close()
		return nil, fmt.Errorf("export %dx%d: %w", width, height, err)
	}
	logging.Logger().Info("[EXPORT] rendered", "width", width, "height", height, "layers", len(layers))
	return dc, nil
}

// CanvasSize picks an export size that holds every visible shape, but is
// never smaller than the configured canvas.
func CanvasSize(layers []*state.Layer, minW, minH int) (int, int) {
	w, h := minW, minH
	for _, l := range layers {
		if !l.Visible {
			continue
		}
		for _, s := range l.Shapes() {
			b := s.Bounds()
			pad := int(math.Ceil(float64(s.Style().StrokeWidth)))
			w = max(w, b.Right+pad+1)
			h = max(h, b.Bottom+pad+1)
		}
	}
	return w, h
}
