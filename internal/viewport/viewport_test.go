package viewport

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoomInKeepsAnchor(t *testing.T) {
	v := New()
	require.True(t, v.ZoomAt(image.Pt(100, 100), ZoomIn))

	assert.InDelta(t, 1.1, v.Zoom(), 1e-9)
	x, y := v.CanvasToScreen(100, 100)
	assert.Equal(t, 100, x)
	assert.Equal(t, 100, y)
	cx, cy := v.ScreenToCanvas(100, 100)
	assert.Equal(t, 100, cx)
	assert.Equal(t, 100, cy)
}

func TestZoomAnchorProperty(t *testing.T) {
	anchors := []image.Point{
		image.Pt(0, 0), image.Pt(100, 100), image.Pt(640, 17), image.Pt(-30, 512), image.Pt(1023, 767),
	}
	for _, p := range anchors {
		for _, dir := range []Direction{ZoomIn, ZoomOut} {
			v := New()
			v.SetPan(13, -7)
			for step := 0; step < 60; step++ {
				pan := image.Pt(v.Pan())
				cx := float64(p.X-pan.X) / v.Zoom()
				cy := float64(p.Y-pan.Y) / v.Zoom()

				v.ZoomAt(p, dir)

				sx, sy := v.CanvasToScreenF(cx, cy)
				require.LessOrEqual(t, math.Abs(sx-float64(p.X)), 1.0, "anchor %v step %d", p, step)
				require.LessOrEqual(t, math.Abs(sy-float64(p.Y)), 1.0, "anchor %v step %d", p, step)
			}
		}
	}
}

func TestZoomClamps(t *testing.T) {
	v := New()
	for range 100 {
		v.ZoomAt(image.Pt(0, 0), ZoomIn)
	}
	assert.Equal(t, MaxZoom, v.Zoom())
	assert.False(t, v.ZoomAt(image.Pt(0, 0), ZoomIn))

	for range 100 {
		v.ZoomAt(image.Pt(0, 0), ZoomOut)
	}
	assert.Equal(t, MinZoom, v.Zoom())

	v.SetZoom(42)
	assert.Equal(t, MaxZoom, v.Zoom())
}

func TestTransformsInvert(t *testing.T) {
	v := New()
	v.SetZoom(2)
	v.SetPan(40, -20)

	sx, sy := v.CanvasToScreen(10, 30)
	assert.Equal(t, 60, sx)
	assert.Equal(t, 40, sy)

	cx, cy := v.ScreenToCanvas(sx, sy)
	assert.Equal(t, 10, cx)
	assert.Equal(t, 30, cy)
}

func TestPanIsNotScaled(t *testing.T) {
	v := New()
	v.SetZoom(3)
	v.PanBy(10, -5)
	x, y := v.Pan()
	assert.Equal(t, 10, x)
	assert.Equal(t, -5, y)
}

func TestReset(t *testing.T) {
	v := New()
	v.ZoomAt(image.Pt(50, 50), ZoomIn)
	v.PanBy(3, 3)
	require.False(t, v.IsIdentity())

	v.Reset()
	assert.True(t, v.IsIdentity())
}

func TestCustomLimits(t *testing.T) {
	v := NewWithLimits(0.5, 2, 0.25)
	v.ZoomAt(image.Pt(0, 0), ZoomOut)
	v.ZoomAt(image.Pt(0, 0), ZoomOut)
	v.ZoomAt(image.Pt(0, 0), ZoomOut)
	assert.Equal(t, 0.5, v.Zoom())

	lo, hi := v.Limits()
	assert.Equal(t, 0.5, lo)
	assert.Equal(t, 2.0, hi)
}
