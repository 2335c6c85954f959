// Package render composites a layer stack onto a state.Surface.
package render

import (
	"image/color"

	"LocalDraw/internal/state"
)

// TileSize is the edge of one checkerboard square, in canvas pixels.
const TileSize = 10

var (
	lightTile = color.NRGBA{R: 240, G: 240, B: 240, A: 0xff}
	darkTile  = color.NRGBA{R: 220, G: 220, B: 220, A: 0xff}
)

// Scene is everything the renderer reads. It never mutates it.
type Scene struct {
	Layers []*state.Layer
	// InProgress is the shape being drawn, not yet owned by a layer.
	InProgress state.Shape
}

// Draw paints visible layers back to front, then the in-progress shape on top.
func Draw(s state.Surface, sc Scene) {
	for _, l := range sc.Layers {
		l.Draw(s)
	}
	if sc.InProgress != nil {
		sc.InProgress.Draw(s)
	}
}

// TileColor is the checkerboard colour at canvas point (x, y). Tiles are
// aligned to multiples of TileSize so panning does not make them swim.
func TileColor(x, y int) color.Color {
	if (floorDiv(x, TileSize)+floorDiv(y, TileSize))%2 == 0 {
		return lightTile
	}
	return darkTile
}

func floorDiv(v, n int) int {
	q := v / n
	if v%n != 0 && v < 0 {
		q--
	}
	return q
}

// Background fills r with a single opaque colour.
func Background(s state.Surface, r state.Rect, c color.Color) {
	s.SetColor(c)
	s.Rect(float64(r.Left), float64(r.Top), float64(r.Width()), float64(r.Height()), true)
}
