package state

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Font describes how a Text shape is set. It is a plain value; the face
// behind it is resolved lazily and cached.
type Font struct {
	Family string
	Size   float64
	Bold   bool
	Italic bool
}

// DefaultFont matches the editor's starting font.
func DefaultFont() Font {
	return Font{Family: "Go", Size: 12}
}

func (f Font) String() string {
	var style []string
	if f.Bold {
		style = append(style, "bold")
	}
	if f.Italic {
		style = append(style, "italic")
	}
	if len(style) == 0 {
		return fmt.Sprintf("%s %gpt", f.Family, f.Size)
	}
	return fmt.Sprintf("%s %s %gpt", f.Family, strings.Join(style, " "), f.Size)
}

// Monospace reports whether the family names the Go Mono face.
func (f Font) Monospace() bool {
	return strings.EqualFold(f.Family, "mono") || strings.EqualFold(f.Family, "go mono")
}

// TTF returns the TrueType data backing the font. Only the Go fonts are
// bundled; unknown families fall back to Go regular.
func (f Font) TTF() []byte {
	if f.Monospace() {
		return gomono.TTF
	}
	switch {
	case f.Bold && f.Italic:
		return gobolditalic.TTF
	case f.Bold:
		return gobold.TTF
	case f.Italic:
		return goitalic.TTF
	}
	return goregular.TTF
}

// Measure returns the advance width of s and the line height, in pixels.
func (f Font) Measure(s string) (w, h int) {
	face, err := faces.get(f)
	if err != nil {
		return 0, 0
	}
	faces.mu.Lock()
	defer faces.mu.Unlock()
	return font.MeasureString(face, s).Ceil(), face.Metrics().Height.Ceil()
}

// Ascent is the distance from the baseline to the top of a line, in pixels.
func (f Font) Ascent() int {
	face, err := faces.get(f)
	if err != nil {
		return 0
	}
	faces.mu.Lock()
	defer faces.mu.Unlock()
	return face.Metrics().Ascent.Ceil()
}

type faceCache struct {
	mu    sync.Mutex
	faces map[Font]font.Face
}

var faces = &faceCache{faces: make(map[Font]font.Face)}

func (c *faceCache) get(f Font) (font.Face, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if face, ok := c.faces[f]; ok {
		return face, nil
	}
	parsed, err := opentype.Parse(f.TTF())
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", f, err)
	}
	size := f.Size
	if size <= 0 {
		size = DefaultFont().Size
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("open face %s: %w", f, err)
	}
	c.faces[f] = face
	return face, nil
}
