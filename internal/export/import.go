package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"LocalDraw/internal/logging"
	"LocalDraw/internal/state"
)

// ErrEmptyRaster is returned for a raster with no pixels.
var ErrEmptyRaster = errors.New("raster has no pixels")

// DecodeRaster reads PNG, JPEG, GIF, BMP, TIFF or WebP data.
func DecodeRaster(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		logging.Logger().Warn("[EXPORT] unreadable raster", "err", err)
		return nil, fmt.Errorf("decode raster: %w", err)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyRaster
	}
	logging.Logger().Debug("[EXPORT] decoded raster", "format", format, "width", b.Dx(), "height", b.Dy())
	return img, nil
}

// ImageShape wraps img in an Image shape at the canvas origin, at its
// natural size.
func ImageShape(img image.Image) (*state.Image, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyRaster
	}
	return state.NewImage(img, 0, 0, b.Dx(), b.Dy()), nil
}

// ImageShapeFromPixels builds an Image shape from packed 0xAARRGGBB pixels
// in row-major order.
func ImageShapeFromPixels(pixels []uint32, width, height int) (*state.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyRaster
	}
	if len(pixels) != width*height {
		return nil, fmt.Errorf("raster %dx%d needs %d pixels, got %d", width, height, width*height, len(pixels))
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i, p := range pixels {
		img.SetNRGBA(i%width, i/width, color.NRGBA{
			R: uint8(p >> 16),
			G: uint8(p >> 8),
			B: uint8(p),
			A: uint8(p >> 24),
		})
	}
	return ImageShape(img)
}
