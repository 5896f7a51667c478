// Package images - Pixel buffer handling for classification inputs.
package images

import (
	"image"
	"image/draw"

	"github.com/pkg/errors"
)

// ErrBadBuffer indicates a pixel buffer whose length disagrees with its
// declared dimensions.
var ErrBadBuffer = errors.New("pixel buffer does not match dimensions")

// ValidatePixels checks that an interleaved RGBA buffer matches its
// declared dimensions.
//
// Arguments:
//   - pixels: Row-major RGBA bytes, 4 per pixel.
//   - width, height: Declared dimensions.
//
// Returns:
//   - error: ErrBadBuffer when the length is not width*height*4.
func ValidatePixels(pixels []byte, width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.Wrapf(ErrBadBuffer, "dimensions %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return errors.Wrapf(ErrBadBuffer, "%d bytes for %dx%d (need %d)",
			len(pixels), width, height, width*height*4)
	}
	return nil
}

// WrapPixels views an RGBA buffer as an image without copying. The buffer
// must stay alive and unmodified for as long as the image is used.
//
// Arguments:
//   - pixels: Row-major RGBA bytes, 4 per pixel.
//   - width, height: Dimensions of the buffer.
//
// Returns:
//   - *image.RGBA: The wrapping image.
//   - error: ErrBadBuffer on a size mismatch.
func WrapPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if err := ValidatePixels(pixels, width, height); err != nil {
		return nil, err
	}
	return &image.RGBA{
		Pix:    pixels,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}, nil
}

// Pixels flattens any image into a fresh interleaved RGBA buffer, the
// form the preprocessor consumes.
//
// Arguments:
//   - img: The source image.
//
// Returns:
//   - []byte: Row-major RGBA bytes.
//   - width, height: Dimensions of the returned buffer.
func Pixels(img image.Image) (pixels []byte, width, height int) {
	bounds := img.Bounds()
	width, height = bounds.Dx(), bounds.Dy()

	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == width*4 && bounds.Min == (image.Point{}) {
		return rgba.Pix, width, height
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst.Pix, width, height
}
