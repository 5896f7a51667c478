package images

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/cshum/vipsgen/vips"
)

// Format represents supported image file formats.
type Format int

const (
	// FormatJPEG is a JPEG encoded image.
	FormatJPEG Format = iota
	// FormatPNG is a PNG encoded image.
	FormatPNG
	// FormatWebP is a WebP encoded image.
	FormatWebP
)

// FormatForPath guesses the format from a file extension.
//
// Arguments:
//   - path: The file path or name.
//
// Returns:
//   - Format: The matching format.
//   - error: An error for unrecognized extensions.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".png":
		return FormatPNG, nil
	case ".webp":
		return FormatWebP, nil
	default:
		return 0, fmt.Errorf("unsupported image extension: %s", filepath.Ext(path))
	}
}

// DecodeResize decodes encoded image bytes and prescales them so the
// longer side fits within maxWidth x maxHeight, returning a Go-native
// image.Image ready for tensor preparation. The prescale preserves
// aspect ratio; the final stretch to the network's input rectangle
// happens during tensor preparation.
//
// Arguments:
//   - imageBytes: The encoded image data.
//   - maxWidth, maxHeight: Bounding box for the prescale.
//   - format: The encoding of imageBytes.
//
// Returns:
//   - image.Image: The decoded, prescaled image.
//   - error: An error if decoding or resizing fails.
func DecodeResize(imageBytes []byte, maxWidth, maxHeight int, format Format) (image.Image, error) {
	if len(imageBytes) == 0 {
		return nil, fmt.Errorf("empty image data")
	}
	if maxWidth <= 0 || maxHeight <= 0 {
		return nil, fmt.Errorf("invalid dimensions: width=%d, height=%d", maxWidth, maxHeight)
	}

	// Load the image from buffer.
	img, err := vips.NewImageFromBuffer(imageBytes, &vips.LoadOptions{
		Access: vips.AccessSequential,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}
	defer img.Close()

	// Resize the image in-place.
	err = img.ThumbnailImage(maxWidth, &vips.ThumbnailImageOptions{
		Height: maxHeight,
		FailOn: vips.FailOnError,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resize image: %w", err)
	}

	switch format {
	case FormatJPEG:
		resized, err := img.JpegsaveBuffer(&vips.JpegsaveBufferOptions{})
		if err != nil || len(resized) == 0 {
			return nil, fmt.Errorf("failed to encode resized image")
		}
		decoded, err := jpeg.Decode(bytes.NewReader(resized))
		if err != nil {
			return nil, fmt.Errorf("failed to decode resized JPEG: %w", err)
		}
		return decoded, nil

	case FormatPNG:
		resized, err := img.PngsaveBuffer(&vips.PngsaveBufferOptions{})
		if err != nil || len(resized) == 0 {
			return nil, fmt.Errorf("failed to encode resized image")
		}
		decoded, err := png.Decode(bytes.NewReader(resized))
		if err != nil {
			return nil, fmt.Errorf("failed to decode resized PNG: %w", err)
		}
		return decoded, nil

	case FormatWebP:
		resized, err := img.WebpsaveBuffer(&vips.WebpsaveBufferOptions{})
		if err != nil || len(resized) == 0 {
			return nil, fmt.Errorf("failed to encode resized image")
		}
		decoded, err := webp.Decode(bytes.NewReader(resized))
		if err != nil {
			return nil, fmt.Errorf("failed to decode resized WebP: %w", err)
		}
		return decoded, nil

	default:
		return nil, fmt.Errorf("unsupported image format: %d", format)
	}
}
