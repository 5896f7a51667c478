package inference

import (
	"image"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	ort "github.com/yalue/onnxruntime_go"
)

// ToTensor converts an interleaved RGBA pixel buffer into the flat
// channel-planar float32 layout the network consumes: all red values,
// then all green, then all blue, each divided by 255. Alpha is dropped.
//
// When the source dimensions differ from the target the buffer is
// resampled to the target rectangle; the image is stretched, aspect
// ratio is not preserved.
//
// Arguments:
//   - pixels: Row-major RGBA bytes, 4 per pixel.
//   - srcWidth, srcHeight: Dimensions of the pixel buffer.
//   - dstWidth, dstHeight: Dimensions the network expects.
//
// Returns:
//   - []float32: Tensor of length 3*dstWidth*dstHeight, shape (1, 3, H, W).
//   - error: ErrInvalidInput if the buffer length does not match srcWidth*srcHeight*4.
func ToTensor(pixels []byte, srcWidth, srcHeight, dstWidth, dstHeight int) ([]float32, error) {
	if srcWidth <= 0 || srcHeight <= 0 {
		return nil, errors.Wrapf(ErrInvalidInput,
			"source dimensions %dx%d", srcWidth, srcHeight)
	}
	if dstWidth <= 0 || dstHeight <= 0 {
		return nil, errors.Wrapf(ErrInvalidInput,
			"target dimensions %dx%d", dstWidth, dstHeight)
	}
	if len(pixels) != srcWidth*srcHeight*4 {
		return nil, errors.Wrapf(ErrInvalidInput,
			"pixel buffer holds %d bytes, %dx%d RGBA needs %d",
			len(pixels), srcWidth, srcHeight, srcWidth*srcHeight*4)
	}

	pixelCount := dstWidth * dstHeight
	data := make([]float32, 3*pixelCount)

	if srcWidth == dstWidth && srcHeight == dstHeight {
		// Fast path: de-interleave the buffer directly, no resampling.
		for i := 0; i < pixelCount; i++ {
			data[i] = float32(pixels[i*4]) / 255.0
			data[pixelCount+i] = float32(pixels[i*4+1]) / 255.0
			data[2*pixelCount+i] = float32(pixels[i*4+2]) / 255.0
		}
		return data, nil
	}

	src := &image.RGBA{
		Pix:    pixels,
		Stride: srcWidth * 4,
		Rect:   image.Rect(0, 0, srcWidth, srcHeight),
	}
	fillPlanes(src, data, dstWidth, dstHeight)
	return data, nil
}

// PrepareInput populates a preallocated ONNX input tensor from an image,
// resampling to the given dimensions when needed. This is the per-frame
// path used by the classifier; ToTensor is the standalone one.
//
// Arguments:
//   - img: The image to prepare.
//   - dst: The destination tensor to populate.
//   - width, height: The model's input dimensions.
//
// Returns:
//   - error: An error if the tensor is too small for the requested shape.
func PrepareInput(img image.Image, dst *ort.Tensor[float32], width, height int) error {
	data := dst.GetData()
	channelSize := width * height
	if len(data) < channelSize*3 {
		return errors.Wrapf(ErrInvalidInput,
			"destination tensor only holds %d floats, needs %d (make sure it's the right shape)",
			len(data), channelSize*3)
	}
	fillPlanes(img, data[:channelSize*3], width, height)
	return nil
}

// fillPlanes writes an image into the CHW planes of data, resampling
// first when the bounds differ from width x height. The image is
// stretched to the target rectangle. Lanczos3 keeps the quality parity
// the resampling contract asks for (bilinear or better).
func fillPlanes(img image.Image, data []float32, width, height int) {
	bounds := img.Bounds()
	if bounds.Dx() != width || bounds.Dy() != height {
		img = resize.Resize(uint(width), uint(height), img, resize.Lanczos3)
	}

	channelSize := width * height
	red := data[0:channelSize]
	green := data[channelSize : channelSize*2]
	blue := data[channelSize*2 : channelSize*3]

	min := img.Bounds().Min
	i := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(min.X+x, min.Y+y).RGBA()
			red[i] = float32(r>>8) / 255.0
			green[i] = float32(g>>8) / 255.0
			blue[i] = float32(b>>8) / 255.0
			i++
		}
	}
}
