package images

import (
	"image"
	"image/color"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePixels(t *testing.T) {
	assert.NoError(t, ValidatePixels(make([]byte, 2*2*4), 2, 2))

	err := ValidatePixels(make([]byte, 15), 2, 2)
	assert.True(t, errors.Is(err, ErrBadBuffer))

	err = ValidatePixels(nil, 0, 2)
	assert.True(t, errors.Is(err, ErrBadBuffer))
}

func TestWrapPixels(t *testing.T) {
	pixels := []byte{
		255, 0, 0, 255,
		0, 255, 0, 255,
	}
	img, err := WrapPixels(pixels, 2, 1)
	require.NoError(t, err)

	r, g, b, a := img.At(1, 0).RGBA()
	assert.EqualValues(t, 0, r>>8)
	assert.EqualValues(t, 255, g>>8)
	assert.EqualValues(t, 0, b>>8)
	assert.EqualValues(t, 255, a>>8)
}

func TestWrapPixelsMismatch(t *testing.T) {
	_, err := WrapPixels(make([]byte, 5), 2, 1)
	assert.True(t, errors.Is(err, ErrBadBuffer))
}

func TestPixelsRoundTrip(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	pixels, width, height := Pixels(src)
	assert.Equal(t, 2, width)
	assert.Equal(t, 2, height)
	require.Len(t, pixels, 2*2*4)
	assert.Equal(t, byte(10), pixels[0])
	assert.Equal(t, byte(20), pixels[1])
	assert.Equal(t, byte(30), pixels[2])
}

func TestPixelsConvertsNonRGBA(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 3, 2))
	gray.SetGray(0, 0, color.Gray{Y: 200})

	pixels, width, height := Pixels(gray)
	assert.Equal(t, 3, width)
	assert.Equal(t, 2, height)
	require.Len(t, pixels, 3*2*4)
	assert.Equal(t, byte(200), pixels[0])
	assert.Equal(t, byte(200), pixels[1])
	assert.Equal(t, byte(200), pixels[2])
	assert.Equal(t, byte(255), pixels[3])
}
