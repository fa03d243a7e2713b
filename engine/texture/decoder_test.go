package texture

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "img.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestDecodeGrayIsOneChannel(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 2))
	src.SetGray(0, 0, color.Gray{Y: 10})
	src.SetGray(1, 1, color.Gray{Y: 200})
	path := writePNG(t, src)

	img, err := NewDecoder().Decode(path, false)
	require.NoError(t, err)
	assert.Equal(t, 1, img.Channels)
	assert.Equal(t, 2, img.Width)
	assert.Equal(t, 2, img.Height)
	assert.Equal(t, byte(10), img.Pixels[0])
	assert.Equal(t, byte(200), img.Pixels[3])
}

func TestDecodeRGBAIsFourChannels(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{R: 0, G: 0, B: 255, A: 128})
	path := writePNG(t, src)

	img, err := NewDecoder().Decode(path, false)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Channels)
	assert.Equal(t, byte(255), img.Pixels[0])
	assert.Equal(t, byte(128), img.Pixels[7])
}

func TestDecodeFlipReversesRows(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 1, 3))
	src.SetGray(0, 0, color.Gray{Y: 1})
	src.SetGray(0, 1, color.Gray{Y: 2})
	src.SetGray(0, 2, color.Gray{Y: 3})
	path := writePNG(t, src)

	img, err := NewDecoder().Decode(path, true)
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 2, 1}, img.Pixels)
}

func TestDecodeMissingFile(t *testing.T) {
	_, err := NewDecoder().Decode(filepath.Join(t.TempDir(), "nope.png"), false)
	assert.Error(t, err)
}

func TestFlattenRejectsUnmappedFormats(t *testing.T) {
	_, err := flatten(image.NewCMYK(image.Rect(0, 0, 2, 2)))
	assert.True(t, errors.Is(err, ErrUnsupportedChannels))
}
