package texture

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// ErrUnsupportedChannels is returned when a decoded image has a channel count
// the registry cannot map to a GPU pixel format. Supported counts are 1 (grey),
// 3 (RGB), and 4 (RGBA); anything else is rejected rather than silently coerced.
var ErrUnsupportedChannels = errors.New("texture: unsupported channel count")

// Image holds CPU-side pixel data pending GPU upload.
// Pixels are tightly packed row-major with Channels bytes per pixel.
type Image struct {
	// Pixels is the raw pixel data, Channels bytes per pixel.
	Pixels []byte
	// Width is the image width in pixels.
	Width int
	// Height is the image height in pixels.
	Height int
	// Channels is the number of bytes per pixel: 1, 3, or 4.
	Channels int
}

// Decoder turns an image file into CPU-side pixel data.
// The default implementation uses the standard library image codecs; tests
// substitute fakes to exercise the registry's channel validation.
type Decoder interface {
	// Decode reads and decodes the file at path.
	//
	// Parameters:
	//   - path: the image file to decode
	//   - flipVertically: if true, rows are reordered so the first row is the bottom of the image
	//
	// Returns:
	//   - Image: the decoded pixel data
	//   - error: error if the file cannot be read or decoded, or wraps
	//     ErrUnsupportedChannels if the decoded format has no GPU mapping
	Decode(path string, flipVertically bool) (Image, error)
}

// stdDecoder decodes PNG and JPEG files with the standard library.
type stdDecoder struct{}

var _ Decoder = stdDecoder{}

// NewDecoder returns the standard-library image decoder.
//
// Returns:
//   - Decoder: the default decoder
func NewDecoder() Decoder {
	return stdDecoder{}
}

func (stdDecoder) Decode(path string, flipVertically bool) (Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return Image{}, fmt.Errorf("texture: open %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return Image{}, fmt.Errorf("texture: decode %s: %w", path, err)
	}

	out, err := flatten(img)
	if err != nil {
		return Image{}, fmt.Errorf("texture: %s: %w", path, err)
	}
	if flipVertically {
		flipRows(&out)
	}
	return out, nil
}

// flatten converts a decoded image into tightly packed pixel data, preserving
// the source channel count: greyscale stays 1 byte per pixel, YCbCr becomes
// RGB, everything with alpha becomes RGBA.
func flatten(img image.Image) (Image, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	switch src := img.(type) {
	case *image.Gray:
		out := Image{Pixels: make([]byte, w*h), Width: w, Height: h, Channels: 1}
		for y := 0; y < h; y++ {
			copy(out.Pixels[y*w:(y+1)*w], src.Pix[y*src.Stride:y*src.Stride+w])
		}
		return out, nil
	case *image.YCbCr:
		out := Image{Pixels: make([]byte, w*h*3), Width: w, Height: h, Channels: 3}
		i := 0
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				r, g, b, _ := src.At(x, y).RGBA()
				out.Pixels[i] = byte(r >> 8)
				out.Pixels[i+1] = byte(g >> 8)
				out.Pixels[i+2] = byte(b >> 8)
				i += 3
			}
		}
		return out, nil
	case *image.NRGBA, *image.RGBA:
		out := Image{Pixels: make([]byte, w*h*4), Width: w, Height: h, Channels: 4}
		i := 0
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				r, g, b, a := img.At(x, y).RGBA()
				out.Pixels[i] = byte(r >> 8)
				out.Pixels[i+1] = byte(g >> 8)
				out.Pixels[i+2] = byte(b >> 8)
				out.Pixels[i+3] = byte(a >> 8)
				i += 4
			}
		}
		return out, nil
	default:
		return Image{}, fmt.Errorf("%w: %T", ErrUnsupportedChannels, img)
	}
}

// flipRows reverses the row order of an image in place.
func flipRows(img *Image) {
	stride := img.Width * img.Channels
	tmp := make([]byte, stride)
	for top, bot := 0, img.Height-1; top < bot; top, bot = top+1, bot-1 {
		a := img.Pixels[top*stride : (top+1)*stride]
		b := img.Pixels[bot*stride : (bot+1)*stride]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}
