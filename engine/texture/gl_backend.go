package texture

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glBackend implements Backend against OpenGL.
// Filtering and wrap settings are fixed for the whole registry: repeat wrap,
// mipmapped trilinear minification, linear magnification.
type glBackend struct{}

var _ Backend = glBackend{}

// NewGLBackend returns the OpenGL texture backend.
//
// Returns:
//   - Backend: the GL-backed implementation
func NewGLBackend() Backend {
	return glBackend{}
}

func (glBackend) Upload(img Image) (Handle, error) {
	var format int32
	switch img.Channels {
	case 1:
		format = gl.RED
	case 3:
		format = gl.RGB
	case 4:
		format = gl.RGBA
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedChannels, img.Channels)
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	// Single-channel and RGB rows are not 4-byte aligned in tightly packed data.
	if img.Channels != 4 {
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
		defer gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	}

	gl.TexImage2D(gl.TEXTURE_2D, 0, format, int32(img.Width), int32(img.Height),
		0, uint32(format), gl.UNSIGNED_BYTE, gl.Ptr(img.Pixels))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return Handle(tex), nil
}

func (glBackend) BindUnit(unit int, handle Handle) {
	gl.ActiveTexture(uint32(gl.TEXTURE0 + unit))
	gl.BindTexture(gl.TEXTURE_2D, uint32(handle))
}

func (glBackend) Delete(handle Handle) {
	if handle == 0 {
		return
	}
	tex := uint32(handle)
	gl.DeleteTextures(1, &tex)
}
