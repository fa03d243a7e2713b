package shader

import (
	_ "embed"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultVertexSource is the GLSL vertex shader used by the desk scene.
// Transforms positions through model/view/projection and forwards normals,
// world position, and UV-scaled texture coordinates to the fragment stage.
//
//go:embed assets/vertex.glsl
var DefaultVertexSource string

// DefaultFragmentSource is the GLSL fragment shader used by the desk scene.
// Phong lighting with one directional light, five point light slots, and one
// spot light slot, switching between texture sampling and a flat object color.
//
//go:embed assets/fragment.glsl
var DefaultFragmentSource string

// UniformSink accepts named typed values consumed by the next draw call.
//
// This is the binding contract the whole engine is written against: callers set
// the complete uniform state for an object, then issue the draw. The sink keeps
// no history and performs no dirty tracking, so every value an object depends on
// must be pushed before its draw call, and pushes for different objects must not
// interleave. Writes to names the active program does not use are ignored
// (fire-and-forget); no error is surfaced.
type UniformSink interface {
	// SetMat4 sets a 4x4 matrix uniform.
	//
	// Parameters:
	//   - name: the uniform name in the shader program
	//   - value: the column-major matrix value
	SetMat4(name string, value mgl32.Mat4)

	// SetVec2 sets a 2-component vector uniform.
	//
	// Parameters:
	//   - name: the uniform name in the shader program
	//   - value: the vector value
	SetVec2(name string, value mgl32.Vec2)

	// SetVec3 sets a 3-component vector uniform.
	//
	// Parameters:
	//   - name: the uniform name in the shader program
	//   - value: the vector value
	SetVec3(name string, value mgl32.Vec3)

	// SetVec4 sets a 4-component vector uniform.
	//
	// Parameters:
	//   - name: the uniform name in the shader program
	//   - value: the vector value
	SetVec4(name string, value mgl32.Vec4)

	// SetFloat sets a scalar float uniform.
	//
	// Parameters:
	//   - name: the uniform name in the shader program
	//   - value: the scalar value
	SetFloat(name string, value float32)

	// SetInt sets a scalar integer uniform.
	//
	// Parameters:
	//   - name: the uniform name in the shader program
	//   - value: the integer value
	SetInt(name string, value int32)

	// SetBool sets a boolean uniform (uploaded as 0 or 1).
	//
	// Parameters:
	//   - name: the uniform name in the shader program
	//   - value: the boolean value
	SetBool(name string, value bool)

	// SetSampler2D sets a 2D sampler uniform to a texture unit index.
	// A value of -1 means "no texture" and is uploaded as-is; the fragment
	// shader must not sample when the texture switch is off.
	//
	// Parameters:
	//   - name: the sampler name in the shader program
	//   - unit: the texture unit index
	SetSampler2D(name string, unit int32)
}

// Shader is a compiled and linked GPU program exposing its uniforms through the
// UniformSink contract.
type Shader interface {
	UniformSink

	// Use makes this program the active one for subsequent uniform writes and
	// draw calls. Must be called before any Set* method takes effect.
	Use()

	// Handle returns the underlying GPU program object.
	//
	// Returns:
	//   - uint32: the program handle
	Handle() uint32

	// Release deletes the GPU program. The shader must not be used afterwards.
	Release()
}
