package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Carmen-Shannon/vista-go/engine/logger"
)

// glShader is the OpenGL implementation of Shader.
// Uniform locations are resolved lazily and cached per name; unknown names
// cache a -1 location so repeated misses cost one map lookup.
type glShader struct {
	name      string
	program   uint32
	locations map[string]int32

	vertexSource   string
	fragmentSource string
}

var _ Shader = &glShader{}

// NewShader compiles and links a GPU program from GLSL sources.
// Without options the embedded desk-scene sources are used.
// Must be called on the thread that owns the GL context.
//
// Parameters:
//   - options: functional options to configure the shader
//
// Returns:
//   - Shader: the linked shader program
//   - error: error if compilation or linking fails
func NewShader(options ...ShaderBuilderOption) (Shader, error) {
	s := &glShader{
		name:           "desk_scene",
		locations:      make(map[string]int32),
		vertexSource:   DefaultVertexSource,
		fragmentSource: DefaultFragmentSource,
	}
	for _, opt := range options {
		opt(s)
	}

	vert, err := compileStage(gl.VERTEX_SHADER, s.vertexSource)
	if err != nil {
		return nil, fmt.Errorf("shader %s: vertex stage: %w", s.name, err)
	}
	defer gl.DeleteShader(vert)

	frag, err := compileStage(gl.FRAGMENT_SHADER, s.fragmentSource)
	if err != nil {
		return nil, fmt.Errorf("shader %s: fragment stage: %w", s.name, err)
	}
	defer gl.DeleteShader(frag)

	program := gl.CreateProgram()
	gl.AttachShader(program, vert)
	gl.AttachShader(program, frag)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(infoLog))
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("shader %s: link failed: %s", s.name, infoLog)
	}

	s.program = program
	return s, nil
}

// compileStage compiles a single shader stage and returns its handle.
//
// Parameters:
//   - stage: the GL stage enum (gl.VERTEX_SHADER or gl.FRAGMENT_SHADER)
//   - source: the GLSL source text
//
// Returns:
//   - uint32: the compiled stage handle
//   - error: error with the driver info log if compilation fails
func compileStage(stage uint32, source string) (uint32, error) {
	handle := gl.CreateShader(stage)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(handle, logLen, nil, gl.Str(infoLog))
		gl.DeleteShader(handle)
		return 0, fmt.Errorf("compile failed: %s", infoLog)
	}
	return handle, nil
}

// location resolves a uniform name to its GL location, caching the result.
// Missing uniforms are cached as -1 and logged once.
func (s *glShader) location(name string) int32 {
	if loc, ok := s.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.program, gl.Str(name+"\x00"))
	if loc < 0 {
		logger.Log.Debug("shader: uniform not found",
			zap.String("shader", s.name), zap.String("uniform", name))
	}
	s.locations[name] = loc
	return loc
}

func (s *glShader) Use() {
	gl.UseProgram(s.program)
}

func (s *glShader) Handle() uint32 {
	return s.program
}

func (s *glShader) Release() {
	gl.DeleteProgram(s.program)
	s.program = 0
	s.locations = make(map[string]int32)
}

func (s *glShader) SetMat4(name string, value mgl32.Mat4) {
	if loc := s.location(name); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, &value[0])
	}
}

func (s *glShader) SetVec2(name string, value mgl32.Vec2) {
	if loc := s.location(name); loc >= 0 {
		gl.Uniform2fv(loc, 1, &value[0])
	}
}

func (s *glShader) SetVec3(name string, value mgl32.Vec3) {
	if loc := s.location(name); loc >= 0 {
		gl.Uniform3fv(loc, 1, &value[0])
	}
}

func (s *glShader) SetVec4(name string, value mgl32.Vec4) {
	if loc := s.location(name); loc >= 0 {
		gl.Uniform4fv(loc, 1, &value[0])
	}
}

func (s *glShader) SetFloat(name string, value float32) {
	if loc := s.location(name); loc >= 0 {
		gl.Uniform1f(loc, value)
	}
}

func (s *glShader) SetInt(name string, value int32) {
	if loc := s.location(name); loc >= 0 {
		gl.Uniform1i(loc, value)
	}
}

func (s *glShader) SetBool(name string, value bool) {
	var v int32
	if value {
		v = 1
	}
	s.SetInt(name, v)
}

func (s *glShader) SetSampler2D(name string, unit int32) {
	s.SetInt(name, unit)
}
