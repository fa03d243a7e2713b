package shader

// ShaderBuilderOption is a functional option for configuring a shader during construction.
// Use the With* functions to create options.
type ShaderBuilderOption func(*glShader)

// WithName sets the shader's identifier used in error and log messages.
//
// Parameters:
//   - name: the shader identifier
//
// Returns:
//   - ShaderBuilderOption: option function to apply
func WithName(name string) ShaderBuilderOption {
	return func(s *glShader) {
		s.name = name
	}
}

// WithVertexSource replaces the embedded vertex shader source.
//
// Parameters:
//   - source: GLSL vertex shader source text
//
// Returns:
//   - ShaderBuilderOption: option function to apply
func WithVertexSource(source string) ShaderBuilderOption {
	return func(s *glShader) {
		s.vertexSource = source
	}
}

// WithFragmentSource replaces the embedded fragment shader source.
//
// Parameters:
//   - source: GLSL fragment shader source text
//
// Returns:
//   - ShaderBuilderOption: option function to apply
func WithFragmentSource(source string) ShaderBuilderOption {
	return func(s *glShader) {
		s.fragmentSource = source
	}
}
