package texture

// RegistryOption is a functional option for configuring a texture registry.
// Use the With* functions to create options.
type RegistryOption func(*registryImpl)

// WithDecoder replaces the standard-library image decoder.
//
// Parameters:
//   - d: the decoder to use
//
// Returns:
//   - RegistryOption: option function to apply
func WithDecoder(d Decoder) RegistryOption {
	return func(r *registryImpl) {
		r.decoder = d
	}
}

// WithBackend replaces the OpenGL texture backend.
//
// Parameters:
//   - b: the backend to use
//
// Returns:
//   - RegistryOption: option function to apply
func WithBackend(b Backend) RegistryOption {
	return func(r *registryImpl) {
		r.backend = b
	}
}
