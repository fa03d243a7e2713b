package mesh

// ProviderOption is a functional option for configuring a mesh provider.
// Use the With* functions to create options.
type ProviderOption func(*providerImpl)

// WithBackend replaces the OpenGL mesh backend.
//
// Parameters:
//   - b: the backend to use
//
// Returns:
//   - ProviderOption: option function to apply
func WithBackend(b Backend) ProviderOption {
	return func(p *providerImpl) {
		p.backend = b
	}
}
