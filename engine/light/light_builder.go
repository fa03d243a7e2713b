package light

import (
	"github.com/go-gl/mathgl/mgl32"
)

// LightBuilderOption is a function that configures a light instance during construction.
type LightBuilderOption func(*lightImpl)

// WithType is an option builder that sets the kind of light source.
//
// Parameters:
//   - t: the light type (directional, point, or spot)
//
// Returns:
//   - LightBuilderOption: a function that applies the type option to a light
func WithType(t Type) LightBuilderOption {
	return func(l *lightImpl) {
		l.lightType = t
	}
}

// WithActive is an option builder that enables or disables the light.
//
// Parameters:
//   - active: whether the light contributes to shading
//
// Returns:
//   - LightBuilderOption: a function that applies the active option to a light
func WithActive(active bool) LightBuilderOption {
	return func(l *lightImpl) {
		l.active = active
	}
}

// WithPosition is an option builder that sets the world-space position.
//
// Parameters:
//   - position: position as (x, y, z)
//
// Returns:
//   - LightBuilderOption: a function that applies the position option to a light
func WithPosition(position mgl32.Vec3) LightBuilderOption {
	return func(l *lightImpl) {
		l.position = position
	}
}

// WithDirection is an option builder that sets the light direction or spot cone axis.
//
// Parameters:
//   - direction: direction as (x, y, z)
//
// Returns:
//   - LightBuilderOption: a function that applies the direction option to a light
func WithDirection(direction mgl32.Vec3) LightBuilderOption {
	return func(l *lightImpl) {
		l.direction = direction
	}
}

// WithAmbient is an option builder that sets the RGB ambient contribution.
//
// Parameters:
//   - color: color as (r, g, b)
//
// Returns:
//   - LightBuilderOption: a function that applies the ambient option to a light
func WithAmbient(color mgl32.Vec3) LightBuilderOption {
	return func(l *lightImpl) {
		l.ambient = color
	}
}

// WithDiffuse is an option builder that sets the RGB diffuse contribution.
//
// Parameters:
//   - color: color as (r, g, b)
//
// Returns:
//   - LightBuilderOption: a function that applies the diffuse option to a light
func WithDiffuse(color mgl32.Vec3) LightBuilderOption {
	return func(l *lightImpl) {
		l.diffuse = color
	}
}

// WithSpecular is an option builder that sets the RGB specular contribution.
//
// Parameters:
//   - color: color as (r, g, b)
//
// Returns:
//   - LightBuilderOption: a function that applies the specular option to a light
func WithSpecular(color mgl32.Vec3) LightBuilderOption {
	return func(l *lightImpl) {
		l.specular = color
	}
}

// WithCutOff is an option builder that sets the spot cone angles. The values
// are cosines of the half-angles, with the outer angle wider than the inner
// one for a soft edge.
//
// Parameters:
//   - inner: cosine of the inner cutoff angle
//   - outer: cosine of the outer cutoff angle
//
// Returns:
//   - LightBuilderOption: a function that applies the cutoff option to a light
func WithCutOff(inner, outer float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.cutOff = inner
		l.outerCutOff = outer
	}
}
