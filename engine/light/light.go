package light

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Type identifies the kind of light source.
type Type int

const (
	// TypeDirectional represents a light with no position, only direction.
	// Used for large distant sources like the sun. Affects all fragments
	// uniformly with no distance attenuation.
	TypeDirectional Type = iota

	// TypePoint represents a light that emits in all directions from a position.
	TypePoint

	// TypeSpot represents a light that emits in a cone from a position along a direction.
	TypeSpot
)

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	lightType Type
	active    bool
	position  mgl32.Vec3
	direction mgl32.Vec3
	ambient   mgl32.Vec3
	diffuse   mgl32.Vec3
	specular  mgl32.Vec3

	cutOff      float32
	outerCutOff float32
}

// Light describes one Phong light source as the shader consumes it.
//
// A light is a value object: all properties are fixed at construction and the
// rig writes them to the uniform sink each time the lighting configuration is
// applied. Type-specific properties (direction for directional and spot lights,
// position for point and spot lights) return zero values when not applicable.
type Light interface {
	// Type returns the kind of light source.
	//
	// Returns:
	//   - Type: the light type (directional, point, or spot)
	Type() Type

	// Active reports whether the light contributes to shading.
	// Inactive lights are still written to the uniform sink with their active
	// flag cleared so stale GPU state cannot leak through.
	//
	// Returns:
	//   - bool: true if the light is enabled
	Active() bool

	// Position returns the world-space position of the light.
	// Meaningless for directional lights.
	//
	// Returns:
	//   - mgl32.Vec3: position as (x, y, z)
	Position() mgl32.Vec3

	// Direction returns the direction of the light.
	// For directional lights this is the light direction; for spot lights it is
	// the cone axis. Meaningless for point lights.
	//
	// Returns:
	//   - mgl32.Vec3: direction as (x, y, z)
	Direction() mgl32.Vec3

	// Ambient returns the RGB ambient contribution.
	//
	// Returns:
	//   - mgl32.Vec3: color as (r, g, b)
	Ambient() mgl32.Vec3

	// Diffuse returns the RGB diffuse contribution.
	//
	// Returns:
	//   - mgl32.Vec3: color as (r, g, b)
	Diffuse() mgl32.Vec3

	// Specular returns the RGB specular contribution.
	//
	// Returns:
	//   - mgl32.Vec3: color as (r, g, b)
	Specular() mgl32.Vec3

	// CutOff returns the cosine of the inner cone angle. Spot lights only.
	//
	// Returns:
	//   - float32: cosine of the inner cutoff angle
	CutOff() float32

	// OuterCutOff returns the cosine of the outer cone angle. Spot lights only.
	//
	// Returns:
	//   - float32: cosine of the outer cutoff angle
	OuterCutOff() float32
}

var _ Light = &lightImpl{}

// NewLight creates a new Light configured with the provided options.
// Without options the light is an inactive directional light with black colors.
//
// Parameters:
//   - options: functional options to configure the light
//
// Returns:
//   - Light: the newly created light
func NewLight(options ...LightBuilderOption) Light {
	l := &lightImpl{}
	for _, opt := range options {
		opt(l)
	}
	return l
}

func (l *lightImpl) Type() Type {
	return l.lightType
}

func (l *lightImpl) Active() bool {
	return l.active
}

func (l *lightImpl) Position() mgl32.Vec3 {
	return l.position
}

func (l *lightImpl) Direction() mgl32.Vec3 {
	return l.direction
}

func (l *lightImpl) Ambient() mgl32.Vec3 {
	return l.ambient
}

func (l *lightImpl) Diffuse() mgl32.Vec3 {
	return l.diffuse
}

func (l *lightImpl) Specular() mgl32.Vec3 {
	return l.specular
}

func (l *lightImpl) CutOff() float32 {
	return l.cutOff
}

func (l *lightImpl) OuterCutOff() float32 {
	return l.outerCutOff
}
