package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// CameraBuilderOption is a functional option for configuring a camera during construction.
// Use the With* functions to create options.
type CameraBuilderOption func(*cameraImpl)

// WithPosition sets the initial camera position in world space.
//
// Parameters:
//   - position: the position
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithPosition(position mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.position = position
	}
}

// WithFront sets the initial viewing direction. Yaw and pitch are derived from
// this vector when the camera is constructed.
//
// Parameters:
//   - front: the viewing direction (normalized internally)
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithFront(front mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.front = front
	}
}

// WithUp sets the camera's up vector.
//
// Parameters:
//   - up: the up vector
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithUp(up mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.up = up
	}
}

// WithZoom sets the field-of-view proxy in degrees.
//
// Parameters:
//   - zoom: zoom in degrees
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithZoom(zoom float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.zoom = zoom
	}
}

// WithMovementSpeed sets the key-hold translation speed in units per second.
//
// Parameters:
//   - speed: the movement speed
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithMovementSpeed(speed float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.movementSpeed = speed
	}
}

// WithMouseSensitivity sets the scale applied to mouse-drag deltas.
//
// Parameters:
//   - sensitivity: degrees of rotation per screen unit of drag
//
// Returns:
//   - CameraBuilderOption: option function to apply
func WithMouseSensitivity(sensitivity float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.mouseSensitivity = sensitivity
	}
}
