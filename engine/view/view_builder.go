package view

import (
	"github.com/Carmen-Shannon/vista-go/engine/camera"
)

// ManagerOption is a functional option for configuring a view manager during
// construction. Use the With* functions to create options.
type ManagerOption func(*managerImpl)

// WithCamera sets the camera the manager drives. When omitted a camera with
// default settings is created.
//
// Parameters:
//   - c: the camera to manage
//
// Returns:
//   - ManagerOption: option function to apply
func WithCamera(c camera.Camera) ManagerOption {
	return func(m *managerImpl) {
		m.camera = c
	}
}

// WithMode sets the initial projection mode.
//
// Parameters:
//   - mode: the projection mode
//
// Returns:
//   - ManagerOption: option function to apply
func WithMode(mode Mode) ManagerOption {
	return func(m *managerImpl) {
		m.mode = mode
	}
}
