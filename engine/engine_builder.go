package engine

import (
	"github.com/Carmen-Shannon/vista-go/engine/config"
	"github.com/Carmen-Shannon/vista-go/engine/scene"
	"github.com/Carmen-Shannon/vista-go/engine/store"
	"github.com/Carmen-Shannon/vista-go/engine/view"
	"github.com/Carmen-Shannon/vista-go/engine/window"
)

// ViewerBuilderOption is a functional option for configuring a Viewer.
// Use the With* functions to create options that are applied directly to the viewer instance.
type ViewerBuilderOption func(*viewer)

// WithSettings replaces the default settings.
//
// Parameters:
//   - settings: the settings to use
//
// Returns:
//   - ViewerBuilderOption: option function to apply
func WithSettings(settings config.Settings) ViewerBuilderOption {
	return func(v *viewer) {
		v.settings = settings
	}
}

// WithWindow attaches an existing window instead of creating one from the
// settings during Run.
//
// Parameters:
//   - w: the window to use
//
// Returns:
//   - ViewerBuilderOption: option function to apply
func WithWindow(w window.Window) ViewerBuilderOption {
	return func(v *viewer) {
		v.window = w
	}
}

// WithScene replaces the default desk scene.
//
// Parameters:
//   - s: the scene to render
//
// Returns:
//   - ViewerBuilderOption: option function to apply
func WithScene(s scene.Scene) ViewerBuilderOption {
	return func(v *viewer) {
		v.scene = s
	}
}

// WithViewManager replaces the view manager built from the settings.
//
// Parameters:
//   - m: the view manager to use
//
// Returns:
//   - ViewerBuilderOption: option function to apply
func WithViewManager(m view.Manager) ViewerBuilderOption {
	return func(v *viewer) {
		v.view = m
	}
}

// WithStore attaches an existing store instead of opening one from the
// configured path.
//
// Parameters:
//   - s: the store to use
//
// Returns:
//   - ViewerBuilderOption: option function to apply
func WithStore(s store.Store) ViewerBuilderOption {
	return func(v *viewer) {
		v.store = s
	}
}

// WithProfiling enables or disables once-per-second frame telemetry.
//
// Parameters:
//   - enabled: if true, enables telemetry sampling
//
// Returns:
//   - ViewerBuilderOption: option function to apply
func WithProfiling(enabled bool) ViewerBuilderOption {
	return func(v *viewer) {
		v.profilingEnabled = enabled
	}
}
