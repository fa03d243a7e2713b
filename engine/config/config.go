// package config defines the viewer settings and loads them from an optional
// TOML file layered over compiled-in defaults.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Settings holds every tunable the viewer reads at startup.
type Settings struct {
	Window   WindowSettings   `toml:"window"`
	Camera   CameraSettings   `toml:"camera"`
	Store    StoreSettings    `toml:"store"`
	Profiler ProfilerSettings `toml:"profiler"`
}

// WindowSettings configures the display window.
type WindowSettings struct {
	// Title is the window title displayed in the title bar.
	Title string `toml:"title"`
	// Width is the initial window client area width in pixels.
	Width int `toml:"width"`
	// Height is the initial window client area height in pixels.
	Height int `toml:"height"`
}

// CameraSettings configures the initial camera pose and input response.
type CameraSettings struct {
	// Position is the camera position in world space.
	Position [3]float32 `toml:"position"`
	// Front is the initial viewing direction (normalized internally).
	Front [3]float32 `toml:"front"`
	// Up is the world up vector.
	Up [3]float32 `toml:"up"`
	// Zoom is the field-of-view proxy in degrees for perspective projection.
	Zoom float32 `toml:"zoom"`
	// MovementSpeed is the key-hold translation speed in units per second.
	MovementSpeed float32 `toml:"movement_speed"`
	// MouseSensitivity scales mouse-drag deltas into yaw/pitch degrees.
	MouseSensitivity float32 `toml:"mouse_sensitivity"`
}

// StoreSettings configures the optional persistence layer.
type StoreSettings struct {
	// Path is the SQLite database file. Empty disables persistence.
	Path string `toml:"path"`
}

// ProfilerSettings configures the frame telemetry sampler.
type ProfilerSettings struct {
	// Enabled turns the per-second FPS/frame-time sampling on or off.
	Enabled bool `toml:"enabled"`
}

// Default returns the compiled-in settings used when no file overrides them.
// The camera pose matches the composed desk scene.
//
// Returns:
//   - Settings: the default settings
func Default() Settings {
	return Settings{
		Window: WindowSettings{
			Title:  "vista",
			Width:  1000,
			Height: 800,
		},
		Camera: CameraSettings{
			Position:         [3]float32{0, 5, 12},
			Front:            [3]float32{0, -0.5, -2},
			Up:               [3]float32{0, 1, 0},
			Zoom:             80,
			MovementSpeed:    20,
			MouseSensitivity: 0.1,
		},
		Store: StoreSettings{
			Path: "app.db",
		},
		Profiler: ProfilerSettings{
			Enabled: true,
		},
	}
}

// Load reads settings from the given TOML file, layered over Default.
// A missing file is not an error; the defaults are returned unchanged.
//
// Parameters:
//   - path: the TOML file to read
//
// Returns:
//   - Settings: the merged settings
//   - error: error if the file exists but cannot be read or parsed
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	return s, nil
}
