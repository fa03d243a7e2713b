package engine

import (
	"testing"

	"github.com/Carmen-Shannon/vista-go/engine/config"
	"github.com/Carmen-Shannon/vista-go/engine/store"
	"github.com/Carmen-Shannon/vista-go/engine/view"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraFromSettings(t *testing.T) {
	settings := config.Default()
	settings.Camera.Position = [3]float32{1, 2, 3}
	settings.Camera.Zoom = 45
	settings.Camera.MovementSpeed = 7

	cam := cameraFromSettings(settings)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, cam.Position())
	assert.InDelta(t, 45.0, float64(cam.Zoom()), 1e-6)
	assert.InDelta(t, 7.0, float64(cam.MovementSpeed()), 1e-6)
}

func TestNewViewerEmptyStorePathDisablesPersistence(t *testing.T) {
	settings := config.Default()
	settings.Store.Path = ""

	v := NewViewer(WithSettings(settings))
	require.NotNil(t, v.Store())
	assert.False(t, v.Store().LogTelemetry(60, 16.6))
}

func TestNewViewerAppliesOptions(t *testing.T) {
	m := view.NewManager(view.WithMode(view.ModeOrthographic))
	v := NewViewer(WithViewManager(m), WithStore(store.Disabled()))

	assert.Equal(t, view.ModeOrthographic, v.View().Mode())
	assert.False(t, v.Store().LogError("test", "message"))
	assert.NotNil(t, v.Scene())
}
