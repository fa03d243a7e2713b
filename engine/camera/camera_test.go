package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()
	assert.Equal(t, mgl32.Vec3{0, 5, 12}, c.Position())
	assert.InDelta(t, 80.0, float64(c.Zoom()), 1e-6)
	assert.InDelta(t, 20.0, float64(c.MovementSpeed()), 1e-6)
}

func TestNewCameraDerivesAnglesFromFront(t *testing.T) {
	front := mgl32.Vec3{0, -0.5, -2}.Normalize()
	c := NewCamera(WithFront(mgl32.Vec3{0, -0.5, -2}))

	got := c.Front()
	assert.InDelta(t, float64(front.X()), float64(got.X()), 1e-5)
	assert.InDelta(t, float64(front.Y()), float64(got.Y()), 1e-5)
	assert.InDelta(t, float64(front.Z()), float64(got.Z()), 1e-5)
}

func TestProcessMouseScrollFloorsSpeed(t *testing.T) {
	c := NewCamera(WithMovementSpeed(2))
	for i := 0; i < 100; i++ {
		c.ProcessMouseScroll(-1)
	}
	assert.InDelta(t, 0.5, float64(c.MovementSpeed()), 1e-6)

	c.ProcessMouseScroll(3)
	assert.InDelta(t, 3.5, float64(c.MovementSpeed()), 1e-6)
}

func TestProcessKeyboardMovesAlongAxes(t *testing.T) {
	c := NewCamera(
		WithPosition(mgl32.Vec3{0, 0, 0}),
		WithFront(mgl32.Vec3{0, 0, -1}),
		WithMovementSpeed(10),
	)

	c.ProcessKeyboard(MovementForward, 0.5)
	pos := c.Position()
	assert.InDelta(t, -5.0, float64(pos.Z()), 1e-5)
	assert.InDelta(t, 0.0, float64(pos.X()), 1e-5)

	c.ProcessKeyboard(MovementBackward, 0.5)
	pos = c.Position()
	assert.InDelta(t, 0.0, float64(pos.Z()), 1e-5)

	c.ProcessKeyboard(MovementRight, 0.5)
	pos = c.Position()
	assert.InDelta(t, 5.0, float64(pos.X()), 1e-5)

	c.ProcessKeyboard(MovementUp, 0.5)
	pos = c.Position()
	assert.InDelta(t, 5.0, float64(pos.Y()), 1e-5)
}

func TestProcessMouseMovementClampsPitch(t *testing.T) {
	c := NewCamera(WithFront(mgl32.Vec3{0, 0, -1}), WithMouseSensitivity(1))

	c.ProcessMouseMovement(0, 500)
	assert.InDelta(t, 89.0, float64(c.Pitch()), 1e-5)

	c.ProcessMouseMovement(0, -2000)
	assert.InDelta(t, -89.0, float64(c.Pitch()), 1e-5)
}

func TestProcessMouseMovementUpdatesYaw(t *testing.T) {
	c := NewCamera(WithFront(mgl32.Vec3{0, 0, -1}), WithMouseSensitivity(0.1))
	startYaw := c.Yaw()

	c.ProcessMouseMovement(100, 0)
	assert.InDelta(t, float64(startYaw+10), float64(c.Yaw()), 1e-5)
	assert.InDelta(t, float64(c.Pitch()), 0, 1e-5)

	// front stays unit length after an arbitrary drag
	c.ProcessMouseMovement(37, -12)
	require.InDelta(t, 1.0, float64(c.Front().Len()), 1e-5)
}

func TestViewMatrixMatchesLookAt(t *testing.T) {
	c := NewCamera(
		WithPosition(mgl32.Vec3{1, 2, 3}),
		WithFront(mgl32.Vec3{0, 0, -1}),
	)

	want := mgl32.LookAtV(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 2, 2}, mgl32.Vec3{0, 1, 0})
	got := c.ViewMatrix()
	for i := 0; i < 16; i++ {
		assert.InDelta(t, float64(want[i]), float64(got[i]), 1e-5)
	}
}
