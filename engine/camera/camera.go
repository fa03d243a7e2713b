package camera

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/vista-go/common"
)

// Movement identifies one translation direction for key-hold navigation.
type Movement int

const (
	// MovementForward moves along the front vector.
	MovementForward Movement = iota
	// MovementBackward moves against the front vector.
	MovementBackward
	// MovementLeft moves against the right vector.
	MovementLeft
	// MovementRight moves along the right vector.
	MovementRight
	// MovementUp moves along the up vector.
	MovementUp
	// MovementDown moves against the up vector.
	MovementDown
)

const (
	// pitchLimit keeps the pitch away from the poles to avoid a gimbal flip.
	pitchLimit = 89.0

	// minMovementSpeed is the positive floor for scroll-adjusted speed.
	minMovementSpeed = 0.5
)

// cameraImpl is the implementation of the Camera interface.
type cameraImpl struct {
	mu *sync.Mutex

	position mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3

	// yaw and pitch in degrees; front is always derived from them.
	yaw   float32
	pitch float32

	// zoom is the field-of-view proxy in degrees for perspective projection.
	zoom float32

	movementSpeed    float32
	mouseSensitivity float32
}

// Camera owns the continuously-valued navigation state: position, orientation
// (yaw/pitch with a derived front vector), zoom, and movement speed.
//
// State is advanced by three independent input channels: mouse-drag deltas feed
// orientation, scroll feeds movement speed, and key-holds feed position. The
// camera is mutated only from the render thread's input processing; the mutex
// exists so occasional off-frame reads (profile saves) are safe.
type Camera interface {
	// Position returns the camera position in world space.
	//
	// Returns:
	//   - mgl32.Vec3: the position
	Position() mgl32.Vec3

	// SetPosition sets the camera position in world space.
	//
	// Parameters:
	//   - position: the new position
	SetPosition(position mgl32.Vec3)

	// Front returns the normalized viewing direction.
	//
	// Returns:
	//   - mgl32.Vec3: the front vector
	Front() mgl32.Vec3

	// Up returns the camera's up vector.
	//
	// Returns:
	//   - mgl32.Vec3: the up vector
	Up() mgl32.Vec3

	// Yaw returns the yaw angle in degrees.
	//
	// Returns:
	//   - float32: yaw in degrees
	Yaw() float32

	// Pitch returns the pitch angle in degrees.
	//
	// Returns:
	//   - float32: pitch in degrees, clamped to (-90, 90)
	Pitch() float32

	// Zoom returns the field-of-view proxy in degrees.
	// Drives perspective projection only; unrelated to dolly movement.
	//
	// Returns:
	//   - float32: zoom in degrees
	Zoom() float32

	// SetZoom sets the field-of-view proxy in degrees.
	//
	// Parameters:
	//   - zoom: zoom in degrees
	SetZoom(zoom float32)

	// MovementSpeed returns the key-hold translation speed in units per second.
	//
	// Returns:
	//   - float32: the movement speed
	MovementSpeed() float32

	// ProcessMouseMovement feeds one mouse-drag delta into the orientation.
	// Yaw and pitch change by the delta scaled by the mouse sensitivity; pitch
	// is clamped away from the poles and the front vector is recomputed.
	//
	// Parameters:
	//   - dx: horizontal delta in screen units (positive = drag right)
	//   - dy: vertical delta in world-up units (positive = drag up)
	ProcessMouseMovement(dx, dy float32)

	// ProcessMouseScroll adjusts the movement speed by the scroll offset.
	// The speed never drops below a small positive floor.
	//
	// Parameters:
	//   - yOffset: scroll delta (positive = faster)
	ProcessMouseScroll(yOffset float32)

	// ProcessKeyboard translates the position for one held key this frame.
	// The step is movementSpeed * deltaTime along the direction's axis.
	//
	// Parameters:
	//   - direction: which axis to move along
	//   - deltaTime: seconds elapsed since the previous frame
	ProcessKeyboard(direction Movement, deltaTime float32)

	// ViewMatrix returns the look-at matrix from position toward
	// position + front with the camera's up vector.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with the given options.
// The initial yaw and pitch are derived from the configured front vector, so
// the first mouse drag continues from the configured orientation instead of
// snapping to a default one.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:               &sync.Mutex{},
		position:         mgl32.Vec3{0, 5, 12},
		front:            mgl32.Vec3{0, 0, -1},
		up:               mgl32.Vec3{0, 1, 0},
		zoom:             80,
		movementSpeed:    20,
		mouseSensitivity: 0.1,
	}
	for _, opt := range options {
		opt(c)
	}
	c.deriveAnglesFromFront()
	c.updateVectors()
	return c
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) SetPosition(position mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = position
}

func (c *cameraImpl) Front() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.front
}

func (c *cameraImpl) Up() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraImpl) Yaw() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.yaw
}

func (c *cameraImpl) Pitch() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pitch
}

func (c *cameraImpl) Zoom() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.zoom
}

func (c *cameraImpl) SetZoom(zoom float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.zoom = zoom
}

func (c *cameraImpl) MovementSpeed() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.movementSpeed
}

func (c *cameraImpl) ProcessMouseMovement(dx, dy float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.yaw += dx * c.mouseSensitivity
	c.pitch += dy * c.mouseSensitivity
	c.pitch = common.Clamp(c.pitch, -pitchLimit, pitchLimit)
	c.updateVectors()
}

func (c *cameraImpl) ProcessMouseScroll(yOffset float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.movementSpeed += yOffset
	if c.movementSpeed < minMovementSpeed {
		c.movementSpeed = minMovementSpeed
	}
}

func (c *cameraImpl) ProcessKeyboard(direction Movement, deltaTime float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	velocity := c.movementSpeed * deltaTime
	switch direction {
	case MovementForward:
		c.position = c.position.Add(c.front.Mul(velocity))
	case MovementBackward:
		c.position = c.position.Sub(c.front.Mul(velocity))
	case MovementLeft:
		c.position = c.position.Sub(c.right.Mul(velocity))
	case MovementRight:
		c.position = c.position.Add(c.right.Mul(velocity))
	case MovementUp:
		c.position = c.position.Add(c.up.Mul(velocity))
	case MovementDown:
		c.position = c.position.Sub(c.up.Mul(velocity))
	}
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// deriveAnglesFromFront initializes yaw/pitch from the configured front vector.
// Caller must hold the mutex (or be in construction).
func (c *cameraImpl) deriveAnglesFromFront() {
	f := c.front
	if f.Len() == 0 {
		f = mgl32.Vec3{0, 0, -1}
	}
	f = f.Normalize()
	c.pitch = mgl32.RadToDeg(float32(math.Asin(float64(f.Y()))))
	c.yaw = mgl32.RadToDeg(float32(math.Atan2(float64(f.Z()), float64(f.X()))))
}

// updateVectors recomputes front and right from yaw/pitch.
// Caller must hold the mutex (or be in construction).
func (c *cameraImpl) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))
	c.front = mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
	c.right = c.front.Cross(mgl32.Vec3{0, 1, 0}).Normalize()
}
