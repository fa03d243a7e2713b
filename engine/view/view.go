package view

import (
	"sync"

	"github.com/Carmen-Shannon/vista-go/common"
	"github.com/Carmen-Shannon/vista-go/engine/camera"
	"github.com/Carmen-Shannon/vista-go/engine/shader"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	nearPlane = 0.1
	farPlane  = 100.0

	// orthographic frustum half-height in world units
	orthoHalfHeight = 10.0
)

// Mode selects how the scene is projected onto the viewport.
type Mode int

const (
	// ModePerspective projects with a field of view derived from the camera zoom.
	ModePerspective Mode = iota
	// ModeOrthographic projects with a fixed-height parallel frustum.
	ModeOrthographic
)

// String returns the projection mode label used for camera profiles.
//
// Returns:
//   - string: "PERSPECTIVE" or "ORTHO"
func (m Mode) String() string {
	if m == ModeOrthographic {
		return "ORTHO"
	}
	return "PERSPECTIVE"
}

// InputSource exposes the per-frame key state the view manager polls.
type InputSource interface {
	// IsKeyDown reports whether the key with the given code is currently held.
	//
	// Parameters:
	//   - key: the key code, see common/key_codes.go
	//
	// Returns:
	//   - bool: true while the key is held
	IsKeyDown(key int) bool

	// RequestClose asks the host window to end the frame loop.
	RequestClose()
}

var _ Manager = &managerImpl{}

type managerImpl struct {
	mu sync.Mutex

	camera camera.Camera
	mode   Mode

	lastX     float64
	lastY     float64
	firstMove bool
}

// Manager owns the camera, the mouse tracking state and the projection mode,
// and pushes the per-frame view uniforms.
type Manager interface {
	// Camera returns the camera this manager drives.
	//
	// Returns:
	//   - camera.Camera: the managed camera
	Camera() camera.Camera

	// Mode returns the active projection mode.
	//
	// Returns:
	//   - Mode: the current mode
	Mode() Mode

	// OnMouseMove consumes an absolute cursor position. The first event after
	// construction only seeds the tracked position; later events rotate the
	// camera by the delta since the previous event. Vertical deltas are
	// inverted so dragging up pitches the view up.
	//
	// Parameters:
	//   - x: cursor x in screen coordinates
	//   - y: cursor y in screen coordinates
	OnMouseMove(x, y float64)

	// OnScroll consumes a scroll event and adjusts the camera movement speed.
	//
	// Parameters:
	//   - yOffset: scroll wheel delta
	OnScroll(yOffset float64)

	// ProcessKeyboard polls the held keys once per frame. W/A/S/D translate
	// on the camera plane, Q/E translate vertically, P and O switch the
	// projection mode and Esc requests the window to close.
	//
	// Parameters:
	//   - input: the key state source
	//   - deltaTime: seconds since the previous frame
	ProcessKeyboard(input InputSource, deltaTime float32)

	// Apply pushes the view matrix, projection matrix and camera position to
	// the sink. It pushes every frame regardless of whether anything changed.
	//
	// Parameters:
	//   - sink: the uniform sink to write to
	//   - width: viewport width in pixels
	//   - height: viewport height in pixels
	Apply(sink shader.UniformSink, width, height int)
}

// NewManager creates a view manager around the given options.
//
// Parameters:
//   - options: optional configuration, see view_builder.go
//
// Returns:
//   - Manager: the configured manager
func NewManager(options ...ManagerOption) Manager {
	m := &managerImpl{
		mode:      ModePerspective,
		firstMove: true,
	}
	for _, opt := range options {
		opt(m)
	}
	if m.camera == nil {
		m.camera = camera.NewCamera()
	}
	return m
}

func (m *managerImpl) Camera() camera.Camera {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.camera
}

func (m *managerImpl) Mode() Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mode
}

func (m *managerImpl) OnMouseMove(x, y float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.firstMove {
		m.lastX = x
		m.lastY = y
		m.firstMove = false
		return
	}

	dx := float32(x - m.lastX)
	dy := float32(m.lastY - y)
	m.lastX = x
	m.lastY = y

	m.camera.ProcessMouseMovement(dx, dy)
}

func (m *managerImpl) OnScroll(yOffset float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.camera.ProcessMouseScroll(float32(yOffset))
}

func (m *managerImpl) ProcessKeyboard(input InputSource, deltaTime float32) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if input.IsKeyDown(common.KeyEsc) {
		input.RequestClose()
	}

	if input.IsKeyDown(common.KeyW) {
		m.camera.ProcessKeyboard(camera.MovementForward, deltaTime)
	}
	if input.IsKeyDown(common.KeyS) {
		m.camera.ProcessKeyboard(camera.MovementBackward, deltaTime)
	}
	if input.IsKeyDown(common.KeyA) {
		m.camera.ProcessKeyboard(camera.MovementLeft, deltaTime)
	}
	if input.IsKeyDown(common.KeyD) {
		m.camera.ProcessKeyboard(camera.MovementRight, deltaTime)
	}
	if input.IsKeyDown(common.KeyQ) {
		m.camera.ProcessKeyboard(camera.MovementUp, deltaTime)
	}
	if input.IsKeyDown(common.KeyE) {
		m.camera.ProcessKeyboard(camera.MovementDown, deltaTime)
	}

	if input.IsKeyDown(common.KeyP) {
		m.mode = ModePerspective
	}
	if input.IsKeyDown(common.KeyO) {
		m.mode = ModeOrthographic
	}
}

func (m *managerImpl) Apply(sink shader.UniformSink, width, height int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}

	var projection mgl32.Mat4
	if m.mode == ModeOrthographic {
		halfWidth := float32(orthoHalfHeight) * aspect
		projection = mgl32.Ortho(-halfWidth, halfWidth, -orthoHalfHeight, orthoHalfHeight, nearPlane, farPlane)
	} else {
		projection = mgl32.Perspective(mgl32.DegToRad(m.camera.Zoom()), aspect, nearPlane, farPlane)
	}

	sink.SetMat4("view", m.camera.ViewMatrix())
	sink.SetMat4("projection", projection)
	sink.SetVec3("viewPosition", m.camera.Position())
}
