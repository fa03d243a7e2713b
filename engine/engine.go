package engine

import (
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/vista-go/engine/camera"
	"github.com/Carmen-Shannon/vista-go/engine/config"
	"github.com/Carmen-Shannon/vista-go/engine/logger"
	"github.com/Carmen-Shannon/vista-go/engine/profiler"
	"github.com/Carmen-Shannon/vista-go/engine/scene"
	"github.com/Carmen-Shannon/vista-go/engine/shader"
	"github.com/Carmen-Shannon/vista-go/engine/store"
	"github.com/Carmen-Shannon/vista-go/engine/view"
	"github.com/Carmen-Shannon/vista-go/engine/window"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// cameraProfileName is the profile row the viewer saves on shutdown.
const cameraProfileName = "last_session"

// viewer implements the Viewer interface. It owns the window, the scene, the
// view manager and the optional persistence store, and drives the whole frame
// loop on one OS thread.
type viewer struct {
	settings config.Settings

	window   window.Window
	scene    scene.Scene
	view     view.Manager
	store    store.Store
	profiler *profiler.Profiler

	profilingEnabled bool

	shader   shader.Shader
	lastTime float64
}

// Viewer is the main entry point. It orchestrates input, camera updates,
// projection selection and scene drawing in a single frame-synchronous loop.
type Viewer interface {
	// Run opens the window, prepares the scene and blocks in the frame loop
	// until the window closes. Must be called from the main goroutine. On
	// return all GPU and store resources are released.
	//
	// Returns:
	//   - error: error if the GL context or shader setup fails
	Run() error

	// View returns the view manager driving the camera and projection.
	//
	// Returns:
	//   - view.Manager: the view manager
	View() view.Manager

	// Scene returns the composed scene.
	//
	// Returns:
	//   - scene.Scene: the scene
	Scene() scene.Scene

	// Store returns the persistence store. Never nil; a no-op store stands in
	// when the database is unavailable.
	//
	// Returns:
	//   - store.Store: the store
	Store() store.Store
}

var _ Viewer = &viewer{}

// NewViewer creates a viewer from the given options. Without options it uses
// the default settings, the desk scene and a store at the configured path.
//
// Parameters:
//   - options: functional options, see engine_builder.go
//
// Returns:
//   - Viewer: the configured viewer
func NewViewer(options ...ViewerBuilderOption) Viewer {
	v := &viewer{
		settings: config.Default(),
		profiler: profiler.NewProfiler(),
	}
	for _, opt := range options {
		opt(v)
	}

	if v.scene == nil {
		v.scene = scene.NewScene()
	}
	if v.view == nil {
		v.view = view.NewManager(view.WithCamera(cameraFromSettings(v.settings)))
	}
	if v.store == nil {
		if v.settings.Store.Path == "" {
			v.store = store.Disabled()
		} else {
			v.store = store.Open(v.settings.Store.Path)
		}
	}
	if !v.profilingEnabled {
		v.profilingEnabled = v.settings.Profiler.Enabled
	}

	return v
}

// cameraFromSettings builds a camera from the configured position,
// orientation and tuning values.
func cameraFromSettings(settings config.Settings) camera.Camera {
	return camera.NewCamera(
		camera.WithPosition(mgl32.Vec3(settings.Camera.Position)),
		camera.WithFront(mgl32.Vec3(settings.Camera.Front)),
		camera.WithUp(mgl32.Vec3(settings.Camera.Up)),
		camera.WithZoom(settings.Camera.Zoom),
		camera.WithMovementSpeed(settings.Camera.MovementSpeed),
		camera.WithMouseSensitivity(settings.Camera.MouseSensitivity),
	)
}

func (v *viewer) View() view.Manager {
	return v.view
}

func (v *viewer) Scene() scene.Scene {
	return v.scene
}

func (v *viewer) Store() store.Store {
	return v.store
}

func (v *viewer) Run() error {
	// The GL context and every draw call live on this thread.
	runtime.LockOSThread()

	if v.window == nil {
		v.window = window.NewWindow(
			window.WithTitle(v.settings.Window.Title),
			window.WithWidth(v.settings.Window.Width),
			window.WithHeight(v.settings.Window.Height),
		)
	}
	defer func() {
		if err := v.window.Close(); err != nil {
			logger.Log.Warn("window close failed", zap.Error(err))
		}
	}()

	if err := gl.Init(); err != nil {
		v.store.LogError("engine", fmt.Sprintf("gl init: %v", err))
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	sh, err := shader.NewShader(shader.WithName("scene"))
	if err != nil {
		v.store.LogError("engine", fmt.Sprintf("shader setup: %v", err))
		return fmt.Errorf("failed to build scene shader: %w", err)
	}
	v.shader = sh
	defer v.shader.Release()

	gl.Enable(gl.DEPTH_TEST)

	v.shader.Use()
	if err := v.scene.Prepare(v.shader); err != nil {
		v.store.LogError("engine", fmt.Sprintf("scene prepare: %v", err))
		return fmt.Errorf("failed to prepare scene: %w", err)
	}
	defer v.scene.Release()
	defer v.store.Close()
	defer v.saveCameraProfile()

	v.window.SetMouseMoveCallback(v.view.OnMouseMove)
	v.window.SetScrollCallback(v.view.OnScroll)
	v.window.SetUpdateCallback(v.frame)

	v.lastTime = v.window.Time()
	logger.Log.Info("viewer running",
		zap.Int("width", v.window.Width()),
		zap.Int("height", v.window.Height()))

	v.window.ProcessMessages()
	return nil
}

// frame runs once per message-loop iteration: advance the camera from held
// keys, push view state, draw the scene and present.
func (v *viewer) frame() {
	now := v.window.Time()
	deltaTime := float32(now - v.lastTime)
	v.lastTime = now

	v.view.ProcessKeyboard(v.window, deltaTime)

	gl.Viewport(0, 0, int32(v.window.Width()), int32(v.window.Height()))
	gl.ClearColor(0.1, 0.1, 0.1, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	v.shader.Use()
	v.view.Apply(v.shader, v.window.Width(), v.window.Height())
	v.scene.Render(v.shader)

	v.window.SwapBuffers()

	if v.profilingEnabled {
		if sample, ok := v.profiler.Accumulate(float64(deltaTime)); ok {
			v.store.LogTelemetry(sample.FPS, sample.FrameMs)
		}
	}
}

// saveCameraProfile persists the final camera pose so the next session can
// inspect where the user left off.
func (v *viewer) saveCameraProfile() {
	cam := v.view.Camera()
	pos := cam.Position()
	if !v.store.SaveCameraProfile(cameraProfileName, pos.X(), pos.Y(), pos.Z(), cam.Zoom(), v.view.Mode().String()) {
		logger.Log.Debug("camera profile not saved")
	}
}
