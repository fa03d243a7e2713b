package scene

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/vista-go/engine/light"
	"github.com/Carmen-Shannon/vista-go/engine/logger"
	"github.com/Carmen-Shannon/vista-go/engine/material"
	"github.com/Carmen-Shannon/vista-go/engine/mesh"
	"github.com/Carmen-Shannon/vista-go/engine/shader"
	"github.com/Carmen-Shannon/vista-go/engine/texture"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// TextureSource names an image file to load into the registry under a tag.
type TextureSource struct {
	Tag  string
	Path string
}

// DrawStep describes one object in the frame: mesh kind, transform parameters
// and appearance. When TextureTag is set the step draws textured, otherwise it
// draws with the literal Color. MaterialTag is optional either way.
type DrawStep struct {
	Kind     mesh.Kind
	Scale    mgl32.Vec3
	RotX     float32
	RotY     float32
	RotZ     float32
	Position mgl32.Vec3

	TextureTag  string
	UVScale     mgl32.Vec2
	MaterialTag string
	Color       mgl32.Vec4
}

var _ Scene = &sceneImpl{}

type sceneImpl struct {
	mu sync.Mutex

	textures  texture.Registry
	materials material.Table
	meshes    mesh.Provider
	decoder   texture.Decoder
	rig       light.Rig

	sources []TextureSource
	steps   []DrawStep

	prepared bool
	released bool

	// decodePool runs image decodes off the render thread during Prepare.
	// Uploads still happen on the caller's thread.
	decodePool    worker.DynamicWorkerPool
	decodeWorkers int
}

// Scene owns the fixed draw list and the asset registries behind it.
type Scene interface {
	// Prepare decodes and uploads textures, defines materials, configures
	// lights on the sink and uploads the meshes the draw list needs. Must be
	// called once, on the rendering thread, before the first Render. Decode
	// failures are logged and leave the affected tag absent; Prepare only
	// returns an error when mesh upload fails.
	//
	// Parameters:
	//   - sink: the uniform sink receiving the light configuration
	//
	// Returns:
	//   - error: error if mesh upload fails
	Prepare(sink shader.UniformSink) error

	// Render walks the draw list in order. For each step it pushes the model
	// matrix and appearance state to the sink, then issues the draw call.
	// State is always pushed before the draw it belongs to and never
	// interleaved across steps.
	//
	// Parameters:
	//   - sink: the uniform sink to write to
	Render(sink shader.UniformSink)

	// Steps returns the draw list.
	//
	// Returns:
	//   - []DrawStep: the ordered draw steps
	Steps() []DrawStep

	// Textures returns the scene's texture registry.
	//
	// Returns:
	//   - texture.Registry: the registry
	Textures() texture.Registry

	// Materials returns the scene's material table.
	//
	// Returns:
	//   - material.Table: the table
	Materials() material.Table

	// Release frees every texture handle and mesh buffer. Must be called
	// exactly once at teardown, on the rendering thread. Render after Release
	// is a no-op.
	Release()
}

// NewScene creates a scene. Without options it composes the desk scene with
// its default texture sources, materials and light rig.
//
// Parameters:
//   - options: optional configuration, see scene_builder.go
//
// Returns:
//   - Scene: the configured scene
func NewScene(options ...SceneOption) Scene {
	s := &sceneImpl{
		rig:           light.NewDeskRig(),
		decodeWorkers: runtime.NumCPU(),
	}
	for _, option := range options {
		option(s)
	}
	if s.decoder == nil {
		s.decoder = texture.NewDecoder()
	}
	if s.textures == nil {
		s.textures = texture.NewRegistry()
	}
	if s.materials == nil {
		s.materials = material.NewTable()
	}
	if s.meshes == nil {
		s.meshes = mesh.NewProvider()
	}
	if s.sources == nil {
		s.sources = deskTextureSources()
	}
	if s.steps == nil {
		s.steps = deskSteps()
	}

	// Queue size of 256 leaves headroom well past any realistic asset count.
	s.decodePool = worker.NewDynamicWorkerPool(s.decodeWorkers, 256, 1*time.Second)

	return s
}

func (s *sceneImpl) Prepare(sink shader.UniformSink) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.prepared || s.released {
		return nil
	}
	s.prepared = true

	type decoded struct {
		img texture.Image
		err error
	}
	results := make([]decoded, len(s.sources))

	var wg sync.WaitGroup
	for i, src := range s.sources {
		wg.Add(1)
		idx := i
		path := src.Path
		s.decodePool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				img, err := s.decoder.Decode(path, true)
				results[idx] = decoded{img: img, err: err}
				return nil, nil
			},
		})
	}
	wg.Wait()

	for i, src := range s.sources {
		if results[i].err != nil {
			logger.Log.Warn("texture decode failed",
				zap.String("tag", src.Tag),
				zap.String("path", src.Path),
				zap.Error(results[i].err))
			continue
		}
		if err := s.textures.Install(src.Tag, results[i].img); err != nil {
			logger.Log.Warn("texture upload failed",
				zap.String("tag", src.Tag),
				zap.Error(err))
		}
	}

	defineDeskMaterials(s.materials)
	s.rig.Apply(sink)

	kinds := make(map[mesh.Kind]struct{})
	for _, step := range s.steps {
		kinds[step.Kind] = struct{}{}
	}
	ordered := make([]mesh.Kind, 0, len(kinds))
	for kind := range kinds {
		ordered = append(ordered, kind)
	}
	if err := s.meshes.Load(ordered...); err != nil {
		return err
	}

	s.textures.BindAll()
	return nil
}

func (s *sceneImpl) Render(sink shader.UniformSink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return
	}

	for _, step := range s.steps {
		SetTransformations(sink, step.Scale, step.RotX, step.RotY, step.RotZ, step.Position)

		if step.TextureTag != "" {
			s.setShaderTexture(sink, step.TextureTag)
			s.setTextureUVScale(sink, step.UVScale)
		} else {
			setShaderColor(sink, step.Color)
		}
		if step.MaterialTag != "" {
			s.materials.Apply(step.MaterialTag, sink)
		}

		s.meshes.Draw(step.Kind)
	}
}

func (s *sceneImpl) Steps() []DrawStep {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]DrawStep, len(s.steps))
	copy(out, s.steps)
	return out
}

func (s *sceneImpl) Textures() texture.Registry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.textures
}

func (s *sceneImpl) Materials() material.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.materials
}

func (s *sceneImpl) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return
	}
	s.released = true
	s.textures.ReleaseAll()
	s.meshes.Release()
}

// setShaderColor switches the sink to solid-color mode with the given color.
func setShaderColor(sink shader.UniformSink, color mgl32.Vec4) {
	sink.SetBool("bUseTexture", false)
	sink.SetVec4("objectColor", color)
}

// setShaderTexture switches the sink to textured mode and points the sampler
// at the tag's texture unit. A missing tag binds unit -1, which the shader
// treats as no texture; callers see degraded visuals rather than a crash.
func (s *sceneImpl) setShaderTexture(sink shader.UniformSink, tag string) {
	slot := s.textures.Slot(tag)
	if slot < 0 {
		logger.Log.Debug("texture tag not found", zap.String("tag", tag))
	}
	sink.SetBool("bUseTexture", true)
	sink.SetSampler2D("objectTexture", int32(slot))
}

func (s *sceneImpl) setTextureUVScale(sink shader.UniformSink, uvScale mgl32.Vec2) {
	if uvScale.X() == 0 && uvScale.Y() == 0 {
		uvScale = mgl32.Vec2{1, 1}
	}
	sink.SetVec2("UVscale", uvScale)
}
