package scene

import (
	"github.com/Carmen-Shannon/vista-go/engine/light"
	"github.com/Carmen-Shannon/vista-go/engine/material"
	"github.com/Carmen-Shannon/vista-go/engine/mesh"
	"github.com/Carmen-Shannon/vista-go/engine/texture"
)

// SceneOption is a functional option for configuring a scene during
// construction. Use the With* functions to create options.
type SceneOption func(*sceneImpl)

// WithTextureRegistry sets the texture registry the scene loads into.
//
// Parameters:
//   - registry: the registry
//
// Returns:
//   - SceneOption: option function to apply
func WithTextureRegistry(registry texture.Registry) SceneOption {
	return func(s *sceneImpl) {
		s.textures = registry
	}
}

// WithMaterialTable sets the material table the scene defines into.
//
// Parameters:
//   - table: the table
//
// Returns:
//   - SceneOption: option function to apply
func WithMaterialTable(table material.Table) SceneOption {
	return func(s *sceneImpl) {
		s.materials = table
	}
}

// WithMeshProvider sets the mesh provider the scene draws with.
//
// Parameters:
//   - provider: the provider
//
// Returns:
//   - SceneOption: option function to apply
func WithMeshProvider(provider mesh.Provider) SceneOption {
	return func(s *sceneImpl) {
		s.meshes = provider
	}
}

// WithDecoder sets the image decoder used during Prepare.
//
// Parameters:
//   - decoder: the decoder
//
// Returns:
//   - SceneOption: option function to apply
func WithDecoder(decoder texture.Decoder) SceneOption {
	return func(s *sceneImpl) {
		s.decoder = decoder
	}
}

// WithLightRig sets the light rig Prepare pushes to the sink.
//
// Parameters:
//   - rig: the rig
//
// Returns:
//   - SceneOption: option function to apply
func WithLightRig(rig light.Rig) SceneOption {
	return func(s *sceneImpl) {
		s.rig = rig
	}
}

// WithTextureSources replaces the texture sources loaded at Prepare.
//
// Parameters:
//   - sources: the tag/path pairs to load
//
// Returns:
//   - SceneOption: option function to apply
func WithTextureSources(sources []TextureSource) SceneOption {
	return func(s *sceneImpl) {
		s.sources = sources
	}
}

// WithSteps replaces the draw list.
//
// Parameters:
//   - steps: the ordered draw steps
//
// Returns:
//   - SceneOption: option function to apply
func WithSteps(steps []DrawStep) SceneOption {
	return func(s *sceneImpl) {
		s.steps = steps
	}
}

// WithDecodeWorkers sets the worker count for parallel texture decoding.
//
// Parameters:
//   - workers: the worker count
//
// Returns:
//   - SceneOption: option function to apply
func WithDecodeWorkers(workers int) SceneOption {
	return func(s *sceneImpl) {
		if workers > 0 {
			s.decodeWorkers = workers
		}
	}
}
