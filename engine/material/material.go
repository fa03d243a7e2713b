package material

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/vista-go/engine/shader"
)

// materialImpl is the implementation of the Material interface.
type materialImpl struct {
	tag       string
	diffuse   mgl32.Vec3
	specular  mgl32.Vec3
	shininess float32
}

// Material describes the Phong surface properties looked up by tag.
// Materials are immutable once defined for a session.
type Material interface {
	// Tag returns the material's stable string key.
	//
	// Returns:
	//   - string: the material tag
	Tag() string

	// Diffuse returns the RGB diffuse reflectance.
	//
	// Returns:
	//   - mgl32.Vec3: color as (r, g, b)
	Diffuse() mgl32.Vec3

	// Specular returns the RGB specular reflectance.
	//
	// Returns:
	//   - mgl32.Vec3: color as (r, g, b)
	Specular() mgl32.Vec3

	// Shininess returns the specular exponent.
	//
	// Returns:
	//   - float32: the shininess value
	Shininess() float32
}

var _ Material = &materialImpl{}

func (m *materialImpl) Tag() string {
	return m.tag
}

func (m *materialImpl) Diffuse() mgl32.Vec3 {
	return m.diffuse
}

func (m *materialImpl) Specular() mgl32.Vec3 {
	return m.specular
}

func (m *materialImpl) Shininess() float32 {
	return m.shininess
}

// tableImpl is the implementation of the Table interface.
type tableImpl struct {
	mu        *sync.Mutex
	materials map[string]Material
}

// Table is the session-scoped collection of named materials.
//
// Lookup through Apply pushes the found material straight to the uniform sink;
// this push-on-lookup is the immediate-mode binding discipline the scene driver
// depends on. Materials are never removed; Define overwrites by tag.
type Table interface {
	// Define inserts or overwrites a material by tag.
	//
	// Parameters:
	//   - tag: the stable string key
	//   - diffuse: RGB diffuse reflectance
	//   - specular: RGB specular reflectance
	//   - shininess: specular exponent
	Define(tag string, diffuse, specular mgl32.Vec3, shininess float32)

	// Find returns the material defined under tag without touching the sink.
	//
	// Parameters:
	//   - tag: the material key to look up
	//
	// Returns:
	//   - Material: the material, or nil if not found
	//   - bool: true if the tag is defined
	Find(tag string) (Material, bool)

	// Apply looks up tag and, on a hit, pushes the material's diffuse,
	// specular, and shininess to the sink under the "material.*" slots.
	// A miss performs no sink writes.
	//
	// Parameters:
	//   - tag: the material key to look up
	//   - sink: the uniform sink to push to on a hit
	//
	// Returns:
	//   - bool: true if the material was found and pushed
	Apply(tag string, sink shader.UniformSink) bool

	// Count returns the number of defined materials.
	//
	// Returns:
	//   - int: the number of materials
	Count() int
}

var _ Table = &tableImpl{}

// NewTable creates an empty material table.
//
// Returns:
//   - Table: the newly created table
func NewTable() Table {
	return &tableImpl{
		mu:        &sync.Mutex{},
		materials: make(map[string]Material),
	}
}

func (t *tableImpl) Define(tag string, diffuse, specular mgl32.Vec3, shininess float32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.materials[tag] = &materialImpl{
		tag:       tag,
		diffuse:   diffuse,
		specular:  specular,
		shininess: shininess,
	}
}

func (t *tableImpl) Find(tag string) (Material, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	m, ok := t.materials[tag]
	return m, ok
}

func (t *tableImpl) Apply(tag string, sink shader.UniformSink) bool {
	m, ok := t.Find(tag)
	if !ok {
		return false
	}
	sink.SetVec3("material.diffuseColor", m.Diffuse())
	sink.SetVec3("material.specularColor", m.Specular())
	sink.SetFloat("material.shininess", m.Shininess())
	return true
}

func (t *tableImpl) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.materials)
}
