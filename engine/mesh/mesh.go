package mesh

import (
	"fmt"
	"sync"
)

// Kind identifies one of the procedural mesh shapes the provider can serve.
type Kind int

const (
	// KindBox is a unit cube centered at the origin.
	KindBox Kind = iota
	// KindSphere is a unit-radius sphere centered at the origin.
	KindSphere
	// KindPlane is a 2x2 plane in XZ facing +Y.
	KindPlane
	// KindCylinder is a capped cylinder, base at y=0, top at y=1.
	KindCylinder
	// KindCone is a cone with its base at y=0 and apex at y=1.
	KindCone
	// KindTorus is a torus in the XZ plane centered at the origin.
	KindTorus
	// KindTaperedCylinder is a cylinder whose top radius is half its base radius.
	KindTaperedCylinder
)

// String returns the lowercase shape name for logs and errors.
func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindSphere:
		return "sphere"
	case KindPlane:
		return "plane"
	case KindCylinder:
		return "cylinder"
	case KindCone:
		return "cone"
	case KindTorus:
		return "torus"
	case KindTaperedCylinder:
		return "tapered_cylinder"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// generate builds the CPU-side geometry for a kind.
func (k Kind) generate() (Geometry, error) {
	switch k {
	case KindBox:
		return BoxGeometry(), nil
	case KindSphere:
		return SphereGeometry(24, 48), nil
	case KindPlane:
		return PlaneGeometry(), nil
	case KindCylinder:
		return CylinderGeometry(1, 1, 36), nil
	case KindCone:
		return ConeGeometry(1, 36), nil
	case KindTorus:
		return TorusGeometry(1, 0.25, 48, 24), nil
	case KindTaperedCylinder:
		return CylinderGeometry(1, 0.5, 36), nil
	default:
		return Geometry{}, fmt.Errorf("mesh: unknown kind %d", int(k))
	}
}

// providerImpl is the implementation of the Provider interface.
type providerImpl struct {
	mu      *sync.Mutex
	backend Backend
	loaded  map[Kind]Buffers
}

// Provider serves procedural meshes for draw calls. Geometry is generated and
// uploaded once per kind by Load; Draw on an unloaded kind is a logged no-op so
// a missing mesh degrades the frame instead of aborting it.
type Provider interface {
	// Load generates and uploads geometry for each kind not yet loaded.
	// Must be called on the thread that owns the GL context.
	//
	// Parameters:
	//   - kinds: the mesh kinds to prepare
	//
	// Returns:
	//   - error: the first generation or upload failure
	Load(kinds ...Kind) error

	// Loaded reports whether the kind has GPU buffers ready.
	//
	// Parameters:
	//   - kind: the mesh kind to check
	//
	// Returns:
	//   - bool: true if Draw(kind) will issue geometry
	Loaded(kind Kind) bool

	// Draw issues the draw call for a previously loaded kind.
	// Unloaded kinds are ignored.
	//
	// Parameters:
	//   - kind: the mesh kind to draw
	Draw(kind Kind)

	// Release frees all GPU buffers. The provider can Load again afterwards.
	Release()
}

var _ Provider = &providerImpl{}

// NewProvider creates a mesh provider over the given GPU backend.
//
// Parameters:
//   - options: functional options to configure the provider
//
// Returns:
//   - Provider: the newly created provider
func NewProvider(options ...ProviderOption) Provider {
	p := &providerImpl{
		mu:     &sync.Mutex{},
		loaded: make(map[Kind]Buffers),
	}
	for _, opt := range options {
		opt(p)
	}
	if p.backend == nil {
		p.backend = NewGLBackend()
	}
	return p
}

func (p *providerImpl) Load(kinds ...Kind) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, kind := range kinds {
		if _, ok := p.loaded[kind]; ok {
			continue
		}
		geo, err := kind.generate()
		if err != nil {
			return err
		}
		buf, err := p.backend.Upload(geo)
		if err != nil {
			return fmt.Errorf("mesh: upload %s: %w", kind, err)
		}
		p.loaded[kind] = buf
	}
	return nil
}

func (p *providerImpl) Loaded(kind Kind) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.loaded[kind]
	return ok
}

func (p *providerImpl) Draw(kind Kind) {
	p.mu.Lock()
	buf, ok := p.loaded[kind]
	p.mu.Unlock()
	if !ok {
		return
	}
	p.backend.Draw(buf)
}

func (p *providerImpl) Release() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for kind, buf := range p.loaded {
		p.backend.Delete(buf)
		delete(p.loaded, kind)
	}
}
