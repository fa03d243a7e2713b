package texture

import (
	"sync"

	"go.uber.org/zap"

	"github.com/Carmen-Shannon/vista-go/engine/logger"
)

// registryImpl is the implementation of the Registry interface.
type registryImpl struct {
	mu *sync.Mutex

	decoder Decoder
	backend Backend

	handles map[string]Handle
	// order records tags in first-load order; the slot index passed to the
	// sampler uniform is the tag's position in this slice.
	order []string

	released bool
}

// Registry owns the mapping from string tag to GPU texture handle.
//
// Loading the same tag again atomically replaces the mapping, freeing the prior
// handle before the new one is installed so no leak window exists. ReleaseAll
// must be called exactly once at teardown; using the registry for draws after
// that is a caller error and every method becomes a no-op that reports a miss.
type Registry interface {
	// Load decodes the file at path and installs the resulting GPU texture
	// under tag, replacing (and freeing) any previous texture with that tag.
	//
	// Parameters:
	//   - tag: the stable string key for the texture
	//   - path: the image file to decode
	//   - flipVertically: whether to flip rows during decode
	//
	// Returns:
	//   - error: decode or upload error; the tag keeps its previous mapping on failure
	Load(tag, path string, flipVertically bool) error

	// Install uploads already-decoded pixel data under tag, replacing (and
	// freeing) any previous texture with that tag. This is the second half of
	// Load, split out so callers can decode on worker goroutines and keep the
	// GPU upload on the render thread.
	//
	// Parameters:
	//   - tag: the stable string key for the texture
	//   - img: the decoded pixel data
	//
	// Returns:
	//   - error: upload error; the tag keeps its previous mapping on failure
	Install(tag string, img Image) error

	// Find returns the handle loaded under tag.
	//
	// Parameters:
	//   - tag: the texture key to look up
	//
	// Returns:
	//   - Handle: the texture handle, or 0 if not found
	//   - bool: true if the tag is loaded
	Find(tag string) (Handle, bool)

	// Slot returns the texture unit index for tag, assigned in first-load
	// order. Returns -1 if the tag is not loaded.
	//
	// Parameters:
	//   - tag: the texture key to look up
	//
	// Returns:
	//   - int: the texture unit index, or -1 if not found
	Slot(tag string) int

	// Exists reports whether a texture is loaded under tag.
	//
	// Parameters:
	//   - tag: the texture key to check
	//
	// Returns:
	//   - bool: true if the tag is loaded
	Exists(tag string) bool

	// Bind binds the texture for tag to its assigned unit.
	//
	// Parameters:
	//   - tag: the texture key to bind
	//
	// Returns:
	//   - bool: false if the tag is not loaded
	Bind(tag string) bool

	// BindTo binds the texture for tag to an explicit unit instead of its
	// assigned slot. The caller is responsible for pointing the sampler
	// uniform at the same unit.
	//
	// Parameters:
	//   - tag: the texture key to bind
	//   - unit: the texture unit to bind to
	//
	// Returns:
	//   - bool: false if the tag is not loaded
	BindTo(tag string, unit int) bool

	// BindAll binds every loaded texture to its assigned unit. Call once after
	// scene preparation so sampler slot uniforms resolve for the whole session.
	BindAll()

	// Count returns the number of loaded textures.
	//
	// Returns:
	//   - int: the number of live tag mappings
	Count() int

	// ReleaseAll frees every handle and clears the mapping.
	// Must be called exactly once at teardown; later calls are no-ops.
	ReleaseAll()
}

var _ Registry = &registryImpl{}

// NewRegistry creates a texture registry over the given decode and GPU seams.
//
// Parameters:
//   - options: functional options to configure the registry
//
// Returns:
//   - Registry: the newly created registry
func NewRegistry(options ...RegistryOption) Registry {
	r := &registryImpl{
		mu:      &sync.Mutex{},
		decoder: NewDecoder(),
		handles: make(map[string]Handle),
	}
	for _, opt := range options {
		opt(r)
	}
	if r.backend == nil {
		r.backend = NewGLBackend()
	}
	return r
}

func (r *registryImpl) Load(tag, path string, flipVertically bool) error {
	img, err := r.decoder.Decode(path, flipVertically)
	if err != nil {
		logger.Log.Error("texture: load failed",
			zap.String("tag", tag), zap.String("path", path), zap.Error(err))
		return err
	}
	return r.Install(tag, img)
}

func (r *registryImpl) Install(tag string, img Image) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return nil
	}

	handle, err := r.backend.Upload(img)
	if err != nil {
		logger.Log.Error("texture: upload failed", zap.String("tag", tag), zap.Error(err))
		return err
	}

	// Free the prior handle before installing the replacement.
	if old, ok := r.handles[tag]; ok {
		if old != 0 {
			r.backend.Delete(old)
		}
	} else {
		r.order = append(r.order, tag)
	}
	r.handles[tag] = handle
	return nil
}

func (r *registryImpl) Find(tag string) (Handle, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.handles[tag]
	return h, ok
}

func (r *registryImpl) Slot(tag string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.order {
		if t == tag {
			return i
		}
	}
	return -1
}

func (r *registryImpl) Exists(tag string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.handles[tag]
	return ok
}

func (r *registryImpl) Bind(tag string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return false
	}
	for i, t := range r.order {
		if t == tag {
			r.backend.BindUnit(i, r.handles[t])
			return true
		}
	}
	return false
}

func (r *registryImpl) BindTo(tag string, unit int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return false
	}
	h, ok := r.handles[tag]
	if !ok {
		return false
	}
	r.backend.BindUnit(unit, h)
	return true
}

func (r *registryImpl) BindAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return
	}
	for i, tag := range r.order {
		r.backend.BindUnit(i, r.handles[tag])
	}
}

func (r *registryImpl) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.handles)
}

func (r *registryImpl) ReleaseAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.released {
		return
	}
	for tag, h := range r.handles {
		if h != 0 {
			r.backend.Delete(h)
		}
		delete(r.handles, tag)
	}
	r.order = nil
	r.released = true
}
