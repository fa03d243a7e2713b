package texture

// Handle is an opaque GPU texture identifier. Zero means "no texture".
type Handle uint32

// Backend owns the GPU side of texture management. All methods must be called
// on the thread that owns the GL context; the registry never calls them from
// decode workers.
type Backend interface {
	// Upload creates a GPU texture from CPU pixel data.
	// Rejects images whose channel count has no pixel-format mapping.
	//
	// Parameters:
	//   - img: the decoded pixel data (Channels must be 1, 3, or 4)
	//
	// Returns:
	//   - Handle: the created texture handle
	//   - error: wraps ErrUnsupportedChannels for unmapped channel counts
	Upload(img Image) (Handle, error)

	// BindUnit binds a texture to the given texture unit.
	//
	// Parameters:
	//   - unit: the texture unit index (0-based)
	//   - handle: the texture to bind
	BindUnit(unit int, handle Handle)

	// Delete frees a GPU texture. Deleting the zero handle is a no-op.
	//
	// Parameters:
	//   - handle: the texture to free
	Delete(handle Handle)
}
