package mesh

// Buffers identifies one uploaded mesh on the GPU.
type Buffers struct {
	// VAO is the vertex array object handle.
	VAO uint32
	// VBO is the vertex buffer handle.
	VBO uint32
	// EBO is the element/index buffer handle.
	EBO uint32
	// IndexCount is the number of indices to draw.
	IndexCount int32
}

// Backend owns the GPU side of mesh management. All methods must be called on
// the thread that owns the GL context.
type Backend interface {
	// Upload creates GPU buffers for the geometry.
	//
	// Parameters:
	//   - geo: the interleaved geometry to upload
	//
	// Returns:
	//   - Buffers: handles for the uploaded mesh
	//   - error: error if the geometry is empty
	Upload(geo Geometry) (Buffers, error)

	// Draw issues an indexed draw call for previously uploaded buffers.
	//
	// Parameters:
	//   - buf: the mesh buffers to draw
	Draw(buf Buffers)

	// Delete frees the GPU buffers.
	//
	// Parameters:
	//   - buf: the mesh buffers to free
	Delete(buf Buffers)
}
