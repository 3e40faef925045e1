package graphics

import "github.com/richinsley/goshapes/geometry"

// Mesh is vertex data uploaded for a single draw. Release frees the GPU
// storage and must be called exactly once.
type Mesh interface {
	VertexCount() int
	Release()
}

// Device is the subset of GPU state the renderer drives each frame.
type Device interface {
	Clear(color geometry.RGBA)
	UseProgram(program uint32)
	// Upload copies packed positions (x, y pairs) and, when colors is
	// non-nil, packed RGB colors into transient GPU buffers bound to
	// attributes 0 and 1.
	Upload(positions, colors []float32) Mesh
	SetUniformColor(location int32, color geometry.RGBA)
	Draw(mesh Mesh, prim geometry.Primitive)
	DeleteProgram(program uint32)
}
