package arbor

// Backend identifies the shading language a Device consumes.
type Backend uint8

const (
	BackendKage   Backend = iota // Ebitengine Kage, cross-compiled per platform
	BackendOpenGL                // raw GLSL
	BackendMetal                 // raw MSL
)

func (b Backend) String() string {
	switch b {
	case BackendKage:
		return "kage"
	case BackendOpenGL:
		return "opengl"
	case BackendMetal:
		return "metal"
	default:
		return "unknown"
	}
}

// TextureID, BufferID, and ShaderID are device-side handles. Zero is never a
// valid handle.
type (
	TextureID uint32
	BufferID  uint32
	ShaderID  uint32
)

// Vertex is a single quad or mesh vertex. Pos is in normalized device
// coordinates by the time it reaches the device; UV is in [0, 1] texture space.
type Vertex struct {
	Pos Vec2
	UV  Vec2
}

// Bindings groups the resources one draw call reads.
type Bindings struct {
	VertexBuffer BufferID
	IndexBuffer  BufferID
	Texture      TextureID
}

// Device is the graphics device capability the RenderContext calls into.
// Every method must be called from the goroutine that owns the device.
type Device interface {
	// Backend reports which shader source the device compiles.
	Backend() Backend
	// NewShader compiles a pipeline from source.
	NewShader(src string) (ShaderID, error)
	// NewTexture uploads straight-alpha RGBA pixels.
	NewTexture(width, height int, pix []byte) TextureID
	// NewVertexBuffer allocates a streaming buffer for capacity vertices.
	NewVertexBuffer(capacity int) BufferID
	// NewIndexBuffer allocates an immutable index buffer.
	NewIndexBuffer(indices []uint16) BufferID
	// UpdateVertexBuffer replaces the contents of a vertex buffer.
	UpdateVertexBuffer(buf BufferID, verts []Vertex)
	// BeginPass starts a render pass that clears to clear.
	BeginPass(clear Color)
	// Draw binds shader and b, then draws indexCount indices.
	Draw(shader ShaderID, b Bindings, indexCount int)
	// EndPass submits the pass.
	EndPass()
}
