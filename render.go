package arbor

import "fmt"

// defaultShaders holds the default pipeline source for every supported
// backend. A device whose backend is missing here cannot be used.
var defaultShaders = map[Backend]string{
	BackendKage: defaultKageShader,
}

const defaultKageShader = `//kage:unit pixels

package main

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	return imageSrc0At(srcPos) * color
}
`

// quadIndices draws a quad as two triangles over vertices TL, TR, BR, BL.
var quadIndices = []uint16{0, 1, 2, 0, 2, 3}

const quadVertexCount = 4

// RenderContext owns the graphics device, the default pipeline, the shared
// quad index buffer, and the cached viewport transform. It exposes the
// primitive draw operations Drawer nodes use.
type RenderContext struct {
	dev           Device
	defaultShader ShaderID
	quadIndices   BufferID

	windowSize   Vec2i
	viewportSize Vec2i // size the cached viewport was computed for
	viewport     Transform
	recomputes   int

	inFrame   bool
	drawCalls int
}

// NewRenderContext compiles the default pipeline for dev's backend and
// allocates the shared quad index buffer. It returns ErrUnsupportedBackend if
// no default shader exists for the backend.
func NewRenderContext(dev Device, windowSize Vec2i) (*RenderContext, error) {
	src, ok := defaultShaders[dev.Backend()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedBackend, dev.Backend())
	}
	shader, err := dev.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("arbor: compile default shader: %w", err)
	}
	rc := &RenderContext{
		dev:           dev,
		defaultShader: shader,
		quadIndices:   dev.NewIndexBuffer(quadIndices),
		windowSize:    windowSize,
	}
	rc.ViewportTransform()
	Logger().Info("arbor: render context ready", "backend", dev.Backend().String(),
		"width", windowSize.X, "height", windowSize.Y)
	return rc, nil
}

// Device returns the underlying graphics device.
func (rc *RenderContext) Device() Device {
	return rc.dev
}

// QuadIndices returns the shared index buffer for quad-shaped drawables.
func (rc *RenderContext) QuadIndices() BufferID {
	return rc.quadIndices
}

// CreateTexture uploads img and returns its device handle.
func (rc *RenderContext) CreateTexture(img *Image) TextureID {
	return rc.dev.NewTexture(img.Width, img.Height, img.Pix)
}

// CreateVertexBuffer allocates a per-node streaming vertex buffer.
func (rc *RenderContext) CreateVertexBuffer(capacity int) BufferID {
	return rc.dev.NewVertexBuffer(capacity)
}

// UpdateVertexBuffer refreshes the contents of buf.
func (rc *RenderContext) UpdateVertexBuffer(buf BufferID, verts []Vertex) {
	rc.dev.UpdateVertexBuffer(buf, verts)
}

// BeginFrame starts a render pass cleared to clear. It must be called exactly
// once per drawn frame, before any Draw.
func (rc *RenderContext) BeginFrame(clear Color) {
	if rc.inFrame {
		panic("arbor: BeginFrame called twice without EndFrame")
	}
	rc.inFrame = true
	rc.drawCalls = 0
	rc.dev.BeginPass(clear)
}

// EndFrame submits the pass. It must pair with exactly one BeginFrame.
func (rc *RenderContext) EndFrame() {
	if !rc.inFrame {
		panic("arbor: EndFrame called without BeginFrame")
	}
	rc.dev.EndPass()
	rc.inFrame = false
}

// InFrame reports whether a frame is currently open.
func (rc *RenderContext) InFrame() bool {
	return rc.inFrame
}

// Draw binds the default pipeline and issues an indexed draw. Calling it
// outside a BeginFrame/EndFrame pair panics.
func (rc *RenderContext) Draw(b Bindings, indexCount int) {
	if !rc.inFrame {
		panic("arbor: Draw called outside BeginFrame/EndFrame")
	}
	rc.dev.Draw(rc.defaultShader, b, indexCount)
	rc.drawCalls++
}

// DrawCalls returns the number of draws issued in the current or most recent
// frame.
func (rc *RenderContext) DrawCalls() int {
	return rc.drawCalls
}

// Resize records a new window size. The viewport transform is recomputed on
// its next use.
func (rc *RenderContext) Resize(size Vec2i) {
	rc.windowSize = size
}

// WindowSize returns the last size passed to Resize.
func (rc *RenderContext) WindowSize() Vec2i {
	return rc.windowSize
}

// ViewportTransform returns the pixel to NDC transform for the current window
// size. It is recomputed only when the size differs from the cached one.
func (rc *RenderContext) ViewportTransform() Transform {
	if rc.recomputes == 0 || rc.viewportSize != rc.windowSize {
		rc.viewport = viewportTransform(rc.windowSize)
		rc.viewportSize = rc.windowSize
		rc.recomputes++
		Logger().Debug("arbor: viewport recomputed", "width", rc.windowSize.X, "height", rc.windowSize.Y)
	}
	return rc.viewport
}
