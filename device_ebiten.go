package arbor

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenDevice implements Device on top of Ebitengine. Textures are
// *ebiten.Image, the pipeline is a Kage shader, and indexed draws go through
// DrawTrianglesShader onto the current target.
//
// Vertex positions arrive in normalized device coordinates and are mapped
// back to target pixels at draw time.
type EbitenDevice struct {
	// ScreenshotDir is where queued screenshots are written. Defaults to
	// "screenshots".
	ScreenshotDir string

	target *ebiten.Image

	shaders  []*ebiten.Shader
	textures []*ebiten.Image
	vertices [][]Vertex
	indices  [][]uint16

	scratch         []ebiten.Vertex
	screenshotQueue []string
}

// NewEbitenDevice creates an empty device. Call SetTarget before each pass.
func NewEbitenDevice() *EbitenDevice {
	return &EbitenDevice{ScreenshotDir: "screenshots"}
}

// SetTarget sets the image subsequent passes render into, normally the screen
// handed to ebiten.Game.Draw.
func (d *EbitenDevice) SetTarget(img *ebiten.Image) {
	d.target = img
}

func (d *EbitenDevice) Backend() Backend { return BackendKage }

func (d *EbitenDevice) NewShader(src string) (ShaderID, error) {
	s, err := ebiten.NewShader([]byte(src))
	if err != nil {
		return 0, fmt.Errorf("arbor: ebiten shader: %w", err)
	}
	d.shaders = append(d.shaders, s)
	return ShaderID(len(d.shaders)), nil
}

func (d *EbitenDevice) NewTexture(width, height int, pix []byte) TextureID {
	src := &image.NRGBA{Pix: pix, Stride: 4 * width, Rect: image.Rect(0, 0, width, height)}
	d.textures = append(d.textures, ebiten.NewImageFromImage(src))
	return TextureID(len(d.textures))
}

func (d *EbitenDevice) NewVertexBuffer(capacity int) BufferID {
	d.vertices = append(d.vertices, make([]Vertex, 0, capacity))
	return BufferID(len(d.vertices))
}

func (d *EbitenDevice) NewIndexBuffer(indices []uint16) BufferID {
	d.indices = append(d.indices, append([]uint16(nil), indices...))
	return BufferID(len(d.indices))
}

func (d *EbitenDevice) UpdateVertexBuffer(buf BufferID, verts []Vertex) {
	d.vertices[buf-1] = append(d.vertices[buf-1][:0], verts...)
}

func (d *EbitenDevice) BeginPass(clear Color) {
	if d.target == nil {
		panic("arbor: EbitenDevice has no target; call SetTarget first")
	}
	d.target.Fill(clear.toRGBA())
}

func (d *EbitenDevice) Draw(shader ShaderID, b Bindings, indexCount int) {
	inds := d.indices[b.IndexBuffer-1]
	if indexCount < 0 || indexCount > len(inds) {
		panic(fmt.Sprintf("arbor: draw of %d indices from a buffer of %d", indexCount, len(inds)))
	}
	tex := d.textures[b.Texture-1]
	verts := d.vertices[b.VertexBuffer-1]

	bounds := d.target.Bounds()
	tw, th := float64(bounds.Dx()), float64(bounds.Dy())
	sb := tex.Bounds()
	sw, sh := float64(sb.Dx()), float64(sb.Dy())

	d.scratch = d.scratch[:0]
	for _, v := range verts {
		d.scratch = append(d.scratch, ebiten.Vertex{
			DstX:   float32((v.Pos.X + 1) / 2 * tw),
			DstY:   float32((1 - v.Pos.Y) / 2 * th),
			SrcX:   float32(v.UV.X * sw),
			SrcY:   float32(v.UV.Y * sh),
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		})
	}

	var op ebiten.DrawTrianglesShaderOptions
	op.Images[0] = tex
	d.target.DrawTrianglesShader(d.scratch, inds[:indexCount], d.shaders[shader-1], &op)
}

func (d *EbitenDevice) EndPass() {
	d.flushScreenshots(d.target)
}
