package arbor

// Texture is an Image uploaded to the device. It is a GPUAsset: load it with
// LoadGPU so each path is uploaded exactly once.
type Texture struct {
	Image  Image
	Handle TextureID
}

// DecodeGPUAsset decodes the image bytes and uploads them.
func (t *Texture) DecodeGPUAsset(data []byte, rc *RenderContext) error {
	if err := t.Image.DecodeAsset(data); err != nil {
		return err
	}
	t.Handle = rc.CreateTexture(&t.Image)
	return nil
}

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() Vec2i {
	return t.Image.Size()
}

// NewTexture uploads an in-memory image without going through the cache.
// The caller owns the result.
func NewTexture(rc *RenderContext, img *Image) *Texture {
	t := &Texture{Image: *img}
	t.Handle = rc.CreateTexture(&t.Image)
	return t
}
