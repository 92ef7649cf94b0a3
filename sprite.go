package arbor

import "fmt"

// SpriteConfig configures NewSprite.
type SpriteConfig struct {
	// TexturePath is the image file to draw, loaded through the asset cache.
	// Required unless Texture is set.
	TexturePath string
	// Texture draws an already created texture instead of TexturePath.
	Texture *Texture
	// Transform places the sprite. The zero Transform means identity.
	Transform Transform
	// Region selects a sub-rectangle of the texture. The zero region draws
	// the whole texture.
	Region TextureRegion
}

// SpriteFromTexture returns a config that draws the whole texture at path with
// the identity transform.
func SpriteFromTexture(path string) SpriteConfig {
	return SpriteConfig{TexturePath: path, Transform: IdentityTransform}
}

// SpriteFromImage returns a config that draws an existing texture.
func SpriteFromImage(tex *Texture) SpriteConfig {
	return SpriteConfig{Texture: tex, Transform: IdentityTransform}
}

// WithTransform returns a copy of c using t.
func (c SpriteConfig) WithTransform(t Transform) SpriteConfig {
	c.Transform = t
	return c
}

// WithRegion returns a copy of c drawing only r.
func (c SpriteConfig) WithRegion(r TextureRegion) SpriteConfig {
	c.Region = r
	return c
}

// Sprite draws a textured quad with its own transform. The texture is shared
// through the asset cache; the vertex buffer belongs to the sprite.
type Sprite struct {
	Object
	Spatial

	texture  *Texture
	region   TextureRegion
	bindings Bindings
	verts    [4]Vertex
}

// NewSprite loads cfg.TexturePath through the asset cache and allocates the
// sprite's vertex buffer.
func NewSprite(g *Game, cfg SpriteConfig) (*Sprite, error) {
	tex := cfg.Texture
	if tex == nil {
		if cfg.TexturePath == "" {
			return nil, fmt.Errorf("arbor: sprite has no texture")
		}
		var err error
		tex, err = LoadGPU[Texture](g.Assets(), cfg.TexturePath, g.Render())
		if err != nil {
			return nil, err
		}
	}
	xf := cfg.Transform
	if xf == (Transform{}) {
		xf = IdentityTransform
	}
	rc := g.Render()
	return &Sprite{
		Spatial: NewSpatial(xf),
		texture: tex,
		region:  cfg.Region,
		bindings: Bindings{
			VertexBuffer: rc.CreateVertexBuffer(quadVertexCount),
			IndexBuffer:  rc.QuadIndices(),
			Texture:      tex.Handle,
		},
	}, nil
}

// Texture returns the shared texture this sprite draws.
func (s *Sprite) Texture() *Texture {
	return s.texture
}

// Size returns the sprite's local size in pixels before its transform.
func (s *Sprite) Size() Vec2 {
	if s.region.IsZero() {
		return s.texture.Size().Float()
	}
	return Vec2{float64(s.region.Width), float64(s.region.Height)}
}

// Bounds returns the axis-aligned box around the transformed quad in window
// pixels. It can be used for hit-testing against Input.Cursor.
func (s *Sprite) Bounds() Rect {
	size := s.Size()
	xf := s.Transform()
	corners := [4]Vec2{{0, 0}, {size.X, 0}, {size.X, size.Y}, {0, size.Y}}
	lo := xf.Apply(corners[0])
	hi := lo
	for _, c := range corners[1:] {
		p := xf.Apply(c)
		lo = Vec2{min(lo.X, p.X), min(lo.Y, p.Y)}
		hi = Vec2{max(hi.X, p.X), max(hi.Y, p.Y)}
	}
	return Rect{X: lo.X, Y: lo.Y, Width: hi.X - lo.X, Height: hi.Y - lo.Y}
}

// Draw transforms the local quad by the sprite's transform, then by the
// viewport transform, and issues one indexed draw.
func (s *Sprite) Draw(rc *RenderContext) {
	size := s.Size()
	uv0, uv1 := Vec2{0, 0}, Vec2{1, 1}
	if !s.region.IsZero() {
		uv0, uv1 = s.region.UV(s.texture.Size())
	}

	s.verts = [4]Vertex{
		{Pos: Vec2{0, 0}, UV: uv0},
		{Pos: Vec2{size.X, 0}, UV: Vec2{uv1.X, uv0.Y}},
		{Pos: Vec2{size.X, size.Y}, UV: uv1},
		{Pos: Vec2{0, size.Y}, UV: Vec2{uv0.X, uv1.Y}},
	}

	xf := *s.Transform()
	vp := rc.ViewportTransform()
	for i := range s.verts {
		s.verts[i].Pos = vp.Apply(xf.Apply(s.verts[i].Pos))
	}

	rc.UpdateVertexBuffer(s.bindings.VertexBuffer, s.verts[:])
	rc.Draw(s.bindings, len(quadIndices))
}
