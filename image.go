package arbor

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Image is decoded straight-alpha RGBA pixel data.
type Image struct {
	Width, Height int
	Pix           []byte // 4 bytes per pixel, row-major, no padding
}

// ImageFromColor returns a width x height image filled with c.
func ImageFromColor(width, height int, c Color) *Image {
	px := c.NRGBA()
	pix := make([]byte, 4*width*height)
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = px.R, px.G, px.B, px.A
	}
	return &Image{Width: width, Height: height, Pix: pix}
}

// Size returns the image dimensions in pixels.
func (img *Image) Size() Vec2i {
	return Vec2i{img.Width, img.Height}
}

// DecodeAsset decodes PNG, JPEG, GIF, BMP, or WebP bytes.
func (img *Image) DecodeAsset(data []byte) error {
	if !filetype.IsImage(data) {
		kind, _ := filetype.Match(data)
		return fmt.Errorf("not an image (detected %q)", kind.Extension)
	}
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return err
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)

	img.Width = b.Dx()
	img.Height = b.Dy()
	img.Pix = dst.Pix
	return nil
}
