package arbor

import (
	"encoding/json"
	"fmt"
)

// TextureRegion describes a sub-rectangle of a texture in pixels.
type TextureRegion struct {
	Page          int // page index for multi-page atlases
	X, Y          int // top-left corner within the page
	Width, Height int
}

// UV returns the region's corners in [0, 1] texture space for a page of the
// given size: top-left and bottom-right.
func (r TextureRegion) UV(page Vec2i) (Vec2, Vec2) {
	w, h := float64(page.X), float64(page.Y)
	return Vec2{float64(r.X) / w, float64(r.Y) / h},
		Vec2{float64(r.X+r.Width) / w, float64(r.Y+r.Height) / h}
}

// IsZero reports whether r is the zero region, meaning "whole texture".
func (r TextureRegion) IsZero() bool {
	return r == TextureRegion{}
}

// Atlas is a named set of regions parsed from TexturePacker JSON. It is an
// Asset: load it with Load[Atlas]. The page images are loaded separately as
// Textures.
type Atlas struct {
	regions map[string]TextureRegion
	pages   []string
}

// Region returns the region for name and whether it exists. Missing names are
// logged at warn level.
func (a *Atlas) Region(name string) (TextureRegion, bool) {
	r, ok := a.regions[name]
	if !ok {
		Logger().Warn("arbor: atlas region not found", "name", name)
	}
	return r, ok
}

// Pages returns the page image paths named by the atlas, indexed by
// TextureRegion.Page. Paths are as written in the JSON, usually relative to
// the atlas file.
func (a *Atlas) Pages() []string {
	return a.pages
}

// Len returns the number of regions.
func (a *Atlas) Len() int {
	return len(a.regions)
}

// DecodeAsset parses TexturePacker JSON. Both the hash format (single
// "frames" object) and the array format ("textures" array with per-page frame
// lists) are supported.
func (a *Atlas) DecodeAsset(data []byte) error {
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
		Meta     struct {
			Image string `json:"image"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("parse atlas JSON: %w", err)
	}

	a.regions = make(map[string]TextureRegion)
	switch {
	case probe.Textures != nil:
		return a.parseArrayFormat(probe.Textures)
	case probe.Frames != nil:
		if probe.Meta.Image != "" {
			a.pages = []string{probe.Meta.Image}
		}
		return a.parseHashFrames(probe.Frames, 0)
	default:
		return fmt.Errorf("atlas JSON has neither \"frames\" nor \"textures\" key")
	}
}

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame jsonRect `json:"frame"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Frames map[string]jsonFrame `json:"frames"`
}

func (a *Atlas) parseHashFrames(raw json.RawMessage, page int) error {
	var frames map[string]jsonFrame
	if err := json.Unmarshal(raw, &frames); err != nil {
		return fmt.Errorf("parse atlas frames: %w", err)
	}
	for name, f := range frames {
		a.regions[name] = frameToRegion(f, page)
	}
	return nil
}

func (a *Atlas) parseArrayFormat(raw json.RawMessage) error {
	var textures []jsonTexturePage
	if err := json.Unmarshal(raw, &textures); err != nil {
		return fmt.Errorf("parse atlas textures array: %w", err)
	}
	for i, tex := range textures {
		a.pages = append(a.pages, tex.Image)
		for name, f := range tex.Frames {
			a.regions[name] = frameToRegion(f, i)
		}
	}
	return nil
}

func frameToRegion(f jsonFrame, page int) TextureRegion {
	return TextureRegion{
		Page:   page,
		X:      f.Frame.X,
		Y:      f.Frame.Y,
		Width:  f.Frame.W,
		Height: f.Frame.H,
	}
}
