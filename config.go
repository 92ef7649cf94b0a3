package arbor

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// RunConfig configures Run and NewGame. Zero fields take the defaults from
// DefaultRunConfig.
//
// A config can be loaded from TOML:
//
//	title = "My Game"
//	width = 800
//	height = 600
//	show_fps = true
//
//	[clear_color]
//	r = 0.1
//	g = 0.1
//	b = 0.15
//	a = 1.0
type RunConfig struct {
	Title         string `toml:"title"`
	Width         int    `toml:"width"`
	Height        int    `toml:"height"`
	ClearColor    Color  `toml:"clear_color"`
	Resizable     bool   `toml:"resizable"`
	TPS           int    `toml:"tps"`
	ShowFPS       bool   `toml:"show_fps"`
	ScreenshotDir string `toml:"screenshot_dir"`

	// Assets is the byte source for the asset cache. Nil reads from the
	// operating system.
	Assets fs.FS `toml:"-"`
}

// DefaultRunConfig returns the configuration used for unset fields.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:         "arbor",
		Width:         640,
		Height:        480,
		ClearColor:    ColorBlack,
		TPS:           60,
		ScreenshotDir: "screenshots",
	}
}

// withDefaults fills zero fields from DefaultRunConfig.
func (c RunConfig) withDefaults() RunConfig {
	d := DefaultRunConfig()
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	if c.ClearColor == (Color{}) {
		c.ClearColor = d.ClearColor
	}
	if c.TPS <= 0 {
		c.TPS = d.TPS
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = d.ScreenshotDir
	}
	return c
}

// WindowSize returns the configured initial window size.
func (c RunConfig) WindowSize() Vec2i {
	return Vec2i{c.Width, c.Height}
}

// ParseRunConfig decodes TOML over the defaults.
func ParseRunConfig(data []byte) (RunConfig, error) {
	cfg := DefaultRunConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("arbor: parse run config: %w", err)
	}
	return cfg.withDefaults(), nil
}

// LoadRunConfig reads and decodes a TOML config file.
func LoadRunConfig(path string) (RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("arbor: read run config: %w", err)
	}
	return ParseRunConfig(data)
}
