package arbor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultRunConfig(t *testing.T) {
	c := DefaultRunConfig()
	if c.Width != 640 || c.Height != 480 || c.TPS != 60 {
		t.Errorf("defaults = %+v", c)
	}
	if c.ScreenshotDir != "screenshots" || c.ClearColor != ColorBlack {
		t.Errorf("defaults = %+v", c)
	}
}

func TestRunConfigWithDefaultsKeepsSetFields(t *testing.T) {
	c := RunConfig{Title: "x", Width: 100}.withDefaults()
	if c.Title != "x" || c.Width != 100 || c.Height != 480 {
		t.Errorf("withDefaults = %+v", c)
	}
	if c.WindowSize() != (Vec2i{100, 480}) {
		t.Errorf("WindowSize = %v", c.WindowSize())
	}
}

func TestParseRunConfig(t *testing.T) {
	c, err := ParseRunConfig([]byte(`
title = "Demo"
width = 800
height = 600
resizable = true
show_fps = true

[clear_color]
r = 0.5
g = 0.25
b = 0.0
a = 1.0
`))
	if err != nil {
		t.Fatalf("ParseRunConfig: %v", err)
	}
	if c.Title != "Demo" || c.Width != 800 || c.Height != 600 {
		t.Errorf("config = %+v", c)
	}
	if !c.Resizable || !c.ShowFPS {
		t.Errorf("flags = %v, %v", c.Resizable, c.ShowFPS)
	}
	if c.ClearColor != (Color{R: 0.5, G: 0.25, B: 0, A: 1}) {
		t.Errorf("clear color = %+v", c.ClearColor)
	}
	if c.TPS != 60 {
		t.Errorf("unset TPS = %d, want default 60", c.TPS)
	}
}

func TestParseRunConfigInvalid(t *testing.T) {
	_, err := ParseRunConfig([]byte(`width = "wide"`))
	if err == nil || !strings.Contains(err.Error(), "parse run config") {
		t.Errorf("err = %v", err)
	}
}

func TestLoadRunConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.toml")
	if err := os.WriteFile(path, []byte("title = \"File\"\ntps = 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadRunConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Title != "File" || c.TPS != 30 || c.Width != 640 {
		t.Errorf("config = %+v", c)
	}

	if _, err := LoadRunConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}
