package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.DoubleClick() != 500*time.Millisecond {
		t.Errorf("DoubleClick() = %v, want 500ms", cfg.DoubleClick())
	}
	if off := cfg.ChildOffset(); off.X != 150 || off.Y != 80 {
		t.Errorf("ChildOffset() = %v, want (150,80)", off)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("LoadFrom() = %+v, want defaults", cfg)
	}
}

func TestLoadFromTOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
[interaction]
double_click_ms = 300

[canvas]
ascii = true

[colors]
selected = "#ff0000"
`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Interaction.DoubleClickMS != 300 {
		t.Errorf("DoubleClickMS = %d, want 300", cfg.Interaction.DoubleClickMS)
	}
	if !cfg.Canvas.ASCII {
		t.Errorf("Expected ascii to be set")
	}
	if cfg.Canvas.CellWidth != 8 {
		t.Errorf("CellWidth = %g, want default 8", cfg.Canvas.CellWidth)
	}
	if got := cfg.Colors.Color("selected").Hex(); got != "#ff0000" {
		t.Errorf("Color(selected) = %s, want #ff0000", got)
	}
	if cfg.Interaction.ChildOffsetX != 150 {
		t.Errorf("ChildOffsetX = %g, want default 150", cfg.Interaction.ChildOffsetX)
	}
}

func TestLoadFromYAML(t *testing.T) {
	path := writeFile(t, "config.yml", `
canvas:
  cell_width: 10
  cell_height: 20
log:
  level: debug
`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Canvas.CellWidth != 10 || cfg.Canvas.CellHeight != 20 {
		t.Errorf("cell size = %gx%g, want 10x20", cfg.Canvas.CellWidth, cfg.Canvas.CellHeight)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Interaction.DoubleClickMS != 500 {
		t.Errorf("DoubleClickMS = %d, want default 500", cfg.Interaction.DoubleClickMS)
	}
}

func TestLoadFromErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    string
	}{
		{"bad syntax", "config.toml", "[canvas\n", "parsing config"},
		{"zero cell width", "config.toml", "[canvas]\ncell_width = 0.0\n", "cell_width"},
		{"negative window", "config.yaml", "interaction:\n  double_click_ms: -1\n", "double_click_ms"},
		{"bad color", "config.toml", "[colors]\nline = \"grey\"\n", "colors.line"},
		{"bad level", "config.toml", "[log]\nlevel = \"loud\"\n", "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(writeFile(t, tt.file, tt.content))
			if err == nil {
				t.Fatalf("Expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestUnknownFormat(t *testing.T) {
	if _, err := LoadFrom("settings.json"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("LoadFrom() error = %v, want ErrUnknownFormat", err)
	}
	if err := SaveTo(Default(), filepath.Join(t.TempDir(), "c.ini")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("SaveTo() error = %v, want ErrUnknownFormat", err)
	}
}

func TestSaveAndReload(t *testing.T) {
	for _, name := range []string{"config.toml", "config.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			cfg := Default()
			cfg.Interaction.DoubleClickMS = 250
			cfg.Log.File = "/tmp/mindmap.log"

			if err := SaveTo(cfg, path); err != nil {
				t.Fatalf("SaveTo() error = %v", err)
			}
			loaded, err := LoadFrom(path)
			if err != nil {
				t.Fatalf("LoadFrom() error = %v", err)
			}
			if *loaded != *cfg {
				t.Errorf("reloaded %+v, want %+v", loaded, cfg)
			}
		})
	}
}

func TestConfigDirUsesXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	if got := ConfigPath(); got != filepath.Join("/xdg", "mindmap", "config.toml") {
		t.Errorf("ConfigPath() = %q", got)
	}
}

func TestColorFallback(t *testing.T) {
	cfg := Default()
	cfg.Colors.Node = "nope"
	if got := cfg.Colors.Color("node").Hex(); got != "#464646" {
		t.Errorf("Color(node) = %s, want default #464646", got)
	}
}

func TestTOMLOutput(t *testing.T) {
	data, err := Default().TOML()
	if err != nil {
		t.Fatalf("TOML() error = %v", err)
	}
	for _, want := range []string{"[interaction]", "double_click_ms = 500", "[colors]", `node = "#464646"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("TOML() output missing %q:\n%s", want, data)
		}
	}
}
