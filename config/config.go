// Package config handles loading and saving mindmap configuration.
//
// Configuration follows the XDG Base Directory specification:
//   - Config: ~/.config/mindmap/config.toml
//
// A path ending in .yaml or .yml is read and written as YAML instead.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"mindmap/diagram"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for config files that are neither TOML nor YAML.
var ErrUnknownFormat = errors.New("unknown config format")

// Config is the top-level configuration.
type Config struct {
	Interaction InteractionConfig `toml:"interaction" yaml:"interaction"`
	Canvas      CanvasConfig      `toml:"canvas" yaml:"canvas"`
	Colors      ColorsConfig      `toml:"colors" yaml:"colors"`
	Log         LogConfig         `toml:"log" yaml:"log"`
}

// InteractionConfig tunes pointer and keyboard behavior.
type InteractionConfig struct {
	DoubleClickMS int     `toml:"double_click_ms" yaml:"double_click_ms"`
	ChildOffsetX  float64 `toml:"child_offset_x" yaml:"child_offset_x"`
	ChildOffsetY  float64 `toml:"child_offset_y" yaml:"child_offset_y"`
}

// CanvasConfig controls how world units map onto terminal cells.
type CanvasConfig struct {
	CellWidth  float64 `toml:"cell_width" yaml:"cell_width"`   // World units per column
	CellHeight float64 `toml:"cell_height" yaml:"cell_height"` // World units per row
	ASCII      bool    `toml:"ascii" yaml:"ascii"`
}

// ColorsConfig holds hex colors for the canvas elements.
type ColorsConfig struct {
	Node     string `toml:"node" yaml:"node"`
	Selected string `toml:"selected" yaml:"selected"`
	Editing  string `toml:"editing" yaml:"editing"`
	Text     string `toml:"text" yaml:"text"`
	Line     string `toml:"line" yaml:"line"`
}

// LogConfig controls the debug log.
type LogConfig struct {
	File  string `toml:"file" yaml:"file"` // Empty disables logging
	Level string `toml:"level" yaml:"level"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Interaction: InteractionConfig{DoubleClickMS: 500, ChildOffsetX: 150, ChildOffsetY: 80},
		Canvas:      CanvasConfig{CellWidth: 8, CellHeight: 12},
		Colors: ColorsConfig{
			Node:     "#464646",
			Selected: "#6496c8",
			Editing:  "#78aadc",
			Text:     "#ffffff",
			Line:     "#808080",
		},
		Log: LogConfig{Level: "info"},
	}
}

// ConfigDir returns the mindmap config directory path.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "mindmap")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "mindmap")
}

// ConfigPath returns the full path to config.toml.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.toml")
}

// Load reads the config file from the XDG config directory.
// Returns Default if the file doesn't exist.
func Load() (*Config, error) {
	path := ConfigPath()
	if path == "" {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from a specific path. Missing keys keep their
// defaults and a missing file yields Default. The result is validated.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	format, err := formatOf(path)
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	switch format {
	case "yaml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = toml.Unmarshal(data, cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveTo writes the config to a specific path in the format its extension
// names.
func SaveTo(cfg *Config, path string) error {
	format, err := formatOf(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	var data []byte
	switch format {
	case "yaml":
		data, err = yaml.Marshal(cfg)
	default:
		data, err = cfg.TOML()
	}
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Save writes the config to the XDG config directory.
func Save(cfg *Config) error {
	path := ConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	return SaveTo(cfg, path)
}

// TOML encodes the config as TOML.
func (c *Config) TOML() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	var errs []error

	if c.Interaction.DoubleClickMS <= 0 {
		errs = append(errs, fmt.Errorf("interaction.double_click_ms must be positive, got %d", c.Interaction.DoubleClickMS))
	}
	if c.Canvas.CellWidth <= 0 {
		errs = append(errs, fmt.Errorf("canvas.cell_width must be positive, got %g", c.Canvas.CellWidth))
	}
	if c.Canvas.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("canvas.cell_height must be positive, got %g", c.Canvas.CellHeight))
	}

	for name, value := range c.Colors.named() {
		if _, err := colorful.Hex(value); err != nil {
			errs = append(errs, fmt.Errorf("colors.%s: invalid color %q", name, value))
		}
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}

	return errors.Join(errs...)
}

// DoubleClick returns the double-click window.
func (c *Config) DoubleClick() time.Duration {
	return time.Duration(c.Interaction.DoubleClickMS) * time.Millisecond
}

// ChildOffset returns where keyboard-added children go relative to their parent.
func (c *Config) ChildOffset() diagram.Vec2 {
	return diagram.Vec2{X: c.Interaction.ChildOffsetX, Y: c.Interaction.ChildOffsetY}
}

// Color returns the parsed color for an element name such as "node" or
// "line". Unknown names and bad values fall back to the default.
func (c *ColorsConfig) Color(name string) colorful.Color {
	if col, err := colorful.Hex(c.named()[name]); err == nil {
		return col
	}
	col, _ := colorful.Hex(Default().Colors.named()[name])
	return col
}

func (c *ColorsConfig) named() map[string]string {
	return map[string]string{
		"node":     c.Node,
		"selected": c.Selected,
		"editing":  c.Editing,
		"text":     c.Text,
		"line":     c.Line,
	}
}

func formatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml", nil
	case ".yaml", ".yml":
		return "yaml", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}
