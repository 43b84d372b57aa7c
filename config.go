package engine

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Config validation error.
var ErrInvalidConfig = errors.New("invalid config")

// DefaultTitle is the window title of the demo programs.
const DefaultTitle = "Maya But Actually Works V: 0.01 alpha"

// Config holds the settings shared by the demo programs.
type Config struct {
	Window  WindowConfig `toml:"window" yaml:"window"`
	Render  RenderConfig `toml:"render" yaml:"render"`
	Shaders ShaderConfig `toml:"shaders" yaml:"shaders"`
	Log     LogConfig    `toml:"log" yaml:"log"`
}

// WindowConfig describes the window and its GL context.
type WindowConfig struct {
	Width     int    `toml:"width" yaml:"width"`
	Height    int    `toml:"height" yaml:"height"`
	Title     string `toml:"title" yaml:"title"`
	GLMajor   int    `toml:"gl_major" yaml:"gl_major"`
	GLMinor   int    `toml:"gl_minor" yaml:"gl_minor"`
	VSync     bool   `toml:"vsync" yaml:"vsync"`
	Resizable bool   `toml:"resizable" yaml:"resizable"`
}

// RenderConfig holds per-frame render state.
type RenderConfig struct {
	ClearColor [4]float32 `toml:"clear_color" yaml:"clear_color"`
	QuadColor  [4]float32 `toml:"quad_color" yaml:"quad_color"`
	Wireframe  bool       `toml:"wireframe" yaml:"wireframe"`
}

// ShaderConfig locates shader sources. Dir is the directory holding
// VertexShaderFile and FragmentShaderFile; EmbeddedShaders selects the
// sources compiled into the binary.
type ShaderConfig struct {
	Dir string `toml:"dir" yaml:"dir"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
}

// DefaultConfig returns an 800x600 OpenGL 3.3 window with a teal clear color
// and a white quad.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:     800,
			Height:    600,
			Title:     DefaultTitle,
			GLMajor:   3,
			GLMinor:   3,
			VSync:     true,
			Resizable: true,
		},
		Render: RenderConfig{
			ClearColor: ColorTeal.Components(),
			QuadColor:  ColorWhite.Components(),
		},
		Shaders: ShaderConfig{Dir: "."},
		Log:     LogConfig{Level: "info"},
	}
}

// LoadConfig reads a TOML (.toml) or YAML (.yaml, .yml) file on top of
// DefaultConfig and validates the result. An empty path returns the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("decode config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("%w: unsupported config format %q", ErrInvalidConfig, ext)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WriteConfig encodes cfg as TOML to path.
func WriteConfig(path string, cfg Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate checks the config for values the programs cannot start with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Window.GLMajor < 3 || (c.Window.GLMajor == 3 && c.Window.GLMinor < 3) {
		return fmt.Errorf("%w: OpenGL %d.%d, need 3.3 or newer", ErrInvalidConfig, c.Window.GLMajor, c.Window.GLMinor)
	}
	if !c.ClearColor().Valid() {
		return fmt.Errorf("%w: clear_color %v outside [0, 1]", ErrInvalidConfig, c.Render.ClearColor)
	}
	if !c.QuadColor().Valid() {
		return fmt.Errorf("%w: quad_color %v outside [0, 1]", ErrInvalidConfig, c.Render.QuadColor)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// ClearColor returns the configured clear color.
func (c Config) ClearColor() Color {
	return ColorFromComponents(c.Render.ClearColor)
}

// QuadColor returns the configured value of the ourColor uniform.
func (c Config) QuadColor() Color {
	return ColorFromComponents(c.Render.QuadColor)
}

// ShaderSources returns the shader pair selected by Shaders.Dir. Files that
// do not exist are reported with ErrShaderNotFound.
func (c Config) ShaderSources() (ShaderSources, error) {
	if c.Shaders.Dir == EmbeddedShaders {
		return EmbeddedShaderSources(), nil
	}
	return LoadShaderSources(c.Shaders.Dir)
}

// InitialPolygonMode returns the polygon mode applied before the first frame.
func (c Config) InitialPolygonMode() PolygonMode {
	if c.Render.Wireframe {
		return PolygonLine
	}
	return PolygonFill
}
