// Package config handles curlshot configuration loading and management.
package config

import (
	"errors"
	"fmt"
	gomath "math"
	"strconv"
	"strings"
)

// Config holds all curlshot settings.
type Config struct {
	Mesh    MeshConfig    `yaml:"mesh"`
	Page    PageConfig    `yaml:"page"`
	Curl    CurlConfig    `yaml:"curl"`
	Preview PreviewConfig `yaml:"preview"`
	Logging LoggingConfig `yaml:"logging"`
}

// MeshConfig holds curl mesh construction settings.
type MeshConfig struct {
	MaxCurlSplits int    `yaml:"max_curl_splits"`
	Shadows       bool   `yaml:"shadows"`
	Textures      bool   `yaml:"textures"`
	CurlLines     bool   `yaml:"curl_lines"`
	ShadowInner   string `yaml:"shadow_inner"` // #RRGGBB or #RRGGBBAA
	ShadowOuter   string `yaml:"shadow_outer"`
}

// PageConfig describes the page rectangle and its tints.
type PageConfig struct {
	Rect       RectConfig `yaml:"rect"`
	FrontColor string     `yaml:"front_color"`
	BackColor  string     `yaml:"back_color"`
	Flip       bool       `yaml:"flip"`
}

// RectConfig is a rectangle in world units. Top is greater than Bottom.
type RectConfig struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
}

// Point is a 2D coordinate.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// CurlConfig holds the animated curl sweep.
type CurlConfig struct {
	Start     Point   `yaml:"start"`
	End       Point   `yaml:"end"`
	Direction Point   `yaml:"direction"`
	Radius    float64 `yaml:"radius"`
	Frames    int     `yaml:"frames"`
}

// PreviewConfig holds PNG rendering settings.
type PreviewConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	OutputDir  string `yaml:"output_dir"`
	Prefix     string `yaml:"prefix"`
	Outlines   bool   `yaml:"outlines"`
	Background string `yaml:"background"`
	Label      bool   `yaml:"label"`
	DumpStats  bool   `yaml:"dump_stats"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Validation errors.
var (
	ErrInvalidSplits    = errors.New("max_curl_splits must be at least 1")
	ErrInvalidFrames    = errors.New("frames must be at least 1")
	ErrInvalidRadius    = errors.New("radius must be a finite non-negative number")
	ErrInvalidDirection = errors.New("curl direction must be non-zero")
	ErrInvalidSize      = errors.New("preview size must be positive")
	ErrEmptyRect        = errors.New("page rect is empty")
	ErrInvalidColor     = errors.New("invalid color")
)

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Mesh: MeshConfig{
			MaxCurlSplits: 10,
			Shadows:       true,
			Textures:      true,
			CurlLines:     false,
			ShadowInner:   "#00000080",
			ShadowOuter:   "#00000000",
		},
		Page: PageConfig{
			Rect:       RectConfig{Left: -1, Top: 1, Right: 1, Bottom: -1},
			FrontColor: "#ffffffff",
			BackColor:  "#d0d0d0ff",
		},
		Curl: CurlConfig{
			Start:     Point{X: 1.2, Y: -1.2},
			End:       Point{X: -1.6, Y: 0.4},
			Direction: Point{X: -1, Y: 0.5},
			Radius:    0.25,
			Frames:    24,
		},
		Preview: PreviewConfig{
			Width:      512,
			Height:     512,
			OutputDir:  "curlshot_out",
			Prefix:     "frame",
			Background: "#303030ff",
			Label:      true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks the config for values the renderer cannot work with.
func (c *Config) Validate() error {
	if c.Mesh.MaxCurlSplits < 1 {
		return fmt.Errorf("mesh: %w (got %d)", ErrInvalidSplits, c.Mesh.MaxCurlSplits)
	}
	if c.Curl.Frames < 1 {
		return fmt.Errorf("curl: %w (got %d)", ErrInvalidFrames, c.Curl.Frames)
	}
	if c.Curl.Radius < 0 || gomath.IsNaN(c.Curl.Radius) || gomath.IsInf(c.Curl.Radius, 0) {
		return fmt.Errorf("curl: %w (got %v)", ErrInvalidRadius, c.Curl.Radius)
	}
	if c.Curl.Direction.X == 0 && c.Curl.Direction.Y == 0 {
		return fmt.Errorf("curl: %w", ErrInvalidDirection)
	}
	if c.Preview.Width <= 0 || c.Preview.Height <= 0 {
		return fmt.Errorf("preview: %w (%dx%d)", ErrInvalidSize, c.Preview.Width, c.Preview.Height)
	}
	r := c.Page.Rect
	if r.Right <= r.Left || r.Top <= r.Bottom {
		return fmt.Errorf("page: %w", ErrEmptyRect)
	}

	colors := []struct{ name, value string }{
		{"mesh.shadow_inner", c.Mesh.ShadowInner},
		{"mesh.shadow_outer", c.Mesh.ShadowOuter},
		{"page.front_color", c.Page.FrontColor},
		{"page.back_color", c.Page.BackColor},
		{"preview.background", c.Preview.Background},
	}
	for _, col := range colors {
		if _, err := ParseColor(col.value); err != nil {
			return fmt.Errorf("%s: %w", col.name, err)
		}
	}
	return nil
}

// ParseColor parses "#RRGGBB" or "#RRGGBBAA" into a packed 0xRRGGBBAA value.
// Six-digit colors are opaque.
func ParseColor(s string) (uint32, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return 0, fmt.Errorf("%w %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidColor, s)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return uint32(v), nil
}

// MustColor is ParseColor for values already checked by Validate.
func MustColor(s string) uint32 {
	v, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return v
}
