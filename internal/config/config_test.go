package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Mesh.MaxCurlSplits != 10 {
		t.Errorf("expected max_curl_splits 10, got %d", cfg.Mesh.MaxCurlSplits)
	}
	if !cfg.Mesh.Shadows || !cfg.Mesh.Textures {
		t.Error("expected shadows and textures enabled by default")
	}
	if cfg.Mesh.CurlLines {
		t.Error("expected curl_lines to be false by default")
	}
	if cfg.Page.Rect != (RectConfig{Left: -1, Top: 1, Right: 1, Bottom: -1}) {
		t.Errorf("unexpected default rect %+v", cfg.Page.Rect)
	}
	if cfg.Curl.Frames != 24 {
		t.Errorf("expected 24 frames, got %d", cfg.Curl.Frames)
	}
	if cfg.Preview.Width != 512 || cfg.Preview.Height != 512 {
		t.Errorf("expected 512x512 preview, got %dx%d", cfg.Preview.Width, cfg.Preview.Height)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, want nil", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)

	yamlContent := `
mesh:
  max_curl_splits: 16
  shadows: false
  shadow_inner: "#ff000040"

page:
  rect: {left: 0, top: 4, right: 3, bottom: 0}
  front_color: "#ffeedd"
  flip: true

curl:
  start: {x: 3, y: 0}
  end: {x: -1, y: 2}
  direction: {x: -1, y: 1}
  radius: 0.5
  frames: 8

preview:
  width: 320
  height: 240
  output_dir: "out"
  dump_stats: true

logging:
  level: "debug"
  log_file: "curl.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Mesh.MaxCurlSplits != 16 {
		t.Errorf("expected max_curl_splits 16, got %d", cfg.Mesh.MaxCurlSplits)
	}
	if cfg.Mesh.Shadows {
		t.Error("expected shadows to be false")
	}
	if !cfg.Mesh.Textures {
		t.Error("expected textures to keep its default")
	}
	if cfg.Mesh.ShadowInner != "#ff000040" {
		t.Errorf("expected shadow_inner #ff000040, got %s", cfg.Mesh.ShadowInner)
	}
	if cfg.Page.Rect.Top != 4 || cfg.Page.Rect.Right != 3 {
		t.Errorf("unexpected rect %+v", cfg.Page.Rect)
	}
	if !cfg.Page.Flip {
		t.Error("expected flip to be true")
	}
	if cfg.Page.BackColor != "#d0d0d0ff" {
		t.Errorf("expected default back color, got %s", cfg.Page.BackColor)
	}
	if cfg.Curl.End != (Point{X: -1, Y: 2}) {
		t.Errorf("unexpected curl end %+v", cfg.Curl.End)
	}
	if cfg.Curl.Radius != 0.5 || cfg.Curl.Frames != 8 {
		t.Errorf("unexpected curl radius/frames %v/%d", cfg.Curl.Radius, cfg.Curl.Frames)
	}
	if cfg.Preview.Width != 320 || cfg.Preview.Height != 240 {
		t.Errorf("unexpected preview size %dx%d", cfg.Preview.Width, cfg.Preview.Height)
	}
	if cfg.Preview.Prefix != "frame" {
		t.Errorf("expected default prefix, got %s", cfg.Preview.Prefix)
	}
	if !cfg.Preview.DumpStats {
		t.Error("expected dump_stats to be true")
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "curl.log" {
		t.Errorf("unexpected logging %+v", cfg.Logging)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
mesh:
  max_curl_splits: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/curlshot.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestLoadFileRejectsInvalidValues(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, FileName)
	if err := os.WriteFile(configPath, []byte("mesh:\n  max_curl_splits: 0\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	_, err := LoadFile(configPath)
	if !errors.Is(err, ErrInvalidSplits) {
		t.Errorf("LoadFile() error = %v, want %v", err, ErrInvalidSplits)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"splits", func(c *Config) { c.Mesh.MaxCurlSplits = 0 }, ErrInvalidSplits},
		{"frames", func(c *Config) { c.Curl.Frames = 0 }, ErrInvalidFrames},
		{"negative radius", func(c *Config) { c.Curl.Radius = -0.1 }, ErrInvalidRadius},
		{"zero direction", func(c *Config) { c.Curl.Direction = Point{} }, ErrInvalidDirection},
		{"zero width", func(c *Config) { c.Preview.Width = 0 }, ErrInvalidSize},
		{"empty rect", func(c *Config) { c.Page.Rect.Top = c.Page.Rect.Bottom }, ErrEmptyRect},
		{"bad color", func(c *Config) { c.Page.FrontColor = "white" }, ErrInvalidColor},
		{"bad background", func(c *Config) { c.Preview.Background = "#12345" }, ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
	}{
		{"#ffffff", 0xffffffff},
		{"#00000080", 0x00000080},
		{"12345678", 0x12345678},
		{" #ff0000 ", 0xff0000ff},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseColor(%q) = %#x, %v; want %#x", tt.in, got, err, tt.want)
		}
	}

	for _, bad := range []string{"", "#fff", "#gggggg", "#123456789"} {
		if _, err := ParseColor(bad); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseColor(%q) error = %v, want %v", bad, err, ErrInvalidColor)
		}
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	cfg := Default()
	cfg.Curl.Radius = 0.75
	cfg.Page.BackColor = "#102030ff"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("LoadFile() = %+v, want %+v", loaded, cfg)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, FileName)
	if err := os.WriteFile(configPath, []byte("curl:\n  frames: 3\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Errorf("expected to find %s in current directory", FileName)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Mesh.CurlLines {
					t.Error("expected curl lines to be enabled with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "frames flag",
			setup: func() { *flagFrames = 60 },
			verify: func(cfg *Config) {
				if cfg.Curl.Frames != 60 {
					t.Errorf("expected 60 frames, got %d", cfg.Curl.Frames)
				}
			},
			teardown: func() { *flagFrames = 0 },
		},
		{
			name:  "zero radius flag",
			setup: func() { *flagRadius = 0 },
			verify: func(cfg *Config) {
				if cfg.Curl.Radius != 0 {
					t.Errorf("expected radius 0, got %v", cfg.Curl.Radius)
				}
			},
			teardown: func() { *flagRadius = -1 },
		},
		{
			name: "output flags",
			setup: func() {
				*flagOut = "/tmp/frames"
				*flagDump = true
				*flagOutlines = true
				*flagSplits = 4
			},
			verify: func(cfg *Config) {
				if cfg.Preview.OutputDir != "/tmp/frames" {
					t.Errorf("expected output dir /tmp/frames, got %s", cfg.Preview.OutputDir)
				}
				if !cfg.Preview.DumpStats || !cfg.Preview.Outlines {
					t.Error("expected dump_stats and outlines to be enabled")
				}
				if cfg.Mesh.MaxCurlSplits != 4 {
					t.Errorf("expected 4 splits, got %d", cfg.Mesh.MaxCurlSplits)
				}
			},
			teardown: func() {
				*flagOut = ""
				*flagDump = false
				*flagOutlines = false
				*flagSplits = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestApplyFlagsDefaultsUntouched(t *testing.T) {
	cfg := Default()
	applyFlags(cfg)
	if *cfg != *Default() {
		t.Errorf("applyFlags() with no flags changed config: %+v", cfg)
	}
}
