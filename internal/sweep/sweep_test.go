package sweep

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/pagecurl/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Curl.Frames = 3
	cfg.Preview.Width = 64
	cfg.Preview.Height = 64
	cfg.Preview.OutputDir = filepath.Join(t.TempDir(), "frames")
	cfg.Preview.DumpStats = true
	return cfg
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Mesh.MaxCurlSplits = 0
	if _, err := New(cfg, nil); !errors.Is(err, config.ErrInvalidSplits) {
		t.Errorf("New() error = %v, want %v", err, config.ErrInvalidSplits)
	}
}

func TestPosition(t *testing.T) {
	cfg := testConfig(t)
	cfg.Curl.Start = config.Point{X: 1, Y: 0}
	cfg.Curl.End = config.Point{X: -1, Y: 2}

	r, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		frame int
		x, y  float64
	}{
		{0, 1, 0},
		{1, 0, 1},
		{2, -1, 2},
	}
	for _, tt := range tests {
		p := r.Position(tt.frame)
		if p.X != tt.x || p.Y != tt.y {
			t.Errorf("Position(%d) = %v, want (%v, %v)", tt.frame, p, tt.x, tt.y)
		}
	}

	cfg.Curl.Frames = 1
	if p := r.Position(0); p.X != 1 || p.Y != 0 {
		t.Errorf("Position(0) with one frame = %v, want start", p)
	}
}

func TestRun(t *testing.T) {
	cfg := testConfig(t)
	r, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	var seen []int
	stats, err := r.Run(context.Background(), func(fs FrameStats) {
		seen = append(seen, fs.Frame)
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(stats.Frames) != 3 || len(seen) != 3 {
		t.Fatalf("Run() produced %d frames, callback saw %d, want 3", len(stats.Frames), len(seen))
	}
	for i, fs := range stats.Frames {
		if fs.Front+fs.Back != fs.Vertices {
			t.Errorf("frame %d: front %d + back %d != vertices %d", i, fs.Front, fs.Back, fs.Vertices)
		}
		if fs.Front+fs.Back < 4 {
			t.Errorf("frame %d: front %d + back %d, want at least 4", i, fs.Front, fs.Back)
		}
		if _, err := os.Stat(filepath.Join(cfg.Preview.OutputDir, fs.File)); err != nil {
			t.Errorf("frame %d: %v", i, err)
		}
	}

	dumped, err := ReadStats(filepath.Join(cfg.Preview.OutputDir, StatsFile))
	if err != nil {
		t.Fatalf("ReadStats() error = %v", err)
	}
	if dumped.MaxCurlSplits != cfg.Mesh.MaxCurlSplits {
		t.Errorf("dumped max_curl_splits = %d, want %d", dumped.MaxCurlSplits, cfg.Mesh.MaxCurlSplits)
	}
	if len(dumped.Frames) != 3 {
		t.Fatalf("dumped %d frames, want 3", len(dumped.Frames))
	}
	if dumped.Frames[2] != stats.Frames[2] {
		t.Errorf("dumped frame = %+v, want %+v", dumped.Frames[2], stats.Frames[2])
	}
}

func TestRun_NoDump(t *testing.T) {
	cfg := testConfig(t)
	cfg.Preview.DumpStats = false
	cfg.Mesh.Shadows = false

	r, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	stats, err := r.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for _, fs := range stats.Frames {
		if fs.DropShadow != 0 || fs.SelfShadow != 0 {
			t.Errorf("frame %d has shadows with shadows disabled", fs.Frame)
		}
	}
	if _, err := os.Stat(filepath.Join(cfg.Preview.OutputDir, StatsFile)); !os.IsNotExist(err) {
		t.Errorf("stats file written without dump_stats: %v", err)
	}
}

func TestRun_Cancelled(t *testing.T) {
	r, err := New(testConfig(t), nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := r.Run(ctx, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want %v", err, context.Canceled)
	}
	if len(stats.Frames) != 0 {
		t.Errorf("Run() wrote %d frames after cancel", len(stats.Frames))
	}
}
