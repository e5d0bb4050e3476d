// Package sweep animates a page curl across frames and renders each frame.
package sweep

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/pagecurl/internal/config"
	"github.com/Faultbox/pagecurl/internal/preview"
	"github.com/Faultbox/pagecurl/pkg/curl"
	"github.com/Faultbox/pagecurl/pkg/math"
)

// StatsFile is the name of the per-frame statistics dump.
const StatsFile = "stats.yaml"

// viewMargin leaves room around the page for geometry curling past it.
const viewMargin = 0.25

// FrameStats records the geometry produced for one frame.
type FrameStats struct {
	Frame      int     `yaml:"frame"`
	PosX       float64 `yaml:"pos_x"`
	PosY       float64 `yaml:"pos_y"`
	Vertices   int     `yaml:"vertices"`
	Front      int     `yaml:"front"`
	Back       int     `yaml:"back"`
	DropShadow int     `yaml:"drop_shadow"`
	SelfShadow int     `yaml:"self_shadow"`
	File       string  `yaml:"file,omitempty"`
}

// Stats is the result of a sweep.
type Stats struct {
	MaxCurlSplits int          `yaml:"max_curl_splits"`
	Radius        float64      `yaml:"radius"`
	Direction     config.Point `yaml:"direction"`
	Frames        []FrameStats `yaml:"frames"`
}

// Runner drives one curl mesh through the configured sweep.
type Runner struct {
	cfg      *config.Config
	log      *zap.Logger
	mesh     *curl.Mesh
	renderer *preview.Renderer
	writer   *preview.Writer
}

// New builds the mesh, renderer and writer described by cfg.
func New(cfg *config.Config, log *zap.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}

	mc := cfg.Mesh
	mesh := curl.New(mc.MaxCurlSplits,
		curl.WithLogger(log.Named("mesh")),
		curl.WithShadows(mc.Shadows),
		curl.WithTextures(mc.Textures),
		curl.WithCurlLines(mc.CurlLines),
		curl.WithShadowColors(
			curl.Unpack(config.MustColor(mc.ShadowInner)),
			curl.Unpack(config.MustColor(mc.ShadowOuter)),
		),
	)

	pr := cfg.Page.Rect
	rect := math.NewRect(pr.Left, pr.Top, pr.Right, pr.Bottom)
	mesh.SetRect(rect)
	mesh.SetColor(curl.Unpack(config.MustColor(cfg.Page.FrontColor)), curl.SideFront)
	mesh.SetColor(curl.Unpack(config.MustColor(cfg.Page.BackColor)), curl.SideBack)
	mesh.SetFlipTexture(cfg.Page.Flip)
	mesh.Reset()

	opts := preview.DefaultOptions()
	opts.Background = curl.Unpack(config.MustColor(cfg.Preview.Background))
	opts.Outlines = cfg.Preview.Outlines
	opts.Label = cfg.Preview.Label
	if !mc.Textures {
		opts.Checker = 0
	}
	vp := preview.NewViewport(rect, cfg.Preview.Width, cfg.Preview.Height, viewMargin)

	return &Runner{
		cfg:      cfg,
		log:      log,
		mesh:     mesh,
		renderer: preview.NewRenderer(vp, opts),
		writer:   preview.NewWriter(cfg.Preview.OutputDir, cfg.Preview.Prefix),
	}, nil
}

// Position returns the curl position for frame i, moving linearly from the
// configured start to end.
func (r *Runner) Position(i int) math.Vec2 {
	c := r.cfg.Curl
	start := math.Vec2{X: c.Start.X, Y: c.Start.Y}
	end := math.Vec2{X: c.End.X, Y: c.End.Y}
	if c.Frames <= 1 {
		return start
	}
	return start.Lerp(end, float64(i)/float64(c.Frames-1))
}

// Run curls, renders and writes every frame. onFrame, if set, is called
// after each frame is written. Run stops between frames when ctx is done.
func (r *Runner) Run(ctx context.Context, onFrame func(FrameStats)) (*Stats, error) {
	c := r.cfg.Curl
	dir := math.Vec2{X: c.Direction.X, Y: c.Direction.Y}
	stats := &Stats{
		MaxCurlSplits: r.mesh.MaxCurlSplits(),
		Radius:        c.Radius,
		Direction:     c.Direction,
		Frames:        make([]FrameStats, 0, c.Frames),
	}

	for i := range c.Frames {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		pos := r.Position(i)
		r.mesh.Curl(pos, dir, c.Radius)
		f := r.mesh.Frame()

		fs := FrameStats{
			Frame:      i,
			PosX:       pos.X,
			PosY:       pos.Y,
			Vertices:   f.VertexCount(),
			Front:      f.FrontCount,
			Back:       f.BackCount,
			DropShadow: f.DropShadowCount,
			SelfShadow: f.SelfShadowCount,
		}

		label := fmt.Sprintf("%d/%d front %d back %d", i+1, c.Frames, fs.Front, fs.Back)
		img := r.renderer.Render(f, label)
		path, err := r.writer.WriteFrame(img, i)
		if err != nil {
			return stats, fmt.Errorf("frame %d: %w", i, err)
		}
		fs.File = filepath.Base(path)

		r.log.Debug("frame written",
			zap.Int("frame", i),
			zap.Float64("x", pos.X),
			zap.Float64("y", pos.Y),
			zap.Int("front", fs.Front),
			zap.Int("back", fs.Back),
			zap.Int("dropShadow", fs.DropShadow),
			zap.Int("selfShadow", fs.SelfShadow),
			zap.String("file", path))

		stats.Frames = append(stats.Frames, fs)
		if onFrame != nil {
			onFrame(fs)
		}
	}

	if r.cfg.Preview.DumpStats {
		path := filepath.Join(r.writer.OutputDir(), StatsFile)
		if err := WriteStats(path, stats); err != nil {
			return stats, err
		}
		r.log.Info("stats written", zap.String("path", path))
	}
	return stats, nil
}

// WriteStats writes s as YAML.
func WriteStats(path string, s *Stats) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding stats: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating stats dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing stats: %w", err)
	}
	return nil
}

// ReadStats loads a stats dump written by WriteStats.
func ReadStats(path string) (*Stats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Stats
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decoding stats: %w", err)
	}
	return &s, nil
}
