// Package main is the entry point for curlshot, which renders a page curl
// sweep into numbered PNG frames.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/Faultbox/pagecurl/internal/config"
	"github.com/Faultbox/pagecurl/internal/logger"
	"github.com/Faultbox/pagecurl/internal/sweep"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if config.SaveRequested() {
		path, err := cfg.Save()
		if err != nil {
			logger.Error("failed to save config", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("config saved", zap.String("path", path))
		return
	}

	logger.Sugar.Debugf("Config: %+v", cfg)

	runner, err := sweep.New(cfg, logger.Named("sweep"))
	if err != nil {
		logger.Error("failed to set up sweep", zap.Error(err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pb := progressbar.Default(int64(cfg.Curl.Frames), "curling")
	stats, err := runner.Run(ctx, func(sweep.FrameStats) {
		_ = pb.Add(1)
	})
	_ = pb.Close()
	if err != nil {
		logger.Error("sweep failed", zap.Error(err), zap.Int("framesWritten", len(stats.Frames)))
		os.Exit(1)
	}

	logger.Info("sweep finished",
		zap.Int("frames", len(stats.Frames)),
		zap.String("outputDir", cfg.Preview.OutputDir))
}
