package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagFrames     = flag.Int("frames", 0, "Number of frames to render")
	flagRadius     = flag.Float64("radius", -1, "Curl radius (negative keeps the configured value)")
	flagSplits     = flag.Int("splits", 0, "Maximum curl splits")
	flagOut        = flag.String("out", "", "Output directory for PNG frames")
	flagDump       = flag.Bool("dump", false, "Write per-frame stats.yaml")
	flagOutlines   = flag.Bool("outlines", false, "Draw triangle outlines")
	flagSaveConfig = flag.Bool("save-config", false, "Write the resolved config to the user config dir and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether --save-config was given.
func SaveRequested() bool {
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Mesh.CurlLines = true
	}
	if *flagFrames > 0 {
		cfg.Curl.Frames = *flagFrames
	}
	if *flagRadius >= 0 {
		cfg.Curl.Radius = *flagRadius
	}
	if *flagSplits > 0 {
		cfg.Mesh.MaxCurlSplits = *flagSplits
	}
	if *flagOut != "" {
		cfg.Preview.OutputDir = *flagOut
	}
	if *flagDump {
		cfg.Preview.DumpStats = true
	}
	if *flagOutlines {
		cfg.Preview.Outlines = true
	}
}
