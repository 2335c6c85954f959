package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gg"

	"LocalDraw/internal/config"
	"LocalDraw/internal/logging"
	"LocalDraw/internal/ui"
)

func main() {
	configPath := flag.String("config", "localdraw.toml", "path to the TOML configuration file")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn or error (overrides the config file)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logging.ParseLevel(cfg.Log.Level),
	}))
	logging.SetLogger(logger)
	gg.SetLogger(logger)

	logger.Info("[MAIN] starting", "config", *configPath, "canvas", cfg.Canvas.Width, "tool", cfg.Tools.Default)
	ui.RunApp(cfg)
}
