package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/santoshrk11/acrf-pdf-extractor/internal/config"
	"github.com/santoshrk11/acrf-pdf-extractor/internal/pipeline"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// setupLogging builds the process-wide logger writing to the console and,
// when configured, an append-only log file. The returned func closes the
// file sink.
func setupLogging(cfg *config.Config) (*slog.Logger, func(), error) {
	sinks := []io.Writer{os.Stderr}

	closeFile := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file %s: %w", cfg.LogFile, err)
		}
		sinks = append(sinks, f)
		closeFile = func() { _ = f.Close() }
	}

	handler := slog.NewTextHandler(io.MultiWriter(sinks...), &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	})
	return slog.New(handler), closeFile, nil
}

// logLevel maps the configured level name onto a slog level. Unknown names
// fall back to info; config validation rejects them before this runs.
func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, closeLog, err := setupLogging(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer closeLog()

	// Set version if it was provided during build
	if version != "dev" {
		cfg.Version = version
	}

	if cfg.IsDebug() {
		logger.Debug("starting with configuration", "config", cfg.String())
	}

	p := pipeline.New(pipeline.Config{
		Logger:      logger,
		MaxFileSize: cfg.MaxFileSize,
		MaxPages:    cfg.MaxPages,
		OutputDir:   cfg.OutputDir,
		RawJSON:     cfg.RawJSON,
		TabularJSON: cfg.TabularJSON,
		Report:      cfg.Report,
	})

	if err := p.Run(cfg.PDFPath); err != nil {
		logger.Error("pipeline failed", "error", err)
		closeLog()
		os.Exit(1)
	}
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("aCRF PDF Extractor\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
