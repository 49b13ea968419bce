// Package config carries the process-wide settings for one extraction run.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Default values
	DefaultSourcePath  = "aCRF.pdf"
	DefaultOutputDir   = "."
	DefaultLogLevel    = "info"
	DefaultLogFile     = "acrf_pdf_extractor.log"
	DefaultMaxFileSize = 100 * 1024 * 1024 // 100MB

	// Directory permissions
	DefaultDirPerm = 0o750
)

// Config holds all configuration for the extraction pipeline
type Config struct {
	// Source configuration
	PDFPath     string
	OutputDir   string
	MaxPages    int   // 0 processes every page
	MaxFileSize int64 // Maximum PDF file size in bytes

	// Artifact filename overrides; empty derives <base>_raw.json,
	// <base>_tabular.json and <base>_report.xlsx from the source name
	RawJSON     string
	TabularJSON string
	Report      string

	// Application configuration
	Version  string
	LogLevel string
	LogFile  string // empty logs to console only
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		PDFPath:     DefaultSourcePath,
		OutputDir:   DefaultOutputDir,
		MaxFileSize: DefaultMaxFileSize,
		Version:     "1.0.0",
		LogLevel:    DefaultLogLevel,
		LogFile:     DefaultLogFile,
	}
}

// LoadFromFlags parses command line flags and returns a configuration
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	// Check for version flag before parsing
	if err := checkVersionFlag(); err != nil {
		return nil, err
	}

	pflag.Parse()

	populateConfigFromViper(cfg)

	// Expand paths if needed
	if cfg.OutputDir != "" {
		if expandedPath, err := filepath.Abs(cfg.OutputDir); err == nil {
			cfg.OutputDir = expandedPath
		}
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults
func setupViperEnvironment(cfg *Config) {
	// Set environment variable prefix
	viper.SetEnvPrefix("ACRF_PDF_EXTRACTOR")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Define flags with Viper
	viper.SetDefault("pdf", cfg.PDFPath)
	viper.SetDefault("output-dir", cfg.OutputDir)
	viper.SetDefault("pages", cfg.MaxPages)
	viper.SetDefault("max-filesize", cfg.MaxFileSize)
	viper.SetDefault("raw-json", cfg.RawJSON)
	viper.SetDefault("tabular-json", cfg.TabularJSON)
	viper.SetDefault("report", cfg.Report)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("logfile", cfg.LogFile)
}

// defineCommandLineFlags sets up all command line flags
func defineCommandLineFlags(cfg *Config) {
	pflag.String("pdf", cfg.PDFPath, "Path to the source PDF")
	pflag.String("output-dir", cfg.OutputDir, "Directory receiving the JSON and xlsx artifacts")
	pflag.Int("pages", cfg.MaxPages, "Maximum number of pages to process (0 = all)")
	pflag.Int64("max-filesize", cfg.MaxFileSize, "Maximum accepted source file size in bytes")
	pflag.String("raw-json", cfg.RawJSON, "Filename for the raw record JSON (default derives from the source name)")
	pflag.String("tabular-json", cfg.TabularJSON, "Filename for the tabular record JSON (default derives from the source name)")
	pflag.String("report", cfg.Report, "Filename for the xlsx report (default derives from the source name)")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.String("logfile", cfg.LogFile, "Log file appended alongside console output (empty = console only)")
}

// bindFlagsToViper binds command line flags to viper configuration
func bindFlagsToViper() {
	_ = viper.BindPFlag("pdf", pflag.Lookup("pdf"))
	_ = viper.BindPFlag("output-dir", pflag.Lookup("output-dir"))
	_ = viper.BindPFlag("pages", pflag.Lookup("pages"))
	_ = viper.BindPFlag("max-filesize", pflag.Lookup("max-filesize"))
	_ = viper.BindPFlag("raw-json", pflag.Lookup("raw-json"))
	_ = viper.BindPFlag("tabular-json", pflag.Lookup("tabular-json"))
	_ = viper.BindPFlag("report", pflag.Lookup("report"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("logfile", pflag.Lookup("logfile"))
}

// setupUsageMessage configures the custom usage message
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\naCRF PDF Extractor - exports PDF annotations, bookmarks and text as JSON and a styled xlsx report\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                      # extract ./aCRF.pdf into the current directory\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --pdf=/data/study.pdf                # extract a specific document\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --pdf=study.pdf --pages=10           # first ten pages only\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --output-dir=out --loglevel=debug    # verbose run into ./out\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  ACRF_PDF_EXTRACTOR_PDF           Source PDF path\n")
		fmt.Fprintf(os.Stderr, "  ACRF_PDF_EXTRACTOR_OUTPUT_DIR    Artifact directory\n")
		fmt.Fprintf(os.Stderr, "  ACRF_PDF_EXTRACTOR_PAGES         Page cap\n")
		fmt.Fprintf(os.Stderr, "  ACRF_PDF_EXTRACTOR_MAX_FILESIZE  Maximum file size\n")
		fmt.Fprintf(os.Stderr, "  ACRF_PDF_EXTRACTOR_LOGLEVEL      Log level\n")
		fmt.Fprintf(os.Stderr, "  ACRF_PDF_EXTRACTOR_LOGFILE       Log file path\n")
	}
}

// checkVersionFlag checks if version flag was requested
func checkVersionFlag() error {
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			return fmt.Errorf("version requested")
		}
	}
	return nil
}

// populateConfigFromViper fills the config struct with values from viper
func populateConfigFromViper(cfg *Config) {
	cfg.PDFPath = viper.GetString("pdf")
	cfg.OutputDir = viper.GetString("output-dir")
	cfg.MaxPages = viper.GetInt("pages")
	cfg.MaxFileSize = viper.GetInt64("max-filesize")
	cfg.RawJSON = viper.GetString("raw-json")
	cfg.TabularJSON = viper.GetString("tabular-json")
	cfg.Report = viper.GetString("report")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.LogFile = viper.GetString("logfile")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.PDFPath == "" {
		return errors.New("source PDF path cannot be empty")
	}

	if c.OutputDir == "" {
		return errors.New("output directory cannot be empty")
	}

	// Check if the output directory exists, create if it doesn't
	if _, err := os.Stat(c.OutputDir); os.IsNotExist(err) {
		if err := os.MkdirAll(c.OutputDir, DefaultDirPerm); err != nil {
			return fmt.Errorf("cannot create output directory %s: %w", c.OutputDir, err)
		}
	} else if err != nil {
		return fmt.Errorf("cannot access output directory %s: %w", c.OutputDir, err)
	}

	if c.MaxPages < 0 {
		return errors.New("page cap cannot be negative")
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// IsDebug returns true if debug logging is enabled
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{PDFPath: %s, OutputDir: %s, MaxPages: %d, MaxFileSize: %d, LogLevel: %s, LogFile: %s}",
		c.PDFPath, c.OutputDir, c.MaxPages, c.MaxFileSize, c.LogLevel, c.LogFile)
}
