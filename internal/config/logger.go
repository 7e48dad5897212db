package config

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/simp-lee/logger"
)

// SetupLogger creates a *logger.Logger based on the provided LogConfig,
// sets it as the global default via slog.SetDefault, and returns it.
// extra options are applied after the configured ones, so they can redirect
// the console writer in tests.
// The caller is responsible for calling Close() on the returned logger.
func SetupLogger(cfg *LogConfig, extra ...logger.Option) (*logger.Logger, error) {
	if cfg == nil {
		return nil, errors.New("log config is nil")
	}

	log, err := logger.New(append(BuildLoggerOpts(cfg), extra...)...)
	if err != nil {
		return nil, err
	}

	log.SetDefault()
	return log, nil
}

// BuildLoggerOpts translates a LogConfig into logger options. The context
// middleware is always installed so that attributes attached with
// logger.WithContextAttrs (operation name and id) reach every record.
// Invalid level values default to "info"; unknown formats fall back to
// "custom". A nil config yields nil.
func BuildLoggerOpts(cfg *LogConfig) []logger.Option {
	if cfg == nil {
		return nil
	}

	format := parseFormat(cfg.Format)

	// Color defaults to true.
	colorEnabled := true
	if cfg.Color != nil {
		colorEnabled = *cfg.Color
	}

	opts := []logger.Option{
		logger.WithLevel(parseLevel(cfg.Level)),
		logger.WithMiddleware(logger.ContextMiddleware()),
		logger.WithConsoleFormat(format),
		logger.WithConsoleColor(colorEnabled),
	}

	if cfg.FilePath == "" {
		return opts
	}

	opts = append(opts, logger.WithFilePath(cfg.FilePath), logger.WithFileFormat(format))
	if cfg.MaxSizeMB > 0 {
		opts = append(opts, logger.WithMaxSizeMB(cfg.MaxSizeMB))
	}
	if cfg.RetentionDays > 0 {
		opts = append(opts, logger.WithRetentionDays(cfg.RetentionDays))
	}
	if cfg.MaxBackups > 0 {
		opts = append(opts, logger.WithMaxBackups(cfg.MaxBackups))
	}
	if cfg.CompressRotated != nil {
		opts = append(opts, logger.WithCompressRotated(*cfg.CompressRotated))
	}
	return opts
}

func parseFormat(s string) logger.OutputFormat {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text":
		return logger.FormatText
	case "json":
		return logger.FormatJSON
	default:
		return logger.FormatCustom
	}
}

// parseLevel converts a string level name to the corresponding slog.Level.
// Unrecognized values default to slog.LevelInfo.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
