package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	return NewWithLevel(w, log.InfoLevel)
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that writes to a file
func NewFileLogger(path string) (*Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		f.Close()
	}

	return New(f), cleanup, nil
}

// NewMultiLogger creates a logger that writes to multiple outputs
func NewMultiLogger(writers ...io.Writer) *Logger {
	w := io.MultiWriter(writers...)
	return New(w)
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// BuildStarted logs the start of a site build
func (l *Logger) BuildStarted(buildID, contentDir, outputDir string, incremental bool) {
	l.Info("build started",
		"build_id", buildID,
		"content_dir", contentDir,
		"output_dir", outputDir,
		"incremental", incremental)
}

// BuildCompleted logs the completion of a site build
func (l *Logger) BuildCompleted(buildID string, generated, skipped, errors int, duration time.Duration) {
	l.Info("build completed",
		"build_id", buildID,
		"pages_generated", generated,
		"pages_skipped", skipped,
		"errors", errors,
		"duration", duration.Round(time.Millisecond))
}

// PageGenerated logs a successfully written page
func (l *Logger) PageGenerated(source, dest string, nodes int) {
	l.Info("page generated",
		"source", source,
		"dest", dest,
		"nodes", nodes)
}

// PageSkipped logs when an unchanged page is not rebuilt
func (l *Logger) PageSkipped(source, reason string) {
	l.Debug("page skipped",
		"source", source,
		"reason", reason)
}

// PageError logs an error for a specific page
func (l *Logger) PageError(source string, err error) {
	l.Error("page failed",
		"source", source,
		"error", err)
}

// StaticCopied logs the static asset copy
func (l *Logger) StaticCopied(src, dest string, files int) {
	l.Info("static assets copied",
		"source", src,
		"dest", dest,
		"files", files)
}

// StateError logs a manifest-related error
func (l *Logger) StateError(operation string, err error) {
	l.Error("state error",
		"operation", operation,
		"error", err)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(contentDir, outputDir, basePath string) {
	l.Debug("config loaded",
		"content_dir", contentDir,
		"output_dir", outputDir,
		"base_path", basePath)
}
