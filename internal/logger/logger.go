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
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
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

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})

	cleanup := func() {
		f.Close()
	}

	return &Logger{Logger: l}, cleanup, nil
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// SessionStarted logs the start of an editing session
func (l *Logger) SessionStarted(id string) {
	l.Info("session started", "session", id)
}

// FileOpened logs a successful open
func (l *Logger) FileOpened(id, path, format string, paragraphs int) {
	l.Info("file opened",
		"session", id,
		"path", path,
		"format", format,
		"paragraphs", paragraphs)
}

// OpenEmpty logs an open that produced no content
func (l *Logger) OpenEmpty(id, path string) {
	l.Debug("open produced empty buffer",
		"session", id,
		"path", path)
}

// FileSaved logs an explicit save
func (l *Logger) FileSaved(id, path, format string) {
	l.Info("file saved",
		"session", id,
		"path", path,
		"format", format)
}

// AutoSaved logs an implicit save triggered by paragraph growth
func (l *Logger) AutoSaved(id, path string, paragraphs int) {
	l.Info("auto-saved on paragraph growth",
		"session", id,
		"path", path,
		"paragraphs", paragraphs)
}

// ParagraphsDeleted logs a detected paragraph deletion
func (l *Logger) ParagraphsDeleted(id string, count int) {
	l.Info("paragraphs deleted",
		"session", id,
		"count", count)
}

// SaveError logs a failed save
func (l *Logger) SaveError(id, path string, err error) {
	l.Error("save failed",
		"session", id,
		"path", path,
		"error", err)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(logFile string, autosave bool) {
	l.Debug("config loaded",
		"log_file", logFile,
		"autosave_on_growth", autosave)
}
