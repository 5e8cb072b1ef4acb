package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"cfpr-go/internal/config"
	"cfpr-go/internal/recorder"
)

// LogFileName is the log file created inside the configured log directory.
const LogFileName = "cfpr.log"

// recordHandler is a custom slog.Handler that formats log records as:
//
//	<timestamp>\t<level>\t<opID>\t<message>\t<key=value ...>
type recordHandler struct {
	w     io.Writer
	opID  string
	attrs []slog.Attr
}

func (h *recordHandler) Enabled(_ context.Context, _ slog.Level) bool { return true }

func (h *recordHandler) Handle(_ context.Context, r slog.Record) error {
	ts := r.Time.UTC().Format("2006-01-02T15:04:05Z")
	level := r.Level.String()

	_, err := fmt.Fprintf(h.w, "%s\t%s\t%s\t%s", ts, level, h.opID, r.Message)
	if err != nil {
		return err
	}

	for _, a := range h.attrs {
		fmt.Fprintf(h.w, "\t%s=%v", a.Key, a.Value)
	}

	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(h.w, "\t%s=%v", a.Key, a.Value)
		return true
	})

	_, err = fmt.Fprintln(h.w)
	return err
}

func (h *recordHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &recordHandler{
		w:     h.w,
		opID:  h.opID,
		attrs: append(append([]slog.Attr{}, h.attrs...), attrs...),
	}
}

func (h *recordHandler) WithGroup(string) slog.Handler { return h }

// newLogger builds the logger for one invocation. Records go to
// <LogDir>/cfpr.log through a rotating writer, and also to stderr when
// verbose is set. With neither sink the returned logger discards everything.
// The returned closer is nil when no file was opened.
func newLogger(cfg *config.Config, opID string, verbose bool, stderr io.Writer) (recorder.Logger, io.Closer, error) {
	var writers []io.Writer
	var closer io.Closer

	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, 0755); err != nil {
			return nil, nil, fmt.Errorf("creating log directory: %w", err)
		}
		rotator := &lumberjack.Logger{
			Filename:   filepath.Join(cfg.LogDir, LogFileName),
			MaxSize:    cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAgeDays,
			Compress:   cfg.Log.Compress,
		}
		writers = append(writers, rotator)
		closer = rotator
	}
	if verbose {
		writers = append(writers, stderr)
	}

	if len(writers) == 0 {
		return recorder.NewNopLogger(), nil, nil
	}

	handler := &recordHandler{w: io.MultiWriter(writers...), opID: opID}
	return &slogAdapter{l: slog.New(handler)}, closer, nil
}

// slogAdapter wraps *slog.Logger to satisfy the recorder.Logger interface.
type slogAdapter struct {
	l *slog.Logger
}

func (a *slogAdapter) Debug(msg string, args ...any) { a.l.Debug(msg, args...) }
func (a *slogAdapter) Info(msg string, args ...any)  { a.l.Info(msg, args...) }
func (a *slogAdapter) Warn(msg string, args ...any)  { a.l.Warn(msg, args...) }
func (a *slogAdapter) Error(msg string, args ...any) { a.l.Error(msg, args...) }
