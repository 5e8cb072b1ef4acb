package app

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cfpr-go/internal/config"
	"cfpr-go/internal/recorder"
)

func TestRecordHandler_Handle(t *testing.T) {
	ts := time.Date(2024, 6, 15, 14, 30, 45, 0, time.UTC)

	tests := []struct {
		name    string
		opID    string
		level   slog.Level
		message string
		attrs   []slog.Attr
		want    string
	}{
		{
			name:    "basic info message",
			opID:    "op-123",
			level:   slog.LevelInfo,
			message: "record saved",
			want:    "2024-06-15T14:30:45Z\tINFO\top-123\trecord saved\n",
		},
		{
			name:    "debug level",
			opID:    "op-456",
			level:   slog.LevelDebug,
			message: "file fingerprinted",
			want:    "2024-06-15T14:30:45Z\tDEBUG\top-456\tfile fingerprinted\n",
		},
		{
			name:    "with record attrs",
			opID:    "op-789",
			level:   slog.LevelInfo,
			message: "record found",
			attrs:   []slog.Attr{slog.String("path", "/data/archive.zip"), slog.Int("size", 42)},
			want:    "2024-06-15T14:30:45Z\tINFO\top-789\trecord found\tpath=/data/archive.zip\tsize=42\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &recordHandler{w: &buf, opID: tt.opID}

			r := slog.NewRecord(ts, tt.level, tt.message, 0)
			for _, a := range tt.attrs {
				r.AddAttrs(a)
			}

			if err := h.Handle(context.Background(), r); err != nil {
				t.Fatalf("Handle() error = %v", err)
			}

			if got := buf.String(); got != tt.want {
				t.Errorf("Handle() output =\n%q\nwant:\n%q", got, tt.want)
			}
		})
	}
}

func TestRecordHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := &recordHandler{w: &buf, opID: "op-1"}

	// Add pre-set attrs
	h2 := h.WithAttrs([]slog.Attr{slog.String("component", "store")}).(*recordHandler)

	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := slog.NewRecord(ts, slog.LevelInfo, "insert", 0)
	r.AddAttrs(slog.String("id", "7"))

	if err := h2.Handle(context.Background(), r); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "component=store") {
		t.Errorf("expected pre-set attr component=store, got: %q", got)
	}
	if !strings.Contains(got, "id=7") {
		t.Errorf("expected record attr id=7, got: %q", got)
	}
}

func TestRecordHandler_WithAttrs_doesNotMutateOriginal(t *testing.T) {
	var buf bytes.Buffer
	h := &recordHandler{w: &buf, opID: "op-1", attrs: []slog.Attr{slog.String("a", "1")}}

	h2 := h.WithAttrs([]slog.Attr{slog.String("b", "2")}).(*recordHandler)

	if len(h.attrs) != 1 {
		t.Errorf("original handler attrs modified: got %d, want 1", len(h.attrs))
	}
	if len(h2.attrs) != 2 {
		t.Errorf("new handler attrs: got %d, want 2", len(h2.attrs))
	}
}

func TestRecordHandler_Enabled(t *testing.T) {
	h := &recordHandler{}
	// All levels should be enabled
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if !h.Enabled(context.Background(), level) {
			t.Errorf("Enabled(%v) = false, want true", level)
		}
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("writes to log dir", func(t *testing.T) {
		cfg := config.Default()
		cfg.LogDir = filepath.Join(t.TempDir(), "log")

		logger, closer, err := newLogger(cfg, "test-op", false, &bytes.Buffer{})
		if err != nil {
			t.Fatalf("newLogger() error = %v", err)
		}
		if closer == nil {
			t.Fatal("newLogger() returned nil closer")
		}

		logger.Info("record saved", "id", 1)
		if err := closer.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}

		data, err := os.ReadFile(filepath.Join(cfg.LogDir, LogFileName))
		if err != nil {
			t.Fatalf("reading log file: %v", err)
		}
		if !strings.Contains(string(data), "\ttest-op\trecord saved\tid=1") {
			t.Errorf("log file = %q, want record line", data)
		}
	})

	t.Run("verbose mirrors to stderr", func(t *testing.T) {
		var stderr bytes.Buffer
		logger, closer, err := newLogger(config.Default(), "op-2", true, &stderr)
		if err != nil {
			t.Fatalf("newLogger() error = %v", err)
		}
		if closer != nil {
			t.Error("newLogger() opened a file without a log dir")
		}

		logger.Warn("size mismatch")
		if !strings.Contains(stderr.String(), "WARN\top-2\tsize mismatch") {
			t.Errorf("stderr = %q, want warning", stderr.String())
		}
	})

	t.Run("discards without sinks", func(t *testing.T) {
		var stderr bytes.Buffer
		logger, closer, err := newLogger(config.Default(), "op-3", false, &stderr)
		if err != nil {
			t.Fatalf("newLogger() error = %v", err)
		}
		if closer != nil {
			t.Error("newLogger() opened a file without a log dir")
		}
		if _, ok := logger.(*recorder.NopLogger); !ok {
			t.Errorf("newLogger() = %T, want *recorder.NopLogger", logger)
		}

		logger.Error("ignored")
		if stderr.Len() != 0 {
			t.Errorf("stderr = %q, want empty", stderr.String())
		}
	})
}
