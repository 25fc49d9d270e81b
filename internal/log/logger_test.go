package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

// TestLevel tests verbosity to level mapping.
func TestLevel(t *testing.T) {
	t.Parallel()

	if got := Level(false); got != slog.LevelWarn {
		t.Errorf("expected Warn, got %v", got)
	}
	if got := Level(true); got != slog.LevelDebug {
		t.Errorf("expected Debug, got %v", got)
	}
}

// TestNewLogger tests the text logger levels.
func TestNewLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		verbose   bool
		logFunc   func(*slog.Logger)
		wantEmpty bool
	}{
		{
			name:      "debug hidden when not verbose",
			logFunc:   func(l *slog.Logger) { l.Debug("restarting puzzle") },
			wantEmpty: true,
		},
		{
			name:      "info hidden when not verbose",
			logFunc:   func(l *slog.Logger) { l.Info("restarting puzzle") },
			wantEmpty: true,
		},
		{
			name:    "warn shown when not verbose",
			logFunc: func(l *slog.Logger) { l.Warn("restarting puzzle") },
		},
		{
			name:    "debug shown when verbose",
			verbose: true,
			logFunc: func(l *slog.Logger) { l.Debug("restarting puzzle") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			tt.logFunc(NewLogger(&buf, tt.verbose))

			if tt.wantEmpty && buf.Len() != 0 {
				t.Errorf("expected no output, got %q", buf.String())
			}
			if !tt.wantEmpty && !strings.Contains(buf.String(), "msg=\"restarting puzzle\"") {
				t.Errorf("expected message in output, got %q", buf.String())
			}
		})
	}
}

// TestNewJSONLogger tests the JSON logger output.
func TestNewJSONLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewJSONLogger(&buf, false).Warn("puzzle generation failed", "job", "animales")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if record["msg"] != "puzzle generation failed" {
		t.Errorf("unexpected msg: %v", record["msg"])
	}
	if record["job"] != "animales" {
		t.Errorf("unexpected job: %v", record["job"])
	}
}
