package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/zapponejosh/zmanim/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"loud", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetupWriter_JSON(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	SetupWriter(&config.Config{LogLevel: "info", LogFormat: "json"}, &buf)

	ctx := WithCommand(context.Background(), "molad")
	Error(ctx, "molad failed", errors.New("boom"), "year", 5785)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output %q is not JSON: %v", buf.String(), err)
	}
	if entry["msg"] != "molad failed" {
		t.Errorf("msg = %v, want %q", entry["msg"], "molad failed")
	}
	if entry["command"] != "molad" {
		t.Errorf("command = %v, want %q", entry["command"], "molad")
	}
	if entry["error"] != "boom" {
		t.Errorf("error = %v, want %q", entry["error"], "boom")
	}
	if entry["year"] != float64(5785) {
		t.Errorf("year = %v, want 5785", entry["year"])
	}
}

func TestSetupWriter_LevelFilters(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	SetupWriter(&config.Config{LogLevel: "warn", LogFormat: "text"}, &buf)

	ctx := context.Background()
	Debug(ctx, "hidden debug")
	Info(ctx, "hidden info")
	Warn(ctx, "shown warning")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output %q contains messages below warn", out)
	}
	if !strings.Contains(out, "shown warning") {
		t.Errorf("output %q is missing the warning", out)
	}
}

func TestSetupWriter_AddSource(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	tests := []struct {
		name string
		cfg  config.Config
		want bool
	}{
		{"development", config.Config{Env: config.EnvDevelopment, LogLevel: "info"}, true},
		{"staging at info", config.Config{Env: config.EnvStaging, LogLevel: "info"}, false},
		{"staging at debug", config.Config{Env: config.EnvStaging, LogLevel: "debug"}, true},
		{"production at debug", config.Config{Env: config.EnvProduction, LogLevel: "debug"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.cfg.LogFormat = "text"
			SetupWriter(&tt.cfg, &buf)
			Warn(context.Background(), "check source")

			if got := strings.Contains(buf.String(), "source="); got != tt.want {
				t.Errorf("source attribute present = %v, want %v in %q", got, tt.want, buf.String())
			}
		})
	}
}

func TestCommand(t *testing.T) {
	if got := Command(context.Background()); got != "" {
		t.Errorf("Command(empty) = %q, want empty", got)
	}
	ctx := WithCommand(context.Background(), "year")
	if got := Command(ctx); got != "year" {
		t.Errorf("Command() = %q, want %q", got, "year")
	}
}
