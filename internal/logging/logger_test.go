package logging

import (
	"log/slog"
	"testing"
)

func TestGetLoggerReturnsSameInstance(t *testing.T) {
	first := GetLogger("blink")
	second := GetLogger("blink")

	if first != second {
		t.Error("GetLogger() should return the same instance for the same module")
	}
}

func TestGetLoggerDifferentModules(t *testing.T) {
	if GetLogger("led") == GetLogger("netinfo") {
		t.Error("GetLogger() should return distinct loggers for distinct modules")
	}
}

func TestInitializeModuleLevels(t *testing.T) {
	Initialize(Config{
		Level:  "warn",
		Format: "text",
		Modules: map[string]string{
			"blink": "debug",
		},
	})

	if got := levelFor("blink"); got != slog.LevelDebug {
		t.Errorf("levelFor(blink) = %v, want debug", got)
	}
	if got := levelFor("led"); got != slog.LevelWarn {
		t.Errorf("levelFor(led) = %v, want warn", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input  string
		want   slog.Level
		wantOK bool
	}{
		{"debug", slog.LevelDebug, true},
		{"info", slog.LevelInfo, true},
		{"warn", slog.LevelWarn, true},
		{"warning", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"ERROR", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		got, ok := parseLevel(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("parseLevel(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}
