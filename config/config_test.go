package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	cfg, err := Load("missing")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if got := cfg.GetHalfPaddle(); got != 0.1 {
		t.Errorf("Expected half paddle 0.1, got %v", got)
	}
	if got := cfg.GetInitialPosition(); got != 0.0 {
		t.Errorf("Expected initial position 0.0, got %v", got)
	}
	if got := cfg.GetInitialVelocity(); got != 0.01 {
		t.Errorf("Expected initial velocity 0.01, got %v", got)
	}
	if got := cfg.GetJustTimingBoost(); got != 1.1 {
		t.Errorf("Expected just timing boost 1.1, got %v", got)
	}
	if cfg.GetTimingBonus() {
		t.Error("Expected timing bonus to be disabled by default")
	}
	if got := cfg.GetTickDuration(); got != 16666667*time.Nanosecond {
		t.Errorf("Expected tick duration 16.666667ms, got %v", got)
	}
	if got := cfg.GetColumns(); got != 64 {
		t.Errorf("Expected 64 columns, got %d", got)
	}
	if got := cfg.GetFrontend(); got != FrontendTerminal {
		t.Errorf("Expected frontend %q, got %q", FrontendTerminal, got)
	}
	if cfg.GetAudioEnabled() {
		t.Error("Expected audio to be disabled by default")
	}
	if got := cfg.GetTraceDir(); got != "" {
		t.Errorf("Expected empty trace dir, got %q", got)
	}
}

func TestLoad_LocalConfigFile(t *testing.T) {
	cfg, err := Load(envLocal)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if got := cfg.GetWindowTitle(); got != "swingpong" {
		t.Errorf("Expected window title swingpong, got %q", got)
	}
	if got := cfg.GetColumns(); got != 64 {
		t.Errorf("Expected 64 columns, got %d", got)
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("HALF_PADDLE", "0.2")
	t.Setenv("TRACK_COLUMNS", "32")
	t.Setenv("TIMING_BONUS", "true")
	t.Setenv("TICK_DURATION", "10ms")
	t.Setenv("FRONTEND", FrontendScreen)

	cfg, err := Load(envLocal)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if got := cfg.GetHalfPaddle(); got != 0.2 {
		t.Errorf("Expected half paddle 0.2, got %v", got)
	}
	if got := cfg.GetColumns(); got != 32 {
		t.Errorf("Expected 32 columns, got %d", got)
	}
	if !cfg.GetTimingBonus() {
		t.Error("Expected timing bonus to be enabled from env")
	}
	if got := cfg.GetTickDuration(); got != 10*time.Millisecond {
		t.Errorf("Expected tick duration 10ms, got %v", got)
	}
	if got := cfg.GetFrontend(); got != FrontendScreen {
		t.Errorf("Expected frontend %q, got %q", FrontendScreen, got)
	}
}

func TestWriteYAML(t *testing.T) {
	cfg, err := Load("missing")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read written config: %v", err)
	}
	for _, want := range []string{"half_paddle: 0.1", "columns: 64", "frontend: terminal"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("Expected written config to contain %q, got:\n%s", want, data)
		}
	}
}
