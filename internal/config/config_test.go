package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfigYAMLRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Bank.Path = "banks/capitals.yaml"
	cfg.Bank.Shuffle = true
	cfg.Timer.LimitSeconds = 30

	if err := WriteConfig(tmpDir, cfg); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}

	loaded, err := ReadConfig(tmpDir)
	if err != nil {
		t.Fatalf("ReadConfig failed: %v", err)
	}

	if loaded.Bank.Path != "banks/capitals.yaml" {
		t.Errorf("Bank.Path: got %q, want %q", loaded.Bank.Path, "banks/capitals.yaml")
	}
	if !loaded.Bank.Shuffle {
		t.Error("Bank.Shuffle: got false, want true")
	}
	if loaded.Timer.LimitSeconds != 30 {
		t.Errorf("Timer.LimitSeconds: got %d, want 30", loaded.Timer.LimitSeconds)
	}
	if loaded.Timer.AdvanceDelayMs != 1000 {
		t.Errorf("Timer.AdvanceDelayMs: got %d, want 1000", loaded.Timer.AdvanceDelayMs)
	}
}

func TestReadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := ReadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("ReadConfig failed without a config file: %v", err)
	}
	if cfg.Timer.LimitSeconds != 15 {
		t.Errorf("Timer.LimitSeconds: got %d, want 15", cfg.Timer.LimitSeconds)
	}
	if !cfg.UI.Bell || !cfg.Log.Enabled {
		t.Errorf("bell and log should default on, got %+v %+v", cfg.UI, cfg.Log)
	}
}

func TestPartialConfigKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	partial := `version: 1
timer:
  limit_seconds: 20
`
	if err := os.MkdirAll(Dir(tmpDir), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(Dir(tmpDir), "config.yaml"), []byte(partial), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := ReadConfig(tmpDir)
	if err != nil {
		t.Fatalf("ReadConfig failed: %v", err)
	}
	if cfg.Timer.LimitSeconds != 20 {
		t.Errorf("Timer.LimitSeconds: got %d, want 20", cfg.Timer.LimitSeconds)
	}
	if cfg.Timer.AdvanceDelayMs != 1000 {
		t.Errorf("Timer.AdvanceDelayMs: got %d, want default 1000", cfg.Timer.AdvanceDelayMs)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	tmpDir := t.TempDir()
	if err := WriteConfig(tmpDir, DefaultConfig()); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}
	t.Setenv("QUIZ_TIMER_LIMIT_SECONDS", "45")
	t.Setenv("QUIZ_BANK_PATH", "/tmp/other.json")

	cfg, err := ReadConfig(tmpDir)
	if err != nil {
		t.Fatalf("ReadConfig failed: %v", err)
	}
	if cfg.Timer.LimitSeconds != 45 {
		t.Errorf("Timer.LimitSeconds: got %d, want 45 from env", cfg.Timer.LimitSeconds)
	}
	if cfg.Bank.Path != "/tmp/other.json" {
		t.Errorf("Bank.Path: got %q, want env value", cfg.Bank.Path)
	}
}

func TestMalformedConfigFails(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.MkdirAll(Dir(tmpDir), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(Dir(tmpDir), "config.yaml"), []byte("timer: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := ReadConfig(tmpDir); err == nil {
		t.Error("ReadConfig should fail on malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}

	cfg := DefaultConfig()
	cfg.Timer.LimitSeconds = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Validate = %v, want ErrInvalidConfig for zero limit", err)
	}

	cfg = DefaultConfig()
	cfg.Bank.Limit = -2
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Validate = %v, want ErrInvalidConfig for negative limit", err)
	}
}

func TestAdvanceDelay(t *testing.T) {
	if got := DefaultConfig().Timer.AdvanceDelay(); got != time.Second {
		t.Errorf("AdvanceDelay = %v, want 1s", got)
	}
}
