package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigMissingFileFallsBack(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("LoadConfig on a missing file returned no error")
	}
	if config != DefaultConfig() {
		t.Fatalf("config = %+v, want defaults %+v", config, DefaultConfig())
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"width": 20, "height": 10, "tick_interval": 250000000}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Width != 20 || config.Height != 10 {
		t.Fatalf("dimensions = %dx%d, want 20x10", config.Width, config.Height)
	}
	if config.TickInterval != 250*time.Millisecond {
		t.Fatalf("tick interval = %v, want 250ms", config.TickInterval)
	}
	// Unset fields keep their defaults.
	if config.Pattern != DefaultConfig().Pattern {
		t.Fatalf("pattern = %q, want default %q", config.Pattern, DefaultConfig().Pattern)
	}
}

func TestLoadConfigRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("LoadConfig on malformed JSON returned no error")
	}
}
