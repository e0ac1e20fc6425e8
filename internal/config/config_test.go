package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/sinmod/internal/sinmod"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Theme != "classic" {
		t.Errorf("expected theme classic, got %s", cfg.Theme)
	}
	if cfg.FPS <= 0 {
		t.Error("fps should be positive")
	}
	if cfg.FrameStep != 0.05 {
		t.Errorf("expected frame step 0.05, got %f", cfg.FrameStep)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sinmod.yaml")
	if err := os.WriteFile(path, []byte("theme: ocean\nfps: 30\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Theme != "ocean" || cfg.FPS != 30 {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Columns != DefaultColumns {
		t.Errorf("expected default columns kept, got %d", cfg.Columns)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("fps: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	cfg := DefaultConfig()
	cfg.Theme = "sunset"
	cfg.Preset = "square"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *got != *cfg {
		t.Errorf("expected %+v, got %+v", cfg, got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"fps", func(c *Config) { c.FPS = 1000 }},
		{"step", func(c *Config) { c.FrameStep = 0 }},
		{"canvas", func(c *Config) { c.Columns = 2 }},
		{"history", func(c *Config) { c.History = 1 }},
		{"preset", func(c *Config) { c.Preset = "nope" }},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: expected ErrInvalidConfig, got %v", tt.name, err)
		}
	}
}

func TestGetPreset(t *testing.T) {
	p, err := GetPreset("fine-tags")
	if err != nil {
		t.Fatalf("expected preset, got %v", err)
	}
	if p.AngularFrequency != 3.0 || p.Period != 5.0 || p.Harmonics != 2 {
		t.Errorf("unexpected preset %v", p)
	}
	if p.Amplitude != sinmod.DefaultAmplitude {
		t.Errorf("expected default amplitude kept, got %f", p.Amplitude)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if _, err := GetPreset("nonexistent"); err == nil {
		t.Error("expected error for nonexistent preset")
	}
}

func TestAllPresetsValid(t *testing.T) {
	for _, name := range ListPresets() {
		if _, err := GetPreset(name); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestListPresetsSorted(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("presets not sorted: %v", names)
		}
	}
}

func TestDecodeParams(t *testing.T) {
	p, err := DecodeParams(sinmod.Default(), map[string]any{
		"A":                "1.5",
		"angularFrequency": 2.0,
		"harmonics":        "7",
	})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if p.Amplitude != 1.5 || p.AngularFrequency != 2.0 || p.Harmonics != 7 {
		t.Errorf("unexpected params %v", p)
	}

	if _, err := DecodeParams(sinmod.Default(), map[string]any{"gain": 1}); !errors.Is(err, sinmod.ErrUnknownParam) {
		t.Errorf("expected ErrUnknownParam, got %v", err)
	}
	if _, err := DecodeParams(sinmod.Default(), map[string]any{"period": "long"}); !errors.Is(err, sinmod.ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue, got %v", err)
	}
	if _, err := DecodeParams(sinmod.Default(), map[string]any{"amplitude": 5}); !errors.Is(err, sinmod.ErrParameterBounds) {
		t.Errorf("expected ErrParameterBounds, got %v", err)
	}
}

func TestDecodeParamsRejectsAliasedDuplicates(t *testing.T) {
	tests := []map[string]any{
		{"phi": 1, "phase": 2},
		{"T": 1, "period": 2},
		{"A": 1, "amplitude": 1},
	}
	base := sinmod.Default()
	for _, values := range tests {
		p, err := DecodeParams(base, values)
		if !errors.Is(err, sinmod.ErrInvalidValue) {
			t.Errorf("%v: expected ErrInvalidValue, got %v", values, err)
		}
		if p != base {
			t.Errorf("%v: expected base params back, got %v", values, p)
		}
	}
}
