package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	def := Default()
	if cfg.Spawn.FourProb != def.Spawn.FourProb {
		t.Errorf("embedded four_prob = %v, hardcoded %v", cfg.Spawn.FourProb, def.Spawn.FourProb)
	}
	if cfg.Animation != def.Animation {
		t.Errorf("embedded animation = %+v, hardcoded %+v", cfg.Animation, def.Animation)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	content := `
spawn:
  four_prob: 0.25
animation:
  slide_ms: 80
  pop_ms: 50
  settle_ms: 200
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) failed: %v", path, err)
	}

	if cfg.Spawn.FourProb != 0.25 {
		t.Errorf("four_prob = %v, want 0.25", cfg.Spawn.FourProb)
	}
	if cfg.Animation.SlideMs != 80 || cfg.Animation.SettleMs != 200 {
		t.Errorf("animation = %+v", cfg.Animation)
	}
	if cfg.Animation.Slide() != 80*time.Millisecond {
		t.Errorf("Slide() = %v, want 80ms", cfg.Animation.Slide())
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load with missing explicit path should fail")
	}
}

func TestLoadInvalidYAMLFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("spawn: [not a map"), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load with invalid YAML should fail")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		in     Config
		check  func(t *testing.T, c Config)
	}{
		{
			name: "settle clamped up to slide",
			in: Config{
				Spawn:     SpawnConfig{FourProb: 0.1},
				Animation: AnimationConfig{SlideMs: 200, PopMs: 50, SettleMs: 100},
			},
			check: func(t *testing.T, c Config) {
				if c.Animation.SettleMs != 200 {
					t.Errorf("settle_ms = %d, want clamped to 200", c.Animation.SettleMs)
				}
			},
		},
		{
			name: "out-of-range probability resets to default",
			in: Config{
				Spawn:     SpawnConfig{FourProb: 1.5},
				Animation: AnimationConfig{SlideMs: 100, PopMs: 50, SettleMs: 120},
			},
			check: func(t *testing.T, c Config) {
				if c.Spawn.FourProb != Default().Spawn.FourProb {
					t.Errorf("four_prob = %v, want default", c.Spawn.FourProb)
				}
			},
		},
		{
			name: "zero durations get defaults",
			in:   Config{},
			check: func(t *testing.T, c Config) {
				if c.Animation != Default().Animation {
					t.Errorf("animation = %+v, want defaults", c.Animation)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.in
			cfg.Normalize()
			tt.check(t, cfg)
		})
	}
}
