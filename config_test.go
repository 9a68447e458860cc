package starfield

import (
	"errors"
	"testing"
	"time"
)

// testConfig is DefaultConfig with a fixed seed.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = 42
	return cfg
}

func newTestField(t *testing.T, cfg Config, w, h float64) *Field {
	t.Helper()
	f, err := NewField(cfg, w, h)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	return f
}

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	if len(cfg.Layers) != 3 {
		t.Fatalf("layers = %d, want 3", len(cfg.Layers))
	}
	want := []Layer{{0.015, 0.2, 320}, {0.03, 0.5, 50}, {0.05, 0.75, 30}}
	for i, l := range cfg.Layers {
		if l != want[i] {
			t.Errorf("layer %d = %+v, want %+v", i, l, want[i])
		}
	}
	if cfg.Heading != 145 {
		t.Errorf("Heading = %v, want 145", cfg.Heading)
	}
	if cfg.SpawnInterval != 2*time.Second || cfg.ShootingStarLifetime != 500*time.Millisecond {
		t.Errorf("timers = %v/%v, want 2s/500ms", cfg.SpawnInterval, cfg.ShootingStarLifetime)
	}
}

func TestConfigValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no layers", func(c *Config) { c.Layers = nil }},
		{"negative count", func(c *Config) { c.Layers = []Layer{{Speed: 1, Scale: 1, Count: -1}} }},
		{"negative layer speed", func(c *Config) { c.Layers = []Layer{{Speed: -1, Scale: 1, Count: 1}} }},
		{"inverted speed range", func(c *Config) { c.ShootingStarSpeed = Range{Min: 20, Max: 15} }},
		{"zero opacity delta", func(c *Config) { c.OpacityDelta = 0 }},
		{"opacity delta above one", func(c *Config) { c.OpacityDelta = 1.5 }},
		{"negative trail delta", func(c *Config) { c.TrailLengthDelta = -0.01 }},
		{"negative interval", func(c *Config) { c.SpawnInterval = -time.Second }},
		{"negative radius", func(c *Config) { c.StarBaseRadius = -2 }},
		{"zero TPS", func(c *Config) { c.TPS = 0 }},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(&cfg)
		err := cfg.Validate()
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: Validate() = %v, want ErrInvalidConfig", tt.name, err)
		}
	}
}

func TestNewFieldRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TPS = -1
	if _, err := NewField(cfg, 100, 100); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("NewField err = %v, want ErrInvalidConfig", err)
	}
	if _, err := NewField(DefaultConfig(), -1, 100); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("NewField negative size err = %v, want ErrInvalidConfig", err)
	}
}

func TestConfigTicks(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		d    time.Duration
		want uint64
	}{
		{0, 0},
		{-time.Second, 0},
		{2000 * time.Millisecond, 120},
		{500 * time.Millisecond, 30},
		{time.Millisecond, 1},
	}
	for _, tt := range tests {
		if got := cfg.ticks(tt.d); got != tt.want {
			t.Errorf("ticks(%v) = %d, want %d", tt.d, got, tt.want)
		}
	}
}

func TestNewFieldCopiesLayers(t *testing.T) {
	cfg := testConfig()
	f := newTestField(t, cfg, 100, 100)
	cfg.Layers[0].Count = 1
	if got := f.Config().Layers[0].Count; got != 320 {
		t.Errorf("field layer count = %d after caller mutation, want 320", got)
	}
}
