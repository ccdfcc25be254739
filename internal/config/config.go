// Package config provides YAML-based tuning for the game: spawn
// distribution and animation/settle timing. Board dimension is a
// compile-time constant and deliberately not configurable.
package config

import "time"

// Config contains all tunable parameters.
type Config struct {
	Spawn     SpawnConfig     `yaml:"spawn"`
	Animation AnimationConfig `yaml:"animation"`
}

// SpawnConfig defines the spawn value distribution.
type SpawnConfig struct {
	// FourProb is the probability of spawning a 4 instead of a 2.
	FourProb float64 `yaml:"four_prob"`
}

// AnimationConfig defines presentation timing in milliseconds.
// SettleMs gates the deferred phase of a move (merge values, score,
// spawn, game-over check) and must be at least SlideMs, otherwise the
// board would change value mid-slide.
type AnimationConfig struct {
	SlideMs  int `yaml:"slide_ms"`  // slide transition duration
	PopMs    int `yaml:"pop_ms"`    // spawn pop duration
	SettleMs int `yaml:"settle_ms"` // wait before the move settles
}

// Slide returns the slide duration.
func (a AnimationConfig) Slide() time.Duration {
	return time.Duration(a.SlideMs) * time.Millisecond
}

// Pop returns the pop duration.
func (a AnimationConfig) Pop() time.Duration {
	return time.Duration(a.PopMs) * time.Millisecond
}

// Settle returns the settle wait.
func (a AnimationConfig) Settle() time.Duration {
	return time.Duration(a.SettleMs) * time.Millisecond
}

// Normalize clamps values into sane ranges: probability into [0, 1],
// non-positive durations to defaults, and the settle wait up to the
// slide duration so merges never resolve mid-animation.
func (c *Config) Normalize() {
	def := Default()

	if c.Spawn.FourProb < 0 || c.Spawn.FourProb > 1 {
		c.Spawn.FourProb = def.Spawn.FourProb
	}
	if c.Animation.SlideMs <= 0 {
		c.Animation.SlideMs = def.Animation.SlideMs
	}
	if c.Animation.PopMs <= 0 {
		c.Animation.PopMs = def.Animation.PopMs
	}
	if c.Animation.SettleMs <= 0 {
		c.Animation.SettleMs = def.Animation.SettleMs
	}
	if c.Animation.SettleMs < c.Animation.SlideMs {
		c.Animation.SettleMs = c.Animation.SlideMs
	}
}

// Default returns the hardcoded default configuration, used as the
// last-resort fallback when the embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Spawn: SpawnConfig{
			FourProb: 0.10,
		},
		Animation: AnimationConfig{
			SlideMs:  120,
			PopMs:    90,
			SettleMs: 140,
		},
	}
}
