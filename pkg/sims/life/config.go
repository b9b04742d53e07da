package life

import "strconv"

// Config controls the rule and the initial seeding applied by Reset.
type Config struct {
	Rule string
	Seed int64

	// SeedX, SeedY, SeedW, SeedH describe the region randomized by Reset.
	// A zero width or height disables random seeding.
	SeedX, SeedY int
	SeedW, SeedH int

	// Noise switches Reset from uniform random seeding to Perlin noise.
	Noise          bool
	NoiseThreshold float64

	// Pattern is stamped centered on the origin after seeding.
	Pattern string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Rule:           DefaultRule,
		Seed:           42,
		SeedX:          -32,
		SeedY:          -24,
		SeedW:          64,
		SeedH:          48,
		NoiseThreshold: 0.1,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Merge(cfg)
}

// Merge returns c with the keys present in cfg applied on top. Invalid
// values are ignored.
func (c Config) Merge(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rule"]; ok && v != "" {
		c.Rule = v
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["seed_x"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.SeedX = parsed
		}
	}
	if v, ok := cfg["seed_y"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.SeedY = parsed
		}
	}
	if v, ok := cfg["seed_w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.SeedW = parsed
		}
	}
	if v, ok := cfg["seed_h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.SeedH = parsed
		}
	}
	if v, ok := cfg["noise"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Noise = parsed
		}
	}
	if v, ok := cfg["noise_threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= -1 && parsed <= 1 {
			c.NoiseThreshold = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		c.Pattern = v
	}
	return c
}
