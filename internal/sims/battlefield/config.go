package battlefield

import (
	"strconv"
	"strings"
)

// Layout names accepted by Params.Layout.
const (
	LayoutClassic = "classic"
	LayoutHills   = "hills"
	LayoutEmpty   = "empty"
)

// Params holds the tunables of a match.
type Params struct {
	Layout      string
	Bunkers     int
	BunkersFall bool

	// BombardEvery schedules a detonation every N ticks; 0 disables it.
	BombardEvery  int
	BombardRadius int
	BombardDamage int

	// ReportEvery controls how often tick timings are logged.
	ReportEvery int
}

// Config controls the battlefield dimensions and seeding.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard 800x500 match with eight teams.
func DefaultConfig() Config {
	return Config{
		Width:  800,
		Height: 500,
		Seed:   1337,
		Params: Params{
			Layout:        LayoutClassic,
			Bunkers:       8,
			BunkersFall:   true,
			BombardEvery:  100,
			BombardRadius: 20,
			BombardDamage: 25,
			ReportEvery:   60,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["layout"]; ok {
		switch l := strings.ToLower(strings.TrimSpace(v)); l {
		case LayoutClassic, LayoutHills, LayoutEmpty:
			c.Params.Layout = l
		}
	}
	if v, ok := cfg["bunkers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.Bunkers = parsed
		}
	}
	if v, ok := cfg["bunkers_fall"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.BunkersFall = parsed
		}
	}
	if v, ok := cfg["bombard_every"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.BombardEvery = parsed
		}
	}
	if v, ok := cfg["bombard_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.BombardRadius = parsed
		}
	}
	if v, ok := cfg["bombard_damage"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.BombardDamage = parsed
		}
	}
	if v, ok := cfg["report_every"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.ReportEvery = parsed
		}
	}
	return c
}
