package app

import (
	"flag"
	"maps"
	"strconv"

	"cannonland/internal/config"
)

// Config holds the viewer settings bound to command-line flags.
type Config struct {
	Sim        string
	Scale      int
	TPS        int
	Seed       int64
	HUDWidth   int
	LogLevel   string
	ConfigPath string
}

// NewConfig returns a Config populated with the process defaults.
func NewConfig() *Config {
	def := config.Defaults()
	return &Config{
		Sim:      def.Sim,
		Scale:    def.Scale,
		TPS:      def.TPS,
		Seed:     def.Seed,
		HUDWidth: 280,
		LogLevel: def.LogLevel,
	}
}

// Bind registers the config fields on fs.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "screen pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the first match (0 uses the sim default)")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the side panel in pixels, 0 hides it")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (trace, debug, info, warn, error)")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "optional config file (json, yaml or toml)")
}

// Merge copies file and environment settings into c for every flag that was
// not given explicitly on fs.
func (c *Config) Merge(s config.Settings, fs *flag.FlagSet) {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if !set["sim"] {
		c.Sim = s.Sim
	}
	if !set["scale"] {
		c.Scale = s.Scale
	}
	if !set["tps"] {
		c.TPS = s.TPS
	}
	if !set["seed"] {
		c.Seed = s.Seed
	}
	if !set["log-level"] {
		c.LogLevel = s.LogLevel
	}
}

// SimConfig builds the key/value map handed to the sim factory.
func (c *Config) SimConfig(s config.Settings) map[string]string {
	out := maps.Clone(s.Battlefield)
	if out == nil {
		out = map[string]string{}
	}
	if c.Seed != 0 {
		out["seed"] = strconv.FormatInt(c.Seed, 10)
	}
	return out
}
