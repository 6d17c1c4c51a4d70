package app

import (
	"flag"
	"io"
	"testing"

	"cannonland/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (*Config, *flag.FlagSet) {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("cannonland", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse(args))
	return cfg, fs
}

func TestConfig_Defaults(t *testing.T) {
	cfg, _ := parse(t)
	assert.Equal(t, "battlefield", cfg.Sim)
	assert.Equal(t, 2, cfg.Scale)
	assert.Equal(t, 60, cfg.TPS)
	assert.Zero(t, cfg.Seed)
	assert.Empty(t, cfg.ConfigPath)
}

func TestConfig_MergeKeepsExplicitFlags(t *testing.T) {
	cfg, fs := parse(t, "-scale", "4", "-config", "cannonland.yaml")
	settings := config.Settings{
		Sim:      "battlefield",
		Scale:    1,
		TPS:      25,
		Seed:     99,
		LogLevel: "debug",
	}

	cfg.Merge(settings, fs)

	assert.Equal(t, 4, cfg.Scale, "explicit flag wins")
	assert.Equal(t, 25, cfg.TPS)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "cannonland.yaml", cfg.ConfigPath)
}

func TestConfig_SimConfig(t *testing.T) {
	cfg, _ := parse(t, "-seed", "12")
	settings := config.Settings{Battlefield: map[string]string{"layout": "hills"}}

	got := cfg.SimConfig(settings)
	assert.Equal(t, map[string]string{"layout": "hills", "seed": "12"}, got)
	assert.NotContains(t, settings.Battlefield, "seed", "settings map is not modified")

	cfg.Seed = 0
	assert.Equal(t, map[string]string{}, cfg.SimConfig(config.Settings{}))
}
