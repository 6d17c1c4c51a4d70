// Package config loads cannonland settings from an optional config file and
// CANNONLAND_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. CANNONLAND_TPS.
const EnvPrefix = "CANNONLAND"

// Settings are the resolved process settings.
type Settings struct {
	Sim      string
	Scale    int
	TPS      int
	Seed     int64
	LogLevel string
	// Battlefield holds sim keys in battlefield.FromMap form.
	Battlefield map[string]string
}

// Defaults returns the settings used when nothing overrides them.
func Defaults() Settings {
	return Settings{
		Sim:         "battlefield",
		Scale:       2,
		TPS:         60,
		LogLevel:    "info",
		Battlefield: map[string]string{},
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	def := Defaults()
	v.SetDefault("sim", def.Sim)
	v.SetDefault("scale", def.Scale)
	v.SetDefault("tps", def.TPS)
	v.SetDefault("seed", def.Seed)
	v.SetDefault("logLevel", def.LogLevel)
	v.SetDefault("battlefield", map[string]any{})

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path when it is non-empty. The file type follows the extension
// (json, yaml, toml, ...). Environment variables win over file values.
func Load(path string) (Settings, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	s := Settings{
		Sim:         v.GetString("sim"),
		Scale:       v.GetInt("scale"),
		TPS:         v.GetInt("tps"),
		Seed:        v.GetInt64("seed"),
		LogLevel:    v.GetString("logLevel"),
		Battlefield: map[string]string{},
	}
	for key, value := range v.GetStringMapString("battlefield") {
		s.Battlefield[strings.ToLower(key)] = value
	}
	if s.Scale <= 0 {
		return Settings{}, fmt.Errorf("config: scale must be positive, got %d", s.Scale)
	}
	if s.TPS <= 0 {
		return Settings{}, fmt.Errorf("config: tps must be positive, got %d", s.TPS)
	}
	return s, nil
}
