package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds demo application configuration.
type Config struct {
	UI   UIConfig
	Demo DemoConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	AltScreen bool `mapstructure:"alt_screen"`
	Width     int
}

// DemoConfig holds showcase settings.
type DemoConfig struct {
	Story string
}

// Load reads configuration from file and env. Env var overrides use prefix CHOICES_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.width", 0)
	v.SetDefault("demo.story", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("CHOICES_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "choices"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CHOICES")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
