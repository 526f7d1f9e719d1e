package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is environment-only: no config file, no flags.
type Config struct {
	Host              string `mapstructure:"HOST"`
	Port              int    `mapstructure:"PORT"`
	RequestTimeoutSec int    `mapstructure:"REQUEST_TIMEOUT_SEC"`
	Debug             bool   `mapstructure:"DEBUG"`
}

func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", 3000)
	v.SetDefault("REQUEST_TIMEOUT_SEC", 10)
	v.SetDefault("DEBUG", false)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.RequestTimeoutSec <= 0 {
		return Config{}, fmt.Errorf("invalid request timeout: %d", cfg.RequestTimeoutSec)
	}
	return cfg, nil
}
