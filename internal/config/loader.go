package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/solmsted/rippled/internal/core/amendment"
)

// LoadConfig loads configuration from, in priority order: built-in
// defaults, a config file (nftledgerd.toml), then NFTLEDGERD_-prefixed
// environment variables.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file does not exist: %s", configPath)
		}
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	v.SetEnvPrefix("NFTLEDGERD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.configPath = configPath

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Reserve.Reserve < 0 || cfg.Reserve.Increment < 0 {
		return fmt.Errorf("reserve.reserve and reserve.increment must be non-negative")
	}
	if cfg.CacheSize <= 0 {
		return fmt.Errorf("cache_size must be positive")
	}
	for _, name := range cfg.Amendments {
		// unknown amendment names are rejected rather than silently
		// ignored, since a typo here would otherwise change consensus
		// rules without anyone noticing.
		if _, ok := amendment.Resolve(name); !ok {
			return fmt.Errorf("unknown amendment %q", name)
		}
	}
	return nil
}
