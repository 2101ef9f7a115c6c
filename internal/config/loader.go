package config

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

// xdgConfigName is the config file looked up in the XDG config directories.
const xdgConfigName = "zhdict/config.yaml"

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The YAML file is CONFIG_PATH when set (it must exist), otherwise
// ./config.yaml, otherwise $XDG_CONFIG_HOME/zhdict/config.yaml (and the
// XDG_CONFIG_DIRS). Without any file, configuration comes from ENV + defaults.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
	} else {
		path = discover()
	}

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		// No file, load from ENV + defaults only.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// discover returns the first existing implicit config file, or "".
func discover() string {
	if _, err := os.Stat("./config.yaml"); err == nil {
		return "./config.yaml"
	}
	if p, err := xdg.SearchConfigFile(xdgConfigName); err == nil {
		return p
	}
	return ""
}
