package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "FOCUSHOURS"

// Options controls where Load looks for settings.
type Options struct {
	// File is an explicit config file. When empty, focushours.yaml is looked
	// up in the working directory and in $HOME/.config/focushours.
	File string
	// Flags, when set, override every other source. Keys are bound by the
	// names in FlagKeys.
	Flags *pflag.FlagSet
}

// FlagKeys maps command-line flag names to configuration keys.
var FlagKeys = map[string]string{
	"addr":         "server.addr",
	"log-level":    "server.log_level",
	"log-format":   "server.log_format",
	"driver":       "storage.driver",
	"db":           "storage.path",
	"database-url": "storage.url",
	"strict":       "engine.strict_wish_refs",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", "127.0.0.1:8787")
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.log_format", "json")
	v.SetDefault("storage.driver", DriverBolt)
	v.SetDefault("storage.path", "")
	v.SetDefault("storage.url", "")
	v.SetDefault("storage.prefix", "vfh_")
	v.SetDefault("engine.strict_wish_refs", false)
	v.SetDefault("engine.max_wishes", 12)
}

// Load reads, merges and validates the configuration.
func Load(opts Options) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if opts.File != "" {
		v.SetConfigFile(opts.File)
	} else {
		v.SetConfigName("focushours")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "focushours"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.File != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for name, key := range FlagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.resolvePath(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// DefaultPath returns the database file used when storage.path is empty.
func DefaultPath(driver string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	switch driver {
	case DriverSQLite:
		return filepath.Join(home, ".focushours.sqlite"), nil
	default:
		return filepath.Join(home, ".focushours.db"), nil
	}
}

func (c *Config) resolvePath() error {
	if c.Storage.Driver != DriverBolt && c.Storage.Driver != DriverSQLite {
		return nil
	}
	if c.Storage.Path == "" {
		p, err := DefaultPath(c.Storage.Driver)
		if err != nil {
			return err
		}
		c.Storage.Path = p
		return nil
	}
	if strings.HasPrefix(c.Storage.Path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("get home dir: %w", err)
		}
		c.Storage.Path = filepath.Join(home, c.Storage.Path[2:])
	}
	return nil
}
