package config

import (
	"errors"
	"io/fs"
	"os"
	"runtime"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"showdown-server/internal/util"
)

// Config provides configuration for the showdown server
type Config struct {
	loaded bool
	Log    struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	HTTP struct {
		Addr           string   `yaml:"addr"`
		ReadTimeout    int      `yaml:"readTimeout" envconfig:"read_timeout"`
		WriteTimeout   int      `yaml:"writeTimeout" envconfig:"write_timeout"`
		AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	}
	Showdown struct {
		Workers           int `yaml:"workers"`
		ParallelThreshold int `yaml:"parallelThreshold" envconfig:"parallel_threshold"`
		MaxPlayers        int `yaml:"maxPlayers" envconfig:"max_players"`
	}
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
// Timeouts are in seconds.
func DefaultConfig() Config {
	var cfg Config
	cfg.Log.Level = "info"
	cfg.HTTP.Addr = ":5000"
	cfg.HTTP.ReadTimeout = 5
	cfg.HTTP.WriteTimeout = 10
	cfg.HTTP.AllowedOrigins = []string{"*"}
	cfg.Showdown.Workers = runtime.NumCPU()
	cfg.Showdown.ParallelThreshold = 8
	cfg.Showdown.MaxPlayers = 23

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing configuration file leaves the defaults in place.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("SHOWDOWN_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if file != nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("showdown", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
