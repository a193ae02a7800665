package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "fixtura.yaml"

// Config is the runtime configuration shared by the CLI subcommands.
type Config struct {
	LogLevel  string       `yaml:"log_level" json:"log_level"`
	LogFormat string       `yaml:"log_format" json:"log_format"`
	Seed      *uint64      `yaml:"seed" json:"seed"`
	Workers   int          `yaml:"workers" json:"workers"`
	Count     int          `yaml:"count" json:"count"`
	Server    ServerConfig `yaml:"server" json:"server"`
	Redis     RedisConfig  `yaml:"redis" json:"redis"`
}

// ServerConfig configures the HTTP API.
// Zero limits disable the corresponding check.
type ServerConfig struct {
	Port        string `yaml:"port" json:"port"`
	MaxCount    int    `yaml:"max_count" json:"max_count"`
	MaxLength   int    `yaml:"max_length" json:"max_length"`
	MaxElements int64  `yaml:"max_elements" json:"max_elements"`
}

// RedisConfig configures the redis schema store. An empty Addr disables it.
type RedisConfig struct {
	Addr     string   `yaml:"addr" json:"addr"`
	Password string   `yaml:"password" json:"password"`
	DB       int      `yaml:"db" json:"db"`
	Prefix   string   `yaml:"prefix" json:"prefix"`
	TTL      Duration `yaml:"ttl" json:"ttl"`
}

// Duration is a time.Duration written as "30s", "1h" in config files.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = 0
		return nil
	}
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
		Workers:   1,
		Count:     5,
		Server: ServerConfig{
			Port:        "8080",
			MaxCount:    10000,
			MaxLength:   10000,
			MaxElements: 5_000_000,
		},
		Redis: RedisConfig{
			Prefix: "fixtura:",
		},
	}
}

// Load reads a configuration file (YAML or JSON) over the defaults.
// A missing file at DefaultPath is not an error; a missing explicit path is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	return cfg, nil
}
