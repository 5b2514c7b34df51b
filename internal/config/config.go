// Package config loads service configuration: struct defaults, overridden
// by an optional YAML file, overridden by FURNMATCH_-prefixed environment
// variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces this service's environment variables. Double
// underscore separates nesting levels so single underscores survive in key
// names, e.g. FURNMATCH_STORAGE__DATABASE_PATH=/data/furnmatch.db.
const envPrefix = "FURNMATCH_"

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "FURNMATCH_CONFIG"

// defaultConfigPaths are searched in order; the first existing file wins.
var defaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
}

type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Storage  StorageConfig  `koanf:"storage"`
	Matching MatchingConfig `koanf:"matching"`
	Log      LogConfig      `koanf:"log"`
}

type ServerConfig struct {
	Address string `koanf:"address"`
}

type StorageConfig struct {
	DatabasePath string `koanf:"database_path"`
	CacheDir     string `koanf:"cache_dir"`
	CatalogPath  string `koanf:"catalog_path"`
}

type MatchingConfig struct {
	WeightsPath string `koanf:"weights_path"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Pretty bool   `koanf:"pretty"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Address: ":8080",
		},
		Storage: StorageConfig{
			DatabasePath: "data/furnmatch.db",
			CacheDir:     "data/cache",
			CatalogPath:  "data/catalog.json",
		},
		Matching: MatchingConfig{
			WeightsPath: "configs/weights.json",
		},
		Log: LogConfig{
			Level:  "info",
			Pretty: false,
		},
	}
}

// Load assembles the effective configuration.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func findConfigFile() string {
	if path := os.Getenv(ConfigPathEnvVar); path != "" {
		return path
	}
	for _, path := range defaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
