package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// ServerConfig holds the settings of the HTTP service.
type ServerConfig struct {
	Port            int            `toml:"port"`
	MaxRequestBytes int64          `toml:"max_request_bytes"`
	MaxKernels      int            `toml:"max_kernels"`       // Fitted kernels kept before the least recently used is evicted
	VectorCacheSize int            `toml:"vector_cache_size"` // Vectors cached per fitted kernel
	LogLevel        string         `toml:"log_level"`
	LogFormat       string         `toml:"log_format"` // "text" or "json"
	Defaults        KernelSettings `toml:"defaults"`   // Applied to fit requests that omit settings
}

// DefaultServerConfig returns the configuration used when no file is given.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Port:            8080,
		MaxRequestBytes: 10 << 20,
		MaxKernels:      64,
		VectorCacheSize: 1024,
		LogLevel:        "info",
		LogFormat:       "text",
		Defaults:        DefaultKernelSettings(),
	}
}

// Load reads a TOML configuration file over the defaults. An empty path returns
// the defaults. A path that does not exist is an error.
func Load(path string) (*ServerConfig, error) {
	cfg := DefaultServerConfig()
	if path == "" {
		return &cfg, nil
	}

	file, err := os.Open(path) // #nosec G304 -- path comes from the operator
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file %s does not exist", path)
		}
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.Defaults.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first problem found in the configuration.
func (cfg *ServerConfig) Validate() error {
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.MaxRequestBytes <= 0 {
		return errors.New("max_request_bytes must be positive")
	}
	if cfg.MaxKernels <= 0 {
		return errors.New("max_kernels must be positive")
	}
	if cfg.VectorCacheSize <= 0 {
		return errors.New("vector_cache_size must be positive")
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format %q (must be 'text' or 'json')", cfg.LogFormat)
	}
	if conflicts := cfg.Defaults.Validate(); len(conflicts) > 0 {
		return fmt.Errorf("invalid defaults: %s", conflicts[0])
	}
	return nil
}

// Addr returns the listen address for the configured port.
func (cfg *ServerConfig) Addr() string {
	return ":" + strconv.Itoa(cfg.Port)
}
