// Package config resolves the settings of the pnl command.
//
// Settings come from, in increasing priority: defaults, a YAML file, the
// environment (including a .env file) and command line flags. Flags are applied
// by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"time"

	"github.com/etnz/pnlsheet"
	"github.com/etnz/pnlsheet/store"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file read when none is given.
const DefaultFile = "pnl.yaml"

// Store kinds.
const (
	StoreFile   = "file"
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// Config holds the settings.
type Config struct {
	Store       string        `yaml:"store"`        // one of file, redis, memory
	File        string        `yaml:"file"`         // ledger document for the file store
	RedisAddr   string        `yaml:"redis_addr"`   // host:port of the redis store
	RedisKey    string        `yaml:"redis_key"`    // key of the document, for redis and memory stores
	Debounce    time.Duration `yaml:"debounce"`     // idle delay before saving
	MetricsFile string        `yaml:"metrics_file"` // prometheus text file written on exit, if set
}

// Default returns the default settings.
func Default() Config {
	return Config{
		Store:     StoreFile,
		File:      "pnl.json",
		RedisAddr: "localhost:6379",
		RedisKey:  pnlsheet.Key,
		Debounce:  store.DefaultDelay,
	}
}

// LoadFile overrides c with the settings found in the YAML file at path.
//
// A missing file is not an error unless required.
func (c *Config) LoadFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("cannot parse config %q: %w", path, err)
	}
	return nil
}

// Lookup reads an environment variable, like os.LookupEnv.
type Lookup func(key string) (string, bool)

// DotEnv returns a Lookup reading the process environment first, then the
// .env file at path. A missing file is ignored.
func DotEnv(path string) (Lookup, error) {
	vars, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return os.LookupEnv, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", path, err)
	}
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}, nil
}

// LoadEnv overrides c with the PNL_* variables found by env.
func (c *Config) LoadEnv(env Lookup) error {
	vars := map[string]*string{
		"PNL_STORE":        &c.Store,
		"PNL_FILE":         &c.File,
		"PNL_REDIS_ADDR":   &c.RedisAddr,
		"PNL_REDIS_KEY":    &c.RedisKey,
		"PNL_METRICS_FILE": &c.MetricsFile,
	}
	for key, dst := range vars {
		if v, ok := env(key); ok {
			*dst = v
		}
	}
	if v, ok := env("PNL_DEBOUNCE"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid PNL_DEBOUNCE %q: %w", v, err)
		}
		c.Debounce = d
	}
	return nil
}

// Validate checks the settings.
func (c Config) Validate() error {
	stores := []string{StoreFile, StoreRedis, StoreMemory}
	if !slices.Contains(stores, c.Store) {
		return fmt.Errorf("unknown store %q, want one of %v", c.Store, stores)
	}
	if c.Store == StoreFile && c.File == "" {
		return errors.New("the file store needs a file")
	}
	if c.Debounce < 0 {
		return fmt.Errorf("negative debounce %v", c.Debounce)
	}
	return nil
}

// Backend returns the storage backend described by c.
func (c Config) Backend() (store.Backend, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	switch c.Store {
	case StoreRedis:
		client := redis.NewClient(&redis.Options{Addr: c.RedisAddr})
		return store.NewRedisBackend(client, c.RedisKey), nil
	case StoreMemory:
		return store.NewMemoryBackend(c.RedisKey), nil
	default:
		return store.NewFileBackend(c.File), nil
	}
}
