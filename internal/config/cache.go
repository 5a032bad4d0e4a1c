package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// CacheFileName is the cache file created in the user's home directory.
const CacheFileName = ".ansible_provisioning_cache.json"

// CachePath returns the cache file location. The path can be overridden for
// tests via the PROVKIT_CACHE environment variable.
func CachePath() (string, error) {
	if override := os.Getenv("PROVKIT_CACHE"); override != "" {
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, CacheFileName), nil
}

// LoadCache reads the cached configuration, falling back to defaults when the
// file is missing or unreadable. Cache errors are silently ignored: a broken
// cache never blocks a run.
func LoadCache() *Config {
	path, err := CachePath()
	if err != nil {
		return Default()
	}
	cfg, err := loadCacheFrom(path)
	if err != nil {
		return Default()
	}
	return cfg
}

func loadCacheFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path is the fixed cache location
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return &cfg, nil
}

// SaveCache overwrites the cache file wholesale with the given configuration.
// Errors are returned so callers can mention them, but a failed save is never
// fatal to the run.
func SaveCache(cfg *Config) error {
	path, err := CachePath()
	if err != nil {
		return err
	}
	return saveCacheTo(path, cfg)
}

func saveCacheTo(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
