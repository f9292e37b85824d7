package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// MirrorConfig defines the optional MIDI mirror of the CV/gate outputs
type MirrorConfig struct {
	PortName string `json:"portName,omitempty"`
	Channel  int    `json:"channel,omitempty"`
	Enabled  bool   `json:"enabled,omitempty"`
}

// UIConfig stores UI preferences restored into the simulator at startup
type UIConfig struct {
	InternalClock bool    `json:"internalClock,omitempty"`
	LastTempoCV   float64 `json:"lastTempoCV,omitempty"`
	LastRootCV    float64 `json:"lastRootCV,omitempty"`
}

// Config is the main configuration structure
type Config struct {
	Seed   int64        `json:"seed,omitempty"` // 0 means seed from the wall clock
	Mirror MirrorConfig `json:"mirror,omitempty"`
	UI     UIConfig     `json:"ui,omitempty"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Mirror: MirrorConfig{
			Channel: 1,
		},
		UI: UIConfig{
			LastTempoCV: 0.5,
		},
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "go-arp"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
