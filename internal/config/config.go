// Package config persists winnow's tunable settings to
// ~/.winnow/config.json.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Defaults applied when a field is missing or out of range
const (
	DefaultEstimatedRows   = 2
	DefaultOverscan        = 4
	DefaultMouseWheelDelta = 3
	DefaultDemoItems       = 10000
	DefaultDemoSeed        = 1
)

// Config holds the application configuration
type Config struct {
	// Zero is meaningful for Overscan and FollowTail, so no omitempty:
	// a saved 0/false must survive the round trip.
	EstimatedRows   int  `json:"estimated_rows"`    // Fallback height for unmeasured items
	Overscan        int  `json:"overscan"`          // Extra items rendered beyond the visible edges
	FollowTail      bool `json:"follow_tail"`       // Keep the window pinned to the newest item
	MouseWheelDelta int  `json:"mouse_wheel_delta"` // Rows scrolled per wheel notch

	DemoItems int   `json:"demo_items"` // Transcript size for the demo
	DemoSeed  int64 `json:"demo_seed"`  // Seed for the generated transcript

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".winnow"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or creates a new one if it doesn't exist
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	cfg.filePath = path

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid config at %s: %w", path, err)
	}

	// Fill gaps and clamp out-of-range values after unmarshaling, so a
	// hand-edited file can never produce a non-rendering window.
	cfg.ensureInitialized()

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		EstimatedRows:   DefaultEstimatedRows,
		Overscan:        DefaultOverscan,
		FollowTail:      true,
		MouseWheelDelta: DefaultMouseWheelDelta,
		DemoItems:       DefaultDemoItems,
		DemoSeed:        DefaultDemoSeed,
	}
}

// ensureInitialized clamps every numeric field into its valid domain.
//
// Thread-safety: NOT thread-safe; only call during single-threaded
// initialization, before the Config is shared.
func (c *Config) ensureInitialized() {
	if c.EstimatedRows < 1 {
		c.EstimatedRows = DefaultEstimatedRows
	}
	if c.Overscan < 0 {
		c.Overscan = DefaultOverscan
	}
	if c.MouseWheelDelta < 1 {
		c.MouseWheelDelta = DefaultMouseWheelDelta
	}
	if c.DemoItems < 1 {
		c.DemoItems = DefaultDemoItems
	}
	if c.DemoSeed == 0 {
		c.DemoSeed = DefaultDemoSeed
	}
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	dir, err := configDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(c.filePath, data, 0644)
}

// GetEstimatedRows returns the fallback height for unmeasured items
func (c *Config) GetEstimatedRows() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.EstimatedRows
}

// SetEstimatedRows updates the fallback height. Values below one row
// are ignored and the previous value is kept.
func (c *Config) SetEstimatedRows(rows int) bool {
	if rows < 1 {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.EstimatedRows = rows
	return true
}

// GetOverscan returns how many extra items render beyond the window
func (c *Config) GetOverscan() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Overscan
}

// SetOverscan updates the overscan. Negative values are ignored.
func (c *Config) SetOverscan(n int) bool {
	if n < 0 {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Overscan = n
	return true
}

// GetFollowTail returns whether the window stays pinned to the newest item
func (c *Config) GetFollowTail() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.FollowTail
}

// SetFollowTail updates the follow-tail setting
func (c *Config) SetFollowTail(follow bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.FollowTail = follow
}

// GetMouseWheelDelta returns the rows scrolled per wheel notch
func (c *Config) GetMouseWheelDelta() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.MouseWheelDelta
}

// GetDemoItems returns the transcript size for the demo
func (c *Config) GetDemoItems() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.DemoItems
}

// GetDemoSeed returns the transcript seed for the demo
func (c *Config) GetDemoSeed() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.DemoSeed
}
