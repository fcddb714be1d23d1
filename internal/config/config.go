package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/justyntemme/arbor/internal/debug"
)

// Config holds all user-configurable settings loaded from config.json
type Config struct {
	Tree    TreeConfig    `json:"tree"`
	UI      UIConfig      `json:"ui"`
	Hotkeys HotkeysConfig `json:"hotkeys"`
}

// TreeConfig controls the in-memory tree and how it is seeded
type TreeConfig struct {
	RootName       string `json:"rootName"`
	BreadcrumbMode string `json:"breadcrumbMode"` // "id" | "name"
	SeedPath       string `json:"seedPath"`       // Directory to mirror at startup, empty for none
	SeedDepth      int    `json:"seedDepth"`
	SeedMaxEntries int    `json:"seedMaxEntries"`
	ShowDotfiles   bool   `json:"showDotfiles"` // Include dotfiles when seeding
}

// UIConfig holds UI-related settings
type UIConfig struct {
	Theme          string       `json:"theme"`    // "light" or "dark"
	ViewMode       string       `json:"viewMode"` // "grid" | "list"
	GridColumns    int          `json:"gridColumns"`
	MaxBreadcrumbs int          `json:"maxBreadcrumbs"`
	Window         WindowConfig `json:"window"`
}

// WindowConfig holds the initial window size in dp
type WindowConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Manager handles loading, saving, and accessing configuration
type Manager struct {
	mu       sync.RWMutex
	config   *Config
	path     string
	parseErr error // Stores parsing error if config failed to load
}

// NewManager creates a new configuration manager
func NewManager() *Manager {
	return &Manager{
		config: DefaultConfig(),
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Tree: TreeConfig{
			RootName:       "Root",
			BreadcrumbMode: "id",
			SeedDepth:      3,
			SeedMaxEntries: 5000,
		},
		UI: UIConfig{
			Theme:          "light",
			ViewMode:       "grid",
			GridColumns:    4,
			MaxBreadcrumbs: 6,
			Window:         WindowConfig{Width: 900, Height: 600},
		},
		Hotkeys: DefaultHotkeys(),
	}
}

// ConfigDir returns ~/.config/arbor on every platform
func ConfigDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "arbor")
}

// ConfigPath returns the config file path: ~/.config/arbor/config.json
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.json")
}

// LoadFrom reads the configuration from path.
// If the file doesn't exist, creates it with defaults.
// If parsing fails, stores the error and keeps defaults.
func (m *Manager) LoadFrom(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.path = path
	m.parseErr = nil

	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := os.ReadFile(m.path)
	if os.IsNotExist(err) {
		log.Printf("Config: creating default config at %s", m.path)
		m.config = DefaultConfig()
		if err := m.saveUnlocked(); err != nil {
			return fmt.Errorf("save default config: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	// Start from defaults so missing keys keep sensible values
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		log.Printf("Config: JSON parse error: %v", err)
		m.parseErr = err
		m.config = DefaultConfig()
		return nil
	}
	cfg.normalize()

	debug.Log(debug.CONFIG, "loaded %s: %+v", m.path, *cfg)
	m.config = cfg
	return nil
}

// normalize replaces out-of-range values with defaults
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Tree.RootName == "" {
		c.Tree.RootName = def.Tree.RootName
	}
	if c.Tree.BreadcrumbMode != "id" && c.Tree.BreadcrumbMode != "name" {
		c.Tree.BreadcrumbMode = def.Tree.BreadcrumbMode
	}
	if c.Tree.SeedDepth < 1 {
		c.Tree.SeedDepth = def.Tree.SeedDepth
	}
	if c.Tree.SeedMaxEntries < 1 {
		c.Tree.SeedMaxEntries = def.Tree.SeedMaxEntries
	}
	if c.UI.ViewMode != "grid" && c.UI.ViewMode != "list" {
		c.UI.ViewMode = def.UI.ViewMode
	}
	if c.UI.GridColumns < 1 {
		c.UI.GridColumns = def.UI.GridColumns
	}
	if c.UI.MaxBreadcrumbs < 3 {
		c.UI.MaxBreadcrumbs = def.UI.MaxBreadcrumbs
	}
	if c.UI.Window.Width <= 0 || c.UI.Window.Height <= 0 {
		c.UI.Window = def.UI.Window
	}
}

// saveUnlocked saves config without acquiring lock (caller must hold lock)
func (m *Manager) saveUnlocked() error {
	if m.path == "" {
		m.path = ConfigPath()
	}
	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(m.path, data, 0o644)
}

// Get returns a copy of the current configuration
func (m *Manager) Get() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.config == nil {
		return *DefaultConfig()
	}
	return *m.config
}

// Path returns the file the config was loaded from
func (m *Manager) Path() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.path
}

// ParseError returns the parsing error if config failed to load
func (m *Manager) ParseError() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.parseErr
}

// Override applies in-memory changes (CLI flags) without writing them to disk
func (m *Manager) Override(fn func(*Config)) {
	m.mu.Lock()
	fn(m.config)
	m.config.normalize()
	m.mu.Unlock()
}

// GenerateConfig backs up any existing config at path and writes a fresh default.
// Returns the backup path if a backup was created.
func GenerateConfig(path string) (backupPath string, err error) {
	if _, err := os.Stat(path); err == nil {
		timestamp := time.Now().Format("20060102-150405")
		backupPath = filepath.Join(filepath.Dir(path), "config.backup."+timestamp+".json")

		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read existing config: %w", err)
		}
		if err := os.WriteFile(backupPath, data, 0o644); err != nil {
			return "", fmt.Errorf("failed to write backup: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return backupPath, fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(DefaultConfig(), "", "  ")
	if err != nil {
		return backupPath, fmt.Errorf("failed to marshal default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return backupPath, fmt.Errorf("failed to write config: %w", err)
	}
	return backupPath, nil
}
