package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds application configuration
type Config struct {
	FeedURL     string `yaml:"feed_url"`     // paper feed API base URL
	Database    string `yaml:"database"`     // pipeline SQLite database, used when set
	Date        string `yaml:"date"`         // YYYY-MM-DD, empty means the latest day
	PageSize    int    `yaml:"page_size"`    // papers per page in the list view
	Theme       string `yaml:"theme"`        // color theme name
	DefaultSort string `yaml:"default_sort"` // sort key applied on startup
	Filters     string `yaml:"filters"`      // filter query string applied on startup
}

// Load loads configuration from config file and environment variables
// Environment variables take precedence over config file values
func Load() (*Config, error) {
	cfg := &Config{
		PageSize: 25,
	}

	// Load from config file first
	if err := cfg.loadFromFile(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	// Environment variables override config file
	cfg.loadFromEnv()

	return cfg, nil
}

func (c *Config) loadFromFile() error {
	configPath := getConfigPath()
	if configPath == "" {
		return os.ErrNotExist
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, c)
}

func (c *Config) loadFromEnv() {
	if feedURL := os.Getenv("PAPERLENS_FEED_URL"); feedURL != "" {
		c.FeedURL = feedURL
	}
	if db := os.Getenv("PAPERLENS_DB"); db != "" {
		c.Database = db
	}
	if date := os.Getenv("PAPERLENS_DATE"); date != "" {
		c.Date = date
	}
	if sizeStr := os.Getenv("PAPERLENS_PAGE_SIZE"); sizeStr != "" {
		if n, err := strconv.Atoi(sizeStr); err == nil && n > 0 {
			c.PageSize = n
		}
	}
}

// getConfigPath returns the path to the config file
// Priority: $PAPERLENS_CONFIG > ~/.config/paperlens/config.yaml
func getConfigPath() string {
	if configPath := os.Getenv("PAPERLENS_CONFIG"); configPath != "" {
		return configPath
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", "paperlens", "config.yaml")
}

func GetConfigDir() (string, error) {
	configPath := getConfigPath()
	if configPath == "" {
		return "", fmt.Errorf("cannot determine config path")
	}
	return filepath.Dir(configPath), nil
}

// EnsureConfigDir ensures the config directory exists
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}

	return configDir, nil
}

// SaveExampleConfig creates an example config file
func SaveExampleConfig() error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.yaml")

	// Check if file already exists
	if _, err := os.Stat(configPath); err == nil {
		return nil // Already exists, don't overwrite
	}

	example := `# Paperlens Configuration

# Paper feed API base URL (default: http://127.0.0.1:5000)
# The PAPERLENS_FEED_URL environment variable also works.
feed_url: "http://127.0.0.1:5000"

# Optional: read papers straight from the pipeline SQLite database instead
# of the feed API. Takes precedence over feed_url when set.
# database: "/path/to/cache.db"

# Optional: which day's papers to open on startup (default: latest)
# date: "2025-07-15"

# Optional: papers per page in the list view (default: 25)
page_size: 25

# Optional: color theme (default, catppuccin, dracula, nord, gruvbox)
theme: "default"

# Optional: sort key applied on startup (default: recommendationBest)
default_sort: "recommendationBest"

# Optional: filter query string applied on startup, as produced by the
# copy-filters key. Empty means the built-in defaults.
# filters: "recommendation=must_read,should_read&h_index_found=true"
`

	return os.WriteFile(configPath, []byte(example), 0600)
}

func (c *Config) Save() error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.yaml")

	// Load existing config to preserve connection fields
	existing := &Config{PageSize: 25}
	if data, err := os.ReadFile(configPath); err == nil {
		yaml.Unmarshal(data, existing)
	}

	// Update only the fields we manage from the UI
	existing.Date = c.Date
	existing.PageSize = c.PageSize
	existing.Theme = c.Theme
	existing.DefaultSort = c.DefaultSort
	existing.Filters = c.Filters
	// Note: We preserve existing.FeedURL and existing.Database

	data, err := yaml.Marshal(existing)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte("# Paperlens Configuration\n# Note: Connection values can be set via environment variables or this file\n\n")
	return os.WriteFile(configPath, append(header, data...), 0600)
}
