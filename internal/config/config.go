package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Version    int        `toml:"version"`
	BackendURL string     `toml:"backend_url"`     // base origin of the price-monitor backend
	TargetURL  string     `toml:"target_site_url"` // site scraper jobs are pointed at
	UISettings UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	// StatusTimeout is how long transient status bar messages stay visible.
	StatusTimeout time.Duration `toml:"status_timeout"`
	ShowHelpBar   bool          `toml:"show_help_bar"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	pricewatchDir := filepath.Join(configDir, "pricewatch")
	os.MkdirAll(pricewatchDir, 0755)

	return &configService{
		filePath: filepath.Join(pricewatchDir, "config.toml"),
	}
}

// Load loads the configuration from file
func (cs *configService) Load() (*Config, error) {
	// Return default config if file doesn't exist
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Fill in anything the file left out
	def := DefaultConfig()
	if cfg.BackendURL == "" {
		cfg.BackendURL = def.BackendURL
	}
	if cfg.TargetURL == "" {
		cfg.TargetURL = def.TargetURL
	}
	if cfg.UISettings.StatusTimeout == 0 {
		cfg.UISettings.StatusTimeout = def.UISettings.StatusTimeout
	}

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv overlays environment variables on top of a loaded config.
// PRICEWATCH_BACKEND_URL and PRICEWATCH_TARGET_URL take precedence over
// the file so deployments can point the client without editing TOML.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv("PRICEWATCH_BACKEND_URL"); v != "" {
		cfg.BackendURL = v
	}
	if v := os.Getenv("PRICEWATCH_TARGET_URL"); v != "" {
		cfg.TargetURL = v
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:    1,
		BackendURL: "http://localhost:8080",
		TargetURL:  "https://www.amazon.com",
		UISettings: UISettings{
			StatusTimeout: 4 * time.Second,
			ShowHelpBar:   true,
		},
	}
}
