package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Theme names
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Config holds all application configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	UI      UIConfig      `mapstructure:"ui"`
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds the remote job board endpoints
type APIConfig struct {
	BaseURL         string        `mapstructure:"base_url"`
	JobsPath        string        `mapstructure:"jobs_path"`
	SpecialistsPath string        `mapstructure:"specialists_path"`
	AuthURL         string        `mapstructure:"auth_url"` // Serves /api/login and /api/register
	Timeout         time.Duration `mapstructure:"timeout"`
}

// UIConfig holds UI configuration
type UIConfig struct {
	Theme      string `mapstructure:"theme"`       // "light" or "dark"
	FilterMode string `mapstructure:"filter_mode"` // "substring" or "fuzzy"
}

// ServerConfig holds configuration for the local API server
type ServerConfig struct {
	Addr           string   `mapstructure:"addr"`
	DataFile       string   `mapstructure:"data_file"` // Empty keeps data in memory
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	Seed           bool     `mapstructure:"seed"` // Fill empty collections with demo records
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:         "https://mustafocoder.pythonanywhere.com",
			JobsPath:        "/api/jobs/",
			SpecialistsPath: "/api/users",
			AuthURL:         "http://localhost:8080",
			Timeout:         30 * time.Second,
		},
		UI: UIConfig{
			Theme:      ThemeLight,
			FilterMode: "substring",
		},
		Server: ServerConfig{
			Addr:           ":8080",
			DataFile:       "",
			AllowedOrigins: []string{"http://localhost:3000"},
			Seed:           true,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "jobboard", "jobboard.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "jobboard", "jobboard.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "jobboard")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "jobboard")
	}
}

// ConfigFile returns the path SaveConfig writes to
func ConfigFile() string {
	return filepath.Join(defaultConfigPath(), "config.yaml")
}

// LoadConfig loads configuration from the default locations, .env and environment
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(defaultConfigPath(), ".")
}

// LoadConfigFrom loads config.yaml from the first of dirs that has one.
// Values from JOBBOARD_* environment variables (including those set in a
// .env file) override the file, e.g. JOBBOARD_API_BASE_URL.
func LoadConfigFrom(dirs ...string) (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}

	// Environment variable overrides
	v.SetEnvPrefix("JOBBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, cfg)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, cfg.Validate()
}

// loadDotEnv exports variables from ./.env without overriding the real environment
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error reading .env: %w", err)
	}
	return nil
}

// setDefaults registers every key so environment overrides reach Unmarshal
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("api.base_url", cfg.API.BaseURL)
	v.SetDefault("api.jobs_path", cfg.API.JobsPath)
	v.SetDefault("api.specialists_path", cfg.API.SpecialistsPath)
	v.SetDefault("api.auth_url", cfg.API.AuthURL)
	v.SetDefault("api.timeout", cfg.API.Timeout)

	v.SetDefault("ui.theme", cfg.UI.Theme)
	v.SetDefault("ui.filter_mode", cfg.UI.FilterMode)

	v.SetDefault("server.addr", cfg.Server.Addr)
	v.SetDefault("server.data_file", cfg.Server.DataFile)
	v.SetDefault("server.allowed_origins", cfg.Server.AllowedOrigins)
	v.SetDefault("server.seed", cfg.Server.Seed)

	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
}

// Validate rejects values the application cannot run with
func (c *Config) Validate() error {
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return errors.New("api.base_url must be set")
	}
	switch c.UI.Theme {
	case ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("ui.theme must be %q or %q, got %q", ThemeLight, ThemeDark, c.UI.Theme)
	}
	switch c.UI.FilterMode {
	case "substring", "fuzzy":
	default:
		return fmt.Errorf("ui.filter_mode must be \"substring\" or \"fuzzy\", got %q", c.UI.FilterMode)
	}
	return nil
}

// SaveConfig saves the configuration to the default config file
func SaveConfig(cfg *Config) error {
	return SaveConfigAs(cfg, ConfigFile())
}

// SaveConfigAs saves the configuration to path
func SaveConfigAs(cfg *Config, path string) error {
	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()

	// Set fields individually to ensure correct key names (snake_case)
	v.Set("api.base_url", cfg.API.BaseURL)
	v.Set("api.jobs_path", cfg.API.JobsPath)
	v.Set("api.specialists_path", cfg.API.SpecialistsPath)
	v.Set("api.auth_url", cfg.API.AuthURL)
	v.Set("api.timeout", cfg.API.Timeout.String())

	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("ui.filter_mode", cfg.UI.FilterMode)

	v.Set("server.addr", cfg.Server.Addr)
	v.Set("server.data_file", cfg.Server.DataFile)
	v.Set("server.allowed_origins", cfg.Server.AllowedOrigins)
	v.Set("server.seed", cfg.Server.Seed)

	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
