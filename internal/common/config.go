package common

import (
	"fmt"
	"os"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for a Scout MCP service.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Clients ClientsConfig `toml:"clients"`
	Logging LoggingConfig `toml:"logging"`
}

// ServerConfig holds MCP server settings.
type ServerConfig struct {
	Name string `toml:"name"`
	Host string `toml:"host"`
	Port string `toml:"port"`
}

// Addr returns the listen address in host:port form.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// ClientsConfig holds upstream API client configurations.
type ClientsConfig struct {
	TheNewsAPI TheNewsAPIConfig `toml:"thenewsapi"`
	DataForSEO DataForSEOConfig `toml:"dataforseo"`
}

// TheNewsAPIConfig holds TheNewsAPI client configuration.
// The API token is sent as an api_token query parameter on every request.
type TheNewsAPIConfig struct {
	BaseURL   string `toml:"base_url"`
	APIToken  string `toml:"api_token"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration.
func (c *TheNewsAPIConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 15 * time.Second
	}
	return d
}

// DataForSEOConfig holds DataForSEO client configuration.
// Login and password are combined into an HTTP Basic auth header.
type DataForSEOConfig struct {
	BaseURL   string `toml:"base_url"`
	Login     string `toml:"login"`
	Password  string `toml:"password"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration.
func (c *DataForSEOConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string   `toml:"level"`
	Format     string   `toml:"format"`
	Outputs    []string `toml:"outputs"`
	FilePath   string   `toml:"file_path"`
	MaxSizeMB  int      `toml:"max_size_mb"`
	MaxBackups int      `toml:"max_backups"`
}

// NewDefaultConfig returns a Config with sensible defaults for the named
// service. Each service passes its own name and port.
func NewDefaultConfig(name, port string) *Config {
	return &Config{
		Server: ServerConfig{
			Name: name,
			Host: "0.0.0.0",
			Port: port,
		},
		Clients: ClientsConfig{
			TheNewsAPI: TheNewsAPIConfig{
				BaseURL:   "https://api.thenewsapi.com/v1",
				RateLimit: 5,
				Timeout:   "15s",
			},
			DataForSEO: DataForSEOConfig{
				BaseURL:   "https://api.dataforseo.com/v3",
				RateLimit: 5,
				Timeout:   "30s",
			},
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "json",
			Outputs:    []string{"console", "file"},
			FilePath:   "logs/scout.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}

// LoadConfig loads configuration from a TOML file over the supplied defaults,
// then applies environment variable overrides. A missing file is not an error.
func LoadConfig(path string, config *Config) (*Config, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
			// File not found — use defaults
		} else {
			if err := toml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if host := os.Getenv("SCOUT_HOST"); host != "" {
		config.Server.Host = host
	}
	if port := os.Getenv("SCOUT_PORT"); port != "" {
		config.Server.Port = port
	}
	if level := os.Getenv("SCOUT_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	// Credential material. NEWS_API_KEY is the historical name; the
	// THENEWSAPI_API_TOKEN form wins when both are set.
	if token := os.Getenv("NEWS_API_KEY"); token != "" {
		config.Clients.TheNewsAPI.APIToken = token
	}
	if token := os.Getenv("THENEWSAPI_API_TOKEN"); token != "" {
		config.Clients.TheNewsAPI.APIToken = token
	}
	if login := os.Getenv("DATAFORSEO_LOGIN"); login != "" {
		config.Clients.DataForSEO.Login = login
	}
	if password := os.Getenv("DATAFORSEO_PASSWORD"); password != "" {
		config.Clients.DataForSEO.Password = password
	}
}
