package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Flickr  FlickrConfig  `mapstructure:"flickr"`
	Gallery GalleryConfig `mapstructure:"gallery"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port"`
	Mode string     `mapstructure:"mode"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
	AllowAllOrigins bool     `mapstructure:"allow_all_origins"`
}

// FlickrConfig configures the upstream public feed.
type FlickrConfig struct {
	BaseURL  string        `mapstructure:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
	PageSize int           `mapstructure:"page_size"`
}

// GalleryConfig configures the terminal gallery client.
type GalleryConfig struct {
	APIURL  string        `mapstructure:"api_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Load reads configuration from an optional YAML file and the environment.
// Only the listen port (PORT) and the allowed CORS origin (ALLOWED_ORIGIN)
// are taken from environment variables.
func Load(configPath string) (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.SetDefault("server.port", 3001)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.cors.allow_all_origins", false)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("flickr.base_url", "https://www.flickr.com/services/feeds/photos_public.gne")
	v.SetDefault("flickr.timeout", "10s")
	v.SetDefault("flickr.page_size", 20)
	v.SetDefault("gallery.api_url", "http://localhost:3001")
	v.SetDefault("gallery.timeout", "15s")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.BindEnv("server.port", "PORT")
	v.BindEnv("server.cors.allowed_origins", "ALLOWED_ORIGIN")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Server.CORS.AllowedOrigins = splitOrigins(cfg.Server.CORS.AllowedOrigins)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if !c.Server.CORS.AllowAllOrigins && len(c.Server.CORS.AllowedOrigins) == 0 {
		return fmt.Errorf("server.cors.allowed_origins must name at least one origin")
	}
	if c.Flickr.Timeout <= 0 {
		return fmt.Errorf("flickr.timeout must be positive")
	}
	if c.Flickr.PageSize <= 0 {
		return fmt.Errorf("flickr.page_size must be positive")
	}
	return nil
}

// splitOrigins flattens comma-separated entries, which is how a single
// environment variable carries more than one origin.
func splitOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		for _, part := range strings.Split(o, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, strings.TrimRight(part, "/"))
			}
		}
	}
	return out
}
