package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"akellar.dev/internal/filter"
)

// Config holds all application configuration
type Config struct {
	ServerAddr   string         `koanf:"server_addr"`
	SiteDir      string         `koanf:"site_dir"`
	Catalog      string         `koanf:"catalog"`
	Owner        string         `koanf:"owner"`
	CacheCatalog bool           `koanf:"cache_catalog"`
	Watch        bool           `koanf:"watch"`
	FilterMode   string         `koanf:"filter_mode"`
	CORSAllowAll bool           `koanf:"cors_allow_all"`
	Carousel     CarouselConfig `koanf:"carousel"`
}

// CarouselConfig holds carousel layout settings
type CarouselConfig struct {
	Breakpoint     int `koanf:"breakpoint"`
	Gap            int `koanf:"gap"`
	ContainerWidth int `koanf:"container_width"`
	ViewportWidth  int `koanf:"viewport_width"`
	DebounceMs     int `koanf:"debounce_ms"`
}

// Default returns the configuration used when nothing overrides it
func Default() *Config {
	return &Config{
		ServerAddr:   ":8080",
		Catalog:      "projects-data.json",
		Owner:        "Ashley Kellar",
		CacheCatalog: true,
		FilterMode:   string(filter.DefaultMode),
		Carousel: CarouselConfig{
			Breakpoint:     768,
			Gap:            24,
			ContainerWidth: 1100,
			ViewportWidth:  1280,
			DebounceMs:     100,
		},
	}
}

// Load reads the YAML file at path (if present), then overlays
// PORTFOLIO_* environment variables. A .env file in the working
// directory is loaded into the environment first.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading .env: %w", err)
	}

	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// PORTFOLIO_CAROUSEL__GAP -> carousel.gap
	if err := k.Load(env.Provider("PORTFOLIO_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "PORTFOLIO_"))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// SERVER_ADDR predates the prefixed variables and is still honoured
	if addr := os.Getenv("SERVER_ADDR"); addr != "" && !k.Exists("server_addr") {
		cfg.ServerAddr = addr
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration contains usable values
func (c *Config) Validate() error {
	if c.ServerAddr == "" {
		return fmt.Errorf("server_addr is required")
	}
	if c.Catalog == "" {
		return fmt.Errorf("catalog is required")
	}
	if _, err := filter.ParseMode(c.FilterMode); err != nil {
		return fmt.Errorf("invalid filter_mode: %w", err)
	}
	if c.Carousel.Breakpoint < 0 || c.Carousel.Gap < 0 {
		return fmt.Errorf("carousel breakpoint and gap must be non-negative")
	}
	if c.Carousel.ContainerWidth <= 0 || c.Carousel.ViewportWidth <= 0 {
		return fmt.Errorf("carousel widths must be positive")
	}
	if c.Carousel.DebounceMs < 0 {
		return fmt.Errorf("carousel debounce_ms must be non-negative")
	}
	return nil
}
