package autolocate

import (
	"fmt"
	"time"
)

// Config holds the endpoints for the concrete geo collaborators.
type Config struct {
	GeocodeURL string        `mapstructure:"geocode_url"`
	LookupURL  string        `mapstructure:"lookup_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

func DefaultConfig() *Config {
	return &Config{
		GeocodeURL: "https://nominatim.openstreetmap.org",
		LookupURL:  "http://ip-api.com",
		Timeout:    8 * time.Second,
	}
}

func (c *Config) Validate() error {
	if c.GeocodeURL == "" {
		return fmt.Errorf("geocode_url is required")
	}
	if c.LookupURL == "" {
		return fmt.Errorf("lookup_url is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}
