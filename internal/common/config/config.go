// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct, shared by the CLI
// front-end and the development backend.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Backend BackendConfig `mapstructure:"backend"`
	Locate  LocateConfig  `mapstructure:"locate"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// --- Core App Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// BackendConfig points the client workflows at the ordering API.
type BackendConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"` // milliseconds
}

// LocateConfig holds the endpoints used to auto-detect a pickup location.
type LocateConfig struct {
	GeocodeURL string `mapstructure:"geocode_url"` // reverse-geocoding lookup
	LookupURL  string `mapstructure:"lookup_url"`  // IP-based position lookup
	Timeout    int    `mapstructure:"timeout"`     // milliseconds
}

// CatalogConfig points at an optional catalog registry file; when empty the
// built-in item set is used.
type CatalogConfig struct {
	RegistryPath string `mapstructure:"registry_path"`
}

// ServerConfig holds settings for the development backend.
type ServerConfig struct {
	Address       string             `mapstructure:"address"`
	Redis         RedisConfig        `mapstructure:"redis"`
	OTP           OTPConfig          `mapstructure:"otp"`
	Notifications NotificationConfig `mapstructure:"notifications"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// OTPConfig controls one-time code issuance.
type OTPConfig struct {
	TTL    int `mapstructure:"ttl"` // seconds
	Length int `mapstructure:"length"`
}

// NotificationConfig holds settings for OTP SMS and order confirmation email.
// Both default to disabled; in development the payloads are only logged.
type NotificationConfig struct {
	SMS struct {
		Enabled  bool   `mapstructure:"enabled"`
		SenderID string `mapstructure:"sender_id"`
	} `mapstructure:"sms"`
	Email struct {
		Enabled   bool   `mapstructure:"enabled"`
		FromEmail string `mapstructure:"from_email"`
	} `mapstructure:"email"`
	AWS struct {
		Region string `mapstructure:"region"`
	} `mapstructure:"aws"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

func (b BackendConfig) Validate() error {
	if b.BaseURL == "" {
		return fmt.Errorf("backend.base_url is required")
	}
	if b.Timeout <= 0 {
		return fmt.Errorf("backend.timeout must be positive")
	}
	return nil
}

func (o OTPConfig) Validate() error {
	if o.TTL <= 0 {
		return fmt.Errorf("server.otp.ttl must be positive")
	}
	if o.Length < 4 || o.Length > 8 {
		return fmt.Errorf("server.otp.length must be between 4 and 8")
	}
	return nil
}
