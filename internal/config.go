package internal

import (
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Deployment environments.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config represents the application configuration.
type Config struct {
	App    ApplicationConfig `yaml:"app"`
	SQLite SQLiteConfig      `yaml:"sqlite"`
	CORS   CORSConfig        `yaml:"cors"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.SQLite.Validate(); err != nil {
		return err
	}
	return c.CORS.Validate()
}

// ApplicationConfig holds application-level configuration.
//
// Env controls how much of an internal failure is reported to clients:
// in "production" the error responder replaces the underlying message with
// generic text, in "development" the real error is returned.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	Env      string     `yaml:"env"`
	HTTP     HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	// Normalise empty env to "development" so a bare config file works locally.
	if c.Env == "" {
		c.Env = EnvDevelopment
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Env, validation.Required, validation.In(EnvDevelopment, EnvProduction)),
	); err != nil {
		return err
	}
	return c.HTTP.Validate()
}

// Production returns true when the app runs in the production environment.
func (c *ApplicationConfig) Production() bool {
	return c.Env == EnvProduction
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// SQLiteConfig holds SQLite database configuration.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the SQLite configuration.
func (c *SQLiteConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// CORSConfig holds cross-origin configuration for the API.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Validate validates the CORS configuration.
func (c *CORSConfig) Validate() error {
	// An empty list means "allow any origin", matching the permissive
	// default of the single-user deployment.
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}
	return nil
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			Env:      EnvDevelopment,
			HTTP: HTTPConfig{
				Port: 8080,
			},
		},
		SQLite: SQLiteConfig{
			Path: "./noteful.db",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
	}
}
