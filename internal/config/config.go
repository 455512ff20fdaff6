// Package config provides configuration management for the Homestretch
// career simulator.
package config

import (
	"fmt"
)

// Config represents the complete application configuration
type Config struct {
	App        AppConfig        `mapstructure:"app" validate:"required"`
	Simulation SimulationConfig `mapstructure:"simulation" validate:"required"`
	Roster     RosterConfig     `mapstructure:"roster" validate:"required"`
	Names      NamesConfig      `mapstructure:"names"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Daemon     DaemonConfig     `mapstructure:"daemon"`
	Metrics    MetricsConfig    `mapstructure:"metrics" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// SimulationConfig represents career simulation configuration
type SimulationConfig struct {
	MaxTurns int   `mapstructure:"max_turns" validate:"required,gt=0"`
	Seed     int64 `mapstructure:"seed"`
	Verbose  bool  `mapstructure:"verbose"`
	SavePath string `mapstructure:"save_path" validate:"required"`
}

// RosterConfig represents rival roster configuration
type RosterConfig struct {
	Size int `mapstructure:"size" validate:"required,gt=0"`
}

// NamesConfig represents the external name-service client configuration.
// An empty service URL selects the built-in word-list supplier.
type NamesConfig struct {
	ServiceURL string  `mapstructure:"service_url" validate:"omitempty,url"`
	APIKey     string  `mapstructure:"api_key"`
	RateLimit  float64 `mapstructure:"rate_limit" validate:"omitempty,gt=0"`
}

// DatabaseConfig represents the career archive database configuration
type DatabaseConfig struct {
	Enabled            bool   `mapstructure:"enabled"`
	Host               string `mapstructure:"host"`
	Port               int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Name               string `mapstructure:"name"`
	User               string `mapstructure:"user"`
	Password           string `mapstructure:"password"`
	SSLMode            string `mapstructure:"ssl_mode" validate:"omitempty,oneof=disable require verify-full"`
	MaxConnections     int    `mapstructure:"max_connections" validate:"omitempty,gt=0"`
	MaxIdleConnections int    `mapstructure:"max_idle_connections" validate:"omitempty,gt=0"`
}

// DaemonConfig represents the simulation daemon configuration
type DaemonConfig struct {
	HealthPort       string `mapstructure:"health_port"`
	SweepCron        string `mapstructure:"sweep_cron"`
	SweepCareers     int    `mapstructure:"sweep_careers" validate:"omitempty,gt=0"`
	BroadcastAddress string `mapstructure:"broadcast_address"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Path    string `mapstructure:"path" validate:"required"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetDatabaseDSN returns a PostgreSQL DSN string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}
