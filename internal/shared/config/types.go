// Package config defines the configuration structures shared across the
// application.
package config

import "fmt"

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver" validate:"oneof=mysql sqlite"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database" validate:"required"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns" validate:"min=0"`
	MaxOpenConns    int    `mapstructure:"max_open_conns" validate:"min=0"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime" validate:"min=0"`
}

// LoggerConfig holds logging settings.
type LoggerConfig struct {
	Level      string `mapstructure:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format     string `mapstructure:"format" validate:"omitempty,oneof=console json"`
	OutputPath string `mapstructure:"output_path"`
}

// RedisConfig holds settings for the presence tracker connection.
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"min=0"`
}

// GetAddr returns the host:port address for the redis client.
func (c *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RosterConfig holds scheduling policy settings.
type RosterConfig struct {
	// Timezone anchors duty-day boundaries; empty falls back to the
	// biztime default.
	Timezone string `mapstructure:"timezone"`
	// RestIntervalDays is the number of days before and after an
	// allocation during which a user is skipped by automatic generation
	// and blocked as a swap substitute.
	RestIntervalDays int `mapstructure:"rest_interval_days" validate:"min=0"`
}
