// Package config loads runtime configuration for both services from the
// environment.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Database holds the Postgres connection parameters.
type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// DSN renders the lib/pq connection string.
func (d Database) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Password, d.Name,
	)
}

// Directory configures the inventory service's outbound calls to the products
// service.
type Directory struct {
	BaseURL        string
	APIKey         string
	MaxAttempts    int
	BaseDelay      time.Duration
	RequestTimeout time.Duration
}

// Config is the full configuration surface. The products service ignores the
// Directory section.
type Config struct {
	Port      string
	APIKey    string
	DB        Database
	Directory Directory
}

// Load reads configuration from the environment with defaults. defaultPort and
// defaultDBName differ per service.
func Load(defaultPort, defaultDBName string) Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", defaultPort)
	v.SetDefault("API_KEY", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", defaultDBName)
	v.SetDefault("PRODUCTS_BASE_URL", "http://localhost:3000")
	v.SetDefault("PRODUCTS_API_KEY", "")
	v.SetDefault("RETRY_MAX_ATTEMPTS", 3)
	v.SetDefault("RETRY_BASE_DELAY_MS", 100)
	v.SetDefault("DIRECTORY_TIMEOUT_MS", 2000)

	return Config{
		Port:   v.GetString("PORT"),
		APIKey: v.GetString("API_KEY"),
		DB: Database{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
		},
		Directory: Directory{
			BaseURL:        v.GetString("PRODUCTS_BASE_URL"),
			APIKey:         v.GetString("PRODUCTS_API_KEY"),
			MaxAttempts:    v.GetInt("RETRY_MAX_ATTEMPTS"),
			BaseDelay:      time.Duration(v.GetInt("RETRY_BASE_DELAY_MS")) * time.Millisecond,
			RequestTimeout: time.Duration(v.GetInt("DIRECTORY_TIMEOUT_MS")) * time.Millisecond,
		},
	}
}
