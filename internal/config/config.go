package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config carries all runtime settings of the service. It is parsed once at
// startup and passed by reference to the components that need it.
type Config struct {
	Port       string `env:"PORT" envDefault:"8080"`
	DBHost     string `env:"DBHOST" envDefault:"localhost:3306"`
	DBUser     string `env:"DBUSER"`
	DBPassword string `env:"DBPWD"`
	DBName     string `env:"DBNAME" envDefault:"test"`
	GinLogging string `env:"GIN_LOGGING" envDefault:"on"`
	LogLevel   string `env:"LOGGER_LEVEL" envDefault:"INFO"`
}

// Load reads an optional .env file and then the process environment.
//
// Usage example on the command line:
// > PORT=8080 DBUSER=appuser DBPWD=s3cret DBHOST=localhost:3306 go run main.go
func Load() (*Config, error) {
	// A missing .env file is fine; plain environment variables still apply.
	_ = godotenv.Load()
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}

// DSN returns the MySQL data source name for the configured database.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true",
		c.DBUser, c.DBPassword, c.DBHost, c.DBName)
}

// RequestLogging reports whether gin's per-request logger should be active.
func (c *Config) RequestLogging() bool {
	return !strings.EqualFold(c.GinLogging, "off")
}
