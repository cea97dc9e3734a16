package config

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// fallbackEnvs is the connection-string precedence the site historically
// used. They are consulted once at startup; the first non-empty value wins.
var fallbackEnvs = []string{
	"POSTGRES_URL_NON_POOLING",
	"DATABASE_URL_UNPOOLED",
	"POSTGRES_URL_DIRECT",
	"DATABASE_URL",
	"POSTGRES_URL",
}

type DatabaseConfig struct {
	URL         string `yaml:"url" json:"url" env:"URL"`
	Host        string `yaml:"host" json:"host" env:"HOST" default:"localhost"`
	Port        uint32 `yaml:"port" json:"port" env:"PORT" default:"5432"`
	Username    string `yaml:"username" json:"username" env:"USERNAME" default:"safehaven"`
	Password    string `yaml:"password" json:"password" env:"PASSWORD" default:""`
	Database    string `yaml:"database" json:"database" env:"DATABASE" default:"safehaven"`
	Parameters  string `yaml:"parameters" json:"parameters" env:"PARAMETERS" default:"sslmode=disable"`
	MaxPoolSize uint32 `yaml:"max_pool_size" json:"max_pool_size" env:"MAX_POOL_SIZE" default:"40"`
	MaxLifetime uint32 `yaml:"max_lifetime" json:"max_lifetime" env:"MAX_LIFETIME" default:"1800"`

	// source records where the DSN came from, for startup diagnostics.
	source string `yaml:"-" json:"-"`
}

// resolve picks the connection descriptor once at startup. Explicit
// configuration wins; otherwise the legacy environment chain is consulted;
// otherwise the DSN is assembled from parts.
func (cfg *DatabaseConfig) resolve() error {
	if cfg.URL != "" {
		cfg.source = "database.url"
		return nil
	}
	for _, name := range fallbackEnvs {
		if v := os.Getenv(name); v != "" {
			cfg.URL = v
			cfg.source = name
			return nil
		}
	}
	if cfg.Host == "" || cfg.Database == "" {
		return errors.New("no valid database connection string available")
	}
	cfg.source = "host/port configuration"
	return nil
}

// Source reports which configuration supplied the DSN.
func (cfg DatabaseConfig) Source() string {
	return cfg.source
}

func (cfg DatabaseConfig) GetDSN() string {
	if cfg.URL != "" {
		return cfg.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?%s",
		cfg.Username,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Database,
		cfg.Parameters,
	)
}

func (cfg DatabaseConfig) Validate() error {
	if cfg.Port > 65535 {
		return fmt.Errorf("port must be in the range [0, 65535]")
	}
	return nil
}
