package config

import (
	"encoding/json"

	"github.com/caarlos0/env/v10"
	"github.com/creasty/defaults"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"os"
)

// Config Configuration
type Config struct {
	Log       LogConfig       `yaml:"log" json:"log" envPrefix:"LOG_"`
	Database  DatabaseConfig  `yaml:"database" json:"database" envPrefix:"DATABASE_"`
	Server    ServerConfig    `yaml:"server" json:"server" envPrefix:"SERVER_"`
	Admin     AdminConfig     `yaml:"admin" json:"admin" envPrefix:"ADMIN_"`
	Email     EmailConfig     `yaml:"email" json:"email" envPrefix:"EMAIL_"`
	PayPal    PayPalConfig    `yaml:"paypal" json:"paypal" envPrefix:"PAYPAL_"`
	Analytics AnalyticsConfig `yaml:"analytics" json:"analytics" envPrefix:"ANALYTICS_"`
}

func (cfg Config) String() string {
	bytes, err := json.Marshal(cfg)
	if err != nil {
		panic(err)
	}
	return string(bytes)
}

func (cfg Config) Validate() error {
	if err := cfg.Log.Validate(); err != nil {
		return err
	}
	if err := cfg.Database.Validate(); err != nil {
		return err
	}
	if err := cfg.Server.Validate(); err != nil {
		return err
	}
	if err := cfg.Admin.Validate(); err != nil {
		return err
	}
	if err := cfg.Email.Validate(); err != nil {
		return err
	}
	if err := cfg.PayPal.Validate(); err != nil {
		return err
	}
	if err := cfg.Analytics.Validate(); err != nil {
		return err
	}
	return nil
}

func New() *Config {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		panic(err)
	}
	return &cfg
}

// Load populates cfg from an optional yaml file, then SAFEHAVEN_-prefixed
// environment variables, then resolves the database connection descriptor.
func Load(filename string, cfg *Config) error {
	_ = godotenv.Load()

	if filename != "" {
		content, err := os.ReadFile(filename)
		if err != nil {
			return errors.Wrap(err, "reading configuration file")
		}
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return errors.Wrap(err, "parsing configuration file")
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "SAFEHAVEN_"}); err != nil {
		return err
	}

	return cfg.PostProcess()
}

func (cfg *Config) PostProcess() error {
	return cfg.Database.resolve()
}
