package config

import "github.com/pkg/errors"

// AdminConfig configures the Basic-Auth-gated admin server.
type AdminConfig struct {
	Listen   string `yaml:"listen" json:"listen" env:"LISTEN" default:"127.0.0.1:9601"`
	Username string `yaml:"username" json:"username" env:"USERNAME" default:"admin"`
	Password Password `yaml:"password" json:"password" env:"PASSWORD" default:"admin"`
	// AuthDisabled is a development-only bypass of the Basic Auth check.
	AuthDisabled bool `yaml:"auth_disabled" json:"auth_disabled" env:"AUTH_DISABLED"`
	TLS          TLS  `yaml:"tls" json:"tls" envPrefix:"TLS_"`
}

func (cfg AdminConfig) Validate() error {
	if cfg.IsEnabled() && !cfg.AuthDisabled && cfg.Password == "" {
		return errors.New("admin password must not be empty")
	}
	return nil
}

func (cfg AdminConfig) IsEnabled() bool {
	if cfg.Listen == "" || cfg.Listen == "off" {
		return false
	}
	return true
}
