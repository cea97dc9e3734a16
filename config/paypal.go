package config

import (
	"fmt"
	"slices"
)

type PayPalEnvironment string

const (
	PayPalSandbox PayPalEnvironment = "sandbox"
	PayPalLive    PayPalEnvironment = "live"
)

var paypalBaseURLs = map[PayPalEnvironment]string{
	PayPalSandbox: "https://api-m.sandbox.paypal.com",
	PayPalLive:    "https://api-m.paypal.com",
}

type PayPalConfig struct {
	Environment  PayPalEnvironment `yaml:"environment" json:"environment" env:"ENVIRONMENT" default:"sandbox"`
	ClientID     string            `yaml:"client_id" json:"client_id" env:"CLIENT_ID"`
	ClientSecret Password          `yaml:"client_secret" json:"client_secret" env:"CLIENT_SECRET"`
	BrandName    string            `yaml:"brand_name" json:"brand_name" env:"BRAND_NAME" default:"Allan Sendagi Books"`
	// BaseURL overrides the environment-derived API origin (used in tests).
	BaseURL string `yaml:"base_url" json:"base_url" env:"BASE_URL"`
}

func (cfg PayPalConfig) Validate() error {
	if !slices.Contains([]PayPalEnvironment{PayPalSandbox, PayPalLive}, cfg.Environment) {
		return fmt.Errorf("invalid environment: %s", cfg.Environment)
	}
	return nil
}

func (cfg PayPalConfig) IsConfigured() bool {
	return cfg.ClientID != "" && cfg.ClientSecret != ""
}

func (cfg PayPalConfig) GetBaseURL() string {
	if cfg.BaseURL != "" {
		return cfg.BaseURL
	}
	return paypalBaseURLs[cfg.Environment]
}
