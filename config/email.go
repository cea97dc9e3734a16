package config

// EmailConfig configures the transactional email collaborator (Resend).
// Sends are best-effort: an empty api_key disables sending entirely.
type EmailConfig struct {
	BaseURL    string   `yaml:"base_url" json:"base_url" env:"BASE_URL" default:"https://api.resend.com"`
	APIKey     Password `yaml:"api_key" json:"api_key" env:"API_KEY"`
	AdminEmail string   `yaml:"admin_email" json:"admin_email" env:"ADMIN_EMAIL" default:"info@safehaven.world"`
	FromEmail  string   `yaml:"from_email" json:"from_email" env:"FROM_EMAIL" default:"no-reply@safehaven.world"`
}

func (cfg EmailConfig) Validate() error {
	return nil
}

func (cfg EmailConfig) IsEnabled() bool {
	return cfg.APIKey != ""
}
