package config

type TLS struct {
	Cert string `yaml:"cert" json:"cert" env:"CERT"`
	Key  string `yaml:"key" json:"key" env:"KEY"`
}

func (cfg TLS) Enabled() bool {
	return cfg.Cert != "" && cfg.Key != ""
}

// ServerConfig configures the public site API server.
type ServerConfig struct {
	Listen  string `yaml:"listen" json:"listen" env:"LISTEN" default:"0.0.0.0:9600"`
	SiteURL string `yaml:"site_url" json:"site_url" env:"SITE_URL" default:"http://localhost:3000"`
	TLS     TLS    `yaml:"tls" json:"tls" envPrefix:"TLS_"`
}

func (cfg ServerConfig) Validate() error {
	return nil
}

func (cfg ServerConfig) IsEnabled() bool {
	if cfg.Listen == "" || cfg.Listen == "off" {
		return false
	}
	return true
}
