package config

import (
	"log"
	"os"

	"github.com/spf13/viper"

	"stonequote/internal/domain"
)

type Config struct {
	Server struct {
		Port    string `mapstructure:"port"`
		DBDSN   string `mapstructure:"db_dsn"`
		LogFile string `mapstructure:"log_file"`
	} `mapstructure:"server"`

	Company struct {
		Owner   string `mapstructure:"owner"`
		Name    string `mapstructure:"name"`
		Tagline string `mapstructure:"tagline"`
		Phone   string `mapstructure:"phone"`
		Website string `mapstructure:"website"`
		Email   string `mapstructure:"email"`
		LogoURL string `mapstructure:"logo_url"`
	} `mapstructure:"company"`
}

// Load reads config.yaml (path overridable via CONFIG_FILE) with APP_* env
// overrides. A missing file falls back to defaults so a clean checkout runs.
func Load() Config {
	v := viper.New()
	v.SetConfigFile(envOr("CONFIG_FILE", "./config.yaml"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.db_dsn", "stonequote.db")
	v.SetDefault("server.log_file", "./stonequote.log")
	v.SetDefault("company.owner", "Ric Bermudez")
	v.SetDefault("company.name", "Stone By Ric")
	v.SetDefault("company.tagline", "MASONRY WITH ACCOUNTABILITY")
	v.SetDefault("company.phone", "2032165696")
	v.SetDefault("company.website", "STONEBYRIC.COM")
	v.SetDefault("company.email", "")
	v.SetDefault("company.logo_url", "")

	if err := v.ReadInConfig(); err != nil {
		log.Printf("[config] %v (using defaults)", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		log.Fatalf("[config] unmarshal: %v", err)
	}
	log.Printf("[config] PORT=%s DB_DSN=%s COMPANY=%q", c.Server.Port, c.Server.DBDSN, c.Company.Name)
	return c
}

// Identity returns the immutable company block handed to the renderer and
// composer.
func (c Config) Identity() domain.Company {
	return domain.Company{
		Owner:   c.Company.Owner,
		Name:    c.Company.Name,
		Tagline: c.Company.Tagline,
		Phone:   c.Company.Phone,
		Website: c.Company.Website,
		Email:   c.Company.Email,
		LogoURL: c.Company.LogoURL,
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
