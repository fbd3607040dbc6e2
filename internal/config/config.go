package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const defaultJWTSecret = "default_secret_key"

type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	Env      string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	// json or console
	LogEncoding string `envconfig:"LOG_ENCODING" default:"json"`

	DBPath string `envconfig:"DB_PATH" default:"./lawhub.db"`

	JWTSecret string        `envconfig:"JWT_SECRET_KEY" default:"default_secret_key"`
	TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"24h"`

	// Comma separated. Empty allows every origin.
	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS"`

	PageTTL            time.Duration `envconfig:"PAGE_TTL" default:"30m"`
	ChatReplyDelay     time.Duration `envconfig:"CHAT_REPLY_DELAY" default:"2s"`
	AnalysisDelay      time.Duration `envconfig:"ANALYSIS_DELAY" default:"3s"`
	TranscriptionDelay time.Duration `envconfig:"TRANSCRIPTION_DELAY" default:"3s"`
	LocateDelay        time.Duration `envconfig:"LOCATE_DELAY" default:"2s"`

	RateLimitPerSecond float64 `envconfig:"RATE_LIMIT_PER_SECOND" default:"20"`
	RateLimitBurst     int     `envconfig:"RATE_LIMIT_BURST" default:"40"`

	MetricsEnabled bool `envconfig:"METRICS_ENABLED" default:"true"`
}

// Load reads an optional .env file, then the process environment.
func Load() (*Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("Load(): failed to process environment: %w", err)
	}
	return &cfg, nil
}

// AllowedOrigins splits CORSAllowedOrigins. Nil means allow all.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// UsesDefaultSecret reports whether JWT_SECRET_KEY was left unset.
func (c *Config) UsesDefaultSecret() bool {
	return c.JWTSecret == defaultJWTSecret
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
