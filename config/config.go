package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - http.go: HTTP server configuration
//   - upstream.go: Upstream events API configuration
//   - redis.go: Session backend configuration
//   - imaging.go: Thumbnail pipeline configuration
type AppConfig struct {
	// IsDev controls development mode behavior (debug logging, memory-backed
	// sessions when Redis is absent). Set DEV=true or NODE_ENV=development.
	IsDev bool `env:"DEV" envDefault:"false"`

	// HTTP server configuration
	HTTP HTTPConfig

	// Upstream events API configuration
	Upstream UpstreamConfig `envPrefix:"UPSTREAM_"`

	// Session backend configuration
	Redis RedisConfig `envPrefix:"REDIS_"`

	// Thumbnail pipeline configuration
	Imaging ImagingConfig `envPrefix:"IMAGING_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.HTTP.Sanitize()
	c.Upstream.Sanitize()
	c.Imaging.Sanitize()
	c.detectDevMode()
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
