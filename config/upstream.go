package config

import (
	"strings"
	"time"

	"github.com/eventdesk/eventdesk/internal/directory"
)

// UpstreamConfig contains the upstream events API configuration.
type UpstreamConfig struct {
	// BaseURL is the upstream API root, e.g. "https://api.example.com".
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:3000"`

	// Timeout bounds each upstream call.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`

	// LoginPath is where credentials are exchanged for a bearer token.
	LoginPath string `env:"LOGIN_PATH" envDefault:"/auth/login"`

	// RegisterPath is where registration is posted. The default equals the
	// login path on purpose: that is how the upstream has always been
	// called, and the mismatch is tracked as a known discrepancy. Override
	// via env or change the default once the correct endpoint is confirmed.
	RegisterPath string `env:"REGISTER_PATH" envDefault:"/auth/login"`
}

// Sanitize applies guardrails to upstream configuration values.
func (u *UpstreamConfig) Sanitize() {
	u.BaseURL = strings.TrimRight(strings.TrimSpace(u.BaseURL), "/")
	if u.Timeout <= 0 {
		u.Timeout = 10 * time.Second
	}
	if u.LoginPath == "" {
		u.LoginPath = directory.DefaultLoginPath
	}
	if u.RegisterPath == "" {
		u.RegisterPath = directory.DefaultRegisterPath
	}
}
