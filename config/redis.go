package config

// RedisConfig contains the Redis connection backing the session token store.
// When Addr is empty the portal falls back to an in-memory session backend,
// which is only acceptable in development.
type RedisConfig struct {
	Addr     string `env:"ADDR"     envDefault:""`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`

	// KeyPrefix namespaces the session keys, for deployments sharing a Redis.
	KeyPrefix string `env:"KEY_PREFIX" envDefault:""`
}

// Enabled reports whether a Redis backend is configured.
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}
