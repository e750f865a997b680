package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	SRS       SRSConfig       `yaml:"srs"`
	Study     StudyConfig     `yaml:"study"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"  validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"  validate:"gt=0"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"  validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"  validate:"gt=0"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true" validate:"required"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"    validate:"min=1"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"     validate:"min=0,ltefield=MaxConns"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ConnectAttempts uint          `yaml:"connect_attempts"   env:"DATABASE_CONNECT_ATTEMPTS"   env-default:"5"     validate:"min=1,max=20"`
	ConnectDelay    time.Duration `yaml:"connect_delay"      env:"DATABASE_CONNECT_DELAY"      env-default:"500ms" validate:"gt=0"`
}

// AuthConfig holds bearer token settings. Tokens are issued elsewhere; the
// secret and issuer only need to match.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true" validate:"min=32"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"carden" validate:"required"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"    validate:"gt=0"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json" validate:"oneof=json text"`
}

// SRSConfig holds spaced-repetition parameters.
type SRSConfig struct {
	DefaultEaseFactor  float64       `yaml:"default_ease_factor"   env:"SRS_DEFAULT_EASE"    env-default:"2.5"   validate:"gtefield=MinEaseFactor"`
	MinEaseFactor      float64       `yaml:"min_ease_factor"       env:"SRS_MIN_EASE"        env-default:"1.3"   validate:"gte=1.3"`
	MaxIntervalDays    int           `yaml:"max_interval_days"     env:"SRS_MAX_INTERVAL"    env-default:"36500" validate:"min=1"`
	DueBatchSize       int           `yaml:"due_batch_size"        env:"SRS_DUE_BATCH_SIZE"  env-default:"20"    validate:"min=1,max=500"`
	MaxCardsPerSession int           `yaml:"max_cards_per_session" env:"SRS_MAX_CARDS"       env-default:"0"     validate:"min=0"`
	ImminentWindow     time.Duration `yaml:"imminent_window"       env:"SRS_IMMINENT_WINDOW" env-default:"5m"    validate:"min=0"`
}

// StudyConfig holds settings for local sessions and the session registry.
type StudyConfig struct {
	ShuffleByDefault bool          `yaml:"shuffle_by_default" env:"STUDY_SHUFFLE_BY_DEFAULT" env-default:"true"`
	DeckPageSize     int           `yaml:"deck_page_size"     env:"STUDY_DECK_PAGE_SIZE"     env-default:"100" validate:"min=1,max=1000"`
	SessionTTL       time.Duration `yaml:"session_ttl"        env:"STUDY_SESSION_TTL"        env-default:"2h"  validate:"gt=0"`
	JanitorInterval  time.Duration `yaml:"janitor_interval"   env:"STUDY_JANITOR_INTERVAL"   env-default:"5m"  validate:"gt=0"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400" validate:"min=0"`
}

// Origins splits AllowedOrigins on commas.
func (c CORSConfig) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// RateLimitConfig holds per-IP request limits for the API.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATELIMIT_ENABLED"          env-default:"true"`
	RequestsPerMin  int           `yaml:"requests_per_min" env:"RATELIMIT_REQUESTS_PER_MIN" env-default:"120" validate:"min=1"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATELIMIT_CLEANUP_INTERVAL" env-default:"5m"  validate:"gt=0"`
}
