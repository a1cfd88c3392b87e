package config

import (
	"runtime"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	Match    MatchConfig    `yaml:"match"`
	Feedback FeedbackConfig `yaml:"feedback"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// SearchRateLimit caps match searches per client per minute. 0 disables it.
	SearchRateLimit int `yaml:"search_rate_limit" env:"SERVER_SEARCH_RATE_LIMIT" env-default:"600"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// AuthConfig holds access token settings. Tokens are issued by the surrounding
// system; this service only validates them to attribute feedback and edits.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"translation-tracker"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// MatchConfig holds ranking defaults and resource bounds for TM search.
type MatchConfig struct {
	SourceLanguage   string `yaml:"source_language"   env:"MATCH_SOURCE_LANGUAGE"   env-default:"ko"`
	TargetLanguage   string `yaml:"target_language"   env:"MATCH_TARGET_LANGUAGE"   env-default:"en"`
	DefaultThreshold int    `yaml:"default_threshold" env:"MATCH_DEFAULT_THRESHOLD" env-default:"70"`
	DefaultLimit     int    `yaml:"default_limit"     env:"MATCH_DEFAULT_LIMIT"     env-default:"10"`
	MaxLimit         int    `yaml:"max_limit"         env:"MATCH_MAX_LIMIT"         env-default:"100"`
	EventBoost       int    `yaml:"event_boost"       env:"MATCH_EVENT_BOOST"       env-default:"10"`
	TopicBoost       int    `yaml:"topic_boost"       env:"MATCH_TOPIC_BOOST"       env-default:"10"`
	TranslatorBoost  int    `yaml:"translator_boost"  env:"MATCH_TRANSLATOR_BOOST"  env-default:"5"`
	MaxCandidates    int    `yaml:"max_candidates"    env:"MATCH_MAX_CANDIDATES"    env-default:"5000"`
	MaxSourceLength  int    `yaml:"max_source_length" env:"MATCH_MAX_SOURCE_LENGTH" env-default:"2000"`
	Workers          int    `yaml:"workers"           env:"MATCH_WORKERS"           env-default:"0"`
	// StrictContext also applies event/topic/translator as hard filters.
	StrictContext bool `yaml:"strict_context" env:"MATCH_STRICT_CONTEXT" env-default:"false"`
}

// WorkerCount returns the configured scoring parallelism, defaulting to GOMAXPROCS.
func (c MatchConfig) WorkerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// FeedbackConfig holds feedback aggregation settings.
type FeedbackConfig struct {
	// RatingWindow is the number of most recent ratings averaged into
	// avg_rating. 0 averages every rating ever recorded.
	RatingWindow int `yaml:"rating_window" env:"FEEDBACK_RATING_WINDOW" env-default:"0"`
}
