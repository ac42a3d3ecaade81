package config

import (
	"fmt"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Storage    StorageConfig    `yaml:"storage"`
	Database   DatabaseConfig   `yaml:"database"`
	SQLite     SQLiteConfig     `yaml:"sqlite"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Moderation ModerationConfig `yaml:"moderation"`
	Review     ReviewConfig     `yaml:"review"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
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
}

// Addr returns the listen address in host:port form.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// StorageConfig selects the dictionary backend and its seed fixture.
type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory"`
	// SeedPath points to a JSON fixture. Empty means the embedded default.
	SeedPath string `yaml:"seed_path" env:"STORAGE_SEED_PATH"`
	// Seed disables initial seeding when false.
	Seed bool `yaml:"seed" env:"STORAGE_SEED" env-default:"true"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout"    env:"DATABASE_CONNECT_TIMEOUT"    env-default:"5s"`
}

// SQLiteConfig holds the embedded database settings.
type SQLiteConfig struct {
	Path string `yaml:"path" env:"SQLITE_PATH" env-default:"moderation.db"`
}

// DictionaryConfig holds dictionary service settings.
type DictionaryConfig struct {
	// ActiveOnly restricts classification to terms with status "active".
	ActiveOnly bool `yaml:"active_only" env:"DICT_ACTIVE_ONLY" env-default:"true"`
}

// ModerationConfig holds classifier and moderation defaults.
type ModerationConfig struct {
	Mode                string        `yaml:"mode"                 env:"MODERATION_MODE"                 env-default:"strict"`
	AutoModeration      bool          `yaml:"auto_moderation"      env:"MODERATION_AUTO"                 env-default:"true"`
	RealTimeProcessing  bool          `yaml:"real_time_processing" env:"MODERATION_REAL_TIME"            env-default:"true"`
	Notifications       bool          `yaml:"notifications"        env:"MODERATION_NOTIFICATIONS"        env-default:"true"`
	ConfidenceThreshold int           `yaml:"confidence_threshold" env:"MODERATION_CONFIDENCE_THRESHOLD" env-default:"85"`
	AnalyzeDelay        time.Duration `yaml:"analyze_delay"        env:"MODERATION_ANALYZE_DELAY"        env-default:"1200ms"`
	MaxTextLength       int           `yaml:"max_text_length"      env:"MODERATION_MAX_TEXT_LENGTH"      env-default:"10000"`
}

// ReviewConfig holds review queue and activity feed settings.
type ReviewConfig struct {
	ActivityLimit int `yaml:"activity_limit" env:"REVIEW_ACTIVITY_LIMIT" env-default:"50"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
	// File, when set, receives a JSON copy of every record.
	File string `yaml:"file" env:"LOG_FILE"`
}

// RateLimitConfig holds per-IP rate limiting settings.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	PerMinute       int           `yaml:"per_minute"       env:"RATE_LIMIT_PER_MINUTE"       env-default:"120"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}
