package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	switch c.Storage.Driver {
	case DriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the postgres driver")
		}
		if c.Database.MinConns > c.Database.MaxConns {
			return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
		}
		if c.Database.ConnectTimeout <= 0 {
			return fmt.Errorf("database.connect_timeout must be > 0 (got %s)", c.Database.ConnectTimeout)
		}
	case DriverSQLite:
		if strings.TrimSpace(c.SQLite.Path) == "" {
			return fmt.Errorf("sqlite.path is required for the sqlite driver")
		}
	}

	if err := c.Moderation.validate(); err != nil {
		return fmt.Errorf("moderation: %w", err)
	}

	if c.Review.ActivityLimit <= 0 {
		return fmt.Errorf("review.activity_limit must be > 0 (got %d)", c.Review.ActivityLimit)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if c.RateLimit.Enabled && c.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("rate_limit.per_minute must be > 0 (got %d)", c.RateLimit.PerMinute)
	}

	return nil
}

func (s *StorageConfig) validate() error {
	switch s.Driver {
	case DriverMemory, DriverPostgres, DriverSQLite:
		return nil
	}
	return fmt.Errorf("driver must be one of memory, postgres, sqlite (got %q)", s.Driver)
}

func (m *ModerationConfig) validate() error {
	if m.Mode != "strict" && m.Mode != "casual" {
		return fmt.Errorf("mode must be strict or casual (got %q)", m.Mode)
	}
	if m.ConfidenceThreshold < 50 || m.ConfidenceThreshold > 99 {
		return fmt.Errorf("confidence_threshold must be within 50..99 (got %d)", m.ConfidenceThreshold)
	}
	if m.AnalyzeDelay < 0 {
		return fmt.Errorf("analyze_delay must be >= 0 (got %s)", m.AnalyzeDelay)
	}
	if m.MaxTextLength <= 0 {
		return fmt.Errorf("max_text_length must be > 0 (got %d)", m.MaxTextLength)
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level must be one of debug, info, warn, error (got %q)", l.Level)
	}
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	return nil
}
