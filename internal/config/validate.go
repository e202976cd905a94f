package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	c.Store.Backend = strings.ToLower(strings.TrimSpace(c.Store.Backend))
	switch c.Store.Backend {
	case BackendPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the postgres backend")
		}
	case BackendDynamoDB:
		if err := c.DynamoDB.validate(); err != nil {
			return fmt.Errorf("dynamodb: %w", err)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("store.backend must be one of postgres, dynamodb, memory (got %q)", c.Store.Backend)
	}

	if c.Events.Enabled && c.Events.AMQPURL == "" {
		return fmt.Errorf("events.amqp_url is required when events are enabled")
	}

	if c.Feed.MaxLimit <= 0 {
		return fmt.Errorf("feed.max_limit must be > 0 (got %d)", c.Feed.MaxLimit)
	}
	if c.Feed.DefaultLimit <= 0 || c.Feed.DefaultLimit > c.Feed.MaxLimit {
		return fmt.Errorf("feed.default_limit must be in 1..%d (got %d)", c.Feed.MaxLimit, c.Feed.DefaultLimit)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerSecond <= 0 {
			return fmt.Errorf("rate_limit.requests_per_second must be > 0 (got %v)", c.RateLimit.RequestsPerSecond)
		}
		if c.RateLimit.Burst <= 0 {
			return fmt.Errorf("rate_limit.burst must be > 0 (got %d)", c.RateLimit.Burst)
		}
	}

	return nil
}

func (d *DynamoDBConfig) validate() error {
	if d.Region == "" {
		return fmt.Errorf("region is required")
	}
	for name, table := range map[string]string{
		"items_table": d.ItemsTable,
		"likes_table": d.LikesTable,
		"match_table": d.MatchTable,
	} {
		if table == "" {
			return fmt.Errorf("%s is required", name)
		}
	}
	return nil
}
