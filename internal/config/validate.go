package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.WriteRateLimit <= 0 {
		return fmt.Errorf("server.write_rate_limit must be > 0 (got %d)", c.Server.WriteRateLimit)
	}
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}
	if _, err := url.Parse(c.Auth.LoginURL); err != nil || c.Auth.LoginURL == "" {
		return fmt.Errorf("auth.login_url must be a valid URL (got %q)", c.Auth.LoginURL)
	}

	if err := c.Cache.validate(); err != nil {
		return fmt.Errorf("cache: %w", err)
	}

	if c.Feed.PageSize < 1 || c.Feed.PageSize > 100 {
		return fmt.Errorf("feed.page_size must be in [1, 100] (got %d)", c.Feed.PageSize)
	}

	if strings.TrimSpace(c.Media.Dir) == "" {
		return fmt.Errorf("media.dir must not be empty")
	}
	if c.Media.MaxUploadBytes <= 0 {
		return fmt.Errorf("media.max_upload_bytes must be > 0 (got %d)", c.Media.MaxUploadBytes)
	}

	return nil
}

func (c *CacheConfig) validate() error {
	switch strings.ToLower(c.Backend) {
	case CacheBackendMemory:
		if c.MaxEntries <= 0 {
			return fmt.Errorf("max_entries must be > 0 (got %d)", c.MaxEntries)
		}
	case CacheBackendRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("redis_addr is required for the redis backend")
		}
		if c.RedisDB < 0 {
			return fmt.Errorf("redis_db must be >= 0 (got %d)", c.RedisDB)
		}
	default:
		return fmt.Errorf("unknown backend %q (want %q or %q)", c.Backend, CacheBackendMemory, CacheBackendRedis)
	}

	if c.TTL <= 0 {
		return fmt.Errorf("ttl must be > 0 (got %v)", c.TTL)
	}
	return nil
}
