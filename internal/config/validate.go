package config

import (
	"fmt"
	"net/mail"
	"slices"
	"strings"
)

var (
	drivers    = []string{DriverMemory, DriverFile, DriverBolt, DriverPostgres}
	locales    = []string{"ar", "en"}
	logLevels  = []string{"debug", "info", "warn", "warning", "error"}
	logFormats = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}
	if _, err := mail.ParseAddress(c.Auth.AdminEmail); err != nil {
		return fmt.Errorf("auth.admin_email %q is not a valid address", c.Auth.AdminEmail)
	}
	if c.Auth.AdminPassword == "" {
		return fmt.Errorf("auth.admin_password must not be empty")
	}
	if c.Auth.LoginRateLimit <= 0 {
		return fmt.Errorf("auth.login_rate_limit must be > 0 (got %d)", c.Auth.LoginRateLimit)
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if c.Storage.Driver == DriverPostgres && c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required for the postgres storage driver")
	}

	if !slices.Contains(locales, strings.ToLower(c.Export.Locale)) {
		return fmt.Errorf("export.locale must be one of %v (got %q)", locales, c.Export.Locale)
	}

	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("log.level must be one of %v (got %q)", logLevels, c.Log.Level)
	}
	if !slices.Contains(logFormats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("log.format must be one of %v (got %q)", logFormats, c.Log.Format)
	}

	return nil
}

func (s *StorageConfig) validate() error {
	s.Driver = strings.ToLower(strings.TrimSpace(s.Driver))
	if !slices.Contains(drivers, s.Driver) {
		return fmt.Errorf("driver must be one of %v (got %q)", drivers, s.Driver)
	}
	if s.Driver == DriverFile && s.Dir == "" {
		return fmt.Errorf("dir is required for the file driver")
	}
	if s.Driver == DriverBolt && s.BoltPath == "" {
		return fmt.Errorf("bolt_path is required for the bolt driver")
	}
	return nil
}
