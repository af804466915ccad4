package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

// validateConfig validates the loaded configuration values
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := validateDatabaseConfig(&config.Database); err != nil {
		return fmt.Errorf("database config validation failed: %w", err)
	}

	if err := validateFeedConfig(&config.Feed); err != nil {
		return fmt.Errorf("feed config validation failed: %w", err)
	}

	if err := validateSearchConfig(&config.Search); err != nil {
		return fmt.Errorf("search config validation failed: %w", err)
	}

	if err := validateRedisConfig(&config.Redis); err != nil {
		return fmt.Errorf("redis config validation failed: %w", err)
	}

	if err := validateLoggingConfig(&config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	if err := validateOTelConfig(&config.OTel); err != nil {
		return fmt.Errorf("otel config validation failed: %w", err)
	}

	return nil
}

func validateServerConfig(config *ServerConfig) error {
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}

	if config.ReadTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got ReadTimeout: %v", config.ReadTimeout)
	}

	if config.WriteTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got WriteTimeout: %v", config.WriteTimeout)
	}

	if config.IdleTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got IdleTimeout: %v", config.IdleTimeout)
	}

	if config.RequestTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got RequestTimeout: %v", config.RequestTimeout)
	}

	return nil
}

func validateDatabaseConfig(config *DatabaseConfig) error {
	if config.Host == "" {
		return fmt.Errorf("host is required")
	}

	if config.MaxConnections < 1 {
		return fmt.Errorf("max connections must be at least 1, got %d", config.MaxConnections)
	}

	if config.MinConnections < 0 || config.MinConnections > config.MaxConnections {
		return fmt.Errorf("min connections must be between 0 and %d, got %d", config.MaxConnections, config.MinConnections)
	}

	if config.ConnectionTimeout <= 0 {
		return fmt.Errorf("connection timeout must be positive, got %v", config.ConnectionTimeout)
	}

	return nil
}

func validateFeedConfig(config *FeedConfig) error {
	if config.MaxPageSize < 1 {
		return fmt.Errorf("max page size must be at least 1, got %d", config.MaxPageSize)
	}

	if config.DefaultPageSize < 1 || config.DefaultPageSize > config.MaxPageSize {
		return fmt.Errorf("default page size must be between 1 and %d, got %d", config.MaxPageSize, config.DefaultPageSize)
	}

	return nil
}

func validateSearchConfig(config *SearchConfig) error {
	switch config.Backend {
	case "indexer":
		if _, err := url.ParseRequestURI(config.IndexerURL); err != nil {
			return fmt.Errorf("invalid search indexer URL %q: %w", config.IndexerURL, err)
		}
	case "meilisearch":
		if _, err := url.ParseRequestURI(config.MeilisearchHost); err != nil {
			return fmt.Errorf("invalid meilisearch host %q: %w", config.MeilisearchHost, err)
		}
		if config.MeilisearchIndex == "" {
			return fmt.Errorf("meilisearch index is required")
		}
	default:
		return fmt.Errorf("search backend must be indexer or meilisearch, got %q", config.Backend)
	}

	if config.Timeout <= 0 {
		return fmt.Errorf("search timeout must be positive, got %v", config.Timeout)
	}

	if config.SuggestionLimit < 1 {
		return fmt.Errorf("suggestion limit must be at least 1, got %d", config.SuggestionLimit)
	}

	if config.MaxQueryLength < 1 {
		return fmt.Errorf("max query length must be at least 1, got %d", config.MaxQueryLength)
	}

	if config.RateLimitRPS <= 0 {
		return fmt.Errorf("search rate limit must be positive, got %v", config.RateLimitRPS)
	}

	if config.BackendRPS < 0 {
		return fmt.Errorf("search backend rate must not be negative, got %v", config.BackendRPS)
	}

	return nil
}

func validateRedisConfig(config *RedisConfig) error {
	if !config.Enabled {
		return nil
	}

	if config.URL == "" {
		return fmt.Errorf("redis URL is required when redis is enabled")
	}

	if config.ReportStream == "" {
		return fmt.Errorf("report stream name is required when redis is enabled")
	}

	return nil
}

func validateLoggingConfig(config *LoggingConfig) error {
	switch strings.ToLower(config.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level: %s", config.Level)
	}

	switch strings.ToLower(config.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format: %s", config.Format)
	}

	return nil
}

func validateOTelConfig(config *OTelConfig) error {
	if config.SampleRatio < 0 || config.SampleRatio > 1 {
		return fmt.Errorf("sample ratio must be between 0 and 1, got %v", config.SampleRatio)
	}

	if config.Enabled && config.Endpoint == "" {
		return fmt.Errorf("endpoint is required when otel is enabled")
	}

	return nil
}

// DSN builds the postgres URL handed to pgxpool. Pool sizing is applied on
// the parsed pool config instead.
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return u.String()
}
