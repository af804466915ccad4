package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig   `json:"server"`
	Database DatabaseConfig `json:"database"`
	Feed     FeedConfig     `json:"feed"`
	Search   SearchConfig   `json:"search"`
	Redis    RedisConfig    `json:"redis"`
	Logging  LoggingConfig  `json:"logging"`
	OTel     OTelConfig     `json:"otel"`
}

type ServerConfig struct {
	Port            int           `json:"port" env:"SERVER_PORT" default:"9000"`
	ReadTimeout     time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout    time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout     time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
	RequestTimeout  time.Duration `json:"request_timeout" env:"SERVER_REQUEST_TIMEOUT" default:"15s"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type DatabaseConfig struct {
	Host              string        `json:"host" env:"DB_HOST" default:"localhost"`
	Port              int           `json:"port" env:"DB_PORT" default:"5432"`
	User              string        `json:"user" env:"DB_USER" default:"feedengine"`
	Password          string        `json:"-" env:"DB_PASSWORD"`
	PasswordFile      string        `json:"-" env:"DB_PASSWORD_FILE"`
	Name              string        `json:"name" env:"DB_NAME" default:"feedengine"`
	SSLMode           string        `json:"ssl_mode" env:"DB_SSL_MODE" default:"disable"`
	MaxConnections    int           `json:"max_connections" env:"DB_MAX_CONNECTIONS" default:"25"`
	MinConnections    int           `json:"min_connections" env:"DB_MIN_CONNECTIONS" default:"2"`
	ConnectionTimeout time.Duration `json:"connection_timeout" env:"DB_CONNECTION_TIMEOUT" default:"30s"`
}

type FeedConfig struct {
	DefaultPageSize int `json:"default_page_size" env:"FEED_DEFAULT_PAGE_SIZE" default:"20"`
	MaxPageSize     int `json:"max_page_size" env:"FEED_MAX_PAGE_SIZE" default:"100"`
}

type SearchConfig struct {
	// Backend selects the search collaborator: "indexer" or "meilisearch".
	Backend           string        `json:"backend" env:"SEARCH_BACKEND" default:"indexer"`
	IndexerURL        string        `json:"indexer_url" env:"SEARCH_INDEXER_URL" default:"http://search-indexer:9300"`
	MeilisearchHost   string        `json:"meilisearch_host" env:"MEILISEARCH_HOST" default:"http://meilisearch:7700"`
	MeilisearchAPIKey string        `json:"-" env:"MEILISEARCH_API_KEY"`
	MeilisearchIndex  string        `json:"meilisearch_index" env:"MEILISEARCH_INDEX" default:"posts"`
	Timeout           time.Duration `json:"timeout" env:"SEARCH_TIMEOUT" default:"5s"`
	SuggestionLimit   int           `json:"suggestion_limit" env:"SEARCH_SUGGESTION_LIMIT" default:"5"`
	MaxQueryLength    int           `json:"max_query_length" env:"SEARCH_MAX_QUERY_LENGTH" default:"200"`
	RateLimitRPS      float64       `json:"rate_limit_rps" env:"SEARCH_RATE_LIMIT_RPS" default:"5"`
	RateLimitBurst    int           `json:"rate_limit_burst" env:"SEARCH_RATE_LIMIT_BURST" default:"10"`
	// BackendRPS caps calls to the search backend. Zero disables the cap.
	BackendRPS        float64       `json:"backend_rps" env:"SEARCH_BACKEND_RPS" default:"50"`
	BackendBurst      int           `json:"backend_burst" env:"SEARCH_BACKEND_BURST" default:"100"`
}

type RedisConfig struct {
	Enabled      bool   `json:"enabled" env:"REDIS_ENABLED" default:"false"`
	URL          string `json:"-" env:"REDIS_URL" default:"redis://localhost:6379/0"`
	ReportStream string `json:"report_stream" env:"REDIS_REPORT_STREAM" default:"post:reported"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

type OTelConfig struct {
	Enabled        bool    `json:"enabled" env:"OTEL_ENABLED" default:"false"`
	Endpoint       string  `json:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"http://localhost:4318"`
	ServiceName    string  `json:"service_name" env:"OTEL_SERVICE_NAME" default:"feedengine"`
	ServiceVersion string  `json:"service_version" env:"SERVICE_VERSION" default:"0.0.0"`
	Environment    string  `json:"environment" env:"DEPLOYMENT_ENV" default:"development"`
	SampleRatio    float64 `json:"sample_ratio" env:"OTEL_TRACE_SAMPLE_RATIO" default:"0.1"`
}

// NewConfig creates a new configuration by loading from environment variables
// with fallback to default values
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	// Docker Secrets support
	if config.Database.PasswordFile != "" {
		content, err := os.ReadFile(config.Database.PasswordFile)
		if err == nil {
			config.Database.Password = strings.TrimSpace(string(content))
		}
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}
