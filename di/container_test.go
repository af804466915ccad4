package di

import (
	"log/slog"
	"testing"
	"time"

	"feedengine/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Feed: config.FeedConfig{DefaultPageSize: 20, MaxPageSize: 100},
		Search: config.SearchConfig{
			Backend:          SearchBackendIndexer,
			IndexerURL:       "http://search-indexer:9300",
			MeilisearchHost:  "http://meilisearch:7700",
			MeilisearchIndex: "posts",
			Timeout:          time.Second,
			SuggestionLimit:  5,
			MaxQueryLength:   200,
			RateLimitRPS:     5,
			RateLimitBurst:   10,
			BackendRPS:       50,
			BackendBurst:     100,
		},
		Redis: config.RedisConfig{ReportStream: "post:reported"},
	}
}

func TestNewApplicationComponents(t *testing.T) {
	mr := miniredis.RunT(t)

	tests := []struct {
		name          string
		mutate        func(cfg *config.Config)
		wantErr       bool
		wantPublisher bool
	}{
		{name: "indexer backend"},
		{name: "meilisearch backend", mutate: func(cfg *config.Config) { cfg.Search.Backend = SearchBackendMeilisearch }},
		{name: "backend rate cap disabled", mutate: func(cfg *config.Config) { cfg.Search.BackendRPS = 0 }},
		{
			name: "redis enabled",
			mutate: func(cfg *config.Config) {
				cfg.Redis.Enabled = true
				cfg.Redis.URL = "redis://" + mr.Addr()
			},
			wantPublisher: true,
		},
		{
			name: "bad redis url",
			mutate: func(cfg *config.Config) {
				cfg.Redis.Enabled = true
				cfg.Redis.URL = "not a url"
			},
			wantErr: true,
		},
		{name: "unknown backend", mutate: func(cfg *config.Config) { cfg.Search.Backend = "elastic" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer pool.Close()

			cfg := testConfig()
			if tt.mutate != nil {
				tt.mutate(cfg)
			}

			container, err := NewApplicationComponents(pool, cfg, slog.Default())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer container.Publisher.Close()

			assert.NotNil(t, container.FetchFeedUsecase)
			assert.NotNil(t, container.SearchPostsUsecase)
			assert.NotNil(t, container.SearchSuggestionsUsecase)
			assert.NotNil(t, container.HidePostUsecase)
			assert.NotNil(t, container.SearchRateLimiter)
			assert.Equal(t, tt.wantPublisher, container.Publisher.IsEnabled())
		})
	}
}
