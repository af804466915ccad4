package di

import (
	"fmt"
	"log/slog"

	"feedengine/config"
	"feedengine/driver/alt_db"
	"feedengine/driver/meilisearch_driver"
	"feedengine/driver/redis_stream"
	"feedengine/driver/search_indexer"
	"feedengine/gateway/feed_query_gateway"
	"feedengine/gateway/hidden_post_gateway"
	"feedengine/gateway/report_event_gateway"
	"feedengine/gateway/search_gateway"
	"feedengine/usecase/fetch_feed_usecase"
	"feedengine/usecase/hide_post_usecase"
	"feedengine/usecase/search_post_usecase"
	"feedengine/utils/rate_limiter"
)

const (
	SearchBackendIndexer     = "indexer"
	SearchBackendMeilisearch = "meilisearch"
)

type ApplicationComponents struct {
	FetchFeedUsecase         *fetch_feed_usecase.FetchFeedUsecase
	SearchPostsUsecase       *search_post_usecase.SearchPostsUsecase
	SearchSuggestionsUsecase *search_post_usecase.SearchSuggestionsUsecase
	HidePostUsecase          *hide_post_usecase.HidePostUsecase

	// SearchRateLimiter throttles inbound search requests per viewer.
	SearchRateLimiter *rate_limiter.KeyedRateLimiter
	Publisher         *redis_stream.Publisher
}

func NewApplicationComponents(pool alt_db.PgxIface, cfg *config.Config, logger *slog.Logger) (*ApplicationComponents, error) {
	searchDriver, err := newSearchDriver(cfg.Search)
	if err != nil {
		return nil, err
	}

	publisher := redis_stream.NewDisabledPublisher()
	if cfg.Redis.Enabled {
		publisher, err = redis_stream.NewPublisherWithURL(cfg.Redis.URL, cfg.Redis.ReportStream)
		if err != nil {
			return nil, fmt.Errorf("failed to create report publisher: %w", err)
		}
	}

	// Gateways
	feedQueryGateway := feed_query_gateway.NewFeedQueryGateway(pool)
	hiddenPostGateway := hidden_post_gateway.NewHiddenPostGateway(pool)
	reportEventGateway := report_event_gateway.NewReportEventGateway(publisher, logger)
	searchGateway := search_gateway.NewSearchGateway(searchDriver, cfg.Search.Backend)
	if cfg.Search.BackendRPS > 0 {
		searchGateway = search_gateway.NewSearchGatewayWithRateLimiter(
			searchDriver,
			cfg.Search.Backend,
			rate_limiter.NewKeyedRateLimiter(cfg.Search.BackendRPS, cfg.Search.BackendBurst),
		)
	}

	// Usecases
	fetchFeedUsecase := fetch_feed_usecase.NewFetchFeedUsecase(
		feedQueryGateway, cfg.Feed.DefaultPageSize, cfg.Feed.MaxPageSize)
	searchPostsUsecase := search_post_usecase.NewSearchPostsUsecase(
		searchGateway, feedQueryGateway, cfg.Feed.DefaultPageSize, cfg.Feed.MaxPageSize, cfg.Search.MaxQueryLength)
	searchSuggestionsUsecase := search_post_usecase.NewSearchSuggestionsUsecase(
		searchGateway, cfg.Search.SuggestionLimit, cfg.Search.MaxQueryLength)
	hidePostUsecase := hide_post_usecase.NewHidePostUsecase(hiddenPostGateway, reportEventGateway)

	return &ApplicationComponents{
		FetchFeedUsecase:         fetchFeedUsecase,
		SearchPostsUsecase:       searchPostsUsecase,
		SearchSuggestionsUsecase: searchSuggestionsUsecase,
		HidePostUsecase:          hidePostUsecase,
		SearchRateLimiter:        rate_limiter.NewKeyedRateLimiter(cfg.Search.RateLimitRPS, cfg.Search.RateLimitBurst),
		Publisher:                publisher,
	}, nil
}

func newSearchDriver(cfg config.SearchConfig) (search_gateway.SearchDriver, error) {
	switch cfg.Backend {
	case SearchBackendIndexer:
		return search_indexer.NewHTTPSearchIndexerDriver(cfg.IndexerURL, cfg.Timeout), nil
	case SearchBackendMeilisearch:
		client := meilisearch_driver.NewMeilisearchClient(cfg.MeilisearchHost, cfg.MeilisearchAPIKey)
		return meilisearch_driver.NewMeilisearchDriver(client, cfg.MeilisearchIndex), nil
	default:
		return nil, fmt.Errorf("unknown search backend %q", cfg.Backend)
	}
}
