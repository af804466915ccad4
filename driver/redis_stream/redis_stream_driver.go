// Package redis_stream publishes post report notifications to a Redis Stream.
package redis_stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"feedengine/domain"

	"github.com/redis/go-redis/v9"
)

// Publisher appends report events to one stream. A nil client makes every
// publish a no-op.
type Publisher struct {
	client *redis.Client
	stream string
}

// NewPublisherWithURL creates a publisher from a redis:// URL.
func NewPublisherWithURL(url, stream string) (*Publisher, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return NewPublisher(redis.NewClient(opts), stream), nil
}

func NewPublisher(client *redis.Client, stream string) *Publisher {
	return &Publisher{client: client, stream: stream}
}

// NewDisabledPublisher returns a publisher that drops every event.
func NewDisabledPublisher() *Publisher {
	return &Publisher{}
}

func (p *Publisher) IsEnabled() bool {
	return p != nil && p.client != nil
}

// PublishPostReported appends the event and returns the stream entry ID.
func (p *Publisher) PublishPostReported(ctx context.Context, event domain.PostReportedEvent) (string, error) {
	if !p.IsEnabled() {
		return "", nil
	}
	if event.PostID == "" {
		return "", errors.New("event without post id")
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return "", fmt.Errorf("marshal report event: %w", err)
	}

	return p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]interface{}{
			"event_type": "PostReported",
			"post_id":    event.PostID,
			"created_at": event.ReportedAt.UTC().Format(time.RFC3339Nano),
			"payload":    string(payload),
		},
	}).Result()
}

func (p *Publisher) Ping(ctx context.Context) error {
	if !p.IsEnabled() {
		return nil
	}
	return p.client.Ping(ctx).Err()
}

func (p *Publisher) Close() error {
	if !p.IsEnabled() {
		return nil
	}
	return p.client.Close()
}
