package redis_stream

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"feedengine/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPublisher(t *testing.T) (*Publisher, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	p, err := NewPublisherWithURL("redis://"+mr.Addr()+"/0", "post:reported")
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })

	return p, mr
}

func TestPublisher_PublishPostReported(t *testing.T) {
	p, mr := setupPublisher(t)
	ctx := context.Background()

	reportedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	id, err := p.PublishPostReported(ctx, domain.PostReportedEvent{
		PostID:     "p1",
		ViewerID:   "v1",
		Reason:     domain.ReportReasonClickbait,
		ReportedAt: reportedAt,
	})
	require.NoError(t, err)
	assert.Contains(t, id, "-")

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	entries, err := client.XRange(ctx, "post:reported", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "p1", entries[0].Values["post_id"])
	assert.Equal(t, "PostReported", entries[0].Values["event_type"])

	var payload domain.PostReportedEvent
	require.NoError(t, json.Unmarshal([]byte(entries[0].Values["payload"].(string)), &payload))
	assert.Equal(t, "v1", payload.ViewerID)
	assert.Equal(t, domain.ReportReasonClickbait, payload.Reason)
	assert.True(t, reportedAt.Equal(payload.ReportedAt))
}

func TestPublisher_RejectsEventWithoutPost(t *testing.T) {
	p, _ := setupPublisher(t)

	_, err := p.PublishPostReported(context.Background(), domain.PostReportedEvent{ViewerID: "v1"})
	require.Error(t, err)
}

func TestPublisher_Disabled(t *testing.T) {
	p := NewDisabledPublisher()

	assert.False(t, p.IsEnabled())
	id, err := p.PublishPostReported(context.Background(), domain.PostReportedEvent{PostID: "p1"})
	require.NoError(t, err)
	assert.Empty(t, id)
	assert.NoError(t, p.Ping(context.Background()))
	assert.NoError(t, p.Close())
}

func TestPublisher_ServerDown(t *testing.T) {
	p, mr := setupPublisher(t)
	mr.Close()

	_, err := p.PublishPostReported(context.Background(), domain.PostReportedEvent{PostID: "p1"})
	assert.Error(t, err)
}

func TestNewPublisherWithURL_Invalid(t *testing.T) {
	_, err := NewPublisherWithURL("not a url", "post:reported")
	assert.Error(t, err)
}
