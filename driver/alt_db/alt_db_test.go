package alt_db

import (
	"bytes"
	"log/slog"
	"time"

	"feedengine/utils/logger"

	pgxmock "github.com/pashagolub/pgxmock/v3"
)

func init() {
	var buf bytes.Buffer
	logger.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

var postColumns = []string{
	"id", "source_id", "title", "url", "image", "placeholder", "ratio", "read_time",
	"published_at", "created_at", "score", "tags", "is_read", "is_bookmarked",
	"s_id", "s_name", "s_image",
}

func strPtr(s string) *string { return &s }

type testRow struct {
	id        string
	sourceID  string
	published time.Time
	score     float64
	tags      []string
	read      bool
	bookmark  bool
}

func addPostRows(rows *pgxmock.Rows, in ...testRow) *pgxmock.Rows {
	for _, r := range in {
		published := r.published
		readTime := 4
		rows.AddRow(
			r.id, r.sourceID, "Title "+r.id, "https://example.com/"+r.id,
			strPtr("https://img.example.com/"+r.id), (*string)(nil), (*float64)(nil), &readTime,
			&published, published, r.score, r.tags, r.read, r.bookmark,
			r.sourceID, "Source "+r.sourceID, (*string)(nil),
		)
	}
	return rows
}
