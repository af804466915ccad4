package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordFeedPage(t *testing.T) {
	before := testutil.ToFloat64(FeedPagesTotal.WithLabelValues("POPULARITY", StatusError))
	RecordFeedPage("POPULARITY", time.Now(), errors.New("boom"))
	after := testutil.ToFloat64(FeedPagesTotal.WithLabelValues("POPULARITY", StatusError))
	assert.Equal(t, before+1, after)
}

func TestRecordDroppedHits(t *testing.T) {
	before := testutil.ToFloat64(SearchHitsDropped)
	RecordDroppedHits(0)
	RecordDroppedHits(3)
	assert.Equal(t, before+3, testutil.ToFloat64(SearchHitsDropped))
}

func TestRecordHide(t *testing.T) {
	before := testutil.ToFloat64(HiddenPostsTotal.WithLabelValues("report", "created"))
	RecordHide("report", "created")
	assert.Equal(t, before+1, testutil.ToFloat64(HiddenPostsTotal.WithLabelValues("report", "created")))
}

func TestRecordReportEvent(t *testing.T) {
	before := testutil.ToFloat64(ReportEventsTotal.WithLabelValues(StatusSuccess))
	RecordReportEvent(nil)
	assert.Equal(t, before+1, testutil.ToFloat64(ReportEventsTotal.WithLabelValues(StatusSuccess)))
}
