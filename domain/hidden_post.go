package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "feedengine/utils/errors"
)

type ReportReason string

const (
	ReportReasonBroken    ReportReason = "BROKEN"
	ReportReasonClickbait ReportReason = "CLICKBAIT"
	ReportReasonLow       ReportReason = "LOW"
	ReportReasonNSFW      ReportReason = "NSFW"
	ReportReasonOther     ReportReason = "OTHER"
)

var reportReasons = map[ReportReason]struct{}{
	ReportReasonBroken:    {},
	ReportReasonClickbait: {},
	ReportReasonLow:       {},
	ReportReasonNSFW:      {},
	ReportReasonOther:     {},
}

// ParseReportReason matches raw against the known reasons, ignoring case.
func ParseReportReason(raw string) (ReportReason, error) {
	reason := ReportReason(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := reportReasons[reason]; !ok {
		return "", fmt.Errorf("%w: unknown report reason %q", apperrors.ErrInvalidInput, raw)
	}
	return reason, nil
}

// MaxReportCommentLength bounds the optional free text on a report.
const MaxReportCommentLength = 1000

// PostReport is a viewer's report of a post. Reporting also hides the post
// for that viewer.
type PostReport struct {
	ViewerID string
	PostID   string
	Reason   ReportReason
	Comment  string
}

// PostReportedEvent is published once per (viewer, post) on the first report.
type PostReportedEvent struct {
	PostID     string       `json:"post_id"`
	ViewerID   string       `json:"viewer_id"`
	Reason     ReportReason `json:"reason"`
	Comment    string       `json:"comment,omitempty"`
	ReportedAt time.Time    `json:"reported_at"`
}
