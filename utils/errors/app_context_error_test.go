package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppContextError_Error(t *testing.T) {
	tests := []struct {
		name            string
		appContextError *AppContextError
		want            string
	}{
		{
			name: "error with cause and full context",
			appContextError: &AppContextError{
				Code:      "DATABASE_ERROR",
				Message:   "failed to fetch feed page",
				Layer:     "gateway",
				Component: "FeedQueryGateway",
				Operation: "FetchFeedPage",
				Cause:     errors.New("connection timeout"),
			},
			want: "[gateway:FeedQueryGateway:FetchFeedPage] DATABASE_ERROR: failed to fetch feed page (caused by: connection timeout)",
		},
		{
			name: "error without cause",
			appContextError: &AppContextError{
				Code:      "VALIDATION_ERROR",
				Message:   "invalid input",
				Layer:     "usecase",
				Component: "FetchFeedUsecase",
				Operation: "Execute",
			},
			want: "[usecase:FetchFeedUsecase:Execute] VALIDATION_ERROR: invalid input",
		},
		{
			name: "error with minimal context",
			appContextError: &AppContextError{
				Code:    "SEARCH_UNAVAILABLE",
				Message: "search service unavailable",
				Cause:   errors.New("dial tcp: refused"),
			},
			want: "SEARCH_UNAVAILABLE: search service unavailable (caused by: dial tcp: refused)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.appContextError.Error()
			if got != tt.want {
				t.Errorf("AppContextError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppContextError_HTTPStatusCode(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"VALIDATION_ERROR", http.StatusBadRequest},
		{"INVALID_CURSOR", http.StatusBadRequest},
		{"NOT_FOUND", http.StatusNotFound},
		{"UNAUTHORIZED", http.StatusUnauthorized},
		{"SEARCH_UNAVAILABLE", http.StatusServiceUnavailable},
		{"TIMEOUT_ERROR", http.StatusGatewayTimeout},
		{"DATABASE_ERROR", http.StatusInternalServerError},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := &AppContextError{Code: tt.code}
			if got := err.HTTPStatusCode(); got != tt.want {
				t.Errorf("HTTPStatusCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAppContextError_ToHTTPResponse_HidesInternalDetail(t *testing.T) {
	err := NewDatabaseContextError("failed to fetch", "driver", "AltDBRepository", "FetchFeedPage",
		errors.New("relation post does not exist"), map[string]interface{}{"table": "post"})

	resp := err.ToHTTPResponse()
	if resp.Message != "internal server error" {
		t.Errorf("Message = %q, want internal server error", resp.Message)
	}
	if resp.Context != nil {
		t.Errorf("Context = %v, want nil", resp.Context)
	}
	if resp.Code != "DATABASE_ERROR" {
		t.Errorf("Code = %q", resp.Code)
	}
}

func TestAppContextError_ToHTTPResponse_KeepsClientDetail(t *testing.T) {
	err := NewValidationContextError("pageSize must not be negative", "usecase", "FetchFeedUsecase", "Execute",
		map[string]interface{}{"page_size": -1})

	resp := err.ToHTTPResponse()
	if resp.Message != "pageSize must not be negative" {
		t.Errorf("Message = %q", resp.Message)
	}
	if resp.Context["error_type"] != "validation" {
		t.Errorf("error_type = %v", resp.Context["error_type"])
	}
}

func TestEnrichWithContext(t *testing.T) {
	base := NewInvalidCursorError("usecase", "FetchFeedUsecase", "Execute", nil, map[string]interface{}{"a": 1})
	enriched := EnrichWithContext(base, "rest", "FeedHandler", "GetFeed", map[string]interface{}{"path": "/v1/feed"})

	if enriched.Layer != "rest" || enriched.Component != "FeedHandler" || enriched.Operation != "GetFeed" {
		t.Errorf("unexpected location: %s:%s:%s", enriched.Layer, enriched.Component, enriched.Operation)
	}
	if enriched.Context["a"] != 1 || enriched.Context["path"] != "/v1/feed" {
		t.Errorf("context not merged: %v", enriched.Context)
	}
	if !errors.Is(enriched, ErrInvalidCursor) {
		t.Error("enriched error lost its sentinel")
	}
	if _, ok := base.Context["path"]; ok {
		t.Error("base context was mutated")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"validation sentinel", fmt.Errorf("bad: %w", ErrInvalidInput), ErrCodeValidation},
		{"cursor sentinel", fmt.Errorf("decode: %w", ErrInvalidCursor), ErrCodeInvalidCursor},
		{"post not found", ErrPostNotFound, ErrCodeNotFound},
		{"feed not found", fmt.Errorf("lookup: %w", ErrFeedNotFound), ErrCodeNotFound},
		{"unauthorized", ErrUnauthorized, ErrCodeUnauthorized},
		{"search timeout", ErrSearchTimeout, ErrCodeSearchUnavailable},
		{"search down", ErrSearchServiceUnavailable, ErrCodeSearchUnavailable},
		{"app error", DatabaseError("boom", errors.New("x"), nil), ErrCodeDatabase},
		{"plain error", errors.New("boom"), ErrCodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err, "rest", "Handler", "Op")
			if ErrorCode(got.Code) != tt.want {
				t.Errorf("Classify() code = %s, want %s", got.Code, tt.want)
			}
		})
	}
}

func TestClassify_KeepsExistingContextError(t *testing.T) {
	original := NewUnauthorizedError("usecase", "HidePostUsecase", "Hide", nil)
	wrapped := fmt.Errorf("hide failed: %w", original)

	if got := Classify(wrapped, "rest", "Handler", "Op"); got != original {
		t.Errorf("Classify() returned a new error, want the wrapped one")
	}
}

func TestAppContextError_IsRetryable(t *testing.T) {
	if !NewSearchUnavailableError("driver", "SearchIndexer", "Search", nil, nil).IsRetryable() {
		t.Error("search unavailable should be retryable")
	}
	if NewValidationContextError("x", "usecase", "c", "o", nil).IsRetryable() {
		t.Error("validation should not be retryable")
	}
}
