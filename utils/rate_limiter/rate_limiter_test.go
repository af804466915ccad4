package rate_limiter

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestNewKeyedRateLimiter(t *testing.T) {
	limiter := NewKeyedRateLimiter(5, 0)
	if limiter.burst != 1 {
		t.Errorf("burst = %d, want 1 when configured below one", limiter.burst)
	}
	if limiter.limiters == nil {
		t.Error("limiters map is nil")
	}
}

func TestKeyedRateLimiter_Allow(t *testing.T) {
	limiter := NewKeyedRateLimiter(1, 2)

	if !limiter.Allow("viewer-a") || !limiter.Allow("viewer-a") {
		t.Fatal("expected burst of two to be allowed")
	}
	if limiter.Allow("viewer-a") {
		t.Error("third immediate request should be rejected")
	}
	if !limiter.Allow("viewer-b") {
		t.Error("other keys must have their own bucket")
	}
}

func TestKeyedRateLimiter_WaitHonoursContext(t *testing.T) {
	limiter := NewKeyedRateLimiter(0.001, 1)
	if err := limiter.Wait(context.Background(), "k"); err != nil {
		t.Fatalf("first wait: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := limiter.Wait(ctx, "k"); err == nil {
		t.Error("expected error when the next token is beyond the deadline")
	}
}

func TestKeyedRateLimiter_ConcurrentAccess(t *testing.T) {
	limiter := NewKeyedRateLimiter(1000, 10)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			limiter.Allow("shared")
		}()
	}
	wg.Wait()

	limiter.mu.RLock()
	defer limiter.mu.RUnlock()
	if len(limiter.limiters) != 1 {
		t.Errorf("expected a single limiter for one key, got %d", len(limiter.limiters))
	}
}
