package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/isdelr/portfolio-be/internal/cache"
	"github.com/isdelr/portfolio-be/internal/store"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type recordingEvents struct {
	mu     sync.Mutex
	events []string
}

func (r *recordingEvents) Publish(eventType string, payload interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, eventType)
}

func (r *recordingEvents) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

// stepClock returns a clock that advances one minute per call.
func stepClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	current := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		current = current.Add(time.Minute)
		return current
	}
}

func seededStore(t *testing.T) *store.Memory {
	t.Helper()
	s := store.NewMemory()
	require.NoError(t, store.Seed(context.Background(), s, store.AdminSeed{
		Username:   "admin",
		Password:   "admin123",
		BcryptCost: bcrypt.MinCost,
	}))
	return s
}

func testCache() *cache.Cache {
	return cache.New(time.Minute)
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
