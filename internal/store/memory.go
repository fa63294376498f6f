package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/isdelr/portfolio-be/internal/models"
)

// memTable keeps rows in a map and remembers insertion order.
type memTable[T any] struct {
	mu    sync.RWMutex
	rows  map[string]T
	order []string
}

func newMemTable[T any]() *memTable[T] {
	return &memTable[T]{rows: make(map[string]T)}
}

func (t *memTable[T]) All(ctx context.Context) ([]T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out, nil
}

func (t *memTable[T]) Get(ctx context.Context, id string) (T, bool, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	return row, ok, nil
}

func (t *memTable[T]) Insert(ctx context.Context, id string, row T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.rows[id]; exists {
		return fmt.Errorf("insert %s: %w", id, ErrDuplicateID)
	}
	t.rows[id] = row
	t.order = append(t.order, id)
	return nil
}

func (t *memTable[T]) Update(ctx context.Context, id string, fn func(*T)) (T, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false, nil
	}
	fn(&row)
	t.rows[id] = row
	return row, true, nil
}

func (t *memTable[T]) Delete(ctx context.Context, id string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return false, nil
	}
	delete(t.rows, id)
	for i, existing := range t.order {
		if existing == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// Memory is the default process-lifetime store.
type Memory struct {
	users    *memTable[models.User]
	projects *memTable[models.Project]
	skills   *memTable[models.Skill]
	services *memTable[models.Service]
	messages *memTable[models.Message]
}

// NewMemory creates an empty in-memory store. Call Seed to add the default rows.
func NewMemory() *Memory {
	return &Memory{
		users:    newMemTable[models.User](),
		projects: newMemTable[models.Project](),
		skills:   newMemTable[models.Skill](),
		services: newMemTable[models.Service](),
		messages: newMemTable[models.Message](),
	}
}

func (m *Memory) Users() Table[models.User] { return m.users }
func (m *Memory) Projects() Table[models.Project] { return m.projects }
func (m *Memory) Skills() Table[models.Skill] { return m.skills }
func (m *Memory) Services() Table[models.Service] { return m.services }
func (m *Memory) Messages() Table[models.Message] { return m.messages }

// Close is a no-op; the data goes away with the process.
func (m *Memory) Close() error { return nil }
