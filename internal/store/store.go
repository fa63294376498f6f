// Package store holds the record collections behind the portfolio API.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/isdelr/portfolio-be/internal/models"
)

// ErrDuplicateID is returned when inserting a row whose ID is already taken.
var ErrDuplicateID = errors.New("duplicate id")

// Table is a keyed collection of one entity type.
type Table[T any] interface {
	// All returns every row in insertion order.
	All(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (T, bool, error)
	Insert(ctx context.Context, id string, row T) error
	// Update applies fn to the stored row and saves the result atomically.
	// It reports false when no row has the given ID.
	Update(ctx context.Context, id string, fn func(*T)) (T, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Store groups the tables for every entity.
type Store interface {
	Users() Table[models.User]
	Projects() Table[models.Project]
	Skills() Table[models.Skill]
	Services() Table[models.Service]
	Messages() Table[models.Message]
	Close() error
}

// NewID returns a fresh random identifier.
func NewID() string {
	return uuid.New().String()
}
