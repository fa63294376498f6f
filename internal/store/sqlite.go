package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/isdelr/portfolio-be/internal/models"
)

// sqlTable stores each row as a JSON document in one SQLite table.
type sqlTable[T any] struct {
	db     *sql.DB
	name   string
	encode func(T) ([]byte, error)
	decode func([]byte) (T, error)
}

func newSQLTable[T any](db *sql.DB, name string) *sqlTable[T] {
	return &sqlTable[T]{
		db:   db,
		name: name,
		encode: func(row T) ([]byte, error) {
			return json.Marshal(row)
		},
		decode: func(body []byte) (T, error) {
			var row T
			err := json.Unmarshal(body, &row)
			return row, err
		},
	}
}

func (t *sqlTable[T]) All(ctx context.Context) ([]T, error) {
	rows, err := t.db.QueryContext(ctx, "SELECT body FROM "+t.name+" ORDER BY rowid")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}
		row, err := t.decode(body)
		if err != nil {
			return nil, fmt.Errorf("decode %s row: %w", t.name, err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (t *sqlTable[T]) Get(ctx context.Context, id string) (T, bool, error) {
	var zero T
	var body []byte
	err := t.db.QueryRowContext(ctx, "SELECT body FROM "+t.name+" WHERE id = ?", id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, err
	}
	row, err := t.decode(body)
	if err != nil {
		return zero, false, fmt.Errorf("decode %s row: %w", t.name, err)
	}
	return row, true, nil
}

func (t *sqlTable[T]) Insert(ctx context.Context, id string, row T) error {
	body, err := t.encode(row)
	if err != nil {
		return err
	}
	res, err := t.db.ExecContext(ctx, "INSERT INTO "+t.name+"(id, body) VALUES(?, ?) ON CONFLICT(id) DO NOTHING", id, body)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("insert %s: %w", id, ErrDuplicateID)
	}
	return nil
}

func (t *sqlTable[T]) Update(ctx context.Context, id string, fn func(*T)) (T, bool, error) {
	var zero T
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return zero, false, err
	}
	defer tx.Rollback()

	var body []byte
	err = tx.QueryRowContext(ctx, "SELECT body FROM "+t.name+" WHERE id = ?", id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, err
	}

	row, err := t.decode(body)
	if err != nil {
		return zero, false, fmt.Errorf("decode %s row: %w", t.name, err)
	}
	fn(&row)

	if body, err = t.encode(row); err != nil {
		return zero, false, err
	}
	if _, err = tx.ExecContext(ctx, "UPDATE "+t.name+" SET body = ? WHERE id = ?", body, id); err != nil {
		return zero, false, err
	}
	if err = tx.Commit(); err != nil {
		return zero, false, err
	}
	return row, true, nil
}

func (t *sqlTable[T]) Delete(ctx context.Context, id string) (bool, error) {
	res, err := t.db.ExecContext(ctx, "DELETE FROM "+t.name+" WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// userRecord is the stored form of a user. models.User hides the hash from JSON.
type userRecord struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
}

// SQLite is a store backed by the tables created by database.Migrate.
type SQLite struct {
	db       *sql.DB
	users    *sqlTable[models.User]
	projects *sqlTable[models.Project]
	skills   *sqlTable[models.Skill]
	services *sqlTable[models.Service]
	messages *sqlTable[models.Message]
}

// NewSQLite wraps an open, migrated database.
func NewSQLite(db *sql.DB) *SQLite {
	users := newSQLTable[models.User](db, "users")
	users.encode = func(u models.User) ([]byte, error) {
		return json.Marshal(userRecord{ID: u.ID, Username: u.Username, PasswordHash: u.PasswordHash})
	}
	users.decode = func(body []byte) (models.User, error) {
		var rec userRecord
		if err := json.Unmarshal(body, &rec); err != nil {
			return models.User{}, err
		}
		return models.User{ID: rec.ID, Username: rec.Username, PasswordHash: rec.PasswordHash}, nil
	}

	return &SQLite{
		db:       db,
		users:    users,
		projects: newSQLTable[models.Project](db, "projects"),
		skills:   newSQLTable[models.Skill](db, "skills"),
		services: newSQLTable[models.Service](db, "services"),
		messages: newSQLTable[models.Message](db, "messages"),
	}
}

func (s *SQLite) Users() Table[models.User] { return s.users }
func (s *SQLite) Projects() Table[models.Project] { return s.projects }
func (s *SQLite) Skills() Table[models.Skill] { return s.skills }
func (s *SQLite) Services() Table[models.Service] { return s.services }
func (s *SQLite) Messages() Table[models.Message] { return s.messages }

func (s *SQLite) Close() error { return s.db.Close() }
