package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"storefront-service/models"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteCartStore persists snapshots in an embedded database for
// single-node deployments that don't run Redis. One row per user, the
// whole cart as a JSON column.
type SQLiteCartStore struct {
	db *sql.DB
}

func NewSQLiteCartStore(path string) (*SQLiteCartStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	const schema = `
	CREATE TABLE IF NOT EXISTS carts (
		user_id    TEXT PRIMARY KEY,
		snapshot   TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteCartStore{db: db}, nil
}

func (s *SQLiteCartStore) Get(ctx context.Context, userID string) (*models.Cart, error) {
	var snapshot string
	err := s.db.QueryRowContext(ctx,
		`SELECT snapshot FROM carts WHERE user_id = ?`, userID,
	).Scan(&snapshot)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var cart models.Cart
	if err := json.Unmarshal([]byte(snapshot), &cart); err != nil {
		return nil, nil
	}
	return &cart, nil
}

func (s *SQLiteCartStore) Save(ctx context.Context, cart *models.Cart) error {
	cart.UpdatedAt = time.Now()

	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO carts (user_id, snapshot, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET snapshot = excluded.snapshot, updated_at = excluded.updated_at`,
		cart.UserID, string(data), cart.UpdatedAt,
	)
	return err
}

func (s *SQLiteCartStore) Delete(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM carts WHERE user_id = ?`, userID)
	return err
}

func (s *SQLiteCartStore) Close() error {
	return s.db.Close()
}
