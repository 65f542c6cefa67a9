package session

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type SQLRepo struct {
	DB  *sql.DB
	Now func() time.Time
}

func NewSQLRepo(db *sql.DB) *SQLRepo {
	return &SQLRepo{DB: db, Now: time.Now}
}

// Save inserts or overwrites the row for rec.ID.
func (r *SQLRepo) Save(ctx context.Context, rec Record) error {
	_, err := r.DB.ExecContext(ctx, `
		REPLACE INTO sessions (id, data, updated_at, expires_at)
		VALUES (?, ?, ?, ?)
	`, rec.ID, rec.Data, rec.UpdatedAt.UnixMilli(), rec.ExpiresAt.UnixMilli())
	return err
}

// Get returns ErrNotFound for unknown and for expired sessions alike.
func (r *SQLRepo) Get(ctx context.Context, id string) (*Record, error) {
	var (
		rec                  Record
		updatedAt, expiresAt int64
	)
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, data, updated_at, expires_at FROM sessions
		WHERE id = ? AND expires_at > ?
	`, id, r.Now().UnixMilli()).Scan(&rec.ID, &rec.Data, &updatedAt, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rec.UpdatedAt = time.UnixMilli(updatedAt)
	rec.ExpiresAt = time.UnixMilli(expiresAt)
	return &rec, nil
}

func (r *SQLRepo) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `
		DELETE FROM sessions WHERE id = ?
	`, id)
	return err
}

func (r *SQLRepo) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		DELETE FROM sessions WHERE expires_at <= ?
	`, r.Now().UnixMilli())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
