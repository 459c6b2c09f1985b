package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/pawplan/internal/db"
	"github.com/alexanderramin/pawplan/internal/domain"
)

type SQLiteSessionStateRepo struct {
	db db.DBTX
}

func NewSQLiteSessionStateRepo(conn db.DBTX) *SQLiteSessionStateRepo {
	return &SQLiteSessionStateRepo{db: conn}
}

func (r *SQLiteSessionStateRepo) Get(ctx context.Context) (*domain.SessionState, error) {
	row := r.db.QueryRowContext(ctx, `SELECT active_dog_id, last_seed, updated_at FROM session_state WHERE id = 'default'`)

	var active sql.NullString
	var seed sql.NullInt64
	var updatedAt string
	if err := row.Scan(&active, &seed, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("session state: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning session state: %w", err)
	}

	s := &domain.SessionState{ActiveDogID: active.String, UpdatedAt: parseTime(updatedAt)}
	if seed.Valid {
		v := seed.Int64
		s.LastSeed = &v
	}
	return s, nil
}

// SetActiveDog points the session at dogID. The foreign key rejects ids
// that are not in the dogs table.
func (r *SQLiteSessionStateRepo) SetActiveDog(ctx context.Context, dogID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE session_state SET active_dog_id = ?, updated_at = ? WHERE id = 'default'`, dogID, nowUTC())
	if err != nil {
		return fmt.Errorf("setting active dog: %w", err)
	}
	return nil
}

func (r *SQLiteSessionStateRepo) SetLastSeed(ctx context.Context, seed int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE session_state SET last_seed = ?, updated_at = ? WHERE id = 'default'`, seed, nowUTC())
	if err != nil {
		return fmt.Errorf("setting last seed: %w", err)
	}
	return nil
}
