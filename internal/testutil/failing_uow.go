package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/alexanderramin/pawplan/internal/db"
)

// FailingWriteUoW runs real transactions but fails any ExecContext whose
// statement starts with FailPrefix (e.g. "UPDATE session_state"). Writes
// issued before the failing one are rolled back with the transaction.
type FailingWriteUoW struct {
	DB         *sql.DB
	FailPrefix string
	Err        error
}

func (u *FailingWriteUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if fnErr := fn(ctx, &failingWrites{DBTX: tx, prefix: u.FailPrefix, err: u.Err}); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type failingWrites struct {
	db.DBTX
	prefix string
	err    error
}

func (f *failingWrites) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if strings.HasPrefix(strings.TrimSpace(query), f.prefix) {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
