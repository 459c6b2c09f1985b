package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/pawplan/internal/db"
	"github.com/alexanderramin/pawplan/internal/domain"
)

type SQLiteTasteRepo struct {
	db db.DBTX
}

func NewSQLiteTasteRepo(conn db.DBTX) *SQLiteTasteRepo {
	return &SQLiteTasteRepo{db: conn}
}

const tasteColumns = `id, dog_id, protein, veg, preference, note,
	dog_name, dog_breed, dog_age_years, dog_weight_kg, created_at`

func (r *SQLiteTasteRepo) Append(ctx context.Context, e *domain.TasteEntry) error {
	query := `INSERT INTO taste_entries (` + tasteColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.DogID,
		nullableString(e.Protein),
		nullableString(e.Veg),
		string(e.Preference),
		e.Note,
		e.DogName,
		e.DogBreed,
		e.DogAgeYears,
		e.DogWeightKg,
		e.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting taste entry: %w", err)
	}
	return nil
}

func (r *SQLiteTasteRepo) ListByDog(ctx context.Context, dogID string) ([]*domain.TasteEntry, error) {
	query := `SELECT ` + tasteColumns + ` FROM taste_entries WHERE dog_id = ? ORDER BY rowid`
	return r.query(ctx, query, dogID)
}

func (r *SQLiteTasteRepo) ListAll(ctx context.Context) ([]*domain.TasteEntry, error) {
	query := `SELECT ` + tasteColumns + ` FROM taste_entries ORDER BY rowid`
	return r.query(ctx, query)
}

func (r *SQLiteTasteRepo) query(ctx context.Context, query string, args ...any) ([]*domain.TasteEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing taste entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.TasteEntry
	for rows.Next() {
		var e domain.TasteEntry
		var protein, veg sql.NullString
		var pref, createdAt string
		if err := rows.Scan(
			&e.ID,
			&e.DogID,
			&protein,
			&veg,
			&pref,
			&e.Note,
			&e.DogName,
			&e.DogBreed,
			&e.DogAgeYears,
			&e.DogWeightKg,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scanning taste entry: %w", err)
		}
		e.Protein = stringPtrFromNull(protein)
		e.Veg = stringPtrFromNull(veg)
		e.Preference = domain.PreferenceLabel(pref)
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating taste entries: %w", err)
	}
	return entries, nil
}
