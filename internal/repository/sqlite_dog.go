package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/pawplan/internal/db"
	"github.com/alexanderramin/pawplan/internal/domain"
)

type SQLiteDogRepo struct {
	db db.DBTX
}

func NewSQLiteDogRepo(conn db.DBTX) *SQLiteDogRepo {
	return &SQLiteDogRepo{db: conn}
}

const dogColumns = `id, name, breed, age_years, weight_kg, neutered, activity, special_flags,
	meals_per_day, kcal_per_gram, created_at, updated_at`

func (r *SQLiteDogRepo) Create(ctx context.Context, d *domain.DogProfile) error {
	query := `INSERT INTO dogs (` + dogColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		d.ID,
		d.Name,
		d.Breed,
		d.AgeYears,
		d.WeightKg,
		boolToInt(d.Neutered),
		string(d.Activity),
		encodeFlags(d.Flags),
		d.MealsPerDay,
		d.KcalPerGram,
		d.CreatedAt.Format(time.RFC3339Nano),
		d.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting dog: %w", err)
	}
	return nil
}

// GetByID scans the full list so Position matches List.
func (r *SQLiteDogRepo) GetByID(ctx context.Context, id string) (*domain.DogProfile, error) {
	dogs, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, d := range dogs {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, fmt.Errorf("dog %s: %w", id, ErrNotFound)
}

func (r *SQLiteDogRepo) List(ctx context.Context) ([]*domain.DogProfile, error) {
	query := `SELECT ` + dogColumns + ` FROM dogs ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing dogs: %w", err)
	}
	defer rows.Close()

	var dogs []*domain.DogProfile
	for rows.Next() {
		d, err := scanDog(rows)
		if err != nil {
			return nil, err
		}
		d.Position = len(dogs) + 1
		dogs = append(dogs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dogs: %w", err)
	}
	return dogs, nil
}

func (r *SQLiteDogRepo) Update(ctx context.Context, d *domain.DogProfile) error {
	query := `UPDATE dogs SET name = ?, breed = ?, age_years = ?, weight_kg = ?, neutered = ?,
		activity = ?, special_flags = ?, meals_per_day = ?, kcal_per_gram = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		d.Name,
		d.Breed,
		d.AgeYears,
		d.WeightKg,
		boolToInt(d.Neutered),
		string(d.Activity),
		encodeFlags(d.Flags),
		d.MealsPerDay,
		d.KcalPerGram,
		d.UpdatedAt.Format(time.RFC3339Nano),
		d.ID,
	)
	if err != nil {
		return fmt.Errorf("updating dog: %w", err)
	}
	return requireAffected(res, "dog "+d.ID)
}

func (r *SQLiteDogRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM dogs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting dog: %w", err)
	}
	return requireAffected(res, "dog "+id)
}

func (r *SQLiteDogRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM dogs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting dogs: %w", err)
	}
	return n, nil
}

func scanDog(rows *sql.Rows) (*domain.DogProfile, error) {
	var d domain.DogProfile
	var neutered int
	var activity, flags, createdAt, updatedAt string
	err := rows.Scan(
		&d.ID,
		&d.Name,
		&d.Breed,
		&d.AgeYears,
		&d.WeightKg,
		&neutered,
		&activity,
		&flags,
		&d.MealsPerDay,
		&d.KcalPerGram,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning dog: %w", err)
	}
	d.Neutered = intToBool(neutered)
	d.Activity = domain.ActivityLevel(activity)
	d.Flags = decodeFlags(flags)
	d.CreatedAt = parseTime(createdAt)
	d.UpdatedAt = parseTime(updatedAt)
	return &d, nil
}

func requireAffected(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return nil
}
