package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"barangay-animal-tracking/internal/domain/animals"
	"barangay-animal-tracking/internal/ports/recordstore"

	"github.com/google/uuid"
)

type animalRepo struct {
	s *Store
}

const animalColumns = `id, tag_id, name, species, sex, location, health_status,
	vaccinated, neutered, estimated_age, weight, color, notes, photo_url,
	last_seen, created_at, updated_at, created_by`

// columnas filtrables; cualquier otro campo es error
var animalFilterColumns = map[string]string{
	animals.FieldSpecies:      "species",
	animals.FieldHealthStatus: "health_status",
}

func (r *animalRepo) Create(ctx context.Context, a animals.Animal) (animals.Animal, error) {
	a.ID = uuid.NewString()
	a.CreatedAt = r.s.tick()
	a.UpdatedAt = a.CreatedAt

	_, err := r.s.db.ExecContext(ctx, `
INSERT INTO animals (`+animalColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		animalArgs(a)...,
	)
	if err != nil {
		return animals.Animal{}, fmt.Errorf("insert animal: %w", err)
	}
	return a, nil
}

func (r *animalRepo) Update(ctx context.Context, id string, p animals.Patch) (animals.Animal, error) {
	tx, err := r.s.db.BeginTx(ctx, nil)
	if err != nil {
		return animals.Animal{}, err
	}
	defer func() { _ = tx.Rollback() }()

	a, err := scanAnimal(tx.QueryRowContext(ctx, `SELECT `+animalColumns+` FROM animals WHERE id = ?`, id))
	if err != nil {
		return animals.Animal{}, err
	}

	p.Apply(&a)
	a.UpdatedAt = r.s.tick()

	_, err = tx.ExecContext(ctx, `
UPDATE animals SET
	tag_id = ?, name = ?, species = ?, sex = ?, location = ?, health_status = ?,
	vaccinated = ?, neutered = ?, estimated_age = ?, weight = ?, color = ?, notes = ?,
	photo_url = ?, last_seen = ?, updated_at = ?
WHERE id = ?`,
		a.TagID, a.Name, string(a.Species), string(a.Sex), a.Location, string(a.HealthStatus),
		boolInt(a.Vaccinated), boolInt(a.Neutered), nullFloat(a.EstimatedAge), nullFloat(a.Weight),
		a.Color, a.Notes, a.PhotoURL, recordstore.NullMillis(a.LastSeen), toMillis(a.UpdatedAt),
		id,
	)
	if err != nil {
		return animals.Animal{}, fmt.Errorf("update animal: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return animals.Animal{}, err
	}
	return a, nil
}

func (r *animalRepo) Delete(ctx context.Context, id string) error {
	res, err := r.s.db.ExecContext(ctx, `DELETE FROM animals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete animal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return recordstore.ErrNotFound
	}
	return nil
}

func (r *animalRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	return scanAnimal(r.s.db.QueryRowContext(ctx, `SELECT `+animalColumns+` FROM animals WHERE id = ?`, id))
}

func (r *animalRepo) List(ctx context.Context, where *recordstore.Where) ([]animals.Animal, error) {
	query := `SELECT ` + animalColumns + ` FROM animals`
	var args []any
	if where != nil {
		col, ok := animalFilterColumns[where.Field]
		if !ok {
			return nil, fmt.Errorf("animals: unsupported filter field %q", where.Field)
		}
		query += ` WHERE ` + col + ` = ?`
		args = append(args, strings.ToLower(where.Value))
	}
	query += ` ORDER BY updated_at DESC, id`

	rows, err := r.s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list animals: %w", err)
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnimal(row rowScanner) (animals.Animal, error) {
	var (
		a                    animals.Animal
		species, sex, health string
		vaccinated, neutered int
		estimatedAge, weight sql.NullFloat64
		lastSeen             sql.NullInt64
		createdAt, updatedAt int64
	)
	err := row.Scan(
		&a.ID, &a.TagID, &a.Name, &species, &sex, &a.Location, &health,
		&vaccinated, &neutered, &estimatedAge, &weight, &a.Color, &a.Notes, &a.PhotoURL,
		&lastSeen, &createdAt, &updatedAt, &a.CreatedBy,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return animals.Animal{}, recordstore.ErrNotFound
	}
	if err != nil {
		return animals.Animal{}, fmt.Errorf("scan animal: %w", err)
	}

	a.Species = animals.Species(species)
	a.Sex = animals.Sex(sex)
	a.HealthStatus = animals.HealthStatus(health)
	a.Vaccinated = vaccinated != 0
	a.Neutered = neutered != 0
	a.EstimatedAge = floatPtr(estimatedAge)
	a.Weight = floatPtr(weight)
	a.LastSeen = recordstore.TimePtr(lastSeen)
	a.CreatedAt = fromMillis(createdAt)
	a.UpdatedAt = fromMillis(updatedAt)
	return a, nil
}

func animalArgs(a animals.Animal) []any {
	return []any{
		a.ID, a.TagID, a.Name, string(a.Species), string(a.Sex), a.Location, string(a.HealthStatus),
		boolInt(a.Vaccinated), boolInt(a.Neutered), nullFloat(a.EstimatedAge), nullFloat(a.Weight),
		a.Color, a.Notes, a.PhotoURL, recordstore.NullMillis(a.LastSeen),
		toMillis(a.CreatedAt), toMillis(a.UpdatedAt), a.CreatedBy,
	}
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
