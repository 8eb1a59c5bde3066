package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"barangay-animal-tracking/internal/domain/animals"
	"barangay-animal-tracking/internal/ports/recordstore"

	"github.com/google/uuid"
)

type AnimalsRepo struct {
	db    *sql.DB
	clock *clock
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db, clock: newClock()}
}

const animalColumns = `
	id, tag_id, name, species, sex, location, health_status,
	vaccinated, neutered, estimated_age, weight,
	color, notes, photo_url, last_seen,
	created_at, updated_at, created_by`

var animalFilterColumns = map[string]string{
	animals.FieldSpecies:      "species",
	animals.FieldHealthStatus: "health_status",
}

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) (animals.Animal, error) {
	a.ID = uuid.NewString()
	a.CreatedAt = r.clock.next()
	a.UpdatedAt = a.CreatedAt

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO animals (`+animalColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
	`,
		a.ID,
		a.TagID,
		a.Name,
		string(a.Species),
		string(a.Sex),
		a.Location,
		string(a.HealthStatus),
		a.Vaccinated,
		a.Neutered,
		nullFloat(a.EstimatedAge),
		nullFloat(a.Weight),
		a.Color,
		a.Notes,
		a.PhotoURL,
		toNullTime(a.LastSeen),
		a.CreatedAt,
		a.UpdatedAt,
		a.CreatedBy,
	)
	if err != nil {
		return animals.Animal{}, err
	}
	return a, nil
}

// Update lee con FOR UPDATE, mergea el patch y escribe en la misma tx.
func (r *AnimalsRepo) Update(ctx context.Context, id string, p animals.Patch) (animals.Animal, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return animals.Animal{}, err
	}
	defer func() { _ = tx.Rollback() }()

	a, err := scanAnimal(tx.QueryRowContext(ctx,
		`SELECT `+animalColumns+` FROM animals WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return animals.Animal{}, err
	}

	p.Apply(&a)
	a.UpdatedAt = r.clock.next()

	res, err := tx.ExecContext(ctx, `
		UPDATE animals
		SET
			tag_id = $2,
			name = $3,
			species = $4,
			sex = $5,
			location = $6,
			health_status = $7,
			vaccinated = $8,
			neutered = $9,
			estimated_age = $10,
			weight = $11,
			color = $12,
			notes = $13,
			photo_url = $14,
			last_seen = $15,
			updated_at = $16
		WHERE id = $1
	`,
		id,
		a.TagID,
		a.Name,
		string(a.Species),
		string(a.Sex),
		a.Location,
		string(a.HealthStatus),
		a.Vaccinated,
		a.Neutered,
		nullFloat(a.EstimatedAge),
		nullFloat(a.Weight),
		a.Color,
		a.Notes,
		a.PhotoURL,
		toNullTime(a.LastSeen),
		a.UpdatedAt,
	)
	if err != nil {
		return animals.Animal{}, err
	}
	if err := affectedOrNotFound(res, recordstore.ErrNotFound); err != nil {
		return animals.Animal{}, err
	}
	if err := tx.Commit(); err != nil {
		return animals.Animal{}, err
	}
	return a, nil
}

func (r *AnimalsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM animals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return affectedOrNotFound(res, recordstore.ErrNotFound)
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return animals.Animal{}, recordstore.ErrNotFound
	}
	return scanAnimal(r.db.QueryRowContext(ctx, `SELECT `+animalColumns+` FROM animals WHERE id = $1`, id))
}

func (r *AnimalsRepo) List(ctx context.Context, where *recordstore.Where) ([]animals.Animal, error) {
	query := `SELECT ` + animalColumns + ` FROM animals`
	var args []any
	if where != nil {
		col, ok := animalFilterColumns[where.Field]
		if !ok {
			return nil, fmt.Errorf("animals: unsupported filter field %q", where.Field)
		}
		query += ` WHERE ` + col + ` = $1`
		args = append(args, strings.ToLower(where.Value))
	}
	query += ` ORDER BY updated_at DESC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
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

func scanAnimal(row rowScanner) (animals.Animal, error) {
	var a animals.Animal
	var species, sex, health string
	var estimatedAge, weight sql.NullFloat64
	var lastSeen sql.NullTime

	err := row.Scan(
		&a.ID,
		&a.TagID,
		&a.Name,
		&species,
		&sex,
		&a.Location,
		&health,
		&a.Vaccinated,
		&a.Neutered,
		&estimatedAge,
		&weight,
		&a.Color,
		&a.Notes,
		&a.PhotoURL,
		&lastSeen,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.CreatedBy,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return animals.Animal{}, recordstore.ErrNotFound
	}
	if err != nil {
		return animals.Animal{}, err
	}

	a.Species = animals.Species(species)
	a.Sex = animals.Sex(sex)
	a.HealthStatus = animals.HealthStatus(health)
	a.EstimatedAge = floatPtr(estimatedAge)
	a.Weight = floatPtr(weight)
	a.LastSeen = recordstore.TimePtr(lastSeen)
	a.CreatedAt = a.CreatedAt.UTC()
	a.UpdatedAt = a.UpdatedAt.UTC()
	return a, nil
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}
