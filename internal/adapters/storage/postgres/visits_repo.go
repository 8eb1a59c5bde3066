package postgres

import (
	"context"
	"database/sql"

	"barangay-animal-tracking/internal/domain/visits"

	"github.com/google/uuid"
)

type VisitsRepo struct {
	db    *sql.DB
	clock *clock
}

func NewVisitsRepo(db *sql.DB) *VisitsRepo {
	return &VisitsRepo{db: db, clock: newClock()}
}

func (r *VisitsRepo) Create(ctx context.Context, v visits.Visit) (visits.Visit, error) {
	v.ID = uuid.NewString()
	v.CreatedAt = r.clock.next()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO visits (
			id, animal_id, visit_type,
			diagnosis, treatment, notes,
			vaccinated, neutered,
			recorded_by, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		v.ID,
		v.AnimalID,
		string(v.VisitType),
		v.Diagnosis,
		v.Treatment,
		v.Notes,
		v.Vaccinated,
		v.Neutered,
		v.RecordedBy,
		v.CreatedAt,
	)
	if err != nil {
		return visits.Visit{}, err
	}
	return v, nil
}

// ListByAnimal: más nuevas primero; seq desempata created_at iguales.
func (r *VisitsRepo) ListByAnimal(ctx context.Context, animalID string) ([]visits.Visit, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, animal_id, visit_type,
			diagnosis, treatment, notes,
			vaccinated, neutered,
			recorded_by, created_at
		FROM visits
		WHERE animal_id = $1
		ORDER BY created_at DESC, seq DESC
	`, animalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]visits.Visit, 0)
	for rows.Next() {
		var v visits.Visit
		var visitType string
		if err := rows.Scan(
			&v.ID,
			&v.AnimalID,
			&visitType,
			&v.Diagnosis,
			&v.Treatment,
			&v.Notes,
			&v.Vaccinated,
			&v.Neutered,
			&v.RecordedBy,
			&v.CreatedAt,
		); err != nil {
			return nil, err
		}
		v.VisitType = visits.VisitType(visitType)
		v.CreatedAt = v.CreatedAt.UTC()
		out = append(out, v)
	}

	return out, rows.Err()
}
