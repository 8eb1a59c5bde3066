package sqlite

import (
	"context"
	"fmt"

	"barangay-animal-tracking/internal/domain/visits"

	"github.com/google/uuid"
)

type visitRepo struct {
	s *Store
}

func (r *visitRepo) Create(ctx context.Context, v visits.Visit) (visits.Visit, error) {
	v.ID = uuid.NewString()
	v.CreatedAt = r.s.tick()

	_, err := r.s.db.ExecContext(ctx, `
INSERT INTO visits (id, animal_id, visit_type, diagnosis, treatment, notes, vaccinated, neutered, recorded_by, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.ID, v.AnimalID, string(v.VisitType), v.Diagnosis, v.Treatment, v.Notes,
		boolInt(v.Vaccinated), boolInt(v.Neutered), v.RecordedBy, toMillis(v.CreatedAt),
	)
	if err != nil {
		return visits.Visit{}, fmt.Errorf("insert visit: %w", err)
	}
	return v, nil
}

func (r *visitRepo) ListByAnimal(ctx context.Context, animalID string) ([]visits.Visit, error) {
	rows, err := r.s.db.QueryContext(ctx, `
SELECT id, animal_id, visit_type, diagnosis, treatment, notes, vaccinated, neutered, recorded_by, created_at
FROM visits
WHERE animal_id = ?
ORDER BY created_at DESC, seq DESC`, animalID)
	if err != nil {
		return nil, fmt.Errorf("list visits: %w", err)
	}
	defer rows.Close()

	out := make([]visits.Visit, 0)
	for rows.Next() {
		var (
			v                    visits.Visit
			visitType            string
			vaccinated, neutered int
			createdAt            int64
		)
		if err := rows.Scan(
			&v.ID, &v.AnimalID, &visitType, &v.Diagnosis, &v.Treatment, &v.Notes,
			&vaccinated, &neutered, &v.RecordedBy, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		v.VisitType = visits.VisitType(visitType)
		v.Vaccinated = vaccinated != 0
		v.Neutered = neutered != 0
		v.CreatedAt = fromMillis(createdAt)
		out = append(out, v)
	}
	return out, rows.Err()
}
