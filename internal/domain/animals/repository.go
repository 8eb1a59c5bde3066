package animals

import (
	"context"

	"barangay-animal-tracking/internal/ports/recordstore"
)

// Campos sobre los que se puede filtrar remotamente (un solo Where a la vez).
const (
	FieldSpecies      = "species"
	FieldHealthStatus = "health_status"
)

// Repository persiste animales. Create asigna id y timestamps; Update hace
// read-merge-write y refresca updated_at; List ordena por updated_at desc.
type Repository interface {
	Create(ctx context.Context, a Animal) (Animal, error)
	Update(ctx context.Context, id string, p Patch) (Animal, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Animal, error)
	List(ctx context.Context, where *recordstore.Where) ([]Animal, error)
}
