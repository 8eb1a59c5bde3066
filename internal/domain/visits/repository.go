package visits

import "context"

// Repository: Create asigna id y created_at. ListByAnimal devuelve
// created_at desc (empates: el último insertado primero).
type Repository interface {
	Create(ctx context.Context, v Visit) (Visit, error)
	ListByAnimal(ctx context.Context, animalID string) ([]Visit, error)
}
