package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"barangay-animal-tracking/internal/domain/animals"
	"barangay-animal-tracking/internal/ports/recordstore"

	"github.com/google/uuid"
)

type animalRepo struct {
	mu    sync.RWMutex
	byID  map[string]animals.Animal
	clock *clock
}

func NewAnimalRepo() animals.Repository {
	return NewAnimalRepoWithClock(nil)
}

func NewAnimalRepoWithClock(now func() time.Time) animals.Repository {
	return &animalRepo{
		byID:  make(map[string]animals.Animal),
		clock: newClock(now),
	}
}

func (r *animalRepo) Create(ctx context.Context, a animals.Animal) (animals.Animal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a.ID = uuid.NewString()
	a.CreatedAt = r.clock.next()
	a.UpdatedAt = a.CreatedAt
	r.byID[a.ID] = a
	return a, nil
}

func (r *animalRepo) Update(ctx context.Context, id string, p animals.Patch) (animals.Animal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return animals.Animal{}, recordstore.ErrNotFound
	}
	p.Apply(&a)
	a.UpdatedAt = r.clock.next()
	r.byID[id] = a
	return a, nil
}

func (r *animalRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return recordstore.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *animalRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return animals.Animal{}, recordstore.ErrNotFound
	}
	return a, nil
}

func (r *animalRepo) List(ctx context.Context, where *recordstore.Where) ([]animals.Animal, error) {
	match, err := animalMatcher(where)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, 0, len(r.byID))
	for _, a := range r.byID {
		if match(a) {
			out = append(out, a)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

func animalMatcher(where *recordstore.Where) (func(animals.Animal) bool, error) {
	if where == nil {
		return func(animals.Animal) bool { return true }, nil
	}
	switch where.Field {
	case animals.FieldSpecies:
		return func(a animals.Animal) bool { return strings.EqualFold(string(a.Species), where.Value) }, nil
	case animals.FieldHealthStatus:
		return func(a animals.Animal) bool { return strings.EqualFold(string(a.HealthStatus), where.Value) }, nil
	default:
		return nil, fmt.Errorf("animals: %w: %q", errUnsupportedField, where.Field)
	}
}

var errUnsupportedField = errors.New("unsupported filter field")
