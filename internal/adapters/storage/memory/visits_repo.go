package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"barangay-animal-tracking/internal/domain/visits"

	"github.com/google/uuid"
)

type storedVisit struct {
	visits.Visit
	seq int64
}

type visitRepo struct {
	mu    sync.RWMutex
	items []storedVisit
	seq   int64
	clock *clock
}

func NewVisitRepo() visits.Repository {
	return NewVisitRepoWithClock(nil)
}

func NewVisitRepoWithClock(now func() time.Time) visits.Repository {
	return &visitRepo{clock: newClock(now)}
}

func (r *visitRepo) Create(ctx context.Context, v visits.Visit) (visits.Visit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	v.ID = uuid.NewString()
	v.CreatedAt = r.clock.next()
	r.items = append(r.items, storedVisit{Visit: v, seq: r.seq})
	return v, nil
}

func (r *visitRepo) ListByAnimal(ctx context.Context, animalID string) ([]visits.Visit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]storedVisit, 0)
	for _, sv := range r.items {
		if sv.AnimalID == animalID {
			matched = append(matched, sv)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].seq > matched[j].seq
	})

	out := make([]visits.Visit, 0, len(matched))
	for _, sv := range matched {
		out = append(out, sv.Visit)
	}
	return out, nil
}
