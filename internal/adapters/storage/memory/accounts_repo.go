package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"barangay-animal-tracking/internal/domain/accounts"
	"barangay-animal-tracking/internal/ports/recordstore"
)

type accountRepo struct {
	mu    sync.RWMutex
	byID  map[string]accounts.Account
	clock *clock
}

func NewAccountRepo() accounts.Repository {
	return NewAccountRepoWithClock(nil)
}

func NewAccountRepoWithClock(now func() time.Time) accounts.Repository {
	return &accountRepo{
		byID:  make(map[string]accounts.Account),
		clock: newClock(now),
	}
}

func (r *accountRepo) Create(ctx context.Context, a accounts.Account) (accounts.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return accounts.Account{}, errors.New("account id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return accounts.Account{}, errors.New("account already exists")
	}
	for _, other := range r.byID {
		if other.Email == a.Email {
			return accounts.Account{}, accounts.ErrEmailTaken
		}
	}

	a.CreatedAt = r.clock.next()
	a.UpdatedAt = a.CreatedAt
	r.byID[a.ID] = a
	return a, nil
}

func (r *accountRepo) GetByID(ctx context.Context, id string) (accounts.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return accounts.Account{}, recordstore.ErrNotFound
	}
	return a, nil
}

func (r *accountRepo) GetByEmail(ctx context.Context, email string) (accounts.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.byID {
		if a.Email == email {
			return a, nil
		}
	}
	return accounts.Account{}, recordstore.ErrNotFound
}

func (r *accountRepo) List(ctx context.Context, where *recordstore.Where) ([]accounts.Account, error) {
	if where != nil && where.Field != accounts.FieldRole {
		return nil, fmt.Errorf("accounts: %w: %q", errUnsupportedField, where.Field)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]accounts.Account, 0, len(r.byID))
	for _, a := range r.byID {
		if where != nil && string(a.Role) != where.Value {
			continue
		}
		out = append(out, a)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *accountRepo) Update(ctx context.Context, id string, p accounts.Patch) (accounts.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return accounts.Account{}, recordstore.ErrNotFound
	}
	p.Apply(&a)
	a.UpdatedAt = r.clock.next()
	r.byID[id] = a
	return a, nil
}

func (r *accountRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return recordstore.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
