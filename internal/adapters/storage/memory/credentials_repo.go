package memory

import (
	"context"
	"sync"

	"barangay-animal-tracking/internal/ports/auth"
	"barangay-animal-tracking/internal/ports/recordstore"
)

type credentialRepo struct {
	mu      sync.RWMutex
	byEmail map[string]auth.Credential
}

func NewCredentialRepo() auth.CredentialRepository {
	return &credentialRepo{byEmail: make(map[string]auth.Credential)}
}

func (r *credentialRepo) Put(ctx context.Context, c auth.Credential) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[c.Email]; exists {
		return auth.ErrEmailExists
	}
	r.byEmail[c.Email] = c
	return nil
}

func (r *credentialRepo) GetByEmail(ctx context.Context, email string) (auth.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byEmail[email]
	if !ok {
		return auth.Credential{}, recordstore.ErrNotFound
	}
	return c, nil
}

func (r *credentialRepo) Delete(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for email, c := range r.byEmail {
		if c.UserID == userID {
			delete(r.byEmail, email)
			return nil
		}
	}
	return recordstore.ErrNotFound
}
