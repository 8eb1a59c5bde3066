package auth

import (
	"context"
	"errors"
	"time"
)

var ErrEmailExists = errors.New("credential email already exists")

// Credential es lo que guarda el proveedor local (hash bcrypt, nunca el password).
type Credential struct {
	UserID       string
	Email        string
	DisplayName  string
	PasswordHash string
	CreatedAt    time.Time
}

// CredentialRepository persiste credenciales del proveedor local.
// GetByEmail devuelve recordstore.ErrNotFound en un miss.
type CredentialRepository interface {
	Put(ctx context.Context, c Credential) error
	GetByEmail(ctx context.Context, email string) (Credential, error)
	Delete(ctx context.Context, userID string) error
}
