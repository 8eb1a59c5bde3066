package postgres

import (
	"context"
	"database/sql"
	"errors"

	"barangay-animal-tracking/internal/ports/auth"
	"barangay-animal-tracking/internal/ports/recordstore"
)

type CredentialsRepo struct {
	db *sql.DB
}

func NewCredentialsRepo(db *sql.DB) *CredentialsRepo {
	return &CredentialsRepo{db: db}
}

func (r *CredentialsRepo) Put(ctx context.Context, c auth.Credential) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO credentials (email, user_id, display_name, password_hash, created_at)
		VALUES ($1,$2,$3,$4,$5)
	`, c.Email, c.UserID, c.DisplayName, c.PasswordHash, c.CreatedAt.UTC())
	if isUniqueViolation(err, "credentials_pkey") {
		return auth.ErrEmailExists
	}
	return err
}

func (r *CredentialsRepo) GetByEmail(ctx context.Context, email string) (auth.Credential, error) {
	var c auth.Credential
	err := r.db.QueryRowContext(ctx, `
		SELECT email, user_id, display_name, password_hash, created_at
		FROM credentials
		WHERE email = $1
	`, email).Scan(&c.Email, &c.UserID, &c.DisplayName, &c.PasswordHash, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return auth.Credential{}, recordstore.ErrNotFound
	}
	if err != nil {
		return auth.Credential{}, err
	}
	c.CreatedAt = c.CreatedAt.UTC()
	return c, nil
}

func (r *CredentialsRepo) Delete(ctx context.Context, userID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM credentials WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}
	return affectedOrNotFound(res, recordstore.ErrNotFound)
}
