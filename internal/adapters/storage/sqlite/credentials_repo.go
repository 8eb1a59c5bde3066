package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"barangay-animal-tracking/internal/ports/auth"
	"barangay-animal-tracking/internal/ports/recordstore"
)

type credentialRepo struct {
	s *Store
}

func (r *credentialRepo) Put(ctx context.Context, c auth.Credential) error {
	_, err := r.s.db.ExecContext(ctx, `
INSERT INTO credentials (email, user_id, display_name, password_hash, created_at)
VALUES (?, ?, ?, ?, ?)`,
		c.Email, c.UserID, c.DisplayName, c.PasswordHash, recordstore.ToMillis(c.CreatedAt),
	)
	if isUniqueViolation(err, "credentials.email") {
		return auth.ErrEmailExists
	}
	if err != nil {
		return fmt.Errorf("insert credential: %w", err)
	}
	return nil
}

func (r *credentialRepo) GetByEmail(ctx context.Context, email string) (auth.Credential, error) {
	var (
		c         auth.Credential
		createdAt int64
	)
	err := r.s.db.QueryRowContext(ctx,
		`SELECT email, user_id, display_name, password_hash, created_at FROM credentials WHERE email = ?`, email,
	).Scan(&c.Email, &c.UserID, &c.DisplayName, &c.PasswordHash, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return auth.Credential{}, recordstore.ErrNotFound
	}
	if err != nil {
		return auth.Credential{}, fmt.Errorf("get credential: %w", err)
	}
	c.CreatedAt = fromMillis(createdAt)
	return c, nil
}

func (r *credentialRepo) Delete(ctx context.Context, userID string) error {
	res, err := r.s.db.ExecContext(ctx, `DELETE FROM credentials WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return recordstore.ErrNotFound
	}
	return nil
}
