package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"barangay-animal-tracking/internal/domain/accounts"
	"barangay-animal-tracking/internal/ports/recordstore"
)

type accountRepo struct {
	s *Store
}

const accountColumns = `id, email, full_name, role, animals_managed, created_at, updated_at`

func (r *accountRepo) Create(ctx context.Context, a accounts.Account) (accounts.Account, error) {
	if strings.TrimSpace(a.ID) == "" {
		return accounts.Account{}, errors.New("account id required")
	}
	a.CreatedAt = r.s.tick()
	a.UpdatedAt = a.CreatedAt

	_, err := r.s.db.ExecContext(ctx, `
INSERT INTO accounts (`+accountColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Email, a.FullName, string(a.Role), a.AnimalsManaged,
		toMillis(a.CreatedAt), toMillis(a.UpdatedAt),
	)
	if isUniqueViolation(err, "accounts.email") {
		return accounts.Account{}, accounts.ErrEmailTaken
	}
	if err != nil {
		return accounts.Account{}, fmt.Errorf("insert account: %w", err)
	}
	return a, nil
}

func (r *accountRepo) GetByID(ctx context.Context, id string) (accounts.Account, error) {
	return scanAccount(r.s.db.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id))
}

func (r *accountRepo) GetByEmail(ctx context.Context, email string) (accounts.Account, error) {
	return scanAccount(r.s.db.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE email = ?`, email))
}

func (r *accountRepo) List(ctx context.Context, where *recordstore.Where) ([]accounts.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts`
	var args []any
	if where != nil {
		if where.Field != accounts.FieldRole {
			return nil, fmt.Errorf("accounts: unsupported filter field %q", where.Field)
		}
		query += ` WHERE role = ?`
		args = append(args, where.Value)
	}
	query += ` ORDER BY created_at`

	rows, err := r.s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	out := make([]accounts.Account, 0)
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *accountRepo) Update(ctx context.Context, id string, p accounts.Patch) (accounts.Account, error) {
	tx, err := r.s.db.BeginTx(ctx, nil)
	if err != nil {
		return accounts.Account{}, err
	}
	defer func() { _ = tx.Rollback() }()

	a, err := scanAccount(tx.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id))
	if err != nil {
		return accounts.Account{}, err
	}
	p.Apply(&a)
	a.UpdatedAt = r.s.tick()

	if _, err := tx.ExecContext(ctx,
		`UPDATE accounts SET full_name = ?, role = ?, animals_managed = ?, updated_at = ? WHERE id = ?`,
		a.FullName, string(a.Role), a.AnimalsManaged, toMillis(a.UpdatedAt), id,
	); err != nil {
		return accounts.Account{}, fmt.Errorf("update account: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return accounts.Account{}, err
	}
	return a, nil
}

func (r *accountRepo) Delete(ctx context.Context, id string) error {
	res, err := r.s.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
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

func scanAccount(row rowScanner) (accounts.Account, error) {
	var (
		a                    accounts.Account
		role                 string
		createdAt, updatedAt int64
	)
	err := row.Scan(&a.ID, &a.Email, &a.FullName, &role, &a.AnimalsManaged, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return accounts.Account{}, recordstore.ErrNotFound
	}
	if err != nil {
		return accounts.Account{}, fmt.Errorf("scan account: %w", err)
	}
	a.Role = accounts.Role(role)
	a.CreatedAt = fromMillis(createdAt)
	a.UpdatedAt = fromMillis(updatedAt)
	return a, nil
}
