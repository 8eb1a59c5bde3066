package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"barangay-animal-tracking/internal/domain/accounts"
	"barangay-animal-tracking/internal/ports/recordstore"
)

type AccountsRepo struct {
	db    *sql.DB
	clock *clock
}

func NewAccountsRepo(db *sql.DB) *AccountsRepo {
	return &AccountsRepo{db: db, clock: newClock()}
}

const accountColumns = `id, email, full_name, role, animals_managed, created_at, updated_at`

func (r *AccountsRepo) Create(ctx context.Context, a accounts.Account) (accounts.Account, error) {
	if strings.TrimSpace(a.ID) == "" {
		return accounts.Account{}, errors.New("account id required")
	}
	a.CreatedAt = r.clock.next()
	a.UpdatedAt = a.CreatedAt

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (`+accountColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		a.ID,
		a.Email,
		a.FullName,
		string(a.Role),
		a.AnimalsManaged,
		a.CreatedAt,
		a.UpdatedAt,
	)
	if isUniqueViolation(err, "accounts_email_key") {
		return accounts.Account{}, accounts.ErrEmailTaken
	}
	if err != nil {
		return accounts.Account{}, err
	}
	return a, nil
}

func (r *AccountsRepo) GetByID(ctx context.Context, id string) (accounts.Account, error) {
	return scanAccount(r.db.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id))
}

func (r *AccountsRepo) GetByEmail(ctx context.Context, email string) (accounts.Account, error) {
	return scanAccount(r.db.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE email = $1`, email))
}

func (r *AccountsRepo) List(ctx context.Context, where *recordstore.Where) ([]accounts.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts`
	var args []any
	if where != nil {
		if where.Field != accounts.FieldRole {
			return nil, fmt.Errorf("accounts: unsupported filter field %q", where.Field)
		}
		query += ` WHERE role = $1`
		args = append(args, where.Value)
	}
	query += ` ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
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

func (r *AccountsRepo) Update(ctx context.Context, id string, p accounts.Patch) (accounts.Account, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return accounts.Account{}, err
	}
	defer func() { _ = tx.Rollback() }()

	a, err := scanAccount(tx.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return accounts.Account{}, err
	}
	p.Apply(&a)
	a.UpdatedAt = r.clock.next()

	if _, err := tx.ExecContext(ctx, `
		UPDATE accounts
		SET full_name = $2, role = $3, animals_managed = $4, updated_at = $5
		WHERE id = $1
	`, id, a.FullName, string(a.Role), a.AnimalsManaged, a.UpdatedAt); err != nil {
		return accounts.Account{}, err
	}
	if err := tx.Commit(); err != nil {
		return accounts.Account{}, err
	}
	return a, nil
}

func (r *AccountsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return affectedOrNotFound(res, recordstore.ErrNotFound)
}

func scanAccount(row rowScanner) (accounts.Account, error) {
	var a accounts.Account
	var role string
	err := row.Scan(&a.ID, &a.Email, &a.FullName, &role, &a.AnimalsManaged, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return accounts.Account{}, recordstore.ErrNotFound
	}
	if err != nil {
		return accounts.Account{}, err
	}
	a.Role = accounts.Role(role)
	a.CreatedAt = a.CreatedAt.UTC()
	a.UpdatedAt = a.UpdatedAt.UTC()
	return a, nil
}
