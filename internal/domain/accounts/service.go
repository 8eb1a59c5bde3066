package accounts

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"barangay-animal-tracking/internal/ports/auth"
	"barangay-animal-tracking/internal/ports/recordstore"
)

const minPasswordLen = 6

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = recordstore.ErrNotFound
	ErrEmailTaken   = errors.New("email already registered")
	ErrForbidden    = errors.New("forbidden")
)

type Service struct {
	repo Repository
	idp  auth.IdentityProvider
}

func NewService(repo Repository, idp auth.IdentityProvider) *Service {
	return &Service{repo: repo, idp: idp}
}

type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Role     string // vacío => staff
}

// Register provisiona la credencial y después guarda el perfil con el id
// devuelto. Si falla el guardado, la credencial queda creada.
func (s *Service) Register(ctx context.Context, in RegisterInput) (Account, error) {
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return Account{}, err
	}
	if len(in.Password) < minPasswordLen {
		return Account{}, fmt.Errorf("%w: password must have at least %d characters", ErrInvalidInput, minPasswordLen)
	}
	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" {
		return Account{}, ErrInvalidInput
	}

	role := RoleStaff
	if v := strings.TrimSpace(in.Role); v != "" {
		role = Role(strings.ToLower(v))
		if !role.Valid() {
			return Account{}, ErrInvalidInput
		}
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return Account{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return Account{}, err
	}

	if s.idp == nil {
		return Account{}, errors.New("identity provider not configured")
	}
	uid, err := s.idp.CreateUser(ctx, email, in.Password, fullName)
	if errors.Is(err, auth.ErrEmailExists) {
		return Account{}, ErrEmailTaken
	}
	if err != nil {
		return Account{}, err
	}

	return s.repo.Create(ctx, Account{
		ID:       uid,
		Email:    email,
		FullName: fullName,
		Role:     role,
	})
}

func (s *Service) Get(ctx context.Context, id string) (Account, error) {
	if strings.TrimSpace(id) == "" {
		return Account{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (Account, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return Account{}, ErrNotFound
	}
	return s.repo.GetByEmail(ctx, email)
}

// List filtra por rol; vacío = todos.
func (s *Service) List(ctx context.Context, role string) ([]Account, error) {
	role = strings.ToLower(strings.TrimSpace(role))
	if role != "" && !Role(role).Valid() {
		return nil, ErrInvalidInput
	}
	return s.repo.List(ctx, recordstore.Eq(FieldRole, role))
}

func (s *Service) Update(ctx context.Context, id string, p Patch) (Account, error) {
	if strings.TrimSpace(id) == "" {
		return Account{}, ErrInvalidInput
	}
	if p.FullName != nil {
		n := strings.TrimSpace(*p.FullName)
		p.FullName = &n
	}
	if err := p.Validate(); err != nil {
		return Account{}, err
	}
	return s.repo.Update(ctx, id, p)
}

// Delete borra el perfil y después intenta revocar la credencial.
func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.idp == nil {
		return nil
	}
	if err := s.idp.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("profile deleted, credential not revoked: %w", err)
	}
	return nil
}

// RoleOf devuelve el rol del usuario (lo usa middleware.RequireRole).
func (s *Service) RoleOf(ctx context.Context, userID string) (string, error) {
	a, err := s.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	return string(a.Role), nil
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", ErrInvalidInput
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	return email, nil
}
