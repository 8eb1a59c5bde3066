// Package local es el proveedor de identidad embebido: credenciales con
// bcrypt en el mismo store y tokens JWT HS256.
package local

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"barangay-animal-tracking/internal/ports/auth"
	"barangay-animal-tracking/internal/ports/recordstore"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultIssuer   = "barangay-animal-tracking"
	DefaultTokenTTL = 12 * time.Hour

	minSecretLen = 16
)

type Config struct {
	Secret   string
	TokenTTL time.Duration
	Issuer   string

	// bcrypt cost; 0 = bcrypt.DefaultCost
	Cost int
}

// Provider implementa auth.IdentityProvider y auth.AuthVerifier.
type Provider struct {
	creds  auth.CredentialRepository
	secret []byte
	ttl    time.Duration
	issuer string
	cost   int
	now    func() time.Time
}

type tokenClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

func New(creds auth.CredentialRepository, cfg Config) (*Provider, error) {
	if creds == nil {
		return nil, errors.New("local auth: credential repository required")
	}
	if len(cfg.Secret) < minSecretLen {
		return nil, fmt.Errorf("local auth: secret must have at least %d bytes", minSecretLen)
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = DefaultTokenTTL
	}
	if strings.TrimSpace(cfg.Issuer) == "" {
		cfg.Issuer = DefaultIssuer
	}
	if cfg.Cost == 0 {
		cfg.Cost = bcrypt.DefaultCost
	}
	return &Provider{
		creds:  creds,
		secret: []byte(cfg.Secret),
		ttl:    cfg.TokenTTL,
		issuer: cfg.Issuer,
		cost:   cfg.Cost,
		now:    time.Now,
	}, nil
}

func (p *Provider) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", auth.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	uid := uuid.NewString()
	if err := p.creds.Put(ctx, auth.Credential{
		UserID:       uid,
		Email:        email,
		DisplayName:  strings.TrimSpace(displayName),
		PasswordHash: string(hash),
		CreatedAt:    p.now().UTC(),
	}); err != nil {
		return "", err
	}
	return uid, nil
}

func (p *Provider) DeleteUser(ctx context.Context, userID string) error {
	err := p.creds.Delete(ctx, userID)
	if errors.Is(err, recordstore.ErrNotFound) {
		return nil
	}
	return err
}

// Login valida email + password y emite un token.
func (p *Provider) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	c, err := p.creds.GetByEmail(ctx, email)
	if errors.Is(err, recordstore.ErrNotFound) {
		return "", time.Time{}, auth.ErrInvalidCredentials
	}
	if err != nil {
		return "", time.Time{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) != nil {
		return "", time.Time{}, auth.ErrInvalidCredentials
	}
	return p.Issue(auth.Claims{UserID: c.UserID, Email: c.Email})
}

// Issue firma un token para claims.
func (p *Provider) Issue(c auth.Claims) (string, time.Time, error) {
	now := p.now().UTC()
	exp := now.Add(p.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    p.issuer,
			Subject:   c.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
			ID:        uuid.NewString(),
		},
		Email: c.Email,
	})
	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

func (p *Provider) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, auth.ErrInvalidToken
	}

	var parsed tokenClaims
	_, err := jwt.ParseWithClaims(token, &parsed, func(t *jwt.Token) (any, error) {
		return p.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(p.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}
	if parsed.Subject == "" {
		return auth.Claims{}, auth.ErrInvalidToken
	}

	return auth.Claims{UserID: parsed.Subject, Email: parsed.Email}, nil
}
