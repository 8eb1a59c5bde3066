// Package identity habla con un IAM externo por HTTP: verifica tokens y
// provisiona / revoca usuarios.
package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"barangay-animal-tracking/internal/platform/httpclient"
	"barangay-animal-tracking/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("identity client not configured")
	ErrUnauthorized  = errors.New("identity unauthorized")
	ErrUpstream      = errors.New("identity upstream error")
)

const (
	verifyPath = "/v1/tokens/verify"
	usersPath  = "/v1/users"
)

type Config struct {
	BaseURL string
	APIKey  string

	// Si está vacío, se usa "X-Api-Key".
	APIKeyHeader string

	Timeout time.Duration

	// Opcional (tests).
	Transport http.RoundTripper
}

type Client struct {
	http *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" || strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrNotConfigured
	}
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}

	hc, err := httpclient.New(httpclient.Options{
		BaseURL:        cfg.BaseURL,
		Timeout:        cfg.Timeout,
		Transport:      cfg.Transport,
		DefaultHeaders: map[string]string{h: strings.TrimSpace(cfg.APIKey)},
	})
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

// VerifyToken pide al IAM los claims de un token.
func (c *Client) VerifyToken(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrUnauthorized
	}

	var out struct {
		UserID string `json:"user_id"`
		Email  string `json:"email"`
	}
	err := c.http.DoJSON(ctx, http.MethodPost, verifyPath,
		map[string]string{"Authorization": "Bearer " + token},
		map[string]string{"token": token},
		&out,
	)
	if err != nil {
		return auth.Claims{}, classify(err)
	}

	out.UserID = strings.TrimSpace(out.UserID)
	if out.UserID == "" {
		return auth.Claims{}, fmt.Errorf("%w: response missing user_id", ErrUpstream)
	}
	return auth.Claims{UserID: out.UserID, Email: strings.TrimSpace(out.Email)}, nil
}

// CreateUser provisiona la credencial y devuelve el uid del IAM.
func (c *Client) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	var out struct {
		UserID string `json:"user_id"`
	}
	err := c.http.DoJSON(ctx, http.MethodPost, usersPath, nil, map[string]string{
		"email":        email,
		"password":     password,
		"display_name": displayName,
	}, &out)
	if err != nil {
		if httpclient.StatusOf(err) == http.StatusConflict {
			return "", auth.ErrEmailExists
		}
		return "", classify(err)
	}
	if strings.TrimSpace(out.UserID) == "" {
		return "", fmt.Errorf("%w: response missing user_id", ErrUpstream)
	}
	return out.UserID, nil
}

// DeleteUser revoca la credencial. Un 404 cuenta como éxito.
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	err := c.http.DoJSON(ctx, http.MethodDelete, usersPath+"/"+url.PathEscape(userID), nil, nil, nil)
	if err != nil && httpclient.StatusOf(err) != http.StatusNotFound {
		return classify(err)
	}
	return nil
}

func classify(err error) error {
	switch httpclient.StatusOf(err) {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	default:
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
}

var _ auth.IdentityProvider = (*Client)(nil)
