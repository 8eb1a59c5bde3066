package local

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"barangay-animal-tracking/internal/adapters/storage/memory"
	"barangay-animal-tracking/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "0123456789abcdef0123"

func newTestProvider(t *testing.T) *Provider {
	t.Helper()
	p, err := New(memory.NewCredentialRepo(), Config{Secret: testSecret, Cost: bcrypt.MinCost})
	require.NoError(t, err)
	return p
}

func TestNew_RejectsShortSecret(t *testing.T) {
	_, err := New(memory.NewCredentialRepo(), Config{Secret: "short"})
	assert.Error(t, err)
}

func TestProvider_CreateLoginVerify(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	uid, err := p.CreateUser(ctx, " Vet@Barangay.com ", "password123", "Dr. Veterinarian")
	require.NoError(t, err)
	require.NotEmpty(t, uid)

	_, err = p.CreateUser(ctx, "vet@barangay.com", "other", "Dup")
	assert.ErrorIs(t, err, auth.ErrEmailExists)

	token, exp, err := p.Login(ctx, "vet@barangay.com", "password123")
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	claims, err := p.Verify(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, auth.Claims{UserID: uid, Email: "vet@barangay.com"}, claims)

	_, _, err = p.Login(ctx, "vet@barangay.com", "wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	_, _, err = p.Login(ctx, "ghost@barangay.com", "password123")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestProvider_DeleteUserRevokesLogin(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	uid, err := p.CreateUser(ctx, "staff@barangay.com", "password123", "Staff")
	require.NoError(t, err)

	require.NoError(t, p.DeleteUser(ctx, uid))
	require.NoError(t, p.DeleteUser(ctx, uid))

	_, _, err = p.Login(ctx, "staff@barangay.com", "password123")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestProvider_VerifyRejects(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	t.Run("expired", func(t *testing.T) {
		token, _, err := p.Issue(auth.Claims{UserID: "u1"})
		require.NoError(t, err)

		p.now = func() time.Time { return time.Now().Add(DefaultTokenTTL + time.Minute) }
		defer func() { p.now = time.Now }()

		_, err = p.Verify(ctx, token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("other secret", func(t *testing.T) {
		other, err := New(memory.NewCredentialRepo(), Config{Secret: "another-secret-of-16"})
		require.NoError(t, err)
		token, _, err := other.Issue(auth.Claims{UserID: "u1"})
		require.NoError(t, err)

		_, err = p.Verify(ctx, token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("alg none", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
			Issuer:    DefaultIssuer,
			Subject:   "u1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = p.Verify(ctx, token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := p.Verify(ctx, " ")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

func TestLoginHandler(t *testing.T) {
	p := newTestProvider(t)
	_, err := p.CreateUser(context.Background(), "admin@barangay.com", "password123", "Admin")
	require.NoError(t, err)

	r := chi.NewRouter()
	RegisterRoutes(r, p)

	cases := []struct {
		name string
		body string
		want int
	}{
		{"ok", `{"email":"admin@barangay.com","password":"password123"}`, http.StatusOK},
		{"wrong password", `{"email":"admin@barangay.com","password":"nope"}`, http.StatusUnauthorized},
		{"bad json", `{`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tc.body)))
			assert.Equal(t, tc.want, rec.Code)
			if tc.want == http.StatusOK {
				assert.Contains(t, rec.Body.String(), `"token":"`)
			}
		})
	}
}
