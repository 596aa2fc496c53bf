package auth

import (
	"context"
	"net/http"
	"testing"

	"github.com/cmlabs-hris/hris-admin-gateway/internal/domain/auth"
	"github.com/cmlabs-hris/hris-admin-gateway/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-admin-gateway/internal/pkg/tokenstore"
	"github.com/cmlabs-hris/hris-admin-gateway/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-admin-gateway/internal/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthenticator struct {
	result upstream.LoginResult
	err    error
	calls  int
}

func (f *fakeAuthenticator) Login(ctx context.Context, req upstream.LoginRequest) (upstream.LoginResult, error) {
	f.calls++
	return f.result, f.err
}

func newTestAuthService(authenticator UpstreamAuthenticator, store tokenstore.Store) auth.AuthService {
	jwtService := jwt.NewJWTService("test-secret", "15m", "168h")
	return NewAuthService(authenticator, store, jwtService)
}

func TestAuthService_Login_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := tokenstore.NewMemoryStore()
	authenticator := &fakeAuthenticator{
		result: upstream.LoginResult{
			Token:    "upstream-bearer",
			Username: "admin",
			FullName: "Admin User",
		},
	}
	svc := newTestAuthService(authenticator, store)

	// Act
	resp, err := svc.Login(ctx, auth.LoginRequest{Username: "admin", Password: "secret"})

	// Assert: gateway session minted and the upstream bearer persisted.
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "admin", resp.Username)
	assert.Equal(t, "Admin User", resp.FullName)

	stored, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "upstream-bearer", stored)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := tokenstore.NewMemoryStore()
	authenticator := &fakeAuthenticator{
		err: &upstream.APIError{StatusCode: http.StatusUnauthorized, Message: "bad credentials"},
	}
	svc := newTestAuthService(authenticator, store)

	// Act
	_, err := svc.Login(ctx, auth.LoginRequest{Username: "admin", Password: "wrong"})

	// Assert
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
	_, loadErr := store.Load(ctx)
	assert.ErrorIs(t, loadErr, tokenstore.ErrNoToken)
}

func TestAuthService_Login_RejectsEmptyCredentials(t *testing.T) {
	t.Parallel()

	authenticator := &fakeAuthenticator{}
	svc := newTestAuthService(authenticator, tokenstore.NewMemoryStore())

	// Act
	_, err := svc.Login(context.Background(), auth.LoginRequest{})

	// Assert: fails locally without an upstream round trip.
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, 0, authenticator.calls)
}

func TestAuthService_Login_EmptyUpstreamToken(t *testing.T) {
	t.Parallel()

	authenticator := &fakeAuthenticator{
		result: upstream.LoginResult{Username: "admin"},
	}
	svc := newTestAuthService(authenticator, tokenstore.NewMemoryStore())

	// Act
	_, err := svc.Login(context.Background(), auth.LoginRequest{Username: "admin", Password: "secret"})

	// Assert
	assert.ErrorIs(t, err, auth.ErrUpstreamAuth)
}

func TestAuthService_Refresh_MintsNewAccessToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := tokenstore.NewMemoryStore()
	authenticator := &fakeAuthenticator{
		result: upstream.LoginResult{Token: "upstream-bearer", Username: "admin", FullName: "Admin User"},
	}
	svc := newTestAuthService(authenticator, store)

	login, err := svc.Login(ctx, auth.LoginRequest{Username: "admin", Password: "secret"})
	require.NoError(t, err)

	// Act
	resp, err := svc.Refresh(ctx, auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := tokenstore.NewMemoryStore()
	authenticator := &fakeAuthenticator{
		result: upstream.LoginResult{Token: "upstream-bearer", Username: "admin"},
	}
	svc := newTestAuthService(authenticator, store)

	login, err := svc.Login(ctx, auth.LoginRequest{Username: "admin", Password: "secret"})
	require.NoError(t, err)

	// Act: an access token presented where a refresh token belongs.
	_, err = svc.Refresh(ctx, auth.RefreshTokenRequest{RefreshToken: login.AccessToken})

	// Assert
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_Logout_ClearsUpstreamToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := tokenstore.NewMemoryStore()
	require.NoError(t, store.Save(ctx, "upstream-bearer"))
	svc := newTestAuthService(&fakeAuthenticator{}, store)

	// Act
	require.NoError(t, svc.Logout(ctx))

	// Assert
	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, tokenstore.ErrNoToken)
}
