package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/hris-admin-gateway/internal/domain/auth"
	"github.com/cmlabs-hris/hris-admin-gateway/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-admin-gateway/internal/pkg/tokenstore"
	"github.com/cmlabs-hris/hris-admin-gateway/internal/upstream"
)

// UpstreamAuthenticator is the slice of the upstream client this
// service needs.
type UpstreamAuthenticator interface {
	Login(ctx context.Context, req upstream.LoginRequest) (upstream.LoginResult, error)
}

type AuthServiceImpl struct {
	upstream UpstreamAuthenticator
	store    tokenstore.Store
	jwt.Service
}

func NewAuthService(upstreamClient UpstreamAuthenticator, store tokenstore.Store, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		upstream: upstreamClient,
		store:    store,
		Service:  jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	result, err := a.upstream.Login(ctx, upstream.LoginRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusBadRequest) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("upstream login failed: %w", err)
	}
	if result.Token == "" {
		return auth.TokenResponse{}, auth.ErrUpstreamAuth
	}

	// The upstream bearer token becomes the gateway's shared session;
	// AuthTransport rotates it from here on.
	if err := a.store.Save(ctx, result.Token); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to save upstream token: %w", err)
	}

	var tokenResponse auth.TokenResponse
	tokenResponse.Username = result.Username
	tokenResponse.FullName = result.FullName

	tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(result.Username, result.FullName)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(result.Username, result.FullName)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return tokenResponse, nil
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	username, fullName, err := a.Service.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	var resp auth.AccessTokenResponse
	resp.AccessToken, resp.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(username, fullName)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return resp, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear upstream token: %w", err)
	}
	return nil
}
