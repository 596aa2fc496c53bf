package auth

import "context"

type AuthService interface {
	// Login forwards credentials upstream, stores the upstream bearer
	// token on success and mints a gateway session.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Refresh verifies a gateway refresh token and mints a new access
	// token.
	Refresh(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)

	// Logout drops the stored upstream token.
	Logout(ctx context.Context) error
}
