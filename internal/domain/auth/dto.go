package auth

import (
	"github.com/cmlabs-hris/hris-admin-gateway/internal/pkg/validator"
)

// LoginRequest carries the admin credentials forwarded to the upstream
// API.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "username is required"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// TokenResponse is the gateway session minted after a successful
// upstream login.
type TokenResponse struct {
	AccessToken           string `json:"accessToken"`
	AccessTokenExpiresIn  int64  `json:"accessTokenExpiresIn"`
	RefreshToken          string `json:"refreshToken"`
	RefreshTokenExpiresIn int64  `json:"refreshTokenExpiresIn"`
	Username              string `json:"username"`
	FullName              string `json:"fullName"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// AccessTokenResponse is the payload of a gateway token refresh.
type AccessTokenResponse struct {
	AccessToken          string `json:"accessToken"`
	AccessTokenExpiresIn int64  `json:"accessTokenExpiresIn"`
}
