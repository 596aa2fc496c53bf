package upstream

import "context"

const loginPath = "/api/Auth/login"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult is the upstream session handed out on successful login.
type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
}

// Login exchanges admin credentials for an upstream bearer token. The
// caller is responsible for persisting the token into the store.
func (c *Client) Login(ctx context.Context, req LoginRequest) (LoginResult, error) {
	var result LoginResult
	if err := c.post(ctx, loginPath, req, &result); err != nil {
		return LoginResult{}, err
	}
	return result, nil
}
