package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/hris-admin-gateway/internal/pkg/tokenstore"
	"golang.org/x/sync/singleflight"
)

// RefreshPath is the one endpoint the 401 recovery never retries, to
// prevent a refresh loop.
const RefreshPath = "/api/Auth/refresh-admin-token"

// AuthTransport attaches the stored bearer token to outgoing requests
// and recovers from 401 responses.
//
// Recovery rules: a 401 triggers recovery only when a token was attached
// and the request is not the refresh endpoint itself. However many
// requests 401 inside one expiry window, exactly one refresh call is
// issued; the rest wait on it and each replays its original request once
// with the new token. A failed refresh clears the stored token (implicit
// logout) and the original 401 is returned unchanged.
type AuthTransport struct {
	// Base is the underlying RoundTripper. http.DefaultTransport when
	// nil.
	Base http.RoundTripper

	// Store holds the bearer token slot.
	Store tokenstore.Store

	// BaseURL is the upstream root, needed to issue the refresh call.
	BaseURL string

	sf singleflight.Group
}

func (t *AuthTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	token, err := t.Store.Load(ctx)
	if err != nil && !errors.Is(err, tokenstore.ErrNoToken) {
		return nil, fmt.Errorf("failed to load upstream token: %w", err)
	}

	// The incoming request is cloned, never mutated: other layers may
	// hold a reference to it.
	outReq := req
	attached := token != ""
	if attached {
		outReq = req.Clone(ctx)
		outReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.base().RoundTrip(outReq)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusUnauthorized || !attached || req.URL.Path == RefreshPath {
		return resp, nil
	}

	newToken, refreshErr := t.refresh(ctx, token)
	if refreshErr != nil {
		// Token generation is dead; the caller sees the original 401.
		return resp, nil
	}

	replay, err := t.rewind(req)
	if err != nil {
		return resp, nil
	}
	resp.Body.Close()

	replay.Header.Set("Authorization", "Bearer "+newToken)
	return t.base().RoundTrip(replay)
}

// refresh funnels all concurrent 401s into at most one refresh call.
// Waiters share the winner's result.
func (t *AuthTransport) refresh(ctx context.Context, current string) (string, error) {
	v, err, _ := t.sf.Do("refresh", func() (interface{}, error) {
		// Another flight may have finished between our 401 and this
		// call; if the slot already holds a different token, use it.
		stored, loadErr := t.Store.Load(ctx)
		if loadErr == nil && stored != "" && stored != current {
			return stored, nil
		}

		token, refreshErr := t.doRefresh(ctx, current)
		if refreshErr != nil {
			_ = t.Store.Clear(ctx)
			return "", refreshErr
		}
		if saveErr := t.Store.Save(ctx, token); saveErr != nil {
			return "", saveErr
		}
		return token, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// doRefresh exchanges the current token for a fresh one. The call goes
// straight to the base transport: running it through RoundTrip would
// re-enter the 401 recovery.
func (t *AuthTransport) doRefresh(ctx context.Context, current string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.BaseURL+RefreshPath, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build refresh request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+current)

	resp, err := t.base().RoundTrip(req)
	if err != nil {
		return "", fmt.Errorf("refresh request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return "", fmt.Errorf("failed to decode refresh response: %w", err)
	}
	if resp.StatusCode >= 400 || !env.IsSuccess {
		return "", newAPIError(resp.StatusCode, env)
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return "", fmt.Errorf("failed to decode refresh payload: %w", err)
	}
	if payload.Token == "" {
		return "", fmt.Errorf("refresh response carried no token")
	}
	return payload.Token, nil
}

// rewind clones the request with a fresh body for the replay. Requests
// without GetBody cannot be replayed safely.
func (t *AuthTransport) rewind(req *http.Request) (*http.Request, error) {
	replay := req.Clone(req.Context())
	if req.Body == nil || req.Body == http.NoBody {
		return replay, nil
	}
	if req.GetBody == nil {
		return nil, fmt.Errorf("request body cannot be replayed")
	}
	body, err := req.GetBody()
	if err != nil {
		return nil, fmt.Errorf("failed to rewind request body: %w", err)
	}
	replay.Body = body
	return replay, nil
}
