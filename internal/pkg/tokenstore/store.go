// Package tokenstore persists the upstream HR API bearer token. The
// token is a single slot under a fixed key: absence means the gateway is
// unauthenticated upstream.
package tokenstore

import (
	"context"
	"errors"
)

// ErrNoToken is returned by Load when no token has been saved, or after
// Clear.
var ErrNoToken = errors.New("no upstream token stored")

type Store interface {
	// Load returns the stored bearer token, or ErrNoToken.
	Load(ctx context.Context) (string, error)

	// Save replaces the stored token.
	Save(ctx context.Context, token string) error

	// Clear removes the stored token. Clearing an empty slot is not an
	// error.
	Clear(ctx context.Context) error
}
