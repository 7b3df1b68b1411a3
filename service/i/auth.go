package i

import (
	"context"

	"github.com/beka-birhanu/maze-arena/identity"
)

// Authenticator registers players and signs them in.
type Authenticator interface {
	Register(ctx context.Context, username, password string) error
	SignIn(ctx context.Context, username, password string) (*identity.User, string, error)
}
