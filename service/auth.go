package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/maze-arena/identity"
	"github.com/beka-birhanu/maze-arena/service/i"
	"github.com/google/uuid"
)

const tokenLifetime = 24 * time.Hour

var (
	_ i.Authenticator = &Auth{}

	ErrUsernameTaken = errors.New("username already taken")
)

// Auth registers players and issues access tokens.
type Auth struct {
	userRepo  i.UserRepo
	tokenizer i.Tokenizer
	logger    i.Logger
}

// NewAuthService creates an Auth service backed by the given repository and tokenizer.
func NewAuthService(ur i.UserRepo, t i.Tokenizer, l i.Logger) (*Auth, error) {
	if ur == nil || t == nil || l == nil {
		return nil, errors.New("auth service requires a user repo, tokenizer and logger")
	}
	return &Auth{
		userRepo:  ur,
		tokenizer: t,
		logger:    l,
	}, nil
}

// Register creates a new player account. The lookup is only a fast path;
// concurrent registrations are settled by the store's unique username.
func (a *Auth) Register(ctx context.Context, username, password string) error {
	if _, err := a.userRepo.ByUsername(ctx, username); err == nil {
		return ErrUsernameTaken
	}

	user, err := identity.NewUser(identity.UserConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	})
	if err != nil {
		return err
	}

	if err := a.userRepo.Save(ctx, user); err != nil {
		if errors.Is(err, identity.ErrUsernameConflict) {
			return ErrUsernameTaken
		}
		a.logger.Error(fmt.Sprintf("saving user %s: %s", username, err))
		return err
	}

	a.logger.Info(fmt.Sprintf("registered user: %s", user.ID))
	return nil
}

// SignIn checks the credentials and returns the user with a fresh token.
func (a *Auth) SignIn(ctx context.Context, username, password string) (*identity.User, string, error) {
	user, err := a.userRepo.ByUsername(ctx, username)
	if err != nil {
		return nil, "", identity.ErrInvalidCredentials
	}

	if !user.VerifyPassword(password) {
		return nil, "", identity.ErrInvalidCredentials
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		"userID":   user.ID.String(),
		"username": user.Username,
	}, tokenLifetime)
	if err != nil {
		a.logger.Error(fmt.Sprintf("generating token for %s: %s", user.ID, err))
		return nil, "", err
	}

	return user, token, nil
}
