package i

import (
	"context"

	"github.com/beka-birhanu/maze-arena/game"
	"github.com/beka-birhanu/maze-arena/identity"
	"github.com/google/uuid"
)

// UserRepo defines the interface for user persistence operations.
type UserRepo interface {
	// Save inserts or updates a user in the repository.
	// If the user already exists, it updates the record. Otherwise, it creates a new one.
	Save(ctx context.Context, user *identity.User) error

	// ByID retrieves a user by their unique ID.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByID(ctx context.Context, id uuid.UUID) (*identity.User, error)

	// ByUsername retrieves a user by their username.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByUsername(ctx context.Context, username string) (*identity.User, error)
}

// AttemptRepo records replays and aggregates them per player.
type AttemptRepo interface {
	Save(ctx context.Context, attempt *game.Attempt) error
	Stats(ctx context.Context, playerID uuid.UUID) (game.Stats, error)
}
