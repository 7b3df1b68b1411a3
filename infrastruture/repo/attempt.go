package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/beka-birhanu/maze-arena/game"
	"github.com/beka-birhanu/maze-arena/maze"
	"github.com/beka-birhanu/maze-arena/service/i"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var _ i.AttemptRepo = &AttemptRepo{}

// AttemptRepo stores replay attempts and aggregates them per player.
type AttemptRepo struct {
	collection *mongo.Collection
}

// NewAttemptRepo creates an AttemptRepo on the given database and collection.
func NewAttemptRepo(client *mongo.Client, dbName, collectionName string) *AttemptRepo {
	return &AttemptRepo{
		collection: client.Database(dbName).Collection(collectionName),
	}
}

// EnsureIndexes creates the index used by Stats.
func (r *AttemptRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "playerId", Value: 1}, {Key: "outcome", Value: 1}},
	})
	return err
}

// Save inserts the attempt.
func (r *AttemptRepo) Save(ctx context.Context, attempt *game.Attempt) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, attempt); err != nil {
		return fmt.Errorf("inserting attempt %s: %w", attempt.ID, err)
	}
	return nil
}

// Stats counts the player's attempts and the ones that reached the end.
func (r *AttemptRepo) Stats(ctx context.Context, playerID uuid.UUID) (game.Stats, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	attempts, err := r.collection.CountDocuments(ctx, attemptsFilter(playerID))
	if err != nil {
		return game.Stats{}, fmt.Errorf("counting attempts: %w", err)
	}

	successes, err := r.collection.CountDocuments(ctx, successesFilter(playerID))
	if err != nil {
		return game.Stats{}, fmt.Errorf("counting successes: %w", err)
	}

	return game.NewStats(attempts, successes), nil
}

func attemptsFilter(playerID uuid.UUID) bson.M {
	return bson.M{"playerId": playerID}
}

// successesFilter matches the player's attempts that reached the end.
func successesFilter(playerID uuid.UUID) bson.M {
	return bson.M{"playerId": playerID, "outcome": maze.Reached}
}
