// Package mazestore keeps issued games in Redis for a limited time.
package mazestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/maze-arena/game"
	"github.com/beka-birhanu/maze-arena/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix = "arena"
	gameKeyFmt    = "%s:game:%s"
	lockKeyFmt    = "%s:game:%s:lock"

	lockExpiry = 5 * time.Second
	lockTries  = 16
)

var _ i.GameStore = &RedisStore{}

// RedisStore stores games as JSON documents with a TTL and hands out
// redsync mutexes keyed by game.
type RedisStore struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
	prefix string
}

// NewRedisStore creates a RedisStore whose games expire after ttl.
func NewRedisStore(client *redis.Client, ttl time.Duration, prefix string) (*RedisStore, error) {
	if client == nil {
		return nil, errors.New("redis client must not be nil")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("invalid game ttl %s", ttl)
	}
	if prefix == "" {
		prefix = defaultPrefix
	}

	return &RedisStore{
		client: client,
		locker: redsync.New(goredis.NewPool(client)),
		ttl:    ttl,
		prefix: prefix,
	}, nil
}

// Save stores g and starts its lifetime.
func (s *RedisStore) Save(ctx context.Context, g *game.Game) error {
	payload, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("encoding game %s: %w", g.ID, err)
	}
	return s.client.Set(ctx, s.gameKey(g.ID), payload, s.ttl).Err()
}

// Update overwrites a stored game, keeping its remaining lifetime.
func (s *RedisStore) Update(ctx context.Context, g *game.Game) error {
	payload, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("encoding game %s: %w", g.ID, err)
	}

	// XX: never resurrect a game that expired in the meantime
	err = s.client.SetArgs(ctx, s.gameKey(g.ID), payload, redis.SetArgs{Mode: "XX", KeepTTL: true}).Err()
	if errors.Is(err, redis.Nil) {
		return game.ErrNotFound
	}
	return err
}

// ByID loads a game and checks the maze it carries.
func (s *RedisStore) ByID(ctx context.Context, id uuid.UUID) (*game.Game, error) {
	payload, err := s.client.Get(ctx, s.gameKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, game.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var g game.Game
	if err := json.Unmarshal(payload, &g); err != nil {
		return nil, fmt.Errorf("decoding game %s: %w", id, err)
	}
	if g.Maze == nil {
		return nil, fmt.Errorf("game %s has no maze", id)
	}
	if err := g.Maze.Validate(); err != nil {
		return nil, fmt.Errorf("game %s: %w", id, err)
	}

	return &g, nil
}

// Lock acquires the game's distributed mutex.
func (s *RedisStore) Lock(ctx context.Context, id uuid.UUID) (func() error, error) {
	mutex := s.locker.NewMutex(
		fmt.Sprintf(lockKeyFmt, s.prefix, id),
		redsync.WithExpiry(lockExpiry),
		redsync.WithTries(lockTries),
	)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("locking game %s: %w", id, err)
	}

	return func() error {
		_, err := mutex.Unlock()
		return err
	}, nil
}

func (s *RedisStore) gameKey(id uuid.UUID) string {
	return fmt.Sprintf(gameKeyFmt, s.prefix, id)
}
