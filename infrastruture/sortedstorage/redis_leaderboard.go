// Package sortedstorage implements rankings on top of Redis sorted sets.
package sortedstorage

import (
	"context"
	"errors"
	"fmt"

	"github.com/beka-birhanu/maze-arena/game"
	"github.com/beka-birhanu/maze-arena/service/i"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultLeaderboardKey = "arena:leaderboard"

var _ i.Leaderboard = &RedisLeaderboard{}

// RedisLeaderboard ranks players by their lowest step count, lower is better.
type RedisLeaderboard struct {
	client *redis.Client
	key    string
}

// NewRedisLeaderboard initializes a RedisLeaderboard stored under key.
func NewRedisLeaderboard(client *redis.Client, key string) (*RedisLeaderboard, error) {
	if client == nil {
		return nil, errors.New("redis client must not be nil")
	}
	if key == "" {
		key = defaultLeaderboardKey
	}
	return &RedisLeaderboard{
		client: client,
		key:    key,
	}, nil
}

// Submit adds the player with steps as score, or lowers their existing score.
func (l *RedisLeaderboard) Submit(ctx context.Context, playerID uuid.UUID, steps int) error {
	if steps <= 0 {
		return fmt.Errorf("invalid step count %d", steps)
	}
	return l.client.ZAddLT(ctx, l.key, redis.Z{Score: float64(steps), Member: playerID.String()}).Err()
}

// Top retrieves up to limit entries with the lowest scores.
func (l *RedisLeaderboard) Top(ctx context.Context, limit int64) ([]game.LeaderboardEntry, error) {
	if limit <= 0 {
		return nil, nil
	}

	members, err := l.client.ZRangeWithScores(ctx, l.key, 0, limit-1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]game.LeaderboardEntry, 0, len(members))
	for _, m := range members {
		raw, _ := m.Member.(string)
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		entries = append(entries, game.LeaderboardEntry{
			Rank:     len(entries) + 1,
			PlayerID: id,
			Steps:    int(m.Score),
		})
	}

	return entries, nil
}
