package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/beka-birhanu/maze-arena/game"
	"github.com/beka-birhanu/maze-arena/identity"
	"github.com/beka-birhanu/maze-arena/maze"
	"github.com/beka-birhanu/maze-arena/service/i"
	"github.com/google/uuid"
)

type nopLogger struct{}

func (nopLogger) Info(string)                  {}
func (nopLogger) Warning(string)               {}
func (nopLogger) Error(string)                 {}
func (l nopLogger) With(string, any) i.Logger { return l }

// recordingLogger keeps every message together with the fields attached
// through With.
type recordingLogger struct {
	fields  map[string]any
	entries *[]logEntry
}

type logEntry struct {
	level  string
	msg    string
	fields map[string]any
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{fields: map[string]any{}, entries: &[]logEntry{}}
}

func (l *recordingLogger) record(level, msg string) {
	*l.entries = append(*l.entries, logEntry{level: level, msg: msg, fields: l.fields})
}

func (l *recordingLogger) Info(msg string)    { l.record("info", msg) }
func (l *recordingLogger) Warning(msg string) { l.record("warning", msg) }
func (l *recordingLogger) Error(msg string)   { l.record("error", msg) }

func (l *recordingLogger) With(key string, value any) i.Logger {
	fields := make(map[string]any, len(l.fields)+1)
	for k, v := range l.fields {
		fields[k] = v
	}
	fields[key] = value
	return &recordingLogger{fields: fields, entries: l.entries}
}

type memGameStore struct {
	mu      sync.Mutex
	games   map[uuid.UUID]game.Game
	locks   int
	saveErr error
}

func newMemGameStore() *memGameStore {
	return &memGameStore{games: make(map[uuid.UUID]game.Game)}
}

func (s *memGameStore) Save(_ context.Context, g *game.Game) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.games[g.ID] = *g
	return nil
}

func (s *memGameStore) Update(_ context.Context, g *game.Game) error {
	if _, ok := s.games[g.ID]; !ok {
		return game.ErrNotFound
	}
	s.games[g.ID] = *g
	return nil
}

func (s *memGameStore) ByID(_ context.Context, id uuid.UUID) (*game.Game, error) {
	g, ok := s.games[id]
	if !ok {
		return nil, game.ErrNotFound
	}
	return &g, nil
}

func (s *memGameStore) Lock(context.Context, uuid.UUID) (func() error, error) {
	s.mu.Lock()
	s.locks++
	return func() error {
		s.mu.Unlock()
		return nil
	}, nil
}

type memAttempts struct {
	saved []game.Attempt
}

func (r *memAttempts) Save(_ context.Context, a *game.Attempt) error {
	r.saved = append(r.saved, *a)
	return nil
}

func (r *memAttempts) Stats(_ context.Context, playerID uuid.UUID) (game.Stats, error) {
	var attempts, successes int64
	for _, a := range r.saved {
		if a.PlayerID != playerID {
			continue
		}
		attempts++
		if a.Outcome == maze.Reached {
			successes++
		}
	}
	return game.NewStats(attempts, successes), nil
}

type memLeaderboard struct {
	best map[uuid.UUID]int
}

func newMemLeaderboard() *memLeaderboard {
	return &memLeaderboard{best: make(map[uuid.UUID]int)}
}

func (l *memLeaderboard) Submit(_ context.Context, playerID uuid.UUID, steps int) error {
	if prev, ok := l.best[playerID]; !ok || steps < prev {
		l.best[playerID] = steps
	}
	return nil
}

func (l *memLeaderboard) Top(_ context.Context, limit int64) ([]game.LeaderboardEntry, error) {
	var entries []game.LeaderboardEntry
	for id, steps := range l.best {
		entries = append(entries, game.LeaderboardEntry{PlayerID: id, Steps: steps})
	}
	sort.Slice(entries, func(a, b int) bool { return entries[a].Steps < entries[b].Steps })
	if int64(len(entries)) > limit {
		entries = entries[:limit]
	}
	for idx := range entries {
		entries[idx].Rank = idx + 1
	}
	return entries, nil
}

type memUsers struct {
	byID    map[uuid.UUID]*identity.User
	saveErr error
}

func newMemUsers() *memUsers {
	return &memUsers{byID: make(map[uuid.UUID]*identity.User)}
}

func (r *memUsers) Save(_ context.Context, u *identity.User) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.byID[u.ID] = u
	return nil
}

func (r *memUsers) ByID(_ context.Context, id uuid.UUID) (*identity.User, error) {
	if u, ok := r.byID[id]; ok {
		return u, nil
	}
	return nil, errors.New("user not found")
}

func (r *memUsers) ByUsername(_ context.Context, username string) (*identity.User, error) {
	for _, u := range r.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, errors.New("user not found")
}

type fakeTokenizer struct {
	claims map[string]interface{}
}

func (f *fakeTokenizer) Generate(claims map[string]interface{}, _ time.Duration) (string, error) {
	f.claims = claims
	return "token", nil
}

func (f *fakeTokenizer) Decode(string) (map[string]interface{}, error) {
	return f.claims, nil
}
