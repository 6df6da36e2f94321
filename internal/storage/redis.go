package storage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Key patterns: {prefix}board:{game_id} and {prefix}run:{run_id}
	defaultKeyPrefix = "platformer:"
	boardKeyPart     = "board:"
	runKeyPart       = "run:"
)

// RedisStore keeps a sorted-set leaderboard per game, with run details in hashes.
type RedisStore struct {
	client *redis.Client
	prefix string
}

var _ ScoreStore = (*RedisStore)(nil)

// OpenRedis connects to the server named by a redis:// URL.
func OpenRedis(ctx context.Context, url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("storage: invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("storage: cannot reach redis at %s: %w", opts.Addr, err)
	}

	return NewRedisStore(client), nil
}

// NewRedisStore wraps an existing client. The store takes ownership of it.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, prefix: defaultKeyPrefix}
}

func (s *RedisStore) boardKey(gameID string) string {
	return s.prefix + boardKeyPart + gameID
}

func (s *RedisStore) runKey(runID string) string {
	return s.prefix + runKeyPart + runID
}

// Close closes the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// SaveScore records a finished run in one transaction.
func (s *RedisStore) SaveScore(ctx context.Context, gameID string, score, level int) (string, error) {
	runID := newRunID()

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, s.runKey(runID), map[string]any{
		"game_id":    gameID,
		"score":      score,
		"level":      level,
		"created_at": time.Now().Unix(),
	})
	pipe.ZAdd(ctx, s.boardKey(gameID), redis.Z{Score: float64(score), Member: runID})
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("storage: cannot save score: %w", err)
	}

	return runID, nil
}

// TopScores retrieves the top runs for the given game.
func (s *RedisStore) TopScores(ctx context.Context, gameID string, limit int) ([]ScoreEntry, error) {
	members, err := s.client.ZRevRangeWithScores(ctx, s.boardKey(gameID), 0, int64(normalizeLimit(limit)-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return s.entries(ctx, gameID, members)
}

// HighScore returns the highest score for the given game.
func (s *RedisStore) HighScore(ctx context.Context, gameID string) (int, error) {
	top, err := s.client.ZRevRangeWithScores(ctx, s.boardKey(gameID), 0, 0).Result()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if len(top) == 0 {
		return 0, nil
	}
	return int(top[0].Score), nil
}

// Stats aggregates every run on the game's board.
func (s *RedisStore) Stats(ctx context.Context, gameID string) (*GameStats, error) {
	members, err := s.client.ZRevRangeWithScores(ctx, s.boardKey(gameID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	entries, err := s.entries(ctx, gameID, members)
	if err != nil {
		return nil, err
	}

	stats := &GameStats{GameID: gameID, GamesCount: len(entries)}
	total := 0
	for _, e := range entries {
		total += e.Score
		stats.HighScore = max(stats.HighScore, e.Score)
		stats.BestLevel = max(stats.BestLevel, e.Level)
		if e.CreatedAt.After(stats.LastPlayed) {
			stats.LastPlayed = e.CreatedAt
		}
	}
	if len(entries) > 0 {
		stats.AvgScore = float64(total) / float64(len(entries))
	}
	return stats, nil
}

// ClearScores deletes the board and every run hash it references.
func (s *RedisStore) ClearScores(ctx context.Context, gameID string) error {
	runIDs, err := s.client.ZRange(ctx, s.boardKey(gameID), 0, -1).Result()
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}

	keys := make([]string, 0, len(runIDs)+1)
	keys = append(keys, s.boardKey(gameID))
	for _, id := range runIDs {
		keys = append(keys, s.runKey(id))
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// entries loads the run hash behind each board member.
func (s *RedisStore) entries(ctx context.Context, gameID string, members []redis.Z) ([]ScoreEntry, error) {
	if len(members) == 0 {
		return nil, nil
	}

	pipe := s.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(members))
	for i, m := range members {
		cmds[i] = pipe.HGetAll(ctx, s.runKey(fmt.Sprint(m.Member)))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("storage: cannot load runs: %w", err)
	}

	entries := make([]ScoreEntry, 0, len(members))
	for i, m := range members {
		fields := cmds[i].Val()
		e := ScoreEntry{
			RunID:  fmt.Sprint(m.Member),
			GameID: gameID,
			Score:  int(m.Score),
		}
		e.Level, _ = strconv.Atoi(fields["level"])
		if ts, err := strconv.ParseInt(fields["created_at"], 10, 64); err == nil {
			e.CreatedAt = time.Unix(ts, 0)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
