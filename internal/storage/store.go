// Package storage persists finished runs. Local play writes to a SQLite
// file; a redis:// target shares one leaderboard between SSH sessions.
package storage

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultLimit is the number of entries returned when no limit is given.
const DefaultLimit = 10

// ScoreEntry represents a single finished run.
type ScoreEntry struct {
	RunID     string
	GameID    string
	Score     int
	Level     int // Level reached when the run ended
	CreatedAt time.Time
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	BestLevel  int
	AvgScore   float64
	LastPlayed time.Time
}

// ScoreStore is implemented by every score backend.
type ScoreStore interface {
	// SaveScore records a finished run and returns its generated run ID.
	SaveScore(ctx context.Context, gameID string, score, level int) (string, error)
	// TopScores returns up to limit runs ordered by score, highest first.
	TopScores(ctx context.Context, gameID string, limit int) ([]ScoreEntry, error)
	// HighScore returns the best score, or 0 when nothing was recorded.
	HighScore(ctx context.Context, gameID string) (int, error)
	// Stats aggregates every recorded run.
	Stats(ctx context.Context, gameID string) (*GameStats, error)
	// ClearScores removes every run of a game.
	ClearScores(ctx context.Context, gameID string) error
	Close() error
}

// Open selects a backend from the target: redis:// and rediss:// URLs use
// Redis, anything else is treated as a SQLite file path.
func Open(ctx context.Context, target string) (ScoreStore, error) {
	if strings.HasPrefix(target, "redis://") || strings.HasPrefix(target, "rediss://") {
		return OpenRedis(ctx, target)
	}
	return OpenSQLite(target)
}

func newRunID() string {
	return uuid.NewString()
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
