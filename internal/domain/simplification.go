package domain

import (
	"context"
	"time"
)

// SimplificationLevel selects how aggressively contract language is rewritten.
type SimplificationLevel string

const (
	LevelBasic        SimplificationLevel = "basic"
	LevelIntermediate SimplificationLevel = "intermediate"
	LevelAdvanced     SimplificationLevel = "advanced"
)

// ParseLevel maps a form value to a SimplificationLevel, defaulting to
// intermediate for unknown values.
func ParseLevel(s string) SimplificationLevel {
	switch SimplificationLevel(s) {
	case LevelBasic, LevelAdvanced:
		return SimplificationLevel(s)
	default:
		return LevelIntermediate
	}
}

// SimplificationLog records a single simplify or analyze request.
// Document text is never persisted, only sizes and timing.
type SimplificationLog struct {
	ID          int64
	UserID      int64
	Level       string
	InputChars  int
	OutputChars int
	DurationMS  int64
	Success     bool
	CreatedAt   time.Time
}

// UsageStats are the aggregates shown on the admin dashboard.
type UsageStats struct {
	TotalRequests int
	SuccessCount  int
	AvgDurationMS float64
	AvgInputChars float64
}

// SuccessRate returns the fraction of successful requests in [0, 1].
func (s UsageStats) SuccessRate() float64 {
	if s.TotalRequests == 0 {
		return 0
	}
	return float64(s.SuccessCount) / float64(s.TotalRequests)
}

// SimplificationLogRepository defines persistence operations for request logs.
type SimplificationLogRepository interface {
	Create(ctx context.Context, log *SimplificationLog) error
	GetRecentByUser(ctx context.Context, userID int64, limit int) ([]SimplificationLog, error)
	Stats(ctx context.Context) (UsageStats, error)
}
