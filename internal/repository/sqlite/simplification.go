package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/clearclause/clearclause/internal/domain"
)

// SimplificationLogRepository implements domain.SimplificationLogRepository using SQLite.
type SimplificationLogRepository struct {
	db *sql.DB
}

// NewSimplificationLogRepository creates a new SQLite-backed SimplificationLogRepository.
func NewSimplificationLogRepository(db *DB) *SimplificationLogRepository {
	return &SimplificationLogRepository{db: db.SqlDB}
}

func (r *SimplificationLogRepository) Create(ctx context.Context, log *domain.SimplificationLog) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO simplification_logs (user_id, level, input_chars, output_chars, duration_ms, success, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		log.UserID, log.Level, log.InputChars, log.OutputChars, log.DurationMS,
		boolToInt(log.Success), now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert simplification log: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	log.ID = id
	log.CreatedAt = now
	return nil
}

func (r *SimplificationLogRepository) GetRecentByUser(ctx context.Context, userID int64, limit int) ([]domain.SimplificationLog, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, level, input_chars, output_chars, duration_ms, success, created_at
		 FROM simplification_logs WHERE user_id = ?
		 ORDER BY id DESC LIMIT ?`, userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query recent logs: %w", err)
	}
	defer rows.Close()

	var logs []domain.SimplificationLog
	for rows.Next() {
		var log domain.SimplificationLog
		var success int
		var createdAt string
		if err := rows.Scan(&log.ID, &log.UserID, &log.Level, &log.InputChars,
			&log.OutputChars, &log.DurationMS, &success, &createdAt); err != nil {
			return nil, fmt.Errorf("scan log: %w", err)
		}
		log.Success = success != 0
		ts, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		log.CreatedAt = ts
		logs = append(logs, log)
	}
	return logs, rows.Err()
}

func (r *SimplificationLogRepository) Stats(ctx context.Context) (domain.UsageStats, error) {
	var stats domain.UsageStats
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(success), 0),
		        COALESCE(AVG(duration_ms), 0),
		        COALESCE(AVG(input_chars), 0)
		 FROM simplification_logs`,
	).Scan(&stats.TotalRequests, &stats.SuccessCount, &stats.AvgDurationMS, &stats.AvgInputChars)
	if err != nil {
		return domain.UsageStats{}, fmt.Errorf("query usage stats: %w", err)
	}
	return stats, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
