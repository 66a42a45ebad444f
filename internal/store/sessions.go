package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const timeLayout = time.RFC3339

// OpenSession creates a session row with no end time. At most one
// session is open per running process; the caller closes it exactly
// once via CloseSession.
func (s *Store) OpenSession(ctx context.Context, studentID int64, uuid string, start time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (uuid, student_id, start_time) VALUES (?, ?, ?)`,
		uuid, studentID, start.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("open session: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("session id: %w", err)
	}
	return id, nil
}

// CloseSession writes the session's end time and aggregate totals.
// This is the only mutation a session row ever receives.
func (s *Store) CloseSession(ctx context.Context, sessionID int64, end time.Time, totalTime float64, totalQuestions, totalCorrect int, avgTime float64) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE sessions
		 SET end_time = ?, total_time = ?, total_questions = ?, total_correct = ?, avg_time_per_question = ?
		 WHERE session_id = ?`,
		end.UTC().Format(timeLayout), totalTime, totalQuestions, totalCorrect, avgTime, sessionID,
	)
	if err != nil {
		return fmt.Errorf("close session: %w", err)
	}
	return nil
}

// SessionSummaries returns the student's most recent sessions, newest
// first. limit 0 means no limit.
func (s *Store) SessionSummaries(ctx context.Context, studentID int64, limit int) ([]SessionSummaryRecord, error) {
	query := `SELECT session_id, uuid, start_time, end_time, total_time, total_questions, total_correct, avg_time_per_question
		 FROM sessions WHERE student_id = ? ORDER BY start_time DESC`
	args := []any{studentID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionSummaryRecord
	for rows.Next() {
		var rec SessionSummaryRecord
		var start string
		var end sql.NullString
		if err := rows.Scan(&rec.SessionID, &rec.UUID, &start, &end, &rec.TotalTime, &rec.TotalQuestions, &rec.TotalCorrect, &rec.AvgTime); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		rec.StartTime, err = time.Parse(timeLayout, start)
		if err != nil {
			return nil, fmt.Errorf("parse start time: %w", err)
		}
		if end.Valid {
			t, err := time.Parse(timeLayout, end.String)
			if err != nil {
				return nil, fmt.Errorf("parse end time: %w", err)
			}
			rec.EndTime = &t
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
