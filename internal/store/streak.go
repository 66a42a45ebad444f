package store

import (
	"context"
	"fmt"
	"time"
)

const dayLayout = "2006-01-02"

// ConsecutiveDayStreak counts how many calendar days in a row, ending
// yesterday, the student had at least one session. Today's sessions do
// not extend the streak until tomorrow; a student with no session
// yesterday has a streak of 0.
func (s *Store) ConsecutiveDayStreak(ctx context.Context, studentID int64, today time.Time) (int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT date(start_time) FROM sessions WHERE student_id = ? ORDER BY 1 DESC`,
		studentID,
	)
	if err != nil {
		return 0, fmt.Errorf("query session days: %w", err)
	}
	defer rows.Close()

	days := make(map[string]bool)
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return 0, fmt.Errorf("scan session day: %w", err)
		}
		days[day] = true
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}

	streak := 0
	cursor := today.UTC().AddDate(0, 0, -1)
	for days[cursor.Format(dayLayout)] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak, nil
}
