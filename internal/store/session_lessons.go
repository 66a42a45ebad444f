package store

import (
	"context"
	"fmt"
	"time"
)

// RecordSessionLesson appends one completed activity to the session.
// Total time, average time per question, and percent correct are
// derived here; rows are immutable after creation.
func (s *Store) RecordSessionLesson(ctx context.Context, sessionID, lessonID int64, start, end time.Time, asked, correct int) (int64, error) {
	if correct > asked {
		return 0, fmt.Errorf("record session lesson: correct %d exceeds asked %d", correct, asked)
	}

	totalTime := end.Sub(start).Seconds()
	var avgTime, percent float64
	if asked > 0 {
		avgTime = totalTime / float64(asked)
		percent = float64(correct) / float64(asked) * 100
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO session_lessons
		 (session_id, lesson_id, start_time, end_time, total_time, questions_asked, questions_correct, avg_time_per_question, percent_correct)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sessionID, lessonID,
		start.UTC().Format(timeLayout), end.UTC().Format(timeLayout),
		totalTime, asked, correct, avgTime, percent,
	)
	if err != nil {
		return 0, fmt.Errorf("record session lesson: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("session lesson id: %w", err)
	}
	return id, nil
}
