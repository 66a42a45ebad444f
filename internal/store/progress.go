package store

import (
	"context"
	"fmt"
)

// GetStudentLevel returns the student's level for a lesson, creating
// the progress row at level 1 on first access.
func (s *Store) GetStudentLevel(ctx context.Context, studentID int64, lessonTitle string) (int, error) {
	lessonID, err := s.FindLessonID(ctx, lessonTitle)
	if err != nil {
		return 0, err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO student_lesson_progress (student_id, lesson_id, student_level) VALUES (?, ?, 1)`,
		studentID, lessonID,
	)
	if err != nil {
		return 0, fmt.Errorf("create progress row: %w", err)
	}

	var level int
	err = s.db.QueryRowContext(ctx,
		`SELECT student_level FROM student_lesson_progress WHERE student_id = ? AND lesson_id = ?`,
		studentID, lessonID,
	).Scan(&level)
	if err != nil {
		return 0, fmt.Errorf("read level: %w", err)
	}
	return level, nil
}

// SetStudentLevel writes a new level for a (student, lesson) pair.
// Levels are monotonic: a value below the stored level is rejected.
func (s *Store) SetStudentLevel(ctx context.Context, studentID int64, lessonTitle string, level int) error {
	if level < 1 {
		return fmt.Errorf("set level: level %d below minimum 1", level)
	}

	current, err := s.GetStudentLevel(ctx, studentID, lessonTitle)
	if err != nil {
		return err
	}
	if level < current {
		return fmt.Errorf("set level: %d would decrease current level %d", level, current)
	}

	lessonID, err := s.FindLessonID(ctx, lessonTitle)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`UPDATE student_lesson_progress SET student_level = ? WHERE student_id = ? AND lesson_id = ?`,
		level, studentID, lessonID,
	)
	if err != nil {
		return fmt.Errorf("write level: %w", err)
	}
	return nil
}

// LessonLevels returns the student's level for every lesson they have
// progress on, ordered by lesson title.
func (s *Store) LessonLevels(ctx context.Context, studentID int64) ([]LessonLevelRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT l.title, p.student_level
		 FROM student_lesson_progress p
		 JOIN lessons l ON l.lesson_id = p.lesson_id
		 WHERE p.student_id = ?
		 ORDER BY l.title`,
		studentID,
	)
	if err != nil {
		return nil, fmt.Errorf("query levels: %w", err)
	}
	defer rows.Close()

	var out []LessonLevelRecord
	for rows.Next() {
		var rec LessonLevelRecord
		if err := rows.Scan(&rec.LessonTitle, &rec.Level); err != nil {
			return nil, fmt.Errorf("scan level: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
