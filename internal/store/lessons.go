package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SeedLessons inserts catalogue entries that are not already present.
// Existing rows are left untouched so lesson IDs stay stable.
func (s *Store) SeedLessons(ctx context.Context, seeds []LessonSeed) error {
	for _, seed := range seeds {
		_, err := s.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO lessons (title, description) VALUES (?, ?)`,
			seed.Title, seed.Description,
		)
		if err != nil {
			return fmt.Errorf("seed lesson %q: %w", seed.Title, err)
		}
	}
	return nil
}

// FindLessonID resolves a lesson title to a row ID.
func (s *Store) FindLessonID(ctx context.Context, title string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`SELECT lesson_id FROM lessons WHERE title = ?`, title,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("lesson %q: %w", title, ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("find lesson: %w", err)
	}
	return id, nil
}
