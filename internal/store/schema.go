package store

import (
	"database/sql"
	"fmt"
)

// Timestamps are stored as RFC3339 UTC strings so SQLite date()
// functions work on them directly.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS students (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		age INTEGER,
		email TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS lessons (
		lesson_id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		session_id INTEGER PRIMARY KEY AUTOINCREMENT,
		uuid TEXT NOT NULL DEFAULT '',
		student_id INTEGER NOT NULL REFERENCES students(id),
		start_time TEXT NOT NULL,
		end_time TEXT,
		total_time REAL NOT NULL DEFAULT 0,
		total_questions INTEGER NOT NULL DEFAULT 0,
		total_correct INTEGER NOT NULL DEFAULT 0,
		avg_time_per_question REAL NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS session_lessons (
		session_lesson_id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id INTEGER NOT NULL REFERENCES sessions(session_id),
		lesson_id INTEGER NOT NULL REFERENCES lessons(lesson_id),
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		total_time REAL NOT NULL DEFAULT 0,
		questions_asked INTEGER NOT NULL DEFAULT 0,
		questions_correct INTEGER NOT NULL DEFAULT 0,
		avg_time_per_question REAL NOT NULL DEFAULT 0,
		percent_correct REAL NOT NULL DEFAULT 0,
		CHECK (questions_correct <= questions_asked)
	)`,
	`CREATE TABLE IF NOT EXISTS student_lesson_progress (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		student_id INTEGER NOT NULL REFERENCES students(id),
		lesson_id INTEGER NOT NULL REFERENCES lessons(lesson_id),
		student_level INTEGER NOT NULL DEFAULT 1 CHECK (student_level >= 1),
		UNIQUE (student_id, lesson_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_student ON sessions(student_id)`,
	`CREATE INDEX IF NOT EXISTS idx_session_lessons_session ON session_lessons(session_id)`,
}

func createSchema(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("exec schema statement: %w", err)
		}
	}
	return nil
}
