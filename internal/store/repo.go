package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a student or lesson lookup fails.
var ErrNotFound = errors.New("not found")

// Student is one row of the students table. Students are created once
// and never mutated or deleted.
type Student struct {
	ID    int64
	Name  string
	Age   *int
	Email *string
}

// Lesson is one row of the lessons catalogue.
type Lesson struct {
	ID          int64
	Title       string
	Description string
}

// LessonSeed is a catalogue entry inserted at startup when missing.
type LessonSeed struct {
	Title       string
	Description string
}

// SessionSummaryRecord is a closed session row, used for stats output.
type SessionSummaryRecord struct {
	SessionID      int64
	UUID           string
	StartTime      time.Time
	EndTime        *time.Time
	TotalTime      float64
	TotalQuestions int
	TotalCorrect   int
	AvgTime        float64
}

// LessonLevelRecord is a (lesson, level) pair for one student.
type LessonLevelRecord struct {
	LessonTitle string
	Level       int
}

// LevelStore is the narrow interface the leveling engine needs.
// Both operations key off the student ID; a session always resolves to
// exactly one student, so keying by the durable entity is equivalent to
// keying by session and avoids a join on every read.
type LevelStore interface {
	// GetStudentLevel returns the student's level for a lesson,
	// lazily creating the progress row at level 1 on first access.
	GetStudentLevel(ctx context.Context, studentID int64, lessonTitle string) (int, error)

	// SetStudentLevel writes a new level. Levels never decrease; a
	// lower value than the stored one is rejected.
	SetStudentLevel(ctx context.Context, studentID int64, lessonTitle string, level int) error
}

// ProgressStore is the full persistence surface consumed by the
// session orchestrator and the CLI commands.
type ProgressStore interface {
	LevelStore

	AddStudent(ctx context.Context, s Student) (int64, error)
	ListStudents(ctx context.Context) ([]Student, error)
	FindStudentID(ctx context.Context, name string) (int64, error)

	SeedLessons(ctx context.Context, seeds []LessonSeed) error
	FindLessonID(ctx context.Context, title string) (int64, error)

	OpenSession(ctx context.Context, studentID int64, uuid string, start time.Time) (int64, error)
	CloseSession(ctx context.Context, sessionID int64, end time.Time, totalTime float64, totalQuestions, totalCorrect int, avgTime float64) error

	// RecordSessionLesson persists one completed activity. Total time,
	// average time per question, and percent correct are derived here
	// from the four timing/count inputs.
	RecordSessionLesson(ctx context.Context, sessionID, lessonID int64, start, end time.Time, asked, correct int) (int64, error)

	// ConsecutiveDayStreak counts backward from yesterday while the
	// student has at least one session per calendar day. A student who
	// did not practice yesterday has a streak of 0.
	ConsecutiveDayStreak(ctx context.Context, studentID int64, today time.Time) (int, error)

	SessionSummaries(ctx context.Context, studentID int64, limit int) ([]SessionSummaryRecord, error)
	LessonLevels(ctx context.Context, studentID int64) ([]LessonLevelRecord, error)
}
