package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func seedTestLessons(t *testing.T, s *Store) {
	t.Helper()
	err := s.SeedLessons(context.Background(), []LessonSeed{
		{Title: "Hiragana", Description: "characters"},
		{Title: "Japanese Vocabulary", Description: "decks"},
	})
	require.NoError(t, err)
}

func TestStudents_AddFindList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	age := 8
	id, err := s.AddStudent(ctx, Student{Name: "Mia", Age: &age})
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	found, err := s.FindStudentID(ctx, "Mia")
	require.NoError(t, err)
	assert.Equal(t, id, found)

	_, err = s.FindStudentID(ctx, "Nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.AddStudent(ctx, Student{Name: "Theo"})
	require.NoError(t, err)

	students, err := s.ListStudents(ctx)
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, "Mia", students[0].Name)
	require.NotNil(t, students[0].Age)
	assert.Equal(t, 8, *students[0].Age)
	assert.Nil(t, students[1].Age)
}

func TestLessons_SeedIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedTestLessons(t, s)

	first, err := s.FindLessonID(ctx, "Hiragana")
	require.NoError(t, err)

	seedTestLessons(t, s)

	second, err := s.FindLessonID(ctx, "Hiragana")
	require.NoError(t, err)
	assert.Equal(t, first, second, "re-seeding must not change lesson IDs")

	_, err = s.FindLessonID(ctx, "Klingon")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessions_OpenCloseAndSummaries(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	studentID, err := s.AddStudent(ctx, Student{Name: "Mia"})
	require.NoError(t, err)

	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	sessionID, err := s.OpenSession(ctx, studentID, "abc-123", start)
	require.NoError(t, err)

	summaries, err := s.SessionSummaries(ctx, studentID, 0)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Nil(t, summaries[0].EndTime, "open session has no end time")

	end := start.Add(10 * time.Minute)
	require.NoError(t, s.CloseSession(ctx, sessionID, end, 600, 20, 18, 2.5))

	summaries, err = s.SessionSummaries(ctx, studentID, 0)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	require.NotNil(t, summaries[0].EndTime)
	assert.Equal(t, end, summaries[0].EndTime.UTC())
	assert.Equal(t, 20, summaries[0].TotalQuestions)
	assert.Equal(t, 18, summaries[0].TotalCorrect)
	assert.InDelta(t, 2.5, summaries[0].AvgTime, 1e-9)
}

func TestRecordSessionLesson_DerivesStats(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedTestLessons(t, s)

	studentID, err := s.AddStudent(ctx, Student{Name: "Mia"})
	require.NoError(t, err)
	lessonID, err := s.FindLessonID(ctx, "Hiragana")
	require.NoError(t, err)

	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	sessionID, err := s.OpenSession(ctx, studentID, "abc", start)
	require.NoError(t, err)

	end := start.Add(10 * time.Second)
	id, err := s.RecordSessionLesson(ctx, sessionID, lessonID, start, end, 5, 4)
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	var totalTime, avgTime, percent float64
	row := s.DB().QueryRow(
		`SELECT total_time, avg_time_per_question, percent_correct FROM session_lessons WHERE session_lesson_id = ?`, id)
	require.NoError(t, row.Scan(&totalTime, &avgTime, &percent))
	assert.InDelta(t, 10.0, totalTime, 1e-9)
	assert.InDelta(t, 2.0, avgTime, 1e-9)
	assert.InDelta(t, 80.0, percent, 1e-9)

	// Zero questions derive zero stats, not NaN.
	id, err = s.RecordSessionLesson(ctx, sessionID, lessonID, start, end, 0, 0)
	require.NoError(t, err)
	row = s.DB().QueryRow(
		`SELECT avg_time_per_question, percent_correct FROM session_lessons WHERE session_lesson_id = ?`, id)
	require.NoError(t, row.Scan(&avgTime, &percent))
	assert.Zero(t, avgTime)
	assert.Zero(t, percent)

	// Correct can never exceed asked.
	_, err = s.RecordSessionLesson(ctx, sessionID, lessonID, start, end, 3, 4)
	assert.Error(t, err)
}

func TestStudentLevel_LazyCreateAndMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedTestLessons(t, s)

	studentID, err := s.AddStudent(ctx, Student{Name: "Mia"})
	require.NoError(t, err)

	level, err := s.GetStudentLevel(ctx, studentID, "Hiragana")
	require.NoError(t, err)
	assert.Equal(t, 1, level, "first access creates level 1")

	require.NoError(t, s.SetStudentLevel(ctx, studentID, "Hiragana", 2))
	level, err = s.GetStudentLevel(ctx, studentID, "Hiragana")
	require.NoError(t, err)
	assert.Equal(t, 2, level)

	// Same level is allowed, lower is not.
	assert.NoError(t, s.SetStudentLevel(ctx, studentID, "Hiragana", 2))
	assert.Error(t, s.SetStudentLevel(ctx, studentID, "Hiragana", 1))
	assert.Error(t, s.SetStudentLevel(ctx, studentID, "Hiragana", 0))

	_, err = s.GetStudentLevel(ctx, studentID, "Klingon")
	assert.ErrorIs(t, err, ErrNotFound)

	levels, err := s.LessonLevels(ctx, studentID)
	require.NoError(t, err)
	require.Len(t, levels, 1)
	assert.Equal(t, "Hiragana", levels[0].LessonTitle)
	assert.Equal(t, 2, levels[0].Level)
}

func TestConsecutiveDayStreak(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	studentID, err := s.AddStudent(ctx, Student{Name: "Mia"})
	require.NoError(t, err)

	today := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	day := func(offset int, hour int) time.Time {
		return today.AddDate(0, 0, offset).Add(time.Duration(hour) * time.Hour)
	}

	// No sessions at all.
	streak, err := s.ConsecutiveDayStreak(ctx, studentID, today)
	require.NoError(t, err)
	assert.Equal(t, 0, streak)

	// Sessions yesterday, two days ago, and three days ago; two on the
	// same day must count once.
	for _, start := range []time.Time{day(-1, 1), day(-2, 1), day(-2, 5), day(-3, 1)} {
		_, err := s.OpenSession(ctx, studentID, "u", start)
		require.NoError(t, err)
	}

	streak, err = s.ConsecutiveDayStreak(ctx, studentID, today)
	require.NoError(t, err)
	assert.Equal(t, 3, streak)

	// A gap five days ago does not extend the streak.
	_, err = s.OpenSession(ctx, studentID, "u", day(-5, 1))
	require.NoError(t, err)
	streak, err = s.ConsecutiveDayStreak(ctx, studentID, today)
	require.NoError(t, err)
	assert.Equal(t, 3, streak)

	// A session only today does not start a streak yet.
	other, err := s.AddStudent(ctx, Student{Name: "Theo"})
	require.NoError(t, err)
	_, err = s.OpenSession(ctx, other, "u", day(0, 1))
	require.NoError(t, err)
	streak, err = s.ConsecutiveDayStreak(ctx, other, today)
	require.NoError(t, err)
	assert.Equal(t, 0, streak)
}
