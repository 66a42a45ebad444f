package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/8bitgaijin/Learniverse-sub001/internal/activity"
	"github.com/8bitgaijin/Learniverse-sub001/internal/scoring"
	"github.com/8bitgaijin/Learniverse-sub001/internal/session"
)

func testSummary() session.Summary {
	return session.Summary{
		StudentName:    "Mia",
		Duration:       15 * time.Minute,
		TotalQuestions: 14,
		TotalCorrect:   13,
		AvgTime:        2.5,
		Results: []session.LessonResult{
			{
				Kind:        activity.KindAddition,
				LessonTitle: "Single Digit Addition",
				Rollup:      scoring.Rollup{Asked: 5, Correct: 5, AvgTime: 2.0, PercentCorrect: 100},
				Level:       2,
				LeveledUp:   true,
			},
			{
				Kind:        activity.KindHiraganaQuiz,
				LessonTitle: "Hiragana",
				Rollup:      scoring.Rollup{Asked: 5, Correct: 4, AvgTime: 3.0, PercentCorrect: 80},
				Level:       1,
			},
			{
				Kind:        activity.KindVocabQuiz,
				LessonTitle: "Vocabulary",
				Rollup:      scoring.Rollup{Asked: 4, Correct: 4, AvgTime: 2.5, PercentCorrect: 100},
				Level:       4,
				Exhausted:   true,
			},
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Lesson Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Lesson Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 24)

	for _, want := range []string{"Mia", "Single Digit Addition", "LEVEL UP!", "5/5 correct", "Hiragana", "all decks complete"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_EmptySession(t *testing.T) {
	s := New(session.Summary{StudentName: "Mia"})
	view := s.View(80, 24)
	if !strings.Contains(view, "No questions answered") {
		t.Error("empty session should say no questions were answered")
	}
}

func TestSummaryScreen_Navigation(t *testing.T) {
	for _, code := range []rune{tea.KeyEnter, tea.KeyEscape} {
		s := New(testSummary())
		_, cmd := s.Update(tea.KeyPressMsg{Code: code})
		if cmd == nil {
			t.Errorf("expected a pop command on key %q", code)
		}
	}
}
