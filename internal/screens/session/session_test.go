package session

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/8bitgaijin/Learniverse-sub001/internal/activity"
	"github.com/8bitgaijin/Learniverse-sub001/internal/content"
	"github.com/8bitgaijin/Learniverse-sub001/internal/leveling"
	sess "github.com/8bitgaijin/Learniverse-sub001/internal/session"
	"github.com/8bitgaijin/Learniverse-sub001/internal/store"
)

// fakeStore is the minimal ProgressStore needed to exercise the screen.
type fakeStore struct {
	lessonRecords int
	closed        int
}

func (f *fakeStore) GetStudentLevel(context.Context, int64, string) (int, error) { return 1, nil }
func (f *fakeStore) SetStudentLevel(context.Context, int64, string, int) error   { return nil }
func (f *fakeStore) AddStudent(context.Context, store.Student) (int64, error)    { return 1, nil }
func (f *fakeStore) ListStudents(context.Context) ([]store.Student, error)       { return nil, nil }
func (f *fakeStore) FindStudentID(context.Context, string) (int64, error)        { return 1, nil }
func (f *fakeStore) SeedLessons(context.Context, []store.LessonSeed) error       { return nil }
func (f *fakeStore) FindLessonID(context.Context, string) (int64, error)         { return 1, nil }
func (f *fakeStore) OpenSession(context.Context, int64, string, time.Time) (int64, error) {
	return 1, nil
}
func (f *fakeStore) CloseSession(context.Context, int64, time.Time, float64, int, int, float64) error {
	f.closed++
	return nil
}
func (f *fakeStore) RecordSessionLesson(context.Context, int64, int64, time.Time, time.Time, int, int) (int64, error) {
	f.lessonRecords++
	return 1, nil
}
func (f *fakeStore) ConsecutiveDayStreak(context.Context, int64, time.Time) (int, error) {
	return 0, nil
}
func (f *fakeStore) SessionSummaries(context.Context, int64, int) ([]store.SessionSummaryRecord, error) {
	return nil, nil
}
func (f *fakeStore) LessonLevels(context.Context, int64) ([]store.LessonLevelRecord, error) {
	return nil, nil
}

// fakeDrill asks a fixed sequence of one-word questions.
type fakeDrill struct {
	answers []string
	at      int
}

func (d *fakeDrill) Prompt() string { return "q" }
func (d *fakeDrill) Submit(answer string) activity.Judgment {
	if answer == "?" {
		return activity.Reject
	}
	if answer == d.answers[d.at] {
		return activity.Correct
	}
	return activity.Incorrect
}
func (d *fakeDrill) Expected() string { return d.answers[d.at] }
func (d *fakeDrill) Advance() bool {
	d.at++
	return d.at < len(d.answers)
}

func newTestScreen(f *fakeStore) *SessionScreen {
	orch := sess.New(f, leveling.NewEngine(f), content.NewLibrary())
	s := New(orch, "Mia")
	_ = s.orch.Begin(context.Background(), "Mia")
	s.Update(beginDoneMsg{})
	return s
}

func startFakeDrill(s *SessionScreen, answers ...string) {
	s.startActivity(activityReadyMsg{
		idx:   3,
		plan:  activity.Plan{Kind: activity.KindAddition, LessonTitle: content.LessonAddition, Level: 1},
		drill: &fakeDrill{answers: answers},
	})
}

func TestSubmitAnswer_CorrectGoesToFeedback(t *testing.T) {
	s := newTestScreen(&fakeStore{})
	startFakeDrill(s, "4", "6")

	s.submitAnswer("4")

	if s.phase != phaseFeedback {
		t.Fatalf("phase = %v, want feedback", s.phase)
	}
	if !s.lastCorrect {
		t.Error("correct answer not marked correct")
	}
	if len(s.attempts) != 1 || !s.attempts[0].Correct {
		t.Errorf("attempts = %+v, want one correct", s.attempts)
	}
}

func TestSubmitAnswer_WrongShowsExpected(t *testing.T) {
	s := newTestScreen(&fakeStore{})
	startFakeDrill(s, "4")

	s.submitAnswer("5")

	if s.lastCorrect {
		t.Error("wrong answer marked correct")
	}
	if s.lastExpected != "4" {
		t.Errorf("lastExpected = %q, want %q", s.lastExpected, "4")
	}
}

func TestSubmitAnswer_RejectedNotCounted(t *testing.T) {
	s := newTestScreen(&fakeStore{})
	startFakeDrill(s, "4")

	s.submitAnswer("?")

	if s.phase != phaseQuestion {
		t.Fatalf("phase = %v, want question (re-ask)", s.phase)
	}
	if !s.rejected {
		t.Error("rejected flag not set")
	}
	if len(s.attempts) != 0 {
		t.Errorf("rejected answer recorded: %+v", s.attempts)
	}
}

func TestFeedbackKeyAdvancesOrCompletes(t *testing.T) {
	f := &fakeStore{}
	s := newTestScreen(f)
	startFakeDrill(s, "4", "6")

	s.submitAnswer("4")
	s.Update(tea.KeyPressMsg{Code: ' '}) // next question

	if s.phase != phaseQuestion {
		t.Fatalf("phase = %v, want question", s.phase)
	}

	s.submitAnswer("6")
	_, cmd := s.Update(tea.KeyPressMsg{Code: ' '}) // drill done

	if f.lessonRecords != 1 {
		t.Errorf("recorded %d lessons, want 1", f.lessonRecords)
	}
	if cmd == nil {
		t.Error("expected a command to load the next activity")
	}
}

func TestQuitConfirm_CancelRestoresPhase(t *testing.T) {
	s := newTestScreen(&fakeStore{})
	startFakeDrill(s, "4")

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if s.phase != phaseQuitConfirm {
		t.Fatalf("phase = %v, want quit confirm", s.phase)
	}

	s.Update(tea.KeyPressMsg{Code: 'n'})
	if s.phase != phaseQuestion {
		t.Errorf("phase = %v, want question after cancel", s.phase)
	}
}

func TestQuitConfirm_YesRecordsPartialAndCloses(t *testing.T) {
	f := &fakeStore{}
	s := newTestScreen(f)
	startFakeDrill(s, "4", "6", "8")
	s.submitAnswer("4")
	s.phase = phaseQuestion // past feedback

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'y'})
	if cmd == nil {
		t.Fatal("expected a finish command")
	}
	msg := cmd()
	if _, ok := msg.(finishedMsg); !ok {
		t.Fatalf("expected finishedMsg, got %T", msg)
	}

	if f.lessonRecords != 1 {
		t.Errorf("recorded %d lessons, want 1 (partial attempts count)", f.lessonRecords)
	}
	if f.closed != 1 {
		t.Errorf("session closed %d times, want 1", f.closed)
	}
}

func TestShutdownClosesOnce(t *testing.T) {
	f := &fakeStore{}
	s := newTestScreen(f)
	startFakeDrill(s, "4")

	s.Shutdown()
	s.Shutdown()

	if f.closed != 1 {
		t.Errorf("session closed %d times, want 1", f.closed)
	}
}

func TestShutdownBeforeFirstActivityClosesSession(t *testing.T) {
	f := &fakeStore{}
	s := newTestScreen(f)
	// The session row is open but no activity has loaded yet.

	s.Shutdown()

	if f.closed != 1 {
		t.Errorf("session closed %d times, want 1", f.closed)
	}
}

func TestShutdownBeforeBeginDoesNothing(t *testing.T) {
	f := &fakeStore{}
	orch := sess.New(f, leveling.NewEngine(f), content.NewLibrary())
	s := New(orch, "Mia")

	s.Shutdown()

	if f.closed != 0 {
		t.Errorf("session closed %d times, want 0", f.closed)
	}
}

func TestViewShowsDeckExhaustedNote(t *testing.T) {
	s := newTestScreen(&fakeStore{})
	s.startActivity(activityReadyMsg{
		idx: 11,
		plan: activity.Plan{
			Kind:        activity.KindVocabQuiz,
			LessonTitle: content.LessonVocabulary,
			Level:       4,
			DeckIndex:   3,
			Exhausted:   true,
		},
		drill: &fakeDrill{answers: []string{"x"}},
	})

	view := s.View(100, 30)
	if !strings.Contains(view, "finished every deck") {
		t.Error("question view should tell the student the decks are exhausted")
	}

	s.plan.Exhausted = false
	if strings.Contains(s.View(100, 30), "finished every deck") {
		t.Error("note should only show when the decks are exhausted")
	}
}

func TestInformationalEntryShowsNote(t *testing.T) {
	s := newTestScreen(&fakeStore{})
	s.startActivity(activityReadyMsg{
		idx:  0,
		plan: activity.Plan{Kind: activity.KindGreeting, Note: "Hello, Mia!"},
	})

	if s.phase != phaseNote {
		t.Fatalf("phase = %v, want note", s.phase)
	}
	_, cmd := s.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Error("expected a command to advance past the note")
	}
}

func TestNumericKind(t *testing.T) {
	if !numericKind(activity.KindAddition) {
		t.Error("addition should take numeric input")
	}
	if numericKind(activity.KindHiraganaQuiz) {
		t.Error("hiragana answers are romaji, not numeric")
	}
}
