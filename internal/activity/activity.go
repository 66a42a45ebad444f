package activity

import (
	"context"
	"time"

	"github.com/8bitgaijin/Learniverse-sub001/internal/leveling"
	"github.com/8bitgaijin/Learniverse-sub001/internal/scoring"
)

// Kind identifies one catalogue entry.
type Kind string

const (
	// Informational entries run for their side effects (a message on
	// screen) and contribute no questions to the session totals.
	KindGreeting  Kind = "greeting"
	KindStreak    Kind = "streak"
	KindDayOfWeek Kind = "day-of-week"

	KindAddition       Kind = "addition"
	KindSubtraction    Kind = "subtraction"
	KindMultiplication Kind = "multiplication"
	KindFractions      Kind = "fractions"
	KindSkipCounting   Kind = "skip-counting"
	KindHiraganaTeach  Kind = "hiragana-teach"
	KindHiraganaQuiz   Kind = "hiragana-quiz"
	KindKatakanaQuiz   Kind = "katakana-quiz"
	KindVocabQuiz      Kind = "vocab-quiz"
	KindVerseReading   Kind = "verse-reading"
)

// Informational reports whether the kind is a display-only entry.
func (k Kind) Informational() bool {
	switch k {
	case KindGreeting, KindStreak, KindDayOfWeek:
		return true
	}
	return false
}

// Plan is everything an activity needs to run: the resolved lesson, the
// student's level, and the content window sized for it.
type Plan struct {
	Kind        Kind
	LessonTitle string
	Variant     leveling.Variant
	Level       int

	// Window is the prefix window size for linearly growing lessons.
	Window int
	// DeckIndex is the 1-based deck for discretely packed lessons.
	DeckIndex int
	// Exhausted is set when the level exceeds the available decks.
	Exhausted bool

	// Questions is the number of questions a generated drill asks.
	Questions int

	// Note is the display text for informational entries.
	Note string
}

// Judgment classifies a submitted answer.
type Judgment int

const (
	Correct Judgment = iota
	Incorrect
	// Reject means the input was malformed (e.g. not a fraction); the
	// same question is asked again and no attempt is recorded.
	Reject
)

// Drill is a steppable activity. The caller presents Prompt, feeds
// Submit the student's answer, and moves on with Advance; control
// returns to the event loop between every step, so no activity ever
// owns a nested blocking loop.
type Drill interface {
	// Prompt returns the current question text.
	Prompt() string

	// Submit judges an answer for the current question.
	Submit(answer string) Judgment

	// Expected returns the correct answer for the current question,
	// for feedback after a miss.
	Expected() string

	// Advance moves to the next question. It returns false when the
	// drill is finished.
	Advance() bool
}

// ChoiceDrill is a drill answered by picking from fixed choices.
type ChoiceDrill interface {
	Drill
	Choices() []string
}

// ReadingDrill is a drill with a passage to read rather than a question
// to answer; submitting an empty answer marks it read.
type ReadingDrill interface {
	Drill
	Passage() string
}

// Result is the normalized outcome of one activity run.
type Result struct {
	Rollup   scoring.Rollup
	Attempts []scoring.Attempt
	Start    time.Time
	End      time.Time

	// Exited means the student asked to quit the application
	// mid-activity. Attempts already collected are still scored.
	Exited bool

	// Skipped means the activity aborted before asking anything
	// (e.g. its lesson title failed to resolve); nothing is recorded.
	Skipped bool
}

// Runner executes one planned activity to completion. The interactive
// session screen implements it against the keyboard; tests script it.
type Runner interface {
	Run(ctx context.Context, plan Plan) (Result, error)
}
