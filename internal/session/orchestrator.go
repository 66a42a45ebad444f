package session

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/8bitgaijin/Learniverse-sub001/internal/activity"
	"github.com/8bitgaijin/Learniverse-sub001/internal/content"
	"github.com/8bitgaijin/Learniverse-sub001/internal/leveling"
	"github.com/8bitgaijin/Learniverse-sub001/internal/scoring"
	"github.com/8bitgaijin/Learniverse-sub001/internal/store"
)

// Orchestrator runs the ordered activity catalogue for one student and
// rolls the results up into a session record. It is a stepper: the
// interactive session screen (or the blocking Run driver) asks for the
// next plan, executes it, and feeds the result back.
type Orchestrator struct {
	store     store.ProgressStore
	engine    *leveling.Engine
	lib       *content.Library
	catalogue []Entry
	now       func() time.Time

	studentID   int64
	studentName string
	sessionID   int64
	sessionUUID string
	startedAt   time.Time

	totalQuestions int
	totalCorrect   int
	activityAvgs   []float64
	results        []LessonResult
	closed         bool
}

// LessonResult is one scored activity's outcome, kept for the summary
// screen.
type LessonResult struct {
	Kind        activity.Kind
	LessonTitle string
	Rollup      scoring.Rollup
	Level       int
	LeveledUp   bool
	Exhausted   bool
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithCatalogue overrides the default activity catalogue.
func WithCatalogue(entries []Entry) Option {
	return func(o *Orchestrator) { o.catalogue = entries }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) { o.now = now }
}

// New creates an orchestrator over the given store, leveling engine,
// and content library.
func New(st store.ProgressStore, engine *leveling.Engine, lib *content.Library, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		store:     st,
		engine:    engine,
		lib:       lib,
		catalogue: DefaultCatalogue(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Begin resolves the student and opens the session record. An unknown
// student fails fast before anything runs.
func (o *Orchestrator) Begin(ctx context.Context, studentName string) error {
	id, err := o.store.FindStudentID(ctx, studentName)
	if err != nil {
		return fmt.Errorf("begin session: %w", err)
	}

	o.studentID = id
	o.studentName = studentName
	o.sessionUUID = uuid.New().String()
	o.startedAt = o.now()

	sessionID, err := o.store.OpenSession(ctx, id, o.sessionUUID, o.startedAt)
	if err != nil {
		return fmt.Errorf("begin session: %w", err)
	}
	o.sessionID = sessionID
	return nil
}

// Drill builds the steppable drill for a plan using the orchestrator's
// content library.
func (o *Orchestrator) Drill(plan activity.Plan) (activity.Drill, error) {
	return activity.New(plan, o.lib)
}

// Len returns the number of catalogue entries.
func (o *Orchestrator) Len() int {
	return len(o.catalogue)
}

// StudentName returns the name the session was begun with.
func (o *Orchestrator) StudentName() string {
	return o.studentName
}

// PlanAt resolves catalogue entry i into a runnable plan: the lesson is
// looked up, the student's level read (created at 1 if new), and the
// content window sized for it. A lookup failure is non-fatal to the
// session — the caller logs it and moves on to the next entry.
func (o *Orchestrator) PlanAt(ctx context.Context, i int) (activity.Plan, error) {
	entry := o.catalogue[i]
	plan := activity.Plan{
		Kind:        entry.Kind,
		LessonTitle: entry.LessonTitle,
		Variant:     entry.Variant,
		Questions:   entry.Questions,
	}

	if entry.Kind.Informational() {
		plan.Note = o.informationalNote(ctx, entry.Kind)
		return plan, nil
	}

	if _, err := o.store.FindLessonID(ctx, entry.LessonTitle); err != nil {
		return activity.Plan{}, fmt.Errorf("plan %s: %w", entry.Kind, err)
	}

	level, err := o.engine.Level(ctx, o.studentID, entry.LessonTitle)
	if err != nil {
		return activity.Plan{}, fmt.Errorf("plan %s: %w", entry.Kind, err)
	}
	plan.Level = level

	switch entry.Kind {
	case activity.KindHiraganaTeach, activity.KindHiraganaQuiz, activity.KindKatakanaQuiz:
		alphabet, err := o.lib.Alphabet(entry.LessonTitle)
		if err != nil {
			return activity.Plan{}, fmt.Errorf("plan %s: %w", entry.Kind, err)
		}
		plan.Window = leveling.PrefixWindow(level, len(alphabet.Glyphs))

	case activity.KindVocabQuiz:
		set, err := o.lib.VocabSet(entry.LessonTitle)
		if err != nil {
			return activity.Plan{}, fmt.Errorf("plan %s: %w", entry.Kind, err)
		}
		plan.DeckIndex, plan.Exhausted = leveling.DeckIndex(level, len(set.Decks))
	}

	return plan, nil
}

// informationalNote builds the display text for informational entries.
func (o *Orchestrator) informationalNote(ctx context.Context, kind activity.Kind) string {
	switch kind {
	case activity.KindGreeting:
		return fmt.Sprintf("Hello, %s! Ready to learn?", o.studentName)

	case activity.KindStreak:
		streak, err := o.store.ConsecutiveDayStreak(ctx, o.studentID, o.now())
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: streak lookup failed: %v\n", err)
			return "Welcome back!"
		}
		if streak == 0 {
			return "Start a new practice streak today!"
		}
		if streak == 1 {
			return "You practiced yesterday — keep the streak going!"
		}
		return fmt.Sprintf("You have practiced %d days in a row!", streak)

	case activity.KindDayOfWeek:
		return fmt.Sprintf("Today is %s.", o.now().Weekday())
	}
	return ""
}

// Record feeds one activity's result back into the session. For scored
// activities the SessionLesson row is written before the leveling
// engine touches the progress row, so a level-up decision always sees
// the just-completed percentage. Persistence failures are logged and
// tolerated: the score is lost but the session continues.
func (o *Orchestrator) Record(ctx context.Context, plan activity.Plan, res activity.Result) {
	if plan.Kind.Informational() || res.Skipped {
		return
	}

	lessonID, err := o.store.FindLessonID(ctx, plan.LessonTitle)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %s not recorded: %v\n", plan.Kind, err)
		return
	}

	rollup := res.Rollup

	if _, err := o.store.RecordSessionLesson(ctx, o.sessionID, lessonID, res.Start, res.End, rollup.Asked, rollup.Correct); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %s score not saved: %v\n", plan.Kind, err)
	}

	result := LessonResult{
		Kind:        plan.Kind,
		LessonTitle: plan.LessonTitle,
		Rollup:      rollup,
		Level:       plan.Level,
		Exhausted:   plan.Exhausted,
	}

	// A lesson at its content ceiling levels no further, and a quiz
	// abandoned mid-way is not a completed quiz however perfect its
	// partial score.
	if !plan.Exhausted && !res.Exited {
		level, leveled, err := o.engine.Advance(ctx, o.studentID, plan.LessonTitle, rollup, plan.Variant)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s level not updated: %v\n", plan.Kind, err)
		} else {
			result.Level = level
			result.LeveledUp = leveled
		}
	}

	o.results = append(o.results, result)
	o.totalQuestions += rollup.Asked
	o.totalCorrect += rollup.Correct
	if rollup.Asked > 0 {
		o.activityAvgs = append(o.activityAvgs, rollup.AvgTime)
	}
}

// Finish closes the session with the accumulated totals. It is safe to
// call once whether the session completed or was exited early; repeated
// calls return the same summary without touching the store again.
func (o *Orchestrator) Finish(ctx context.Context) (Summary, error) {
	summary := o.buildSummary()

	if o.closed {
		return summary, nil
	}
	o.closed = true

	err := o.store.CloseSession(ctx, o.sessionID, o.now(),
		summary.Duration.Seconds(), summary.TotalQuestions, summary.TotalCorrect, summary.AvgTime)
	if err != nil {
		return summary, fmt.Errorf("close session: %w", err)
	}
	return summary, nil
}

// Run drives the whole catalogue through the given runner and returns
// the final summary. An exit signaled by any activity stops the loop
// immediately; the session is still closed with the partial totals.
func (o *Orchestrator) Run(ctx context.Context, studentName string, runner activity.Runner) (Summary, error) {
	if err := o.Begin(ctx, studentName); err != nil {
		return Summary{}, err
	}

	for i := 0; i < o.Len(); i++ {
		plan, err := o.PlanAt(ctx, i)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: skipping activity: %v\n", err)
			continue
		}

		res, err := runner.Run(ctx, plan)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: activity %s failed: %v\n", plan.Kind, err)
			continue
		}

		o.Record(ctx, plan, res)

		if res.Exited {
			break
		}
	}

	return o.Finish(ctx)
}
