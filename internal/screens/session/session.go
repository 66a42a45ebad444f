package session

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/8bitgaijin/Learniverse-sub001/internal/activity"
	"github.com/8bitgaijin/Learniverse-sub001/internal/router"
	"github.com/8bitgaijin/Learniverse-sub001/internal/scoring"
	"github.com/8bitgaijin/Learniverse-sub001/internal/screen"
	"github.com/8bitgaijin/Learniverse-sub001/internal/screens/summary"
	sess "github.com/8bitgaijin/Learniverse-sub001/internal/session"
	"github.com/8bitgaijin/Learniverse-sub001/internal/ui/components"
	"github.com/8bitgaijin/Learniverse-sub001/internal/ui/layout"
)

// phase is the session screen's display state.
type phase int

const (
	phaseBeginning phase = iota
	phaseNote
	phaseQuestion
	phaseFeedback
	phaseQuitConfirm
	phaseError
)

// SessionScreen drives the activity catalogue for one student: it asks
// the orchestrator for each plan, steps the drill question by question,
// times and scores the answers, and feeds results back.
type SessionScreen struct {
	orch        *sess.Orchestrator
	studentName string

	phase     phase
	prevPhase phase // restored when quit is cancelled

	idx   int
	plan  activity.Plan
	drill activity.Drill

	input      components.TextInput
	mc         components.MultiChoice
	mcActive   bool
	reading    bool
	rejected   bool
	attempts   []scoring.Attempt
	activityAt time.Time
	questionAt time.Time

	lastCorrect  bool
	lastExpected string

	errMsg   string
	opened   bool
	finished bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.Shutdowner = (*SessionScreen)(nil)

// New creates a session screen for the given orchestrator and student.
func New(orch *sess.Orchestrator, studentName string) *SessionScreen {
	return &SessionScreen{
		orch:        orch,
		studentName: studentName,
		input:       components.NewTextInput("Type your answer...", false, 20),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	return func() tea.Msg {
		err := s.orch.Begin(context.Background(), s.studentName)
		return beginDoneMsg{err: err}
	}
}

func (s *SessionScreen) Title() string {
	return "Lesson Time"
}

// Shutdown closes the open session record so an abrupt quit (ctrl+c)
// does not leave a dangling row, even before the first activity has
// loaded. Finish is idempotent, so the normal end-of-session path is
// unaffected.
func (s *SessionScreen) Shutdown() {
	if s.finished || !s.opened {
		return
	}
	if _, err := s.orch.Finish(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "warning: session not closed cleanly: %v\n", err)
	}
	s.finished = true
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End lesson"},
			{Key: "N", Description: "Keep going"},
		}
	case phaseNote, phaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Stop early"},
		}
	}
}

// nextActivity resolves catalogue entries starting at idx, skipping
// ones whose setup fails, until a runnable activity or the end of the
// catalogue is found.
func (s *SessionScreen) nextActivity(idx int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		for i := idx; i < s.orch.Len(); i++ {
			plan, err := s.orch.PlanAt(ctx, i)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: skipping activity: %v\n", err)
				continue
			}

			if plan.Kind.Informational() {
				return activityReadyMsg{idx: i, plan: plan}
			}

			drill, err := s.orch.Drill(plan)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: skipping %s: %v\n", plan.Kind, err)
				continue
			}
			return activityReadyMsg{idx: i, plan: plan, drill: drill}
		}
		return catalogueDoneMsg{}
	}
}

func (s *SessionScreen) finish() tea.Cmd {
	return func() tea.Msg {
		summary, err := s.orch.Finish(context.Background())
		return finishedMsg{summary: summary, err: err}
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case beginDoneMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			s.phase = phaseError
			return s, nil
		}
		s.opened = true
		return s, s.nextActivity(0)

	case activityReadyMsg:
		return s.startActivity(msg)

	case catalogueDoneMsg:
		return s, s.finish()

	case finishedMsg:
		s.finished = true
		if msg.err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", msg.err)
		}
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(msg.summary)}
		}

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseQuestion && !s.mcActive && !s.reading {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SessionScreen) startActivity(msg activityReadyMsg) (screen.Screen, tea.Cmd) {
	s.idx = msg.idx
	s.plan = msg.plan
	s.drill = msg.drill
	s.attempts = nil
	s.rejected = false
	now := time.Now()
	s.activityAt = now
	s.questionAt = now

	if msg.drill == nil {
		s.phase = phaseNote
		return s, nil
	}

	s.phase = phaseQuestion
	return s, s.setupQuestion()
}

// setupQuestion prepares the input widget for the current prompt and
// restarts the per-question timer.
func (s *SessionScreen) setupQuestion() tea.Cmd {
	s.questionAt = time.Now()
	s.rejected = false
	s.mcActive = false
	s.reading = false

	if cd, ok := s.drill.(activity.ChoiceDrill); ok {
		s.mcActive = true
		s.mc = components.NewMultiChoice(s.drill.Prompt(), cd.Choices())
		return nil
	}
	if _, ok := s.drill.(activity.ReadingDrill); ok {
		s.reading = true
		return nil
	}

	s.input = components.NewTextInput("Type your answer...", numericKind(s.plan.Kind), 20)
	return s.input.Init()
}

// numericKind reports whether a drill takes digit-only answers.
func numericKind(k activity.Kind) bool {
	switch k {
	case activity.KindAddition, activity.KindSubtraction, activity.KindMultiplication,
		activity.KindFractions, activity.KindSkipCounting:
		return true
	}
	return false
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phaseError:
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case phaseQuitConfirm:
		switch key {
		case "y", "Y":
			return s.quitEarly()
		case "n", "N", "esc":
			s.phase = s.prevPhase
			s.questionAt = time.Now()
		}
		return s, nil

	case phaseNote:
		if key == "esc" {
			return s.confirmQuit()
		}
		return s, s.nextActivity(s.idx + 1)

	case phaseFeedback:
		if key == "esc" {
			return s.confirmQuit()
		}
		if s.drill.Advance() {
			s.phase = phaseQuestion
			return s, s.setupQuestion()
		}
		return s.completeActivity(false)

	case phaseQuestion:
		switch key {
		case "esc":
			return s.confirmQuit()
		case "enter":
			if s.reading {
				return s.submitReading()
			}
			if !s.mcActive {
				return s.submitAnswer(s.input.Value())
			}
		}

		if s.reading {
			return s, nil
		}

		if s.mcActive {
			var cmd tea.Cmd
			s.mc, cmd = s.mc.Update(msg)
			if s.mc.Submitted {
				return s.submitAnswer(s.mc.Chosen())
			}
			return s, cmd
		}

		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *SessionScreen) confirmQuit() (screen.Screen, tea.Cmd) {
	s.prevPhase = s.phase
	s.phase = phaseQuitConfirm
	return s, nil
}

// submitAnswer judges the current answer and records the attempt. A
// rejected (unparseable) answer does not count against the learner.
func (s *SessionScreen) submitAnswer(answer string) (screen.Screen, tea.Cmd) {
	if answer == "" {
		return s, nil
	}

	elapsed := time.Since(s.questionAt).Seconds()
	judgment := s.drill.Submit(answer)

	if judgment == activity.Reject {
		s.rejected = true
		s.input.Reset()
		if s.mcActive {
			s.mc = components.NewMultiChoice(s.drill.Prompt(), s.mc.Options)
		}
		return s, nil
	}

	s.lastCorrect = judgment == activity.Correct
	s.lastExpected = s.drill.Expected()
	s.attempts = append(s.attempts, scoring.Attempt{
		Correct: s.lastCorrect,
		Elapsed: elapsed,
	})

	if s.mcActive {
		s.mc.Reveal(indexOf(s.mc.Options, s.lastExpected))
	}

	s.phase = phaseFeedback
	return s, nil
}

// submitReading marks the passage read: one correct attempt carrying
// the reading time, then straight on with no feedback stop.
func (s *SessionScreen) submitReading() (screen.Screen, tea.Cmd) {
	elapsed := time.Since(s.questionAt).Seconds()
	s.drill.Submit("")
	s.attempts = append(s.attempts, scoring.Attempt{Correct: true, Elapsed: elapsed})

	if s.drill.Advance() {
		s.phase = phaseQuestion
		return s, s.setupQuestion()
	}
	return s.completeActivity(false)
}

// completeActivity rolls the attempts up, records them, and moves on
// (or finishes, when exited is set).
func (s *SessionScreen) completeActivity(exited bool) (screen.Screen, tea.Cmd) {
	res := activity.Result{
		Rollup:   scoring.Aggregate(s.attempts),
		Attempts: s.attempts,
		Start:    s.activityAt,
		End:      time.Now(),
		Exited:   exited,
	}
	s.orch.Record(context.Background(), s.plan, res)

	if exited {
		return s, s.finish()
	}
	return s, s.nextActivity(s.idx + 1)
}

// quitEarly records whatever was answered in the current activity and
// closes the session.
func (s *SessionScreen) quitEarly() (screen.Screen, tea.Cmd) {
	if s.drill != nil && len(s.attempts) > 0 {
		return s.completeActivity(true)
	}
	return s, s.finish()
}

func indexOf(options []string, want string) int {
	for i, o := range options {
		if o == want {
			return i
		}
	}
	return -1
}
