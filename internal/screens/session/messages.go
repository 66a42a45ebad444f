package session

import (
	"github.com/8bitgaijin/Learniverse-sub001/internal/activity"
	sess "github.com/8bitgaijin/Learniverse-sub001/internal/session"
)

// beginDoneMsg is sent when the session record has been opened.
type beginDoneMsg struct {
	err error
}

// activityReadyMsg carries the next runnable activity. drill is nil
// for informational entries, which only display plan.Note.
type activityReadyMsg struct {
	idx   int
	plan  activity.Plan
	drill activity.Drill
}

// catalogueDoneMsg is sent when every catalogue entry has run.
type catalogueDoneMsg struct{}

// finishedMsg carries the closed session summary.
type finishedMsg struct {
	summary sess.Summary
	err     error
}
