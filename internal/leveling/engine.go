package leveling

import (
	"context"

	"github.com/8bitgaijin/Learniverse-sub001/internal/scoring"
	"github.com/8bitgaijin/Learniverse-sub001/internal/store"
)

// Variant distinguishes the two renditions of a lesson. Teach variants
// walk the student through content and never change their level; only
// quiz variants can level a student up.
type Variant int

const (
	VariantQuiz Variant = iota
	VariantTeach
)

// Engine maintains per-(student, lesson) levels. Levels start at 1 and
// only ever increase.
type Engine struct {
	store store.LevelStore
}

// NewEngine creates a leveling engine over the given store.
func NewEngine(s store.LevelStore) *Engine {
	return &Engine{store: s}
}

// Level returns the student's current level for a lesson, creating it
// at 1 on first access.
func (e *Engine) Level(ctx context.Context, studentID int64, lessonTitle string) (int, error) {
	return e.store.GetStudentLevel(ctx, studentID, lessonTitle)
}

// Advance applies the level-up rule to a just-completed activity:
// a perfect quiz raises the level by exactly one, anything else leaves
// it unchanged. Returns the resulting level and whether it increased.
func (e *Engine) Advance(ctx context.Context, studentID int64, lessonTitle string, rollup scoring.Rollup, variant Variant) (int, bool, error) {
	current, err := e.store.GetStudentLevel(ctx, studentID, lessonTitle)
	if err != nil {
		return 0, false, err
	}

	if variant != VariantQuiz || rollup.PercentCorrect != 100 || rollup.Asked == 0 {
		return current, false, nil
	}

	next := current + 1
	if err := e.store.SetStudentLevel(ctx, studentID, lessonTitle, next); err != nil {
		return current, false, err
	}
	return next, true, nil
}
