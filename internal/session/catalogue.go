package session

import (
	"github.com/8bitgaijin/Learniverse-sub001/internal/activity"
	"github.com/8bitgaijin/Learniverse-sub001/internal/content"
	"github.com/8bitgaijin/Learniverse-sub001/internal/leveling"
)

// DefaultQuestions is the number of questions a generated drill asks.
const DefaultQuestions = 5

// Entry is one slot of the session catalogue: an activity kind bound to
// the lesson it reports under.
type Entry struct {
	Kind        activity.Kind
	LessonTitle string
	Variant     leveling.Variant
	Questions   int
}

// DefaultCatalogue returns the ordered activity list for a session:
// informational openers first, then drills and quizzes, with the verse
// reading closing the session. Entries run in order and are never
// skipped on a poor score.
func DefaultCatalogue() []Entry {
	return []Entry{
		{Kind: activity.KindGreeting},
		{Kind: activity.KindStreak},
		{Kind: activity.KindDayOfWeek},
		{Kind: activity.KindAddition, LessonTitle: content.LessonAddition, Questions: DefaultQuestions},
		{Kind: activity.KindSubtraction, LessonTitle: content.LessonSubtraction, Questions: DefaultQuestions},
		{Kind: activity.KindMultiplication, LessonTitle: content.LessonMultiplication, Questions: DefaultQuestions},
		{Kind: activity.KindFractions, LessonTitle: content.LessonFractions, Questions: DefaultQuestions},
		{Kind: activity.KindSkipCounting, LessonTitle: content.LessonSkipCounting, Questions: DefaultQuestions},
		{Kind: activity.KindHiraganaTeach, LessonTitle: content.LessonHiragana, Variant: leveling.VariantTeach},
		{Kind: activity.KindHiraganaQuiz, LessonTitle: content.LessonHiragana, Questions: DefaultQuestions},
		{Kind: activity.KindKatakanaQuiz, LessonTitle: content.LessonKatakana, Questions: DefaultQuestions},
		{Kind: activity.KindVocabQuiz, LessonTitle: content.LessonVocabulary},
		// Readings are scored for time but are not quizzes; a finished
		// passage must not level the lesson.
		{Kind: activity.KindVerseReading, LessonTitle: content.LessonVerses, Variant: leveling.VariantTeach},
	}
}
