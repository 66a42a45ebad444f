package activity

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/8bitgaijin/Learniverse-sub001/internal/content"
)

// Factory constructs a drill for a planned activity.
type Factory func(plan Plan, lib *content.Library, rng *rand.Rand) (Drill, error)

var registry = map[Kind]Factory{
	KindAddition: func(plan Plan, _ *content.Library, rng *rand.Rand) (Drill, error) {
		return NewMathDrill(OpAdd, plan.Questions, rng), nil
	},
	KindSubtraction: func(plan Plan, _ *content.Library, rng *rand.Rand) (Drill, error) {
		return NewMathDrill(OpSubtract, plan.Questions, rng), nil
	},
	KindMultiplication: func(plan Plan, _ *content.Library, rng *rand.Rand) (Drill, error) {
		return NewMathDrill(OpMultiply, plan.Questions, rng), nil
	},
	KindFractions: func(plan Plan, _ *content.Library, rng *rand.Rand) (Drill, error) {
		return NewFractionDrill(plan.Questions, rng), nil
	},
	KindSkipCounting: func(plan Plan, _ *content.Library, rng *rand.Rand) (Drill, error) {
		return NewCountingDrill(plan.Questions, rng), nil
	},
	KindHiraganaTeach: func(plan Plan, lib *content.Library, _ *rand.Rand) (Drill, error) {
		a, err := lib.Alphabet(plan.LessonTitle)
		if err != nil {
			return nil, err
		}
		return NewAlphabetTeach(a, plan.Window), nil
	},
	KindHiraganaQuiz: newAlphabetQuizFactory,
	KindKatakanaQuiz: newAlphabetQuizFactory,
	KindVocabQuiz: func(plan Plan, lib *content.Library, rng *rand.Rand) (Drill, error) {
		set, err := lib.VocabSet(plan.LessonTitle)
		if err != nil {
			return nil, err
		}
		if plan.DeckIndex < 1 || plan.DeckIndex > len(set.Decks) {
			return nil, fmt.Errorf("deck %d out of range for %q", plan.DeckIndex, plan.LessonTitle)
		}
		return NewVocabQuiz(set.Decks[plan.DeckIndex-1], rng), nil
	},
	KindVerseReading: func(plan Plan, lib *content.Library, rng *rand.Rand) (Drill, error) {
		verses := lib.Verses()
		if len(verses) == 0 {
			return nil, fmt.Errorf("no verses available")
		}
		return NewVerseReading(verses, rng), nil
	},
}

func newAlphabetQuizFactory(plan Plan, lib *content.Library, rng *rand.Rand) (Drill, error) {
	a, err := lib.Alphabet(plan.LessonTitle)
	if err != nil {
		return nil, err
	}
	return NewAlphabetQuiz(a, plan.Window, plan.Questions, rng), nil
}

// New constructs the drill for a planned activity. Informational kinds
// have no drill and return an error.
func New(plan Plan, lib *content.Library) (Drill, error) {
	factory, ok := registry[plan.Kind]
	if !ok {
		return nil, fmt.Errorf("no drill registered for kind %q", plan.Kind)
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return factory(plan, lib, rng)
}
