package activity

import (
	"fmt"
	"math/rand"

	"github.com/8bitgaijin/Learniverse-sub001/internal/content"
)

// VocabQuiz asks the words of one deck in shuffled order as multiple
// choice: the right answer plus up to three decoys from the same deck.
type VocabQuiz struct {
	prompts []string
	answers []string
	choices [][]string
	current int
}

var _ ChoiceDrill = (*VocabQuiz)(nil)

// NewVocabQuiz builds a quiz over every word of the deck.
func NewVocabQuiz(deck content.Deck, rng *rand.Rand) *VocabQuiz {
	order := rng.Perm(len(deck.Words))

	q := &VocabQuiz{}
	for _, i := range order {
		w := deck.Words[i]
		q.prompts = append(q.prompts, w.Prompt)
		q.answers = append(q.answers, w.Answer)
		q.choices = append(q.choices, buildChoices(deck.Words, i, rng))
	}
	return q
}

func buildChoices(words []content.Word, answerIdx int, rng *rand.Rand) []string {
	choices := []string{words[answerIdx].Answer}
	for _, i := range rng.Perm(len(words)) {
		if len(choices) == 4 {
			break
		}
		if i == answerIdx {
			continue
		}
		choices = append(choices, words[i].Answer)
	}
	rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})
	return choices
}

func (q *VocabQuiz) Prompt() string {
	return fmt.Sprintf("Which word means %q?", q.prompts[q.current])
}

func (q *VocabQuiz) Choices() []string {
	return q.choices[q.current]
}

func (q *VocabQuiz) Submit(answer string) Judgment {
	if answer == q.answers[q.current] {
		return Correct
	}
	return Incorrect
}

func (q *VocabQuiz) Expected() string {
	return q.answers[q.current]
}

func (q *VocabQuiz) Advance() bool {
	q.current++
	return q.current < len(q.prompts)
}
