package activity

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/8bitgaijin/Learniverse-sub001/internal/content"
)

// AlphabetQuiz shows glyphs from the student's content window and asks
// for their readings. Glyphs are drawn randomly without immediately
// repeating the previous one.
type AlphabetQuiz struct {
	window    []content.Glyph
	questions int
	asked     int
	current   int
	rng       *rand.Rand
}

var _ Drill = (*AlphabetQuiz)(nil)

// NewAlphabetQuiz creates a quiz over the first window glyphs.
func NewAlphabetQuiz(a content.Alphabet, window, questions int, rng *rand.Rand) *AlphabetQuiz {
	if window > len(a.Glyphs) {
		window = len(a.Glyphs)
	}
	q := &AlphabetQuiz{
		window:    a.Glyphs[:window],
		questions: questions,
		rng:       rng,
	}
	q.current = q.rng.Intn(len(q.window))
	return q
}

func (q *AlphabetQuiz) next() {
	if len(q.window) == 1 {
		return
	}
	for {
		n := q.rng.Intn(len(q.window))
		if n != q.current {
			q.current = n
			return
		}
	}
}

func (q *AlphabetQuiz) Prompt() string {
	return fmt.Sprintf("How do you read  %s ?", q.window[q.current].Symbol)
}

func (q *AlphabetQuiz) Submit(answer string) Judgment {
	if strings.EqualFold(strings.TrimSpace(answer), q.window[q.current].Reading) {
		return Correct
	}
	return Incorrect
}

func (q *AlphabetQuiz) Expected() string {
	return q.window[q.current].Reading
}

func (q *AlphabetQuiz) Advance() bool {
	q.asked++
	if q.asked >= q.questions {
		return false
	}
	q.next()
	return true
}

// AlphabetTeach walks sequentially through the content window, showing
// each glyph with its reading and asking the student to copy it. Teach
// runs never level a student up regardless of score.
type AlphabetTeach struct {
	window  []content.Glyph
	current int
}

var _ Drill = (*AlphabetTeach)(nil)

// NewAlphabetTeach creates a teach pass over the first window glyphs.
func NewAlphabetTeach(a content.Alphabet, window int) *AlphabetTeach {
	if window > len(a.Glyphs) {
		window = len(a.Glyphs)
	}
	return &AlphabetTeach{window: a.Glyphs[:window]}
}

func (t *AlphabetTeach) Prompt() string {
	g := t.window[t.current]
	return fmt.Sprintf("%s  is read %q — type it to continue", g.Symbol, g.Reading)
}

func (t *AlphabetTeach) Submit(answer string) Judgment {
	if strings.EqualFold(strings.TrimSpace(answer), t.window[t.current].Reading) {
		return Correct
	}
	return Incorrect
}

func (t *AlphabetTeach) Expected() string {
	return t.window[t.current].Reading
}

func (t *AlphabetTeach) Advance() bool {
	t.current++
	return t.current < len(t.window)
}
