package activity

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/8bitgaijin/Learniverse-sub001/internal/content"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestMathDrill_AsksExactlyNQuestions(t *testing.T) {
	d := NewMathDrill(OpAdd, 5, testRNG())

	count := 1
	for d.Advance() {
		count++
	}
	if count != 5 {
		t.Errorf("questions = %d, want 5", count)
	}
}

func TestMathDrill_JudgesAnswers(t *testing.T) {
	for _, op := range []Op{OpAdd, OpSubtract, OpMultiply} {
		d := NewMathDrill(op, 10, testRNG())
		for {
			if got := d.Submit(d.Expected()); got != Correct {
				t.Fatalf("op %d: correct answer judged %v", op, got)
			}
			if got := d.Submit("9999"); got != Incorrect {
				t.Fatalf("op %d: wrong answer judged %v", op, got)
			}
			if got := d.Submit("banana"); got != Reject {
				t.Fatalf("op %d: malformed answer judged %v", op, got)
			}
			if !d.Advance() {
				break
			}
		}
	}
}

func TestMathDrill_SubtractionNeverNegative(t *testing.T) {
	d := NewMathDrill(OpSubtract, 50, testRNG())
	for {
		n, err := strconv.Atoi(d.Expected())
		if err != nil {
			t.Fatalf("expected answer not a number: %q", d.Expected())
		}
		if n < 0 {
			t.Fatalf("negative subtraction answer %d for %q", n, d.Prompt())
		}
		if !d.Advance() {
			break
		}
	}
}

func TestMathDrill_NoImmediateRepeat(t *testing.T) {
	d := NewMathDrill(OpAdd, 50, testRNG())
	prev := d.Prompt()
	for d.Advance() {
		if d.Prompt() == prev {
			t.Fatalf("question repeated immediately: %q", prev)
		}
		prev = d.Prompt()
	}
}

func TestFractionDrill_MalformedInputRejected(t *testing.T) {
	d := NewFractionDrill(3, testRNG())

	for _, bad := range []string{"", "7", "a/b", "1/0", "1/2/3"} {
		if got := d.Submit(bad); got != Reject {
			t.Errorf("Submit(%q) = %v, want Reject", bad, got)
		}
	}

	if got := d.Submit(d.Expected()); got != Correct {
		t.Errorf("correct answer judged %v", got)
	}
	if got := d.Submit(" " + d.Expected() + " "); got != Correct {
		t.Errorf("padded correct answer judged %v", got)
	}
}

func TestFractionDrill_ExpectedIsLowestTerms(t *testing.T) {
	d := NewFractionDrill(20, testRNG())
	for {
		parts := strings.Split(d.Expected(), "/")
		if len(parts) != 2 {
			t.Fatalf("Expected() = %q, want n/d", d.Expected())
		}
		n, _ := strconv.Atoi(parts[0])
		den, _ := strconv.Atoi(parts[1])
		if g := gcd(n, den); g != 1 {
			t.Fatalf("answer %q not in lowest terms", d.Expected())
		}
		if !d.Advance() {
			break
		}
	}
}

func TestCountingDrill(t *testing.T) {
	d := NewCountingDrill(10, testRNG())
	for {
		if got := d.Submit(d.Expected()); got != Correct {
			t.Fatalf("correct answer judged %v for %q", got, d.Prompt())
		}
		if got := d.Submit("next"); got != Reject {
			t.Fatalf("malformed answer judged %v", got)
		}
		if !d.Advance() {
			break
		}
	}
}

func testAlphabet() content.Alphabet {
	return content.Alphabet{
		Title: "Hiragana",
		Glyphs: []content.Glyph{
			{Symbol: "あ", Reading: "a"}, {Symbol: "い", Reading: "i"},
			{Symbol: "う", Reading: "u"}, {Symbol: "え", Reading: "e"},
			{Symbol: "お", Reading: "o"}, {Symbol: "か", Reading: "ka"},
			{Symbol: "き", Reading: "ki"},
		},
	}
}

func TestAlphabetQuiz_StaysInsideWindow(t *testing.T) {
	a := testAlphabet()
	q := NewAlphabetQuiz(a, 5, 30, testRNG())

	windowSymbols := map[string]bool{}
	for _, g := range a.Glyphs[:5] {
		windowSymbols[g.Symbol] = true
	}

	for {
		found := false
		for sym := range windowSymbols {
			if strings.Contains(q.Prompt(), sym) {
				found = true
			}
		}
		if !found {
			t.Fatalf("prompt %q outside window", q.Prompt())
		}
		if !q.Advance() {
			break
		}
	}
}

func TestAlphabetQuiz_CaseInsensitive(t *testing.T) {
	q := NewAlphabetQuiz(testAlphabet(), 5, 5, testRNG())
	if got := q.Submit(strings.ToUpper(q.Expected())); got != Correct {
		t.Errorf("uppercase answer judged %v", got)
	}
}

func TestAlphabetTeach_WalksWindowInOrder(t *testing.T) {
	a := testAlphabet()
	teach := NewAlphabetTeach(a, 5)

	for i := 0; i < 5; i++ {
		if !strings.Contains(teach.Prompt(), a.Glyphs[i].Symbol) {
			t.Errorf("step %d prompt %q missing glyph %q", i, teach.Prompt(), a.Glyphs[i].Symbol)
		}
		if got := teach.Submit(a.Glyphs[i].Reading); got != Correct {
			t.Errorf("step %d reading judged %v", i, got)
		}
		more := teach.Advance()
		if more != (i < 4) {
			t.Errorf("step %d Advance = %v", i, more)
		}
	}
}

func TestVocabQuiz_AsksEveryWordOnce(t *testing.T) {
	deck := content.Deck{
		Name: "test",
		Words: []content.Word{
			{Prompt: "cat", Answer: "neko"}, {Prompt: "dog", Answer: "inu"},
			{Prompt: "bird", Answer: "tori"}, {Prompt: "fish", Answer: "sakana"},
			{Prompt: "book", Answer: "hon"},
		},
	}
	q := NewVocabQuiz(deck, testRNG())

	seen := map[string]bool{}
	for {
		seen[q.Expected()] = true

		choices := q.Choices()
		if len(choices) != 4 {
			t.Fatalf("choices = %d, want 4", len(choices))
		}
		hasAnswer := false
		for _, c := range choices {
			if c == q.Expected() {
				hasAnswer = true
			}
		}
		if !hasAnswer {
			t.Fatalf("choices %v missing answer %q", choices, q.Expected())
		}

		if got := q.Submit(q.Expected()); got != Correct {
			t.Fatalf("correct choice judged %v", got)
		}
		if !q.Advance() {
			break
		}
	}

	if len(seen) != len(deck.Words) {
		t.Errorf("asked %d distinct words, want %d", len(seen), len(deck.Words))
	}
}

func TestVerseReading_SingleCorrectAttempt(t *testing.T) {
	verses := []content.Verse{{Reference: "Psalm 23:1", Text: "The LORD is my shepherd"}}
	v := NewVerseReading(verses, testRNG())

	if v.Passage() == "" {
		t.Error("empty passage")
	}
	if got := v.Submit(""); got != Correct {
		t.Errorf("finishing the reading judged %v", got)
	}
	if v.Advance() {
		t.Error("verse reading should be a single step")
	}
}

func TestRegistry_BuildsEveryDrillKind(t *testing.T) {
	lib := content.NewLibrary()

	plans := []Plan{
		{Kind: KindAddition, Questions: 5},
		{Kind: KindSubtraction, Questions: 5},
		{Kind: KindMultiplication, Questions: 5},
		{Kind: KindFractions, Questions: 5},
		{Kind: KindSkipCounting, Questions: 5},
		{Kind: KindHiraganaTeach, LessonTitle: content.LessonHiragana, Window: 5},
		{Kind: KindHiraganaQuiz, LessonTitle: content.LessonHiragana, Window: 5, Questions: 5},
		{Kind: KindKatakanaQuiz, LessonTitle: content.LessonKatakana, Window: 5, Questions: 5},
		{Kind: KindVocabQuiz, LessonTitle: content.LessonVocabulary, DeckIndex: 1},
		{Kind: KindVerseReading, LessonTitle: content.LessonVerses},
	}

	for _, plan := range plans {
		drill, err := New(plan, lib)
		if err != nil {
			t.Errorf("New(%s): %v", plan.Kind, err)
			continue
		}
		if drill.Prompt() == "" {
			t.Errorf("New(%s): empty prompt", plan.Kind)
		}
	}
}

func TestRegistry_UnknownContentFails(t *testing.T) {
	lib := content.NewLibrary()

	if _, err := New(Plan{Kind: KindHiraganaQuiz, LessonTitle: "Cyrillic", Window: 5, Questions: 5}, lib); err == nil {
		t.Error("expected error for unknown alphabet")
	}
	if _, err := New(Plan{Kind: KindVocabQuiz, LessonTitle: content.LessonVocabulary, DeckIndex: 9}, lib); err == nil {
		t.Error("expected error for deck out of range")
	}
	if _, err := New(Plan{Kind: KindGreeting}, lib); err == nil {
		t.Error("informational kinds have no drill")
	}
}

func TestKindInformational(t *testing.T) {
	for _, k := range []Kind{KindGreeting, KindStreak, KindDayOfWeek} {
		if !k.Informational() {
			t.Errorf("%s should be informational", k)
		}
	}
	for _, k := range []Kind{KindAddition, KindHiraganaQuiz, KindVerseReading} {
		if k.Informational() {
			t.Errorf("%s should not be informational", k)
		}
	}
}
