package content

import "fmt"

// Glyph is a single character in an alphabet lesson, paired with the
// reading a student types as the answer.
type Glyph struct {
	Symbol  string `yaml:"symbol"`
	Reading string `yaml:"reading"`
}

// Alphabet is an ordered character set exposed to a student as a
// growing prefix window.
type Alphabet struct {
	Title  string  `yaml:"title"`
	Glyphs []Glyph `yaml:"glyphs"`
}

// Word is a single vocabulary entry.
type Word struct {
	Prompt string `yaml:"prompt"`
	Answer string `yaml:"answer"`
}

// Deck is one numbered vocabulary pack. Students move through decks one
// at a time as their level increases.
type Deck struct {
	Name  string `yaml:"name"`
	Words []Word `yaml:"words"`
}

// VocabSet is an ordered list of decks for one vocabulary lesson.
type VocabSet struct {
	Title string `yaml:"title"`
	Decks []Deck `yaml:"decks"`
}

// Verse is one reading passage.
type Verse struct {
	Reference string `yaml:"reference"`
	Text      string `yaml:"text"`
}

// Library holds all lesson content known to the running process.
// The set of lesson titles is fixed; the content behind a title can be
// replaced by a pack file.
type Library struct {
	alphabets map[string]Alphabet
	vocab     map[string]VocabSet
	verses    []Verse
}

// NewLibrary returns a library populated with the built-in packs.
func NewLibrary() *Library {
	lib := &Library{
		alphabets: make(map[string]Alphabet),
		vocab:     make(map[string]VocabSet),
	}
	for _, a := range defaultAlphabets() {
		lib.alphabets[a.Title] = a
	}
	for _, v := range defaultVocabSets() {
		lib.vocab[v.Title] = v
	}
	lib.verses = defaultVerses()
	return lib
}

// Alphabet returns the alphabet for a lesson title.
func (l *Library) Alphabet(title string) (Alphabet, error) {
	a, ok := l.alphabets[title]
	if !ok {
		return Alphabet{}, fmt.Errorf("no alphabet content for lesson %q", title)
	}
	return a, nil
}

// VocabSet returns the deck set for a lesson title.
func (l *Library) VocabSet(title string) (VocabSet, error) {
	v, ok := l.vocab[title]
	if !ok {
		return VocabSet{}, fmt.Errorf("no vocabulary content for lesson %q", title)
	}
	return v, nil
}

// Verses returns all reading passages.
func (l *Library) Verses() []Verse {
	return l.verses
}
