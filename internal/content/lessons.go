package content

// Lesson titles are fixed at build time and seeded into the store on
// startup; everything else refers to lessons by these titles and
// resolves them to row IDs at runtime.
const (
	LessonHiragana       = "Hiragana"
	LessonKatakana       = "Katakana"
	LessonVocabulary     = "Japanese Vocabulary"
	LessonAddition       = "Single Digit Addition"
	LessonSubtraction    = "Single Digit Subtraction"
	LessonMultiplication = "Single Digit Multiplication"
	LessonFractions      = "Lowest Common Denominator"
	LessonSkipCounting   = "Skip Counting"
	LessonVerses         = "Bible Verses"
)

// SeedLesson is one entry of the startup lesson catalogue.
type SeedLesson struct {
	Title       string
	Description string
}

// SeedLessons returns the catalogue inserted into the store when missing.
func SeedLessons() []SeedLesson {
	return []SeedLesson{
		{LessonHiragana, "Japanese hiragana characters, five at a time"},
		{LessonKatakana, "Japanese katakana characters, five at a time"},
		{LessonVocabulary, "Japanese vocabulary decks"},
		{LessonAddition, "Addition facts with single-digit terms"},
		{LessonSubtraction, "Subtraction facts with single-digit terms"},
		{LessonMultiplication, "Multiplication facts with single-digit factors"},
		{LessonFractions, "Reduce fractions to lowest terms"},
		{LessonSkipCounting, "Count forward by twos, fives, and tens"},
		{LessonVerses, "Short scripture passages read aloud"},
	}
}
