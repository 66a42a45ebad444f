package leveling

// Step is the number of new items exposed per level for lessons with
// linearly growing content windows (alphabets).
const Step = 5

// PrefixWindow returns how many items of an ordered content pool a
// student at the given level sees: min(level*Step, contentLen).
// The window grows monotonically with level and clamps at the pool size.
func PrefixWindow(level, contentLen int) int {
	if level < 1 {
		level = 1
	}
	n := level * Step
	if n > contentLen {
		return contentLen
	}
	return n
}

// DeckIndex maps a level onto a discretely-numbered content set
// (vocabulary decks 1..decks). Levels beyond the last deck clamp to it;
// exhausted reports that the student has run out of new decks, at which
// point no further leveling is attempted.
func DeckIndex(level, decks int) (index int, exhausted bool) {
	if level < 1 {
		level = 1
	}
	if level > decks {
		return decks, true
	}
	return level, false
}
