package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Pack is the on-disk YAML shape for replacement lesson content.
// Entries override built-in content by lesson title; omitted sections
// keep their defaults.
type Pack struct {
	Alphabets []Alphabet `yaml:"alphabets"`
	Vocab     []VocabSet `yaml:"vocab"`
	Verses    []Verse    `yaml:"verses"`
}

// LoadPack reads a YAML pack file and merges it into the library.
func (l *Library) LoadPack(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read pack: %w", err)
	}

	var pack Pack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return fmt.Errorf("parse pack: %w", err)
	}

	return l.merge(pack)
}

func (l *Library) merge(pack Pack) error {
	for _, a := range pack.Alphabets {
		if a.Title == "" || len(a.Glyphs) == 0 {
			return fmt.Errorf("alphabet entry missing title or glyphs")
		}
		l.alphabets[a.Title] = a
	}

	for _, v := range pack.Vocab {
		if v.Title == "" || len(v.Decks) == 0 {
			return fmt.Errorf("vocab entry missing title or decks")
		}
		for _, d := range v.Decks {
			if len(d.Words) == 0 {
				return fmt.Errorf("vocab deck %q has no words", d.Name)
			}
		}
		l.vocab[v.Title] = v
	}

	if len(pack.Verses) > 0 {
		l.verses = pack.Verses
	}

	return nil
}
