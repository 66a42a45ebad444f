package content

// Built-in lesson packs. A pack file can override any of these by title.

func defaultAlphabets() []Alphabet {
	return []Alphabet{
		{
			Title: LessonHiragana,
			Glyphs: []Glyph{
				{"あ", "a"}, {"い", "i"}, {"う", "u"}, {"え", "e"}, {"お", "o"},
				{"か", "ka"}, {"き", "ki"}, {"く", "ku"}, {"け", "ke"}, {"こ", "ko"},
				{"さ", "sa"}, {"し", "shi"}, {"す", "su"}, {"せ", "se"}, {"そ", "so"},
				{"た", "ta"}, {"ち", "chi"}, {"つ", "tsu"}, {"て", "te"}, {"と", "to"},
				{"な", "na"}, {"に", "ni"}, {"ぬ", "nu"}, {"ね", "ne"}, {"の", "no"},
				{"は", "ha"}, {"ひ", "hi"}, {"ふ", "fu"}, {"へ", "he"}, {"ほ", "ho"},
				{"ま", "ma"}, {"み", "mi"}, {"む", "mu"}, {"め", "me"}, {"も", "mo"},
				{"や", "ya"}, {"ゆ", "yu"}, {"よ", "yo"},
				{"ら", "ra"}, {"り", "ri"}, {"る", "ru"}, {"れ", "re"}, {"ろ", "ro"},
				{"わ", "wa"}, {"を", "wo"}, {"ん", "n"},
			},
		},
		{
			Title: LessonKatakana,
			Glyphs: []Glyph{
				{"ア", "a"}, {"イ", "i"}, {"ウ", "u"}, {"エ", "e"}, {"オ", "o"},
				{"カ", "ka"}, {"キ", "ki"}, {"ク", "ku"}, {"ケ", "ke"}, {"コ", "ko"},
				{"サ", "sa"}, {"シ", "shi"}, {"ス", "su"}, {"セ", "se"}, {"ソ", "so"},
				{"タ", "ta"}, {"チ", "chi"}, {"ツ", "tsu"}, {"テ", "te"}, {"ト", "to"},
				{"ナ", "na"}, {"ニ", "ni"}, {"ヌ", "nu"}, {"ネ", "ne"}, {"ノ", "no"},
				{"ハ", "ha"}, {"ヒ", "hi"}, {"フ", "fu"}, {"ヘ", "he"}, {"ホ", "ho"},
				{"マ", "ma"}, {"ミ", "mi"}, {"ム", "mu"}, {"メ", "me"}, {"モ", "mo"},
				{"ヤ", "ya"}, {"ユ", "yu"}, {"ヨ", "yo"},
				{"ラ", "ra"}, {"リ", "ri"}, {"ル", "ru"}, {"レ", "re"}, {"ロ", "ro"},
				{"ワ", "wa"}, {"ヲ", "wo"}, {"ン", "n"},
			},
		},
	}
}

func defaultVocabSets() []VocabSet {
	return []VocabSet{
		{
			Title: LessonVocabulary,
			Decks: []Deck{
				{
					Name: "Animals and things",
					Words: []Word{
						{"cat", "neko"},
						{"dog", "inu"},
						{"bird", "tori"},
						{"fish", "sakana"},
						{"book", "hon"},
						{"water", "mizu"},
						{"house", "ie"},
						{"tree", "ki"},
					},
				},
				{
					Name: "Colors",
					Words: []Word{
						{"red", "aka"},
						{"blue", "ao"},
						{"white", "shiro"},
						{"black", "kuro"},
						{"yellow", "kiiro"},
						{"green", "midori"},
						{"pink", "pinku"},
						{"purple", "murasaki"},
					},
				},
				{
					Name: "Food",
					Words: []Word{
						{"rice", "gohan"},
						{"bread", "pan"},
						{"egg", "tamago"},
						{"apple", "ringo"},
						{"tea", "ocha"},
						{"milk", "gyuunyuu"},
						{"meat", "niku"},
						{"vegetable", "yasai"},
					},
				},
			},
		},
	}
}

func defaultVerses() []Verse {
	return []Verse{
		{
			Reference: "Genesis 1:1",
			Text:      "In the beginning God created the heaven and the earth.",
		},
		{
			Reference: "Psalm 23:1",
			Text:      "The LORD is my shepherd; I shall not want.",
		},
		{
			Reference: "Proverbs 3:5",
			Text:      "Trust in the LORD with all thine heart; and lean not unto thine own understanding.",
		},
		{
			Reference: "John 3:16",
			Text:      "For God so loved the world, that he gave his only begotten Son, that whosoever believeth in him should not perish, but have everlasting life.",
		},
	}
}
