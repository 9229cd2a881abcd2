package crawler

import "unicode"

// DetectLanguage guesses the language of text from its dominant script.
// Latin-script languages all report "en"; good enough for defaulting a
// brand profile that the user can correct.
func DetectLanguage(text string) string {
	if text == "" {
		return "en"
	}

	cyrillicCount := 0
	latinCount := 0
	arabicCount := 0
	cjkCount := 0
	devanagariCount := 0
	totalLetters := 0

	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		totalLetters++
		switch {
		case unicode.Is(unicode.Cyrillic, r):
			cyrillicCount++
		case unicode.Is(unicode.Latin, r):
			latinCount++
		case unicode.Is(unicode.Arabic, r):
			arabicCount++
		case unicode.Is(unicode.Devanagari, r):
			devanagariCount++
		case unicode.Is(unicode.Han, r), unicode.Is(unicode.Hiragana, r), unicode.Is(unicode.Katakana, r):
			cjkCount++
		}
	}

	if totalLetters == 0 {
		return "en"
	}

	cyrPct := float64(cyrillicCount) / float64(totalLetters)
	arPct := float64(arabicCount) / float64(totalLetters)
	cjkPct := float64(cjkCount) / float64(totalLetters)
	devPct := float64(devanagariCount) / float64(totalLetters)

	switch {
	case cyrPct >= 0.3:
		return "ru"
	case arPct >= 0.3:
		return "ar"
	case cjkPct >= 0.3:
		return "zh"
	case devPct >= 0.3:
		return "hi"
	default:
		return "en"
	}
}
