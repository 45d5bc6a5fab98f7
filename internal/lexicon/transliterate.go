package lexicon

import "strings"

// Transliterate converts known Roman Urdu tokens in text to their Urdu
// script form. This is a closed-vocabulary lookup, not a phonetic engine:
// unknown tokens pass through unchanged, so the result is best-effort
// mixed text.
func Transliterate(text string) string {
	return std.Transliterate(text)
}

func (lx *Lexicon) Transliterate(text string) string {
	if text == "" {
		return text
	}
	words := strings.Fields(text)
	out := make([]string, len(words))
	for i, word := range words {
		if script, ok := lx.romanToScript[strings.ToLower(word)]; ok {
			out[i] = script
		} else {
			out[i] = word
		}
	}
	return strings.Join(out, " ")
}

// DisplayTerm returns the script form for a single curated term, or the
// term itself when it has no script equivalent.
func (lx *Lexicon) DisplayTerm(term string) string {
	if script, ok := lx.romanToScript[strings.ToLower(term)]; ok {
		return script
	}
	return term
}
