package lexicon

import (
	"strings"
	"unicode"

	"github.com/mwaleedk/go-emergency-dispatch/internal/models"
)

// scriptRatioThreshold is the minimum share of Arabic-block runes among
// all alphabetic runes for the script signal to count.
const scriptRatioThreshold = 0.3

// romanTokenThreshold is the minimum number of curated Roman Urdu tokens
// for the roman signal to count.
const romanTokenThreshold = 1

// DetectLanguage classifies text as Urdu script, Roman Urdu, English or a
// mixture of script and roman. When both signals clear their thresholds
// the tie goes to mixed, since a mixed reply must preserve all language
// cues. It never fails; text without either signal is treated as English.
func DetectLanguage(text string) models.Language {
	return std.DetectLanguage(text)
}

func (lx *Lexicon) DetectLanguage(text string) models.Language {
	var scriptRunes, alphaRunes int
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		alphaRunes++
		if isArabicBlock(r) {
			scriptRunes++
		}
	}
	scriptSignal := alphaRunes > 0 && float64(scriptRunes)/float64(alphaRunes) >= scriptRatioThreshold

	romanCount := 0
	for _, token := range Tokenize(strings.ToLower(text)) {
		if englishExclusions[token] {
			continue
		}
		if lx.romanTokens[token] {
			romanCount++
		}
	}
	romanSignal := romanCount >= romanTokenThreshold

	switch {
	case scriptSignal && romanSignal:
		return models.LanguageMixed
	case scriptSignal:
		return models.LanguageUrdu
	case romanSignal:
		return models.LanguageRoman
	default:
		return models.LanguageEnglish
	}
}

// isArabicBlock reports whether the rune falls in one of the Unicode
// blocks used by Urdu script (Arabic, Arabic Supplement/Extended and the
// presentation forms).
func isArabicBlock(r rune) bool {
	switch {
	case r >= 0x0600 && r <= 0x06FF:
		return true
	case r >= 0x0750 && r <= 0x077F:
		return true
	case r >= 0x08A0 && r <= 0x08FF:
		return true
	case r >= 0xFB50 && r <= 0xFDFF:
		return true
	case r >= 0xFE70 && r <= 0xFEFF:
		return true
	}
	return false
}
