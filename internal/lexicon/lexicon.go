// Package lexicon holds the curated multilingual vocabulary for emergency
// triage: category keywords, urgency indicators, greetings and the Roman
// Urdu transliteration table. The tables are immutable after construction
// and shared by reference across requests.
package lexicon

import (
	"strings"
	"unicode"
)

type Lexicon struct {
	entries []KeywordEntry

	// exact lookup keyed by normalized term; entries is the
	// substring-scan fallback for partial and multi-word matches.
	exact map[string]*KeywordEntry

	romanToScript map[string]string
	romanTokens   map[string]bool

	critical map[TermLanguage][]string
	serious  map[TermLanguage][]string

	greetingsScript []string
	greetingsLatin  []string
}

func New() *Lexicon {
	lx := &Lexicon{
		entries:         keywordEntries,
		exact:           make(map[string]*KeywordEntry, len(keywordEntries)),
		romanToScript:   make(map[string]string),
		romanTokens:     make(map[string]bool),
		greetingsScript: greetingsScript,
		greetingsLatin:  greetingsLatin,
		critical: map[TermLanguage][]string{
			TermScript: criticalScript,
			TermLatin:  criticalLatin,
			TermShared: criticalEnglish,
		},
		serious: map[TermLanguage][]string{
			TermScript: seriousScript,
			TermLatin:  seriousLatin,
			TermShared: seriousEnglish,
		},
	}

	for i := range lx.entries {
		e := &lx.entries[i]
		if _, ok := lx.exact[e.Term]; !ok {
			lx.exact[e.Term] = e
		}
		if e.Language == TermScript {
			continue
		}
		if e.Display != "" {
			lx.romanToScript[e.Term] = e.Display
		}
		if e.Language == TermLatin {
			lx.romanTokens[e.Term] = true
		}
	}
	for roman, script := range extraTransliterations {
		if _, ok := lx.romanToScript[roman]; !ok {
			lx.romanToScript[roman] = script
		}
		if !englishExclusions[roman] {
			lx.romanTokens[roman] = true
		}
	}
	return lx
}

var std = New()

// Default returns the process-wide lexicon, built once at init.
func Default() *Lexicon { return std }

func (lx *Lexicon) Entries() []KeywordEntry { return lx.entries }

func (lx *Lexicon) Critical(lang TermLanguage) []string { return lx.critical[lang] }

func (lx *Lexicon) Serious(lang TermLanguage) []string { return lx.serious[lang] }

// InProgressCrime reports whether the serious indicator escalates to
// critical when the message signals it is happening right now.
func InProgressCrime(term string) bool { return inProgressCrimes[term] }

func GreetingsScript() []string { return greetingsScript }

func GreetingsLatin() []string { return greetingsLatin }

// IsStopword reports whether the token carries no classification signal.
func IsStopword(token string) bool { return stopwords[token] }

// Tokenize splits text on whitespace and punctuation, keeping
// apostrophes inside words ("can't").
func Tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}
