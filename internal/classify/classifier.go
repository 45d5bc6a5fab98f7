// Package classify implements the lexical service classifier and the
// urgency scorer. Both are pure functions of the message text and the
// detected language; they share the read-only lexicon and can run
// concurrently across requests without locking.
package classify

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mwaleedk/go-emergency-dispatch/internal/lexicon"
	"github.com/mwaleedk/go-emergency-dispatch/internal/models"
)

// SubserviceInquiry tags messages with no actionable emergency clues.
const SubserviceInquiry = "inquiry"

// maxTrailingTokens is the dominant-clause boundary: a message that opens
// with a greeting short-circuits to general only while the remainder
// carries at most this many content tokens. The boundary between
// "greeting with trailing chatter" and "incident framed as a greeting" is
// a product policy, not a derivable rule.
const maxTrailingTokens = 3

type Classifier struct {
	lex *lexicon.Lexicon
}

func New(lex *lexicon.Lexicon) *Classifier {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &Classifier{lex: lex}
}

// Lexicon returns the shared lexicon backing this classifier.
func (c *Classifier) Lexicon() *lexicon.Lexicon { return c.lex }

// Outcome is the classifier half of a ClassificationResult; the urgency
// scorer supplies the other half independently.
type Outcome struct {
	Category   models.Category
	Subservice string
	Keywords   []string
	Greeting   bool
}

// Classify assigns a service category and subservice from keyword
// matches. Greetings are checked before any keyword scanning: a message
// whose dominant clause is a greeting routes to general regardless of
// emergency words later in the text.
func (c *Classifier) Classify(text string, lang models.Language) Outcome {
	trimmed := strings.TrimSpace(text)

	if greeting, ok := c.matchGreeting(trimmed); ok {
		return Outcome{
			Category:   models.CategoryGeneral,
			Subservice: SubserviceInquiry,
			Keywords:   []string{greeting},
			Greeting:   true,
		}
	}

	type match struct {
		pos   int
		entry *lexicon.KeywordEntry
	}

	lowered := strings.ToLower(trimmed)
	entries := c.lex.Entries()

	var matches []match
	seen := make(map[string]bool)
	for i := range entries {
		e := &entries[i]
		var pos int
		if e.Language == lexicon.TermScript {
			pos = strings.Index(trimmed, e.Term)
		} else {
			pos = indexTerm(lowered, e.Term)
		}
		if pos < 0 || seen[e.Term] {
			continue
		}
		seen[e.Term] = true
		matches = append(matches, match{pos: pos, entry: e})
	}

	if len(matches) == 0 {
		return Outcome{Category: models.CategoryGeneral, Subservice: SubserviceInquiry}
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].pos < matches[j].pos })

	keywords := make([]string, 0, len(matches))
	for _, m := range matches {
		keywords = append(keywords, m.entry.Term)
	}

	for _, category := range models.CategoryPriority {
		for _, m := range matches {
			if m.entry.Category == category {
				return Outcome{
					Category:   category,
					Subservice: m.entry.Subservice,
					Keywords:   keywords,
				}
			}
		}
	}

	return Outcome{Category: models.CategoryGeneral, Subservice: SubserviceInquiry, Keywords: keywords}
}

// matchGreeting reports whether the message's dominant clause is a
// curated greeting, returning the matched phrase.
func (c *Classifier) matchGreeting(trimmed string) (string, bool) {
	if trimmed == "" {
		return "", false
	}
	lowered := strings.ToLower(trimmed)

	longest := ""
	for _, g := range lexicon.GreetingsScript() {
		if strings.HasPrefix(trimmed, g) && len(g) > len(longest) {
			longest = g
		}
	}
	for _, g := range lexicon.GreetingsLatin() {
		if strings.HasPrefix(lowered, g) && len(g) > len(longest) {
			// Reject prefix matches inside a longer word ("heyday").
			rest := lowered[len(g):]
			if rest != "" {
				r, _ := utf8.DecodeRuneInString(rest)
				if unicode.IsLetter(r) || unicode.IsDigit(r) {
					continue
				}
			}
			longest = g
		}
	}
	if longest == "" {
		return "", false
	}

	remainder := trimmed[len(longest):]
	content := 0
	for _, token := range lexicon.Tokenize(strings.ToLower(remainder)) {
		if !lexicon.IsStopword(token) {
			content++
		}
	}
	if content > maxTrailingTokens {
		return "", false
	}
	return longest, true
}

// indexTerm finds the first occurrence of term in lowered text,
// preferring a whole-token match over a bare substring match.
func indexTerm(lowered, term string) int {
	from := 0
	for {
		i := strings.Index(lowered[from:], term)
		if i < 0 {
			break
		}
		i += from
		if boundaryBefore(lowered, i) && boundaryAfter(lowered, i+len(term)) {
			return i
		}
		from = i + 1
	}
	return strings.Index(lowered, term)
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
