package classify

import (
	"strings"

	"github.com/mwaleedk/go-emergency-dispatch/internal/lexicon"
	"github.com/mwaleedk/go-emergency-dispatch/internal/models"
)

// ScoreUrgency assigns a three-level severity from indicator tables that
// are independent of the category keyword table. Critical indicators are
// scanned first and fix the urgency at 1; serious indicators fix it at 2;
// anything else is informational. The returned string is the matched
// indicator, empty for the informational default.
func (c *Classifier) ScoreUrgency(text string, lang models.Language) (models.Urgency, string) {
	trimmed := strings.TrimSpace(text)
	lowered := strings.ToLower(trimmed)

	for _, term := range c.lex.Critical(lexicon.TermScript) {
		if strings.Contains(trimmed, term) {
			return models.UrgencyCritical, term
		}
	}
	for _, term := range c.lex.Critical(lexicon.TermLatin) {
		if strings.Contains(lowered, term) {
			return models.UrgencyCritical, term
		}
	}
	for _, term := range c.lex.Critical(lexicon.TermShared) {
		if strings.Contains(lowered, term) {
			return models.UrgencyCritical, term
		}
	}

	inProgress := hasImmediacyToken(lowered)

	for _, term := range c.lex.Serious(lexicon.TermScript) {
		if strings.Contains(trimmed, term) {
			return models.UrgencySerious, term
		}
	}
	for _, term := range c.lex.Serious(lexicon.TermLatin) {
		if strings.Contains(lowered, term) {
			return models.UrgencySerious, term
		}
	}
	for _, term := range c.lex.Serious(lexicon.TermShared) {
		if strings.Contains(lowered, term) {
			// A crime reported as happening right now is life safety,
			// not a paperwork matter.
			if lexicon.InProgressCrime(term) && inProgress {
				return models.UrgencyCritical, term
			}
			return models.UrgencySerious, term
		}
	}

	return models.UrgencyInformational, ""
}

// hasImmediacyToken reports whether the message carries "now" or "just"
// as a whole token. Substring hits ("justice", "snowfall") do not count.
func hasImmediacyToken(lowered string) bool {
	for _, token := range lexicon.Tokenize(lowered) {
		if token == "now" || token == "just" {
			return true
		}
	}
	return false
}
