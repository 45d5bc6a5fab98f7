// Package respond renders the final reply text for a classified
// request, shaped to the caller's network conditions. Slow links get a
// single symbol-dense line; good links get the full multi-section form.
// Both forms carry the same service and urgency markers.
package respond

import (
	"fmt"
	"strings"

	"github.com/mwaleedk/go-emergency-dispatch/internal/lexicon"
	"github.com/mwaleedk/go-emergency-dispatch/internal/models"
)

// Reply is the shaped response returned to the client alongside the
// structured classification.
type Reply struct {
	Text    string `json:"text"`
	Minimal bool   `json:"minimal"`
}

// DetectQuality maps client hints to a network quality. An explicit
// quality value wins; otherwise the connection type is consulted.
func DetectQuality(quality, connectionType string) models.NetworkQuality {
	switch strings.ToLower(strings.TrimSpace(quality)) {
	case "slow":
		return models.NetworkSlow
	case "medium":
		return models.NetworkMedium
	case "fast":
		return models.NetworkFast
	}

	switch strings.ToLower(strings.TrimSpace(connectionType)) {
	case "2g":
		return models.NetworkSlow
	case "3g":
		return models.NetworkMedium
	case "4g", "5g", "wifi":
		return models.NetworkFast
	}
	return models.NetworkUnknown
}

// UseMinimal decides the reply mode. Unknown quality is treated as slow:
// when the link cannot be judged, the short form is the safer send.
func UseMinimal(quality models.NetworkQuality, urgency models.Urgency) bool {
	switch quality {
	case models.NetworkFast:
		return false
	case models.NetworkMedium:
		return urgency <= models.UrgencySerious
	}
	return true
}

// Shape renders the reply for a classification and its resolved
// facilities in the caller's detected language.
func Shape(result models.ClassificationResult, facilities []models.FacilityCandidate, quality models.NetworkQuality) Reply {
	if UseMinimal(quality, result.Urgency) {
		return Reply{Text: minimalText(result, facilities), Minimal: true}
	}
	return Reply{Text: standardText(result, facilities), Minimal: false}
}

// minimalText is one " | "-joined line: service tag, urgency tag, then
// for actionable requests the confirmation and a compressed follow-up.
func minimalText(result models.ClassificationResult, facilities []models.FacilityCandidate) string {
	lang := templateLang(result.Language)

	parts := []string{
		serviceLabels[lang][result.Category],
		urgencyLabels[lang][result.Urgency],
	}
	if len(facilities) > 0 && result.Category != models.CategoryGeneral {
		parts = append(parts, "📞 "+facilities[0].Phone)
	}
	if result.Urgency <= models.UrgencySerious {
		parts = append(parts, "✓ "+minimalActions[lang])
	}
	parts = append(parts, "? "+minimalFollowUps[lang][result.Category])
	return strings.Join(parts, " | ")
}

// standardText opens with the same service and urgency tags as the
// minimal form, then adds the urgency summary, facility details, the
// action taken, and a follow-up question as separate sections.
func standardText(result models.ClassificationResult, facilities []models.FacilityCandidate) string {
	lang := templateLang(result.Language)

	sections := []string{
		serviceLabels[lang][result.Category] + " | " + urgencyLabels[lang][result.Urgency],
		summaries[lang][result.Urgency],
	}

	if line := keywordLine(lang, result); line != "" {
		sections = append(sections, line)
	}

	if result.Category == models.CategoryGeneral {
		sections = append(sections, generalHelpLines[lang])
	} else if len(facilities) > 0 {
		sections = append(sections, facilitySection(lang, facilities[0]))
	}

	if result.Urgency <= models.UrgencySerious {
		sections = append(sections, actionLines[lang][result.Category])
	}
	sections = append(sections, "❓ "+followUps[lang][result.Category])
	return strings.Join(sections, "\n\n")
}

// keywordLine echoes the matched terms back to the caller. Script
// readers get the curated Urdu forms of romanized terms.
func keywordLine(lang models.Language, result models.ClassificationResult) string {
	if len(result.Keywords) == 0 || result.Category == models.CategoryGeneral {
		return ""
	}
	terms := result.Keywords
	if lang == models.LanguageUrdu {
		lx := lexicon.Default()
		converted := make([]string, len(terms))
		for i, term := range terms {
			converted[i] = lx.DisplayTerm(term)
		}
		terms = converted
	}
	return "🔤 " + strings.Join(terms, ", ")
}

func facilitySection(lang models.Language, f models.FacilityCandidate) string {
	lines := []string{fmt.Sprintf("%s: %s", facilityHeadings[lang], f.Name)}
	if f.Phone != "" {
		lines = append(lines, "📞 "+f.Phone)
	}
	lines = append(lines, fmt.Sprintf("📍 %.1f km", f.DistanceKM))
	if f.ETAMinutes > 0 {
		lines = append(lines, fmt.Sprintf("⏱️ ~%d min", f.ETAMinutes))
	}
	return strings.Join(lines, "\n")
}
