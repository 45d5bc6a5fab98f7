// Package pipeline runs an incoming message through the full triage
// sequence: language detection, classification, urgency scoring,
// facility resolution, dispatch recording and response shaping.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/mwaleedk/go-emergency-dispatch/internal/classify"
	"github.com/mwaleedk/go-emergency-dispatch/internal/dispatch"
	"github.com/mwaleedk/go-emergency-dispatch/internal/models"
	"github.com/mwaleedk/go-emergency-dispatch/internal/resolve"
	"github.com/mwaleedk/go-emergency-dispatch/internal/respond"
)

var ErrEmptyMessage = errors.New("message text is empty")

type Request struct {
	Text     string
	Location models.Coordinates
	Quality  models.NetworkQuality
}

type Result struct {
	Classification models.ClassificationResult `json:"classification"`
	Facilities     []models.FacilityCandidate  `json:"facilities"`
	Reply          respond.Reply               `json:"reply"`
	EventID        string                      `json:"event_id,omitempty"`
}

type Pipeline struct {
	classifier *classify.Classifier
	resolver   *resolve.Resolver
	dispatcher *dispatch.Manager
	radiusKM   float64
}

func New(classifier *classify.Classifier, resolver *resolve.Resolver, dispatcher *dispatch.Manager, radiusKM float64) *Pipeline {
	if radiusKM <= 0 {
		radiusKM = 10
	}
	return &Pipeline{
		classifier: classifier,
		resolver:   resolver,
		dispatcher: dispatcher,
		radiusKM:   radiusKM,
	}
}

// Handle processes one message end to end. Classification and urgency
// scoring are independent reads of the same text and run concurrently.
// A greeting pins the urgency to informational whatever the scorer says.
func (p *Pipeline) Handle(ctx context.Context, req Request) (*Result, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	lang := p.classifier.Lexicon().DetectLanguage(text)

	var (
		outcome   classify.Outcome
		urgency   models.Urgency
		indicator string
		wg        sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		outcome = p.classifier.Classify(text, lang)
	}()
	go func() {
		defer wg.Done()
		urgency, indicator = p.classifier.ScoreUrgency(text, lang)
	}()
	wg.Wait()

	if outcome.Greeting {
		urgency = models.UrgencyInformational
	}

	result := models.ClassificationResult{
		Language:   lang,
		Category:   outcome.Category,
		Subservice: outcome.Subservice,
		Keywords:   outcome.Keywords,
		Urgency:    urgency,
		Greeting:   outcome.Greeting,
	}

	slog.Debug("message classified",
		"language", lang,
		"category", result.Category,
		"subservice", result.Subservice,
		"urgency", int(urgency),
		"indicator", indicator)

	facilities, err := p.resolver.Resolve(ctx, result.Category, req.Location, p.radiusKM)
	if err != nil {
		return nil, err
	}

	reply := respond.Shape(result, facilities, req.Quality)

	res := &Result{
		Classification: result,
		Facilities:     facilities,
		Reply:          reply,
	}

	if p.dispatcher != nil && result.Category != models.CategoryGeneral && len(facilities) > 0 {
		event, err := p.dispatcher.Record(ctx, result, facilities[0], req.Location)
		if err != nil {
			// The caller still gets their facilities and reply; the
			// audit record is what went missing.
			slog.Error("dispatch record failed", "category", result.Category, "error", err)
		} else {
			res.EventID = event.ID
		}
	}

	return res, nil
}
