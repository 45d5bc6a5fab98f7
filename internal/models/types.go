package models

import "time"

type Language string

const (
	LanguageUrdu    Language = "urdu"
	LanguageRoman   Language = "roman_urdu"
	LanguageEnglish Language = "english"
	LanguageMixed   Language = "mixed"
)

type Category string

const (
	CategoryMedical  Category = "medical"
	CategoryPolice   Category = "police"
	CategoryDisaster Category = "disaster"
	CategoryGeneral  Category = "general"
)

// CategoryPriority orders the service categories for classification.
// When a message matches keywords from several categories, the first
// category in this list with a match wins.
var CategoryPriority = []Category{CategoryMedical, CategoryPolice, CategoryDisaster}

func ParseCategory(s string) Category {
	switch s {
	case "medical":
		return CategoryMedical
	case "police":
		return CategoryPolice
	case "disaster":
		return CategoryDisaster
	default:
		return CategoryGeneral
	}
}

type Urgency int

const (
	UrgencyCritical      Urgency = 1
	UrgencySerious       Urgency = 2
	UrgencyInformational Urgency = 3
)

type ClassificationResult struct {
	Language   Language `json:"language"`
	Category   Category `json:"category"`
	Subservice string   `json:"subservice"`
	Keywords   []string `json:"keywords"`
	Urgency    Urgency  `json:"urgency"`
	Greeting   bool     `json:"greeting"`
}

type SourceTier string

const (
	TierLive   SourceTier = "live"
	TierLocal  SourceTier = "local"
	TierStatic SourceTier = "static"
)

type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

type FacilityCandidate struct {
	Name        string      `json:"name"`
	Phone       string      `json:"phone,omitempty"`
	Coordinates Coordinates `json:"coordinates"`
	DistanceKM  float64     `json:"distance_km"`
	ETAMinutes  int         `json:"eta_minutes"`
	Rating      float64     `json:"rating,omitempty"`
	SourceTier  SourceTier  `json:"source_tier"`
}

type NetworkQuality string

const (
	NetworkSlow    NetworkQuality = "slow"
	NetworkMedium  NetworkQuality = "medium"
	NetworkFast    NetworkQuality = "fast"
	NetworkUnknown NetworkQuality = "unknown"
)

type DispatchEvent struct {
	ID         string    `json:"id"`
	Category   Category  `json:"category"`
	Subservice string    `json:"subservice"`
	Urgency    Urgency   `json:"urgency"`
	Facility   string    `json:"facility"`
	Latitude   float64   `json:"lat"`
	Longitude  float64   `json:"lon"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
