package domain

import (
	"fmt"
	"strings"
	"time"
)

// EventCategory is the closed set of historical event categories
type EventCategory string

const (
	CategoryFirstAscent EventCategory = "first_ascent"
	CategoryTragedy     EventCategory = "tragedy"
	CategoryDiscovery   EventCategory = "discovery"
	CategoryAchievement EventCategory = "achievement"
	CategoryExpedition  EventCategory = "expedition"
)

// FallbackMethodology marks records built from static fallback content
const FallbackMethodology = "Fallback content used due to LLM service unavailability"

// Categories lists all valid categories
var Categories = []EventCategory{CategoryFirstAscent, CategoryTragedy, CategoryDiscovery, CategoryAchievement, CategoryExpedition}

// ParseCategory converts s into a category, ok is false for unknown values
func ParseCategory(s string) (EventCategory, bool) {
	c := EventCategory(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range Categories {
		if v == c {
			return c, true
		}
	}
	return "", false
}

// HistoricalEvent is a dated mountaineering event, one per (month, day, year)
type HistoricalEvent struct {
	ID             int64         `json:"id"`
	Month          int           `json:"month"`
	Day            int           `json:"day"`
	Year           int           `json:"year"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Location       string        `json:"location"`
	People         []string      `json:"people"`
	URL            string        `json:"url,omitempty"`
	URLSecondary   string        `json:"url_secondary,omitempty"`
	Category       EventCategory `json:"category"`
	Methodology    string        `json:"methodology,omitempty"`
	URLMethodology string        `json:"url_methodology,omitempty"`
	IsGenerated    bool          `json:"is_generated"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// DateLabel renders the event day as "29 May"
func (e HistoricalEvent) DateLabel() string {
	return fmt.Sprintf("%d %s", e.Day, time.Month(e.Month).String())
}

// FullDate renders the event day with the year, i.e. "29 May 1953"
func (e HistoricalEvent) FullDate() string {
	return fmt.Sprintf("%s %d", e.DateLabel(), e.Year)
}
