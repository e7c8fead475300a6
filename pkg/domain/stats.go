package domain

import "time"

// GenerationStats summarizes one daily generation run
type GenerationStats struct {
	HistoricalEvents int       `json:"historical_events"`
	NewsItems        int       `json:"news_items"` // news generation is not implemented, always 0
	Errors           int       `json:"errors"`
	Skipped          bool      `json:"skipped,omitempty"` // another run was in flight
	StartedAt        time.Time `json:"started_at"`
	Duration         string    `json:"duration"`
}

// DashboardStats is the content overview shown to administrators
type DashboardStats struct {
	TotalEvents        int             `json:"total_events"`
	CuratedEvents      int             `json:"curated_events"`
	GeneratedThisMonth int             `json:"generated_this_month"`
	CachedNewsDays     int             `json:"cached_news_days"`
	InFlight           map[string]bool `json:"in_flight"`
}
