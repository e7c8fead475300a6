package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/pdtriglav/alpcontent/pkg/domain"
	"github.com/pdtriglav/alpcontent/pkg/llm"
)

// ErrValidation is returned when llm output or an imported record lacks a required field
var ErrValidation = errors.New("invalid event")

var requiredFields = []string{"year", "title", "description", "location", "people", "category"}

// parseEvent converts an llm payload into an event for the calendar day of date.
// A missing required field is an error, an unknown category becomes achievement.
func parseEvent(p llm.Payload, date time.Time) (domain.HistoricalEvent, error) {
	for _, f := range requiredFields {
		v, ok := p[f]
		if !ok || v == nil {
			return domain.HistoricalEvent{}, fmt.Errorf("%w: missing required field %q", ErrValidation, f)
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" && f != "people" && f != "category" {
			return domain.HistoricalEvent{}, fmt.Errorf("%w: empty required field %q", ErrValidation, f)
		}
	}

	year, err := coerceYear(p["year"])
	if err != nil {
		return domain.HistoricalEvent{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	ev := domain.HistoricalEvent{
		Month:          int(date.Month()),
		Day:            date.Day(),
		Year:           year,
		Title:          p.String("title"),
		Description:    p.String("description"),
		Location:       p.String("location"),
		People:         coercePeople(p["people"]),
		URL:            p.String("url_1"),
		URLSecondary:   p.String("url_2"),
		Category:       coerceCategory(p["category"]),
		Methodology:    p.String("methodology"),
		URLMethodology: p.String("url_methodology"),
	}
	if ev.URL == "" {
		ev.URL = p.String("url")
	}
	if ev.Title == "" {
		return domain.HistoricalEvent{}, fmt.Errorf("%w: title is not a string", ErrValidation)
	}
	return ev, nil
}

// fallbackEvent builds the not generated event from static fallback content for the calendar day of date
func fallbackEvent(p llm.Payload, date time.Time) domain.HistoricalEvent {
	ev, err := parseEvent(p, date)
	if err != nil {
		ev, _ = parseEvent(llm.DefaultFallback(llm.UseCaseHistorical), date)
	}
	ev.IsGenerated = false
	if ev.Methodology == "" {
		ev.Methodology = llm.FallbackMethodology
	}
	return ev
}

// coerceYear accepts json numbers, integers and numeric strings
func coerceYear(v any) (int, error) {
	var year int
	switch y := v.(type) {
	case float64:
		if y != math.Trunc(y) {
			return 0, fmt.Errorf("year %v is not a whole number", y)
		}
		year = int(y)
	case int:
		year = y
	case int64:
		year = int(y)
	case json.Number:
		n, err := y.Int64()
		if err != nil {
			return 0, fmt.Errorf("year %q: %w", y, err)
		}
		year = int(n)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(y))
		if err != nil {
			return 0, fmt.Errorf("year %q is not a number", y)
		}
		year = n
	default:
		return 0, fmt.Errorf("year has unexpected type %T", v)
	}
	if year <= 0 || year > time.Now().Year() {
		return 0, fmt.Errorf("year %d out of range", year)
	}
	return year, nil
}

// coercePeople accepts a list or a comma separated string, anything else is an empty list
func coercePeople(v any) []string {
	res := []string{}
	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			res = append(res, s)
		}
	}
	switch p := v.(type) {
	case []any:
		for _, item := range p {
			if s, ok := item.(string); ok {
				add(s)
			}
		}
	case []string:
		for _, s := range p {
			add(s)
		}
	case string:
		for _, s := range strings.Split(p, ",") {
			add(s)
		}
	}
	return res
}

// coerceCategory maps a value to the category enum, unknown values default to achievement
func coerceCategory(v any) domain.EventCategory {
	s, _ := v.(string)
	if c, ok := domain.ParseCategory(s); ok {
		return c
	}
	log.Printf("[WARN] invalid category %q, defaulting to %s", s, domain.CategoryAchievement)
	return domain.CategoryAchievement
}

// validateCurated checks an imported event has a valid date and a title
func validateCurated(ev domain.HistoricalEvent) error {
	if ev.Title == "" {
		return fmt.Errorf("%w: empty title", ErrValidation)
	}
	if ev.Month < 1 || ev.Month > 12 || ev.Day < 1 {
		return fmt.Errorf("%w: bad date %d-%d", ErrValidation, ev.Month, ev.Day)
	}
	if ev.Day > calendarDay(ev.Month, 1).AddDate(0, 1, -1).Day() {
		return fmt.Errorf("%w: day %d out of range for month %d", ErrValidation, ev.Day, ev.Month)
	}
	if ev.Year <= 0 {
		return fmt.Errorf("%w: bad year %d", ErrValidation, ev.Year)
	}
	if ev.Category != "" {
		if _, ok := domain.ParseCategory(string(ev.Category)); !ok {
			return fmt.Errorf("%w: unknown category %q", ErrValidation, ev.Category)
		}
	}
	return nil
}
