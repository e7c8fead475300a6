package llm

import "github.com/pdtriglav/alpcontent/pkg/domain"

// FallbackMethodology marks records built from static fallback content
const FallbackMethodology = domain.FallbackMethodology

// DefaultFallback returns the deterministic payload served when no provider could answer.
// The historical payload has every field required for an event record.
func DefaultFallback(useCase UseCase) Payload {
	switch useCase {
	case UseCaseNews:
		return Payload{
			"title":    "Mountaineering News Unavailable",
			"summary":  "Current mountaineering news could not be generated. Please check back later.",
			"articles": []any{},
		}
	default:
		return Payload{
			"year":  1953,
			"title": "First Ascent of Mount Everest",
			"description": "On 29 May 1953 Edmund Hillary and Tenzing Norgay became the first climbers confirmed " +
				"to reach the summit of Mount Everest, the highest mountain on Earth, as members of the ninth " +
				"British expedition led by John Hunt. They reached the top at 11:30 via the South Col route.",
			"location":    "Mount Everest, Nepal-Tibet border",
			"people":      []any{"Edmund Hillary", "Tenzing Norgay"},
			"url_1":       "https://en.wikipedia.org/wiki/1953_British_Mount_Everest_expedition",
			"category":    "first_ascent",
			"methodology": FallbackMethodology,
		}
	}
}
