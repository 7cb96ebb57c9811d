package search

import (
	"github.com/google/uuid"
)

const (
	// minSuggestLen is the input length below which no suggestions are
	// produced and the panel stays hidden.
	minSuggestLen = 2
	// maxSuggestions caps one suggestion response.
	maxSuggestions = 10
)

// SuggestionKind discriminates the three navigation behaviors a chosen
// suggestion triggers.
type SuggestionKind string

const (
	SuggestionSalon    SuggestionKind = "salon"    // navigate to salon detail
	SuggestionCategory SuggestionKind = "category" // navigate home filtered by type slug
	SuggestionService  SuggestionKind = "service"  // navigate home with query, mode forced to service
)

// Suggestion is a transient autocomplete candidate. SalonID is set only
// for salon suggestions, TypeSlug only for category suggestions.
type Suggestion struct {
	Kind     SuggestionKind `json:"kind"`
	Text     string         `json:"text"`
	SalonID  uuid.UUID      `json:"salonId,omitempty"`
	TypeSlug string         `json:"typeSlug,omitempty"`
}

// Suggest produces autocomplete candidates for input under the given tab.
// Exactly one source is searched per call: salons, salon types, or the
// union of global service names and all known per-salon service names.
// Results are deduplicated by display text and capped at 10. Input
// shorter than 2 characters yields nil.
func Suggest(cat *Catalog, input string, tab Mode) []Suggestion {
	if len([]rune(input)) < minSuggestLen {
		return nil
	}
	query := Normalize(input)
	if query == "" {
		return nil
	}

	var out []Suggestion
	seen := make(map[string]bool)
	add := func(s Suggestion) bool {
		if seen[s.Text] {
			return true
		}
		seen[s.Text] = true
		out = append(out, s)
		return len(out) < maxSuggestions
	}

	switch tab {
	case ModeSalon:
		for _, s := range cat.Salons {
			if !containsFold(s.Name, query) {
				continue
			}
			if !add(Suggestion{Kind: SuggestionSalon, Text: s.Name, SalonID: s.ID}) {
				return out
			}
		}
	case ModeType:
		for _, t := range cat.Types {
			if !containsFold(t.Name, query) {
				continue
			}
			if !add(Suggestion{Kind: SuggestionCategory, Text: t.Name, TypeSlug: t.Slug}) {
				return out
			}
		}
	default: // service tab, and the generic fallback
		for _, name := range cat.Services {
			if !containsFold(name, query) {
				continue
			}
			if !add(Suggestion{Kind: SuggestionService, Text: name}) {
				return out
			}
		}
		for _, names := range cat.SalonServices {
			for _, name := range names {
				if !containsFold(name, query) {
					continue
				}
				if !add(Suggestion{Kind: SuggestionService, Text: name}) {
					return out
				}
			}
		}
	}
	return out
}
