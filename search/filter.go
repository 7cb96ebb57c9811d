package search

import "strings"

// Sentinel values meaning "no filter applied" for a dimension.
const (
	SentinelAll     = "Tümü"
	SentinelAllSlug = "all"
)

// Mode selects how free-text input is interpreted, mirroring the search
// tab the user last touched.
type Mode string

const (
	ModeUnset   Mode = ""
	ModeSalon   Mode = "salon"
	ModeType    Mode = "type"
	ModeService Mode = "service"
)

// ParseMode maps a URL mode token to a Mode; unknown tokens are unset.
func ParseMode(s string) Mode {
	switch Mode(s) {
	case ModeSalon, ModeType, ModeService:
		return Mode(s)
	}
	return ModeUnset
}

// FilterState is the full, immutable input to Filter. Zero values and
// sentinels disable the corresponding dimension.
type FilterState struct {
	Query    string
	City     string
	District string
	TypeSlug string
	Mode     Mode
}

// typeSynonyms bridges ASCII-only URL slugs against accented Turkish
// display names. Keyed by slug token, value is the display-name fragment
// it stands for. Extending this table is a data change, not a code change.
var typeSynonyms = map[string]string{
	"kuafor": "kuaför",
	"sac":    "saç",
}

// Filter returns the ordered subsequence of catalog salons passing every
// applicable predicate of state. Predicates run per salon in a fixed
// order (city, district, type, free text) and short-circuit on the first
// failure; the result set is the same as intersecting the predicates
// independently.
func Filter(cat *Catalog, state FilterState) []Salon {
	city := Normalize(state.City)
	district := Normalize(state.District)
	slug := Normalize(state.TypeSlug)
	query := Normalize(state.Query)

	cityActive := city != "" && city != Normalize(SentinelAll) && city != SentinelAllSlug
	districtActive := district != "" && district != Normalize(SentinelAll) && district != SentinelAllSlug
	typeActive := slug != "" && slug != SentinelAllSlug

	out := make([]Salon, 0, len(cat.Salons))
	for _, s := range cat.Salons {
		if cityActive && !matchesPlace(s.City, s.Address, city) {
			continue
		}
		if districtActive && !matchesPlace(s.District, s.Address, district) {
			continue
		}
		if typeActive && !matchesType(s, slug) {
			continue
		}
		if query != "" && !matchesQuery(s, cat.ServiceNames(s.ID), query, state.Mode) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// matchesPlace implements the two-branch geographic predicate: exact
// normalized name match, or address containment as a fallback for
// inconsistently tagged records. place is already normalized.
func matchesPlace(name, address, place string) bool {
	if Normalize(name) == place {
		return true
	}
	return containsFold(address, place)
}

// matchesType passes on slug equality, type-name containment, or a
// synonym-table hit. slug is already normalized.
func matchesType(s Salon, slug string) bool {
	if Normalize(s.TypeSlug) == slug {
		return true
	}
	typeName := Normalize(s.TypeName)
	if strings.Contains(typeName, slug) {
		return true
	}
	for token, accented := range typeSynonyms {
		if strings.Contains(slug, token) && strings.Contains(typeName, accented) {
			return true
		}
	}
	return false
}

// matchesQuery implements the mode-aware free-text predicate. query is
// already normalized.
func matchesQuery(s Salon, services []string, query string, mode Mode) bool {
	switch mode {
	case ModeSalon:
		return containsFold(s.Name, query)
	case ModeType, ModeService:
		return containsFold(s.TypeName, query) ||
			containsFold(s.Address, query) ||
			anyServiceContains(services, query)
	default:
		return containsFold(s.Name, query) ||
			containsFold(s.TypeName, query) ||
			containsFold(s.Address, query) ||
			anyServiceContains(services, query)
	}
}

func anyServiceContains(services []string, query string) bool {
	for _, name := range services {
		if containsFold(name, query) {
			return true
		}
	}
	return false
}

// ResolveDistrict enforces the district reset invariant: the selection
// survives a city change only if it appears in the freshly loaded
// district list, otherwise it falls back to the sentinel.
func ResolveDistrict(selected string, districts []string) string {
	if selected == "" || selected == SentinelAll {
		return SentinelAll
	}
	want := Normalize(selected)
	for _, d := range districts {
		if Normalize(d) == want {
			return selected
		}
	}
	return SentinelAll
}
