package search

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	salonElif   = uuid.New()
	salonDerya  = uuid.New()
	salonBursa  = uuid.New()
	salonBerber = uuid.New()
)

func testCatalog() *Catalog {
	return &Catalog{
		Salons: []Salon{
			{
				ID:       salonElif,
				Name:     "Elif Kuaför",
				Address:  "Kadıköy",
				City:     "İstanbul",
				District: "Kadıköy",
				TypeName: "Kuaför",
				TypeSlug: "kuafor-salonu",
			},
			{
				ID:       salonDerya,
				Name:     "Derya Güzellik",
				Address:  "Bağdat Caddesi, İstanbul",
				City:     "", // untagged, city only in address
				District: "Maltepe",
				TypeName: "Güzellik Salonu",
				TypeSlug: "guzellik-salonu",
			},
			{
				ID:       salonBursa,
				Name:     "Nil Salon",
				Address:  "Nilüfer",
				City:     "Bursa",
				District: "Nilüfer",
				TypeName: "Güzellik Salonu",
				TypeSlug: "guzellik-salonu",
			},
			{
				ID:       salonBerber,
				Name:     "Usta Berber",
				Address:  "Çankaya",
				City:     "Ankara",
				District: "Çankaya",
				TypeName: "Berber",
				TypeSlug: "berber",
			},
		},
		Types: []SalonType{
			{ID: uuid.New(), Name: "Kuaför", Slug: "kuafor-salonu"},
			{ID: uuid.New(), Name: "Güzellik Salonu", Slug: "guzellik-salonu"},
			{ID: uuid.New(), Name: "Berber", Slug: "berber"},
		},
		Services: []string{"Saç Kesimi", "Manikür", "Cilt Bakımı"},
		SalonServices: map[uuid.UUID][]string{
			salonElif:   {"Saç Kesimi", "Fön"},
			salonDerya:  {"Cilt Bakımı", "Manikür"},
			salonBursa:  {"Manikür"},
			salonBerber: {"Sakal Tıraşı"},
		},
	}
}

func resultIDs(salons []Salon) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(salons))
	for _, s := range salons {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestFilterNoState(t *testing.T) {
	cat := testCatalog()
	got := Filter(cat, FilterState{City: SentinelAll, District: SentinelAll})
	assert.Len(t, got, len(cat.Salons))
}

func TestFilterCity(t *testing.T) {
	cat := testCatalog()

	got := Filter(cat, FilterState{City: "İstanbul", District: SentinelAll})
	require.Len(t, got, 2)
	assert.Contains(t, resultIDs(got), salonElif)
	// city is empty on the record but present in the address
	assert.Contains(t, resultIDs(got), salonDerya)
}

func TestFilterDistrict(t *testing.T) {
	cat := testCatalog()

	got := Filter(cat, FilterState{City: "İstanbul", District: "Kadıköy"})
	require.Len(t, got, 1)
	assert.Equal(t, salonElif, got[0].ID)
}

func TestFilterTypeSlug(t *testing.T) {
	cat := testCatalog()

	tests := []struct {
		name string
		slug string
		want []uuid.UUID
	}{
		{
			name: "exact slug match",
			slug: "guzellik-salonu",
			want: []uuid.UUID{salonDerya, salonBursa},
		},
		{
			name: "literal all disables the predicate",
			slug: "all",
			want: []uuid.UUID{salonElif, salonDerya, salonBursa, salonBerber},
		},
		{
			name: "ascii kuafor slug reaches accented type name via synonym",
			slug: "kuafor",
			want: []uuid.UUID{salonElif},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(cat, FilterState{City: SentinelAll, District: SentinelAll, TypeSlug: tt.slug})
			assert.ElementsMatch(t, tt.want, resultIDs(got))
		})
	}
}

func TestFilterFreeTextModes(t *testing.T) {
	cat := testCatalog()

	tests := []struct {
		name  string
		query string
		mode  Mode
		want  []uuid.UUID
	}{
		{
			name:  "salon mode matches names only",
			query: "elif",
			mode:  ModeSalon,
			want:  []uuid.UUID{salonElif},
		},
		{
			name:  "salon mode ignores addresses",
			query: "kadıköy",
			mode:  ModeSalon,
			want:  nil,
		},
		{
			name:  "service mode reaches per-salon service names",
			query: "saç kesimi",
			mode:  ModeService,
			want:  []uuid.UUID{salonElif},
		},
		{
			name:  "type mode matches type names",
			query: "güzellik",
			mode:  ModeType,
			want:  []uuid.UUID{salonDerya, salonBursa},
		},
		{
			name:  "unset mode searches everything",
			query: "nil",
			mode:  ModeUnset,
			want:  []uuid.UUID{salonBursa},
		},
		{
			name:  "query is locale folded",
			query: "SAÇ KESİMİ",
			mode:  ModeService,
			want:  []uuid.UUID{salonElif},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(cat, FilterState{
				City:     SentinelAll,
				District: SentinelAll,
				Query:    tt.query,
				Mode:     tt.mode,
			})
			assert.ElementsMatch(t, tt.want, resultIDs(got))
		})
	}
}

// Relaxing any single predicate to its sentinel must never remove a
// salon that already passed.
func TestFilterMonotonicity(t *testing.T) {
	cat := testCatalog()
	state := FilterState{
		City:     "İstanbul",
		District: "Kadıköy",
		TypeSlug: "kuafor-salonu",
		Query:    "elif",
		Mode:     ModeSalon,
	}
	strict := resultIDs(Filter(cat, state))

	relaxations := []FilterState{
		{City: SentinelAll, District: state.District, TypeSlug: state.TypeSlug, Query: state.Query, Mode: state.Mode},
		{City: state.City, District: SentinelAll, TypeSlug: state.TypeSlug, Query: state.Query, Mode: state.Mode},
		{City: state.City, District: state.District, TypeSlug: "", Query: state.Query, Mode: state.Mode},
		{City: state.City, District: state.District, TypeSlug: state.TypeSlug, Query: "", Mode: state.Mode},
	}
	for _, relaxed := range relaxations {
		got := resultIDs(Filter(cat, relaxed))
		for _, id := range strict {
			assert.Contains(t, got, id, "relaxed state %+v dropped a passing salon", relaxed)
		}
	}
}

// The fixed evaluation order is a performance choice; the result set
// must equal the intersection of the predicates applied independently.
func TestFilterEqualsIndependentIntersection(t *testing.T) {
	cat := testCatalog()
	state := FilterState{City: "İstanbul", District: "Kadıköy", TypeSlug: "kuafor", Query: "saç", Mode: ModeService}

	combined := resultIDs(Filter(cat, state))

	intersection := map[uuid.UUID]int{}
	singles := []FilterState{
		{City: state.City, District: SentinelAll},
		{City: SentinelAll, District: state.District},
		{City: SentinelAll, District: SentinelAll, TypeSlug: state.TypeSlug},
		{City: SentinelAll, District: SentinelAll, Query: state.Query, Mode: state.Mode},
	}
	for _, s := range singles {
		for _, id := range resultIDs(Filter(cat, s)) {
			intersection[id]++
		}
	}
	var want []uuid.UUID
	for id, n := range intersection {
		if n == len(singles) {
			want = append(want, id)
		}
	}
	assert.ElementsMatch(t, want, combined)
}

func TestResolveDistrict(t *testing.T) {
	districts := []string{"Kadıköy", "Maltepe", "Üsküdar"}

	tests := []struct {
		name     string
		selected string
		list     []string
		want     string
	}{
		{
			name:     "member survives",
			selected: "Kadıköy",
			list:     districts,
			want:     "Kadıköy",
		},
		{
			name:     "case folded member survives",
			selected: "KADIKÖY",
			list:     districts,
			want:     "KADIKÖY",
		},
		{
			name:     "stale district resets to sentinel",
			selected: "Nilüfer",
			list:     districts,
			want:     SentinelAll,
		},
		{
			name:     "sentinel passes through",
			selected: SentinelAll,
			list:     districts,
			want:     SentinelAll,
		},
		{
			name:     "empty list resets selection",
			selected: "Kadıköy",
			list:     nil,
			want:     SentinelAll,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveDistrict(tt.selected, tt.list))
		})
	}
}
