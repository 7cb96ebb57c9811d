package search

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestShortInput(t *testing.T) {
	cat := testCatalog()
	for _, tab := range []Mode{ModeSalon, ModeType, ModeService, ModeUnset} {
		assert.Nil(t, Suggest(cat, "", tab))
		assert.Nil(t, Suggest(cat, "a", tab))
		// a single multi-byte rune is still one character
		assert.Nil(t, Suggest(cat, "ş", tab))
	}
}

func TestSuggestSalonTab(t *testing.T) {
	cat := testCatalog()

	got := Suggest(cat, "elif", ModeSalon)
	require.Len(t, got, 1)
	assert.Equal(t, SuggestionSalon, got[0].Kind)
	assert.Equal(t, "Elif Kuaför", got[0].Text)
	assert.Equal(t, salonElif, got[0].SalonID)
	assert.Empty(t, got[0].TypeSlug)
}

func TestSuggestTypeTab(t *testing.T) {
	cat := testCatalog()

	got := Suggest(cat, "güzel", ModeType)
	require.Len(t, got, 1)
	assert.Equal(t, SuggestionCategory, got[0].Kind)
	assert.Equal(t, "Güzellik Salonu", got[0].Text)
	assert.Equal(t, "guzellik-salonu", got[0].TypeSlug)
	assert.Equal(t, uuid.Nil, got[0].SalonID)
}

func TestSuggestServiceTab(t *testing.T) {
	cat := testCatalog()

	// "Manikür" exists as a global service and in two salons' lists;
	// it must appear exactly once.
	got := Suggest(cat, "manikür", ModeService)
	require.Len(t, got, 1)
	assert.Equal(t, SuggestionService, got[0].Kind)
	assert.Equal(t, "Manikür", got[0].Text)

	// "Fön" only exists as a per-salon service name.
	got = Suggest(cat, "fön", ModeService)
	require.Len(t, got, 1)
	assert.Equal(t, "Fön", got[0].Text)
}

func TestSuggestCapAndDedupe(t *testing.T) {
	cat := &Catalog{SalonServices: map[uuid.UUID][]string{}}
	for i := 0; i < 30; i++ {
		cat.Services = append(cat.Services, fmt.Sprintf("Bakım %d", i))
	}
	// duplicates of every global name via a salon's list
	cat.SalonServices[uuid.New()] = cat.Services

	got := Suggest(cat, "bakım", ModeService)
	assert.Len(t, got, maxSuggestions)

	seen := map[string]bool{}
	for _, s := range got {
		assert.False(t, seen[s.Text], "duplicate suggestion %q", s.Text)
		seen[s.Text] = true
	}
}

func TestSuggestLocaleFolding(t *testing.T) {
	cat := testCatalog()

	// dotted capital İ in the input must reach "Cilt Bakımı"
	got := Suggest(cat, "CİLT", ModeService)
	require.Len(t, got, 1)
	assert.Equal(t, "Cilt Bakımı", got[0].Text)
}
