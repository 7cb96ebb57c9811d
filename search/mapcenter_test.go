package search

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapCenterFirstSalonWins(t *testing.T) {
	filtered := []Salon{
		{Latitude: 40.9923, Longitude: 29.0275},
		{Latitude: 39.9334, Longitude: 32.8597},
	}
	got := MapCenter(filtered, "Ankara")
	assert.Equal(t, Coordinate{Lat: 40.9923, Lng: 29.0275}, got)
}

func TestMapCenterFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		filtered []Salon
		city     string
		want     Coordinate
	}{
		{
			name:     "empty list falls back to selected city table entry",
			filtered: nil,
			city:     "Bursa",
			want:     cityCenters["bursa"],
		},
		{
			name:     "zero coordinates skip to city table",
			filtered: []Salon{{Latitude: 0, Longitude: 0}},
			city:     "İzmir",
			want:     cityCenters["izmir"],
		},
		{
			name:     "NaN coordinates skip to city table",
			filtered: []Salon{{Latitude: math.NaN(), Longitude: 29}},
			city:     "Ankara",
			want:     cityCenters["ankara"],
		},
		{
			name:     "infinite coordinates skip to city table",
			filtered: []Salon{{Latitude: math.Inf(1), Longitude: 29}},
			city:     "Ankara",
			want:     cityCenters["ankara"],
		},
		{
			name:     "unknown city falls back to default city",
			filtered: nil,
			city:     "Hakkari",
			want:     cityCenters["istanbul"],
		},
		{
			name:     "sentinel city falls back to default city",
			filtered: nil,
			city:     SentinelAll,
			want:     cityCenters["istanbul"],
		},
		{
			name:     "uppercase ascii city name still resolves",
			filtered: nil,
			city:     "ISTANBUL",
			want:     cityCenters["istanbul"],
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapCenter(tt.filtered, tt.city))
		})
	}
}

// The resolver must never surface a non-finite or partial pair.
func TestMapCenterAlwaysFinite(t *testing.T) {
	cases := [][]Salon{
		nil,
		{},
		{{Latitude: math.NaN(), Longitude: math.NaN()}},
		{{Latitude: math.Inf(-1), Longitude: math.Inf(1)}},
		{{Latitude: 0, Longitude: 0}},
	}
	cities := []string{"", SentinelAll, "Bursa", "Nowhere", "İstanbul"}
	for _, filtered := range cases {
		for _, city := range cities {
			got := MapCenter(filtered, city)
			assert.True(t, got.Valid(), "invalid center for city %q", city)
			assert.False(t, got.Lat == 0 && got.Lng == 0)
		}
	}
}

func TestCoordinateValid(t *testing.T) {
	assert.True(t, Coordinate{Lat: 41, Lng: 29}.Valid())
	assert.True(t, Coordinate{}.Valid()) // zero is finite; absence is handled by the caller
	assert.False(t, Coordinate{Lat: math.NaN(), Lng: 29}.Valid())
	assert.False(t, Coordinate{Lat: 41, Lng: math.Inf(1)}.Valid())
}
