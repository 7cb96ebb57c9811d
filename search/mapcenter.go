package search

import "math"

// Coordinate is a latitude/longitude pair. MapCenter only ever returns
// finite, fully populated pairs.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether both components are finite and non-NaN.
func (c Coordinate) Valid() bool {
	return !math.IsNaN(c.Lat) && !math.IsInf(c.Lat, 0) &&
		!math.IsNaN(c.Lng) && !math.IsInf(c.Lng, 0)
}

// cityCenters maps normalized major-city names to their centers.
var cityCenters = map[string]Coordinate{
	"istanbul":  {Lat: 41.0082, Lng: 28.9784},
	"ankara":    {Lat: 39.9334, Lng: 32.8597},
	"izmir":     {Lat: 38.4237, Lng: 27.1428},
	"bursa":     {Lat: 40.1885, Lng: 29.0610},
	"antalya":   {Lat: 36.8969, Lng: 30.7133},
	"adana":     {Lat: 37.0000, Lng: 35.3213},
	"konya":     {Lat: 37.8746, Lng: 32.4932},
	"gaziantep": {Lat: 37.0662, Lng: 37.3833},
	"kayseri":   {Lat: 38.7312, Lng: 35.4787},
	"eskişehir": {Lat: 39.7767, Lng: 30.5206},
}

const defaultCenterCity = "İstanbul"

// fallbackCenter is the last-resort coordinate when even the default
// city is missing from the table.
var fallbackCenter = Coordinate{Lat: 41.0082, Lng: 28.9784}

// MapCenter derives the best-guess map center: the first filtered
// salon's coordinates if valid and non-zero, else the selected city's
// table entry, else the default city's entry, else the hard fallback.
func MapCenter(filtered []Salon, city string) Coordinate {
	if len(filtered) > 0 {
		c := Coordinate{Lat: filtered[0].Latitude, Lng: filtered[0].Longitude}
		if c.Valid() && !(c.Lat == 0 && c.Lng == 0) {
			return c
		}
	}
	if city != "" && city != SentinelAll {
		if c, ok := cityCenters[normalizeCityKey(city)]; ok && c.Valid() {
			return c
		}
	}
	if c, ok := cityCenters[normalizeCityKey(defaultCenterCity)]; ok && c.Valid() {
		return c
	}
	return fallbackCenter
}

// normalizeCityKey folds a city name to its table key. The table is
// keyed without Turkish dotless ı for "istanbul"/"izmir" style lookups,
// so fold those after the locale-aware pass.
func normalizeCityKey(city string) string {
	key := Normalize(city)
	return foldDotless(key)
}

func foldDotless(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == 'ı' {
			r = 'i'
		}
		out = append(out, r)
	}
	return string(out)
}
