package search

import (
	"github.com/google/uuid"
)

// Salon is the display-shaped salon entity the search core operates on.
// It is built once at the catalog boundary from the raw database record
// and never mutated afterwards.
type Salon struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Address  string    `json:"address"`
	City     string    `json:"city"`
	District string    `json:"district"`

	TypeName string `json:"typeName"`
	TypeSlug string `json:"typeSlug"`

	Rating    float64 `json:"rating"`
	Sponsored bool    `json:"sponsored"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	Tags       []string `json:"tags"`
	StartPrice float64  `json:"startPrice"`
	ImageURL   string   `json:"imageUrl"`
}

type SalonType struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Slug    string    `json:"slug"`
	IconURL string    `json:"iconUrl"`
}

type City struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Catalog is the in-memory snapshot the filter and suggestion routines
// run against. Loaded once per page view, discarded and rebuilt on the
// next load.
type Catalog struct {
	Salons   []Salon
	Types    []SalonType
	Services []string // global service names
	Cities   []City

	// SalonServices maps salon id to that salon's free-text service
	// names. A salon whose service fetch failed has an empty entry.
	SalonServices map[uuid.UUID][]string
}

// ServiceNames returns the service names known for a salon, or nil.
func (c *Catalog) ServiceNames(salonID uuid.UUID) []string {
	if c.SalonServices == nil {
		return nil
	}
	return c.SalonServices[salonID]
}
