package services

import (
	"context"
	"errors"
	"testing"

	"salonbul-backend/models"
	"salonbul-backend/search"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	salons   []models.Salon
	types    []models.SalonType
	services []models.GlobalService
	cities   []models.City

	salonServices map[uuid.UUID][]string
	failServices  map[uuid.UUID]bool

	salonsErr error
	citiesErr error
}

func (s *stubSource) Salons(ctx context.Context) ([]models.Salon, error) {
	return s.salons, s.salonsErr
}

func (s *stubSource) SalonTypes(ctx context.Context) ([]models.SalonType, error) {
	return s.types, nil
}

func (s *stubSource) GlobalServices(ctx context.Context) ([]models.GlobalService, error) {
	return s.services, nil
}

func (s *stubSource) Cities(ctx context.Context) ([]models.City, error) {
	return s.cities, s.citiesErr
}

func (s *stubSource) SalonServiceNames(ctx context.Context, salonID uuid.UUID) ([]string, error) {
	if s.failServices[salonID] {
		return nil, errors.New("boom")
	}
	return s.salonServices[salonID], nil
}

func (s *stubSource) CityByName(ctx context.Context, name string) (*models.City, error) {
	for i := range s.cities {
		if s.cities[i].Name == name {
			return &s.cities[i], nil
		}
	}
	return nil, nil
}

func (s *stubSource) Districts(ctx context.Context, cityID uuid.UUID) ([]models.District, error) {
	return []models.District{
		{CityID: cityID, Name: "Kadıköy"},
		{CityID: cityID, Name: "Üsküdar"},
	}, nil
}

func TestLoadMapsDisplayShape(t *testing.T) {
	typeID := uuid.New()
	salonID := uuid.New()
	src := &stubSource{
		salons: []models.Salon{
			{
				ID:           salonID,
				SalonTypeID:  typeID,
				Name:         "Elif Kuaför",
				Address:      "Kadıköy",
				CityName:     "İstanbul",
				DistrictName: "Kadıköy",
				Rating:       4.5,
				Latitude:     40.99,
				Longitude:    29.02,
				ImageURL:     "https://img.example/elif.jpg",
				SalonType:    models.SalonType{ID: typeID, Name: "Kuaför", Slug: "kuafor-salonu"},
			},
		},
		types:         []models.SalonType{{ID: typeID, Name: "Kuaför", Slug: "kuafor-salonu"}},
		services:      []models.GlobalService{{ID: uuid.New(), Name: "Saç Kesimi"}},
		cities:        []models.City{{ID: uuid.New(), Name: "İstanbul"}},
		salonServices: map[uuid.UUID][]string{salonID: {"Saç Kesimi", "Fön"}},
	}

	cat, err := NewCatalogService(src).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, cat.Salons, 1)

	got := cat.Salons[0]
	assert.Equal(t, "Elif Kuaför", got.Name)
	assert.Equal(t, "İstanbul", got.City)
	assert.Equal(t, "Kuaför", got.TypeName)
	assert.Equal(t, "kuafor-salonu", got.TypeSlug)
	assert.Equal(t, []string{"Kuaför"}, got.Tags)
	assert.Equal(t, float64(placeholderStartPrice), got.StartPrice)

	assert.Equal(t, []string{"Saç Kesimi"}, cat.Services)
	assert.Len(t, cat.Types, 1)
	assert.Len(t, cat.Cities, 1)
	assert.Equal(t, []string{"Saç Kesimi", "Fön"}, cat.SalonServices[salonID])
}

func TestLoadDefaultsAbsentFields(t *testing.T) {
	salonID := uuid.New()
	src := &stubSource{
		salons:        []models.Salon{{ID: salonID, Name: "No Coords"}},
		salonServices: map[uuid.UUID][]string{},
	}

	cat, err := NewCatalogService(src).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, cat.Salons, 1)

	// absent rating and coordinates come through as zero, not nil;
	// coordinate validity is the map-center resolver's concern
	assert.Zero(t, cat.Salons[0].Rating)
	assert.Zero(t, cat.Salons[0].Latitude)
	assert.Zero(t, cat.Salons[0].Longitude)
}

func TestLoadReferenceFailurePropagates(t *testing.T) {
	src := &stubSource{citiesErr: errors.New("connection refused")}
	_, err := NewCatalogService(src).Load(context.Background())
	assert.Error(t, err)
}

// One salon's failed service fetch must not abort the others.
func TestLoadIsolatesSalonServiceFailures(t *testing.T) {
	okSalon := uuid.New()
	badSalon := uuid.New()
	src := &stubSource{
		salons: []models.Salon{
			{ID: okSalon, Name: "Fine"},
			{ID: badSalon, Name: "Broken"},
		},
		salonServices: map[uuid.UUID][]string{okSalon: {"Manikür"}},
		failServices:  map[uuid.UUID]bool{badSalon: true},
	}

	cat, err := NewCatalogService(src).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Manikür"}, cat.SalonServices[okSalon])
	assert.Empty(t, cat.SalonServices[badSalon])
	// the failed salon still has an entry, so lookups stay total
	_, present := cat.SalonServices[badSalon]
	assert.True(t, present)
}

func TestDistrictsForCity(t *testing.T) {
	src := &stubSource{cities: []models.City{{ID: uuid.New(), Name: "İstanbul"}}}
	svc := NewCatalogService(src)

	t.Run("sentinel yields empty list", func(t *testing.T) {
		got, err := svc.DistrictsForCity(context.Background(), search.SentinelAll)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("unknown city yields empty list, not an error", func(t *testing.T) {
		got, err := svc.DistrictsForCity(context.Background(), "Atlantis")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("known city yields its district names", func(t *testing.T) {
		got, err := svc.DistrictsForCity(context.Background(), "İstanbul")
		require.NoError(t, err)
		assert.Equal(t, []string{"Kadıköy", "Üsküdar"}, got)
	})
}
