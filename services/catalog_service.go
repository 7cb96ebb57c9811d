// services/catalog_service.go
package services

import (
	"context"
	"errors"
	"log"
	"sync"

	"salonbul-backend/models"
	"salonbul-backend/search"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// placeholderStartPrice stands in until per-salon pricing is aggregated.
const placeholderStartPrice = 150

// CatalogSource abstracts the reads the catalog loader performs.
type CatalogSource interface {
	Salons(ctx context.Context) ([]models.Salon, error)
	SalonTypes(ctx context.Context) ([]models.SalonType, error)
	GlobalServices(ctx context.Context) ([]models.GlobalService, error)
	Cities(ctx context.Context) ([]models.City, error)
	SalonServiceNames(ctx context.Context, salonID uuid.UUID) ([]string, error)
	CityByName(ctx context.Context, name string) (*models.City, error)
	Districts(ctx context.Context, cityID uuid.UUID) ([]models.District, error)
}

// GormCatalogSource reads the catalog from Postgres.
type GormCatalogSource struct {
	db *gorm.DB
}

func NewGormCatalogSource(db *gorm.DB) *GormCatalogSource {
	return &GormCatalogSource{db: db}
}

func (s *GormCatalogSource) Salons(ctx context.Context) ([]models.Salon, error) {
	var salons []models.Salon
	err := s.db.WithContext(ctx).Preload("SalonType").Find(&salons).Error
	return salons, err
}

func (s *GormCatalogSource) SalonTypes(ctx context.Context) ([]models.SalonType, error) {
	var types []models.SalonType
	err := s.db.WithContext(ctx).Find(&types).Error
	return types, err
}

func (s *GormCatalogSource) GlobalServices(ctx context.Context) ([]models.GlobalService, error) {
	var services []models.GlobalService
	err := s.db.WithContext(ctx).Find(&services).Error
	return services, err
}

func (s *GormCatalogSource) Cities(ctx context.Context) ([]models.City, error) {
	var cities []models.City
	err := s.db.WithContext(ctx).Find(&cities).Error
	return cities, err
}

func (s *GormCatalogSource) SalonServiceNames(ctx context.Context, salonID uuid.UUID) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).Model(&models.SalonService{}).
		Where("salon_id = ?", salonID).
		Pluck("name", &names).Error
	return names, err
}

func (s *GormCatalogSource) CityByName(ctx context.Context, name string) (*models.City, error) {
	var city models.City
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&city).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &city, nil
}

func (s *GormCatalogSource) Districts(ctx context.Context, cityID uuid.UUID) ([]models.District, error) {
	var districts []models.District
	err := s.db.WithContext(ctx).Where("city_id = ?", cityID).Find(&districts).Error
	return districts, err
}

// CatalogService assembles the in-memory search catalog.
type CatalogService struct {
	src CatalogSource
}

func NewCatalogService(src CatalogSource) *CatalogService {
	return &CatalogService{src: src}
}

// Load fetches the four reference collections concurrently and maps raw
// records into display-shaped entities. A failure in any reference fetch
// fails the load; per-salon service fetches that follow are individually
// fault-isolated.
func (s *CatalogService) Load(ctx context.Context) (*search.Catalog, error) {
	var (
		rawSalons   []models.Salon
		rawTypes    []models.SalonType
		rawServices []models.GlobalService
		rawCities   []models.City
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		rawSalons, err = s.src.Salons(gctx)
		return
	})
	g.Go(func() (err error) {
		rawTypes, err = s.src.SalonTypes(gctx)
		return
	})
	g.Go(func() (err error) {
		rawServices, err = s.src.GlobalServices(gctx)
		return
	})
	g.Go(func() (err error) {
		rawCities, err = s.src.Cities(gctx)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cat := &search.Catalog{
		Salons:        make([]search.Salon, 0, len(rawSalons)),
		Types:         make([]search.SalonType, 0, len(rawTypes)),
		Services:      make([]string, 0, len(rawServices)),
		Cities:        make([]search.City, 0, len(rawCities)),
		SalonServices: make(map[uuid.UUID][]string, len(rawSalons)),
	}
	for _, m := range rawSalons {
		cat.Salons = append(cat.Salons, displaySalon(m))
	}
	for _, m := range rawTypes {
		cat.Types = append(cat.Types, search.SalonType{
			ID:      m.ID,
			Name:    m.Name,
			Slug:    m.Slug,
			IconURL: m.IconURL,
		})
	}
	for _, m := range rawServices {
		cat.Services = append(cat.Services, m.Name)
	}
	for _, m := range rawCities {
		cat.Cities = append(cat.Cities, search.City{ID: m.ID, Name: m.Name})
	}

	s.loadSalonServices(ctx, cat)
	return cat, nil
}

// loadSalonServices fetches every salon's service names concurrently.
// One salon's failure is logged and leaves that salon with an empty
// list; it never aborts the others.
func (s *CatalogService) loadSalonServices(ctx context.Context, cat *search.Catalog) {
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, salon := range cat.Salons {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			names, err := s.src.SalonServiceNames(ctx, id)
			if err != nil {
				log.Printf("catalog: failed to load services for salon %s: %v", id, err)
				names = nil
			}
			mu.Lock()
			cat.SalonServices[id] = names
			mu.Unlock()
		}(salon.ID)
	}
	wg.Wait()
}

// DistrictsForCity resolves the city by display name and returns its
// district names. The sentinel and unknown city names both yield an
// empty list, not an error.
func (s *CatalogService) DistrictsForCity(ctx context.Context, cityName string) ([]string, error) {
	if cityName == "" || cityName == search.SentinelAll {
		return nil, nil
	}
	city, err := s.src.CityByName(ctx, cityName)
	if err != nil {
		return nil, err
	}
	if city == nil {
		return nil, nil
	}
	districts, err := s.src.Districts(ctx, city.ID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(districts))
	for _, d := range districts {
		names = append(names, d.Name)
	}
	return names, nil
}

// displaySalon builds the display-shaped entity the search core uses.
// Absent rating and coordinates default to zero; coordinate validity is
// re-checked by the map-center resolver, never assumed here.
func displaySalon(m models.Salon) search.Salon {
	return search.Salon{
		ID:         m.ID,
		Name:       m.Name,
		Address:    m.Address,
		City:       m.CityName,
		District:   m.DistrictName,
		TypeName:   m.SalonType.Name,
		TypeSlug:   m.SalonType.Slug,
		Rating:     m.Rating,
		Sponsored:  m.Sponsored,
		Latitude:   m.Latitude,
		Longitude:  m.Longitude,
		Tags:       []string{m.SalonType.Name},
		StartPrice: placeholderStartPrice,
		ImageURL:   m.ImageURL,
	}
}
