package controller

import (
	"context"

	"github.com/RomanKhudobei/my-company/internal/directory/db"
	e "github.com/RomanKhudobei/my-company/internal/directory/errors"
	"github.com/RomanKhudobei/my-company/internal/directory/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LocationService reads the seeded country/region/city hierarchy.
type LocationService struct {
	repo   *db.Repository
	logger *zap.Logger
}

func NewLocationService(repo *db.Repository, logger *zap.Logger) *LocationService {
	return &LocationService{
		repo:   repo,
		logger: logger.Named("location_service"),
	}
}

func (s *LocationService) Countries(ctx context.Context) ([]models.Country, error) {
	return s.repo.ListCountries(ctx)
}

func (s *LocationService) Regions(ctx context.Context, countryID uuid.UUID) ([]models.Region, error) {
	country, err := s.repo.GetCountry(ctx, countryID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListRegions(ctx, country.ID)
}

func (s *LocationService) Cities(ctx context.Context, countryID, regionID uuid.UUID) ([]models.City, error) {
	if _, err := s.repo.GetCountry(ctx, countryID); err != nil {
		return nil, err
	}
	region, err := s.repo.GetRegion(ctx, regionID)
	if err != nil {
		return nil, err
	}
	// A region fetched through the wrong country's path does not
	// exist as far as the caller is concerned.
	if region.CountryID != countryID {
		return nil, e.ErrNotFound
	}
	return s.repo.ListCities(ctx, region.ID)
}
