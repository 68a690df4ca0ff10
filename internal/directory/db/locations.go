package db

import (
	"context"

	"github.com/RomanKhudobei/my-company/internal/directory/models"
	"github.com/google/uuid"
)

// Location reads. The hierarchy is reference data: writes happen only
// through the seed tool.

func (r *Repository) ListCountries(ctx context.Context) ([]models.Country, error) {
	var countries []models.Country
	if err := r.db.WithContext(ctx).Order("name").Find(&countries).Error; err != nil {
		return nil, err
	}
	return countries, nil
}

func (r *Repository) GetCountry(ctx context.Context, id uuid.UUID) (*models.Country, error) {
	var country models.Country
	result := r.db.WithContext(ctx).First(&country, "id = ?", id)
	if result.Error != nil {
		return nil, notFoundAs(result.Error)
	}
	return &country, nil
}

func (r *Repository) ListRegions(ctx context.Context, countryID uuid.UUID) ([]models.Region, error) {
	var regions []models.Region
	err := r.db.WithContext(ctx).
		Where("country_id = ?", countryID).
		Order("name").
		Find(&regions).Error
	if err != nil {
		return nil, err
	}
	return regions, nil
}

func (r *Repository) GetRegion(ctx context.Context, id uuid.UUID) (*models.Region, error) {
	var region models.Region
	result := r.db.WithContext(ctx).First(&region, "id = ?", id)
	if result.Error != nil {
		return nil, notFoundAs(result.Error)
	}
	return &region, nil
}

func (r *Repository) ListCities(ctx context.Context, regionID uuid.UUID) ([]models.City, error) {
	var cities []models.City
	err := r.db.WithContext(ctx).
		Where("region_id = ?", regionID).
		Order("name").
		Find(&cities).Error
	if err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *Repository) GetCity(ctx context.Context, id uuid.UUID) (*models.City, error) {
	var city models.City
	result := r.db.WithContext(ctx).First(&city, "id = ?", id)
	if result.Error != nil {
		return nil, notFoundAs(result.Error)
	}
	return &city, nil
}

// Seed helpers.

func (r *Repository) CountCountries(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Country{}).Count(&count).Error
	return count, err
}

func (r *Repository) CreateCountry(ctx context.Context, country *models.Country) error {
	return r.db.WithContext(ctx).Create(country).Error
}

func (r *Repository) CreateRegion(ctx context.Context, region *models.Region) error {
	return r.db.WithContext(ctx).Create(region).Error
}

func (r *Repository) CreateCity(ctx context.Context, city *models.City) error {
	return r.db.WithContext(ctx).Create(city).Error
}
