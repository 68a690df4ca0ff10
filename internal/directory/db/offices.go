package db

import (
	"context"

	e "github.com/RomanKhudobei/my-company/internal/directory/errors"
	"github.com/RomanKhudobei/my-company/internal/directory/models"
	"github.com/google/uuid"
)

func (r *Repository) CreateOffice(ctx context.Context, office *models.Office) error {
	return r.db.WithContext(ctx).Create(office).Error
}

func (r *Repository) GetOffice(ctx context.Context, id uuid.UUID) (*models.Office, error) {
	var office models.Office
	result := r.db.WithContext(ctx).
		Preload("Country").
		Preload("Region").
		Preload("City").
		First(&office, "id = ?", id)
	if result.Error != nil {
		return nil, notFoundAs(result.Error)
	}
	return &office, nil
}

func (r *Repository) ListOffices(ctx context.Context, companyID uuid.UUID) ([]models.Office, error) {
	var offices []models.Office
	err := r.db.WithContext(ctx).
		Preload("Country").
		Preload("Region").
		Preload("City").
		Where("company_id = ?", companyID).
		Find(&offices).Error
	if err != nil {
		return nil, err
	}
	return offices, nil
}

// UpdateOffice replaces the mutable office fields. Full-replace PUT
// semantics, so a plain column map is used instead of a sparse struct.
func (r *Repository) UpdateOffice(ctx context.Context, update *models.OfficeUpdate) error {
	result := r.db.WithContext(ctx).Model(&models.Office{}).
		Where("id = ?", update.ID).
		Updates(map[string]interface{}{
			"name":       update.Name,
			"address":    update.Address,
			"country_id": update.CountryID,
			"region_id":  update.RegionID,
			"city_id":    update.CityID,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

func (r *Repository) DeleteOffice(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Office{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}
