package db

import (
	"context"

	e "github.com/RomanKhudobei/my-company/internal/directory/errors"
	"github.com/RomanKhudobei/my-company/internal/directory/models"
	"github.com/google/uuid"
)

func (r *Repository) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	return r.db.WithContext(ctx).Create(vehicle).Error
}

func (r *Repository) GetVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	result := r.db.WithContext(ctx).
		Preload("Office").
		Preload("Office.Country").
		Preload("Office.Region").
		Preload("Office.City").
		Preload("Driver").
		First(&vehicle, "id = ?", id)
	if result.Error != nil {
		return nil, notFoundAs(result.Error)
	}
	return &vehicle, nil
}

func (r *Repository) ListVehicles(ctx context.Context, companyID uuid.UUID) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	err := r.db.WithContext(ctx).
		Preload("Office").
		Preload("Driver").
		Where("company_id = ?", companyID).
		Find(&vehicles).Error
	if err != nil {
		return nil, err
	}
	return vehicles, nil
}

// ListVehiclesByDriver returns the vehicles currently assigned to a
// driving user, across all fields of the company they work for.
func (r *Repository) ListVehiclesByDriver(ctx context.Context, driverID uuid.UUID) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	err := r.db.WithContext(ctx).
		Preload("Office").
		Where("driver_id = ?", driverID).
		Find(&vehicles).Error
	if err != nil {
		return nil, err
	}
	return vehicles, nil
}

// UpdateVehicle replaces the mutable vehicle fields (full-replace PUT
// semantics; nil office/driver clears the assignment).
func (r *Repository) UpdateVehicle(ctx context.Context, update *models.VehicleUpdate) error {
	result := r.db.WithContext(ctx).Model(&models.Vehicle{}).
		Where("id = ?", update.ID).
		Updates(map[string]interface{}{
			"name":                update.Name,
			"model":               update.Model,
			"licence_plate":       update.LicencePlate,
			"year_of_manufacture": update.YearOfManufacture,
			"office_id":           update.OfficeID,
			"driver_id":           update.DriverID,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

// ClearVehicleDriver removes a user from the driver seat of every
// vehicle of a company. Called when an employee is fired so no vehicle
// keeps a driver who is no longer an employee.
func (r *Repository) ClearVehicleDriver(ctx context.Context, companyID, driverID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&models.Vehicle{}).
		Where("company_id = ? AND driver_id = ?", companyID, driverID).
		Update("driver_id", nil).Error
}

func (r *Repository) DeleteVehicle(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Vehicle{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}
