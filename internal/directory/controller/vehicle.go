package controller

import (
	"context"
	"fmt"

	"github.com/RomanKhudobei/my-company/internal/directory/authz"
	"github.com/RomanKhudobei/my-company/internal/directory/db"
	e "github.com/RomanKhudobei/my-company/internal/directory/errors"
	"github.com/RomanKhudobei/my-company/internal/directory/events"
	"github.com/RomanKhudobei/my-company/internal/directory/models"
	"github.com/RomanKhudobei/my-company/internal/directory/validation"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// VehicleService manages company vehicles and their office/driver
// assignments.
type VehicleService struct {
	repo     *db.Repository
	producer EventProducer
	logger   *zap.Logger
}

func NewVehicleService(repo *db.Repository, producer EventProducer, logger *zap.Logger) *VehicleService {
	return &VehicleService{
		repo:     repo,
		producer: producer,
		logger:   logger.Named("vehicle_service"),
	}
}

// VehicleInput carries the vehicle fields common to create and
// update. YearOfManufacture is a pointer to tell an absent field from
// a zero year.
type VehicleInput struct {
	Name              string
	Model             string
	LicencePlate      string
	YearOfManufacture *int
	OfficeID          *uuid.UUID
	DriverID          *uuid.UUID
}

func (s *VehicleService) ownedCompany(ctx context.Context, actor *models.User, companyID uuid.UUID) (*models.Company, error) {
	company, err := s.repo.GetCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if err := authz.RequireOwner(actor, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *VehicleService) companyVehicle(ctx context.Context, companyID, vehicleID uuid.UUID) (*models.Vehicle, error) {
	vehicle, err := s.repo.GetVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.CompanyID != companyID {
		return nil, e.ErrNotFound
	}
	return vehicle, nil
}

// validateVehicle judges the plain fields and the office/driver
// references together.
func (s *VehicleService) validateVehicle(ctx context.Context, companyID uuid.UUID, input VehicleInput) error {
	v := e.NewValidation()
	mergeInto(v, validation.VehicleFields(input.Name, input.Model, input.LicencePlate, input.YearOfManufacture != nil))

	var (
		office           *models.Office
		driverUser       *models.User
		driverEmployment *models.Employee
		err              error
	)
	if input.OfficeID != nil {
		if office, err = ignoreNotFound(s.repo.GetOffice(ctx, *input.OfficeID)); err != nil {
			return fmt.Errorf("failed to load office: %w", err)
		}
	}
	if input.DriverID != nil {
		if driverUser, err = ignoreNotFound(s.repo.GetUser(ctx, *input.DriverID)); err != nil {
			return fmt.Errorf("failed to load driver: %w", err)
		}
		if driverUser != nil {
			if driverEmployment, err = ignoreNotFound(s.repo.GetEmployeeByUser(ctx, *input.DriverID)); err != nil {
				return fmt.Errorf("failed to load driver employment: %w", err)
			}
		}
	}
	mergeInto(v, validation.VehicleAssignment(companyID, input.OfficeID, input.DriverID, office, driverUser, driverEmployment))

	return v.ErrOrNil()
}

// Create registers a vehicle for the company, owner only.
func (s *VehicleService) Create(ctx context.Context, actor *models.User, companyID uuid.UUID, input VehicleInput) (*models.Vehicle, error) {
	if _, err := s.ownedCompany(ctx, actor, companyID); err != nil {
		return nil, err
	}
	if err := s.validateVehicle(ctx, companyID, input); err != nil {
		return nil, err
	}

	vehicle := &models.Vehicle{
		ID:                uuid.New(),
		CompanyID:         companyID,
		Name:              input.Name,
		Model:             input.Model,
		LicencePlate:      input.LicencePlate,
		YearOfManufacture: *input.YearOfManufacture,
		OfficeID:          input.OfficeID,
		DriverID:          input.DriverID,
	}
	err := s.repo.WithTransaction(ctx, func(tx *db.Repository) error {
		return tx.CreateVehicle(ctx, vehicle)
	})
	if err != nil {
		return nil, err
	}

	created, err := s.repo.GetVehicle(ctx, vehicle.ID)
	if err != nil {
		return nil, err
	}
	go func() {
		s.producer.Produce(events.VehicleCreated, created.ID, created)
	}()
	return created, nil
}

func (s *VehicleService) List(ctx context.Context, actor *models.User, companyID uuid.UUID) ([]models.Vehicle, error) {
	if _, err := s.ownedCompany(ctx, actor, companyID); err != nil {
		return nil, err
	}
	return s.repo.ListVehicles(ctx, companyID)
}

func (s *VehicleService) Get(ctx context.Context, actor *models.User, companyID, vehicleID uuid.UUID) (*models.Vehicle, error) {
	if _, err := s.ownedCompany(ctx, actor, companyID); err != nil {
		return nil, err
	}
	return s.companyVehicle(ctx, companyID, vehicleID)
}

// Update replaces the vehicle fields, owner only. Omitting office_id
// or driver_id clears the assignment.
func (s *VehicleService) Update(ctx context.Context, actor *models.User, companyID, vehicleID uuid.UUID, input VehicleInput) (*models.Vehicle, error) {
	if _, err := s.ownedCompany(ctx, actor, companyID); err != nil {
		return nil, err
	}
	if _, err := s.companyVehicle(ctx, companyID, vehicleID); err != nil {
		return nil, err
	}
	if err := s.validateVehicle(ctx, companyID, input); err != nil {
		return nil, err
	}

	update := &models.VehicleUpdate{
		ID:                vehicleID,
		Name:              input.Name,
		Model:             input.Model,
		LicencePlate:      input.LicencePlate,
		YearOfManufacture: *input.YearOfManufacture,
		OfficeID:          input.OfficeID,
		DriverID:          input.DriverID,
	}
	err := s.repo.WithTransaction(ctx, func(tx *db.Repository) error {
		return tx.UpdateVehicle(ctx, update)
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.GetVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	go func() {
		s.producer.Produce(events.VehicleUpdated, updated.ID, updated)
	}()
	return updated, nil
}

func (s *VehicleService) Delete(ctx context.Context, actor *models.User, companyID, vehicleID uuid.UUID) error {
	if _, err := s.ownedCompany(ctx, actor, companyID); err != nil {
		return err
	}
	vehicle, err := s.companyVehicle(ctx, companyID, vehicleID)
	if err != nil {
		return err
	}

	err = s.repo.WithTransaction(ctx, func(tx *db.Repository) error {
		return tx.DeleteVehicle(ctx, vehicleID)
	})
	if err != nil {
		return err
	}

	go func() {
		s.producer.Produce(events.VehicleDeleted, vehicle.ID, vehicle)
	}()
	return nil
}

// MyVehicles returns the vehicles the calling user currently drives.
func (s *VehicleService) MyVehicles(ctx context.Context, actor *models.User) ([]models.Vehicle, error) {
	return s.repo.ListVehiclesByDriver(ctx, actor.ID)
}
