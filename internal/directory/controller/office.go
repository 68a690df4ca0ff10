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

// OfficeService manages company offices and employee-office
// assignments.
type OfficeService struct {
	repo     *db.Repository
	producer EventProducer
	logger   *zap.Logger
}

func NewOfficeService(repo *db.Repository, producer EventProducer, logger *zap.Logger) *OfficeService {
	return &OfficeService{
		repo:     repo,
		producer: producer,
		logger:   logger.Named("office_service"),
	}
}

// OfficeInput carries the office fields common to create and update.
type OfficeInput struct {
	Name      string
	Address   string
	CountryID uuid.UUID
	RegionID  uuid.UUID
	CityID    uuid.UUID
}

func (s *OfficeService) ownedCompany(ctx context.Context, actor *models.User, companyID uuid.UUID) (*models.Company, error) {
	company, err := s.repo.GetCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if err := authz.RequireOwner(actor, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *OfficeService) companyOffice(ctx context.Context, companyID, officeID uuid.UUID) (*models.Office, error) {
	office, err := s.repo.GetOffice(ctx, officeID)
	if err != nil {
		return nil, err
	}
	if office.CompanyID != companyID {
		return nil, e.ErrNotFound
	}
	return office, nil
}

// validateOffice judges field rules and the location triple together
// so all offending fields are reported at once.
func (s *OfficeService) validateOffice(ctx context.Context, input OfficeInput) error {
	v := e.NewValidation()
	mergeInto(v, validation.OfficeFields(input.Name, input.Address))

	var (
		country *models.Country
		region  *models.Region
		city    *models.City
		err     error
	)
	if input.CountryID != uuid.Nil {
		if country, err = ignoreNotFound(s.repo.GetCountry(ctx, input.CountryID)); err != nil {
			return fmt.Errorf("failed to load country: %w", err)
		}
	}
	if input.RegionID != uuid.Nil {
		if region, err = ignoreNotFound(s.repo.GetRegion(ctx, input.RegionID)); err != nil {
			return fmt.Errorf("failed to load region: %w", err)
		}
	}
	if input.CityID != uuid.Nil {
		if city, err = ignoreNotFound(s.repo.GetCity(ctx, input.CityID)); err != nil {
			return fmt.Errorf("failed to load city: %w", err)
		}
	}
	mergeInto(v, validation.OfficeLocation(input.CountryID, input.RegionID, input.CityID, country, region, city))

	return v.ErrOrNil()
}

// Create opens an office for the company, owner only.
func (s *OfficeService) Create(ctx context.Context, actor *models.User, companyID uuid.UUID, input OfficeInput) (*models.Office, error) {
	if _, err := s.ownedCompany(ctx, actor, companyID); err != nil {
		return nil, err
	}
	if err := s.validateOffice(ctx, input); err != nil {
		return nil, err
	}

	office := &models.Office{
		ID:        uuid.New(),
		CompanyID: companyID,
		Name:      input.Name,
		Address:   input.Address,
		CountryID: &input.CountryID,
		RegionID:  &input.RegionID,
		CityID:    &input.CityID,
	}
	err := s.repo.WithTransaction(ctx, func(tx *db.Repository) error {
		return tx.CreateOffice(ctx, office)
	})
	if err != nil {
		return nil, err
	}

	created, err := s.repo.GetOffice(ctx, office.ID)
	if err != nil {
		return nil, err
	}
	go func() {
		s.producer.Produce(events.OfficeCreated, created.ID, created)
	}()
	return created, nil
}

// List returns the company's offices. Employees may see them too;
// everyone else is rejected.
func (s *OfficeService) List(ctx context.Context, actor *models.User, companyID uuid.UUID) ([]models.Office, error) {
	company, err := s.repo.GetCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	employment, err := ignoreNotFound(s.repo.GetEmployeeByUser(ctx, actor.ID))
	if err != nil {
		return nil, fmt.Errorf("failed to check employment: %w", err)
	}
	if err := authz.RequireOwnerOrEmployee(actor, employment, company); err != nil {
		return nil, err
	}
	return s.repo.ListOffices(ctx, companyID)
}

func (s *OfficeService) Get(ctx context.Context, actor *models.User, companyID, officeID uuid.UUID) (*models.Office, error) {
	if _, err := s.ownedCompany(ctx, actor, companyID); err != nil {
		return nil, err
	}
	return s.companyOffice(ctx, companyID, officeID)
}

// Update replaces the office fields, owner only.
func (s *OfficeService) Update(ctx context.Context, actor *models.User, companyID, officeID uuid.UUID, input OfficeInput) (*models.Office, error) {
	if _, err := s.ownedCompany(ctx, actor, companyID); err != nil {
		return nil, err
	}
	if _, err := s.companyOffice(ctx, companyID, officeID); err != nil {
		return nil, err
	}
	if err := s.validateOffice(ctx, input); err != nil {
		return nil, err
	}

	update := &models.OfficeUpdate{
		ID:        officeID,
		Name:      input.Name,
		Address:   input.Address,
		CountryID: input.CountryID,
		RegionID:  input.RegionID,
		CityID:    input.CityID,
	}
	err := s.repo.WithTransaction(ctx, func(tx *db.Repository) error {
		return tx.UpdateOffice(ctx, update)
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.GetOffice(ctx, officeID)
	if err != nil {
		return nil, err
	}
	go func() {
		s.producer.Produce(events.OfficeUpdated, updated.ID, updated)
	}()
	return updated, nil
}

// Delete closes an office. Employees and vehicles referencing it keep
// their rows; the storage layer nulls the references.
func (s *OfficeService) Delete(ctx context.Context, actor *models.User, companyID, officeID uuid.UUID) error {
	if _, err := s.ownedCompany(ctx, actor, companyID); err != nil {
		return err
	}
	office, err := s.companyOffice(ctx, companyID, officeID)
	if err != nil {
		return err
	}

	err = s.repo.WithTransaction(ctx, func(tx *db.Repository) error {
		return tx.DeleteOffice(ctx, officeID)
	})
	if err != nil {
		return err
	}

	go func() {
		s.producer.Produce(events.OfficeDeleted, office.ID, office)
	}()
	return nil
}

// AssignEmployee places an employee of the same company at the office.
func (s *OfficeService) AssignEmployee(ctx context.Context, actor *models.User, companyID, officeID, employeeID uuid.UUID) (*models.Employee, error) {
	if _, err := s.ownedCompany(ctx, actor, companyID); err != nil {
		return nil, err
	}
	office, err := s.companyOffice(ctx, companyID, officeID)
	if err != nil {
		return nil, err
	}

	employee, err := ignoreNotFound(s.repo.GetEmployee(ctx, employeeID))
	if err != nil {
		return nil, fmt.Errorf("failed to load employee: %w", err)
	}
	if err := validation.OfficeAssignment(office, employee); err != nil {
		return nil, err
	}

	err = s.repo.WithTransaction(ctx, func(tx *db.Repository) error {
		return tx.SetEmployeeOffice(ctx, employee.ID, &office.ID)
	})
	if err != nil {
		return nil, err
	}

	assigned, err := s.repo.GetEmployee(ctx, employee.ID)
	if err != nil {
		return nil, err
	}
	go func() {
		s.producer.Produce(events.EmployeeUpdated, assigned.ID, assigned)
	}()
	return assigned, nil
}

// MyOffice returns the office the calling employee is assigned to.
func (s *OfficeService) MyOffice(ctx context.Context, actor *models.User) (*models.Office, error) {
	employment, err := s.repo.GetEmployeeByUser(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if employment.OfficeID == nil {
		return nil, e.ErrNotFound
	}
	return s.repo.GetOffice(ctx, *employment.OfficeID)
}
