package controller

import (
	"context"
	"fmt"

	"github.com/RomanKhudobei/my-company/internal/directory/auth"
	"github.com/RomanKhudobei/my-company/internal/directory/authz"
	"github.com/RomanKhudobei/my-company/internal/directory/db"
	e "github.com/RomanKhudobei/my-company/internal/directory/errors"
	"github.com/RomanKhudobei/my-company/internal/directory/events"
	"github.com/RomanKhudobei/my-company/internal/directory/models"
	"github.com/RomanKhudobei/my-company/internal/directory/validation"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EmployeeService manages the employment records of a company. Every
// operation is gated on the company owner.
type EmployeeService struct {
	repo     *db.Repository
	producer EventProducer
	logger   *zap.Logger
}

func NewEmployeeService(repo *db.Repository, producer EventProducer, logger *zap.Logger) *EmployeeService {
	return &EmployeeService{
		repo:     repo,
		producer: producer,
		logger:   logger.Named("employee_service"),
	}
}

// ownedCompany loads the path company (404 when missing) and verifies
// the actor owns it (403 otherwise).
func (s *EmployeeService) ownedCompany(ctx context.Context, actor *models.User, companyID uuid.UUID) (*models.Company, error) {
	company, err := s.repo.GetCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if err := authz.RequireOwner(actor, company); err != nil {
		return nil, err
	}
	return company, nil
}

// companyEmployee loads an employee scoped to the company. An employee
// of another company is indistinguishable from a missing one.
func (s *EmployeeService) companyEmployee(ctx context.Context, companyID, employeeID uuid.UUID) (*models.Employee, error) {
	employee, err := s.repo.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee.CompanyID != companyID {
		return nil, e.ErrNotFound
	}
	return employee, nil
}

// Create hires a user into the company. The target must exist, must
// not be employed anywhere and must not own a company; the unique
// index on the employee's user id backs the employment check against
// concurrent hires.
func (s *EmployeeService) Create(ctx context.Context, actor *models.User, companyID, userID uuid.UUID) (*models.Employee, error) {
	if _, err := s.ownedCompany(ctx, actor, companyID); err != nil {
		return nil, err
	}
	if userID == uuid.Nil {
		return nil, e.FieldError("user_id", "Field is required")
	}

	user, err := ignoreNotFound(s.repo.GetUser(ctx, userID))
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	employment, err := ignoreNotFound(s.repo.GetEmployeeByUser(ctx, userID))
	if err != nil {
		return nil, fmt.Errorf("failed to check employment: %w", err)
	}
	owned, err := ignoreNotFound(s.repo.GetCompanyByOwner(ctx, userID))
	if err != nil {
		return nil, fmt.Errorf("failed to check owned company: %w", err)
	}
	if err := validation.NewEmployee(user, employment, owned); err != nil {
		return nil, err
	}

	employee := &models.Employee{
		ID:        uuid.New(),
		UserID:    userID,
		CompanyID: companyID,
	}
	err = s.repo.WithTransaction(ctx, func(tx *db.Repository) error {
		return tx.CreateEmployee(ctx, employee)
	})
	if err != nil {
		return nil, err
	}

	created, err := s.repo.GetEmployee(ctx, employee.ID)
	if err != nil {
		return nil, err
	}
	go func() {
		s.producer.Produce(events.EmployeeHired, created.ID, created)
	}()
	return created, nil
}

// List returns the company's employees, optionally filtered by a
// search term over the user's name and email.
func (s *EmployeeService) List(ctx context.Context, actor *models.User, companyID uuid.UUID, search string) ([]models.Employee, error) {
	if _, err := s.ownedCompany(ctx, actor, companyID); err != nil {
		return nil, err
	}
	return s.repo.ListEmployees(ctx, companyID, search)
}

func (s *EmployeeService) Get(ctx context.Context, actor *models.User, companyID, employeeID uuid.UUID) (*models.Employee, error) {
	if _, err := s.ownedCompany(ctx, actor, companyID); err != nil {
		return nil, err
	}
	return s.companyEmployee(ctx, companyID, employeeID)
}

// Update changes the employed user's name fields. Email and password
// are rejected on this path; the supplied flags record the attempt.
func (s *EmployeeService) Update(ctx context.Context, actor *models.User, companyID, employeeID uuid.UUID, update *models.UserUpdate, emailSupplied, passwordSupplied bool) (*models.Employee, error) {
	if _, err := s.ownedCompany(ctx, actor, companyID); err != nil {
		return nil, err
	}
	employee, err := s.companyEmployee(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}

	if err := validation.EmployeeUpdate(update, emailSupplied, passwordSupplied); err != nil {
		return nil, err
	}

	update.ID = employee.UserID
	err = s.repo.WithTransaction(ctx, func(tx *db.Repository) error {
		return tx.UpdateUser(ctx, update)
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	go func() {
		s.producer.Produce(events.EmployeeUpdated, updated.ID, updated)
	}()
	return updated, nil
}

// SetPassword lets the owner reset an employee's password.
func (s *EmployeeService) SetPassword(ctx context.Context, actor *models.User, companyID, employeeID uuid.UUID, password, repeatPassword string) error {
	if _, err := s.ownedCompany(ctx, actor, companyID); err != nil {
		return err
	}
	employee, err := s.companyEmployee(ctx, companyID, employeeID)
	if err != nil {
		return err
	}

	if err := validation.NewPassword(password, repeatPassword); err != nil {
		return err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.repo.WithTransaction(ctx, func(tx *db.Repository) error {
		return tx.SetUserPassword(ctx, employee.UserID, hash)
	})
}

// Delete fires an employee. Vehicles the user was driving for this
// company lose their driver in the same transaction, keeping the
// driver-must-be-an-employee invariant intact.
func (s *EmployeeService) Delete(ctx context.Context, actor *models.User, companyID, employeeID uuid.UUID) error {
	if _, err := s.ownedCompany(ctx, actor, companyID); err != nil {
		return err
	}
	employee, err := s.companyEmployee(ctx, companyID, employeeID)
	if err != nil {
		return err
	}

	err = s.repo.WithTransaction(ctx, func(tx *db.Repository) error {
		if err := tx.ClearVehicleDriver(ctx, companyID, employee.UserID); err != nil {
			return err
		}
		return tx.DeleteEmployee(ctx, employeeID)
	})
	if err != nil {
		return err
	}

	go func() {
		s.producer.Produce(events.EmployeeFired, employee.ID, employee)
	}()
	return nil
}
