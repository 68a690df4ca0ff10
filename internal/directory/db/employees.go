package db

import (
	"context"

	e "github.com/RomanKhudobei/my-company/internal/directory/errors"
	"github.com/RomanKhudobei/my-company/internal/directory/models"
	"github.com/google/uuid"
)

func (r *Repository) CreateEmployee(ctx context.Context, employee *models.Employee) error {
	result := r.db.WithContext(ctx).Create(employee)
	if result.Error != nil {
		return duplicateAs(result.Error, "user_id", "User already employed")
	}
	return nil
}

func (r *Repository) GetEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	result := r.db.WithContext(ctx).
		Preload("User").
		Preload("Office").
		First(&employee, "id = ?", id)
	if result.Error != nil {
		return nil, notFoundAs(result.Error)
	}
	return &employee, nil
}

// GetEmployeeByUser resolves the employment record of a user, if any.
func (r *Repository) GetEmployeeByUser(ctx context.Context, userID uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	result := r.db.WithContext(ctx).
		Preload("User").
		Preload("Office").
		First(&employee, "user_id = ?", userID)
	if result.Error != nil {
		return nil, notFoundAs(result.Error)
	}
	return &employee, nil
}

// ListEmployees returns a company's employees, optionally filtered by
// a case-insensitive match on the user's name or email.
func (r *Repository) ListEmployees(ctx context.Context, companyID uuid.UUID, search string) ([]models.Employee, error) {
	query := r.db.WithContext(ctx).
		Preload("User").
		Preload("Office").
		Where("company_id = ?", companyID)

	if search != "" {
		pattern := "%" + search + "%"
		query = query.
			Joins("JOIN users ON users.id = employees.user_id").
			Where("users.first_name LIKE ? OR users.last_name LIKE ? OR users.email LIKE ?",
				pattern, pattern, pattern)
	}

	var employees []models.Employee
	if err := query.Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// SetEmployeeOffice assigns an employee to an office, or clears the
// assignment when officeID is nil.
func (r *Repository) SetEmployeeOffice(ctx context.Context, employeeID uuid.UUID, officeID *uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.Employee{}).
		Where("id = ?", employeeID).
		Update("office_id", officeID)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}

func (r *Repository) DeleteEmployee(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Employee{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return e.ErrNotFound
	}
	return nil
}
