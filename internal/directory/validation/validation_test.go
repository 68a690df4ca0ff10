package validation

import (
	"testing"

	e "github.com/RomanKhudobei/my-company/internal/directory/errors"
	"github.com/RomanKhudobei/my-company/internal/directory/models"
	"github.com/RomanKhudobei/my-company/internal/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fields(t *testing.T, err error) map[string][]string {
	t.Helper()
	var ve *e.Validation
	require.ErrorAs(t, err, &ve, "expected a validation error")
	return ve.Fields
}

func TestNewUser(t *testing.T) {
	existing := &models.User{ID: uuid.New(), Email: "taken@example.com"}

	tests := []struct {
		name     string
		run      func() error
		expected map[string][]string
	}{
		{
			name: "valid",
			run: func() error {
				return NewUser("John", "Doe", "john@example.com", "secret", "secret", nil)
			},
		},
		{
			name: "all fields blank",
			run: func() error {
				return NewUser("", "", "", "", "", nil)
			},
			expected: map[string][]string{
				"first_name":      {"Field cannot be blank"},
				"last_name":       {"Field cannot be blank"},
				"email":           {"Field cannot be blank"},
				"password":        {"Field cannot be blank"},
				"repeat_password": {"Field cannot be blank"},
			},
		},
		{
			name: "invalid email",
			run: func() error {
				return NewUser("John", "Doe", "not-an-email", "secret", "secret", nil)
			},
			expected: map[string][]string{
				"email": {"Not a valid email address"},
			},
		},
		{
			name: "email taken",
			run: func() error {
				return NewUser("John", "Doe", "taken@example.com", "secret", "secret", existing)
			},
			expected: map[string][]string{
				"email": {"User with this email already exist"},
			},
		},
		{
			name: "password mismatch reported after field errors pass",
			run: func() error {
				return NewUser("John", "Doe", "john@example.com", "secret", "other", nil)
			},
			expected: map[string][]string{
				"repeat_password": {"Passwords not match"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.expected, fields(t, err))
		})
	}
}

func TestNewUserBlankFieldsHidePasswordMismatch(t *testing.T) {
	// When a field error is present the password comparison is not
	// reached, so the mismatch is not reported yet.
	err := NewUser("", "Doe", "john@example.com", "secret", "other", nil)
	got := fields(t, err)
	assert.Equal(t, map[string][]string{"first_name": {"Field cannot be blank"}}, got)
}

func TestUserUpdate(t *testing.T) {
	assert.NoError(t, UserUpdate(&models.UserUpdate{}))
	assert.NoError(t, UserUpdate(&models.UserUpdate{FirstName: utils.Ptr("John")}))

	err := UserUpdate(&models.UserUpdate{FirstName: utils.Ptr("  "), LastName: utils.Ptr("")})
	assert.Equal(t, map[string][]string{
		"first_name": {"Field cannot be blank"},
		"last_name":  {"Field cannot be blank"},
	}, fields(t, err))
}

func TestNewPassword(t *testing.T) {
	assert.NoError(t, NewPassword("secret", "secret"))

	err := NewPassword("", "")
	assert.Equal(t, map[string][]string{
		"password":        {"Field cannot be blank"},
		"repeat_password": {"Field cannot be blank"},
	}, fields(t, err))

	err = NewPassword("secret", "other")
	assert.Equal(t, map[string][]string{
		"repeat_password": {"Passwords not match"},
	}, fields(t, err))
}

func TestCredentials(t *testing.T) {
	assert.NoError(t, Credentials("john@example.com", "secret"))

	err := Credentials("nope", "")
	assert.Equal(t, map[string][]string{
		"email":    {"Not a valid email address"},
		"password": {"Field cannot be blank"},
	}, fields(t, err))
}

func TestCompanyFields(t *testing.T) {
	assert.NoError(t, CompanyFields("Acme", false, false))

	err := CompanyFields("", true, true)
	assert.Equal(t, map[string][]string{
		"name":     {"Field cannot be blank"},
		"id":       {"Field is read-only"},
		"owner_id": {"Field is read-only"},
	}, fields(t, err))
}

func TestCompanyUpdate(t *testing.T) {
	assert.NoError(t, CompanyUpdate(&models.CompanyUpdate{Name: utils.Ptr("Acme")}, false, false))
	assert.NoError(t, CompanyUpdate(&models.CompanyUpdate{}, false, false))

	err := CompanyUpdate(&models.CompanyUpdate{Name: utils.Ptr(" ")}, true, false)
	assert.Equal(t, map[string][]string{
		"name": {"Field cannot be blank"},
		"id":   {"Field is read-only"},
	}, fields(t, err))
}

func TestCompanyOwner(t *testing.T) {
	company := &models.Company{ID: uuid.New()}
	employment := &models.Employee{ID: uuid.New()}

	assert.NoError(t, CompanyOwner(nil, nil))

	err := CompanyOwner(company, nil)
	assert.Equal(t, map[string][]string{
		"owner_id": {"User already have a company"},
	}, fields(t, err))

	err = CompanyOwner(nil, employment)
	assert.Equal(t, map[string][]string{
		"owner_id": {"Employee cannot create his own company"},
	}, fields(t, err))
}

func TestNewEmployee(t *testing.T) {
	user := &models.User{ID: uuid.New()}

	assert.NoError(t, NewEmployee(user, nil, nil))

	err := NewEmployee(nil, nil, nil)
	assert.Equal(t, map[string][]string{
		"user_id": {"User does not exist"},
	}, fields(t, err))

	err = NewEmployee(user, &models.Employee{ID: uuid.New()}, nil)
	assert.Equal(t, map[string][]string{
		"user_id": {"User already employed"},
	}, fields(t, err))

	err = NewEmployee(user, nil, &models.Company{ID: uuid.New()})
	assert.Equal(t, map[string][]string{
		"user_id": {"Company owner cannot be employee"},
	}, fields(t, err))
}

func TestEmployeeUpdate(t *testing.T) {
	assert.NoError(t, EmployeeUpdate(&models.UserUpdate{FirstName: utils.Ptr("John")}, false, false))

	err := EmployeeUpdate(&models.UserUpdate{}, true, true)
	assert.Equal(t, map[string][]string{
		"email":    {"Field cannot be changed through this operation"},
		"password": {"Field cannot be changed through this operation"},
	}, fields(t, err))
}

func TestOfficeAssignment(t *testing.T) {
	companyID := uuid.New()
	office := &models.Office{ID: uuid.New(), CompanyID: companyID}

	assert.NoError(t, OfficeAssignment(office, &models.Employee{ID: uuid.New(), CompanyID: companyID}))

	err := OfficeAssignment(office, nil)
	assert.Equal(t, map[string][]string{
		"employee_id": {"Employee does not exist"},
	}, fields(t, err))

	err = OfficeAssignment(office, &models.Employee{ID: uuid.New(), CompanyID: uuid.New()})
	assert.Equal(t, map[string][]string{
		"employee_id": {"Employee not belongs to company"},
	}, fields(t, err))
}
