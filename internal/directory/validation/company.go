package validation

import (
	e "github.com/RomanKhudobei/my-company/internal/directory/errors"
	"github.com/RomanKhudobei/my-company/internal/directory/models"
)

// CompanyFields checks the caller-writable company fields. ID and
// owner_id are server-assigned and rejected when the caller supplies
// them.
func CompanyFields(name string, idSupplied, ownerIDSupplied bool) error {
	v := e.NewValidation()
	requireNonBlank(v, "name", name)
	if idSupplied {
		v.Add("id", msgReadOnly)
	}
	if ownerIDSupplied {
		v.Add("owner_id", msgReadOnly)
	}
	return v.ErrOrNil()
}

// CompanyUpdate checks an update request: the name may not be blanked
// out, and the server-assigned fields stay read-only.
func CompanyUpdate(update *models.CompanyUpdate, idSupplied, ownerIDSupplied bool) error {
	v := e.NewValidation()
	if update.Name != nil && blank(*update.Name) {
		v.Add("name", msgBlank)
	}
	if idSupplied {
		v.Add("id", msgReadOnly)
	}
	if ownerIDSupplied {
		v.Add("owner_id", msgReadOnly)
	}
	return v.ErrOrNil()
}

// CompanyOwner decides whether a user may found a company. ownedCompany
// and employment are the user's current company and employment rows,
// nil when absent. An owner cannot already own a company, and an
// employee cannot own one at all.
func CompanyOwner(ownedCompany *models.Company, employment *models.Employee) error {
	v := e.NewValidation()
	if employment != nil {
		v.Add("owner_id", "Employee cannot create his own company")
	}
	if ownedCompany != nil {
		v.Add("owner_id", "User already have a company")
	}
	return v.ErrOrNil()
}

// NewEmployee decides whether a user may be hired. user is the hire
// target (nil when the id resolves to nothing), employment the user's
// current employment row, ownedCompany the company the user owns, each
// nil when absent. Company owners cannot be hired anywhere: ownership
// and employment are mutually exclusive roles.
func NewEmployee(user *models.User, employment *models.Employee, ownedCompany *models.Company) error {
	v := e.NewValidation()
	if user == nil {
		v.Add("user_id", "User does not exist")
		return v
	}
	if employment != nil {
		v.Add("user_id", "User already employed")
	}
	if ownedCompany != nil {
		v.Add("user_id", "Company owner cannot be employee")
	}
	return v.ErrOrNil()
}

// EmployeeUpdate restricts employee updates to the underlying user's
// name fields. Email and password changes must go through their
// dedicated operations.
func EmployeeUpdate(update *models.UserUpdate, emailSupplied, passwordSupplied bool) error {
	v := e.NewValidation()
	if emailSupplied {
		v.Add("email", msgNotEditable)
	}
	if passwordSupplied {
		v.Add("password", msgNotEditable)
	}
	if update.FirstName != nil && blank(*update.FirstName) {
		v.Add("first_name", msgBlank)
	}
	if update.LastName != nil && blank(*update.LastName) {
		v.Add("last_name", msgBlank)
	}
	return v.ErrOrNil()
}

// OfficeAssignment decides whether an employee can be assigned to an
// office. The office is the path entity and is known to exist; the
// employee comes from the request body, so its absence is a field
// error rather than a 404.
func OfficeAssignment(office *models.Office, employee *models.Employee) error {
	v := e.NewValidation()
	if employee == nil {
		v.Add("employee_id", "Employee does not exist")
		return v
	}
	if employee.CompanyID != office.CompanyID {
		v.Add("employee_id", "Employee not belongs to company")
	}
	return v.ErrOrNil()
}
