// Package authz evaluates role predicates against an authenticated
// identity and a target company. Guards are composed explicitly before
// the handler body: callers load the relevant rows, ask for a
// decision, and translate a denial into a 403.
package authz

import (
	"fmt"

	e "github.com/RomanKhudobei/my-company/internal/directory/errors"
	"github.com/RomanKhudobei/my-company/internal/directory/models"
)

// IsOwner reports whether the user owns the company.
func IsOwner(user *models.User, company *models.Company) bool {
	return user != nil && company != nil && user.ID == company.OwnerID
}

// IsEmployee reports whether the employment row ties its user to the
// company.
func IsEmployee(employment *models.Employee, company *models.Company) bool {
	return employment != nil && company != nil && employment.CompanyID == company.ID
}

// RequireOwner admits only the company owner.
func RequireOwner(user *models.User, company *models.Company) error {
	if !IsOwner(user, company) {
		return fmt.Errorf("%w: you are not company owner", e.ErrForbidden)
	}
	return nil
}

// RequireOwnerOrEmployee admits the owner and the company's employees.
// employment is the user's employment row, nil when the user is not
// employed anywhere.
func RequireOwnerOrEmployee(user *models.User, employment *models.Employee, company *models.Company) error {
	if IsOwner(user, company) || IsEmployee(employment, company) {
		return nil
	}
	return fmt.Errorf("%w: you are not a member of this company", e.ErrForbidden)
}
