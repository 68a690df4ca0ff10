// Package validation implements the field-level and cross-entity
// business rules. Every function takes the already-loaded entities it
// judges as typed parameters and returns nil or a *errors.Validation
// carrying one message per offending field. Loading is the caller's
// job; validators never touch storage.
package validation

import (
	"net/mail"
	"strings"

	e "github.com/RomanKhudobei/my-company/internal/directory/errors"
	"github.com/RomanKhudobei/my-company/internal/directory/models"
)

const (
	msgRequired    = "Field is required"
	msgBlank       = "Field cannot be blank"
	msgEmail       = "Not a valid email address"
	msgEmailTaken  = "User with this email already exist"
	msgNoMatch     = "Passwords not match"
	msgReadOnly    = "Field is read-only"
	msgNotEditable = "Field cannot be changed through this operation"
)

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func requireNonBlank(v *e.Validation, field, value string) {
	if blank(value) {
		v.Add(field, msgBlank)
	}
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// NewUser checks a registration request. existing is the user already
// registered under the same email, if any; the unique index on email
// still backs this check against concurrent registrations.
func NewUser(firstName, lastName, email, password, repeatPassword string, existing *models.User) error {
	v := e.NewValidation()

	requireNonBlank(v, "first_name", firstName)
	requireNonBlank(v, "last_name", lastName)
	requireNonBlank(v, "password", password)
	requireNonBlank(v, "repeat_password", repeatPassword)

	switch {
	case blank(email):
		v.Add("email", msgBlank)
	case !validEmail(email):
		v.Add("email", msgEmail)
	case existing != nil:
		v.Add("email", msgEmailTaken)
	}

	if !v.Empty() {
		return v
	}

	// Byte-for-byte comparison; no normalization of either input.
	if password != repeatPassword {
		v.Add("repeat_password", msgNoMatch)
	}
	return v.ErrOrNil()
}

// UserUpdate checks a profile update: only name fields may change, and
// neither may be blanked out.
func UserUpdate(update *models.UserUpdate) error {
	v := e.NewValidation()
	if update.FirstName != nil && blank(*update.FirstName) {
		v.Add("first_name", msgBlank)
	}
	if update.LastName != nil && blank(*update.LastName) {
		v.Add("last_name", msgBlank)
	}
	return v.ErrOrNil()
}

// NewPassword checks a password pair for set/change operations.
func NewPassword(password, repeatPassword string) error {
	v := e.NewValidation()
	requireNonBlank(v, "password", password)
	requireNonBlank(v, "repeat_password", repeatPassword)
	if !v.Empty() {
		return v
	}
	if password != repeatPassword {
		v.Add("repeat_password", msgNoMatch)
	}
	return v.ErrOrNil()
}

// Credentials checks a login request.
func Credentials(email, password string) error {
	v := e.NewValidation()
	switch {
	case blank(email):
		v.Add("email", msgBlank)
	case !validEmail(email):
		v.Add("email", msgEmail)
	}
	requireNonBlank(v, "password", password)
	return v.ErrOrNil()
}
