package validation

import (
	e "github.com/RomanKhudobei/my-company/internal/directory/errors"
	"github.com/RomanKhudobei/my-company/internal/directory/models"
	"github.com/google/uuid"
)

// VehicleFields checks the plain vehicle fields. yearSupplied
// distinguishes an absent year_of_manufacture from a zero value.
func VehicleFields(name, model, licencePlate string, yearSupplied bool) error {
	v := e.NewValidation()
	requireNonBlank(v, "name", name)
	requireNonBlank(v, "model", model)
	requireNonBlank(v, "licence_plate", licencePlate)
	if !yearSupplied {
		v.Add("year_of_manufacture", msgRequired)
	}
	return v.ErrOrNil()
}

// VehicleAssignment checks the optional office and driver references
// of a vehicle belonging to companyID. officeID/driverID are the
// requested references (nil when not set); office is the row officeID
// resolved to, driverUser the user driverID resolved to, and
// driverEmployment that user's employment row, each nil when absent.
//
// Rules: the office must belong to the vehicle's company; the driver
// must be an employee of the vehicle's company; and when both office
// and driver are set, the driver must already be assigned to that
// exact office.
func VehicleAssignment(
	companyID uuid.UUID,
	officeID, driverID *uuid.UUID,
	office *models.Office,
	driverUser *models.User,
	driverEmployment *models.Employee,
) error {
	v := e.NewValidation()

	if officeID != nil {
		switch {
		case office == nil:
			v.Add("office_id", "Office does not exist")
		case office.CompanyID != companyID:
			v.Add("office_id", "Office not belongs to company")
		}
	}

	if driverID != nil {
		switch {
		case driverUser == nil:
			v.Add("driver_id", "User does not exist")
		case driverEmployment == nil || driverEmployment.CompanyID != companyID:
			v.Add("driver_id", "User is not employee")
		}
	}
	if !v.Empty() {
		return v
	}

	if officeID != nil && driverID != nil {
		if driverEmployment.OfficeID == nil || *driverEmployment.OfficeID != *officeID {
			v.Add("driver_id", "Driver is not assigned to this office")
		}
	}
	return v.ErrOrNil()
}
