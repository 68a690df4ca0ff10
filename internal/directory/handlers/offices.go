package handlers

import (
	"net/http"

	"github.com/RomanKhudobei/my-company/internal/directory/auth"
	"github.com/RomanKhudobei/my-company/internal/directory/controller"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type officeRequest struct {
	Name      string     `json:"name"`
	Address   string     `json:"address"`
	CountryID *uuid.UUID `json:"country_id"`
	RegionID  *uuid.UUID `json:"region_id"`
	CityID    *uuid.UUID `json:"city_id"`
}

func (r officeRequest) toInput() controller.OfficeInput {
	return controller.OfficeInput{
		Name:      r.Name,
		Address:   r.Address,
		CountryID: uuidValue(r.CountryID),
		RegionID:  uuidValue(r.RegionID),
		CityID:    uuidValue(r.CityID),
	}
}

func (a *API) createOffice(c *gin.Context) {
	user, err := auth.CurrentUser(c)
	if err != nil {
		a.writeError(c, err)
		return
	}
	companyID, ok := a.pathID(c, "company_id")
	if !ok {
		return
	}
	var req officeRequest
	if !a.bindJSON(c, &req) {
		return
	}

	office, err := a.services.Offices.Create(c.Request.Context(), user, companyID, req.toInput())
	if err != nil {
		a.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOfficeResponse(office))
}

func (a *API) listOffices(c *gin.Context) {
	user, err := auth.CurrentUser(c)
	if err != nil {
		a.writeError(c, err)
		return
	}
	companyID, ok := a.pathID(c, "company_id")
	if !ok {
		return
	}

	offices, err := a.services.Offices.List(c.Request.Context(), user, companyID)
	if err != nil {
		a.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOfficeResponses(offices))
}

func (a *API) getOffice(c *gin.Context) {
	user, err := auth.CurrentUser(c)
	if err != nil {
		a.writeError(c, err)
		return
	}
	companyID, ok := a.pathID(c, "company_id")
	if !ok {
		return
	}
	officeID, ok := a.pathID(c, "office_id")
	if !ok {
		return
	}

	office, err := a.services.Offices.Get(c.Request.Context(), user, companyID, officeID)
	if err != nil {
		a.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOfficeResponse(office))
}

func (a *API) updateOffice(c *gin.Context) {
	user, err := auth.CurrentUser(c)
	if err != nil {
		a.writeError(c, err)
		return
	}
	companyID, ok := a.pathID(c, "company_id")
	if !ok {
		return
	}
	officeID, ok := a.pathID(c, "office_id")
	if !ok {
		return
	}
	var req officeRequest
	if !a.bindJSON(c, &req) {
		return
	}

	office, err := a.services.Offices.Update(c.Request.Context(), user, companyID, officeID, req.toInput())
	if err != nil {
		a.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOfficeResponse(office))
}

func (a *API) deleteOffice(c *gin.Context) {
	user, err := auth.CurrentUser(c)
	if err != nil {
		a.writeError(c, err)
		return
	}
	companyID, ok := a.pathID(c, "company_id")
	if !ok {
		return
	}
	officeID, ok := a.pathID(c, "office_id")
	if !ok {
		return
	}

	if err := a.services.Offices.Delete(c.Request.Context(), user, companyID, officeID); err != nil {
		a.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type assignEmployeeRequest struct {
	EmployeeID *uuid.UUID `json:"employee_id"`
}

func (a *API) assignEmployee(c *gin.Context) {
	user, err := auth.CurrentUser(c)
	if err != nil {
		a.writeError(c, err)
		return
	}
	companyID, ok := a.pathID(c, "company_id")
	if !ok {
		return
	}
	officeID, ok := a.pathID(c, "office_id")
	if !ok {
		return
	}
	var req assignEmployeeRequest
	if !a.bindJSON(c, &req) {
		return
	}

	employee, err := a.services.Offices.AssignEmployee(c.Request.Context(), user, companyID, officeID, uuidValue(req.EmployeeID))
	if err != nil {
		a.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEmployeeResponse(employee))
}

func (a *API) myOffice(c *gin.Context) {
	user, err := auth.CurrentUser(c)
	if err != nil {
		a.writeError(c, err)
		return
	}

	office, err := a.services.Offices.MyOffice(c.Request.Context(), user)
	if err != nil {
		a.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOfficeResponse(office))
}
