package handlers

import (
	"net/http"

	"github.com/RomanKhudobei/my-company/internal/directory/auth"
	"github.com/RomanKhudobei/my-company/internal/directory/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type createEmployeeRequest struct {
	UserID *uuid.UUID `json:"user_id"`
}

func (a *API) createEmployee(c *gin.Context) {
	user, err := auth.CurrentUser(c)
	if err != nil {
		a.writeError(c, err)
		return
	}
	companyID, ok := a.pathID(c, "company_id")
	if !ok {
		return
	}
	var req createEmployeeRequest
	if !a.bindJSON(c, &req) {
		return
	}

	employee, err := a.services.Employees.Create(c.Request.Context(), user, companyID, uuidValue(req.UserID))
	if err != nil {
		a.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toEmployeeResponse(employee))
}

func (a *API) listEmployees(c *gin.Context) {
	user, err := auth.CurrentUser(c)
	if err != nil {
		a.writeError(c, err)
		return
	}
	companyID, ok := a.pathID(c, "company_id")
	if !ok {
		return
	}

	employees, err := a.services.Employees.List(c.Request.Context(), user, companyID, c.Query("search"))
	if err != nil {
		a.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEmployeeResponses(employees))
}

func (a *API) getEmployee(c *gin.Context) {
	user, err := auth.CurrentUser(c)
	if err != nil {
		a.writeError(c, err)
		return
	}
	companyID, ok := a.pathID(c, "company_id")
	if !ok {
		return
	}
	employeeID, ok := a.pathID(c, "employee_id")
	if !ok {
		return
	}

	employee, err := a.services.Employees.Get(c.Request.Context(), user, companyID, employeeID)
	if err != nil {
		a.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEmployeeResponse(employee))
}

// updateEmployeeRequest carries email and password only to reject them:
// the owner edits names here, credentials go through set-password.
type updateEmployeeRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
}

func (a *API) updateEmployee(c *gin.Context) {
	user, err := auth.CurrentUser(c)
	if err != nil {
		a.writeError(c, err)
		return
	}
	companyID, ok := a.pathID(c, "company_id")
	if !ok {
		return
	}
	employeeID, ok := a.pathID(c, "employee_id")
	if !ok {
		return
	}
	var req updateEmployeeRequest
	if !a.bindJSON(c, &req) {
		return
	}

	update := &models.UserUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	employee, err := a.services.Employees.Update(c.Request.Context(), user, companyID, employeeID,
		update, req.Email != nil, req.Password != nil)
	if err != nil {
		a.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEmployeeResponse(employee))
}

type setPasswordRequest struct {
	Password       string `json:"password"`
	RepeatPassword string `json:"repeat_password"`
}

func (a *API) setEmployeePassword(c *gin.Context) {
	user, err := auth.CurrentUser(c)
	if err != nil {
		a.writeError(c, err)
		return
	}
	companyID, ok := a.pathID(c, "company_id")
	if !ok {
		return
	}
	employeeID, ok := a.pathID(c, "employee_id")
	if !ok {
		return
	}
	var req setPasswordRequest
	if !a.bindJSON(c, &req) {
		return
	}

	err = a.services.Employees.SetPassword(c.Request.Context(), user, companyID, employeeID,
		req.Password, req.RepeatPassword)
	if err != nil {
		a.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (a *API) deleteEmployee(c *gin.Context) {
	user, err := auth.CurrentUser(c)
	if err != nil {
		a.writeError(c, err)
		return
	}
	companyID, ok := a.pathID(c, "company_id")
	if !ok {
		return
	}
	employeeID, ok := a.pathID(c, "employee_id")
	if !ok {
		return
	}

	if err := a.services.Employees.Delete(c.Request.Context(), user, companyID, employeeID); err != nil {
		a.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
