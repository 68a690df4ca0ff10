package handlers

import (
	"net/http"

	"github.com/RomanKhudobei/my-company/internal/directory/auth"
	"github.com/RomanKhudobei/my-company/internal/directory/controller"
	"github.com/gin-gonic/gin"
)

// companyRequest keeps id and owner_id as raw pointers so a client
// trying to set a server-assigned field gets a read-only error rather
// than a silent drop.
type companyRequest struct {
	ID      *string `json:"id"`
	Name    *string `json:"name"`
	Address *string `json:"address"`
	OwnerID *string `json:"owner_id"`
}

func (a *API) createCompany(c *gin.Context) {
	user, err := auth.CurrentUser(c)
	if err != nil {
		a.writeError(c, err)
		return
	}
	var req companyRequest
	if !a.bindJSON(c, &req) {
		return
	}

	company, err := a.services.Companies.Create(c.Request.Context(), user, controller.CreateCompany{
		Name:            strValue(req.Name),
		Address:         strValue(req.Address),
		IDSupplied:      req.ID != nil,
		OwnerIDSupplied: req.OwnerID != nil,
	})
	if err != nil {
		a.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCompanyResponse(company))
}

func (a *API) getCompany(c *gin.Context) {
	user, err := auth.CurrentUser(c)
	if err != nil {
		a.writeError(c, err)
		return
	}
	companyID, ok := a.pathID(c, "company_id")
	if !ok {
		return
	}

	company, err := a.services.Companies.Get(c.Request.Context(), user, companyID)
	if err != nil {
		a.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCompanyResponse(company))
}

func (a *API) updateCompany(c *gin.Context) {
	user, err := auth.CurrentUser(c)
	if err != nil {
		a.writeError(c, err)
		return
	}
	companyID, ok := a.pathID(c, "company_id")
	if !ok {
		return
	}
	var req companyRequest
	if !a.bindJSON(c, &req) {
		return
	}

	company, err := a.services.Companies.Update(c.Request.Context(), user, companyID, controller.UpdateCompany{
		Name:            req.Name,
		Address:         req.Address,
		IDSupplied:      req.ID != nil,
		OwnerIDSupplied: req.OwnerID != nil,
	})
	if err != nil {
		a.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCompanyResponse(company))
}
