package handlers

import (
	"net/http"

	"github.com/RomanKhudobei/my-company/internal/directory/auth"
	"github.com/RomanKhudobei/my-company/internal/directory/controller"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type vehicleRequest struct {
	Name              string     `json:"name"`
	Model             string     `json:"model"`
	LicencePlate      string     `json:"licence_plate"`
	YearOfManufacture *int       `json:"year_of_manufacture"`
	OfficeID          *uuid.UUID `json:"office_id"`
	DriverID          *uuid.UUID `json:"driver_id"`
}

func (r vehicleRequest) toInput() controller.VehicleInput {
	return controller.VehicleInput{
		Name:              r.Name,
		Model:             r.Model,
		LicencePlate:      r.LicencePlate,
		YearOfManufacture: r.YearOfManufacture,
		OfficeID:          r.OfficeID,
		DriverID:          r.DriverID,
	}
}

func (a *API) createVehicle(c *gin.Context) {
	user, err := auth.CurrentUser(c)
	if err != nil {
		a.writeError(c, err)
		return
	}
	companyID, ok := a.pathID(c, "company_id")
	if !ok {
		return
	}
	var req vehicleRequest
	if !a.bindJSON(c, &req) {
		return
	}

	vehicle, err := a.services.Vehicles.Create(c.Request.Context(), user, companyID, req.toInput())
	if err != nil {
		a.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toVehicleResponse(vehicle))
}

func (a *API) listVehicles(c *gin.Context) {
	user, err := auth.CurrentUser(c)
	if err != nil {
		a.writeError(c, err)
		return
	}
	companyID, ok := a.pathID(c, "company_id")
	if !ok {
		return
	}

	vehicles, err := a.services.Vehicles.List(c.Request.Context(), user, companyID)
	if err != nil {
		a.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toVehicleResponses(vehicles))
}

func (a *API) getVehicle(c *gin.Context) {
	user, err := auth.CurrentUser(c)
	if err != nil {
		a.writeError(c, err)
		return
	}
	companyID, ok := a.pathID(c, "company_id")
	if !ok {
		return
	}
	vehicleID, ok := a.pathID(c, "vehicle_id")
	if !ok {
		return
	}

	vehicle, err := a.services.Vehicles.Get(c.Request.Context(), user, companyID, vehicleID)
	if err != nil {
		a.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toVehicleResponse(vehicle))
}

func (a *API) updateVehicle(c *gin.Context) {
	user, err := auth.CurrentUser(c)
	if err != nil {
		a.writeError(c, err)
		return
	}
	companyID, ok := a.pathID(c, "company_id")
	if !ok {
		return
	}
	vehicleID, ok := a.pathID(c, "vehicle_id")
	if !ok {
		return
	}
	var req vehicleRequest
	if !a.bindJSON(c, &req) {
		return
	}

	vehicle, err := a.services.Vehicles.Update(c.Request.Context(), user, companyID, vehicleID, req.toInput())
	if err != nil {
		a.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toVehicleResponse(vehicle))
}

func (a *API) deleteVehicle(c *gin.Context) {
	user, err := auth.CurrentUser(c)
	if err != nil {
		a.writeError(c, err)
		return
	}
	companyID, ok := a.pathID(c, "company_id")
	if !ok {
		return
	}
	vehicleID, ok := a.pathID(c, "vehicle_id")
	if !ok {
		return
	}

	if err := a.services.Vehicles.Delete(c.Request.Context(), user, companyID, vehicleID); err != nil {
		a.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (a *API) myVehicles(c *gin.Context) {
	user, err := auth.CurrentUser(c)
	if err != nil {
		a.writeError(c, err)
		return
	}

	vehicles, err := a.services.Vehicles.MyVehicles(c.Request.Context(), user)
	if err != nil {
		a.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toVehicleResponses(vehicles))
}
