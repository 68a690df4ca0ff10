package handlers

import (
	"time"

	"github.com/RomanKhudobei/my-company/internal/directory/models"
	"github.com/google/uuid"
)

// Response DTOs. Passwords never leave the server; read endpoints nest
// the related read-only objects while write endpoints accept only
// foreign-key ids.

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(user *models.User) *userResponse {
	if user == nil {
		return nil
	}
	return &userResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

type companyResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	OwnerID   uuid.UUID `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

func toCompanyResponse(company *models.Company) *companyResponse {
	return &companyResponse{
		ID:        company.ID,
		Name:      company.Name,
		Address:   company.Address,
		OwnerID:   company.OwnerID,
		CreatedAt: company.CreatedAt,
	}
}

type employeeResponse struct {
	ID        uuid.UUID     `json:"id"`
	CompanyID uuid.UUID     `json:"company_id"`
	OfficeID  *uuid.UUID    `json:"office_id"`
	User      *userResponse `json:"user"`
	CreatedAt time.Time     `json:"created_at"`
}

func toEmployeeResponse(employee *models.Employee) *employeeResponse {
	return &employeeResponse{
		ID:        employee.ID,
		CompanyID: employee.CompanyID,
		OfficeID:  employee.OfficeID,
		User:      toUserResponse(employee.User),
		CreatedAt: employee.CreatedAt,
	}
}

func toEmployeeResponses(employees []models.Employee) []*employeeResponse {
	out := make([]*employeeResponse, 0, len(employees))
	for i := range employees {
		out = append(out, toEmployeeResponse(&employees[i]))
	}
	return out
}

type countryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func toCountryResponse(country *models.Country) *countryResponse {
	if country == nil {
		return nil
	}
	return &countryResponse{ID: country.ID, Name: country.Name}
}

type regionResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CountryID uuid.UUID `json:"country_id"`
}

func toRegionResponse(region *models.Region) *regionResponse {
	if region == nil {
		return nil
	}
	return &regionResponse{ID: region.ID, Name: region.Name, CountryID: region.CountryID}
}

type cityResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	RegionID uuid.UUID `json:"region_id"`
}

func toCityResponse(city *models.City) *cityResponse {
	if city == nil {
		return nil
	}
	return &cityResponse{ID: city.ID, Name: city.Name, RegionID: city.RegionID}
}

type officeResponse struct {
	ID        uuid.UUID        `json:"id"`
	CompanyID uuid.UUID        `json:"company_id"`
	Name      string           `json:"name"`
	Address   string           `json:"address"`
	Country   *countryResponse `json:"country"`
	Region    *regionResponse  `json:"region"`
	City      *cityResponse    `json:"city"`
	CreatedAt time.Time        `json:"created_at"`
}

func toOfficeResponse(office *models.Office) *officeResponse {
	if office == nil {
		return nil
	}
	return &officeResponse{
		ID:        office.ID,
		CompanyID: office.CompanyID,
		Name:      office.Name,
		Address:   office.Address,
		Country:   toCountryResponse(office.Country),
		Region:    toRegionResponse(office.Region),
		City:      toCityResponse(office.City),
		CreatedAt: office.CreatedAt,
	}
}

func toOfficeResponses(offices []models.Office) []*officeResponse {
	out := make([]*officeResponse, 0, len(offices))
	for i := range offices {
		out = append(out, toOfficeResponse(&offices[i]))
	}
	return out
}

type vehicleResponse struct {
	ID                uuid.UUID       `json:"id"`
	CompanyID         uuid.UUID       `json:"company_id"`
	Name              string          `json:"name"`
	Model             string          `json:"model"`
	LicencePlate      string          `json:"licence_plate"`
	YearOfManufacture int             `json:"year_of_manufacture"`
	Office            *officeResponse `json:"office"`
	Driver            *userResponse   `json:"driver"`
	CreatedAt         time.Time       `json:"created_at"`
}

func toVehicleResponse(vehicle *models.Vehicle) *vehicleResponse {
	return &vehicleResponse{
		ID:                vehicle.ID,
		CompanyID:         vehicle.CompanyID,
		Name:              vehicle.Name,
		Model:             vehicle.Model,
		LicencePlate:      vehicle.LicencePlate,
		YearOfManufacture: vehicle.YearOfManufacture,
		Office:            toOfficeResponse(vehicle.Office),
		Driver:            toUserResponse(vehicle.Driver),
		CreatedAt:         vehicle.CreatedAt,
	}
}

func toVehicleResponses(vehicles []models.Vehicle) []*vehicleResponse {
	out := make([]*vehicleResponse, 0, len(vehicles))
	for i := range vehicles {
		out = append(out, toVehicleResponse(&vehicles[i]))
	}
	return out
}

func toCountryResponses(countries []models.Country) []*countryResponse {
	out := make([]*countryResponse, 0, len(countries))
	for i := range countries {
		out = append(out, toCountryResponse(&countries[i]))
	}
	return out
}

func toRegionResponses(regions []models.Region) []*regionResponse {
	out := make([]*regionResponse, 0, len(regions))
	for i := range regions {
		out = append(out, toRegionResponse(&regions[i]))
	}
	return out
}

func toCityResponses(cities []models.City) []*cityResponse {
	out := make([]*cityResponse, 0, len(cities))
	for i := range cities {
		out = append(out, toCityResponse(&cities[i]))
	}
	return out
}
