// Package handlers exposes the REST surface of the directory. It
// binds request bodies into typed inputs, delegates every decision to
// the controller layer and maps domain errors onto HTTP status codes.
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/RomanKhudobei/my-company/internal/directory/auth"
	"github.com/RomanKhudobei/my-company/internal/directory/controller"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Services bundles the controllers the API delegates to.
type Services struct {
	Users     *controller.UserService
	Auth      *controller.AuthService
	Companies *controller.CompanyService
	Employees *controller.EmployeeService
	Offices   *controller.OfficeService
	Vehicles  *controller.VehicleService
	Locations *controller.LocationService
}

// API holds the handler dependencies.
type API struct {
	services *Services
	logger   *zap.Logger
}

// NewRouter builds the gin engine with all routes registered. Exposed
// separately from Server so tests can drive it with httptest.
func NewRouter(services *Services, tokens *auth.Manager, users auth.UserResolver, logger *zap.Logger) *gin.Engine {
	api := &API{
		services: services,
		logger:   logger.Named("http"),
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	// Public surface.
	engine.POST("/users/", api.registerUser)
	engine.POST("/login/", api.login)
	engine.POST("/token/refresh/", api.refreshToken)
	engine.GET("/countries/", api.listCountries)
	engine.GET("/countries/:country_id/regions/", api.listRegions)
	engine.GET("/countries/:country_id/regions/:region_id/cities/", api.listCities)

	// Everything below requires a valid access token.
	private := engine.Group("", auth.Middleware(tokens, users))

	private.GET("/users/me/", api.getMe)
	private.PUT("/users/me/", api.updateMe)
	private.POST("/users/me/change-password/", api.changeMyPassword)

	private.POST("/companies/", api.createCompany)
	private.GET("/companies/:company_id/", api.getCompany)
	private.PUT("/companies/:company_id/", api.updateCompany)

	private.POST("/companies/:company_id/employees/", api.createEmployee)
	private.GET("/companies/:company_id/employees/", api.listEmployees)
	private.GET("/companies/:company_id/employees/:employee_id/", api.getEmployee)
	private.PUT("/companies/:company_id/employees/:employee_id/", api.updateEmployee)
	private.DELETE("/companies/:company_id/employees/:employee_id/", api.deleteEmployee)
	private.POST("/companies/:company_id/employees/:employee_id/set-password/", api.setEmployeePassword)

	private.POST("/companies/:company_id/offices/", api.createOffice)
	private.GET("/companies/:company_id/offices/", api.listOffices)
	private.GET("/companies/:company_id/offices/:office_id/", api.getOffice)
	private.PUT("/companies/:company_id/offices/:office_id/", api.updateOffice)
	private.DELETE("/companies/:company_id/offices/:office_id/", api.deleteOffice)
	private.POST("/companies/:company_id/offices/:office_id/assign-employee/", api.assignEmployee)
	private.GET("/my-office/", api.myOffice)

	private.POST("/companies/:company_id/vehicles/", api.createVehicle)
	private.GET("/companies/:company_id/vehicles/", api.listVehicles)
	private.GET("/companies/:company_id/vehicles/:vehicle_id/", api.getVehicle)
	private.PUT("/companies/:company_id/vehicles/:vehicle_id/", api.updateVehicle)
	private.DELETE("/companies/:company_id/vehicles/:vehicle_id/", api.deleteVehicle)
	private.GET("/my-vehicles/", api.myVehicles)

	return engine
}

// Server wraps the HTTP server around the router.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
}

func NewServer(port int, services *Services, tokens *auth.Manager, users auth.UserResolver, logger *zap.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: NewRouter(services, tokens, users, logger),
		},
		logger: logger,
	}
}

// Start launches the HTTP listener in the background.
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.httpServer.Addr))
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("HTTP server error", zap.Error(err))
		}
	}()
	return nil
}

// Stop shuts the server down, letting in-flight requests finish.
func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("HTTP server shutdown error", zap.Error(err))
	}
}

// pathID parses a UUID path parameter. An unparseable id cannot refer
// to anything, so it reads as not found.
func (a *API) pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
		return uuid.Nil, false
	}
	return id, true
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func uuidValue(id *uuid.UUID) uuid.UUID {
	if id == nil {
		return uuid.Nil
	}
	return *id
}
