package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/RomanKhudobei/my-company/internal/directory/auth"
	"github.com/RomanKhudobei/my-company/internal/directory/controller"
	"github.com/RomanKhudobei/my-company/internal/directory/db"
	"github.com/RomanKhudobei/my-company/internal/directory/events"
	"github.com/RomanKhudobei/my-company/internal/directory/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type noopProducer struct{}

func (noopProducer) Produce(events.EventType, uuid.UUID, interface{}) {}

type testServer struct {
	router *gin.Engine
	repo   *db.Repository
}

func setupServer(t *testing.T) *testServer {
	gin.SetMode(gin.TestMode)

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to open test database")
	repo, err := db.Open(conn)
	require.NoError(t, err, "failed to migrate test database")

	logger := zaptest.NewLogger(t)
	producer := noopProducer{}
	tokens := auth.NewManager("test-secret", 15*time.Minute, 24*time.Hour)

	services := &Services{
		Users:     controller.NewUserService(repo, producer, logger),
		Auth:      controller.NewAuthService(repo, tokens, logger),
		Companies: controller.NewCompanyService(repo, producer, logger),
		Employees: controller.NewEmployeeService(repo, producer, logger),
		Offices:   controller.NewOfficeService(repo, producer, logger),
		Vehicles:  controller.NewVehicleService(repo, producer, logger),
		Locations: controller.NewLocationService(repo, logger),
	}

	return &testServer{
		router: NewRouter(services, tokens, repo, logger),
		repo:   repo,
	}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), target), "response should be valid JSON: %s", rec.Body.String())
}

func (s *testServer) registerAndLogin(t *testing.T, email string) string {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/users/", "", gin.H{
		"first_name":      "John",
		"last_name":       "Doe",
		"email":           email,
		"password":        "secret",
		"repeat_password": "secret",
	})
	require.Equal(t, http.StatusCreated, rec.Code, "registration should succeed: %s", rec.Body.String())

	rec = s.do(t, http.MethodPost, "/login/", "", gin.H{"email": email, "password": "secret"})
	require.Equal(t, http.StatusOK, rec.Code, "login should succeed: %s", rec.Body.String())

	var pair struct {
		AccessToken string `json:"access_token"`
	}
	decode(t, rec, &pair)
	require.NotEmpty(t, pair.AccessToken)
	return pair.AccessToken
}

func (s *testServer) seedLocation(t *testing.T) (uuid.UUID, uuid.UUID, uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	country := &models.Country{ID: uuid.New(), Name: "Ukraine"}
	require.NoError(t, s.repo.CreateCountry(ctx, country))
	region := &models.Region{ID: uuid.New(), Name: "Kyiv Oblast", CountryID: country.ID}
	require.NoError(t, s.repo.CreateRegion(ctx, region))
	city := &models.City{ID: uuid.New(), Name: "Kyiv", RegionID: region.ID}
	require.NoError(t, s.repo.CreateCity(ctx, city))
	return country.ID, region.ID, city.ID
}

// TestDirectoryFlow walks the whole happy path: an owner founds a
// company, hires a user, opens an office, places the employee there
// and hands them a vehicle; the employee then sees both through the
// my- endpoints.
func TestDirectoryFlow(t *testing.T) {
	s := setupServer(t)
	countryID, regionID, cityID := s.seedLocation(t)

	ownerToken := s.registerAndLogin(t, "owner@example.com")
	workerToken := s.registerAndLogin(t, "worker@example.com")

	// Worker id for the hire call.
	rec := s.do(t, http.MethodGet, "/users/me/", workerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var worker struct {
		ID uuid.UUID `json:"id"`
	}
	decode(t, rec, &worker)

	// Found the company.
	rec = s.do(t, http.MethodPost, "/companies/", ownerToken, gin.H{"name": "Acme", "address": "1 Main St"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var company struct {
		ID uuid.UUID `json:"id"`
	}
	decode(t, rec, &company)

	// Hire the worker.
	rec = s.do(t, http.MethodPost, fmt.Sprintf("/companies/%s/employees/", company.ID), ownerToken,
		gin.H{"user_id": worker.ID})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var employee struct {
		ID   uuid.UUID `json:"id"`
		User struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	decode(t, rec, &employee)
	assert.Equal(t, "worker@example.com", employee.User.Email)

	// Open an office.
	rec = s.do(t, http.MethodPost, fmt.Sprintf("/companies/%s/offices/", company.ID), ownerToken, gin.H{
		"name":       "HQ",
		"address":    "1 Main St",
		"country_id": countryID,
		"region_id":  regionID,
		"city_id":    cityID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var office struct {
		ID      uuid.UUID `json:"id"`
		Country struct {
			Name string `json:"name"`
		} `json:"country"`
	}
	decode(t, rec, &office)
	assert.Equal(t, "Ukraine", office.Country.Name)

	// Place the employee at the office.
	rec = s.do(t, http.MethodPost,
		fmt.Sprintf("/companies/%s/offices/%s/assign-employee/", company.ID, office.ID),
		ownerToken, gin.H{"employee_id": employee.ID})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// Hand them a vehicle.
	rec = s.do(t, http.MethodPost, fmt.Sprintf("/companies/%s/vehicles/", company.ID), ownerToken, gin.H{
		"name":                "Truck",
		"model":               "T-100",
		"licence_plate":       "AA1234BB",
		"year_of_manufacture": 2020,
		"office_id":           office.ID,
		"driver_id":           worker.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// The employee sees their office and vehicle.
	rec = s.do(t, http.MethodGet, "/my-office/", workerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var myOffice struct {
		ID uuid.UUID `json:"id"`
	}
	decode(t, rec, &myOffice)
	assert.Equal(t, office.ID, myOffice.ID)

	rec = s.do(t, http.MethodGet, "/my-vehicles/", workerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var myVehicles []struct {
		LicencePlate string `json:"licence_plate"`
	}
	decode(t, rec, &myVehicles)
	require.Len(t, myVehicles, 1)
	assert.Equal(t, "AA1234BB", myVehicles[0].LicencePlate)
}

func TestAuthenticationRequired(t *testing.T) {
	s := setupServer(t)

	rec := s.do(t, http.MethodGet, "/users/me/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "missing token is 401")

	rec = s.do(t, http.MethodGet, "/users/me/", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "invalid token is 401")

	// The public surface stays open.
	rec = s.do(t, http.MethodGet, "/countries/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStatusMapping(t *testing.T) {
	s := setupServer(t)

	ownerToken := s.registerAndLogin(t, "owner@example.com")
	strangerToken := s.registerAndLogin(t, "stranger@example.com")

	rec := s.do(t, http.MethodPost, "/companies/", ownerToken, gin.H{"name": "Acme"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var company struct {
		ID uuid.UUID `json:"id"`
	}
	decode(t, rec, &company)

	// Missing company is 404 before any ownership judgment.
	rec = s.do(t, http.MethodGet, fmt.Sprintf("/companies/%s/", uuid.New()), strangerToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Unparseable id is also 404.
	rec = s.do(t, http.MethodGet, "/companies/not-a-uuid/", strangerToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Existing company is 403 for non-owners.
	rec = s.do(t, http.MethodGet, fmt.Sprintf("/companies/%s/", company.ID), strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Malformed body is 400.
	req := httptest.NewRequest(http.MethodPost, "/companies/", bytes.NewReader([]byte("{broken")))
	req.Header.Set("Authorization", "Bearer "+ownerToken)
	rec2 := httptest.NewRecorder()
	s.router.ServeHTTP(rec2, req)
	assert.Equal(t, http.StatusBadRequest, rec2.Code)
}

func TestValidationErrorPayload(t *testing.T) {
	s := setupServer(t)

	// Registration with everything wrong returns the field map.
	rec := s.do(t, http.MethodPost, "/users/", "", gin.H{
		"first_name":      "",
		"last_name":       "Doe",
		"email":           "not-an-email",
		"password":        "secret",
		"repeat_password": "secret",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var payload map[string][]string
	decode(t, rec, &payload)
	assert.Equal(t, map[string][]string{
		"first_name": {"Field cannot be blank"},
		"email":      {"Not a valid email address"},
	}, payload)

	// Server-assigned company fields are rejected with read-only errors.
	token := s.registerAndLogin(t, "owner@example.com")
	rec = s.do(t, http.MethodPost, "/companies/", token, gin.H{
		"name":     "Acme",
		"id":       uuid.NewString(),
		"owner_id": uuid.NewString(),
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	payload = nil
	decode(t, rec, &payload)
	assert.Equal(t, map[string][]string{
		"id":       {"Field is read-only"},
		"owner_id": {"Field is read-only"},
	}, payload)
}

func TestTokenRefreshEndpoint(t *testing.T) {
	s := setupServer(t)

	rec := s.do(t, http.MethodPost, "/users/", "", gin.H{
		"first_name":      "John",
		"last_name":       "Doe",
		"email":           "john@example.com",
		"password":        "secret",
		"repeat_password": "secret",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(t, http.MethodPost, "/login/", "", gin.H{"email": "john@example.com", "password": "secret"})
	require.Equal(t, http.StatusOK, rec.Code)
	var pair struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	decode(t, rec, &pair)

	rec = s.do(t, http.MethodPost, "/token/refresh/", pair.RefreshToken, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var refreshed struct {
		AccessToken string `json:"access_token"`
	}
	decode(t, rec, &refreshed)
	assert.NotEmpty(t, refreshed.AccessToken)

	// An access token does not refresh, and refresh tokens do not pass
	// the auth middleware.
	rec = s.do(t, http.MethodPost, "/token/refresh/", pair.AccessToken, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(t, http.MethodGet, "/users/me/", pair.RefreshToken, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLocationEndpoints(t *testing.T) {
	s := setupServer(t)
	countryID, regionID, _ := s.seedLocation(t)

	rec := s.do(t, http.MethodGet, "/countries/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var countries []struct {
		Name string `json:"name"`
	}
	decode(t, rec, &countries)
	require.Len(t, countries, 1)
	assert.Equal(t, "Ukraine", countries[0].Name)

	rec = s.do(t, http.MethodGet, fmt.Sprintf("/countries/%s/regions/", countryID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, fmt.Sprintf("/countries/%s/regions/%s/cities/", countryID, regionID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Region under the wrong country is a 404.
	rec = s.do(t, http.MethodGet, fmt.Sprintf("/countries/%s/regions/%s/cities/", uuid.New(), regionID), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
