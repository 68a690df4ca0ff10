package authz

import (
	"testing"

	e "github.com/RomanKhudobei/my-company/internal/directory/errors"
	"github.com/RomanKhudobei/my-company/internal/directory/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIsOwner(t *testing.T) {
	owner := &models.User{ID: uuid.New()}
	company := &models.Company{ID: uuid.New(), OwnerID: owner.ID}

	assert.True(t, IsOwner(owner, company))
	assert.False(t, IsOwner(&models.User{ID: uuid.New()}, company))
	assert.False(t, IsOwner(nil, company))
	assert.False(t, IsOwner(owner, nil))
}

func TestIsEmployee(t *testing.T) {
	company := &models.Company{ID: uuid.New()}
	employment := &models.Employee{ID: uuid.New(), CompanyID: company.ID}

	assert.True(t, IsEmployee(employment, company))
	assert.False(t, IsEmployee(&models.Employee{ID: uuid.New(), CompanyID: uuid.New()}, company))
	assert.False(t, IsEmployee(nil, company))
}

func TestRequireOwner(t *testing.T) {
	owner := &models.User{ID: uuid.New()}
	company := &models.Company{ID: uuid.New(), OwnerID: owner.ID}

	assert.NoError(t, RequireOwner(owner, company))

	err := RequireOwner(&models.User{ID: uuid.New()}, company)
	assert.ErrorIs(t, err, e.ErrForbidden)
}

func TestRequireOwnerOrEmployee(t *testing.T) {
	owner := &models.User{ID: uuid.New()}
	worker := &models.User{ID: uuid.New()}
	company := &models.Company{ID: uuid.New(), OwnerID: owner.ID}
	employment := &models.Employee{ID: uuid.New(), UserID: worker.ID, CompanyID: company.ID}

	assert.NoError(t, RequireOwnerOrEmployee(owner, nil, company))
	assert.NoError(t, RequireOwnerOrEmployee(worker, employment, company))

	stranger := &models.User{ID: uuid.New()}
	err := RequireOwnerOrEmployee(stranger, nil, company)
	assert.ErrorIs(t, err, e.ErrForbidden)

	// Employment at another company does not help.
	foreign := &models.Employee{ID: uuid.New(), UserID: stranger.ID, CompanyID: uuid.New()}
	err = RequireOwnerOrEmployee(stranger, foreign, company)
	assert.ErrorIs(t, err, e.ErrForbidden)
}
