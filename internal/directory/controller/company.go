package controller

import (
	"context"
	"fmt"

	"github.com/RomanKhudobei/my-company/internal/directory/authz"
	"github.com/RomanKhudobei/my-company/internal/directory/db"
	"github.com/RomanKhudobei/my-company/internal/directory/events"
	"github.com/RomanKhudobei/my-company/internal/directory/models"
	"github.com/RomanKhudobei/my-company/internal/directory/validation"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CompanyService manages companies and the ownership rules around
// them.
type CompanyService struct {
	repo     *db.Repository
	producer EventProducer
	logger   *zap.Logger
}

func NewCompanyService(repo *db.Repository, producer EventProducer, logger *zap.Logger) *CompanyService {
	return &CompanyService{
		repo:     repo,
		producer: producer,
		logger:   logger.Named("company_service"),
	}
}

// CreateCompany is the company creation input. The supplied flags
// record whether the caller tried to set a server-assigned field.
type CreateCompany struct {
	Name            string
	Address         string
	IDSupplied      bool
	OwnerIDSupplied bool
}

// Create founds a company owned by the caller. A user with a company
// or an employment anywhere cannot found one; the unique owner index
// backs the ownership check against concurrent creates.
func (s *CompanyService) Create(ctx context.Context, owner *models.User, input CreateCompany) (*models.Company, error) {
	if err := validation.CompanyFields(input.Name, input.IDSupplied, input.OwnerIDSupplied); err != nil {
		return nil, err
	}

	owned, err := ignoreNotFound(s.repo.GetCompanyByOwner(ctx, owner.ID))
	if err != nil {
		return nil, fmt.Errorf("failed to check owned company: %w", err)
	}
	employment, err := ignoreNotFound(s.repo.GetEmployeeByUser(ctx, owner.ID))
	if err != nil {
		return nil, fmt.Errorf("failed to check employment: %w", err)
	}
	if err := validation.CompanyOwner(owned, employment); err != nil {
		return nil, err
	}

	company := &models.Company{
		ID:      uuid.New(),
		Name:    input.Name,
		Address: input.Address,
		OwnerID: owner.ID,
	}
	err = s.repo.WithTransaction(ctx, func(tx *db.Repository) error {
		return tx.CreateCompany(ctx, company)
	})
	if err != nil {
		return nil, err
	}

	go func() {
		s.producer.Produce(events.CompanyCreated, company.ID, company)
	}()
	return company, nil
}

// Get returns a company to its owner. A missing company is a 404
// before any ownership judgment; an existing one is 403 for everybody
// but the owner.
func (s *CompanyService) Get(ctx context.Context, actor *models.User, companyID uuid.UUID) (*models.Company, error) {
	company, err := s.repo.GetCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if err := authz.RequireOwner(actor, company); err != nil {
		return nil, err
	}
	return company, nil
}

// UpdateCompany is the company update input.
type UpdateCompany struct {
	Name            *string
	Address         *string
	IDSupplied      bool
	OwnerIDSupplied bool
}

// Update modifies a company's own fields, owner only.
func (s *CompanyService) Update(ctx context.Context, actor *models.User, companyID uuid.UUID, input UpdateCompany) (*models.Company, error) {
	company, err := s.repo.GetCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if err := authz.RequireOwner(actor, company); err != nil {
		return nil, err
	}

	update := &models.CompanyUpdate{
		ID:      companyID,
		Name:    input.Name,
		Address: input.Address,
	}
	if err := validation.CompanyUpdate(update, input.IDSupplied, input.OwnerIDSupplied); err != nil {
		return nil, err
	}

	err = s.repo.WithTransaction(ctx, func(tx *db.Repository) error {
		return tx.UpdateCompany(ctx, update)
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.GetCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("Failed to reload company after update",
			zap.Error(err),
			zap.String("company_id", companyID.String()),
		)
		return nil, err
	}
	go func() {
		s.producer.Produce(events.CompanyUpdated, updated.ID, updated)
	}()
	return updated, nil
}
