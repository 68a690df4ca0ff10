package controller

import (
	"context"
	"fmt"

	"github.com/RomanKhudobei/my-company/internal/directory/auth"
	"github.com/RomanKhudobei/my-company/internal/directory/db"
	e "github.com/RomanKhudobei/my-company/internal/directory/errors"
	"github.com/RomanKhudobei/my-company/internal/directory/events"
	"github.com/RomanKhudobei/my-company/internal/directory/models"
	"github.com/RomanKhudobei/my-company/internal/directory/validation"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserService manages account registration and profile changes.
type UserService struct {
	repo     *db.Repository
	producer EventProducer
	logger   *zap.Logger
}

func NewUserService(repo *db.Repository, producer EventProducer, logger *zap.Logger) *UserService {
	return &UserService{
		repo:     repo,
		producer: producer,
		logger:   logger.Named("user_service"),
	}
}

// RegisterUser is the registration input.
type RegisterUser struct {
	FirstName      string
	LastName       string
	Email          string
	Password       string
	RepeatPassword string
}

// Register creates a new account. The unique index on email backs the
// existence check against concurrent registrations.
func (s *UserService) Register(ctx context.Context, input RegisterUser) (*models.User, error) {
	existing, err := ignoreNotFound(s.repo.GetUserByEmail(ctx, input.Email))
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	err = validation.NewUser(input.FirstName, input.LastName, input.Email,
		input.Password, input.RepeatPassword, existing)
	if err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hash,
	}
	err = s.repo.WithTransaction(ctx, func(tx *db.Repository) error {
		return tx.CreateUser(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	go func() {
		s.producer.Produce(events.UserRegistered, user.ID, nil)
	}()
	return user, nil
}

// Update changes the caller's own name fields.
func (s *UserService) Update(ctx context.Context, user *models.User, update *models.UserUpdate) (*models.User, error) {
	update.ID = user.ID
	if err := validation.UserUpdate(update); err != nil {
		return nil, err
	}

	err := s.repo.WithTransaction(ctx, func(tx *db.Repository) error {
		return tx.UpdateUser(ctx, update)
	})
	if err != nil {
		return nil, err
	}
	return s.repo.GetUser(ctx, user.ID)
}

// ChangePassword verifies the old password and stores a new hash.
func (s *UserService) ChangePassword(ctx context.Context, user *models.User, oldPassword, newPassword, repeatPassword string) error {
	if err := validation.NewPassword(newPassword, repeatPassword); err != nil {
		return err
	}
	if !auth.CheckPassword(user.PasswordHash, oldPassword) {
		return e.FieldError("old_password", "Wrong password")
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.repo.WithTransaction(ctx, func(tx *db.Repository) error {
		return tx.SetUserPassword(ctx, user.ID, hash)
	})
}
