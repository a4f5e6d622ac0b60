package services

import (
	"context"
	"errors"

	"restaurant-management-api/apperr"
	"restaurant-management-api/auth"
	"restaurant-management-api/models"
	"restaurant-management-api/repository"
	"restaurant-management-api/validation"

	"go.uber.org/zap"
)

// ChefWaiterService is the staff-facing side: login and profile.
type ChefWaiterService struct {
	staff *repository.ChefWaiterRepository
	creds *auth.Credentials
	log   *zap.Logger
}

func NewChefWaiterService(staff *repository.ChefWaiterRepository, creds *auth.Credentials, log *zap.Logger) *ChefWaiterService {
	return &ChefWaiterService{staff: staff, creds: creds, log: log}
}

func (s *ChefWaiterService) Login(ctx context.Context, in LoginInput) (*models.ChefWaiter, string, error) {
	in.Email = validation.NormalizeEmail(in.Email)
	if err := validation.Struct(in); err != nil {
		return nil, "", err
	}

	cw, err := s.staff.FindByEmailWithPassword(ctx, in.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, "", apperr.New(apperr.CodeNotFound, "user not found")
	}
	if err != nil {
		return nil, "", apperr.Internal(err, "failed to load chef/waiter")
	}
	if !s.creds.Verify(in.Password, cw.PasswordHash) {
		return nil, "", apperr.New(apperr.CodeInvalidCredentials, "invalid credentials")
	}
	cw.PasswordHash = ""

	token, err := s.creds.IssueToken(cw.ID, cw.Role)
	if err != nil {
		return nil, "", apperr.Internal(err, "failed to generate token")
	}
	s.log.Debug("staff logged in", zap.Uint("chefWaiterId", cw.ID))
	return cw, token, nil
}

// Get loads a staff member without the password digest.
func (s *ChefWaiterService) Get(ctx context.Context, id uint) (*models.ChefWaiter, error) {
	cw, err := s.staff.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, apperr.CodeNotFound, "chef/waiter", id)
	}
	return cw, nil
}
