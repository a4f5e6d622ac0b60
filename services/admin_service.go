package services

import (
	"context"
	"errors"
	"strings"

	"restaurant-management-api/apperr"
	"restaurant-management-api/auth"
	"restaurant-management-api/models"
	"restaurant-management-api/repository"
	"restaurant-management-api/validation"

	"go.uber.org/zap"
)

type SignupInput struct {
	Name     string      `json:"name" validate:"required,min=2,max=100"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,strongpassword,bcryptmax"`
	Role     models.Role `json:"role" validate:"required,eq=admin"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateChefWaiterInput struct {
	Name         string      `json:"name" validate:"required,min=2,max=100"`
	Email        string      `json:"email" validate:"required,email"`
	Password     string      `json:"password" validate:"required,min=6,bcryptmax"`
	Role         models.Role `json:"role" validate:"required,oneof=chef waiter"`
	RestaurantID uint        `json:"restaurantId" validate:"required"`
}

// AdminService handles admin accounts and the staff they create.
type AdminService struct {
	admins      *repository.AdminRepository
	restaurants *repository.RestaurantRepository
	staff       *repository.ChefWaiterRepository
	creds       *auth.Credentials
	log         *zap.Logger
}

func NewAdminService(admins *repository.AdminRepository, restaurants *repository.RestaurantRepository,
	staff *repository.ChefWaiterRepository, creds *auth.Credentials, log *zap.Logger) *AdminService {
	return &AdminService{admins: admins, restaurants: restaurants, staff: staff, creds: creds, log: log}
}

// Signup registers an admin and returns it with a fresh session token.
func (s *AdminService) Signup(ctx context.Context, in SignupInput) (*models.Admin, string, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = validation.NormalizeEmail(in.Email)
	if err := validation.Struct(in); err != nil {
		return nil, "", err
	}

	exists, err := s.admins.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, "", apperr.Internal(err, "failed to check email")
	}
	if exists {
		return nil, "", apperr.New(apperr.CodeDuplicateEmail, "email already exists")
	}

	hash, err := s.creds.Hash(in.Password)
	if err != nil {
		return nil, "", apperr.Internal(err, "failed to hash password")
	}

	admin := &models.Admin{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", apperr.New(apperr.CodeDuplicateEmail, "email already exists")
		}
		return nil, "", apperr.Internal(err, "failed to create admin")
	}

	token, err := s.creds.IssueToken(admin.ID, admin.Role)
	if err != nil {
		return nil, "", apperr.Internal(err, "failed to generate token")
	}
	s.log.Info("admin signed up", zap.Uint("adminId", admin.ID))
	return admin, token, nil
}

// Login checks the credentials and issues a new token.
func (s *AdminService) Login(ctx context.Context, in LoginInput) (*models.Admin, string, error) {
	in.Email = validation.NormalizeEmail(in.Email)
	if err := validation.Struct(in); err != nil {
		return nil, "", err
	}

	admin, err := s.admins.FindByEmail(ctx, in.Email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, "", apperr.New(apperr.CodeNotFound, "admin not found")
	}
	if err != nil {
		return nil, "", apperr.Internal(err, "failed to load admin")
	}
	if !s.creds.Verify(in.Password, admin.PasswordHash) {
		return nil, "", apperr.New(apperr.CodeInvalidCredentials, "invalid credentials")
	}

	token, err := s.creds.IssueToken(admin.ID, admin.Role)
	if err != nil {
		return nil, "", apperr.Internal(err, "failed to generate token")
	}
	return admin, token, nil
}

// CreateChefWaiter adds a staff account to one of the admin's restaurants
// and returns it with a staff session token.
func (s *AdminService) CreateChefWaiter(ctx context.Context, admin *models.Admin, in CreateChefWaiterInput) (*models.ChefWaiter, string, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = validation.NormalizeEmail(in.Email)
	if err := validation.Struct(in); err != nil {
		return nil, "", err
	}

	if _, err := ownedRestaurant(ctx, s.restaurants, admin, in.RestaurantID, apperr.CodeReferenceNotFound); err != nil {
		return nil, "", err
	}

	exists, err := s.staff.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, "", apperr.Internal(err, "failed to check email")
	}
	if exists {
		return nil, "", apperr.New(apperr.CodeDuplicateEmail, "%s already exists with this email", in.Role)
	}

	hash, err := s.creds.Hash(in.Password)
	if err != nil {
		return nil, "", apperr.Internal(err, "failed to hash password")
	}

	cw := &models.ChefWaiter{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		RestaurantID: in.RestaurantID,
		AdminID:      admin.ID,
	}
	if err := s.staff.Create(ctx, cw); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", apperr.New(apperr.CodeDuplicateEmail, "%s already exists with this email", in.Role)
		}
		return nil, "", apperr.Internal(err, "failed to create "+string(in.Role))
	}
	cw.PasswordHash = ""

	token, err := s.creds.IssueToken(cw.ID, cw.Role)
	if err != nil {
		return nil, "", apperr.Internal(err, "failed to generate token")
	}
	s.log.Info("staff created",
		zap.Uint("chefWaiterId", cw.ID),
		zap.String("role", string(cw.Role)),
		zap.Uint("adminId", admin.ID))
	return cw, token, nil
}

// DeleteChefWaiter removes a staff account the admin created and returns it.
func (s *AdminService) DeleteChefWaiter(ctx context.Context, admin *models.Admin, id uint) (*models.ChefWaiter, error) {
	cw, err := s.staff.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, apperr.CodeNotFound, "chef/waiter", id)
	}
	if cw.AdminID != admin.ID {
		return nil, apperr.New(apperr.CodeForbidden, "chef/waiter %d belongs to another admin", id)
	}

	removed, err := s.staff.Delete(ctx, id)
	if err != nil {
		return nil, lookupError(err, apperr.CodeNotFound, "chef/waiter", id)
	}
	s.log.Info("staff deleted", zap.Uint("chefWaiterId", id), zap.Uint("adminId", admin.ID))
	return removed, nil
}

// Get loads an admin by id.
func (s *AdminService) Get(ctx context.Context, id uint) (*models.Admin, error) {
	admin, err := s.admins.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, apperr.CodeNotFound, "admin", id)
	}
	return admin, nil
}
