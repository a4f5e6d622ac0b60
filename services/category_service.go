package services

import (
	"context"
	"errors"
	"strings"

	"restaurant-management-api/apperr"
	"restaurant-management-api/models"
	"restaurant-management-api/repository"
	"restaurant-management-api/validation"

	"go.uber.org/zap"
)

type CategoryInput struct {
	Name         string `json:"name" validate:"required,min=2,max=100"`
	Description  string `json:"description" validate:"max=300"`
	Image        string `json:"image" validate:"omitempty,httpurl"`
	RestaurantID uint   `json:"restaurantId" validate:"required"`
}

// trim strips surrounding whitespace. Length rules apply to the trimmed
// name as entered; whitespace is removed from it only after validation.
func (in *CategoryInput) trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Image = strings.TrimSpace(in.Image)
}

var categoryEditable = []string{"name", "description", "image"}

type CategoryService struct {
	categories  *repository.CategoryRepository
	items       *repository.ItemRepository
	restaurants *repository.RestaurantRepository
	log         *zap.Logger
}

func NewCategoryService(categories *repository.CategoryRepository, items *repository.ItemRepository,
	restaurants *repository.RestaurantRepository, log *zap.Logger) *CategoryService {
	return &CategoryService{categories: categories, items: items, restaurants: restaurants, log: log}
}

// Add creates a category in one of the admin's restaurants.
func (s *CategoryService) Add(ctx context.Context, admin *models.Admin, in CategoryInput) (*models.Category, error) {
	in.trim()
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	in.Name = validation.NormalizeName(in.Name)
	if _, err := ownedRestaurant(ctx, s.restaurants, admin, in.RestaurantID, apperr.CodeReferenceNotFound); err != nil {
		return nil, err
	}
	if err := s.ensureUniqueName(ctx, in.RestaurantID, in.Name, 0); err != nil {
		return nil, err
	}

	cat := &models.Category{
		Name:         in.Name,
		Description:  in.Description,
		Image:        in.Image,
		RestaurantID: in.RestaurantID,
	}
	if err := s.categories.Create(ctx, cat); err != nil {
		return nil, categoryWriteError(err)
	}
	s.log.Info("category added", zap.Uint("categoryId", cat.ID), zap.Uint("restaurantId", cat.RestaurantID))
	return cat, nil
}

// List returns a restaurant's categories.
func (s *CategoryService) List(ctx context.Context, admin *models.Admin, restaurantID uint) ([]models.Category, error) {
	if restaurantID == 0 {
		return nil, apperr.New(apperr.CodeMissingParameter, "restaurantId is required")
	}
	if _, err := ownedRestaurant(ctx, s.restaurants, admin, restaurantID, apperr.CodeNotFound); err != nil {
		return nil, err
	}
	cats, err := s.categories.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, apperr.Internal(err, "failed to list categories")
	}
	return cats, nil
}

// Edit merges the whitelisted fields into the stored category, then runs
// the same normalization and uniqueness checks as Add.
func (s *CategoryService) Edit(ctx context.Context, admin *models.Admin, id uint, fields map[string]any) (*models.Category, error) {
	if err := checkWhitelist(fields, categoryEditable...); err != nil {
		return nil, err
	}
	cat, err := s.owned(ctx, admin, id)
	if err != nil {
		return nil, err
	}

	in := CategoryInput{Name: cat.Name, Description: cat.Description, Image: cat.Image, RestaurantID: cat.RestaurantID}
	for key, v := range fields {
		str, err := stringField(key, v)
		if err != nil {
			return nil, err
		}
		switch key {
		case "name":
			in.Name = str
		case "description":
			in.Description = str
		case "image":
			in.Image = str
		}
	}
	in.trim()
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	in.Name = validation.NormalizeName(in.Name)
	if err := s.ensureUniqueName(ctx, cat.RestaurantID, in.Name, cat.ID); err != nil {
		return nil, err
	}

	cat.Name, cat.Description, cat.Image = in.Name, in.Description, in.Image
	if err := s.categories.Save(ctx, cat); err != nil {
		return nil, categoryWriteError(err)
	}
	return cat, nil
}

// Delete removes an empty category and returns it.
func (s *CategoryService) Delete(ctx context.Context, admin *models.Admin, id uint) (*models.Category, error) {
	if _, err := s.owned(ctx, admin, id); err != nil {
		return nil, err
	}

	n, err := s.items.CountByCategory(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err, "failed to count items")
	}
	if n > 0 {
		return nil, apperr.New(apperr.CodeCategoryNotEmpty, "category %d still has %d items", id, n)
	}

	removed, err := s.categories.Delete(ctx, id)
	if err != nil {
		return nil, lookupError(err, apperr.CodeNotFound, "category", id)
	}
	s.log.Info("category deleted", zap.Uint("categoryId", id))
	return removed, nil
}

// owned loads the category and checks its restaurant belongs to admin.
func (s *CategoryService) owned(ctx context.Context, admin *models.Admin, id uint) (*models.Category, error) {
	cat, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, apperr.CodeNotFound, "category", id)
	}
	if _, err := ownedRestaurant(ctx, s.restaurants, admin, cat.RestaurantID, apperr.CodeNotFound); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *CategoryService) ensureUniqueName(ctx context.Context, restaurantID uint, name string, excludeID uint) error {
	taken, err := s.categories.NameTaken(ctx, restaurantID, name, excludeID)
	if err != nil {
		return apperr.Internal(err, "failed to check category name")
	}
	if taken {
		return duplicateCategory()
	}
	return nil
}

func duplicateCategory() error {
	return apperr.New(apperr.CodeDuplicateName,
		"category name must be unique within the same restaurant (ignoring spaces and case)")
}

func categoryWriteError(err error) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return duplicateCategory()
	}
	return apperr.Internal(err, "failed to save category")
}
