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

type ItemInput struct {
	Name         string         `json:"name" validate:"required,min=2,max=100"`
	Description  string         `json:"description" validate:"max=300"`
	Price        *float64       `json:"price" validate:"required,gte=0"`
	Image        string         `json:"image" validate:"omitempty,httpurl"`
	VegType      models.VegType `json:"vegType" validate:"required,oneof=veg non-veg"`
	RestaurantID uint           `json:"restaurantId" validate:"required"`
	CategoryID   uint           `json:"categoryId" validate:"required"`
}

// trim strips surrounding whitespace and lowercases vegType. The name keeps
// its inner spaces until it has been validated.
func (in *ItemInput) trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Image = strings.TrimSpace(in.Image)
	in.VegType = models.VegType(strings.ToLower(strings.TrimSpace(string(in.VegType))))
}

var itemEditable = []string{"name", "description", "price", "image", "vegType"}

type ItemService struct {
	items       *repository.ItemRepository
	categories  *repository.CategoryRepository
	restaurants *repository.RestaurantRepository
	log         *zap.Logger
}

func NewItemService(items *repository.ItemRepository, categories *repository.CategoryRepository,
	restaurants *repository.RestaurantRepository, log *zap.Logger) *ItemService {
	return &ItemService{items: items, categories: categories, restaurants: restaurants, log: log}
}

// Add creates a menu item. Both the restaurant and the category must exist,
// and the category must belong to that restaurant.
func (s *ItemService) Add(ctx context.Context, admin *models.Admin, in ItemInput) (*models.Item, error) {
	in.trim()
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	in.Name = validation.NormalizeName(in.Name)
	if _, err := ownedRestaurant(ctx, s.restaurants, admin, in.RestaurantID, apperr.CodeReferenceNotFound); err != nil {
		return nil, err
	}
	cat, err := s.categories.FindByID(ctx, in.CategoryID)
	if err != nil {
		return nil, lookupError(err, apperr.CodeReferenceNotFound, "category", in.CategoryID)
	}
	if cat.RestaurantID != in.RestaurantID {
		return nil, apperr.New(apperr.CodeReferenceNotFound,
			"category %d not found in restaurant %d", in.CategoryID, in.RestaurantID)
	}
	if err := s.ensureUniqueName(ctx, in.RestaurantID, in.CategoryID, in.Name, 0); err != nil {
		return nil, err
	}

	item := &models.Item{
		Name:         in.Name,
		Description:  in.Description,
		Price:        *in.Price,
		Image:        in.Image,
		VegType:      in.VegType,
		RestaurantID: in.RestaurantID,
		CategoryID:   in.CategoryID,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, itemWriteError(err)
	}
	s.log.Info("item added",
		zap.Uint("itemId", item.ID),
		zap.Uint("categoryId", item.CategoryID),
		zap.Uint("restaurantId", item.RestaurantID))
	return item, nil
}

// List returns the items of one category.
func (s *ItemService) List(ctx context.Context, admin *models.Admin, categoryID uint) ([]models.Item, error) {
	if categoryID == 0 {
		return nil, apperr.New(apperr.CodeMissingParameter, "categoryId is required")
	}
	cat, err := s.categories.FindByID(ctx, categoryID)
	if err != nil {
		return nil, lookupError(err, apperr.CodeNotFound, "category", categoryID)
	}
	if _, err := ownedRestaurant(ctx, s.restaurants, admin, cat.RestaurantID, apperr.CodeNotFound); err != nil {
		return nil, err
	}
	items, err := s.items.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, apperr.Internal(err, "failed to list items")
	}
	return items, nil
}

// Edit loads the full item, merges the whitelisted fields and re-runs the
// save-time normalization and uniqueness checks before writing.
func (s *ItemService) Edit(ctx context.Context, admin *models.Admin, id uint, fields map[string]any) (*models.Item, error) {
	if err := checkWhitelist(fields, itemEditable...); err != nil {
		return nil, err
	}
	item, err := s.owned(ctx, admin, id)
	if err != nil {
		return nil, err
	}

	price := item.Price
	in := ItemInput{
		Name:         item.Name,
		Description:  item.Description,
		Price:        &price,
		Image:        item.Image,
		VegType:      item.VegType,
		RestaurantID: item.RestaurantID,
		CategoryID:   item.CategoryID,
	}
	for key, v := range fields {
		if key == "price" {
			p, err := numberField(key, v)
			if err != nil {
				return nil, err
			}
			in.Price = &p
			continue
		}
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
		case "vegType":
			in.VegType = models.VegType(str)
		}
	}
	in.trim()
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	in.Name = validation.NormalizeName(in.Name)
	if err := s.ensureUniqueName(ctx, item.RestaurantID, item.CategoryID, in.Name, item.ID); err != nil {
		return nil, err
	}

	item.Name = in.Name
	item.Description = in.Description
	item.Price = *in.Price
	item.Image = in.Image
	item.VegType = in.VegType
	if err := s.items.Save(ctx, item); err != nil {
		return nil, itemWriteError(err)
	}
	return item, nil
}

func (s *ItemService) Delete(ctx context.Context, admin *models.Admin, id uint) (*models.Item, error) {
	if _, err := s.owned(ctx, admin, id); err != nil {
		return nil, err
	}
	removed, err := s.items.Delete(ctx, id)
	if err != nil {
		return nil, lookupError(err, apperr.CodeNotFound, "item", id)
	}
	s.log.Info("item deleted", zap.Uint("itemId", id))
	return removed, nil
}

func (s *ItemService) owned(ctx context.Context, admin *models.Admin, id uint) (*models.Item, error) {
	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, apperr.CodeNotFound, "item", id)
	}
	if _, err := ownedRestaurant(ctx, s.restaurants, admin, item.RestaurantID, apperr.CodeNotFound); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ItemService) ensureUniqueName(ctx context.Context, restaurantID, categoryID uint, name string, excludeID uint) error {
	taken, err := s.items.NameTaken(ctx, restaurantID, categoryID, name, excludeID)
	if err != nil {
		return apperr.Internal(err, "failed to check item name")
	}
	if taken {
		return duplicateItem()
	}
	return nil
}

func duplicateItem() error {
	return apperr.New(apperr.CodeDuplicateName,
		"item name must be unique within the same restaurant and category (ignoring spaces and case)")
}

func itemWriteError(err error) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return duplicateItem()
	}
	return apperr.Internal(err, "failed to save item")
}
