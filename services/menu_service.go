package services

import (
	"context"
	"errors"
	"strings"

	"restaurant-management-api/apperr"
	"restaurant-management-api/models"
	"restaurant-management-api/repository"
)

// MenuCategory is one category with its items, as shown to customers.
type MenuCategory struct {
	models.Category
	Items []models.Item `json:"items"`
}

type Menu struct {
	Restaurant *models.Restaurant `json:"restaurant"`
	Categories []MenuCategory     `json:"categories"`
	Count      int                `json:"count"`
}

// MenuService serves the public, read-only menu reached through a
// restaurant's qrcodeId.
type MenuService struct {
	restaurants *repository.RestaurantRepository
	categories  *repository.CategoryRepository
	items       *repository.ItemRepository
}

func NewMenuService(restaurants *repository.RestaurantRepository, categories *repository.CategoryRepository,
	items *repository.ItemRepository) *MenuService {
	return &MenuService{restaurants: restaurants, categories: categories, items: items}
}

// ByQRCode returns the restaurant's menu grouped by category. A non-empty
// vegType keeps only items of that type; categories left empty by the filter
// are dropped.
func (s *MenuService) ByQRCode(ctx context.Context, qrcodeID string, vegType string) (*Menu, error) {
	qrcodeID = strings.TrimSpace(qrcodeID)
	if qrcodeID == "" {
		return nil, apperr.New(apperr.CodeMissingParameter, "qrcodeId is required")
	}
	filter := models.VegType(strings.ToLower(strings.TrimSpace(vegType)))
	if filter != "" && filter != models.Veg && filter != models.NonVeg {
		return nil, apperr.New(apperr.CodeValidationFailed, "vegType must be one of [veg non-veg]")
	}

	rest, err := s.restaurants.FindByQRCode(ctx, qrcodeID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.New(apperr.CodeNotFound, "no restaurant with qrcodeId %s", qrcodeID)
	}
	if err != nil {
		return nil, apperr.Internal(err, "failed to load restaurant")
	}
	cats, err := s.categories.ListByRestaurant(ctx, rest.ID)
	if err != nil {
		return nil, apperr.Internal(err, "failed to list categories")
	}
	items, err := s.items.ListByRestaurant(ctx, rest.ID, filter)
	if err != nil {
		return nil, apperr.Internal(err, "failed to list items")
	}

	byCategory := make(map[uint][]models.Item, len(cats))
	for _, item := range items {
		byCategory[item.CategoryID] = append(byCategory[item.CategoryID], item)
	}
	menu := &Menu{Restaurant: rest, Categories: []MenuCategory{}, Count: len(items)}
	for _, cat := range cats {
		catItems := byCategory[cat.ID]
		if filter != "" && len(catItems) == 0 {
			continue
		}
		if catItems == nil {
			catItems = []models.Item{}
		}
		menu.Categories = append(menu.Categories, MenuCategory{Category: cat, Items: catItems})
	}
	return menu, nil
}
