// Package services holds the application logic for every resource: input
// validation, name normalization, uniqueness and ownership checks, and
// repository calls. Handlers only translate HTTP to and from these calls.
package services

import (
	"context"
	"errors"

	"restaurant-management-api/apperr"
	"restaurant-management-api/auth"
	"restaurant-management-api/models"
	"restaurant-management-api/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Services bundles one service per resource.
type Services struct {
	Admins      *AdminService
	Restaurants *RestaurantService
	Categories  *CategoryService
	Items       *ItemService
	Staff       *ChefWaiterService
	Menus       *MenuService
}

func New(db *gorm.DB, creds *auth.Credentials, log *zap.Logger) *Services {
	admins := repository.NewAdminRepository(db)
	restaurants := repository.NewRestaurantRepository(db)
	staff := repository.NewChefWaiterRepository(db)
	categories := repository.NewCategoryRepository(db)
	items := repository.NewItemRepository(db)

	return &Services{
		Admins:      NewAdminService(admins, restaurants, staff, creds, log),
		Restaurants: NewRestaurantService(restaurants, log),
		Categories:  NewCategoryService(categories, items, restaurants, log),
		Items:       NewItemService(items, categories, restaurants, log),
		Staff:       NewChefWaiterService(staff, creds, log),
		Menus:       NewMenuService(restaurants, categories, items),
	}
}

// ownedRestaurant loads a restaurant and checks the admin owns it. missing
// is the code reported when the id does not resolve.
func ownedRestaurant(ctx context.Context, repo *repository.RestaurantRepository, admin *models.Admin, id uint, missing apperr.Code) (*models.Restaurant, error) {
	rest, err := repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.New(missing, "restaurant %d not found", id)
	}
	if err != nil {
		return nil, apperr.Internal(err, "failed to load restaurant")
	}
	if rest.OwnerID != admin.ID {
		return nil, apperr.New(apperr.CodeForbidden, "restaurant %d belongs to another admin", id)
	}
	return rest, nil
}

// lookupError maps a repository read failure onto the given not-found code.
func lookupError(err error, code apperr.Code, what string, id uint) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.New(code, "%s %d not found", what, id)
	}
	return apperr.Internal(err, "failed to load "+what)
}
