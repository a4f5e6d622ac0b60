package repository

import (
	"context"

	"restaurant-management-api/models"

	"gorm.io/gorm"
)

type ItemRepository struct {
	DB *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{DB: db}
}

func (r *ItemRepository) Create(ctx context.Context, item *models.Item) error {
	return translate(r.DB.WithContext(ctx).Create(item).Error)
}

func (r *ItemRepository) FindByID(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	if err := r.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *ItemRepository) ListByCategory(ctx context.Context, categoryID uint) ([]models.Item, error) {
	items := []models.Item{}
	err := r.DB.WithContext(ctx).Where("category_id = ?", categoryID).Order("id asc").Find(&items).Error
	return items, translate(err)
}

// ListByRestaurant returns a restaurant's items, optionally only one vegType.
func (r *ItemRepository) ListByRestaurant(ctx context.Context, restaurantID uint, vegType models.VegType) ([]models.Item, error) {
	items := []models.Item{}
	query := r.DB.WithContext(ctx).Where("restaurant_id = ?", restaurantID)
	if vegType != "" {
		query = query.Where("veg_type = ?", vegType)
	}
	err := query.Order("category_id asc, id asc").Find(&items).Error
	return items, translate(err)
}

func (r *ItemRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.Item{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, translate(err)
}

// NameTaken checks the normalized name within one (restaurant, category) scope.
func (r *ItemRepository) NameTaken(ctx context.Context, restaurantID, categoryID uint, name string, excludeID uint) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.Item{}).
		Where("restaurant_id = ? AND category_id = ? AND name = ? AND id <> ?", restaurantID, categoryID, name, excludeID).
		Count(&count).Error
	return count > 0, translate(err)
}

func (r *ItemRepository) Save(ctx context.Context, item *models.Item) error {
	return translate(r.DB.WithContext(ctx).Save(item).Error)
}

func (r *ItemRepository) Delete(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Item{}, id).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &item, nil
}
