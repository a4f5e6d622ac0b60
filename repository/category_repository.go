package repository

import (
	"context"

	"restaurant-management-api/models"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) Create(ctx context.Context, cat *models.Category) error {
	return translate(r.DB.WithContext(ctx).Create(cat).Error)
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uint) (*models.Category, error) {
	var cat models.Category
	if err := r.DB.WithContext(ctx).First(&cat, id).Error; err != nil {
		return nil, translate(err)
	}
	return &cat, nil
}

func (r *CategoryRepository) ListByRestaurant(ctx context.Context, restaurantID uint) ([]models.Category, error) {
	cats := []models.Category{}
	err := r.DB.WithContext(ctx).Where("restaurant_id = ?", restaurantID).Order("id asc").Find(&cats).Error
	return cats, translate(err)
}

// NameTaken checks the normalized name against the restaurant's other categories.
func (r *CategoryRepository) NameTaken(ctx context.Context, restaurantID uint, name string, excludeID uint) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.Category{}).
		Where("restaurant_id = ? AND name = ? AND id <> ?", restaurantID, name, excludeID).
		Count(&count).Error
	return count > 0, translate(err)
}

func (r *CategoryRepository) Save(ctx context.Context, cat *models.Category) error {
	return translate(r.DB.WithContext(ctx).Save(cat).Error)
}

func (r *CategoryRepository) Delete(ctx context.Context, id uint) (*models.Category, error) {
	var cat models.Category
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&cat, id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Category{}, id).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &cat, nil
}
