package repository

import (
	"context"

	"restaurant-management-api/models"

	"gorm.io/gorm"
)

const passwordColumn = "password_hash"

type ChefWaiterRepository struct {
	DB *gorm.DB
}

func NewChefWaiterRepository(db *gorm.DB) *ChefWaiterRepository {
	return &ChefWaiterRepository{DB: db}
}

func (r *ChefWaiterRepository) Create(ctx context.Context, cw *models.ChefWaiter) error {
	return translate(r.DB.WithContext(ctx).Create(cw).Error)
}

// FindByID loads a staff member without the password digest.
func (r *ChefWaiterRepository) FindByID(ctx context.Context, id uint) (*models.ChefWaiter, error) {
	var cw models.ChefWaiter
	if err := r.DB.WithContext(ctx).Omit(passwordColumn).First(&cw, id).Error; err != nil {
		return nil, translate(err)
	}
	return &cw, nil
}

// FindByEmailWithPassword is the only read that includes the digest.
func (r *ChefWaiterRepository) FindByEmailWithPassword(ctx context.Context, email string) (*models.ChefWaiter, error) {
	var cw models.ChefWaiter
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&cw).Error; err != nil {
		return nil, translate(err)
	}
	return &cw, nil
}

func (r *ChefWaiterRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.ChefWaiter{}).Where("email = ?", email).Count(&count).Error
	return count > 0, translate(err)
}

// Delete removes the staff member and returns what was removed.
func (r *ChefWaiterRepository) Delete(ctx context.Context, id uint) (*models.ChefWaiter, error) {
	var cw models.ChefWaiter
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(passwordColumn).First(&cw, id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ChefWaiter{}, id).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &cw, nil
}
