package repository

import (
	"context"

	"restaurant-management-api/models"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) Create(ctx context.Context, rest *models.Restaurant) error {
	return translate(r.DB.WithContext(ctx).Create(rest).Error)
}

func (r *RestaurantRepository) FindByID(ctx context.Context, id uint) (*models.Restaurant, error) {
	var rest models.Restaurant
	if err := r.DB.WithContext(ctx).First(&rest, id).Error; err != nil {
		return nil, translate(err)
	}
	return &rest, nil
}

func (r *RestaurantRepository) FindByQRCode(ctx context.Context, qrcodeID string) (*models.Restaurant, error) {
	var rest models.Restaurant
	if err := r.DB.WithContext(ctx).Where("qrcode_id = ?", qrcodeID).First(&rest).Error; err != nil {
		return nil, translate(err)
	}
	return &rest, nil
}

// ListByOwner returns the owner's restaurants, oldest first.
func (r *RestaurantRepository) ListByOwner(ctx context.Context, ownerID uint) ([]models.Restaurant, error) {
	rests := []models.Restaurant{}
	err := r.DB.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id asc").Find(&rests).Error
	return rests, translate(err)
}

// ContactTaken reports whether another restaurant (not excludeID) uses contact.
func (r *RestaurantRepository) ContactTaken(ctx context.Context, contact string, excludeID uint) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.Restaurant{}).
		Where("contact = ? AND id <> ?", contact, excludeID).
		Count(&count).Error
	return count > 0, translate(err)
}

// QRCodeTaken reports whether any restaurant already uses qrcodeID.
func (r *RestaurantRepository) QRCodeTaken(ctx context.Context, qrcodeID string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.Restaurant{}).
		Where("qrcode_id = ?", qrcodeID).
		Count(&count).Error
	return count > 0, translate(err)
}

// Update writes the mutable columns. owner_id and qrcode_id are never touched.
func (r *RestaurantRepository) Update(ctx context.Context, rest *models.Restaurant) error {
	return translate(r.DB.WithContext(ctx).Model(rest).
		Select("name", "image", "address", "contact", "updated_at").
		Updates(rest).Error)
}
