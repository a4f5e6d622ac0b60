package models

import "time"

type Restaurant struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Image     string    `json:"image"`
	Address   string    `json:"address" gorm:"size:200;not null"`
	Contact   string    `json:"contact" gorm:"uniqueIndex;not null"`
	OwnerID   uint      `json:"ownerId" gorm:"not null;index"`
	Owner     *Admin    `json:"-" gorm:"foreignKey:OwnerID"`
	QRCodeID  string    `json:"qrcodeId" gorm:"column:qrcode_id;uniqueIndex;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// VegType marks an item as vegetarian or not.
type VegType string

const (
	Veg    VegType = "veg"
	NonVeg VegType = "non-veg"
)

// Category names are stored normalized and are unique per restaurant.
type Category struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null;uniqueIndex:idx_category_restaurant_name,priority:2"`
	Description  string    `json:"description" gorm:"size:300"`
	Image        string    `json:"image"`
	RestaurantID uint      `json:"restaurantId" gorm:"not null;uniqueIndex:idx_category_restaurant_name,priority:1"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Item names are stored normalized and are unique per (restaurant, category).
type Item struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null;uniqueIndex:idx_item_scope_name,priority:3"`
	Description  string    `json:"description" gorm:"size:300"`
	Price        float64   `json:"price" gorm:"not null"`
	Image        string    `json:"image"`
	VegType      VegType   `json:"vegType" gorm:"not null"`
	RestaurantID uint      `json:"restaurantId" gorm:"not null;uniqueIndex:idx_item_scope_name,priority:1"`
	CategoryID   uint      `json:"categoryId" gorm:"not null;index;uniqueIndex:idx_item_scope_name,priority:2"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
