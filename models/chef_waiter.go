package models

import "time"

// ChefWaiter is a staff account created by an admin for one restaurant.
// PasswordHash is left out of default reads; repositories load it only
// for credential checks.
type ChefWaiter struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:100;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         Role      `json:"role" gorm:"not null"`
	RestaurantID uint      `json:"restaurantId" gorm:"not null;index"`
	AdminID      uint      `json:"adminId" gorm:"not null;index"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
