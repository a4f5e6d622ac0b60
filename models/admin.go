package models

import "time"

// Role is the principal kind encoded in session tokens.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleChef   Role = "chef"
	RoleWaiter Role = "waiter"
)

// StaffRoles lists the roles a ChefWaiter may hold.
var StaffRoles = []Role{RoleChef, RoleWaiter}

type Admin struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:100;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         Role      `json:"role" gorm:"not null;default:'admin'"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
