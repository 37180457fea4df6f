package models

import "time"

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleCustomer        UserRole = "Customer"
	RoleRestaurantOwner UserRole = "RestaurantOwner"
	RoleAdmin           UserRole = "Admin"
)

// ValidRole reports whether a role is one of the three fixed values.
func ValidRole(role UserRole) bool {
	switch role {
	case RoleCustomer, RoleRestaurantOwner, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Username     string     `json:"username" gorm:"size:100;not null"`
	Email        string     `json:"email" gorm:"size:150;uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"not null"`
	Role         UserRole   `json:"role" gorm:"size:20;not null;default:'Customer'"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty" gorm:"autoUpdateTime:false"`
}
