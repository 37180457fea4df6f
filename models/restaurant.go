package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Restaurant struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"not null"`
	OwnerID     uint       `json:"owner_id" gorm:"not null"`
	Owner       User       `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Description string     `json:"description"`
	CuisineType string     `json:"cuisine_type"`
	Address     string     `json:"address"`
	PhoneNumber string     `json:"phone_number"`
	Rating      float64    `json:"rating" gorm:"default:0"`
	IsActive    bool       `json:"is_active" gorm:"default:true"`
	MenuItems   []MenuItem `json:"menu_items,omitempty" gorm:"foreignKey:RestaurantID"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty" gorm:"autoUpdateTime:false"`
}

type MenuItem struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	RestaurantID uint            `json:"restaurant_id" gorm:"not null"`
	Name         string          `json:"name" gorm:"not null"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Category     string          `json:"category"`
	IsAvailable  bool            `json:"is_available" gorm:"default:true"`
	CreatedAt    time.Time       `json:"created_at"`
}
