package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusPending = "Pending"

	PaymentUnpaid = "Unpaid"
)

type Order struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	CustomerID      uint            `json:"customer_id" gorm:"not null"`
	Customer        User            `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	RestaurantID    uint            `json:"restaurant_id" gorm:"not null"`
	Restaurant      Restaurant      `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	TotalAmount     decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2)"`
	Status          string          `json:"status" gorm:"not null;default:'Pending'"`
	PaymentStatus   string          `json:"payment_status" gorm:"not null;default:'Unpaid'"`
	DeliveryAddress string          `json:"delivery_address" gorm:"not null"`
	Items           []OrderItem     `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       *time.Time      `json:"updated_at,omitempty" gorm:"autoUpdateTime:false"`
}

type OrderItem struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	OrderID    uint     `json:"order_id" gorm:"not null"`
	MenuItemID uint     `json:"menu_item_id" gorm:"not null"`
	MenuItem   MenuItem `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int      `json:"quantity" gorm:"not null"`
	// UnitPrice is the menu price captured when the order was placed,
	// decoupled from later menu price edits.
	UnitPrice decimal.Decimal `json:"unit_price" gorm:"type:decimal(10,2);not null"`
}
