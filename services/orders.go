package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"food-delivery-api/models"
)

// OrderService validates order requests against the catalog, snapshots
// prices, and persists orders atomically.
type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

type OrderLineInput struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
	Quantity   int  `json:"quantity"`
}

type CreateOrderInput struct {
	CustomerID      uint
	RestaurantID    uint
	DeliveryAddress string
	Items           []OrderLineInput
}

// Create validates every referenced entity, captures each line's unit price,
// and persists the order with all its items as one transaction. A failed
// validation leaves no rows behind.
func (s *OrderService) Create(in CreateOrderInput) (*models.Order, error) {
	var customer models.User
	if err := s.db.First(&customer, in.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	var restaurant models.Restaurant
	if err := s.db.First(&restaurant, in.RestaurantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	var items []models.OrderItem
	total := decimal.Zero
	for _, line := range in.Items {
		var menuItem models.MenuItem
		err := s.db.
			Where("id = ? AND restaurant_id = ?", line.MenuItemID, in.RestaurantID).
			First(&menuItem).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: menu item %d not found in this restaurant", ErrMenuItemNotFound, line.MenuItemID)
			}
			return nil, err
		}

		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity for item %s must be greater than 0", ErrInvalidQuantity, menuItem.Name)
		}

		total = total.Add(menuItem.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		items = append(items, models.OrderItem{
			MenuItemID: menuItem.ID,
			Quantity:   line.Quantity,
			UnitPrice:  menuItem.Price,
		})
	}

	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	order := models.Order{
		CustomerID:      in.CustomerID,
		RestaurantID:    in.RestaurantID,
		TotalAmount:     total,
		Status:          models.StatusPending,
		PaymentStatus:   models.PaymentUnpaid,
		DeliveryAddress: in.DeliveryAddress,
		Items:           items,
	}

	// Create writes the order and all items inside one transaction; a
	// partial order is never persisted.
	if err := s.db.Create(&order).Error; err != nil {
		return nil, err
	}

	if err := s.db.Preload("Items.MenuItem").First(&order, order.ID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// GetByID returns an order. A customer may only read their own orders;
// admins read anything.
func (s *OrderService) GetByID(id uint, requesterID uint, role models.UserRole) (*models.Order, error) {
	var order models.Order
	err := s.db.Preload("Items.MenuItem").First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if !Authorized(role, requesterID, order.CustomerID) {
		return nil, ErrForbidden
	}
	return &order, nil
}

// GetCustomerOrders lists a customer's orders, newest first.
func (s *OrderService) GetCustomerOrders(customerID uint, requesterID uint, role models.UserRole) ([]models.Order, error) {
	if !Authorized(role, requesterID, customerID) {
		return nil, ErrForbidden
	}

	var orders []models.Order
	err := s.db.Preload("Items.MenuItem").
		Where("customer_id = ?", customerID).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

// GetAll lists every order, newest first. The route restricts this to admins.
func (s *OrderService) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Items.MenuItem").
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

// UpdateStatus sets an order's status. Admin may update any order; a
// restaurant owner only when they own the order's restaurant. Status values
// carry no transition graph: any string an authorized actor sends is
// accepted.
func (s *OrderService) UpdateStatus(id uint, status string, requesterID uint, role models.UserRole) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if role != models.RoleAdmin {
		var restaurant models.Restaurant
		err := s.db.
			Where("id = ? AND owner_id = ?", order.RestaurantID, requesterID).
			First(&restaurant).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrForbidden
			}
			return nil, err
		}
	}

	now := time.Now().UTC()
	order.Status = status
	order.UpdatedAt = &now
	if err := s.db.Save(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
