package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"food-delivery-api/models"
)

// CatalogService manages restaurants and their menu items. Deletes are soft:
// restaurants are deactivated, menu items made unavailable. Rows referenced
// by order history are never removed.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

type CreateRestaurantInput struct {
	Name        string
	OwnerID     uint
	Description string
	CuisineType string
	Address     string
	PhoneNumber string
}

// RestaurantUpdate carries partial-update semantics: nil fields leave the
// stored value untouched.
type RestaurantUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	CuisineType *string `json:"cuisine_type"`
	Address     *string `json:"address"`
	PhoneNumber *string `json:"phone_number"`
	IsActive    *bool   `json:"is_active"`
}

type CreateMenuItemInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
}

type MenuItemUpdate struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category"`
	IsAvailable *bool            `json:"is_available"`
}

// ListRestaurants returns active restaurants with their available menu items.
func (s *CatalogService) ListRestaurants() ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	err := s.db.
		Preload("MenuItems", "is_available = ?", true).
		Where("is_active = ?", true).
		Find(&restaurants).Error
	return restaurants, err
}

func (s *CatalogService) GetRestaurant(id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.
		Preload("MenuItems", "is_available = ?", true).
		Where("id = ? AND is_active = ?", id, true).
		First(&restaurant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return &restaurant, nil
}

// CreateRestaurant requires the owner to be an existing user whose role is
// exactly RestaurantOwner.
func (s *CatalogService) CreateRestaurant(in CreateRestaurantInput) (*models.Restaurant, error) {
	var owner models.User
	if err := s.db.First(&owner, in.OwnerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidOwner
		}
		return nil, err
	}
	if owner.Role != models.RoleRestaurantOwner {
		return nil, ErrInvalidOwner
	}

	restaurant := models.Restaurant{
		Name:        in.Name,
		OwnerID:     in.OwnerID,
		Description: in.Description,
		CuisineType: in.CuisineType,
		Address:     in.Address,
		PhoneNumber: in.PhoneNumber,
		IsActive:    true,
	}
	if err := s.db.Create(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (s *CatalogService) UpdateRestaurant(id uint, upd RestaurantUpdate, requesterID uint, role models.UserRole) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := s.db.First(&restaurant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}

	if !Authorized(role, requesterID, restaurant.OwnerID) {
		return nil, ErrForbidden
	}

	if upd.Name != nil {
		restaurant.Name = *upd.Name
	}
	if upd.Description != nil {
		restaurant.Description = *upd.Description
	}
	if upd.CuisineType != nil {
		restaurant.CuisineType = *upd.CuisineType
	}
	if upd.Address != nil {
		restaurant.Address = *upd.Address
	}
	if upd.PhoneNumber != nil {
		restaurant.PhoneNumber = *upd.PhoneNumber
	}
	if upd.IsActive != nil {
		restaurant.IsActive = *upd.IsActive
	}
	now := time.Now().UTC()
	restaurant.UpdatedAt = &now

	if err := s.db.Save(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// DeleteRestaurant deactivates a restaurant. The route restricts this to
// admins; the row survives for historical order references.
func (s *CatalogService) DeleteRestaurant(id uint) error {
	var restaurant models.Restaurant
	if err := s.db.First(&restaurant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRestaurantNotFound
		}
		return err
	}

	now := time.Now().UTC()
	restaurant.IsActive = false
	restaurant.UpdatedAt = &now
	return s.db.Save(&restaurant).Error
}

// ListMenuItems returns the available items of a restaurant.
func (s *CatalogService) ListMenuItems(restaurantID uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := s.db.
		Where("restaurant_id = ? AND is_available = ?", restaurantID, true).
		Find(&items).Error
	return items, err
}

// GetMenuItem is scoped to the declared parent restaurant: an item that
// exists under a different restaurant is not-found, never a cross-restaurant
// lookup.
func (s *CatalogService) GetMenuItem(restaurantID, id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := s.db.
		Where("id = ? AND restaurant_id = ? AND is_available = ?", id, restaurantID, true).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (s *CatalogService) CreateMenuItem(restaurantID uint, in CreateMenuItemInput, requesterID uint, role models.UserRole) (*models.MenuItem, error) {
	restaurant, err := s.restaurantForAuth(restaurantID)
	if err != nil {
		return nil, err
	}
	if !Authorized(role, requesterID, restaurant.OwnerID) {
		return nil, ErrForbidden
	}

	item := models.MenuItem{
		RestaurantID: restaurantID,
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		Category:     in.Category,
		IsAvailable:  true,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *CatalogService) UpdateMenuItem(restaurantID, id uint, upd MenuItemUpdate, requesterID uint, role models.UserRole) (*models.MenuItem, error) {
	item, restaurant, err := s.menuItemForAuth(restaurantID, id)
	if err != nil {
		return nil, err
	}
	if !Authorized(role, requesterID, restaurant.OwnerID) {
		return nil, ErrForbidden
	}

	if upd.Name != nil {
		item.Name = *upd.Name
	}
	if upd.Description != nil {
		item.Description = *upd.Description
	}
	if upd.Price != nil {
		item.Price = *upd.Price
	}
	if upd.Category != nil {
		item.Category = *upd.Category
	}
	if upd.IsAvailable != nil {
		item.IsAvailable = *upd.IsAvailable
	}

	if err := s.db.Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteMenuItem marks an item unavailable.
func (s *CatalogService) DeleteMenuItem(restaurantID, id uint, requesterID uint, role models.UserRole) error {
	item, restaurant, err := s.menuItemForAuth(restaurantID, id)
	if err != nil {
		return err
	}
	if !Authorized(role, requesterID, restaurant.OwnerID) {
		return ErrForbidden
	}

	item.IsAvailable = false
	return s.db.Save(item).Error
}

func (s *CatalogService) restaurantForAuth(restaurantID uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := s.db.First(&restaurant, restaurantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return &restaurant, nil
}

// menuItemForAuth resolves an item under its declared restaurant together
// with the restaurant row carrying the owner id for the policy check. The
// lookup does not filter on availability so an unavailable item can still be
// edited or re-enabled.
func (s *CatalogService) menuItemForAuth(restaurantID, id uint) (*models.MenuItem, *models.Restaurant, error) {
	var item models.MenuItem
	err := s.db.Where("id = ? AND restaurant_id = ?", id, restaurantID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrMenuItemNotFound
		}
		return nil, nil, err
	}

	restaurant, err := s.restaurantForAuth(restaurantID)
	if err != nil {
		return nil, nil, err
	}
	return &item, restaurant, nil
}
