package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"food-delivery-api/middleware"
	"food-delivery-api/services"
)

type MenuItemHandler struct {
	catalog *services.CatalogService
}

func NewMenuItemHandler(catalog *services.CatalogService) *MenuItemHandler {
	return &MenuItemHandler{catalog: catalog}
}

type CreateMenuItemRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Category    string          `json:"category"`
}

// List returns the available items of the path's restaurant.
func (h *MenuItemHandler) List(c *gin.Context) {
	restaurantID, ok := parseID(c, "id")
	if !ok {
		return
	}
	items, err := h.catalog.ListMenuItems(restaurantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Get returns one item, scoped to the path's restaurant.
func (h *MenuItemHandler) Get(c *gin.Context) {
	restaurantID, ok := parseID(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}
	item, err := h.catalog.GetMenuItem(restaurantID, itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create adds an item to the restaurant's menu.
func (h *MenuItemHandler) Create(c *gin.Context) {
	restaurantID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	item, err := h.catalog.CreateMenuItem(restaurantID, services.CreateMenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
	}, middleware.GetUserID(c), middleware.GetRole(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Update applies a partial update, including the availability flag.
func (h *MenuItemHandler) Update(c *gin.Context) {
	restaurantID, ok := parseID(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}

	var upd services.MenuItemUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if _, err := h.catalog.UpdateMenuItem(restaurantID, itemID, upd, middleware.GetUserID(c), middleware.GetRole(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated successfully"})
}

// Delete marks an item unavailable.
func (h *MenuItemHandler) Delete(c *gin.Context) {
	restaurantID, ok := parseID(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}

	if err := h.catalog.DeleteMenuItem(restaurantID, itemID, middleware.GetUserID(c), middleware.GetRole(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deactivated successfully"})
}
