package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"food-delivery-api/middleware"
	"food-delivery-api/services"
)

type RestaurantHandler struct {
	catalog *services.CatalogService
}

func NewRestaurantHandler(catalog *services.CatalogService) *RestaurantHandler {
	return &RestaurantHandler{catalog: catalog}
}

type CreateRestaurantRequest struct {
	Name        string `json:"name" binding:"required"`
	OwnerID     uint   `json:"owner_id" binding:"required"`
	Description string `json:"description"`
	CuisineType string `json:"cuisine_type"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
}

// List returns active restaurants with their available menu items (public).
func (h *RestaurantHandler) List(c *gin.Context) {
	restaurants, err := h.catalog.ListRestaurants()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// Get returns a single active restaurant (public).
func (h *RestaurantHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	restaurant, err := h.catalog.GetRestaurant(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// Create registers a restaurant for an existing restaurant-owner user.
func (h *RestaurantHandler) Create(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	restaurant, err := h.catalog.CreateRestaurant(services.CreateRestaurantInput{
		Name:        req.Name,
		OwnerID:     req.OwnerID,
		Description: req.Description,
		CuisineType: req.CuisineType,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, restaurant)
}

// Update applies a partial update; fields absent from the request keep
// their stored values.
func (h *RestaurantHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var upd services.RestaurantUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if _, err := h.catalog.UpdateRestaurant(id, upd, middleware.GetUserID(c), middleware.GetRole(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant updated successfully"})
}

// Delete deactivates a restaurant (admin only, enforced at the route).
func (h *RestaurantHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.catalog.DeleteRestaurant(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant deactivated successfully"})
}
