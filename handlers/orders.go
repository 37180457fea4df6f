package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"food-delivery-api/middleware"
	"food-delivery-api/models"
	"food-delivery-api/services"
)

type OrderHandler struct {
	orders *services.OrderService
}

func NewOrderHandler(orders *services.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type CreateOrderRequest struct {
	CustomerID      uint                      `json:"customer_id" binding:"required"`
	RestaurantID    uint                      `json:"restaurant_id" binding:"required"`
	DeliveryAddress string                    `json:"delivery_address" binding:"required"`
	Items           []services.OrderLineInput `json:"items"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type OrderItemResponse struct {
	MenuItemID   uint            `json:"menu_item_id"`
	MenuItemName string          `json:"menu_item_name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
}

type OrderResponse struct {
	ID              uint                `json:"id"`
	CustomerID      uint                `json:"customer_id"`
	RestaurantID    uint                `json:"restaurant_id"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	Status          string              `json:"status"`
	PaymentStatus   string              `json:"payment_status"`
	DeliveryAddress string              `json:"delivery_address"`
	OrderDate       time.Time           `json:"order_date"`
	Items           []OrderItemResponse `json:"items"`
}

func toOrderResponse(o models.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			MenuItemID:   it.MenuItemID,
			MenuItemName: it.MenuItem.Name,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
		})
	}
	return OrderResponse{
		ID:              o.ID,
		CustomerID:      o.CustomerID,
		RestaurantID:    o.RestaurantID,
		TotalAmount:     o.TotalAmount,
		Status:          o.Status,
		PaymentStatus:   o.PaymentStatus,
		DeliveryAddress: o.DeliveryAddress,
		OrderDate:       o.CreatedAt,
		Items:           items,
	}
}

func toOrderResponses(orders []models.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out
}

// Create places a new order.
func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	order, err := h.orders.Create(services.CreateOrderInput{
		CustomerID:      req.CustomerID,
		RestaurantID:    req.RestaurantID,
		DeliveryAddress: req.DeliveryAddress,
		Items:           req.Items,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// Get returns one order; customers may only read their own.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	order, err := h.orders.GetByID(id, middleware.GetUserID(c), middleware.GetRole(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// GetCustomerOrders lists a customer's orders, newest first.
func (h *OrderHandler) GetCustomerOrders(c *gin.Context) {
	customerID, ok := parseID(c, "customerId")
	if !ok {
		return
	}
	orders, err := h.orders.GetCustomerOrders(customerID, middleware.GetUserID(c), middleware.GetRole(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetAll lists every order (admin only, enforced at the route).
func (h *OrderHandler) GetAll(c *gin.Context) {
	orders, err := h.orders.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// UpdateStatus sets an order's status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	order, err := h.orders.UpdateStatus(id, req.Status, middleware.GetUserID(c), middleware.GetRole(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Order status updated successfully",
		"orderId":   order.ID,
		"newStatus": order.Status,
	})
}
