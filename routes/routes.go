package routes

import (
	"github.com/gin-gonic/gin"

	"food-delivery-api/handlers"
	"food-delivery-api/middleware"
	"food-delivery-api/models"
	"food-delivery-api/services"
)

// SetupRoutes wires the full HTTP surface onto the engine.
func SetupRoutes(
	r *gin.Engine,
	issuer *services.TokenIssuer,
	auth *handlers.AuthHandler,
	restaurants *handlers.RestaurantHandler,
	menuItems *handlers.MenuItemHandler,
	orders *handlers.OrderHandler,
) {
	api := r.Group("/api")

	// ── Public routes ──────────────────────────────────────────────
	api.POST("/auth/register", auth.Register)
	api.POST("/auth/login", auth.Login)

	api.GET("/restaurants", restaurants.List)
	api.GET("/restaurants/:id", restaurants.Get)

	// ── Restaurant management ──────────────────────────────────────
	rest := api.Group("/restaurants")
	rest.Use(middleware.AuthRequired(issuer))
	{
		rest.POST("", middleware.RoleRequired(models.RoleRestaurantOwner, models.RoleAdmin), restaurants.Create)
		rest.PUT("/:id", middleware.RoleRequired(models.RoleRestaurantOwner, models.RoleAdmin), restaurants.Update)
		rest.DELETE("/:id", middleware.RoleRequired(models.RoleAdmin), restaurants.Delete)

		// Menu items, nested under their restaurant
		menu := rest.Group("/:id/menuitems")
		{
			menu.GET("", menuItems.List)
			menu.GET("/:itemId", menuItems.Get)

			ownerOnly := middleware.RoleRequired(models.RoleRestaurantOwner, models.RoleAdmin)
			menu.POST("", ownerOnly, menuItems.Create)
			menu.PUT("/:itemId", ownerOnly, menuItems.Update)
			menu.DELETE("/:itemId", ownerOnly, menuItems.Delete)
		}
	}

	// ── Orders ─────────────────────────────────────────────────────
	ord := api.Group("/orders")
	ord.Use(middleware.AuthRequired(issuer))
	{
		ord.POST("", orders.Create)
		ord.GET("/:id", orders.Get)
		ord.GET("/customer/:customerId", middleware.RoleRequired(models.RoleCustomer, models.RoleAdmin), orders.GetCustomerOrders)
		ord.GET("", middleware.RoleRequired(models.RoleAdmin), orders.GetAll)
		ord.PUT("/:id/status", middleware.RoleRequired(models.RoleAdmin, models.RoleRestaurantOwner), orders.UpdateStatus)
	}
}
