package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"food-delivery-api/config"
	"food-delivery-api/handlers"
	"food-delivery-api/models"
	"food-delivery-api/services"
)

func setupApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	))

	issuer, err := services.NewTokenIssuer(config.JWTConfig{
		Secret:     "routes-test-secret",
		Issuer:     "FoodDeliveryAPI",
		Audience:   "FoodDeliveryClient",
		ExpireDays: 1,
	})
	require.NoError(t, err)

	log := zap.NewNop()
	catalog := services.NewCatalogService(db)

	r := gin.New()
	SetupRoutes(
		r,
		issuer,
		handlers.NewAuthHandler(services.NewAuthService(db, log), issuer),
		handlers.NewRestaurantHandler(catalog),
		handlers.NewMenuItemHandler(catalog),
		handlers.NewOrderHandler(services.NewOrderService(db)),
	)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if w.Body.Len() > 0 && json.Valid(w.Body.Bytes()) {
		// Array responses stay unparsed; callers decode those themselves.
		_ = json.Unmarshal(w.Body.Bytes(), &parsed)
	}
	return w, parsed
}

func registerUser(t *testing.T, r *gin.Engine, username, email string, role models.UserRole) (uint, string) {
	t.Helper()
	w, resp := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": username,
		"email":    email,
		"password": "password123",
		"role":     role,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	user := resp["user"].(map[string]interface{})
	return uint(user["id"].(float64)), resp["token"].(string)
}

func TestAuthEndpoints(t *testing.T) {
	r := setupApp(t)

	_, token := registerUser(t, r, "alice", "alice@example.com", models.RoleCustomer)
	assert.NotEmpty(t, token)

	t.Run("duplicate email", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
			"username": "alice2", "email": "alice@example.com", "password": "password123", "role": "Customer",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid role", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
			"username": "eve", "email": "eve@example.com", "password": "password123", "role": "SuperAdmin",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("login", func(t *testing.T) {
		w, resp := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
			"email": "alice@example.com", "password": "password123",
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, resp["token"])
	})

	t.Run("login wrong password", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
			"email": "alice@example.com", "password": "wrongpass1",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("protected route without token", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodPost, "/api/orders", "", gin.H{})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestOrderFlow(t *testing.T) {
	r := setupApp(t)

	ownerID, ownerToken := registerUser(t, r, "owner", "owner@example.com", models.RoleRestaurantOwner)
	_, rivalToken := registerUser(t, r, "rival", "rival@example.com", models.RoleRestaurantOwner)
	customerID, customerToken := registerUser(t, r, "cust", "cust@example.com", models.RoleCustomer)
	_, strangerToken := registerUser(t, r, "stranger", "stranger@example.com", models.RoleCustomer)
	_, adminToken := registerUser(t, r, "admin", "admin@example.com", models.RoleAdmin)

	// Customers cannot create restaurants.
	w, _ := doJSON(t, r, http.MethodPost, "/api/restaurants", customerToken, gin.H{
		"name": "Nope", "owner_id": customerID,
	})
	require.Equal(t, http.StatusForbidden, w.Code)

	w, resp := doJSON(t, r, http.MethodPost, "/api/restaurants", ownerToken, gin.H{
		"name": "Luigi's", "owner_id": ownerID, "address": "1 Test St",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	restaurantID := uint(resp["id"].(float64))

	w, resp = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/restaurants/%d/menuitems", restaurantID), ownerToken, gin.H{
		"name": "Margherita", "price": "9.99",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	itemID := uint(resp["id"].(float64))

	// Item lookup is scoped to its declared restaurant.
	w, _ = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/restaurants/%d/menuitems/%d", restaurantID+1, itemID), customerToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, resp = doJSON(t, r, http.MethodPost, "/api/orders", customerToken, gin.H{
		"customer_id":      customerID,
		"restaurant_id":    restaurantID,
		"delivery_address": "2 Home Ave",
		"items":            []gin.H{{"menu_item_id": itemID, "quantity": 2}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	orderID := uint(resp["id"].(float64))
	assert.Equal(t, "Pending", resp["status"])
	assert.Equal(t, "Unpaid", resp["payment_status"])

	orderPath := fmt.Sprintf("/api/orders/%d", orderID)

	// Forbidden is distinct from not-found: the order exists, access is denied.
	w, _ = doJSON(t, r, http.MethodGet, orderPath, strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = doJSON(t, r, http.MethodGet, orderPath, customerToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// GetAll is admin-only.
	w, _ = doJSON(t, r, http.MethodGet, "/api/orders", customerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w, _ = doJSON(t, r, http.MethodGet, "/api/orders", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Status updates: only the owning restaurant's owner or an admin.
	statusPath := orderPath + "/status"
	w, _ = doJSON(t, r, http.MethodPut, statusPath, rivalToken, gin.H{"status": "Confirmed"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	w, _ = doJSON(t, r, http.MethodPut, statusPath, ownerToken, gin.H{"status": "Confirmed"})
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = doJSON(t, r, http.MethodPut, statusPath, adminToken, gin.H{"status": "Delivered"})
	assert.Equal(t, http.StatusOK, w.Code)

	// Soft-deleting the restaurant hides it from the public list.
	w, _ = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/restaurants/%d", restaurantID), ownerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w, _ = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/restaurants/%d", restaurantID), adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var restaurants []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &restaurants))
	assert.Empty(t, restaurants)

	// The order is still readable against the deactivated restaurant.
	w, _ = doJSON(t, r, http.MethodGet, orderPath, adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
