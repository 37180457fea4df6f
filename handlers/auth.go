package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"food-delivery-api/models"
	"food-delivery-api/services"
)

type AuthHandler struct {
	auth   *services.AuthService
	issuer *services.TokenIssuer
}

func NewAuthHandler(auth *services.AuthService, issuer *services.TokenIssuer) *AuthHandler {
	return &AuthHandler{auth: auth, issuer: issuer}
}

type RegisterRequest struct {
	Username string          `json:"username" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=6"`
	Role     models.UserRole `json:"role" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func userPayload(user *models.User) gin.H {
	return gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"role":     user.Role,
	}
}

// Register creates a new account and returns it with a session token.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := h.auth.Register(req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.issuer.Issue(user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Registration successful",
		"user":    userPayload(user),
		"token":   token,
	})
}

// Login validates credentials and returns a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := h.auth.ValidateCredentials(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	token, err := h.issuer.Issue(user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    userPayload(user),
		"token":   token,
	})
}
