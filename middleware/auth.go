package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"food-delivery-api/models"
	"food-delivery-api/services"
)

const (
	ctxUserID = "userID"
	ctxEmail  = "email"
	ctxRole   = "role"
)

// AuthRequired validates the bearer token and injects its claims into the
// request context.
func AuthRequired(issuer *services.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}

		claims, err := issuer.Parse(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxEmail, claims.Email)
		c.Set(ctxRole, string(claims.Role))
		c.Next()
	}
}

// RoleRequired enforces that the caller has one of the allowed roles.
func RoleRequired(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerRole := GetRole(c)
		for _, r := range roles {
			if callerRole == r {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
		c.Abort()
	}
}

// GetUserID extracts the caller's user id from context.
func GetUserID(c *gin.Context) uint {
	val, _ := c.Get(ctxUserID)
	id, _ := val.(uint)
	return id
}

// GetRole extracts the caller's role from context.
func GetRole(c *gin.Context) models.UserRole {
	val, _ := c.Get(ctxRole)
	role, _ := val.(string)
	return models.UserRole(role)
}
