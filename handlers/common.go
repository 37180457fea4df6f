package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"food-delivery-api/services"
)

// respondError maps a service error onto the HTTP taxonomy. Unexpected
// errors become a generic 500; their detail belongs in the logs, not the
// response.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrDuplicateEmail),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrInvalidOwner),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrEmptyOrder):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrCustomerNotFound),
		errors.Is(err, services.ErrRestaurantNotFound),
		errors.Is(err, services.ErrMenuItemNotFound),
		errors.Is(err, services.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, services.ErrRegistrationFailed):
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}

// parseID parses a numeric path parameter, writing a 400 on failure.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid " + name + " parameter"})
		return 0, false
	}
	return uint(id), true
}
