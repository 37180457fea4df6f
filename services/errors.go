package services

import "errors"

var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidRole        = errors.New("invalid role, valid roles: Customer, RestaurantOwner, Admin")
	ErrRegistrationFailed = errors.New("an error occurred during registration")

	ErrUserNotFound       = errors.New("user not found")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrCustomerNotFound   = errors.New("customer not found")

	ErrInvalidOwner    = errors.New("invalid owner ID or owner is not a restaurant owner")
	ErrInvalidQuantity = errors.New("quantity must be greater than 0")
	ErrEmptyOrder      = errors.New("order must contain at least one item")

	// ErrForbidden means the caller is authenticated but not entitled,
	// distinct from not-found: the resource's existence is revealed.
	ErrForbidden = errors.New("access denied")
)
