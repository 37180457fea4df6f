package services

import "food-delivery-api/models"

// Authorized is the single ownership rule applied across the catalog and
// order services: Admin may act on anything, any other role only on a
// resource it owns. ownerID is the resource's owning user (restaurant owner
// for restaurants and menu items, customer for orders).
func Authorized(role models.UserRole, requesterID, ownerID uint) bool {
	if role == models.RoleAdmin {
		return true
	}
	return requesterID == ownerID
}
