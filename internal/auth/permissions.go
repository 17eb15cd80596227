package auth

import (
	"k9hope_backend/internal/models"
)

// RoleAllowed reports whether role is one of allowed. An empty allowed
// list means any authenticated user.
func RoleAllowed(role models.UserRole, allowed ...models.UserRole) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// CanManageRequests reports whether the role may create or close blood
// requests.
func CanManageRequests(role models.UserRole) bool {
	return role == models.UserRolePatient || role == models.UserRoleVeterinary ||
		role == models.UserRoleOrganisation || role == models.UserRoleAdmin
}

// CanDonate reports whether the role represents a donor account.
func CanDonate(role models.UserRole) bool {
	return role == models.UserRoleDonor
}
