package rbac

import "strings"

// Role represents a marketplace access tier. A principal holds exactly one role.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleCustomer  Role = "cliente"
	RoleStore     Role = "tienda"
	RoleCourier   Role = "repartidor"
	RoleModerator Role = "moderator"
)

// Permission is a capability token from the closed <domain>:<action> namespace.
type Permission string

const (
	PermOrdersRead      Permission = "orders:read"
	PermOrdersCreate    Permission = "orders:create"
	PermOrdersUpdate    Permission = "orders:update"
	PermOrdersDelete    Permission = "orders:delete"
	PermStoresRead      Permission = "stores:read"
	PermStoresWrite     Permission = "stores:write"
	PermProductsRead    Permission = "products:read"
	PermProductsWrite   Permission = "products:write"
	PermReviewsWrite    Permission = "reviews:write"
	PermReviewsModerate Permission = "reviews:moderate"
	PermTrackingRead    Permission = "tracking:read"
	PermTrackingWrite   Permission = "tracking:write"
	PermUsersManage     Permission = "users:manage"
)

// rolePermissions maps each role to its fixed permission set. The table is
// initialized once and read-only afterwards, safe for concurrent lookups.
var rolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermOrdersRead, PermOrdersCreate, PermOrdersUpdate, PermOrdersDelete,
		PermStoresRead, PermStoresWrite, PermProductsRead, PermProductsWrite,
		PermReviewsWrite, PermReviewsModerate, PermTrackingRead, PermTrackingWrite,
		PermUsersManage,
	},
	RoleCustomer: {
		PermOrdersRead, PermOrdersCreate, PermOrdersUpdate,
		PermStoresRead, PermProductsRead, PermReviewsWrite, PermTrackingRead,
	},
	RoleStore: {
		PermOrdersRead, PermOrdersUpdate,
		PermStoresRead, PermStoresWrite, PermProductsRead, PermProductsWrite,
		PermTrackingRead,
	},
	RoleCourier: {
		PermOrdersRead, PermOrdersUpdate,
		PermStoresRead, PermProductsRead,
		PermTrackingRead, PermTrackingWrite,
	},
	RoleModerator: {
		PermOrdersRead, PermStoresRead, PermProductsRead, PermReviewsModerate,
	},
}

// roleAliases maps the english role names used by the auth provider onto the
// canonical values stored in the permission table.
var roleAliases = map[string]Role{
	"customer":    RoleCustomer,
	"store":       RoleStore,
	"store_owner": RoleStore,
	"courier":     RoleCourier,
}

// Normalize converts a raw role claim into a canonical Role.
// Unknown values yield the empty Role, which holds no permissions.
func Normalize(raw string) Role {
	val := strings.ToLower(strings.TrimSpace(raw))
	if val == "" {
		return ""
	}
	if role, ok := roleAliases[val]; ok {
		return role
	}
	role := Role(val)
	if _, ok := rolePermissions[role]; ok {
		return role
	}
	return ""
}

// Known reports whether the role exists in the permission table.
func Known(role Role) bool {
	_, ok := rolePermissions[role]
	return ok
}

// HasPermission reports whether the role's fixed permission set contains perm.
// It is a pure lookup and never fails; unknown roles hold nothing.
func HasPermission(role Role, perm Permission) bool {
	for _, p := range rolePermissions[role] {
		if p == perm {
			return true
		}
	}
	return false
}

// PermissionsForRole returns a copy of the role's permission set.
func PermissionsForRole(role Role) []Permission {
	perms, ok := rolePermissions[role]
	if !ok {
		return nil
	}
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}

// AnyRole returns true if the candidate role appears in the given set.
func AnyRole(role Role, candidates ...Role) bool {
	for _, c := range candidates {
		if role == c {
			return true
		}
	}
	return false
}
