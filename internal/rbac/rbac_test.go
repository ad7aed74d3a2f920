package rbac_test

import (
	"testing"

	"github.com/mgalvezc/delivery-core/internal/rbac"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		raw  string
		want rbac.Role
	}{
		{"admin", rbac.RoleAdmin},
		{"cliente", rbac.RoleCustomer},
		{"customer", rbac.RoleCustomer},
		{"tienda", rbac.RoleStore},
		{"store", rbac.RoleStore},
		{"store_owner", rbac.RoleStore},
		{"repartidor", rbac.RoleCourier},
		{"courier", rbac.RoleCourier},
		{"moderator", rbac.RoleModerator},
		{" Admin ", rbac.RoleAdmin},
		{"COURIER", rbac.RoleCourier},
		{"", rbac.Role("")},
		{"superuser", rbac.Role("")},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, rbac.Normalize(tc.raw), "raw=%q", tc.raw)
	}
}

func TestHasPermission(t *testing.T) {
	// клиент не может удалять заказы
	assert.False(t, rbac.HasPermission(rbac.RoleCustomer, rbac.PermOrdersDelete))
	assert.True(t, rbac.HasPermission(rbac.RoleCustomer, rbac.PermOrdersCreate))
	assert.True(t, rbac.HasPermission(rbac.RoleCustomer, rbac.PermReviewsWrite))

	assert.True(t, rbac.HasPermission(rbac.RoleCourier, rbac.PermTrackingWrite))
	assert.False(t, rbac.HasPermission(rbac.RoleCourier, rbac.PermStoresWrite))
	assert.False(t, rbac.HasPermission(rbac.RoleCourier, rbac.PermOrdersCreate))

	assert.True(t, rbac.HasPermission(rbac.RoleStore, rbac.PermProductsWrite))
	assert.False(t, rbac.HasPermission(rbac.RoleStore, rbac.PermReviewsWrite))

	assert.True(t, rbac.HasPermission(rbac.RoleModerator, rbac.PermReviewsModerate))
	assert.False(t, rbac.HasPermission(rbac.RoleModerator, rbac.PermOrdersUpdate))

	assert.True(t, rbac.HasPermission(rbac.RoleAdmin, rbac.PermUsersManage))

	// пустая роль не имеет прав
	assert.False(t, rbac.HasPermission(rbac.Role(""), rbac.PermOrdersRead))
}

func TestPermissionsForRole(t *testing.T) {
	first := rbac.PermissionsForRole(rbac.RoleCourier)
	second := rbac.PermissionsForRole(rbac.RoleCourier)
	assert.Equal(t, first, second)

	// возвращается копия, мутация не трогает таблицу
	first[0] = rbac.Permission("mutated")
	assert.NotEqual(t, first, rbac.PermissionsForRole(rbac.RoleCourier))

	assert.Nil(t, rbac.PermissionsForRole(rbac.Role("ghost")))
}

func TestKnown(t *testing.T) {
	assert.True(t, rbac.Known(rbac.RoleAdmin))
	assert.True(t, rbac.Known(rbac.RoleModerator))
	assert.False(t, rbac.Known(rbac.Role("store")))
	assert.False(t, rbac.Known(rbac.Role("")))
}

func TestAnyRole(t *testing.T) {
	assert.True(t, rbac.AnyRole(rbac.RoleStore, rbac.RoleStore, rbac.RoleAdmin))
	assert.False(t, rbac.AnyRole(rbac.RoleCustomer, rbac.RoleStore, rbac.RoleAdmin))
	assert.False(t, rbac.AnyRole(rbac.RoleCustomer))
}
