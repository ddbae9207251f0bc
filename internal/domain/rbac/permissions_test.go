package rbac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/compras-pro/internal/domain/rbac"
)

// El admin tiene todas las capacidades del sistema.
func TestPermissionsFor_AdminTieneTodo(t *testing.T) {
	perms := rbac.PermissionsFor(rbac.RoleAdmin)
	for _, c := range rbac.Capabilities() {
		assert.True(t, perms.Has(c), "admin debe tener %s", c)
	}
}

// Un rol desconocido no tiene ninguna capacidad: denegar por defecto.
func TestPermissionsFor_RolDesconocidoDeniegaTodo(t *testing.T) {
	perms := rbac.PermissionsFor(rbac.Role("superuser"))
	for _, c := range rbac.Capabilities() {
		assert.False(t, perms.Has(c), "rol desconocido no debe tener %s", c)
	}
}

// No es una jerarquía: procurement completa pero no aprueba; manager al revés.
func TestPermissionsFor_NoEsJerarquia(t *testing.T) {
	procurement := rbac.PermissionsFor(rbac.RoleProcurement)
	assert.True(t, procurement.Has(rbac.CapCompleteRequest))
	assert.False(t, procurement.Has(rbac.CapApproveRequest))
	assert.False(t, procurement.Has(rbac.CapRejectRequest))

	manager := rbac.PermissionsFor(rbac.RoleManager)
	assert.True(t, manager.Has(rbac.CapApproveRequest))
	assert.True(t, manager.Has(rbac.CapRejectRequest))
	assert.False(t, manager.Has(rbac.CapCompleteRequest))
}

func TestPermissionsFor_Employee(t *testing.T) {
	perms := rbac.PermissionsFor(rbac.RoleEmployee)

	assert.True(t, perms.Has(rbac.CapCreateRequest))
	assert.True(t, perms.Has(rbac.CapViewOwnRequests))
	assert.True(t, perms.Has(rbac.CapSendRequest))
	assert.True(t, perms.Has(rbac.CapViewMaterials))
	assert.True(t, perms.Has(rbac.CapOrderMaterial))

	assert.False(t, perms.Has(rbac.CapViewAllRequests))
	assert.False(t, perms.Has(rbac.CapApproveRequest))
	assert.False(t, perms.Has(rbac.CapDeleteRequest))
	assert.False(t, perms.Has(rbac.CapViewEmployees))
	assert.False(t, perms.Has(rbac.CapGenerateReports))
	assert.False(t, perms.Has(rbac.CapManageUsers))
}

func TestValidRole(t *testing.T) {
	for _, r := range rbac.Roles() {
		assert.True(t, rbac.ValidRole(r))
	}
	assert.False(t, rbac.ValidRole(rbac.Role("root")))
	assert.False(t, rbac.ValidRole(rbac.Role("")))
}
