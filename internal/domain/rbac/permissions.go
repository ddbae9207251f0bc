// Package rbac define los roles del sistema y la matriz estática de
// capacidades por rol. La matriz es configuración pura: no tiene estado ni
// efectos secundarios, y se consulta en cada operación mutante.
package rbac

// Role rol cerrado de un usuario del sistema.
type Role string

// Roles válidos.
const (
	RoleEmployee    Role = "employee"
	RoleManager     Role = "manager"
	RoleProcurement Role = "procurement"
	RoleAdmin       Role = "admin"
)

// Capability permiso booleano con nombre, verificado antes de cada operación
// sensible.
type Capability string

// Capacidades sobre solicitudes de compra.
const (
	CapCreateRequest   Capability = "canCreateRequest"
	CapEditOwnRequest  Capability = "canEditOwnRequest"
	CapViewAllRequests Capability = "canViewAllRequests"
	CapViewOwnRequests Capability = "canViewOwnRequests"
	CapApproveRequest  Capability = "canApproveRequest"
	CapRejectRequest   Capability = "canRejectRequest"
	CapCompleteRequest Capability = "canCompleteRequest"
	CapDeleteRequest   Capability = "canDeleteRequest"
	CapSendRequest     Capability = "canSendRequest"
)

// Capacidades sobre el catálogo de materiales.
const (
	CapViewMaterials  Capability = "canViewMaterials"
	CapAddMaterial    Capability = "canAddMaterial"
	CapEditMaterial   Capability = "canEditMaterial"
	CapDeleteMaterial Capability = "canDeleteMaterial"
	CapOrderMaterial  Capability = "canOrderMaterial"
)

// Capacidades sobre empleados.
const (
	CapViewEmployees  Capability = "canViewEmployees"
	CapAddEmployee    Capability = "canAddEmployee"
	CapEditEmployee   Capability = "canEditEmployee"
	CapDeleteEmployee Capability = "canDeleteEmployee"
	CapResetPassword  Capability = "canResetPassword"
)

// Capacidades sobre reportes y administración.
const (
	CapViewReports     Capability = "canViewReports"
	CapGenerateReports Capability = "canGenerateReports"
	CapExportReports   Capability = "canExportReports"
	CapManageSettings  Capability = "canManageSettings"
	CapManageUsers     Capability = "canManageUsers"
)

// Permissions conjunto de capacidades de un rol. Una capacidad ausente niega.
type Permissions map[Capability]bool

// Has reporta si la capacidad está presente y es exactamente true.
func (p Permissions) Has(c Capability) bool {
	return p[c]
}

// rolePermissions matriz explícita por rol. No es una jerarquía: procurement
// puede completar solicitudes pero no aprobarlas; manager al revés.
var rolePermissions = map[Role]Permissions{
	RoleEmployee: {
		CapCreateRequest:   true,
		CapEditOwnRequest:  true,
		CapViewOwnRequests: true,
		CapSendRequest:     true,

		CapViewMaterials: true,
		CapOrderMaterial: true,
	},
	RoleManager: {
		CapCreateRequest:   true,
		CapEditOwnRequest:  true,
		CapViewAllRequests: true,
		CapViewOwnRequests: true,
		CapApproveRequest:  true,
		CapRejectRequest:   true,
		CapSendRequest:     true,

		CapViewMaterials: true,
		CapOrderMaterial: true,

		CapViewEmployees: true,

		CapViewReports:     true,
		CapGenerateReports: true,
		CapExportReports:   true,
	},
	RoleProcurement: {
		CapCreateRequest:   true,
		CapEditOwnRequest:  true,
		CapViewAllRequests: true,
		CapViewOwnRequests: true,
		CapCompleteRequest: true,
		CapSendRequest:     true,

		CapViewMaterials: true,
		CapAddMaterial:   true,
		CapEditMaterial:  true,
		CapOrderMaterial: true,

		CapViewEmployees: true,

		CapViewReports:     true,
		CapGenerateReports: true,
		CapExportReports:   true,
	},
	RoleAdmin: {
		CapCreateRequest:   true,
		CapEditOwnRequest:  true,
		CapViewAllRequests: true,
		CapViewOwnRequests: true,
		CapApproveRequest:  true,
		CapRejectRequest:   true,
		CapCompleteRequest: true,
		CapDeleteRequest:   true,
		CapSendRequest:     true,

		CapViewMaterials:  true,
		CapAddMaterial:    true,
		CapEditMaterial:   true,
		CapDeleteMaterial: true,
		CapOrderMaterial:  true,

		CapViewEmployees:  true,
		CapAddEmployee:    true,
		CapEditEmployee:   true,
		CapDeleteEmployee: true,
		CapResetPassword:  true,

		CapViewReports:     true,
		CapGenerateReports: true,
		CapExportReports:   true,
		CapManageSettings:  true,
		CapManageUsers:     true,
	},
}

// PermissionsFor devuelve la matriz de capacidades del rol. Rol desconocido
// devuelve un conjunto vacío (todo niega).
func PermissionsFor(role Role) Permissions {
	perms, ok := rolePermissions[role]
	if !ok {
		return Permissions{}
	}
	return perms
}

// Roles devuelve los roles válidos del sistema.
func Roles() []Role {
	return []Role{RoleEmployee, RoleManager, RoleProcurement, RoleAdmin}
}

// ValidRole reporta si el rol existe en la matriz.
func ValidRole(role Role) bool {
	_, ok := rolePermissions[role]
	return ok
}

// Capabilities devuelve todas las capacidades conocidas, por dominio.
func Capabilities() []Capability {
	return []Capability{
		CapCreateRequest, CapEditOwnRequest, CapViewAllRequests, CapViewOwnRequests,
		CapApproveRequest, CapRejectRequest, CapCompleteRequest, CapDeleteRequest, CapSendRequest,
		CapViewMaterials, CapAddMaterial, CapEditMaterial, CapDeleteMaterial, CapOrderMaterial,
		CapViewEmployees, CapAddEmployee, CapEditEmployee, CapDeleteEmployee, CapResetPassword,
		CapViewReports, CapGenerateReports, CapExportReports,
		CapManageSettings, CapManageUsers,
	}
}
