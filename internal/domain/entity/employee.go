package entity

import (
	"strings"
	"time"

	"github.com/jhoicas/compras-pro/internal/domain/rbac"
)

// Employee ficha de RRHH, distinta de User. Un User puede referenciarla por
// EmployeeID; borrar el User no borra el Employee.
type Employee struct {
	ID         string    `json:"id"` // EMP-NNN
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	MiddleName string    `json:"middleName,omitempty"`
	Position   string    `json:"position"`
	Department string    `json:"department"`
	Email      string    `json:"email"`
	Role       rbac.Role `json:"role"` // espejo del rol del User, solo display
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// DisplayName "Apellido Nombre Patronímico" como en las fichas de RRHH.
func (e *Employee) DisplayName() string {
	return strings.TrimSpace(strings.Join([]string{e.LastName, e.FirstName, e.MiddleName}, " "))
}
