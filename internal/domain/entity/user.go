package entity

import (
	"strings"
	"time"

	"github.com/jhoicas/compras-pro/internal/domain/rbac"
)

// Estados de cuenta para User y Employee.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusPending  = "pending"
)

// User cuenta de acceso al sistema. Puede referenciar opcionalmente un
// Employee (EmployeeID); ambas entidades existen de forma independiente.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"` // normalizado (case fold + NFKC)
	PasswordHash string    `json:"passwordHash"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	MiddleName   string    `json:"middleName,omitempty"`
	EmployeeID   string    `json:"employeeId,omitempty"`
	Role         rbac.Role `json:"role"`
	Status       string    `json:"status"` // active, inactive, pending
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// DisplayName nombre para mostrar: "Nombre Apellido".
func (u *User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Active reporta si la cuenta puede iniciar sesión.
func (u *User) Active() bool {
	return u.Status == StatusActive
}
