package dto

import "time"

// CreateEmployeeRequest alta manual de ficha de empleado.
type CreateEmployeeRequest struct {
	FirstName  string `json:"firstName" validate:"required,min=1,max=100"`
	LastName   string `json:"lastName" validate:"required,min=1,max=100"`
	MiddleName string `json:"middleName" validate:"omitempty,max=100"`
	Position   string `json:"position" validate:"omitempty,max=100"`
	Department string `json:"department" validate:"omitempty,max=100"`
	Email      string `json:"email" validate:"omitempty,email"`
	// Role rol funcional de la ficha; vacío aplica el rol employee.
	Role string `json:"role" validate:"omitempty,oneof=employee manager procurement admin"`
}

// UpdateEmployeeRequest edición de ficha. Campos nil no se tocan.
type UpdateEmployeeRequest struct {
	FirstName  *string `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName   *string `json:"lastName" validate:"omitempty,min=1,max=100"`
	MiddleName *string `json:"middleName" validate:"omitempty,max=100"`
	Position   *string `json:"position" validate:"omitempty,max=100"`
	Department *string `json:"department" validate:"omitempty,max=100"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Status     *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// EmployeeResponse salida de una ficha de empleado.
type EmployeeResponse struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	MiddleName string    `json:"middleName,omitempty"`
	Position   string    `json:"position,omitempty"`
	Department string    `json:"department,omitempty"`
	Email      string    `json:"email,omitempty"`
	Role       string    `json:"role,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

// EmployeeListResponse listado de fichas.
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Total     int                `json:"total"`
}
