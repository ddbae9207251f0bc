package dto

import "time"

// RegisterRequest entrada de registro: crea ficha de empleado + usuario con
// rol employee (password en texto, se hashea en el use case).
type RegisterRequest struct {
	FirstName  string `json:"firstName" validate:"required,min=1,max=100"`
	LastName   string `json:"lastName" validate:"required,min=1,max=100"`
	MiddleName string `json:"middleName" validate:"omitempty,max=100"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Department string `json:"department" validate:"omitempty,max=100"`
	Position   string `json:"position" validate:"omitempty,max=100"`
}

// LoginRequest entrada de login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin hash de password).
type UserResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	MiddleName string    `json:"middleName,omitempty"`
	EmployeeID string    `json:"employeeId,omitempty"`
	Role       string    `json:"role"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// SessionResponse salida de la sesión activa.
type SessionResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// LoginResponse salida de login: token portador + usuario + sesión.
type LoginResponse struct {
	Token   string          `json:"token"`
	User    UserResponse    `json:"user"`
	Session SessionResponse `json:"session"`
}

// UpdateProfileRequest edición del perfil propio. Campos nil no se tocan.
type UpdateProfileRequest struct {
	FirstName  *string `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName   *string `json:"lastName" validate:"omitempty,min=1,max=100"`
	MiddleName *string `json:"middleName" validate:"omitempty,max=100"`
}

// ChangePasswordRequest cambio de password del usuario autenticado.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

// ResetPasswordResponse salida del reseteo administrativo: la password
// temporal se muestra una sola vez.
type ResetPasswordResponse struct {
	UserID       string `json:"userId"`
	TempPassword string `json:"tempPassword"`
}
