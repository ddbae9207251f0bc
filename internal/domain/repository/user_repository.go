package repository

import "github.com/jhoicas/compras-pro/internal/domain/entity"

// UserRepository puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create asigna el id secuencial (USR-NNN) y agrega la cuenta en una sola
	// mutación. Email duplicado falla con ErrEmailAlreadyExists.
	Create(user *entity.User) error
	// CreateWithEmployee alta atómica de ficha + cuenta vinculada: verificación
	// de email, asignación de ambos ids (EMP-NNN, USR-NNN) e inserción de los
	// dos registros en la misma mutación. Si falla, no queda ninguno.
	CreateWithEmployee(user *entity.User, employee *entity.Employee) error
	GetByID(id string) (*entity.User, error)
	// GetByEmail busca por email ya normalizado.
	GetByEmail(email string) (*entity.User, error)
	GetByEmployeeID(employeeID string) (*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
	List() ([]*entity.User, error)
}
