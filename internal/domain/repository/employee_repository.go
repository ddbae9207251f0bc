package repository

import "github.com/jhoicas/compras-pro/internal/domain/entity"

// EmployeeRepository puerto de persistencia para fichas de empleados.
type EmployeeRepository interface {
	// Create asigna el id secuencial (EMP-NNN) y agrega la ficha en una sola
	// mutación.
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	Update(employee *entity.Employee) error
	Delete(id string) error
	// Search búsqueda abierta por nombre, email, cargo o departamento.
	// Query vacío lista todo.
	Search(query string) ([]*entity.Employee, error)
}
