package repository

import "github.com/jhoicas/compras-pro/internal/domain/entity"

// MaterialRepository puerto de persistencia para el catálogo de materiales.
type MaterialRepository interface {
	// Create asigna el id secuencial (MAT-NNN) y agrega el material en una
	// sola mutación.
	Create(material *entity.Material) error
	GetByID(id string) (*entity.Material, error)
	Update(material *entity.Material) error
	Delete(id string) error
	// Search búsqueda abierta por texto (nombre, descripción, categoría) con
	// filtro opcional de categoría. Query y category vacíos listan todo.
	Search(query, category string) ([]*entity.Material, error)
}
