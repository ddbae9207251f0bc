package repository

import (
	"time"

	"github.com/jhoicas/compras-pro/internal/domain/entity"
)

// RequestFilter criterios de filtrado para listados y reportes de solicitudes.
// Los campos en cero no filtran.
type RequestFilter struct {
	Status     entity.RequestStatus
	BucketType string
	DateFrom   time.Time
	DateTo     time.Time
	// CreatedBy restringe a solicitudes del usuario indicado (vista "mis
	// solicitudes").
	CreatedBy string
}

// RequestRepository puerto de persistencia para solicitudes.
type RequestRepository interface {
	// Create asigna el id secuencial (REQ-<año>-NNN, año de CreatedAt) y
	// agrega la solicitud en una sola mutación.
	Create(request *entity.Request) error
	GetByID(id string) (*entity.Request, error)
	Update(request *entity.Request) error
	Delete(id string) error
	List(filter RequestFilter) ([]*entity.Request, error)
}
