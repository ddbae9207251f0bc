package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMaterialRequest alta de material en el catálogo.
type CreateMaterialRequest struct {
	Name           string          `json:"name" validate:"required,min=1,max=200"`
	Category       string          `json:"category" validate:"omitempty,max=100"`
	Description    string          `json:"description" validate:"omitempty,max=500"`
	Specifications string          `json:"specifications" validate:"omitempty,max=500"`
	Unit           string          `json:"unit" validate:"omitempty,max=50"`
	Price          decimal.Decimal `json:"price" validate:"omitempty"`
	Stock          int             `json:"stock" validate:"min=0"`
}

// UpdateMaterialRequest edición de material. Campos nil no se tocan.
type UpdateMaterialRequest struct {
	Name           *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category       *string          `json:"category" validate:"omitempty,max=100"`
	Description    *string          `json:"description" validate:"omitempty,max=500"`
	Specifications *string          `json:"specifications" validate:"omitempty,max=500"`
	Unit           *string          `json:"unit" validate:"omitempty,max=50"`
	Price          *decimal.Decimal `json:"price" validate:"omitempty"`
	Stock          *int             `json:"stock" validate:"omitempty,min=0"`
}

// MaterialResponse salida de un material del catálogo.
type MaterialResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Category       string          `json:"category,omitempty"`
	Description    string          `json:"description,omitempty"`
	Specifications string          `json:"specifications,omitempty"`
	Unit           string          `json:"unit,omitempty"`
	Price          decimal.Decimal `json:"price"`
	Stock          int             `json:"stock"`
	LowStock       bool            `json:"lowStock"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// MaterialListResponse listado del catálogo.
type MaterialListResponse struct {
	Materials []MaterialResponse `json:"materials"`
	Total     int                `json:"total"`
}

// OrderMaterialRequest pedido directo de un material del catálogo: genera una
// solicitud draft con monto = precio unitario × cantidad.
type OrderMaterialRequest struct {
	MaterialID string `json:"materialId" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,min=1"`
}
