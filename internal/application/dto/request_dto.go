package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRequestRequest entrada para crear una solicitud de compra. Nace en
// estado draft a nombre del usuario autenticado.
type CreateRequestRequest struct {
	Material   string          `json:"material" validate:"required,min=1,max=200"`
	Quantity   string          `json:"quantity" validate:"required,min=1,max=50"`
	BucketType string          `json:"bucketType" validate:"omitempty,max=100"`
	Amount     decimal.Decimal `json:"amount" validate:"omitempty"`
}

// UpdateRequestRequest edición de campos de una solicitud propia en draft.
// Campos nil no se tocan.
type UpdateRequestRequest struct {
	Material   *string          `json:"material" validate:"omitempty,min=1,max=200"`
	Quantity   *string          `json:"quantity" validate:"omitempty,min=1,max=50"`
	BucketType *string          `json:"bucketType" validate:"omitempty,max=100"`
	Amount     *decimal.Decimal `json:"amount" validate:"omitempty"`
}

// UpdateStatusRequest transición de estado de una solicitud.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected completed"`
}

// RequestResponse salida de una solicitud.
type RequestResponse struct {
	ID         string          `json:"id"`
	Material   string          `json:"material"`
	Quantity   string          `json:"quantity"`
	BucketType string          `json:"bucketType,omitempty"`
	Customer   string          `json:"customer"`
	Amount     decimal.Decimal `json:"amount"`
	CreatedBy  string          `json:"createdBy"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// RequestListResponse listado de solicitudes.
type RequestListResponse struct {
	Requests []RequestResponse `json:"requests"`
	Total    int               `json:"total"`
}
