package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RequestStatus estado de una solicitud de compra.
type RequestStatus string

// Estados válidos de una solicitud.
const (
	StatusDraft      RequestStatus = "draft"
	StatusSubmitted  RequestStatus = "pending"
	StatusApproved   RequestStatus = "approved"
	StatusRejected   RequestStatus = "rejected"
	StatusInProgress RequestStatus = "in-progress"
	StatusCompleted  RequestStatus = "completed"
)

// ValidRequestStatus reporta si el estado pertenece al conjunto cerrado.
func ValidRequestStatus(s RequestStatus) bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusApproved, StatusRejected, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// requestTransitions tabla de transiciones legales del ciclo de vida. Todo lo
// que no aparece aquí es ilegal, aunque la capacidad del rol lo permitiera.
var requestTransitions = map[RequestStatus][]RequestStatus{
	StatusDraft:     {StatusSubmitted},
	StatusSubmitted: {StatusApproved, StatusRejected},
	StatusApproved:  {StatusCompleted},
}

// CanTransitionTo reporta si la transición from -> to está en la tabla.
func (s RequestStatus) CanTransitionTo(to RequestStatus) bool {
	for _, t := range requestTransitions[s] {
		if t == to {
			return true
		}
	}
	return false
}

// Request solicitud de compra de material: la entidad de workflow del sistema.
// Se crea solo vía el caso de uso de solicitudes y se muta únicamente por
// transición de estado o edición de campos, ambas protegidas por capacidad.
type Request struct {
	ID         string          `json:"id"` // REQ-<año>-NNN
	Material   string          `json:"material"`
	Quantity   string          `json:"quantity"` // cantidad con unidad, p. ej. "5 kg"
	BucketType string          `json:"bucketType"`
	Customer   string          `json:"customer"` // nombre visible del solicitante
	Amount     decimal.Decimal `json:"amount"`
	CreatedBy  string          `json:"createdBy"` // User.ID del creador
	Status     RequestStatus   `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}
