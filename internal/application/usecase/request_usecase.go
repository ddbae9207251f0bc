// Package usecase contiene los casos de uso de negocio: solicitudes de
// compra, catálogo de materiales, empleados, usuarios y reportes. Cada
// operación verifica su capacidad contra el guard antes de tocar estado.
package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/compras-pro/internal/application/auth"
	"github.com/jhoicas/compras-pro/internal/application/dto"
	"github.com/jhoicas/compras-pro/internal/domain"
	"github.com/jhoicas/compras-pro/internal/domain/entity"
	"github.com/jhoicas/compras-pro/internal/domain/rbac"
	"github.com/jhoicas/compras-pro/internal/domain/repository"
)

// RequestUseCase ciclo de vida de las solicitudes de compra.
type RequestUseCase struct {
	requests repository.RequestRepository
	guard    *auth.Guard
}

// NewRequestUseCase construye el caso de uso de solicitudes.
func NewRequestUseCase(requests repository.RequestRepository, guard *auth.Guard) *RequestUseCase {
	return &RequestUseCase{requests: requests, guard: guard}
}

// Create crea una solicitud en estado draft a nombre del usuario autenticado.
// El repositorio asigna el id al insertar.
func (uc *RequestUseCase) Create(ctx context.Context, req dto.CreateRequestRequest) (*dto.RequestResponse, error) {
	user, err := uc.guard.Require(ctx, rbac.CapCreateRequest)
	if err != nil {
		return nil, err
	}
	if req.Material == "" || req.Quantity == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	request := &entity.Request{
		Material:   req.Material,
		Quantity:   req.Quantity,
		BucketType: req.BucketType,
		Customer:   user.DisplayName(),
		Amount:     req.Amount,
		CreatedBy:  user.ID,
		Status:     entity.StatusDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.requests.Create(request); err != nil {
		return nil, err
	}
	resp := requestToResponse(request)
	return &resp, nil
}

// Update edita los campos de una solicitud propia mientras sigue en draft.
func (uc *RequestUseCase) Update(ctx context.Context, id string, req dto.UpdateRequestRequest) (*dto.RequestResponse, error) {
	user, err := uc.guard.Require(ctx, rbac.CapEditOwnRequest)
	if err != nil {
		return nil, err
	}
	request, err := uc.requests.GetByID(id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, domain.ErrNotFound
	}
	if !auth.IsOwner(user, request) {
		return nil, domain.ErrForbidden
	}
	if request.Status != entity.StatusDraft {
		return nil, domain.ErrIllegalTransition
	}

	if req.Material != nil {
		request.Material = *req.Material
	}
	if req.Quantity != nil {
		request.Quantity = *req.Quantity
	}
	if req.BucketType != nil {
		request.BucketType = *req.BucketType
	}
	if req.Amount != nil {
		request.Amount = *req.Amount
	}
	request.UpdatedAt = time.Now()

	if err := uc.requests.Update(request); err != nil {
		return nil, err
	}
	resp := requestToResponse(request)
	return &resp, nil
}

// statusCapabilities capacidad exigida por estado destino. Estados fuera de
// la tabla no se alcanzan por transición.
var statusCapabilities = map[entity.RequestStatus]rbac.Capability{
	entity.StatusSubmitted: rbac.CapSendRequest,
	entity.StatusApproved:  rbac.CapApproveRequest,
	entity.StatusRejected:  rbac.CapRejectRequest,
	entity.StatusCompleted: rbac.CapCompleteRequest,
}

// SetStatus transiciona la solicitud al estado destino. Exige la capacidad
// del destino y que la transición esté en la tabla del ciclo de vida; ambas
// condiciones son independientes y las dos deben cumplirse.
func (uc *RequestUseCase) SetStatus(ctx context.Context, id string, target entity.RequestStatus) (*dto.RequestResponse, error) {
	needed, ok := statusCapabilities[target]
	if !ok {
		return nil, domain.ErrIllegalTransition
	}
	user, err := uc.guard.Require(ctx, needed)
	if err != nil {
		return nil, err
	}

	request, err := uc.requests.GetByID(id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, domain.ErrNotFound
	}

	// Enviar un draft ajeno requiere visión global.
	if target == entity.StatusSubmitted && !auth.IsOwner(user, request) {
		if _, err := uc.guard.Require(ctx, rbac.CapViewAllRequests); err != nil {
			return nil, err
		}
	}

	if !request.Status.CanTransitionTo(target) {
		return nil, domain.ErrIllegalTransition
	}

	request.Status = target
	request.UpdatedAt = time.Now()
	if err := uc.requests.Update(request); err != nil {
		return nil, err
	}
	resp := requestToResponse(request)
	return &resp, nil
}

// Delete elimina una solicitud.
func (uc *RequestUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.guard.Require(ctx, rbac.CapDeleteRequest); err != nil {
		return err
	}
	return uc.requests.Delete(id)
}

// GetByID devuelve la solicitud si el usuario puede verla: visión global o
// visión propia siendo el creador.
func (uc *RequestUseCase) GetByID(ctx context.Context, id string) (*dto.RequestResponse, error) {
	user, err := uc.guard.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	request, err := uc.requests.GetByID(id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, domain.ErrNotFound
	}

	perms := rbac.PermissionsFor(user.Role)
	if !perms.Has(rbac.CapViewAllRequests) &&
		!(perms.Has(rbac.CapViewOwnRequests) && auth.IsOwner(user, request)) {
		return nil, domain.ErrForbidden
	}
	resp := requestToResponse(request)
	return &resp, nil
}

// List lista solicitudes según la visión del usuario: global, o restringida
// a las propias.
func (uc *RequestUseCase) List(ctx context.Context, filter repository.RequestFilter) (*dto.RequestListResponse, error) {
	user, err := uc.guard.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	perms := rbac.PermissionsFor(user.Role)
	switch {
	case perms.Has(rbac.CapViewAllRequests):
		// filtro tal cual
	case perms.Has(rbac.CapViewOwnRequests):
		filter.CreatedBy = user.ID
	default:
		return nil, domain.ErrForbidden
	}

	requests, err := uc.requests.List(filter)
	if err != nil {
		return nil, err
	}
	resp := &dto.RequestListResponse{
		Requests: make([]dto.RequestResponse, 0, len(requests)),
		Total:    len(requests),
	}
	for _, r := range requests {
		resp.Requests = append(resp.Requests, requestToResponse(r))
	}
	return resp, nil
}

func requestToResponse(r *entity.Request) dto.RequestResponse {
	return dto.RequestResponse{
		ID:         r.ID,
		Material:   r.Material,
		Quantity:   r.Quantity,
		BucketType: r.BucketType,
		Customer:   r.Customer,
		Amount:     r.Amount,
		CreatedBy:  r.CreatedBy,
		Status:     string(r.Status),
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}
