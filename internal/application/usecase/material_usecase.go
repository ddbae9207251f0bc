package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/compras-pro/internal/application/auth"
	"github.com/jhoicas/compras-pro/internal/application/dto"
	"github.com/jhoicas/compras-pro/internal/domain"
	"github.com/jhoicas/compras-pro/internal/domain/entity"
	"github.com/jhoicas/compras-pro/internal/domain/rbac"
	"github.com/jhoicas/compras-pro/internal/domain/repository"
)

// MaterialUseCase catálogo de materiales. Las lecturas son abiertas; las
// mutaciones y el pedido directo van protegidas por capacidad.
type MaterialUseCase struct {
	materials repository.MaterialRepository
	requests  *RequestUseCase
	guard     *auth.Guard
}

// NewMaterialUseCase construye el caso de uso del catálogo.
func NewMaterialUseCase(materials repository.MaterialRepository, requests *RequestUseCase, guard *auth.Guard) *MaterialUseCase {
	return &MaterialUseCase{materials: materials, requests: requests, guard: guard}
}

// Create da de alta un material. El repositorio asigna el id al insertar.
func (uc *MaterialUseCase) Create(ctx context.Context, req dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	if _, err := uc.guard.Require(ctx, rbac.CapAddMaterial); err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	material := &entity.Material{
		Name:           req.Name,
		Category:       req.Category,
		Description:    req.Description,
		Specifications: req.Specifications,
		Unit:           req.Unit,
		Price:          req.Price,
		Stock:          req.Stock,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.materials.Create(material); err != nil {
		return nil, err
	}
	resp := materialToResponse(material)
	return &resp, nil
}

// Update edita un material existente.
func (uc *MaterialUseCase) Update(ctx context.Context, id string, req dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	if _, err := uc.guard.Require(ctx, rbac.CapEditMaterial); err != nil {
		return nil, err
	}
	material, err := uc.materials.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}

	if req.Name != nil {
		material.Name = *req.Name
	}
	if req.Category != nil {
		material.Category = *req.Category
	}
	if req.Description != nil {
		material.Description = *req.Description
	}
	if req.Specifications != nil {
		material.Specifications = *req.Specifications
	}
	if req.Unit != nil {
		material.Unit = *req.Unit
	}
	if req.Price != nil {
		material.Price = *req.Price
	}
	if req.Stock != nil {
		material.Stock = *req.Stock
	}
	material.UpdatedAt = time.Now()

	if err := uc.materials.Update(material); err != nil {
		return nil, err
	}
	resp := materialToResponse(material)
	return &resp, nil
}

// Delete elimina un material del catálogo.
func (uc *MaterialUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.guard.Require(ctx, rbac.CapDeleteMaterial); err != nil {
		return err
	}
	return uc.materials.Delete(id)
}

// GetByID lectura abierta de un material.
func (uc *MaterialUseCase) GetByID(id string) (*dto.MaterialResponse, error) {
	material, err := uc.materials.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	resp := materialToResponse(material)
	return &resp, nil
}

// Search búsqueda abierta del catálogo.
func (uc *MaterialUseCase) Search(query, category string) (*dto.MaterialListResponse, error) {
	materials, err := uc.materials.Search(query, category)
	if err != nil {
		return nil, err
	}
	resp := &dto.MaterialListResponse{
		Materials: make([]dto.MaterialResponse, 0, len(materials)),
		Total:     len(materials),
	}
	for _, m := range materials {
		resp.Materials = append(resp.Materials, materialToResponse(m))
	}
	return resp, nil
}

// Order genera una solicitud draft a partir de un material del catálogo:
// monto = precio unitario × cantidad. Exige la capacidad de pedir además de
// la de crear solicitudes, que verifica el caso de uso de solicitudes.
func (uc *MaterialUseCase) Order(ctx context.Context, req dto.OrderMaterialRequest) (*dto.RequestResponse, error) {
	if _, err := uc.guard.Require(ctx, rbac.CapOrderMaterial); err != nil {
		return nil, err
	}
	if req.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	material, err := uc.materials.GetByID(req.MaterialID)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}

	amount := material.Price.Mul(decimal.NewFromInt(int64(req.Quantity)))
	quantity := fmt.Sprintf("%d %s", req.Quantity, material.Unit)
	return uc.requests.Create(ctx, dto.CreateRequestRequest{
		Material:   material.Name,
		Quantity:   quantity,
		BucketType: material.Category,
		Amount:     amount,
	})
}

func materialToResponse(m *entity.Material) dto.MaterialResponse {
	return dto.MaterialResponse{
		ID:             m.ID,
		Name:           m.Name,
		Category:       m.Category,
		Description:    m.Description,
		Specifications: m.Specifications,
		Unit:           m.Unit,
		Price:          m.Price,
		Stock:          m.Stock,
		LowStock:       m.LowStock(),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
