package memory

import (
	"fmt"

	"github.com/jhoicas/compras-pro/internal/domain"
	"github.com/jhoicas/compras-pro/internal/domain/entity"
	"github.com/jhoicas/compras-pro/internal/domain/repository"
	"github.com/jhoicas/compras-pro/internal/infrastructure/state"
)

var _ repository.RequestRepository = (*RequestRepo)(nil)

// RequestRepo implementación del puerto RequestRepository sobre el snapshot.
type RequestRepo struct {
	state *state.AppState
}

// NewRequestRepository construye el adaptador de persistencia para solicitudes.
func NewRequestRepository(st *state.AppState) *RequestRepo {
	return &RequestRepo{state: st}
}

// Create asigna el id y agrega la solicitud al snapshot en la misma sección
// crítica: dos altas concurrentes no pueden acuñar el mismo id. El contador
// es global, no se reinicia por año.
func (r *RequestRepo) Create(request *entity.Request) error {
	cp := *request
	err := r.state.Mutate(func(snap *entity.Snapshot) error {
		ids := make([]string, 0, len(snap.Requests))
		for _, req := range snap.Requests {
			ids = append(ids, req.ID)
		}
		cp.ID = fmt.Sprintf("REQ-%d-%03d", cp.CreatedAt.Year(), nextSeq(ids))
		snap.Requests = append(snap.Requests, &cp)
		return nil
	})
	if err != nil {
		return err
	}
	request.ID = cp.ID
	return nil
}

// GetByID devuelve una copia de la solicitud, o nil si no existe.
func (r *RequestRepo) GetByID(id string) (*entity.Request, error) {
	var found *entity.Request
	err := r.state.Read(func(snap *entity.Snapshot) error {
		for _, req := range snap.Requests {
			if req.ID == id {
				cp := *req
				found = &cp
				return nil
			}
		}
		return nil
	})
	return found, err
}

// Update reemplaza el registro de la solicitud por id.
func (r *RequestRepo) Update(request *entity.Request) error {
	cp := *request
	return r.state.Mutate(func(snap *entity.Snapshot) error {
		for i, req := range snap.Requests {
			if req.ID == cp.ID {
				snap.Requests[i] = &cp
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// Delete elimina la solicitud por id.
func (r *RequestRepo) Delete(id string) error {
	return r.state.Mutate(func(snap *entity.Snapshot) error {
		for i, req := range snap.Requests {
			if req.ID == id {
				snap.Requests = append(snap.Requests[:i], snap.Requests[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// List devuelve copias de las solicitudes que pasan el filtro, en orden de
// inserción.
func (r *RequestRepo) List(filter repository.RequestFilter) ([]*entity.Request, error) {
	var list []*entity.Request
	err := r.state.Read(func(snap *entity.Snapshot) error {
		list = make([]*entity.Request, 0, len(snap.Requests))
		for _, req := range snap.Requests {
			if !matches(req, filter) {
				continue
			}
			cp := *req
			list = append(list, &cp)
		}
		return nil
	})
	return list, err
}

func matches(req *entity.Request, f repository.RequestFilter) bool {
	if f.Status != "" && req.Status != f.Status {
		return false
	}
	if f.BucketType != "" && req.BucketType != f.BucketType {
		return false
	}
	if f.CreatedBy != "" && req.CreatedBy != f.CreatedBy {
		return false
	}
	if !f.DateFrom.IsZero() && req.CreatedAt.Before(f.DateFrom) {
		return false
	}
	if !f.DateTo.IsZero() && req.CreatedAt.After(f.DateTo) {
		return false
	}
	return true
}
