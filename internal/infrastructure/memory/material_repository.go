package memory

import (
	"strings"

	"github.com/jhoicas/compras-pro/internal/domain"
	"github.com/jhoicas/compras-pro/internal/domain/entity"
	"github.com/jhoicas/compras-pro/internal/domain/repository"
	"github.com/jhoicas/compras-pro/internal/infrastructure/state"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo implementación del puerto MaterialRepository sobre el snapshot.
type MaterialRepo struct {
	state *state.AppState
}

// NewMaterialRepository construye el adaptador de persistencia del catálogo.
func NewMaterialRepository(st *state.AppState) *MaterialRepo {
	return &MaterialRepo{state: st}
}

// Create asigna el id y agrega el material al snapshot en la misma sección
// crítica.
func (r *MaterialRepo) Create(material *entity.Material) error {
	cp := *material
	err := r.state.Mutate(func(snap *entity.Snapshot) error {
		ids := make([]string, 0, len(snap.Materials))
		for _, m := range snap.Materials {
			ids = append(ids, m.ID)
		}
		cp.ID = seqID("MAT", nextSeq(ids))
		snap.Materials = append(snap.Materials, &cp)
		return nil
	})
	if err != nil {
		return err
	}
	material.ID = cp.ID
	return nil
}

// GetByID devuelve una copia del material, o nil si no existe.
func (r *MaterialRepo) GetByID(id string) (*entity.Material, error) {
	var found *entity.Material
	err := r.state.Read(func(snap *entity.Snapshot) error {
		for _, m := range snap.Materials {
			if m.ID == id {
				cp := *m
				found = &cp
				return nil
			}
		}
		return nil
	})
	return found, err
}

// Update reemplaza el registro del material por id.
func (r *MaterialRepo) Update(material *entity.Material) error {
	cp := *material
	return r.state.Mutate(func(snap *entity.Snapshot) error {
		for i, m := range snap.Materials {
			if m.ID == cp.ID {
				snap.Materials[i] = &cp
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// Delete elimina el material por id.
func (r *MaterialRepo) Delete(id string) error {
	return r.state.Mutate(func(snap *entity.Snapshot) error {
		for i, m := range snap.Materials {
			if m.ID == id {
				snap.Materials = append(snap.Materials[:i], snap.Materials[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// Search búsqueda por texto en nombre, descripción y categoría, con filtro
// opcional de categoría exacta. Sin criterios lista el catálogo completo.
func (r *MaterialRepo) Search(query, category string) ([]*entity.Material, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	var list []*entity.Material
	err := r.state.Read(func(snap *entity.Snapshot) error {
		list = make([]*entity.Material, 0, len(snap.Materials))
		for _, m := range snap.Materials {
			if category != "" && m.Category != category {
				continue
			}
			if q != "" &&
				!strings.Contains(strings.ToLower(m.Name), q) &&
				!strings.Contains(strings.ToLower(m.Description), q) &&
				!strings.Contains(strings.ToLower(m.Category), q) {
				continue
			}
			cp := *m
			list = append(list, &cp)
		}
		return nil
	})
	return list, err
}
