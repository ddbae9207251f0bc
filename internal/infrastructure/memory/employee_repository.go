package memory

import (
	"strings"

	"github.com/jhoicas/compras-pro/internal/domain"
	"github.com/jhoicas/compras-pro/internal/domain/entity"
	"github.com/jhoicas/compras-pro/internal/domain/repository"
	"github.com/jhoicas/compras-pro/internal/infrastructure/state"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre el snapshot.
type EmployeeRepo struct {
	state *state.AppState
}

// NewEmployeeRepository construye el adaptador de persistencia de empleados.
func NewEmployeeRepository(st *state.AppState) *EmployeeRepo {
	return &EmployeeRepo{state: st}
}

// Create asigna el id y agrega la ficha al snapshot en la misma sección
// crítica.
func (r *EmployeeRepo) Create(employee *entity.Employee) error {
	cp := *employee
	err := r.state.Mutate(func(snap *entity.Snapshot) error {
		cp.ID = seqID("EMP", nextSeq(employeeIDs(snap)))
		snap.Employees = append(snap.Employees, &cp)
		return nil
	})
	if err != nil {
		return err
	}
	employee.ID = cp.ID
	return nil
}

func employeeIDs(snap *entity.Snapshot) []string {
	ids := make([]string, 0, len(snap.Employees))
	for _, e := range snap.Employees {
		ids = append(ids, e.ID)
	}
	return ids
}

// GetByID devuelve una copia de la ficha, o nil si no existe.
func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	var found *entity.Employee
	err := r.state.Read(func(snap *entity.Snapshot) error {
		for _, e := range snap.Employees {
			if e.ID == id {
				cp := *e
				found = &cp
				return nil
			}
		}
		return nil
	})
	return found, err
}

// Update reemplaza la ficha por id.
func (r *EmployeeRepo) Update(employee *entity.Employee) error {
	cp := *employee
	return r.state.Mutate(func(snap *entity.Snapshot) error {
		for i, e := range snap.Employees {
			if e.ID == cp.ID {
				snap.Employees[i] = &cp
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// Delete elimina la ficha por id.
func (r *EmployeeRepo) Delete(id string) error {
	return r.state.Mutate(func(snap *entity.Snapshot) error {
		for i, e := range snap.Employees {
			if e.ID == id {
				snap.Employees = append(snap.Employees[:i], snap.Employees[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// Search búsqueda por texto en nombre, apellido, email, cargo y departamento.
// Query vacío lista todas las fichas.
func (r *EmployeeRepo) Search(query string) ([]*entity.Employee, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	var list []*entity.Employee
	err := r.state.Read(func(snap *entity.Snapshot) error {
		list = make([]*entity.Employee, 0, len(snap.Employees))
		for _, e := range snap.Employees {
			if q != "" &&
				!strings.Contains(strings.ToLower(e.FirstName), q) &&
				!strings.Contains(strings.ToLower(e.LastName), q) &&
				!strings.Contains(strings.ToLower(e.Email), q) &&
				!strings.Contains(strings.ToLower(e.Position), q) &&
				!strings.Contains(strings.ToLower(e.Department), q) {
				continue
			}
			cp := *e
			list = append(list, &cp)
		}
		return nil
	})
	return list, err
}
