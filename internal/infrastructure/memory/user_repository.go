package memory

import (
	"github.com/jhoicas/compras-pro/internal/domain"
	"github.com/jhoicas/compras-pro/internal/domain/entity"
	"github.com/jhoicas/compras-pro/internal/domain/repository"
	"github.com/jhoicas/compras-pro/internal/infrastructure/state"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre el snapshot.
type UserRepo struct {
	state *state.AppState
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(st *state.AppState) *UserRepo {
	return &UserRepo{state: st}
}

// Create verifica email, asigna el id y agrega la cuenta al snapshot en la
// misma sección crítica.
func (r *UserRepo) Create(user *entity.User) error {
	cp := *user
	err := r.state.Mutate(func(snap *entity.Snapshot) error {
		for _, u := range snap.Users {
			if u.Email == cp.Email {
				return domain.ErrEmailAlreadyExists
			}
		}
		cp.ID = seqID("USR", nextSeq(userIDs(snap)))
		snap.Users = append(snap.Users, &cp)
		return nil
	})
	if err != nil {
		return err
	}
	user.ID = cp.ID
	return nil
}

// CreateWithEmployee alta atómica de ficha + cuenta: la verificación de email,
// los dos ids y las dos inserciones ocurren en la misma mutación, de modo que
// un email duplicado no deja una ficha huérfana.
func (r *UserRepo) CreateWithEmployee(user *entity.User, employee *entity.Employee) error {
	userCp := *user
	empCp := *employee
	err := r.state.Mutate(func(snap *entity.Snapshot) error {
		for _, u := range snap.Users {
			if u.Email == userCp.Email {
				return domain.ErrEmailAlreadyExists
			}
		}
		empCp.ID = seqID("EMP", nextSeq(employeeIDs(snap)))
		userCp.ID = seqID("USR", nextSeq(userIDs(snap)))
		userCp.EmployeeID = empCp.ID
		snap.Employees = append(snap.Employees, &empCp)
		snap.Users = append(snap.Users, &userCp)
		return nil
	})
	if err != nil {
		return err
	}
	employee.ID = empCp.ID
	user.ID = userCp.ID
	user.EmployeeID = userCp.EmployeeID
	return nil
}

func userIDs(snap *entity.Snapshot) []string {
	ids := make([]string, 0, len(snap.Users))
	for _, u := range snap.Users {
		ids = append(ids, u.ID)
	}
	return ids
}

// GetByID devuelve una copia del usuario, o nil si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	var found *entity.User
	err := r.state.Read(func(snap *entity.Snapshot) error {
		for _, u := range snap.Users {
			if u.ID == id {
				cp := *u
				found = &cp
				return nil
			}
		}
		return nil
	})
	return found, err
}

// GetByEmail busca por email normalizado.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	var found *entity.User
	err := r.state.Read(func(snap *entity.Snapshot) error {
		for _, u := range snap.Users {
			if u.Email == email {
				cp := *u
				found = &cp
				return nil
			}
		}
		return nil
	})
	return found, err
}

// GetByEmployeeID busca el usuario vinculado a la ficha de empleado dada.
func (r *UserRepo) GetByEmployeeID(employeeID string) (*entity.User, error) {
	var found *entity.User
	err := r.state.Read(func(snap *entity.Snapshot) error {
		for _, u := range snap.Users {
			if u.EmployeeID == employeeID {
				cp := *u
				found = &cp
				return nil
			}
		}
		return nil
	})
	return found, err
}

// Update reemplaza el registro del usuario por id.
func (r *UserRepo) Update(user *entity.User) error {
	cp := *user
	return r.state.Mutate(func(snap *entity.Snapshot) error {
		for i, u := range snap.Users {
			if u.ID == cp.ID {
				snap.Users[i] = &cp
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// Delete elimina el usuario por id.
func (r *UserRepo) Delete(id string) error {
	return r.state.Mutate(func(snap *entity.Snapshot) error {
		for i, u := range snap.Users {
			if u.ID == id {
				snap.Users = append(snap.Users[:i], snap.Users[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// List devuelve copias de todos los usuarios.
func (r *UserRepo) List() ([]*entity.User, error) {
	var list []*entity.User
	err := r.state.Read(func(snap *entity.Snapshot) error {
		list = make([]*entity.User, 0, len(snap.Users))
		for _, u := range snap.Users {
			cp := *u
			list = append(list, &cp)
		}
		return nil
	})
	return list, err
}
