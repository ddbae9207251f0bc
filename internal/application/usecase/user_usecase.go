package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/compras-pro/internal/application/auth"
	"github.com/jhoicas/compras-pro/internal/application/dto"
	"github.com/jhoicas/compras-pro/internal/domain/entity"
	"github.com/jhoicas/compras-pro/internal/domain/rbac"
	"github.com/jhoicas/compras-pro/internal/domain/repository"
)

// UserUseCase administración de cuentas y estado del sistema.
type UserUseCase struct {
	users     repository.UserRepository
	sessions  repository.SessionRepository
	requests  repository.RequestRepository
	materials repository.MaterialRepository
	employees repository.EmployeeRepository
	state     SettingsReader
	guard     *auth.Guard
}

// SettingsReader acceso de lectura a los metadatos del snapshot.
type SettingsReader interface {
	Read(fn func(snap *entity.Snapshot) error) error
}

// NewUserUseCase construye el caso de uso de administración.
func NewUserUseCase(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	requests repository.RequestRepository,
	materials repository.MaterialRepository,
	employees repository.EmployeeRepository,
	state SettingsReader,
	guard *auth.Guard,
) *UserUseCase {
	return &UserUseCase{
		users:     users,
		sessions:  sessions,
		requests:  requests,
		materials: materials,
		employees: employees,
		state:     state,
		guard:     guard,
	}
}

// List lista todas las cuentas, solo administración.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	if _, err := uc.guard.Require(ctx, rbac.CapManageUsers); err != nil {
		return nil, err
	}
	users, err := uc.users.List()
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, auth.UserToResponse(u))
	}
	return resp, nil
}

// Delete elimina una cuenta. La ficha de empleado vinculada sobrevive.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.guard.Require(ctx, rbac.CapManageUsers); err != nil {
		return err
	}
	return uc.users.Delete(id)
}

// SystemStats contadores internos del sistema para el panel de
// administración.
func (uc *UserUseCase) SystemStats(ctx context.Context) (*dto.SystemStats, error) {
	if _, err := uc.guard.Require(ctx, rbac.CapManageSettings); err != nil {
		return nil, err
	}

	active, err := uc.sessions.CountActive(time.Now())
	if err != nil {
		return nil, err
	}

	stats := &dto.SystemStats{ActiveSessions: active}
	err = uc.state.Read(func(snap *entity.Snapshot) error {
		stats.Users = len(snap.Users)
		stats.Requests = len(snap.Requests)
		stats.Materials = len(snap.Materials)
		stats.Employees = len(snap.Employees)
		stats.SchemaVersion = snap.Settings.Version
		stats.LastUpdate = snap.Settings.LastUpdate
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}
