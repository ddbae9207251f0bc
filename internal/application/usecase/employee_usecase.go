package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/compras-pro/internal/application/auth"
	"github.com/jhoicas/compras-pro/internal/application/dto"
	"github.com/jhoicas/compras-pro/internal/domain"
	"github.com/jhoicas/compras-pro/internal/domain/entity"
	"github.com/jhoicas/compras-pro/internal/domain/rbac"
	"github.com/jhoicas/compras-pro/internal/domain/repository"
)

// EmployeeUseCase fichas de RRHH y el reseteo administrativo de passwords.
type EmployeeUseCase struct {
	employees repository.EmployeeRepository
	users     repository.UserRepository
	guard     *auth.Guard
}

// NewEmployeeUseCase construye el caso de uso de empleados.
func NewEmployeeUseCase(employees repository.EmployeeRepository, users repository.UserRepository, guard *auth.Guard) *EmployeeUseCase {
	return &EmployeeUseCase{employees: employees, users: users, guard: guard}
}

// Create alta manual de ficha, sin cuenta de usuario asociada. El rol queda
// en employee salvo que la petición indique otro válido.
func (uc *EmployeeUseCase) Create(ctx context.Context, req dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if _, err := uc.guard.Require(ctx, rbac.CapAddEmployee); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return nil, domain.ErrInvalidInput
	}
	role := rbac.RoleEmployee
	if req.Role != "" {
		role = rbac.Role(req.Role)
		if !rbac.ValidRole(role) {
			return nil, domain.ErrInvalidInput
		}
	}

	employee := &entity.Employee{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		MiddleName: req.MiddleName,
		Position:   req.Position,
		Department: auth.DepartmentName(req.Department),
		Email:      auth.NormalizeEmail(req.Email),
		Role:       role,
		Status:     entity.StatusActive,
		CreatedAt:  time.Now(),
	}
	if err := uc.employees.Create(employee); err != nil {
		return nil, err
	}
	resp := employeeToResponse(employee)
	return &resp, nil
}

// Update edita una ficha existente.
func (uc *EmployeeUseCase) Update(ctx context.Context, id string, req dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if _, err := uc.guard.Require(ctx, rbac.CapEditEmployee); err != nil {
		return nil, err
	}
	employee, err := uc.employees.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}

	if req.FirstName != nil {
		employee.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		employee.LastName = *req.LastName
	}
	if req.MiddleName != nil {
		employee.MiddleName = *req.MiddleName
	}
	if req.Position != nil {
		employee.Position = *req.Position
	}
	if req.Department != nil {
		employee.Department = *req.Department
	}
	if req.Email != nil {
		employee.Email = auth.NormalizeEmail(*req.Email)
	}
	if req.Status != nil {
		employee.Status = *req.Status
	}

	if err := uc.employees.Update(employee); err != nil {
		return nil, err
	}
	resp := employeeToResponse(employee)
	return &resp, nil
}

// Delete elimina la ficha. Si un usuario la referencia, se desvincula; la
// cuenta sobrevive sin ficha.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.guard.Require(ctx, rbac.CapDeleteEmployee); err != nil {
		return err
	}
	if err := uc.employees.Delete(id); err != nil {
		return err
	}

	user, err := uc.users.GetByEmployeeID(id)
	if err != nil {
		return err
	}
	if user != nil {
		user.EmployeeID = ""
		user.UpdatedAt = time.Now()
		return uc.users.Update(user)
	}
	return nil
}

// GetByID devuelve una ficha, visible para quien puede ver empleados.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	if _, err := uc.guard.Require(ctx, rbac.CapViewEmployees); err != nil {
		return nil, err
	}
	employee, err := uc.employees.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	resp := employeeToResponse(employee)
	return &resp, nil
}

// Search lista fichas por texto libre.
func (uc *EmployeeUseCase) Search(ctx context.Context, query string) (*dto.EmployeeListResponse, error) {
	if _, err := uc.guard.Require(ctx, rbac.CapViewEmployees); err != nil {
		return nil, err
	}
	employees, err := uc.employees.Search(query)
	if err != nil {
		return nil, err
	}
	resp := &dto.EmployeeListResponse{
		Employees: make([]dto.EmployeeResponse, 0, len(employees)),
		Total:     len(employees),
	}
	for _, e := range employees {
		resp.Employees = append(resp.Employees, employeeToResponse(e))
	}
	return resp, nil
}

// ResetPassword genera una credencial temporal para la cuenta vinculada a la
// ficha. El texto plano se devuelve una sola vez; solo el hash se guarda.
func (uc *EmployeeUseCase) ResetPassword(ctx context.Context, employeeID string) (*dto.ResetPasswordResponse, error) {
	if _, err := uc.guard.Require(ctx, rbac.CapResetPassword); err != nil {
		return nil, err
	}
	user, err := uc.users.GetByEmployeeID(employeeID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	temp := fmt.Sprintf("Tmp-%s", strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
	hash, err := bcrypt.GenerateFromPassword([]byte(temp), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now()
	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	return &dto.ResetPasswordResponse{UserID: user.ID, TempPassword: temp}, nil
}

func employeeToResponse(e *entity.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:         e.ID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		MiddleName: e.MiddleName,
		Position:   e.Position,
		Department: e.Department,
		Email:      e.Email,
		Role:       string(e.Role),
		Status:     e.Status,
		CreatedAt:  e.CreatedAt,
	}
}
