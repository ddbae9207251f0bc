// Package auth implementa autenticación y resolución de identidad: login,
// registro, logout y el puntero de sesión activa sobre el snapshot.
package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/compras-pro/internal/application/dto"
	"github.com/jhoicas/compras-pro/internal/domain"
	"github.com/jhoicas/compras-pro/internal/domain/entity"
	"github.com/jhoicas/compras-pro/internal/domain/rbac"
	"github.com/jhoicas/compras-pro/internal/domain/repository"
	"github.com/jhoicas/compras-pro/pkg/token"
)

// SessionSlots puntero de sesión activa y usuario cacheado. Lo implementa el
// contenedor de estado; el use case no conoce el mecanismo de persistencia.
type SessionSlots interface {
	CurrentSessionID() (string, error)
	SetCurrentSessionID(id string) error
	ClearCurrentSessionID() error
	CachedCurrentUser() (*entity.User, error)
	SetCachedCurrentUser(user *entity.User) error
	ClearCachedCurrentUser() error
}

// UseCase orquesta login, registro, logout y la resolución perezosa de la
// identidad actual.
type UseCase struct {
	users     repository.UserRepository
	employees repository.EmployeeRepository
	sessions  repository.SessionRepository
	slots     SessionSlots
	ttl       time.Duration
	secret    string
	issuer    string
}

// NewUseCase construye el caso de uso de autenticación. ttl es la vida de las
// sesiones nuevas (24h en producción).
func NewUseCase(
	users repository.UserRepository,
	employees repository.EmployeeRepository,
	sessions repository.SessionRepository,
	slots SessionSlots,
	ttl time.Duration,
	secret, issuer string,
) *UseCase {
	return &UseCase{
		users:     users,
		employees: employees,
		sessions:  sessions,
		slots:     slots,
		ttl:       ttl,
		secret:    secret,
		issuer:    issuer,
	}
}

var emailFolder = cases.Fold()

// NormalizeEmail normaliza un email para comparación: trim, case fold y NFKC.
// Dos emails que difieren solo en mayúsculas o formas Unicode compatibles son
// la misma cuenta.
func NormalizeEmail(email string) string {
	return norm.NFKC.String(emailFolder.String(strings.TrimSpace(email)))
}

// newSessionID id de sesión legible: session-<unix ms>-<sufijo aleatorio>.
func newSessionID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("session-%d-%s", now.UnixMilli(), suffix)
}

// Login valida credenciales, crea la sesión y la deja como sesión activa.
// Cuentas inactivas se reportan como usuario no encontrado, sin revelar que
// la cuenta existe.
func (uc *UseCase) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	email := NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := uc.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Status == entity.StatusInactive {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now()
	session := &entity.Session{
		ID:        newSessionID(now),
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.ttl),
	}
	if err := uc.sessions.Create(session); err != nil {
		return nil, err
	}
	if err := uc.slots.SetCurrentSessionID(session.ID); err != nil {
		return nil, err
	}
	if err := uc.slots.SetCachedCurrentUser(user); err != nil {
		return nil, err
	}

	tok, err := token.Generate(uc.secret, session.ID, uc.issuer, session.ExpiresAt)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   tok,
		User:    UserToResponse(user),
		Session: sessionToResponse(session),
	}, nil
}

// departmentNames códigos de departamento del formulario de registro.
var departmentNames = map[string]string{
	"welding":     "Taller de soldadura y recargue",
	"procurement": "Departamento de compras",
	"quality":     "Control de calidad",
	"it":          "Departamento de TI",
	"management":  "Dirección",
}

// DepartmentName traduce el código de departamento a su nombre visible. Un
// código desconocido se devuelve tal cual.
func DepartmentName(code string) string {
	if name, ok := departmentNames[code]; ok {
		return name
	}
	if code == "" {
		return "No especificado"
	}
	return code
}

// Register crea la ficha de empleado y la cuenta de usuario asociada, con rol
// employee y estado activo. No inicia sesión.
func (uc *UseCase) Register(req dto.RegisterRequest) (*dto.UserResponse, error) {
	email := NormalizeEmail(req.Email)
	if email == "" || req.Password == "" || strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(req.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	position := strings.TrimSpace(req.Position)
	if position == "" {
		position = "Empleado"
	}

	employee := &entity.Employee{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		MiddleName: req.MiddleName,
		Position:   position,
		Department: DepartmentName(req.Department),
		Email:      email,
		Role:       rbac.RoleEmployee,
		Status:     entity.StatusActive,
		CreatedAt:  now,
	}
	user := &entity.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		MiddleName:   req.MiddleName,
		Role:         rbac.RoleEmployee,
		Status:       entity.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	// Alta atómica: la verificación de email duplicado, los ids y ambos
	// registros salen de la misma mutación. Dos registros simultáneos con el
	// mismo email no dejan fichas huérfanas.
	if err := uc.users.CreateWithEmployee(user, employee); err != nil {
		return nil, err
	}

	resp := UserToResponse(user)
	return &resp, nil
}

// resolveSession resuelve la identidad de una sesión concreta. Devuelve
// (nil, nil) si la sesión no existe, venció o su usuario fue borrado. La
// expiración es perezosa: la sesión vencida se destruye aquí, en el momento
// de consultarla.
func (uc *UseCase) resolveSession(sessionID string) (*entity.User, error) {
	session, err := uc.sessions.GetByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}
	if session.Expired(time.Now()) {
		_ = uc.sessions.Delete(session.ID)
		return nil, nil
	}
	user, err := uc.users.GetByID(session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = uc.sessions.Delete(session.ID)
		return nil, nil
	}
	return user, nil
}

// ResolveSession resuelve la identidad del id de sesión dado, o falla con
// ErrUnauthenticated si la sesión no existe o venció. Es el punto de entrada
// del middleware HTTP: valida la sesión sin tocar el puntero compartido.
func (uc *UseCase) ResolveSession(sessionID string) (*entity.User, error) {
	user, err := uc.resolveSession(sessionID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	return user, nil
}

// Current resuelve la identidad del contexto. Si el contexto transporta un id
// de sesión (peticiones HTTP) la resolución es por petición, aislada de
// cualquier otra en vuelo. Sin id en el contexto cae al puntero de sesión
// persistido. Devuelve (nil, nil) si no hay nadie autenticado.
func (uc *UseCase) Current(ctx context.Context) (*entity.User, error) {
	if sessionID := SessionIDFromContext(ctx); sessionID != "" {
		return uc.resolveSession(sessionID)
	}

	sessionID, err := uc.slots.CurrentSessionID()
	if err != nil {
		return nil, err
	}
	if sessionID == "" {
		return nil, nil
	}
	user, err := uc.resolveSession(sessionID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.clearSlots()
		return nil, nil
	}
	// Refresca la copia cacheada; el registro del repositorio es la autoridad.
	_ = uc.slots.SetCachedCurrentUser(user)
	return user, nil
}

// ParseToken valida el token de transporte y devuelve el id de sesión.
func (uc *UseCase) ParseToken(tok string) (string, error) {
	return token.Parse(uc.secret, tok)
}

// Logout destruye la sesión del contexto (o, sin id en el contexto, la del
// puntero persistido) y limpia el puntero si apuntaba a ella. Es idempotente.
func (uc *UseCase) Logout(ctx context.Context) error {
	sessionID := SessionIDFromContext(ctx)
	fromSlot := sessionID == ""
	if fromSlot {
		var err error
		sessionID, err = uc.slots.CurrentSessionID()
		if err != nil {
			return err
		}
	}
	if sessionID == "" {
		return nil
	}
	if err := uc.sessions.Delete(sessionID); err != nil && err != domain.ErrNotFound {
		return err
	}
	if !fromSlot {
		current, err := uc.slots.CurrentSessionID()
		if err != nil {
			return err
		}
		if current != sessionID {
			return nil
		}
	}
	uc.clearSlots()
	return nil
}

// UpdateProfile edita los datos de perfil del usuario autenticado y refresca
// la copia cacheada.
func (uc *UseCase) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := uc.Current(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.MiddleName != nil {
		user.MiddleName = *req.MiddleName
	}
	user.UpdatedAt = time.Now()

	if err := uc.users.Update(user); err != nil {
		return nil, err
	}

	// Sincroniza la ficha de empleado vinculada, si existe.
	if user.EmployeeID != "" {
		employee, err := uc.employees.GetByID(user.EmployeeID)
		if err != nil {
			return nil, err
		}
		if employee != nil {
			employee.FirstName = user.FirstName
			employee.LastName = user.LastName
			employee.MiddleName = user.MiddleName
			employee.Email = user.Email
			if err := uc.employees.Update(employee); err != nil {
				return nil, err
			}
		}
	}

	if err := uc.syncCachedUser(ctx, user); err != nil {
		return nil, err
	}
	resp := UserToResponse(user)
	return &resp, nil
}

// ChangePassword verifica la password actual y guarda el hash de la nueva.
func (uc *UseCase) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error {
	user, err := uc.Current(ctx)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUnauthenticated
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return domain.ErrInvalidCredentials
	}
	if len(req.NewPassword) < 8 {
		return domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now()
	if err := uc.users.Update(user); err != nil {
		return err
	}
	return uc.syncCachedUser(ctx, user)
}

// syncCachedUser refresca la copia cacheada solo cuando el puntero persistido
// apunta a la sesión del contexto; una petición ajena no pisa la copia de
// otra sesión.
func (uc *UseCase) syncCachedUser(ctx context.Context, user *entity.User) error {
	if sessionID := SessionIDFromContext(ctx); sessionID != "" {
		current, err := uc.slots.CurrentSessionID()
		if err != nil {
			return err
		}
		if current != sessionID {
			return nil
		}
	}
	return uc.slots.SetCachedCurrentUser(user)
}

func (uc *UseCase) clearSlots() {
	_ = uc.slots.ClearCurrentSessionID()
	_ = uc.slots.ClearCachedCurrentUser()
}

// UserToResponse proyección del usuario sin el hash de password.
func UserToResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		MiddleName: u.MiddleName,
		EmployeeID: u.EmployeeID,
		Role:       string(u.Role),
		Status:     u.Status,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func sessionToResponse(s *entity.Session) dto.SessionResponse {
	return dto.SessionResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		Role:      string(s.Role),
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
	}
}
