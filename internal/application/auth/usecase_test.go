package auth_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/compras-pro/internal/application/auth"
	"github.com/jhoicas/compras-pro/internal/application/dto"
	"github.com/jhoicas/compras-pro/internal/domain"
	"github.com/jhoicas/compras-pro/internal/infrastructure/memory"
	"github.com/jhoicas/compras-pro/internal/infrastructure/state"
	"github.com/jhoicas/compras-pro/internal/infrastructure/storage"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "compras-pro-test"
)

type authFixture struct {
	uc       *auth.UseCase
	sessions *memory.SessionRepo
	users    *memory.UserRepo
	state    *state.AppState
}

// newAuthFixture monta el stack real sobre un directorio temporal: store de
// archivos, snapshot, repos y caso de uso. Sin mocks.
func newAuthFixture(t *testing.T, ttl time.Duration) *authFixture {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	st, err := state.New(store)
	require.NoError(t, err)
	t.Cleanup(st.Close)

	users := memory.NewUserRepository(st)
	employees := memory.NewEmployeeRepository(st)
	sessions := memory.NewSessionRepository(st)
	uc := auth.NewUseCase(users, employees, sessions, st, ttl, testSecret, testIssuer)
	return &authFixture{uc: uc, sessions: sessions, users: users, state: st}
}

func register(t *testing.T, uc *auth.UseCase, email, password string) *dto.UserResponse {
	t.Helper()
	user, err := uc.Register(dto.RegisterRequest{
		FirstName:  "Jorge",
		LastName:   "Castaño",
		Email:      email,
		Password:   password,
		Department: "welding",
	})
	require.NoError(t, err)
	return user
}

func TestRegister_CreaEmpleadoYUsuario(t *testing.T) {
	f := newAuthFixture(t, 24*time.Hour)

	user := register(t, f.uc, "jorge@compras.local", "secreto123")

	assert.Equal(t, "USR-001", user.ID)
	assert.Equal(t, "EMP-001", user.EmployeeID)
	assert.Equal(t, "employee", user.Role)
	assert.Equal(t, "active", user.Status)
	assert.Equal(t, "jorge@compras.local", user.Email)

	// El hash guardado no es la password en texto y la verifica bcrypt.
	stored, err := f.users.GetByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto123")))
}

// El email se normaliza: mayúsculas y formas Unicode compatibles colisionan.
func TestRegister_EmailDuplicadoNormalizado(t *testing.T) {
	f := newAuthFixture(t, 24*time.Hour)

	register(t, f.uc, "Jorge@Compras.Local", "secreto123")

	_, err := f.uc.Register(dto.RegisterRequest{
		FirstName: "Otro",
		LastName:  "Jorge",
		Email:     "jorge@compras.local",
		Password:  "secreto456",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_PasswordCorta(t *testing.T) {
	f := newAuthFixture(t, 24*time.Hour)
	_, err := f.uc.Register(dto.RegisterRequest{
		FirstName: "Jorge",
		LastName:  "Castaño",
		Email:     "jorge@compras.local",
		Password:  "corta",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_SesionDe24Horas(t *testing.T) {
	f := newAuthFixture(t, 24*time.Hour)
	register(t, f.uc, "jorge@compras.local", "secreto123")

	out, err := f.uc.Login(dto.LoginRequest{Email: "jorge@compras.local", Password: "secreto123"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "USR-001", out.User.ID)
	// Expiración exacta: creación + 24h.
	assert.Equal(t, 24*time.Hour, out.Session.ExpiresAt.Sub(out.Session.CreatedAt))

	// El token transporta el id de la sesión recién creada.
	sessionID, err := f.uc.ParseToken(out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.Session.ID, sessionID)

	// Y la identidad actual resuelve al usuario.
	current, err := f.uc.Current(context.Background())
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "USR-001", current.ID)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	f := newAuthFixture(t, 24*time.Hour)
	register(t, f.uc, "jorge@compras.local", "secreto123")

	_, err := f.uc.Login(dto.LoginRequest{Email: "jorge@compras.local", Password: "incorrecta1"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// Una cuenta inactiva se reporta como no encontrada, sin revelar que existe.
func TestLogin_CuentaInactiva(t *testing.T) {
	f := newAuthFixture(t, 24*time.Hour)
	user := register(t, f.uc, "jorge@compras.local", "secreto123")

	stored, err := f.users.GetByID(user.ID)
	require.NoError(t, err)
	stored.Status = "inactive"
	require.NoError(t, f.users.Update(stored))

	_, err = f.uc.Login(dto.LoginRequest{Email: "jorge@compras.local", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogout_Idempotente(t *testing.T) {
	f := newAuthFixture(t, 24*time.Hour)
	register(t, f.uc, "jorge@compras.local", "secreto123")

	out, err := f.uc.Login(dto.LoginRequest{Email: "jorge@compras.local", Password: "secreto123"})
	require.NoError(t, err)

	require.NoError(t, f.uc.Logout(context.Background()))

	// La sesión desapareció del snapshot y la identidad quedó vacía.
	session, err := f.sessions.GetByID(out.Session.ID)
	require.NoError(t, err)
	assert.Nil(t, session)
	current, err := f.uc.Current(context.Background())
	require.NoError(t, err)
	assert.Nil(t, current)

	// Repetir el logout no falla.
	assert.NoError(t, f.uc.Logout(context.Background()))
}

// La expiración es perezosa: la sesión vencida se destruye al consultarla.
func TestCurrent_ExpiracionPerezosa(t *testing.T) {
	// TTL negativo: toda sesión nace ya vencida.
	f := newAuthFixture(t, -time.Hour)
	register(t, f.uc, "jorge@compras.local", "secreto123")

	out, err := f.uc.Login(dto.LoginRequest{Email: "jorge@compras.local", Password: "secreto123"})
	require.NoError(t, err)

	current, err := f.uc.Current(context.Background())
	require.NoError(t, err)
	assert.Nil(t, current)

	// La sesión vencida fue eliminada, no solo ignorada.
	session, err := f.sessions.GetByID(out.Session.ID)
	require.NoError(t, err)
	assert.Nil(t, session)

	// Una segunda resolución sigue vacía y no falla.
	current, err = f.uc.Current(context.Background())
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestResolveSession_SesionInexistente(t *testing.T) {
	f := newAuthFixture(t, 24*time.Hour)
	_, err := f.uc.ResolveSession("session-0-nope")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestChangePassword(t *testing.T) {
	f := newAuthFixture(t, 24*time.Hour)
	register(t, f.uc, "jorge@compras.local", "secreto123")
	_, err := f.uc.Login(dto.LoginRequest{Email: "jorge@compras.local", Password: "secreto123"})
	require.NoError(t, err)

	// Password actual incorrecta.
	err = f.uc.ChangePassword(context.Background(), dto.ChangePasswordRequest{CurrentPassword: "incorrecta1", NewPassword: "nueva1234"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	// Nueva demasiado corta.
	err = f.uc.ChangePassword(context.Background(), dto.ChangePasswordRequest{CurrentPassword: "secreto123", NewPassword: "corta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Cambio válido: la nueva credencial abre sesión.
	require.NoError(t, f.uc.ChangePassword(context.Background(), dto.ChangePasswordRequest{CurrentPassword: "secreto123", NewPassword: "nueva1234"}))
	require.NoError(t, f.uc.Logout(context.Background()))
	_, err = f.uc.Login(dto.LoginRequest{Email: "jorge@compras.local", Password: "nueva1234"})
	assert.NoError(t, err)
}

func TestUpdateProfile_SincronizaFicha(t *testing.T) {
	f := newAuthFixture(t, 24*time.Hour)
	user := register(t, f.uc, "jorge@compras.local", "secreto123")
	_, err := f.uc.Login(dto.LoginRequest{Email: "jorge@compras.local", Password: "secreto123"})
	require.NoError(t, err)

	nuevo := "Mario"
	updated, err := f.uc.UpdateProfile(context.Background(), dto.UpdateProfileRequest{FirstName: &nuevo})
	require.NoError(t, err)
	assert.Equal(t, "Mario", updated.FirstName)

	// La ficha de empleado vinculada refleja el cambio.
	employees := memory.NewEmployeeRepository(f.state)
	emp, err := employees.GetByID(user.EmployeeID)
	require.NoError(t, err)
	require.NotNil(t, emp)
	assert.Equal(t, "Mario", emp.FirstName)
}

// Dos sesiones vivas: cada contexto resuelve a su propio usuario aunque el
// puntero persistido apunte al último login.
func TestCurrent_ContextosIndependientes(t *testing.T) {
	f := newAuthFixture(t, 24*time.Hour)
	register(t, f.uc, "jorge@compras.local", "secreto123")
	register(t, f.uc, "ana@compras.local", "secreto456")

	outJorge, err := f.uc.Login(dto.LoginRequest{Email: "jorge@compras.local", Password: "secreto123"})
	require.NoError(t, err)
	outAna, err := f.uc.Login(dto.LoginRequest{Email: "ana@compras.local", Password: "secreto456"})
	require.NoError(t, err)

	ctxJorge := auth.WithSessionID(context.Background(), outJorge.Session.ID)
	ctxAna := auth.WithSessionID(context.Background(), outAna.Session.ID)

	current, err := f.uc.Current(ctxJorge)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "jorge@compras.local", current.Email)

	current, err = f.uc.Current(ctxAna)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "ana@compras.local", current.Email)

	// El logout de Ana no arrastra la sesión de Jorge.
	require.NoError(t, f.uc.Logout(ctxAna))
	current, err = f.uc.Current(ctxJorge)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "jorge@compras.local", current.Email)
}

// Registros concurrentes con el mismo email: exactamente uno gana y no queda
// ninguna ficha de empleado huérfana del perdedor.
func TestRegister_ConcurrenteMismoEmail(t *testing.T) {
	f := newAuthFixture(t, 24*time.Hour)

	const workers = 8
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.uc.Register(dto.RegisterRequest{
				FirstName: "Jorge",
				LastName:  fmt.Sprintf("Castaño %d", i),
				Email:     "jorge@compras.local",
				Password:  "secreto123",
			})
		}(i)
	}
	wg.Wait()

	var ok, dup int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		default:
			require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
			dup++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, workers-1, dup)

	users, err := f.users.List()
	require.NoError(t, err)
	assert.Len(t, users, 1)

	employees, err := memory.NewEmployeeRepository(f.state).Search("")
	require.NoError(t, err)
	assert.Len(t, employees, 1)
}

// Altas concurrentes con emails distintos no acuñan ids repetidos.
func TestRegister_ConcurrenteIdsUnicos(t *testing.T) {
	f := newAuthFixture(t, 24*time.Hour)

	const workers = 8
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := f.uc.Register(dto.RegisterRequest{
				FirstName: "Jorge",
				LastName:  "Castaño",
				Email:     fmt.Sprintf("jorge%d@compras.local", i),
				Password:  "secreto123",
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	users, err := f.users.List()
	require.NoError(t, err)
	require.Len(t, users, workers)
	seen := make(map[string]bool)
	for _, u := range users {
		assert.False(t, seen[u.ID], "id repetido %s", u.ID)
		seen[u.ID] = true
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "jorge@compras.local", auth.NormalizeEmail("  Jorge@Compras.LOCAL "))
	assert.Equal(t, auth.NormalizeEmail("ana@compras.local"), auth.NormalizeEmail("ANA@compras.local"))
}
