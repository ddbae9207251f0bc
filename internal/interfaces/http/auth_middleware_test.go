package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/compras-pro/internal/application/auth"
	"github.com/jhoicas/compras-pro/internal/application/dto"
	"github.com/jhoicas/compras-pro/internal/application/usecase"
	"github.com/jhoicas/compras-pro/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/compras-pro/internal/infrastructure/pdf"
	"github.com/jhoicas/compras-pro/internal/infrastructure/state"
	"github.com/jhoicas/compras-pro/internal/infrastructure/storage"
	apphttp "github.com/jhoicas/compras-pro/internal/interfaces/http"
)

const testSecret = "test-secret-key-for-unit-tests"

// buildTestApp monta la aplicación Fiber completa sobre un snapshot temporal,
// con el router real y sin mocks.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	st, err := state.New(store)
	require.NoError(t, err)
	t.Cleanup(st.Close)

	users := memory.NewUserRepository(st)
	employees := memory.NewEmployeeRepository(st)
	sessions := memory.NewSessionRepository(st)
	requests := memory.NewRequestRepository(st)
	materials := memory.NewMaterialRepository(st)

	authUC := auth.NewUseCase(users, employees, sessions, st, 24*time.Hour, testSecret, "compras-pro-test")
	guard := auth.NewGuard(authUC)
	requestUC := usecase.NewRequestUseCase(requests, guard)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:     authUC,
		RequestUC:  requestUC,
		MaterialUC: usecase.NewMaterialUseCase(materials, requestUC, guard),
		EmployeeUC: usecase.NewEmployeeUseCase(employees, users, guard),
		UserUC:     usecase.NewUserUseCase(users, sessions, requests, materials, employees, st, guard),
		ReportUC:   usecase.NewReportUseCase(requests, materials, employees, infrapdf.NewMarotoReportGenerator(), guard),
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, token string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func getWithToken(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// registerAndLogin registra una cuenta y devuelve el token de su sesión.
func registerAndLogin(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	resp := postJSON(t, app, "/api/auth/register", "", dto.RegisterRequest{
		FirstName: "Jorge",
		LastName:  "Castaño",
		Email:     email,
		Password:  "secreto123",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/api/auth/login", "", dto.LoginRequest{Email: email, Password: "secreto123"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func TestRutaProtegida_SinToken(t *testing.T) {
	app := buildTestApp(t)
	resp := getWithToken(t, app, "/api/auth/me", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRutaProtegida_TokenInvalido(t *testing.T) {
	app := buildTestApp(t)
	resp := getWithToken(t, app, "/api/auth/me", "no-es-un-jwt")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRegistroLoginYMe(t *testing.T) {
	app := buildTestApp(t)
	token := registerAndLogin(t, app, "jorge@compras.local")

	resp := getWithToken(t, app, "/api/auth/me", token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var me dto.UserResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&me))
	assert.Equal(t, "jorge@compras.local", me.Email)
	assert.Equal(t, "employee", me.Role)
}

// El token firmado no basta: si la sesión ya no existe en el snapshot, 401.
func TestLogout_InvalidaElToken(t *testing.T) {
	app := buildTestApp(t)
	token := registerAndLogin(t, app, "jorge@compras.local")

	resp := postJSON(t, app, "/api/auth/logout", token, nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = getWithToken(t, app, "/api/auth/me", token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// Dos sesiones vivas consultando su perfil en paralelo: cada respuesta
// corresponde al token de su petición, nunca al de la otra.
func TestMe_IdentidadAisladaPorPeticion(t *testing.T) {
	app := buildTestApp(t)
	tokenJorge := registerAndLogin(t, app, "jorge@compras.local")
	tokenAna := registerAndLogin(t, app, "ana@compras.local")

	const rounds = 50
	check := func(token, wantEmail string) {
		for i := 0; i < rounds; i++ {
			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			resp, err := app.Test(req, -1)
			if !assert.NoError(t, err) {
				return
			}
			if !assert.Equal(t, fiber.StatusOK, resp.StatusCode) {
				return
			}
			var me dto.UserResponse
			if !assert.NoError(t, json.NewDecoder(resp.Body).Decode(&me)) {
				return
			}
			if !assert.Equal(t, wantEmail, me.Email) {
				return
			}
		}
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		check(tokenJorge, "jorge@compras.local")
	}()
	go func() {
		defer wg.Done()
		check(tokenAna, "ana@compras.local")
	}()
	wg.Wait()
}

// El catálogo se lee sin autenticación.
func TestCatalogo_LecturaPublica(t *testing.T) {
	app := buildTestApp(t)
	resp := getWithToken(t, app, "/api/materials", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// Flujo HTTP completo: crear solicitud, enviarla y chocar contra el rol.
func TestSolicitudes_FlujoHTTP(t *testing.T) {
	app := buildTestApp(t)
	token := registerAndLogin(t, app, "jorge@compras.local")

	resp := postJSON(t, app, "/api/requests", token, dto.CreateRequestRequest{
		Material: "Electrodo E6013",
		Quantity: "25 kg",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created dto.RequestResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "draft", created.Status)

	// Enviar la solicitud propia.
	payload, err := json.Marshal(dto.UpdateStatusRequest{Status: "pending"})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPut, "/api/requests/"+created.ID+"/status", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	sendResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, sendResp.StatusCode)

	// Aprobarla siendo empleado: 403.
	payload, err = json.Marshal(dto.UpdateStatusRequest{Status: "approved"})
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodPut, "/api/requests/"+created.ID+"/status", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	approveResp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, approveResp.StatusCode)
}
