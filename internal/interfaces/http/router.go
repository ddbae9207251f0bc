package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/compras-pro/internal/application/auth"
	"github.com/jhoicas/compras-pro/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	RequestUC  *usecase.RequestUseCase
	MaterialUC *usecase.MaterialUseCase
	EmployeeUC *usecase.EmployeeUseCase
	UserUC     *usecase.UserUseCase
	ReportUC   *usecase.ReportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Catálogo (lecturas públicas)
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	api.Get("/materials", materialHandler.List)
	api.Get("/materials/:id", materialHandler.GetByID)

	// Rutas protegidas (requieren Bearer token con sesión viva)
	protected := api.Group("/", AuthMiddleware(deps.AuthUC))

	// Sesión y perfil (protegido)
	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)
	protected.Put("/auth/profile", authHandler.UpdateProfile)
	protected.Put("/auth/password", authHandler.ChangePassword)

	// Solicitudes (protegido)
	requestHandler := NewRequestHandler(deps.RequestUC)
	requests := protected.Group("/requests")
	requests.Post("/", requestHandler.Create)
	requests.Get("/", requestHandler.List)
	requests.Get("/:id", requestHandler.GetByID)
	requests.Put("/:id", requestHandler.Update)
	requests.Put("/:id/status", requestHandler.SetStatus)
	requests.Delete("/:id", requestHandler.Delete)

	// Catálogo, mutaciones y pedido directo (protegido)
	protected.Post("/materials", materialHandler.Create)
	protected.Put("/materials/:id", materialHandler.Update)
	protected.Delete("/materials/:id", materialHandler.Delete)
	protected.Post("/materials/:id/order", materialHandler.Order)

	// Empleados (protegido)
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees := protected.Group("/employees")
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)
	employees.Post("/:id/reset-password", employeeHandler.ResetPassword)

	// Reportes (protegido)
	reportHandler := NewReportHandler(deps.ReportUC)
	reports := protected.Group("/reports")
	reports.Get("/overview", reportHandler.Overview)
	reports.Get("/requests", reportHandler.Requests)
	reports.Get("/requests/pdf", reportHandler.RequestsPDF)
	reports.Get("/materials", reportHandler.Materials)
	reports.Get("/materials/pdf", reportHandler.MaterialsPDF)

	// Administración (protegido)
	adminHandler := NewAdminHandler(deps.UserUC)
	admin := protected.Group("/admin")
	admin.Get("/users", adminHandler.ListUsers)
	admin.Delete("/users/:id", adminHandler.DeleteUser)
	admin.Get("/stats", adminHandler.Stats)
}
