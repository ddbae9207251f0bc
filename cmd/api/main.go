package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/compras-pro/internal/application/auth"
	"github.com/jhoicas/compras-pro/internal/application/usecase"
	"github.com/jhoicas/compras-pro/internal/domain/repository"
	"github.com/jhoicas/compras-pro/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/compras-pro/internal/infrastructure/pdf"
	"github.com/jhoicas/compras-pro/internal/infrastructure/state"
	"github.com/jhoicas/compras-pro/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/compras-pro/internal/interfaces/http"
	"github.com/jhoicas/compras-pro/pkg/config"
	"github.com/jhoicas/compras-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	fileStore, err := storage.NewFileStore(cfg.Storage.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento local")
	}

	// Réplica remota opcional: el snapshot local sigue siendo la autoridad.
	var store repository.SnapshotStore = fileStore
	if cfg.Storage.DatabaseURL != "" {
		mirror, err := storage.NewPostgresMirror(context.Background(), cfg.Storage.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a la réplica PostgreSQL")
		}
		store = storage.NewMirroredStore(fileStore, mirror, log)
		log.Info().Msg("réplica PostgreSQL habilitada")
	}

	appState, err := state.New(store)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar snapshot")
	}
	defer appState.Close()

	userRepo := memory.NewUserRepository(appState)
	sessionRepo := memory.NewSessionRepository(appState)
	requestRepo := memory.NewRequestRepository(appState)
	materialRepo := memory.NewMaterialRepository(appState)
	employeeRepo := memory.NewEmployeeRepository(appState)

	authUC := auth.NewUseCase(
		userRepo, employeeRepo, sessionRepo, appState,
		time.Duration(cfg.Session.TTLHours)*time.Hour,
		cfg.Session.TokenSecret, cfg.Session.TokenIssuer,
	)
	guard := auth.NewGuard(authUC)

	requestUC := usecase.NewRequestUseCase(requestRepo, guard)
	materialUC := usecase.NewMaterialUseCase(materialRepo, requestUC, guard)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, userRepo, guard)
	userUC := usecase.NewUserUseCase(userRepo, sessionRepo, requestRepo, materialRepo, employeeRepo, appState, guard)
	reportUC := usecase.NewReportUseCase(requestRepo, materialRepo, employeeRepo, infrapdf.NewMarotoReportGenerator(), guard)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Compras Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		RequestUC:  requestUC,
		MaterialUC: materialUC,
		EmployeeUC: employeeUC,
		UserUC:     userUC,
		ReportUC:   reportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
