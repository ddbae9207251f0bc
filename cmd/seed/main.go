// Comando seed: inicializa un snapshot de demostración con cuentas para cada
// rol y un catálogo de arranque. Pisa el snapshot existente.
package main

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/compras-pro/internal/domain/entity"
	"github.com/jhoicas/compras-pro/internal/domain/rbac"
	"github.com/jhoicas/compras-pro/internal/infrastructure/storage"
	"github.com/jhoicas/compras-pro/pkg/config"
	"github.com/jhoicas/compras-pro/pkg/logger"
)

type seedAccount struct {
	email      string
	password   string
	firstName  string
	lastName   string
	role       rbac.Role
	position   string
	department string
}

var accounts = []seedAccount{
	{"admin@compras.local", "admin12345", "Ana", "Ramírez", rbac.RoleAdmin, "Administradora de sistema", "Departamento de TI"},
	{"gerente@compras.local", "gerente123", "Luis", "Herrera", rbac.RoleManager, "Gerente de planta", "Dirección"},
	{"compras@compras.local", "compras123", "Marta", "Quintero", rbac.RoleProcurement, "Analista de compras", "Departamento de compras"},
	{"empleado@compras.local", "empleado123", "Jorge", "Castaño", rbac.RoleEmployee, "Soldador", "Taller de soldadura y recargue"},
}

type seedMaterial struct {
	name     string
	category string
	unit     string
	price    string
	stock    int
}

var materials = []seedMaterial{
	{"Electrodo E6013 3.2mm", "Soldadura", "kg", "18.50", 120},
	{"Alambre MIG ER70S-6 1.0mm", "Soldadura", "kg", "22.00", 45},
	{"Disco de corte 115mm", "Abrasivos", "unidad", "3.80", 200},
	{"Guantes de carnaza", "Seguridad", "par", "6.50", 8},
	{"Careta de soldar fotosensible", "Seguridad", "unidad", "95.00", 5},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	store, err := storage.NewFileStore(cfg.Storage.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento local")
	}

	now := time.Now()
	snap := entity.NewSnapshot()

	for i, acc := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(acc.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hashear password de demo")
		}
		employeeID := fmt.Sprintf("EMP-%03d", i+1)
		snap.Employees = append(snap.Employees, &entity.Employee{
			ID:         employeeID,
			FirstName:  acc.firstName,
			LastName:   acc.lastName,
			Position:   acc.position,
			Department: acc.department,
			Email:      acc.email,
			Role:       acc.role,
			Status:     entity.StatusActive,
			CreatedAt:  now,
		})
		snap.Users = append(snap.Users, &entity.User{
			ID:           fmt.Sprintf("USR-%03d", i+1),
			Email:        acc.email,
			PasswordHash: string(hash),
			FirstName:    acc.firstName,
			LastName:     acc.lastName,
			EmployeeID:   employeeID,
			Role:         acc.role,
			Status:       entity.StatusActive,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	for i, mat := range materials {
		price, err := decimal.NewFromString(mat.price)
		if err != nil {
			log.Fatal().Err(err).Str("material", mat.name).Msg("precio de demo inválido")
		}
		snap.Materials = append(snap.Materials, &entity.Material{
			ID:        fmt.Sprintf("MAT-%03d", i+1),
			Name:      mat.name,
			Category:  mat.category,
			Unit:      mat.unit,
			Price:     price,
			Stock:     mat.stock,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	snap.Settings.LastUpdate = now
	if err := store.SaveSnapshot(snap); err != nil {
		log.Fatal().Err(err).Msg("guardar snapshot de demo")
	}

	log.Info().
		Int("usuarios", len(snap.Users)).
		Int("materiales", len(snap.Materials)).
		Str("dir", cfg.Storage.DataDir).
		Msg("snapshot de demostración creado")
	for _, acc := range accounts {
		log.Info().Str("email", acc.email).Str("password", acc.password).Str("rol", string(acc.role)).Msg("cuenta de demo")
	}
}
