package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/compras-pro/internal/application/dto"
	"github.com/jhoicas/compras-pro/internal/domain"
	"github.com/jhoicas/compras-pro/internal/domain/rbac"
)

func seedMaterial(t *testing.T, f *fixture, name, category, unit, price string, stock int) *dto.MaterialResponse {
	t.Helper()
	m, err := f.materialUC.Create(f.ctx, dto.CreateMaterialRequest{
		Name:     name,
		Category: category,
		Unit:     unit,
		Price:    decimal.RequireFromString(price),
		Stock:    stock,
	})
	require.NoError(t, err)
	return m
}

// Solo compras y admin mutan el catálogo; cualquiera lo lee.
func TestMaterial_MutacionesProtegidas(t *testing.T) {
	f := newFixture(t)
	f.createAccount(t, "empleado@compras.local", rbac.RoleEmployee)
	f.createAccount(t, "compras@compras.local", rbac.RoleProcurement)

	f.loginAs(t, "empleado@compras.local")
	_, err := f.materialUC.Create(f.ctx, dto.CreateMaterialRequest{Name: "Electrodo"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	f.loginAs(t, "compras@compras.local")
	created := seedMaterial(t, f, "Electrodo E6013", "Soldadura", "kg", "18.50", 120)
	assert.Equal(t, "MAT-001", created.ID)
	assert.False(t, created.LowStock)

	// La búsqueda es abierta: funciona incluso sin sesión.
	require.NoError(t, f.auth.Logout(f.ctx))
	list, err := f.materialUC.Search("electrodo", "")
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)

	got, err := f.materialUC.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Electrodo E6013", got.Name)
}

func TestMaterial_BusquedaPorCategoria(t *testing.T) {
	f := newFixture(t)
	f.createAccount(t, "admin@compras.local", rbac.RoleAdmin)
	f.loginAs(t, "admin@compras.local")
	seedMaterial(t, f, "Electrodo E6013", "Soldadura", "kg", "18.50", 120)
	seedMaterial(t, f, "Guantes de carnaza", "Seguridad", "par", "6.50", 8)

	list, err := f.materialUC.Search("", "Seguridad")
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "Guantes de carnaza", list.Materials[0].Name)
	assert.True(t, list.Materials[0].LowStock, "8 unidades está por debajo del umbral")
}

// El umbral de stock bajo es estricto: 9 avisa, 10 todavía no.
func TestMaterial_UmbralStockBajo(t *testing.T) {
	f := newFixture(t)
	f.createAccount(t, "admin@compras.local", rbac.RoleAdmin)
	f.loginAs(t, "admin@compras.local")

	justo := seedMaterial(t, f, "Boquilla de contacto", "Soldadura", "unidad", "3.20", 10)
	assert.False(t, justo.LowStock, "10 unidades no dispara el aviso")

	bajo := seedMaterial(t, f, "Tobera cerámica", "Soldadura", "unidad", "4.80", 9)
	assert.True(t, bajo.LowStock)
}

// Pedir un material genera una solicitud draft con monto = precio × cantidad.
func TestMaterial_OrderGeneraSolicitud(t *testing.T) {
	f := newFixture(t)
	f.createAccount(t, "compras@compras.local", rbac.RoleProcurement)
	f.createAccount(t, "empleado@compras.local", rbac.RoleEmployee)

	f.loginAs(t, "compras@compras.local")
	material := seedMaterial(t, f, "Alambre MIG", "Soldadura", "kg", "22.00", 45)

	f.loginAs(t, "empleado@compras.local")
	request, err := f.materialUC.Order(f.ctx, dto.OrderMaterialRequest{MaterialID: material.ID, Quantity: 5})
	require.NoError(t, err)

	assert.Equal(t, "draft", request.Status)
	assert.Equal(t, "Alambre MIG", request.Material)
	assert.Equal(t, "5 kg", request.Quantity)
	assert.True(t, request.Amount.Equal(decimal.RequireFromString("110.00")), "monto = 22.00 × 5")
}

func TestMaterial_OrderMaterialInexistente(t *testing.T) {
	f := newFixture(t)
	f.createAccount(t, "empleado@compras.local", rbac.RoleEmployee)
	f.loginAs(t, "empleado@compras.local")

	_, err := f.materialUC.Order(f.ctx, dto.OrderMaterialRequest{MaterialID: "MAT-999", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMaterial_DeleteSoloAdmin(t *testing.T) {
	f := newFixture(t)
	f.createAccount(t, "compras@compras.local", rbac.RoleProcurement)
	f.createAccount(t, "admin@compras.local", rbac.RoleAdmin)

	f.loginAs(t, "compras@compras.local")
	material := seedMaterial(t, f, "Careta", "Seguridad", "unidad", "95.00", 5)

	// Compras edita pero no borra.
	err := f.materialUC.Delete(f.ctx, material.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	f.loginAs(t, "admin@compras.local")
	require.NoError(t, f.materialUC.Delete(f.ctx, material.ID))
	_, err = f.materialUC.GetByID(material.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
