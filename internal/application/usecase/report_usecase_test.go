package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/compras-pro/internal/application/dto"
	"github.com/jhoicas/compras-pro/internal/domain"
	"github.com/jhoicas/compras-pro/internal/domain/entity"
	"github.com/jhoicas/compras-pro/internal/domain/rbac"
	"github.com/jhoicas/compras-pro/internal/domain/repository"
)

func TestReport_SolicitudesAgregadas(t *testing.T) {
	f := newFixture(t)
	f.createAccount(t, "gerente@compras.local", rbac.RoleManager)
	f.loginAs(t, "gerente@compras.local")

	_, err := f.requestUC.Create(f.ctx, dto.CreateRequestRequest{
		Material: "Electrodo", Quantity: "25 kg", BucketType: "Soldadura",
		Amount: decimal.RequireFromString("100.00"),
	})
	require.NoError(t, err)
	second, err := f.requestUC.Create(f.ctx, dto.CreateRequestRequest{
		Material: "Guantes", Quantity: "4 pares", BucketType: "Seguridad",
		Amount: decimal.RequireFromString("50.00"),
	})
	require.NoError(t, err)
	_, err = f.requestUC.SetStatus(f.ctx, second.ID, entity.StatusSubmitted)
	require.NoError(t, err)

	report, err := f.reportUC.RequestsReport(f.ctx, repository.RequestFilter{})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 1, report.ByStatus["draft"])
	assert.Equal(t, 1, report.ByStatus["pending"])
	assert.Equal(t, 1, report.ByBucketType["Soldadura"])
	assert.True(t, report.TotalAmount.Equal(decimal.RequireFromString("150.00")))
	assert.True(t, report.AverageAmount.Equal(decimal.RequireFromString("75.00")))
}

// Los reportes exigen capacidad: el empleado no los genera.
func TestReport_EmpleadoNoGenera(t *testing.T) {
	f := newFixture(t)
	f.createAccount(t, "empleado@compras.local", rbac.RoleEmployee)
	f.loginAs(t, "empleado@compras.local")

	_, err := f.reportUC.RequestsReport(f.ctx, repository.RequestFilter{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = f.reportUC.MaterialsReport(f.ctx)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = f.reportUC.MaterialsReportPDF(f.ctx)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestReport_CatalogoConStockBajo(t *testing.T) {
	f := newFixture(t)
	f.createAccount(t, "compras@compras.local", rbac.RoleProcurement)
	f.loginAs(t, "compras@compras.local")

	seedMaterial(t, f, "Electrodo E6013", "Soldadura", "kg", "18.50", 120)
	seedMaterial(t, f, "Careta fotosensible", "Seguridad", "unidad", "95.00", 5)

	report, err := f.reportUC.MaterialsReport(f.ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 1, report.ByCategory["Soldadura"])
	require.Len(t, report.LowStock, 1)
	assert.Equal(t, "Careta fotosensible", report.LowStock[0].Name)
	// 18.50×120 + 95.00×5 = 2220.00 + 475.00
	assert.True(t, report.TotalValue.Equal(decimal.RequireFromString("2695.00")))
}

// El export PDF produce un documento no vacío.
func TestReport_ExportPDF(t *testing.T) {
	f := newFixture(t)
	f.createAccount(t, "gerente@compras.local", rbac.RoleManager)
	f.loginAs(t, "gerente@compras.local")

	_, err := f.requestUC.Create(f.ctx, dto.CreateRequestRequest{
		Material: "Electrodo", Quantity: "25 kg",
		Amount: decimal.RequireFromString("100.00"),
	})
	require.NoError(t, err)

	pdf, err := f.reportUC.RequestsReportPDF(f.ctx, repository.RequestFilter{})
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestReport_OverviewPorRol(t *testing.T) {
	f := newFixture(t)
	f.createAccount(t, "a@compras.local", rbac.RoleEmployee)
	f.createAccount(t, "gerente@compras.local", rbac.RoleManager)

	f.loginAs(t, "a@compras.local")
	created, err := f.requestUC.Create(f.ctx, dto.CreateRequestRequest{Material: "Discos", Quantity: "10 unidades"})
	require.NoError(t, err)
	_, err = f.requestUC.SetStatus(f.ctx, created.ID, entity.StatusSubmitted)
	require.NoError(t, err)

	f.loginAs(t, "gerente@compras.local")
	_, err = f.requestUC.Create(f.ctx, dto.CreateRequestRequest{Material: "Alambre", Quantity: "5 kg"})
	require.NoError(t, err)

	// El gerente ve el total global.
	stats, err := f.reportUC.Overview(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalRequests)
	assert.Equal(t, 1, stats.PendingRequests)

	// El empleado solo cuenta lo suyo.
	f.loginAs(t, "a@compras.local")
	stats, err = f.reportUC.Overview(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalRequests)
}

func TestAdmin_SystemStats(t *testing.T) {
	f := newFixture(t)
	f.createAccount(t, "gerente@compras.local", rbac.RoleManager)
	f.createAccount(t, "admin@compras.local", rbac.RoleAdmin)

	f.loginAs(t, "gerente@compras.local")
	_, err := f.userUC.SystemStats(f.ctx)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	f.loginAs(t, "admin@compras.local")
	stats, err := f.userUC.SystemStats(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Users)
	assert.Equal(t, 2, stats.Employees)
	assert.Equal(t, entity.SchemaVersion, stats.SchemaVersion)
	assert.GreaterOrEqual(t, stats.ActiveSessions, 1)
}
