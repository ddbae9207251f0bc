package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/compras-pro/internal/application/auth"
	"github.com/jhoicas/compras-pro/internal/application/dto"
	"github.com/jhoicas/compras-pro/internal/domain/entity"
	"github.com/jhoicas/compras-pro/internal/domain/rbac"
	"github.com/jhoicas/compras-pro/internal/domain/repository"
)

// ReportPDFGenerator puerto de render de reportes a PDF.
type ReportPDFGenerator interface {
	RequestsReportPDF(report *dto.RequestsReport) ([]byte, error)
	MaterialsReportPDF(report *dto.MaterialsReport) ([]byte, error)
}

// ReportUseCase agregados sobre solicitudes y catálogo, con export a PDF.
type ReportUseCase struct {
	requests  repository.RequestRepository
	materials repository.MaterialRepository
	employees repository.EmployeeRepository
	pdf       ReportPDFGenerator
	guard     *auth.Guard
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(
	requests repository.RequestRepository,
	materials repository.MaterialRepository,
	employees repository.EmployeeRepository,
	pdf ReportPDFGenerator,
	guard *auth.Guard,
) *ReportUseCase {
	return &ReportUseCase{
		requests:  requests,
		materials: materials,
		employees: employees,
		pdf:       pdf,
		guard:     guard,
	}
}

// RequestsReport agregados sobre las solicitudes que pasan el filtro.
func (uc *ReportUseCase) RequestsReport(ctx context.Context, filter repository.RequestFilter) (*dto.RequestsReport, error) {
	if _, err := uc.guard.Require(ctx, rbac.CapGenerateReports); err != nil {
		return nil, err
	}

	requests, err := uc.requests.List(filter)
	if err != nil {
		return nil, err
	}

	report := &dto.RequestsReport{
		GeneratedAt:  time.Now(),
		Total:        len(requests),
		ByStatus:     make(map[string]int),
		ByBucketType: make(map[string]int),
	}
	for _, r := range requests {
		report.ByStatus[string(r.Status)]++
		if r.BucketType != "" {
			report.ByBucketType[r.BucketType]++
		}
		report.TotalAmount = report.TotalAmount.Add(r.Amount)
	}
	if report.Total > 0 {
		report.AverageAmount = report.TotalAmount.Div(decimal.NewFromInt(int64(report.Total))).Round(2)
	}
	return report, nil
}

// MaterialsReport agregados sobre el catálogo: por categoría, stock bajo y
// valor total de existencias.
func (uc *ReportUseCase) MaterialsReport(ctx context.Context) (*dto.MaterialsReport, error) {
	if _, err := uc.guard.Require(ctx, rbac.CapGenerateReports); err != nil {
		return nil, err
	}

	materials, err := uc.materials.Search("", "")
	if err != nil {
		return nil, err
	}

	report := &dto.MaterialsReport{
		GeneratedAt: time.Now(),
		Total:       len(materials),
		ByCategory:  make(map[string]int),
		LowStock:    []dto.MaterialResponse{},
	}
	for _, m := range materials {
		if m.Category != "" {
			report.ByCategory[m.Category]++
		}
		if m.LowStock() {
			report.LowStock = append(report.LowStock, materialToResponse(m))
		}
		report.TotalValue = report.TotalValue.Add(m.StockValue())
	}
	return report, nil
}

// RequestsReportPDF genera el reporte de solicitudes y lo exporta a PDF.
func (uc *ReportUseCase) RequestsReportPDF(ctx context.Context, filter repository.RequestFilter) ([]byte, error) {
	if _, err := uc.guard.Require(ctx, rbac.CapExportReports); err != nil {
		return nil, err
	}
	report, err := uc.RequestsReport(ctx, filter)
	if err != nil {
		return nil, err
	}
	return uc.pdf.RequestsReportPDF(report)
}

// MaterialsReportPDF genera el reporte de catálogo y lo exporta a PDF.
func (uc *ReportUseCase) MaterialsReportPDF(ctx context.Context) ([]byte, error) {
	if _, err := uc.guard.Require(ctx, rbac.CapExportReports); err != nil {
		return nil, err
	}
	report, err := uc.MaterialsReport(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.MaterialsReportPDF(report)
}

// Overview contadores del panel de inicio, para cualquier usuario
// autenticado.
func (uc *ReportUseCase) Overview(ctx context.Context) (*dto.OverviewStats, error) {
	user, err := uc.guard.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	filter := repository.RequestFilter{}
	perms := rbac.PermissionsFor(user.Role)
	if !perms.Has(rbac.CapViewAllRequests) {
		filter.CreatedBy = user.ID
	}
	requests, err := uc.requests.List(filter)
	if err != nil {
		return nil, err
	}
	materials, err := uc.materials.Search("", "")
	if err != nil {
		return nil, err
	}
	employees, err := uc.employees.Search("")
	if err != nil {
		return nil, err
	}

	stats := &dto.OverviewStats{
		TotalRequests:  len(requests),
		TotalMaterials: len(materials),
		TotalEmployees: len(employees),
	}
	for _, r := range requests {
		if r.Status == entity.StatusSubmitted {
			stats.PendingRequests++
		}
	}
	return stats, nil
}
