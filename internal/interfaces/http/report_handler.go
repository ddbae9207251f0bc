package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/compras-pro/internal/application/usecase"
)

// ReportHandler maneja reportes agregados y su export a PDF.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Overview contadores del panel de inicio.
func (h *ReportHandler) Overview(c *fiber.Ctx) error {
	out, err := h.uc.Overview(c.UserContext())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Requests reporte agregado de solicitudes. Mismos filtros que el listado.
func (h *ReportHandler) Requests(c *fiber.Ctx) error {
	filter, err := parseRequestFilter(c)
	if err != nil {
		return badBody(c)
	}
	out, err := h.uc.RequestsReport(c.UserContext(), filter)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// Materials reporte agregado del catálogo.
func (h *ReportHandler) Materials(c *fiber.Ctx) error {
	out, err := h.uc.MaterialsReport(c.UserContext())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// RequestsPDF export a PDF del reporte de solicitudes.
func (h *ReportHandler) RequestsPDF(c *fiber.Ctx) error {
	filter, err := parseRequestFilter(c)
	if err != nil {
		return badBody(c)
	}
	pdf, err := h.uc.RequestsReportPDF(c.UserContext(), filter)
	if err != nil {
		return writeDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-solicitudes.pdf"`)
	return c.Send(pdf)
}

// MaterialsPDF export a PDF del reporte de catálogo.
func (h *ReportHandler) MaterialsPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.MaterialsReportPDF(c.UserContext())
	if err != nil {
		return writeDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte-materiales.pdf"`)
	return c.Send(pdf)
}
