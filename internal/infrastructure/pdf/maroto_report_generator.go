// Package pdf render de los reportes de compras a PDF con Maroto v2.
package pdf

import (
	"fmt"
	"sort"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/compras-pro/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator implementa usecase.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()
	return maroto.New(cfg)
}

// RequestsReportPDF genera el PDF del reporte de solicitudes.
func (g *MarotoReportGenerator) RequestsReportPDF(report *dto.RequestsReport) ([]byte, error) {
	m := newDocument("Reporte de solicitudes de compra")

	m.AddRows(titleRow("Reporte de solicitudes de compra", report.GeneratedAt.Format("02/01/2006 15:04")))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(keyValueRow("Total de solicitudes", fmt.Sprintf("%d", report.Total)))
	m.AddRows(keyValueRow("Monto total", report.TotalAmount.StringFixed(2)))
	m.AddRows(keyValueRow("Monto promedio", report.AverageAmount.StringFixed(2)))

	m.AddRows(sectionRow("Por estado"))
	for _, r := range countRows(report.ByStatus) {
		m.AddRows(r)
	}

	m.AddRows(sectionRow("Por tipo"))
	for _, r := range countRows(report.ByBucketType) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte de solicitudes: %w", err)
	}
	return doc.GetBytes(), nil
}

// MaterialsReportPDF genera el PDF del reporte de catálogo.
func (g *MarotoReportGenerator) MaterialsReportPDF(report *dto.MaterialsReport) ([]byte, error) {
	m := newDocument("Reporte de catálogo de materiales")

	m.AddRows(titleRow("Reporte de catálogo de materiales", report.GeneratedAt.Format("02/01/2006 15:04")))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(keyValueRow("Total de materiales", fmt.Sprintf("%d", report.Total)))
	m.AddRows(keyValueRow("Valor total de existencias", report.TotalValue.StringFixed(2)))

	m.AddRows(sectionRow("Por categoría"))
	for _, r := range countRows(report.ByCategory) {
		m.AddRows(r)
	}

	m.AddRows(sectionRow("Stock bajo"))
	if len(report.LowStock) == 0 {
		m.AddRows(row.New(6).Add(
			col.New(12).Add(text.New("Sin materiales con stock bajo", props.Text{Size: 9, Color: colorGray})),
		))
	}
	for _, mat := range report.LowStock {
		m.AddRows(row.New(6).Add(
			col.New(3).Add(text.New(mat.ID, props.Text{Size: 9})),
			col.New(6).Add(text.New(mat.Name, props.Text{Size: 9})),
			col.New(3).Add(text.New(fmt.Sprintf("%d %s", mat.Stock, mat.Unit), props.Text{
				Size: 9, Align: align.Right,
			})),
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte de materiales: %w", err)
	}
	return doc.GetBytes(), nil
}

func titleRow(title, generated string) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
		),
		col.New(4).Add(
			text.New("Generado: "+generated, props.Text{Size: 9, Top: 3, Color: colorGray, Align: align.Right}),
		),
	)
}

func sectionRow(title string) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 3}),
		),
	)
}

func keyValueRow(key, value string) core.Row {
	return row.New(6).Add(
		col.New(6).Add(text.New(key, props.Text{Size: 9})),
		col.New(6).Add(text.New(value, props.Text{Size: 9, Align: align.Right})),
	)
}

// countRows filas clave/contador en orden alfabético estable.
func countRows(counts map[string]int) []core.Row {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]core.Row, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, keyValueRow(k, fmt.Sprintf("%d", counts[k])))
	}
	if len(rows) == 0 {
		rows = append(rows, row.New(6).Add(
			col.New(12).Add(text.New("Sin datos", props.Text{Size: 9, Color: colorGray})),
		))
	}
	return rows
}
