package infra

// pdf.go — Corte report generation using go-pdf/fpdf.
// Produces an A5 one-pager: shift identification, categorized totals,
// expected vs counted cash, and the resulting classification.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"cajacentral/internal/model"
)

// GenerateCortePDF writes the reconciliation report for a corte.
// storagePath is the directory where the PDF will be written (created if
// needed). Returns the absolute path to the generated file.
func GenerateCortePDF(corte *model.Corte, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("corte_%d.pdf", corte.ID)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	empresa := fmt.Sprintf("Empresa #%d", corte.EmpresaID)
	if corte.Empresa != nil {
		empresa = corte.Empresa.Nombre
	}
	empleado := fmt.Sprintf("Empleado #%d", corte.EmpleadoID)
	if corte.Empleado != nil {
		empleado = corte.Empleado.Nombre
	}

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "Corte de Caja", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, empresa, "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 5,
		fmt.Sprintf("%s — %s — Sesión %d", empleado, corte.Fecha.Format("02/01/2006"), corte.Sesion),
		"", 1, "C", false, 0, "")
	pdf.Ln(3)
	pdf.Line(12, pdf.GetY(), pageW-12, pdf.GetY())
	pdf.Ln(3)

	colL := contentW * 0.62
	colR := contentW * 0.38

	row := func(label string, monto decimal.Decimal, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 9)
		pdf.CellFormat(colL, 6, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(colR, 6, "$"+monto.StringFixed(2), "", 1, "R", false, 0, "")
	}

	// ── Categorized totals ───────────────────────────────────────────────────
	row("Venta neta", corte.VentaNeta, true)
	row("Venta efectivo", corte.VentaEfectivo, false)
	row("Venta tarjeta", corte.VentaTarjeta, false)
	row("Venta crédito", corte.VentaCredito, false)
	row("Venta transferencia", corte.VentaTransferencia, false)
	row("Cortesías", corte.Cortesias, false)
	row("Cobranza", corte.Cobranza, false)
	row("Retiro parcial", corte.RetiroParcial, false)
	row("Gastos", corte.Gastos, false)
	row("Compras", corte.Compras, false)
	row("Préstamos", corte.Prestamos, false)
	row("Otros retiros", corte.OtrosRetiros, false)

	pdf.Ln(2)
	pdf.Line(12, pdf.GetY(), pageW-12, pdf.GetY())
	pdf.Ln(2)

	// ── Reconciliation ───────────────────────────────────────────────────────
	row("Efectivo esperado", corte.EfectivoEsperado, true)
	row("Efectivo real", corte.EfectivoReal, true)
	row("Diferencia", corte.Diferencia, true)

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 9)
	switch {
	case corte.AdeudoGenerado:
		pdf.CellFormat(contentW, 5, "Faltante fuera de tolerancia — adeudo generado al empleado.", "", 1, "L", false, 0, "")
	case corte.Diferencia.IsPositive():
		pdf.CellFormat(contentW, 5, "Sobrante.", "", 1, "L", false, 0, "")
	case corte.Diferencia.IsZero():
		pdf.CellFormat(contentW, 5, "Corte exacto.", "", 1, "L", false, 0, "")
	default:
		pdf.CellFormat(contentW, 5, "Faltante dentro de tolerancia.", "", 1, "L", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
