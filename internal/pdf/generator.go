package pdf

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/nurpe/billboard-rentals/internal/service"
)

// Generator renders the printable contract sheet. Core fonts only, so the
// document uses Latin labels; the Arabic-facing rendering lives in the UI.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) ContractDocument(doc service.ContractDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	contract := doc.Contract

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Billboard Rental Contract", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Contract No. %s dated %s", contract.Number, formatDate(contract.CreatedAt)), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Rental period: %s - %s (%d months)", formatDate(contract.StartAt), formatDate(contract.EndAt), contract.DurationMonths), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Parties", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Lessor: %s", doc.CompanyName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Lessee: %s (%s)", contract.CustomerName, contract.CustomerCategory), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Billboards", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	headers := []string{"Name", "Size", "Level", "Faces"}
	widths := []float64{90, 30, 30, 20}
	drawTableRow(pdf, headers, widths, true)
	for _, board := range doc.Billboards {
		drawTableRow(pdf, []string{
			board.Name,
			board.Size,
			board.Level,
			strconv.Itoa(board.Faces),
		}, widths, false)
	}
	pdf.Ln(2)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Financial summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	lines := []string{
		fmt.Sprintf("Base rental total: %s", formatAmount(contract.BaseTotal)),
		fmt.Sprintf("Discount: %s", formatAmount(contract.DiscountAmount)),
		fmt.Sprintf("Final total: %s", formatAmount(contract.FinalTotal)),
		fmt.Sprintf("Installation cost: %s", formatAmount(contract.InstallationCost)),
		fmt.Sprintf("Operating fee (%.2f%%): %s", contract.OperatingFeeRate, formatAmount(contract.OperatingFee)),
	}
	for _, line := range lines {
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Installment schedule", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	instHeaders := []string{"#", "Amount", "Trigger", "Due date"}
	instWidths := []float64{15, 45, 55, 55}
	drawTableRow(pdf, instHeaders, instWidths, true)
	for i, inst := range contract.Installments {
		drawTableRow(pdf, []string{
			strconv.Itoa(i + 1),
			formatAmount(inst.Amount),
			inst.PaymentType,
			formatDate(inst.DueDate),
		}, instWidths, false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawTableRow(pdf *gofpdf.Fpdf, cells []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont("Arial", style, 10)
	for i, cell := range cells {
		pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02.01.2006")
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
