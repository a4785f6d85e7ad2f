package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/hireline/marketplace-api/internal/model"
)

type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

func (g *Generator) Generate(report model.RankingReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, title(report.Kind), "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Period: %s - %s",
		report.PeriodStart.Format("2006-01-02"),
		report.PeriodEnd.Format("2006-01-02"),
	), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	nameHeader, amountHeader := columnHeaders(report.Kind)
	colWidths := []float64{120, 60}
	drawTableRow(pdf, g.fontName, []string{nameHeader, amountHeader}, colWidths, true)
	for _, entry := range report.Entries {
		drawTableRow(pdf, g.fontName, []string{entry.Name, formatAmount(entry.Amount)}, colWidths, false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func title(kind model.ReportKind) string {
	if kind == model.ReportKindBestClients {
		return "Best clients report"
	}
	return "Best professions report"
}

func columnHeaders(kind model.ReportKind) (string, string) {
	if kind == model.ReportKindBestClients {
		return "Client", "Amount paid"
	}
	return "Profession", "Amount earned"
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, col := range cols {
		align := "L"
		if i == len(cols)-1 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 7, col, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func formatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
