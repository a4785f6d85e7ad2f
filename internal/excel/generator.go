package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/hireline/marketplace-api/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(report model.RankingReport) ([]byte, error) {
	file := excelize.NewFile()

	sheet := "Ranking"
	file.SetSheetName("Sheet1", sheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	nameHeader, amountHeader := columnHeaders(report.Kind)

	set("A1", "Report")
	set("B1", reportLabel(report.Kind))
	set("A2", "Period start")
	set("B2", report.PeriodStart.Format("2006-01-02"))
	set("A3", "Period end")
	set("B3", report.PeriodEnd.Format("2006-01-02"))
	set("A4", "Total amount")
	set("B4", totalAmount(report))

	tableRow := 6
	set(fmt.Sprintf("A%d", tableRow), nameHeader)
	set(fmt.Sprintf("B%d", tableRow), amountHeader)
	for i, entry := range report.Entries {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), entry.Name)
		set(fmt.Sprintf("B%d", row), entry.Amount)
	}

	_ = file.SetColWidth(sheet, "A", "A", 40)
	_ = file.SetColWidth(sheet, "B", "B", 18)

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func reportLabel(kind model.ReportKind) string {
	if kind == model.ReportKindBestClients {
		return "Best clients"
	}
	return "Best professions"
}

func columnHeaders(kind model.ReportKind) (string, string) {
	if kind == model.ReportKindBestClients {
		return "Client", "Amount paid"
	}
	return "Profession", "Amount earned"
}

func totalAmount(report model.RankingReport) float64 {
	total := 0.0
	for _, entry := range report.Entries {
		total += entry.Amount
	}
	return total
}
