package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nurpe/billboard-rentals/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// ContractsWorkbook writes the contract register: one summary sheet with a
// row per contract and the aggregated totals underneath.
func (g *Generator) ContractsWorkbook(contracts []model.Contract) ([]byte, error) {
	file := excelize.NewFile()

	sheet := "العقود"
	file.SetSheetName("Sheet1", sheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{
		"رقم العقد",
		"الزبون",
		"الفئة",
		"نوع الإعلان",
		"بداية العقد",
		"نهاية العقد",
		"الإجمالي قبل الخصم",
		"الخصم",
		"الإجمالي النهائي",
		"تكلفة التركيب",
		"رسوم التشغيل",
		"الحالة",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	var totalFinal, totalDiscount, totalInstallation float64
	for i, contract := range contracts {
		row := i + 2
		values := []interface{}{
			contract.Number,
			contract.CustomerName,
			contract.CustomerCategory,
			contract.AdType,
			formatDate(contract.StartAt),
			formatDate(contract.EndAt),
			contract.BaseTotal,
			contract.DiscountAmount,
			contract.FinalTotal,
			contract.InstallationCost,
			contract.OperatingFee,
			string(contract.Status),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			set(cell, value)
		}
		totalFinal += contract.FinalTotal
		totalDiscount += contract.DiscountAmount
		totalInstallation += contract.InstallationCost
	}

	summaryRow := len(contracts) + 3
	set(fmt.Sprintf("A%d", summaryRow), "الإجمالي")
	set(fmt.Sprintf("H%d", summaryRow), totalDiscount)
	set(fmt.Sprintf("I%d", summaryRow), totalFinal)
	set(fmt.Sprintf("J%d", summaryRow), totalInstallation)

	_ = file.SetColWidth(sheet, "A", "B", 22)
	_ = file.SetColWidth(sheet, "C", "F", 16)
	_ = file.SetColWidth(sheet, "G", "K", 18)

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PricingWorkbook exports the live pricing table for review or re-import.
func (g *Generator) PricingWorkbook(rows []model.PricingRow) ([]byte, error) {
	file := excelize.NewFile()

	sheet := "الأسعار"
	file.SetSheetName("Sheet1", sheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{"المقاس", "المستوى", "الفئة", "شهر", "شهران", "3 أشهر", "6 أشهر", "سنة", "يوم"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	for i, row := range rows {
		r := i + 2
		values := []interface{}{
			row.Size,
			row.Level,
			row.Category,
			priceCell(row.OneMonth),
			priceCell(row.TwoMonths),
			priceCell(row.ThreeMonths),
			priceCell(row.SixMonths),
			priceCell(row.FullYear),
			priceCell(row.OneDay),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, r)
			set(cell, value)
		}
	}

	_ = file.SetColWidth(sheet, "A", "C", 14)
	_ = file.SetColWidth(sheet, "D", "I", 12)

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func priceCell(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02.01.2006")
}
