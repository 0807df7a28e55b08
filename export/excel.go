package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/syduc993/hr-management-system-sub000/model"
	"github.com/syduc993/hr-management-system-sub000/timekit"
)

const summarySheet = "Tổng hợp giờ công"

var summaryHeaders = []string{
	"Số phiếu", "Bộ phận", "Trạng thái", "Từ ngày", "Đến ngày",
	"Mã nhân viên", "Họ tên", "Số giờ",
}

// HoursSummaryWorkbook renders the per-request rollup as a spreadsheet, one
// row per employee line with the request columns repeated. Accounting
// imports this directly, so the column set is stable.
func HoursSummaryWorkbook(tn *timekit.Normalizer, summaries []model.RequestHoursSummary) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(summarySheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	for col, header := range summaryHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(summarySheet, cell, header); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		last, _ := excelize.CoordinatesToCellName(len(summaryHeaders), 1)
		_ = f.SetCellStyle(summarySheet, "A1", last, headerStyle)
	}

	row := 2
	for _, sum := range summaries {
		for _, emp := range sum.Employees {
			values := []any{
				sum.RequestNo,
				sum.Department,
				sum.Status,
				tn.FormatDate(sum.FromDate),
				tn.FormatDate(sum.ToDate),
				emp.EmployeeID,
				emp.FullName,
				emp.TotalHours,
			}
			for col, value := range values {
				cell, err := excelize.CoordinatesToCellName(col+1, row)
				if err != nil {
					return nil, err
				}
				if err := f.SetCellValue(summarySheet, cell, value); err != nil {
					return nil, err
				}
			}
			row++
		}

		// Subtotal line per request.
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetCellValue(summarySheet, cell, fmt.Sprintf("Tổng %s (%d nhân viên)", sum.RequestNo, sum.TotalEmployees)); err != nil {
			return nil, err
		}
		cell, _ = excelize.CoordinatesToCellName(len(summaryHeaders), row)
		if err := f.SetCellValue(summarySheet, cell, sum.TotalHours); err != nil {
			return nil, err
		}
		row++
	}

	return f, nil
}

// WriteHoursSummary streams the workbook to w in xlsx format.
func WriteHoursSummary(tn *timekit.Normalizer, summaries []model.RequestHoursSummary, w io.Writer) error {
	f, err := HoursSummaryWorkbook(tn, summaries)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
