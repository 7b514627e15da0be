// Package export renders report rows as spreadsheet files.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"docflow/internal/model"
	"docflow/internal/service"
)

// SheetName is the worksheet holding the report.
const SheetName = "Relatório"

// ContentType is the media type of the workbook written by WriteXLSX.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var header = []any{
	"Título", "Código", "Categoria", "Local", "Emissão", "Vencimento", "Status", "Prazo", "Responsável",
}

// WriteXLSX writes rows as a single-sheet workbook, one document per row
// after a bold header row.
func WriteXLSX(w io.Writer, rows []service.DocumentView) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(SheetName, "A1", last, bold); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}

	for i, v := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []any{
			v.Title,
			v.Code,
			v.Category.String(),
			v.LocationName,
			formatDate(v.IssueDate),
			formatExpiry(v.Expiry()),
			v.Status.String(),
			v.CompactLabel,
			v.Responsible,
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(SheetName, "A", "A", 40); err != nil {
		return fmt.Errorf("column width: %w", err)
	}
	if err := f.SetColWidth(SheetName, "B", "I", 16); err != nil {
		return fmt.Errorf("column width: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func formatDate(d model.Date) string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, int(d.Month), d.Year)
}

func formatExpiry(d *model.Date) string {
	if d == nil {
		return "Indeterminado"
	}
	return formatDate(*d)
}
