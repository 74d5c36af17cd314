// Package export writes the inventory view to a spreadsheet.
package export

import (
	"fmt"
	"io"
	"time"

	"go-inventario/internal/model"

	"github.com/xuri/excelize/v2"
)

const SheetName = "Inventario"

var inventoryHeader = []interface{}{"N°", "Code", "Product", "Category", "Laboratory", "Stock", "Status"}

// FileName is the default download name for an export taken at t.
func FileName(t time.Time) string {
	return fmt.Sprintf("inventario_%s.xlsx", t.Format("20060102_150405"))
}

// WriteInventory renders rows, in order, as a single sheet workbook.
func WriteInventory(w io.Writer, rows []model.InventoryRow) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(sheet, SheetName); err != nil {
		return err
	}

	header := inventoryHeader
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range rows {
		line := []interface{}{i + 1, r.Code, r.Name, r.CategoryName, r.Laboratory, r.Stock, r.Status.Label()}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &line); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := f.SetColWidth(SheetName, "B", "E", 20); err != nil {
		return err
	}

	_, err := f.WriteTo(w)
	return err
}
