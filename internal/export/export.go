// Package export renders catalog and shift listings as xlsx workbooks.
package export

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"coffeeShopManagement/models"
)

// ErrNothingToExport is returned when there are no rows to write.
var ErrNothingToExport = errors.New("nothing to export")

const (
	ProductsSheet = "Products"
	ShiftsSheet   = "Shifts"
)

var (
	productHeaders = []any{"Name", "Category", "Price", "Unit", "Weight/Volume"}
	shiftHeaders   = []any{"First name", "Last name", "Position", "Shift date", "Start", "End", "Salary"}
)

// Products writes one row per product.
func Products(rows []models.Product) ([]byte, error) {
	if len(rows) == 0 {
		return nil, ErrNothingToExport
	}
	data := make([][]any, 0, len(rows))
	for _, p := range rows {
		var amount any = ""
		if p.WeightOrVolume != nil {
			amount = *p.WeightOrVolume
		}
		price, _ := p.Price.Float64()
		data = append(data, []any{p.Name, p.CategoryName, price, p.UnitName, amount})
	}
	return workbook(ProductsSheet, productHeaders, data)
}

// Shifts writes one row per shift. Rows are expected newest first, as
// ShiftRepository.ListAll returns them.
func Shifts(rows []models.ShiftRow) ([]byte, error) {
	if len(rows) == 0 {
		return nil, ErrNothingToExport
	}
	data := make([][]any, 0, len(rows))
	for _, s := range rows {
		salary, _ := s.Salary.Float64()
		data = append(data, []any{s.FirstName, s.LastName, s.Position, s.Date, hhmm(s.Start), hhmm(s.End), salary})
	}
	return workbook(ShiftsSheet, shiftHeaders, data)
}

func hhmm(clock string) string {
	if len(clock) >= 5 {
		return clock[:5]
	}
	return clock
}

func workbook(sheet string, headers []any, data [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		return nil, err
	}
	for i, row := range data {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := row
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 18); err != nil {
		return nil, err
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FileName builds a dated download name such as "products_2024-05-01.xlsx".
func FileName(kind string, now time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx", strings.ToLower(kind), now.Format("2006-01-02"))
}

// WriteFile writes data to path, or to a uniquely named file in the temp dir
// when path is empty. It returns the path written.
func WriteFile(path, kind string, data []byte) (string, error) {
	if path == "" {
		path = filepath.Join(os.TempDir(), fmt.Sprintf("%s_%s.xlsx", strings.ToLower(kind), uuid.NewString()))
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// OpenCommand returns the command that opens path with the OS default app.
func OpenCommand(goos, path string) *exec.Cmd {
	switch goos {
	case "windows":
		return exec.Command("cmd", "/c", "start", "", path)
	case "darwin":
		return exec.Command("open", path)
	default:
		return exec.Command("xdg-open", path)
	}
}

// Open launches the default application for path without waiting for it.
func Open(path string) error {
	return OpenCommand(runtime.GOOS, path).Start()
}
