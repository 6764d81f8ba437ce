package spreadsheet

import (
	"io"
	"log/slog"
	"strings"

	"canteen-coupon/internal/domain/menu"
	"canteen-coupon/internal/pkg/errs"

	"github.com/xuri/excelize/v2"
)

var (
	ErrUnreadableWorkbook = errs.New("upload is not a readable .xlsx workbook")
	ErrEmptyWorkbook      = errs.New("workbook has no sheets")
)

// Columns after the day column come in (description, price) pairs.
var mealColumns = []struct {
	meal  menu.MealType
	desc  int
	price int
}{
	{menu.Breakfast, 1, 2},
	{menu.Lunch, 3, 4},
	{menu.Dinner, 5, 6},
}

// ReadMenu reads the first sheet of an .xlsx workbook laid out as
// Day | Breakfast | price | Lunch | price | Dinner | price, skipping the
// header row. Cell values are returned untrusted; validation happens when
// the rows are turned into a menu.Batch.
func ReadMenu(r io.Reader) ([]menu.Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "open workbook"), ErrUnreadableWorkbook)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			slog.Warn("failed to close workbook", "error", cerr.Error())
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}

	grid, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "read sheet %q", sheets[0]), ErrUnreadableWorkbook)
	}

	var rows []menu.Row
	for i, cells := range grid {
		if i == 0 {
			continue
		}
		day := cell(cells, 0)
		if day == "" {
			continue
		}
		for _, col := range mealColumns {
			desc, price := cell(cells, col.desc), cell(cells, col.price)
			if desc == "" && price == "" {
				continue
			}
			rows = append(rows, menu.Row{
				Line:        i + 1,
				Day:         day,
				MealType:    col.meal.String(),
				Description: desc,
				Price:       price,
			})
		}
	}
	return rows, nil
}

func cell(cells []string, i int) string {
	if i >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[i])
}
