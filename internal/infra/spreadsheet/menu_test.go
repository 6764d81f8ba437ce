//go:build unit

package spreadsheet_test

import (
	"bytes"
	"strings"
	"testing"

	"canteen-coupon/internal/domain/menu"
	"canteen-coupon/internal/infra/spreadsheet"
	"canteen-coupon/internal/pkg/errs"
	"canteen-coupon/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cellRef, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func toAny(rows [][]string) [][]any {
	out := make([][]any, len(rows))
	for i, r := range rows {
		out[i] = make([]any, len(r))
		for j, v := range r {
			out[i][j] = v
		}
	}
	return out
}

func TestReadMenu_FullWeek(t *testing.T) {
	buf := workbook(t, toAny(builder.NewMenuBuilder().BuildSheetRows()))

	rows, err := spreadsheet.ReadMenu(buf)
	require.NoError(t, err)
	require.Len(t, rows, 21)

	first := rows[0]
	assert.Equal(t, 2, first.Line)
	assert.Equal(t, "Monday", first.Day)
	assert.Equal(t, "Breakfast", first.MealType)
	assert.Equal(t, "40.00", first.Price)

	batch, err := menu.NewBatch(rows)
	require.NoError(t, err)
	assert.Equal(t, 21, batch.Len())
	assert.Empty(t, batch.Rejected())
}

func TestReadMenu_NumericPricesAndGaps(t *testing.T) {
	buf := workbook(t, [][]any{
		{"Day", "Breakfast", "Price", "Lunch", "Price", "Dinner", "Price"},
		{"Monday", "Poha", 35, "", "", "Paneer roti", 85.5},
		{"", "orphan", 10},
		{"Tuesday", "Idli", "", "Veg biryani", 90},
	})

	rows, err := spreadsheet.ReadMenu(buf)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, menu.Row{Line: 2, Day: "Monday", MealType: "Breakfast", Description: "Poha", Price: "35"}, rows[0])
	assert.Equal(t, "Dinner", rows[1].MealType)
	assert.Equal(t, "85.5", rows[1].Price)
	// A description with no price is passed through for the batch to reject.
	assert.Equal(t, menu.Row{Line: 4, Day: "Tuesday", MealType: "Breakfast", Description: "Idli", Price: ""}, rows[2])
	assert.Equal(t, "Lunch", rows[3].MealType)
}

func TestReadMenu_NotAWorkbook(t *testing.T) {
	_, err := spreadsheet.ReadMenu(strings.NewReader("Day,Breakfast\nMonday,Poha"))
	require.Error(t, err)
	assert.True(t, errs.Is(err, spreadsheet.ErrUnreadableWorkbook))
}
