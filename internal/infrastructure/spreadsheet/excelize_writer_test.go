package spreadsheet_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/amazonia/internal/application/report"
	"github.com/jhoicas/amazonia/internal/infrastructure/spreadsheet"
)

func TestExcelizeWriter_Write(t *testing.T) {
	w := spreadsheet.NewExcelizeWriter()

	data, err := w.Write(report.Sheet{
		Name:    "Ventas",
		Headers: []string{"ID Venta", "Total", "Productos"},
		Rows: [][]any{
			{"VTA-0001", 27500, "2x Café, 1x Té"},
			{"VTA-0002", 3500, "1x Té"},
		},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Ventas"}, f.GetSheetList())
	rows, err := f.GetRows("Ventas")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"ID Venta", "Total", "Productos"},
		{"VTA-0001", "27500", "2x Café, 1x Té"},
		{"VTA-0002", "3500", "1x Té"},
	}, rows)
}
