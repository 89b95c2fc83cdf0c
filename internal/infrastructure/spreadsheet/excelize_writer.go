// Package spreadsheet implementa report.SpreadsheetWriter con excelize.
package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/amazonia/internal/application/report"
)

const defaultSheet = "Sheet1"

// ExcelizeWriter genera libros xlsx de una sola hoja.
type ExcelizeWriter struct {
	colWidth float64
}

// NewExcelizeWriter construye el writer.
func NewExcelizeWriter() *ExcelizeWriter { return &ExcelizeWriter{colWidth: 18} }

var _ report.SpreadsheetWriter = (*ExcelizeWriter)(nil)

// Write escribe encabezados en negrita en la fila 1 y los datos desde la fila 2.
func (w *ExcelizeWriter) Write(sheet report.Sheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, sheet.Name); err != nil {
		return nil, fmt.Errorf("xlsx: nombre de hoja: %w", err)
	}

	header := make([]any, len(sheet.Headers))
	for i, h := range sheet.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
		return nil, fmt.Errorf("xlsx: encabezados: %w", err)
	}
	for i, row := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet.Name, cell, &row); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+2, err)
		}
	}

	if len(sheet.Headers) > 0 {
		if err := w.styleHeader(f, sheet); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: serializar: %w", err)
	}
	return buf.Bytes(), nil
}

func (w *ExcelizeWriter) styleHeader(f *excelize.File, sheet report.Sheet) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("xlsx: estilo: %w", err)
	}
	last, err := excelize.ColumnNumberToName(len(sheet.Headers))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet.Name, "A1", last+"1", bold); err != nil {
		return fmt.Errorf("xlsx: estilo encabezado: %w", err)
	}
	return f.SetColWidth(sheet.Name, "A", last, w.colWidth)
}
