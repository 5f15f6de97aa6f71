package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nao1215/wordhist/internal/model"
	"github.com/xuri/excelize/v2"
)

// Spreadsheet header cells.
const (
	headerWord  = "Word"
	headerCount = "Count"
)

// SheetName is the name of the single worksheet in generated workbooks.
const SheetName = "Sheet1"

// SpreadsheetFormat identifies a spreadsheet file format.
type SpreadsheetFormat string

const (
	// FormatXLSX is the Office Open XML workbook format.
	FormatXLSX SpreadsheetFormat = "xlsx"

	// FormatCSV is plain comma separated values.
	FormatCSV SpreadsheetFormat = "csv"
)

// DetectSpreadsheetFormat returns the spreadsheet format for path based on
// its extension. Unknown extensions return ErrUnsupportedFormat.
func DetectSpreadsheetFormat(path string) (SpreadsheetFormat, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".xlsx":
		return FormatXLSX, nil
	case ".csv":
		return FormatCSV, nil
	default:
		if ext == "" {
			ext = "(none)"
		}
		return "", fmt.Errorf("%w: spreadsheet extension %s (supported: .xlsx, .csv)", ErrUnsupportedFormat, ext)
	}
}

// NewSpreadsheetWriter returns the Writer for the given format.
func NewSpreadsheetWriter(format SpreadsheetFormat, output io.Writer) (Writer, error) {
	switch format {
	case FormatXLSX:
		return NewXLSXWriter(output), nil
	case FormatCSV:
		return NewCSVWriter(output), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// XLSXWriter writes an Excel workbook with a single sheet.
// Row 1 holds the Word and Count headers, then one row per entry.
// Rows go through the excelize stream writer.
type XLSXWriter struct {
	baseWriter
}

// NewXLSXWriter creates an XLSXWriter that outputs to the given writer.
func NewXLSXWriter(output io.Writer) *XLSXWriter {
	return &XLSXWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the workbook.
func (w *XLSXWriter) Write(list model.RankedList) (int, error) {
	f := excelize.NewFile()
	defer f.Close()

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return 0, fmt.Errorf("failed to create sheet writer: %w", err)
	}

	if err := sw.SetRow("A1", []interface{}{headerWord, headerCount}); err != nil {
		return 0, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, e := range list {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return 0, err
		}
		if err := sw.SetRow(cell, []interface{}{e.Word, e.Count}); err != nil {
			return 0, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return 0, fmt.Errorf("failed to flush sheet: %w", err)
	}

	n, err := f.WriteTo(w.output)
	return int(n), err
}

// CSVWriter writes a Word,Count header followed by one record per entry.
type CSVWriter struct {
	baseWriter
}

// NewCSVWriter creates a CSVWriter that outputs to the given writer.
func NewCSVWriter(output io.Writer) *CSVWriter {
	return &CSVWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the CSV records.
func (w *CSVWriter) Write(list model.RankedList) (int, error) {
	cw := &countingWriter{w: w.output}
	out := csv.NewWriter(cw)

	if err := out.Write([]string{headerWord, headerCount}); err != nil {
		return cw.n, err
	}
	for _, e := range list {
		if err := out.Write([]string{e.Word, strconv.Itoa(e.Count)}); err != nil {
			return cw.n, err
		}
	}

	out.Flush()
	return cw.n, out.Error()
}

// countingWriter counts the bytes that pass through it.
type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}
