package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedFile is returned for uploads that are neither CSV nor XLSX.
var ErrUnsupportedFile = errors.New("unsupported file type, use .csv or .xlsx")

// TechSpecRow is one accepted line of a specification sheet.
type TechSpecRow struct {
	Text        string
	Included    bool
	Feasibility Feasibility
}

// RowError is a problem on one data row; Row counts from 2 to match the
// spreadsheet line under the header.
type RowError struct {
	Row     int
	Field   string
	Message string
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d, %s: %s", e.Row, e.Field, e.Message)
}

// TechSpecImport is the outcome of parsing a sheet. Rows with errors are
// left out of Rows.
type TechSpecImport struct {
	TotalRows int
	Rows      []TechSpecRow
	Errors    []RowError
}

const (
	colText        = "text"
	colIncluded    = "included"
	colFeasibility = "feasibility"
)

var techSpecHeaders = map[string]string{
	"specification": colText,
	"spécification": colText,
	"spec":          colText,
	"text":          colText,
	"texte":         colText,
	"requirement":   colText,
	"exigence":      colText,
	"included":      colIncluded,
	"include":       colIncluded,
	"inclus":        colIncluded,
	"incluse":       colIncluded,
	"feasibility":   colFeasibility,
	"faisabilité":   colFeasibility,
	"faisabilite":   colFeasibility,
	"status":        colFeasibility,
}

// ParseTechSpecFile reads a CSV or XLSX specification sheet. The first row
// is a header naming the columns; only the specification column is
// required. Missing cells default to included and feasible.
func ParseTechSpecFile(r io.Reader, fileName string) (*TechSpecImport, error) {
	var (
		headers []string
		rows    [][]string
		err     error
	)
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		headers, rows, err = readCSVSheet(r)
	case ".xlsx":
		headers, rows, err = readExcelSheet(r)
	default:
		return nil, ErrUnsupportedFile
	}
	if err != nil {
		return nil, err
	}

	cols := mapTechSpecHeaders(headers)
	if _, ok := cols[colText]; !ok {
		return nil, fmt.Errorf("no specification column found in %q", strings.Join(headers, ", "))
	}

	result := &TechSpecImport{}
	for i, raw := range rows {
		rowNum := i + 2
		cell := func(col string) string {
			idx, ok := cols[col]
			if !ok || idx >= len(raw) {
				return ""
			}
			return strings.TrimSpace(raw[idx])
		}

		text := cell(colText)
		if text == "" {
			continue
		}
		result.TotalRows++

		row := TechSpecRow{Text: text, Included: true, Feasibility: FeasibilityFeasible}
		var rowErrs []RowError
		if v := cell(colIncluded); v != "" {
			inc, ok := parseIncluded(v)
			if !ok {
				rowErrs = append(rowErrs, RowError{Row: rowNum, Field: colIncluded, Message: fmt.Sprintf("unrecognised value %q", v)})
			}
			row.Included = inc
		}
		if v := cell(colFeasibility); v != "" {
			f, err := ParseFeasibility(v)
			if err != nil {
				rowErrs = append(rowErrs, RowError{Row: rowNum, Field: colFeasibility, Message: fmt.Sprintf("unrecognised value %q", v)})
			}
			row.Feasibility = f
		}

		if len(rowErrs) > 0 {
			result.Errors = append(result.Errors, rowErrs...)
			continue
		}
		result.Rows = append(result.Rows, row)
	}
	return result, nil
}

func readCSVSheet(r io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(all) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}
	return all[0], all[1:], nil
}

// readExcelSheet reads the first sheet of an xlsx workbook.
func readExcelSheet(r io.Reader) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}
	return rows[0], rows[1:], nil
}

// mapTechSpecHeaders returns the column index of each recognised header.
// The first matching column wins.
func mapTechSpecHeaders(headers []string) map[string]int {
	cols := make(map[string]int, 3)
	for i, h := range headers {
		norm := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		norm = strings.TrimSpace(strings.TrimSuffix(norm, "*"))
		key, ok := techSpecHeaders[norm]
		if !ok {
			continue
		}
		if _, seen := cols[key]; !seen {
			cols[key] = i
		}
	}
	return cols
}

func parseIncluded(v string) (bool, bool) {
	switch strings.ToLower(v) {
	case "yes", "y", "true", "1", "x", "oui", "o", "vrai":
		return true, true
	case "no", "n", "false", "0", "non", "faux":
		return false, true
	}
	return true, false
}

// ImportTechSpecRows appends the parsed rows in order and returns the new
// identifiers.
func (p *Proposal) ImportTechSpecRows(rows []TechSpecRow) []string {
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, p.AddTechSpecWith(r.Text, r.Included, r.Feasibility))
	}
	return ids
}
