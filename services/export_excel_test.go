package services

import (
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

func openWorkbook(t *testing.T, d ProposalData) *excelize.File {
	t.Helper()

	result, err := GenerateBudgetWorkbook(d)
	if err != nil {
		t.Fatalf("GenerateBudgetWorkbook() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateBudgetWorkbook() returned empty bytes")
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func rawCell(t *testing.T, f *excelize.File, sheet, cell string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
	if err != nil {
		t.Fatalf("GetCellValue(%s, %s) error = %v", sheet, cell, err)
	}
	return v
}

func TestGenerateBudgetWorkbook_Sheets(t *testing.T) {
	f := openWorkbook(t, acmeProposal())

	want := []string{"Budget", "Planning"}
	if got := f.GetSheetList(); !reflect.DeepEqual(got, want) {
		t.Errorf("sheets = %v, want %v", got, want)
	}

	props, err := f.GetDocProps()
	if err != nil {
		t.Fatalf("GetDocProps() error = %v", err)
	}
	if props.Creator != "Alysophil" {
		t.Errorf("creator = %q, want Alysophil", props.Creator)
	}
}

func TestGenerateBudgetWorkbook_Totals(t *testing.T) {
	f := openWorkbook(t, acmeProposal())

	tests := []struct {
		cell string
		want string
	}{
		{"B6", "8"},      // weeks
		{"B7", "2"},      // FTE
		{"B8", "1000"},   // daily rate
		{"B9", "80"},     // days
		{"B10", "80000"}, // excl. VAT
		{"B11", "16000"}, // VAT
		{"B12", "96000"}, // incl. VAT
		{"A11", "VAT 20%"},
		{"A12", "Total incl. VAT"},
	}
	for _, tt := range tests {
		if got := rawCell(t, f, "Budget", tt.cell); got != tt.want {
			t.Errorf("Budget!%s = %q, want %q", tt.cell, got, tt.want)
		}
	}
}

func TestGenerateBudgetWorkbook_WorkPackageRows(t *testing.T) {
	f := openWorkbook(t, acmeProposal())

	// Header on row 14, then one row per bar.
	tests := []struct {
		cell string
		want string
	}{
		{"A14", "Work package"},
		{"A15", "WP1: Data collection"},
		{"B15", "3"},
		{"C15", "1"},
		{"D15", "3"},
		{"A16", "WP2: Modeling"},
		{"C16", "4"},
		{"D16", "8"},
	}
	for _, tt := range tests {
		if got := rawCell(t, f, "Budget", tt.cell); got != tt.want {
			t.Errorf("Budget!%s = %q, want %q", tt.cell, got, tt.want)
		}
	}
}

func TestGenerateBudgetWorkbook_PlanningGrid(t *testing.T) {
	d := acmeProposal()
	d.Planning.VacationWeeks = 2
	f := openWorkbook(t, d)

	if got := rawCell(t, f, "Planning", "B3"); got != "W1" {
		t.Errorf("Planning!B3 = %q, want W1", got)
	}
	if got := rawCell(t, f, "Planning", "K3"); got != "W10" {
		t.Errorf("Planning!K3 = %q, want W10", got)
	}
	if got := rawCell(t, f, "Planning", "A6"); got != "Vacation" {
		t.Errorf("Planning!A6 = %q, want Vacation", got)
	}

	// WP1 covers weeks 1-3: B4:D4 share the bar style, E4 does not.
	bar, err := f.GetCellStyle("Planning", "B4")
	if err != nil {
		t.Fatalf("GetCellStyle() error = %v", err)
	}
	for _, cell := range []string{"C4", "D4", "E5", "I5"} {
		if got, _ := f.GetCellStyle("Planning", cell); got != bar {
			t.Errorf("Planning!%s style = %d, want bar style %d", cell, got, bar)
		}
	}
	for _, cell := range []string{"E4", "D5", "J5"} {
		if got, _ := f.GetCellStyle("Planning", cell); got == bar {
			t.Errorf("Planning!%s should not carry the bar style", cell)
		}
	}
	vacation, _ := f.GetCellStyle("Planning", "J6")
	if vacation == bar {
		t.Error("vacation cells should use their own style")
	}
}

func TestGenerateBudgetWorkbook_Header(t *testing.T) {
	d := acmeProposal()
	d.Language = LangFR
	f := openWorkbook(t, d)

	tests := []struct {
		sheet, cell, want string
	}{
		{"Budget", "A1", "Budget - Acme / Co.!"},
		{"Budget", "A2", "R\u00e9f\u00e9rence : PR1"},
		{"Budget", "A3", "2026-03-02"},
		{"Planning", "A1", "Un total de 8 semaines est pr\u00e9vu pour ce projet."},
		{"Planning", "B3", "S1"},
	}
	for _, tt := range tests {
		if got := rawCell(t, f, tt.sheet, tt.cell); got != tt.want {
			t.Errorf("%s!%s = %q, want %q", tt.sheet, tt.cell, got, tt.want)
		}
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"=SUM(A1)", "'=SUM(A1)"},
		{"+1", "'+1"},
		{"-1", "'-1"},
		{"@x", "'@x"},
		{"|pipe", "'|pipe"},
	}
	for _, tt := range tests {
		if got := sanitizeExcelCell(tt.in); got != tt.want {
			t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
