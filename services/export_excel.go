package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	budgetSheet   = "Budget"
	planningSheet = "Planning"
)

// GenerateBudgetWorkbook creates an Excel workbook with the budget breakdown
// and a week-by-week planning grid, returning the file contents.
func GenerateBudgetWorkbook(d ProposalData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	lang := d.Language
	totals := BudgetFor(d)
	sched := BuildSchedule(d.WorkPackages, d.Planning.VacationWeeks)

	if err := f.SetSheetName(f.GetSheetName(0), budgetSheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	if _, err := f.NewSheet(planningSheet); err != nil {
		return nil, fmt.Errorf("create planning sheet: %w", err)
	}
	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   "Budget - " + d.Client.Name,
		Creator: deckAuthor,
		Subject: d.Client.Reference,
	}); err != nil {
		return nil, fmt.Errorf("set doc props: %w", err)
	}

	styles, err := newWorkbookStyles(f)
	if err != nil {
		return nil, err
	}
	if err := writeBudgetSheet(f, styles, d, totals, sched); err != nil {
		return nil, err
	}
	if err := writePlanningSheet(f, styles, lang, sched); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

type workbookStyles struct {
	title, subtitle, header, label, value, money, strongMoney, bar, vacation, grid int
}

func newWorkbookStyles(f *excelize.File) (workbookStyles, error) {
	var s workbookStyles
	moneyFmt := `#,##0 "€"`

	defs := []struct {
		dst   *int
		name  string
		style *excelize.Style
	}{
		{&s.title, "title", &excelize.Style{Font: &excelize.Font{Bold: true, Size: 16, Color: "#" + string(ColorDarkBlue)}}},
		{&s.subtitle, "subtitle", &excelize.Style{Font: &excelize.Font{Size: 11}}},
		{&s.header, "header", &excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{"#" + string(ColorDarkBlue)}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border:    thinBorders(),
		}},
		{&s.label, "label", &excelize.Style{Font: &excelize.Font{Size: 10}, Border: thinBorders()}},
		{&s.value, "value", &excelize.Style{Font: &excelize.Font{Size: 10}, Border: thinBorders(),
			Alignment: &excelize.Alignment{Horizontal: "right"}}},
		{&s.money, "money", &excelize.Style{Font: &excelize.Font{Size: 10}, Border: thinBorders(), CustomNumFmt: &moneyFmt}},
		{&s.strongMoney, "strong money", &excelize.Style{Font: &excelize.Font{Bold: true, Size: 11}, Border: thinBorders(), CustomNumFmt: &moneyFmt}},
		{&s.bar, "bar", &excelize.Style{
			Fill:   excelize.Fill{Type: "pattern", Color: []string{"#" + string(ColorYellow)}, Pattern: 1},
			Border: thinBorders(),
		}},
		{&s.vacation, "vacation", &excelize.Style{
			Fill:   excelize.Fill{Type: "pattern", Color: []string{"#" + string(ColorMediumGray)}, Pattern: 1},
			Border: thinBorders(),
		}},
		{&s.grid, "grid", &excelize.Style{Border: thinBorders()}},
	}
	for _, def := range defs {
		id, err := f.NewStyle(def.style)
		if err != nil {
			return s, fmt.Errorf("create %s style: %w", def.name, err)
		}
		*def.dst = id
	}
	return s, nil
}

func writeBudgetSheet(f *excelize.File, s workbookStyles, d ProposalData, b BudgetTotals, sched Schedule) error {
	lang := d.Language
	sh := budgetSheet

	for col, w := range map[string]float64{"A": 34, "B": 18, "C": 12, "D": 14, "E": 14} {
		if err := f.SetColWidth(sh, col, col, w); err != nil {
			return fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	if err := f.MergeCell(sh, "A1", "E1"); err != nil {
		return fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sh, "A1", sanitizeExcelCell(st("titleBudget", lang)+" - "+d.Client.Name))
	f.SetCellStyle(sh, "A1", "E1", s.title)
	f.SetCellValue(sh, "A2", sanitizeExcelCell(st("coverReference", lang)+" "+d.Client.Reference))
	f.SetCellValue(sh, "A3", sanitizeExcelCell(d.Client.Date))
	f.SetCellStyle(sh, "A2", "A3", s.subtitle)

	// ── Inputs and totals ───────────────────────────────────────────────

	f.SetCellValue(sh, "A5", st("budgetSubject", lang))
	f.SetCellValue(sh, "B5", st("budgetTotalCol", lang))
	f.SetCellStyle(sh, "A5", "B5", s.header)

	rows := []struct {
		label string
		value any
		style int
	}{
		{st("sheetWeeks", lang), b.TotalWeeks, s.value},
		{st("sheetFTE", lang), b.FTECount, s.value},
		{st("sheetDailyRate", lang), b.DailyRate, s.money},
		{st("sheetDays", lang), b.TotalDays, s.value},
		{st("budgetTotalHT", lang), b.TotalExcludingTax, s.money},
		{stf("budgetVAT", lang, "rate", FormatPercent(b.VATRate)), b.VATAmount, s.money},
		{st("budgetTotalTTC", lang), b.TotalIncludingTax, s.strongMoney},
	}
	row := 6
	for _, r := range rows {
		label := fmt.Sprintf("A%d", row)
		value := fmt.Sprintf("B%d", row)
		f.SetCellValue(sh, label, r.label)
		f.SetCellStyle(sh, label, label, s.label)
		f.SetCellValue(sh, value, r.value)
		f.SetCellStyle(sh, value, value, r.style)
		row++
	}

	// ── Work packages ───────────────────────────────────────────────────

	row++
	headers := []string{st("sheetWorkPackage", lang), st("budgetQty", lang), st("sheetStart", lang), st("sheetEnd", lang)}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sh, cell, h)
	}
	f.SetCellStyle(sh, fmt.Sprintf("A%d", row), fmt.Sprintf("D%d", row), s.header)
	row++

	for _, bar := range sched.Bars {
		label := bar.Label
		if bar.Vacation {
			label = st("vacationLabel", lang)
		}
		f.SetCellValue(sh, fmt.Sprintf("A%d", row), sanitizeExcelCell(label))
		f.SetCellValue(sh, fmt.Sprintf("B%d", row), bar.Weeks)
		f.SetCellValue(sh, fmt.Sprintf("C%d", row), bar.Start+1)
		f.SetCellValue(sh, fmt.Sprintf("D%d", row), bar.End())
		f.SetCellStyle(sh, fmt.Sprintf("A%d", row), fmt.Sprintf("D%d", row), s.label)
		row++
	}
	return nil
}

func writePlanningSheet(f *excelize.File, s workbookStyles, lang Language, sched Schedule) error {
	sh := planningSheet
	if err := f.SetColWidth(sh, "A", "A", 34); err != nil {
		return fmt.Errorf("set label width: %w", err)
	}
	if sched.TotalWeeks > 0 {
		last, err := excelize.ColumnNumberToName(sched.TotalWeeks + 1)
		if err != nil {
			return fmt.Errorf("planning columns: %w", err)
		}
		if err := f.SetColWidth(sh, "B", last, 5); err != nil {
			return fmt.Errorf("set week width: %w", err)
		}
	}

	f.SetCellValue(sh, "A1", stf("planningIntro", lang, "weeks", itoa(sched.TotalWeeks)))
	f.SetCellStyle(sh, "A1", "A1", s.subtitle)

	abbr := st("weekAbbr", lang)
	f.SetCellValue(sh, "A3", st("titlePlanning", lang))
	for w := 0; w < sched.TotalWeeks; w++ {
		cell, _ := excelize.CoordinatesToCellName(w+2, 3)
		f.SetCellValue(sh, cell, abbr+itoa(w+1))
	}
	lastHeader, _ := excelize.CoordinatesToCellName(sched.TotalWeeks+1, 3)
	f.SetCellStyle(sh, "A3", lastHeader, s.header)

	for i, bar := range sched.Bars {
		row := 4 + i
		label := bar.Label
		style := s.bar
		if bar.Vacation {
			label, style = st("vacationLabel", lang), s.vacation
		}
		labelCell, _ := excelize.CoordinatesToCellName(1, row)
		f.SetCellValue(sh, labelCell, sanitizeExcelCell(label))
		f.SetCellStyle(sh, labelCell, labelCell, s.label)

		for w := 0; w < sched.TotalWeeks; w++ {
			cell, _ := excelize.CoordinatesToCellName(w+2, row)
			if w >= bar.Start && w < bar.End() {
				f.SetCellStyle(sh, cell, cell, style)
			} else {
				f.SetCellStyle(sh, cell, cell, s.grid)
			}
		}
	}

	return f.SetPanes(sh, &excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		YSplit:      3,
		TopLeftCell: "B4",
		ActivePane:  "bottomRight",
	})
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
