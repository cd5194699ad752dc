package services

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"
)

var (
	briefDarkBlue = &props.Color{Red: 0, Green: 32, Blue: 96}
	briefGray     = &props.Color{Red: 80, Green: 80, Blue: 80}
	briefLight    = &props.Color{Red: 242, Green: 242, Blue: 242}
	briefWhite    = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// GenerateProposalBrief creates a one-document A4 summary of the proposal
// using maroto/v2: client block, work packages, team and budget.
func GenerateProposalBrief(d ProposalData) ([]byte, error) {
	return generateBrief(d, true)
}

// briefFonts loads the embedded DejaVu faces so the brief keeps characters
// outside cp1252 such as ≥, η or CO₂.
func briefFonts() ([]*entity.CustomFont, error) {
	repo := repository.New()
	for _, style := range FontStyles {
		b, err := FontBytes(style)
		if err != nil {
			return nil, err
		}
		repo.AddUTF8FontFromBytes(FontFamily, fontstyle.Type(style), b)
	}
	return repo.Load()
}

func generateBrief(d ProposalData, compress bool) ([]byte, error) {
	fonts, err := briefFonts()
	if err != nil {
		return nil, fmt.Errorf("failed to load brief fonts: %w", err)
	}

	cfg := config.NewBuilder().
		WithCustomFonts(fonts).
		WithDefaultFont(&props.Font{Family: FontFamily}).
		WithCompression(compress).
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithPageNumber(props.PageNumber{
			Pattern: "{current} / {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addBriefHeader(m, d)
	addBriefWorkPackages(m, d)
	addBriefTeam(m, d)
	addBriefBudget(m, d)
	addBriefFooter(m, d.Language)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate brief PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// briefText swaps the narrow no-break space of French digit grouping for a
// regular no-break space.
func briefText(s string) string {
	return strings.ReplaceAll(s, narrowNoBreakSpace, noBreakSpace)
}

func addBriefSection(m core.Maroto, title string) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(title, props.Text{
					Size:  11,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: briefDarkBlue,
				}),
			),
		),
	)
}

// addBriefHeader adds the title and the client block.
func addBriefHeader(m core.Maroto, d ProposalData) {
	lang := d.Language

	m.AddRows(
		row.New(12).Add(
			col.New(8).Add(
				text.New(st("briefTitle", lang), props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: briefDarkBlue,
				}),
			),
			col.New(4).Add(
				text.New(deckAuthor, props.Text{
					Size:  12,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			),
		),
	)
	m.AddRows(row.New(4))

	labelStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Left}
	valueStyle := props.Text{Size: 9, Align: align.Left, Color: briefGray}

	lines := [][2]string{
		{st("briefClient", lang), d.Client.Name},
		{strings.TrimSuffix(st("coverReference", lang), ":"), d.Client.Reference},
		{st("briefDate", lang), d.Client.Date},
		{strings.TrimSuffix(st("coverValidity", lang), ":"), d.Client.Validity},
	}
	for _, l := range lines {
		if strings.TrimSpace(l[1]) == "" {
			continue
		}
		m.AddRows(
			row.New(6).Add(
				col.New(3).Add(text.New(strings.TrimSpace(l[0]), labelStyle)),
				col.New(9).Add(text.New(l[1], valueStyle)),
			),
		)
	}
}

// addBriefWorkPackages adds one table row per work package with its
// position on the schedule.
func addBriefWorkPackages(m core.Maroto, d ProposalData) {
	lang := d.Language
	addBriefSection(m, st("titleStudyContent", lang))

	headerText := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Center, Color: briefWhite}
	headerLeft := headerText
	headerLeft.Align = align.Left
	headerCell := &props.Cell{BackgroundColor: briefDarkBlue}

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(text.New(st("sheetWorkPackage", lang), headerLeft)).WithStyle(headerCell),
			col.New(2).Add(text.New(st("budgetQty", lang), headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New(st("sheetStart", lang), headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New(st("sheetEnd", lang), headerText)).WithStyle(headerCell),
		),
	)

	sched := BuildSchedule(d.WorkPackages, d.Planning.VacationWeeks)
	cellText := props.Text{Size: 8, Align: align.Center}
	cellLeft := cellText
	cellLeft.Align = align.Left
	for i, bar := range sched.Bars {
		label := bar.Label
		if bar.Vacation {
			label = st("vacationLabel", lang)
		}
		c1 := col.New(6).Add(text.New(label, cellLeft))
		c2 := col.New(2).Add(text.New(itoa(bar.Weeks), cellText))
		c3 := col.New(2).Add(text.New(itoa(bar.Start+1), cellText))
		c4 := col.New(2).Add(text.New(itoa(bar.End()), cellText))
		if i%2 == 1 {
			bg := &props.Cell{BackgroundColor: briefLight}
			c1, c2, c3, c4 = c1.WithStyle(bg), c2.WithStyle(bg), c3.WithStyle(bg), c4.WithStyle(bg)
		}
		m.AddRows(row.New(7).Add(c1, c2, c3, c4))
	}

	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(
				text.New(stf("planningIntro", lang, "weeks", itoa(sched.TotalWeeks)), props.Text{
					Size:  8,
					Style: fontstyle.Italic,
					Align: align.Left,
					Color: briefGray,
				}),
			),
		),
	)
}

// addBriefTeam lists the team members; skipped when the team is empty.
func addBriefTeam(m core.Maroto, d ProposalData) {
	if len(d.Team) == 0 {
		return
	}
	lang := d.Language
	addBriefSection(m, st("briefTeam", lang))

	headerText := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left, Color: briefWhite}
	headerCell := &props.Cell{BackgroundColor: briefDarkBlue}
	m.AddRows(
		row.New(8).Add(
			col.New(4).Add(text.New(st("roleColumn", lang), headerText)).WithStyle(headerCell),
			col.New(4).Add(text.New(st("briefName", lang), headerText)).WithStyle(headerCell),
			col.New(4).Add(text.New(st("contactColumn", lang), headerText)).WithStyle(headerCell),
		),
	)

	cellText := props.Text{Size: 8, Align: align.Left}
	for _, tm := range d.Team {
		m.AddRows(
			row.New(7).Add(
				col.New(4).Add(text.New(tm.Role, cellText)),
				col.New(4).Add(text.New(tm.Name, cellText)),
				col.New(4).Add(text.New(tm.Contact, cellText)),
			),
		)
	}
}

// addBriefBudget adds the budget summary lines and the VAT breakdown.
func addBriefBudget(m core.Maroto, d ProposalData) {
	lang := d.Language
	b := BudgetFor(d)
	addBriefSection(m, st("titleBudget", lang))

	infoStyle := props.Text{Size: 9, Align: align.Left}
	info := []string{
		stf("budgetWeeks", lang, "n", itoa(b.TotalWeeks)),
		stf("budgetFTE", lang, "n", itoa(b.FTECount)),
		stf("budgetDailyRate", lang, "rate", FormatNumber(b.DailyRate)),
	}
	for _, s := range info {
		m.AddRows(row.New(6).Add(col.New(12).Add(text.New(s, infoStyle))))
	}
	m.AddRows(row.New(4))

	summaryCell := &props.Cell{BackgroundColor: briefLight}
	labelStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	valueStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}

	totals := [][2]string{
		{st("budgetTotalHT", lang), FormatCurrency(b.TotalExcludingTax, lang)},
		{stf("budgetVAT", lang, "rate", FormatPercent(b.VATRate)), FormatCurrency(b.VATAmount, lang)},
		{st("budgetTotalTTC", lang), FormatCurrency(b.TotalIncludingTax, lang)},
	}
	for _, t := range totals {
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(text.New(t[0], labelStyle)).WithStyle(summaryCell),
				col.New(4).Add(text.New(briefText(t[1]), valueStyle)).WithStyle(summaryCell),
			),
		)
	}

	m.AddRows(row.New(4))
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(
				text.New(st("budgetPaymentTerms", lang), props.Text{
					Size:  8,
					Style: fontstyle.Italic,
					Align: align.Left,
				}),
			),
		),
	)
}

func addBriefFooter(m core.Maroto, lang Language) {
	m.AddRows(row.New(8))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(st("confidentialFooter", lang), props.Text{
					Size:  7,
					Style: fontstyle.Bold,
					Align: align.Center,
					Color: &props.Color{Red: 192, Green: 0, Blue: 0},
				}),
			),
		),
	)
}
