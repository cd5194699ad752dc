package services

import (
	"strconv"
	"strings"
)

const deckAuthor = "Alysophil"

// GenerateDeck lays out the proposal deck for d. It never mutates d, always
// returns the same layout for the same input, and accepts empty collections.
// Client name presence is a caller precondition (see ExportProposal).
func GenerateDeck(d ProposalData) Document {
	lang := d.Language
	budget := BudgetFor(d)
	schedule := BuildSchedule(d.WorkPackages, d.Planning.VacationWeeks)

	doc := Document{
		Title:    "Proposal - " + d.Client.Name,
		Subject:  "Work proposal for " + d.Client.Name,
		Author:   deckAuthor,
		Company:  deckAuthor,
		FileStem: ProposalFileStem(d.Client),
		Width:    SlideWidth,
		Height:   SlideHeight,
		Budget:   budget,
		Schedule: schedule,
	}

	doc.Slides = append(doc.Slides,
		coverSlide(d),
		sectionSlide(lang, "sectionContextNeed"),
		contextSlide(d),
		techSpecsSlide(d),
		predictionSlide(d),
		generationSlide(d),
		challengesSlide(d),
		encouragingSlide(d),
		positionSlide(d),
	)
	for i, wp := range d.WorkPackages {
		doc.Slides = append(doc.Slides, workPackageSlide(lang, i, wp))
	}
	doc.Slides = append(doc.Slides,
		resourcesSlide(d),
		planningSlide(lang, schedule),
		budgetSlide(lang, budget),
		backCoverSlide(),
	)
	return doc
}

// ── Shared helpers ──────────────────────────────────────────────────────

func newSlide(kind SlideKind) Slide {
	return Slide{Kind: kind, Background: ColorWhite}
}

func (s *Slide) add(elems ...Element) {
	s.Elements = append(s.Elements, elems...)
}

func style(font Font, size float64, color Color) TextStyle {
	return TextStyle{Font: font, Size: size, Color: color, Bold: font == FontTitle}
}

func (ts TextStyle) italic() TextStyle {
	ts.Italic = true
	return ts
}

func (ts TextStyle) bold() TextStyle {
	ts.Bold = true
	return ts
}

// textBox builds a single-paragraph, clipped text region.
func textBox(f Frame, text string, ts TextStyle, align Align, valign VAlign, spacing float64) *TextBox {
	return &TextBox{
		Frame: f,
		Paragraphs: []Paragraph{{
			Runs:        []Run{{Text: text, TextStyle: ts}},
			Align:       align,
			LineSpacing: spacing,
		}},
		VAlign: valign,
		Clip:   true,
	}
}

// listBox builds a clipped region with one bulleted paragraph per item.
func listBox(f Frame, items []string, ts TextStyle, bullet Bullet, spacing float64) *TextBox {
	tb := &TextBox{Frame: f, VAlign: VAlignTop, Clip: true}
	for _, it := range items {
		tb.Paragraphs = append(tb.Paragraphs, Paragraph{
			Runs:        []Run{{Text: it, TextStyle: ts}},
			Bullet:      bullet,
			Align:       AlignLeft,
			LineSpacing: spacing,
		})
	}
	return tb
}

func rect(f Frame, fill Color) *Shape {
	return &Shape{Kind: ShapeRect, Frame: f, Fill: fill}
}

func roundRect(f Frame, fill Color, radius float64) *Shape {
	return &Shape{Kind: ShapeRoundRect, Frame: f, Fill: fill, Radius: radius}
}

func (s *Shape) outlined(c Color, width float64) *Shape {
	s.Line = c
	s.LineWidth = width
	return s
}

func confidentialFooter(lang Language) *TextBox {
	return textBox(Frame{0.5, 7.0, 12.33, 0.35}, st("confidentialFooter", lang),
		style(FontBody, 10.5, ColorRed).bold(), AlignCenter, VAlignBottom, 0)
}

func cornerLogo() *Image {
	return imageAt(AssetLogo, 11.0, 0.1, 2.0)
}

// titleBar is the slide heading with its yellow accent underline.
func titleBar(title string, size float64) []Element {
	const y = 0.2
	return []Element{
		rect(Frame{0.5, y + 0.65, 1.2, 0.06}, ColorYellow),
		textBox(Frame{0.5, y, 10.4, 0.7}, title, style(FontTitle, size, ColorDarkBlue), AlignLeft, VAlignMiddle, 0),
	}
}

// contentSlide starts a slide with the corner logo and title bar.
func contentSlide(kind SlideKind, title string, size float64) Slide {
	s := newSlide(kind)
	s.add(cornerLogo())
	s.add(titleBar(title, size)...)
	return s
}

func itoa(n int) string { return strconv.Itoa(n) }

// ── Slides ──────────────────────────────────────────────────────────────

func coverSlide(d ProposalData) Slide {
	lang := d.Language
	s := newSlide(SlideCover)

	band1 := rect(Frame{0, 0, 0.35, SlideHeight}, ColorYellow)
	band2 := rect(Frame{0.35, 0, 0.15, SlideHeight}, ColorYellow)
	band2.Transparency = 30
	band3 := rect(Frame{0.5, 0, 0.1, SlideHeight}, ColorYellow)
	band3.Transparency = 60
	s.add(band1, band2, band3)

	title := st("coverProposalTo", lang) + " " + st("coverAction", lang) + "\n" +
		st("coverFor", lang) + " " + d.Client.Name
	s.add(textBox(Frame{1.0, 1.5, 7.0, 2.2}, title, style(FontTitle, 20, ColorDarkBlue), AlignLeft, VAlignTop, 1.3))
	s.add(textBox(Frame{1.0, 3.7, 5.0, 0.5}, d.Client.Date, style(FontLight, 16, ColorDarkBlue).italic(), AlignLeft, VAlignTop, 0))

	s.add(imageAt(AssetLogo, 9.0, 0.6, 3.5))
	s.add(
		rect(Frame{10.0, 5.5, 3.33, 0.15}, ColorYellow),
		rect(Frame{10.5, 5.7, 2.83, 0.1}, ColorDarkBlue),
		roundRect(Frame{8.8, 5.0, 4.0, 0.7}, ColorYellow, 0.05),
		textBox(Frame{8.8, 5.0, 4.0, 0.7}, d.Client.Name, style(FontTitle, 16, ColorDarkBlue), AlignCenter, VAlignMiddle, 0),
	)

	small := style(FontBody, 10, ColorDarkBlue)
	s.add(
		textBox(Frame{0.8, 6.2, 4.0, 0.35}, st("coverValidity", lang)+" "+d.Client.Validity, small, AlignLeft, VAlignTop, 0),
		textBox(Frame{0.8, 6.5, 4.0, 0.35}, st("coverReference", lang)+" "+d.Client.Reference, small, AlignLeft, VAlignTop, 0),
	)
	s.add(confidentialFooter(lang))
	return s
}

func sectionSlide(lang Language, key string) Slide {
	s := newSlide(SlideSection)
	s.add(
		textBox(Frame{0, 2.5, SlideWidth, 1.5}, st(key, lang), style(FontTitle, 44, ColorDarkBlue), AlignCenter, VAlignMiddle, 0),
		rect(Frame{5.5, 4.1, 2.33, 0.08}, ColorYellow),
		cornerLogo(),
		confidentialFooter(lang),
	)
	return s
}

func contextSlide(d ProposalData) Slide {
	lang := d.Language
	s := contentSlide(SlideContext, st("titleContext", lang), 36)

	body := d.Context
	if strings.TrimSpace(body) == "" {
		body = d.Need
	}
	s.add(
		roundRect(Frame{0.5, 1.2, 12.33, 5.2}, ColorLightGray, 0.15).outlined(ColorGray, 1),
		textBox(Frame{0.8, 1.4, 11.73, 4.8}, body, style(FontBody, 14, ColorBlack), AlignJustify, VAlignTop, 1.3),
		confidentialFooter(lang),
	)
	return s
}

func techSpecsSlide(d ProposalData) Slide {
	lang := d.Language
	s := contentSlide(SlideTechSpecs, st("titleTechSpecs", lang), 36)

	s.add(textBox(Frame{0.5, 1.1, 12.0, 0.5}, d.Client.Name+" "+st("techSpecsIntro", lang),
		style(FontBody, 16, ColorDarkBlue), AlignLeft, VAlignTop, 0))

	var lines []string
	for _, spec := range d.IncludedTechSpecs() {
		lines = append(lines, spec.Text)
	}
	if len(lines) > 0 {
		s.add(listBox(Frame{0.8, 1.8, 11.5, 4.2}, lines, style(FontBody, 14, ColorBlack), BulletCheckbox, 1.5))
	}

	s.add(
		textBox(Frame{0.5, 6.1, 12.0, 0.6}, st("techSpecsNote", lang),
			style(FontBody, 13, ColorDarkBlue).bold().italic(), AlignLeft, VAlignTop, 0),
		confidentialFooter(lang),
	)
	return s
}

func predictionSlide(d ProposalData) Slide {
	lang := d.Language
	s := contentSlide(SlidePrediction, st("titlePrediction", lang), 32)
	s.add(
		textBox(Frame{0.5, 1.0, 12.0, 0.6}, st("predictionSubtitle", lang), style(FontTitle, 20, ColorYellow), AlignLeft, VAlignTop, 0),
		textBox(Frame{0.5, 1.7, 6.5, 4.5}, orDefault(d.Methodology.Prediction, "predictionExplanation", lang),
			style(FontLight, 14, ColorBlack), AlignJustify, VAlignTop, 1.3),
		imageAt(AssetQSPRDiagram, 7.3, 2.0, 5.5),
		confidentialFooter(lang),
	)
	return s
}

func generationSlide(d ProposalData) Slide {
	lang := d.Language
	s := contentSlide(SlideGeneration, st("titlePrediction", lang), 32)

	const (
		leftX  = 0.5
		rightX = 7.0
		colW   = 5.8
	)
	heading := style(FontTitle, 16, ColorDarkBlue)
	label := style(FontMedium, 11, ColorDarkBlue)
	in, out := st("inputLabel", lang), st("outputLabel", lang)
	structure, props := st("structureLabel", lang), st("propertiesLabel", lang)

	s.add(
		textBox(Frame{leftX, 1.05, colW, 0.45}, st("trainingModelsTitle", lang), heading, AlignCenter, VAlignMiddle, 0),
		imageAt(AssetTrainingModel, leftX+0.6, 1.55, 4.6),
		textBox(Frame{leftX, 4.85, colW, 0.3}, in+": "+structure, label, AlignCenter, VAlignMiddle, 0),
		textBox(Frame{leftX, 5.15, colW, 0.3}, out+": "+props, label, AlignCenter, VAlignMiddle, 0),

		rect(Frame{6.6, 1.15, 0.04, 4.3}, ColorGray),

		textBox(Frame{rightX, 1.05, colW, 0.45}, st("reverseQsprTitle", lang), heading, AlignCenter, VAlignMiddle, 0),
		imageAt(AssetReverseQSPR, rightX+1.35, 1.55, 3.1),
		textBox(Frame{rightX, 4.85, colW, 0.3}, in+": "+props, label, AlignCenter, VAlignMiddle, 0),
		textBox(Frame{rightX, 5.15, colW, 0.3}, out+": "+structure, label, AlignCenter, VAlignMiddle, 0),

		textBox(Frame{0.5, 5.6, 12.33, 1.3}, orDefault(d.Methodology.Generation, "generationExplanation", lang),
			style(FontLight, 12, ColorBlack), AlignJustify, VAlignTop, 1.2),
		confidentialFooter(lang),
	)
	return s
}

func challengesSlide(d ProposalData) Slide {
	lang := d.Language
	s := contentSlide(SlideChallenges, st("titleChallenges", lang), 30)
	s.add(
		textBox(Frame{0.5, 1.2, 7.0, 4.8}, orDefault(d.Methodology.Challenges, "challengesDefault", lang),
			style(FontBody, 14, ColorBlack), AlignLeft, VAlignTop, 1.4),
		imageAt(AssetPolymerMultiscale, 7.8, 1.8, 5.0),
		textBox(Frame{7.8, 5.4, 5.0, 0.4}, st("challengeCaption", lang),
			style(FontLight, 10, ColorMediumGray).italic(), AlignCenter, VAlignTop, 0),
		confidentialFooter(lang),
	)
	return s
}

func encouragingSlide(d ProposalData) Slide {
	lang := d.Language
	s := contentSlide(SlideEncouraging, st("titleEncouraging", lang), 36)
	s.add(
		textBox(Frame{0.5, 1.2, 12.0, 0.5}, stf("encouragingIntro", lang, "client", d.Client.Name),
			style(FontBody, 14, ColorDarkBlue).italic(), AlignLeft, VAlignTop, 0),
		textBox(Frame{0.5, 1.9, 12.0, 3.5}, orDefault(d.Methodology.Encouraging, "encouragingDefault", lang),
			style(FontBody, 14, ColorBlack), AlignLeft, VAlignTop, 1.4),
		textBox(Frame{0.5, 5.6, 12.0, 0.6}, st("encouragingConclusion", lang),
			style(FontBody, 14, ColorDarkBlue).bold(), AlignLeft, VAlignTop, 0),
		confidentialFooter(lang),
	)
	return s
}

// Position slide geometry.
const (
	positionLeftX    = 0.5
	positionRightX   = 6.8
	positionStartY   = 2.4
	positionRowStep  = 0.45
	positionColWidth = 6.0
	legendX          = 8.5
	legendY          = 5.8
)

func positionSlide(d ProposalData) Slide {
	lang := d.Language
	s := contentSlide(SlidePosition, st("titlePosition", lang), 36)
	s.add(textBox(Frame{0.5, 1.2, 12.0, 1.0}, orDefault(d.Methodology.Position, "positionDefault", lang),
		style(FontBody, 14, ColorBlack), AlignLeft, VAlignTop, 1.3))

	specs := d.IncludedTechSpecs()
	left, _ := SplitColumns(len(specs))
	s.add(specColumn(specs[:left], positionLeftX)...)
	s.add(specColumn(specs[left:], positionRightX)...)

	legend := []struct {
		color Color
		key   string
	}{
		{ColorGreen, "legendWillPredict"},
		{ColorOrange, "legendIfProgress"},
		{ColorRed, "legendNotFeasible"},
	}
	for i, l := range legend {
		y := legendY + float64(i)*0.3
		s.add(
			rect(Frame{legendX, y, 0.18, 0.18}, l.color),
			textBox(Frame{legendX + 0.25, y - 0.03, 2.5, 0.25}, st(l.key, lang),
				style(FontLight, 9, ColorBlack), AlignLeft, VAlignMiddle, 0),
		)
	}
	s.add(confidentialFooter(lang))
	return s
}

func specColumn(specs []TechSpec, x float64) []Element {
	var out []Element
	for i, spec := range specs {
		y := positionStartY + float64(i)*positionRowStep
		c := FeasibilityColor(spec.Feasibility)
		out = append(out,
			rect(Frame{x, y + 0.05, 0.22, 0.22}, c).outlined(c, 1),
			textBox(Frame{x + 0.35, y, positionColWidth - 0.5, 0.35}, spec.Text,
				style(FontBody, 12, ColorBlack), AlignLeft, VAlignMiddle, 0),
		)
	}
	return out
}

func workPackageSlide(lang Language, index int, wp WorkPackage) Slide {
	s := contentSlide(SlideWorkPackage, st("titleStudyContent", lang), 32)

	title := workPackageLabel(index) + ": " + wp.Title
	duration := st("durationLabel", lang) + " " + itoa(wp.DurationWeeks) + " " + st("weeksLabel", lang)
	s.add(
		roundRect(Frame{0.5, 1.15, 12.33, 0.55}, ColorYellow, 0.05),
		textBox(Frame{0.7, 1.15, 9.0, 0.55}, title, style(FontTitle, 16, ColorDarkBlue), AlignLeft, VAlignMiddle, 0),
		textBox(Frame{9.8, 1.15, 3.0, 0.55}, duration, style(FontMedium, 14, ColorDarkBlue), AlignRight, VAlignMiddle, 0),
		roundRect(Frame{0.5, 1.9, 12.33, 4.6}, ColorLightGray, 0.1).outlined(ColorGray, 1),
	)

	objective := &TextBox{
		Frame: Frame{0.8, 2.1, 11.73, 0.5},
		Paragraphs: []Paragraph{{
			Runs: []Run{
				{Text: st("objectiveLabel", lang) + " ", TextStyle: style(FontTitle, 13, ColorDarkBlue)},
				{Text: wp.Objective, TextStyle: style(FontBody, 13, ColorBlack)},
			},
			Align: AlignLeft,
		}},
		VAlign: VAlignTop,
		Clip:   true,
	}
	s.add(objective)
	s.add(textBox(Frame{0.8, 2.8, 11.73, 2.0}, wp.Description, style(FontBody, 13, ColorBlack), AlignLeft, VAlignTop, 1.3))

	var deliverables []string
	for _, del := range wp.Deliverables {
		if strings.TrimSpace(del) != "" {
			deliverables = append(deliverables, del)
		}
	}
	if len(deliverables) > 0 {
		s.add(listBox(Frame{0.8, 4.9, 11.73, 1.4}, deliverables, style(FontBody, 12, ColorBlack), BulletDisc, 1.3))
	}
	s.add(confidentialFooter(lang))
	return s
}

func resourcesSlide(d ProposalData) Slide {
	lang := d.Language
	s := contentSlide(SlideResources, st("titleResources", lang), 32)

	subtitle := style(FontTitle, 18, ColorDarkBlue)
	s.add(textBox(Frame{0.5, 1.1, 8.0, 0.45}, st("definitionRoles", lang), subtitle, AlignLeft, VAlignTop, 0))

	header := style(FontTitle, 13, ColorWhite)
	body := style(FontBody, 12, ColorBlack)
	roles := &Table{
		X: 0.5, Y: 1.7,
		ColWidths: []float64{4.0, 8.33},
		RowHeight: 0.5,
		Rows: [][]Cell{{
			{Text: st("roleColumn", lang), TextStyle: header, Fill: ColorDarkBlue, Align: AlignCenter},
			{Text: st("contactColumn", lang), TextStyle: header, Fill: ColorDarkBlue, Align: AlignCenter},
		}},
		Border:      ColorMediumGray,
		BorderWidth: 0.5,
	}
	for _, m := range d.Team {
		roles.Rows = append(roles.Rows, []Cell{
			{Text: m.Role + "\n" + m.Name, TextStyle: body, Fill: ColorLightGray, Align: AlignLeft},
			{Text: m.Contact, TextStyle: body, Fill: ColorLightGray, Align: AlignLeft},
		})
	}
	s.add(roles)

	y := roles.Y + roles.RowHeight*float64(len(roles.Rows)) + 0.3
	s.add(textBox(Frame{0.5, y, 8.0, 0.45}, st("deliverablesTitle", lang), subtitle, AlignLeft, VAlignTop, 0))

	items := make([]string, 0, len(d.Deliverables))
	for _, del := range d.Deliverables {
		items = append(items, del.Title+" ("+del.Format+")")
	}
	s.add(listBox(Frame{0.8, y + 0.5, 11.5, 2.5}, items, style(FontBody, 13, ColorBlack), BulletDisc, 1.5))
	s.add(confidentialFooter(lang))
	return s
}

// Gantt geometry.
const (
	ganttX      = 0.5
	ganttY      = 2.0
	ganttWidth  = 12.33
	ganttRowH   = 0.55
	ganttLabelW = 2.5
)

func planningSlide(lang Language, sched Schedule) Slide {
	s := contentSlide(SlidePlanning, st("titlePlanning", lang), 32)
	s.add(textBox(Frame{0.5, 1.1, 12.0, 0.5}, stf("planningIntro", lang, "weeks", itoa(sched.TotalWeeks)),
		style(FontBody, 14, ColorDarkBlue), AlignLeft, VAlignTop, 0))

	weekW := sched.WeekWidth(ganttWidth - ganttLabelW)
	abbr := st("weekAbbr", lang)

	s.add(rect(Frame{ganttX, ganttY, ganttLabelW, ganttRowH}, ColorDarkBlue))
	for w := 0; w < sched.TotalWeeks; w++ {
		x := ganttX + ganttLabelW + float64(w)*weekW
		s.add(
			rect(Frame{x, ganttY, weekW, ganttRowH}, ColorDarkBlue).outlined(ColorWhite, 0.5),
			textBox(Frame{x, ganttY, weekW, ganttRowH}, abbr+itoa(w+1),
				style(FontMedium, 9, ColorWhite), AlignCenter, VAlignMiddle, 0),
		)
	}

	for i, bar := range sched.Bars {
		rowY := ganttY + ganttRowH*float64(i+1)
		fill := ColorLightGray
		if i%2 == 1 {
			fill = ColorWhite
		}
		label, barFill := bar.Label, ColorYellow
		if bar.Vacation {
			label, barFill = st("vacationLabel", lang), ColorMediumGray
		}
		barX := ganttX + ganttLabelW + float64(bar.Start)*weekW
		barW := float64(bar.Weeks) * weekW
		s.add(
			rect(Frame{ganttX, rowY, ganttWidth, ganttRowH}, fill).outlined(ColorGray, 0.5),
			textBox(Frame{ganttX + 0.1, rowY, ganttLabelW - 0.2, ganttRowH}, label,
				style(FontMedium, 10, ColorDarkBlue), AlignLeft, VAlignMiddle, 0),
			roundRect(Frame{barX + 0.02, rowY + 0.08, max(barW-0.04, 0.1), ganttRowH - 0.16}, barFill, 0.06),
			textBox(Frame{barX, rowY, barW, ganttRowH}, itoa(bar.Weeks)+strings.ToLower(abbr),
				style(FontMedium, 9, ColorDarkBlue), AlignCenter, VAlignMiddle, 0),
		)
	}
	s.add(confidentialFooter(lang))
	return s
}

func budgetSlide(lang Language, b BudgetTotals) Slide {
	s := contentSlide(SlideBudget, st("titleBudget", lang), 32)

	expr := st("budgetTotal", lang) + " " + itoa(b.TotalWeeks) + " x " + itoa(WorkDaysPerWeek) + " x " +
		itoa(b.FTECount) + " x " + FormatNumber(b.DailyRate) + " = " + FormatCurrency(b.TotalExcludingTax, lang)
	summary := strings.Join([]string{
		stf("budgetWeeks", lang, "n", itoa(b.TotalWeeks)),
		stf("budgetFTE", lang, "n", itoa(b.FTECount)),
		stf("budgetDailyRate", lang, "rate", FormatNumber(b.DailyRate)),
		expr,
	}, "\n")
	s.add(textBox(Frame{0.5, 1.1, 12.0, 1.6}, summary, style(FontBody, 14, ColorBlack), AlignLeft, VAlignTop, 1.5))

	header := style(FontTitle, 12, ColorWhite)
	cell := style(FontBody, 12, ColorBlack)
	strong := style(FontTitle, 12, ColorBlack)
	hdr := func(t string) Cell { return Cell{Text: t, TextStyle: header, Fill: ColorDarkBlue, Align: AlignCenter} }
	val := func(t string, ts TextStyle) Cell { return Cell{Text: t, TextStyle: ts, Fill: ColorLightGray, Align: AlignCenter} }

	s.add(&Table{
		X: 0.5, Y: 2.9,
		ColWidths: []float64{4.0, 2.78, 2.78, 2.77},
		RowHeight: 0.5,
		Rows: [][]Cell{
			{hdr(st("budgetSubject", lang)), hdr(st("budgetUnitPrice", lang)), hdr(st("budgetQty", lang)), hdr(st("budgetTotalCol", lang))},
			{
				val(st("budgetStudy", lang), cell),
				val(FormatCurrency(b.DailyRate, lang)+st("budgetPerDay", lang), cell),
				val(stf("budgetDays", lang, "n", FormatNumber(b.TotalDays)), cell),
				val(FormatCurrency(b.TotalExcludingTax, lang), strong),
			},
		},
		Border:      ColorMediumGray,
		BorderWidth: 0.5,
	})

	s.add(&Table{
		X: 3.0, Y: 4.3,
		ColWidths: []float64{2.44, 2.44, 2.45},
		RowHeight: 0.5,
		Rows: [][]Cell{
			{hdr(st("budgetTotalHT", lang)), hdr(stf("budgetVAT", lang, "rate", FormatPercent(b.VATRate))), hdr(st("budgetTotalTTC", lang))},
			{
				val(FormatCurrency(b.TotalExcludingTax, lang), cell),
				val(FormatCurrency(b.VATAmount, lang), cell),
				val(FormatCurrency(b.TotalIncludingTax, lang), strong),
			},
		},
		Border:      ColorMediumGray,
		BorderWidth: 0.5,
	})

	s.add(
		textBox(Frame{0.5, 5.6, 12.0, 0.8}, st("budgetPaymentTerms", lang),
			style(FontBody, 13, ColorDarkBlue).italic(), AlignLeft, VAlignTop, 1.3),
		confidentialFooter(lang),
	)
	return s
}

func backCoverSlide() Slide {
	s := newSlide(SlideBackCover)
	s.Background = ColorDarkBlue
	s.add(&Image{Asset: AssetBackCover, Frame: Frame{0, 0, SlideWidth, SlideHeight}})
	return s
}
