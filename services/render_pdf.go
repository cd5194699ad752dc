package services

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/phpdave11/gofpdf"
)

// DeckRenderer serializes a laid-out Document into a file format.
type DeckRenderer interface {
	Render(doc Document) ([]byte, error)
	Extension() string
	ContentType() string
}

// PDFDeckRenderer draws each slide as one widescreen PDF page.
type PDFDeckRenderer struct {
	// CreatedAt stamps the PDF metadata. Zero uses the current time.
	CreatedAt time.Time

	uncompressed bool
}

func NewPDFDeckRenderer() *PDFDeckRenderer {
	return &PDFDeckRenderer{}
}

func (r *PDFDeckRenderer) Extension() string   { return ".pdf" }
func (r *PDFDeckRenderer) ContentType() string { return "application/pdf" }

const pointsPerInch = 72.0

func (r *PDFDeckRenderer) Render(doc Document) ([]byte, error) {
	w, h := doc.Width, doc.Height
	if w <= 0 || h <= 0 {
		w, h = SlideWidth, SlideHeight
	}
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "in",
		Size:           gofpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCellMargin(0.04)
	pdf.SetTitle(doc.Title, true)
	pdf.SetSubject(doc.Subject, true)
	pdf.SetAuthor(doc.Author, true)
	pdf.SetCreator(doc.Company, true)
	pdf.SetCatalogSort(true)
	pdf.SetCompression(!r.uncompressed)
	if !r.CreatedAt.IsZero() {
		pdf.SetCreationDate(r.CreatedAt)
		pdf.SetModificationDate(r.CreatedAt)
	}

	for _, style := range FontStyles {
		b, err := FontBytes(style)
		if err != nil {
			return nil, fmt.Errorf("render deck: %w", err)
		}
		pdf.AddUTF8FontFromBytes(FontFamily, string(style), b)
	}

	p := &pdfPainter{
		pdf:    pdf,
		images: make(map[Asset]bool),
		pageW:  w,
		pageH:  h,
	}
	for _, slide := range doc.Slides {
		p.slide(slide)
		if pdf.Err() {
			break
		}
	}
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("render deck: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render deck: %w", err)
	}
	return buf.Bytes(), nil
}

type pdfPainter struct {
	pdf    *gofpdf.Fpdf
	images map[Asset]bool
	pageW  float64
	pageH  float64
}

func (p *pdfPainter) slide(s Slide) {
	p.pdf.AddPage()
	if s.Background != "" {
		p.fillColor(s.Background)
		p.pdf.Rect(0, 0, p.pageW, p.pageH, "F")
	}
	for _, e := range s.Elements {
		switch el := e.(type) {
		case *Shape:
			p.shape(el)
		case *Image:
			p.image(el)
		case *TextBox:
			p.textBox(el)
		case *Table:
			p.table(el)
		}
	}
}

// ── Colours & fonts ─────────────────────────────────────────────────────

func rgb(c Color) (int, int, int) {
	v, err := strconv.ParseUint(strings.TrimPrefix(string(c), "#"), 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)
}

func (p *pdfPainter) fillColor(c Color) { p.pdf.SetFillColor(rgb(c)) }
func (p *pdfPainter) drawColor(c Color) { p.pdf.SetDrawColor(rgb(c)) }
func (p *pdfPainter) textColor(c Color) { p.pdf.SetTextColor(rgb(c)) }

// setFont maps the brand typefaces onto the embedded DejaVu faces.
func (p *pdfPainter) setFont(ts TextStyle) {
	styleStr := ""
	if ts.Bold || ts.Font == FontTitle {
		styleStr += "B"
	}
	if ts.Italic {
		styleStr += "I"
	}
	size := ts.Size
	if size <= 0 {
		size = 12
	}
	p.pdf.SetFont(FontFamily, styleStr, size)
	p.textColor(ts.Color)
}

// text keeps s within the Basic Multilingual Plane the font width tables
// cover; other runes become U+FFFD.
func (p *pdfPainter) text(s string) string {
	return strings.Map(func(r rune) rune {
		if r > 0xFFFF {
			return utf8.RuneError
		}
		return r
	}, s)
}

func lineHeight(size, spacing float64) float64 {
	if size <= 0 {
		size = 12
	}
	if spacing <= 0 {
		spacing = 1.2
	}
	return size / pointsPerInch * spacing
}

// ── Elements ────────────────────────────────────────────────────────────

func (p *pdfPainter) shape(s *Shape) {
	f := s.Frame
	if f.W <= 0 || f.H <= 0 || (s.Fill == "" && s.Line == "") {
		return
	}
	if s.Transparency > 0 {
		p.pdf.SetAlpha(1-float64(clampInt(s.Transparency, 0, 100))/100, "Normal")
		defer p.pdf.SetAlpha(1, "Normal")
	}

	styleStr := ""
	if s.Fill != "" {
		p.fillColor(s.Fill)
		styleStr += "F"
	}
	if s.Line != "" {
		p.drawColor(s.Line)
		p.pdf.SetLineWidth(s.LineWidth / pointsPerInch)
		styleStr += "D"
	}

	switch s.Kind {
	case ShapeRoundRect:
		r := min(s.Radius, f.W/2, f.H/2)
		p.pdf.RoundedRect(f.X, f.Y, f.W, f.H, r, "1234", styleStr)
	default:
		p.pdf.Rect(f.X, f.Y, f.W, f.H, styleStr)
	}
}

func (p *pdfPainter) image(img *Image) {
	name := string(img.Asset)
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	if !p.images[img.Asset] {
		data, err := AssetBytes(img.Asset)
		if err != nil {
			p.pdf.SetError(err)
			return
		}
		p.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
		p.images[img.Asset] = true
	}
	f := img.Frame
	p.pdf.ImageOptions(name, f.X, f.Y, f.W, f.H, false, opts, 0, "")
}

const bulletIndent = 0.3

// paragraphLayout is the measured height of one paragraph in a text box.
type paragraphLayout struct {
	lineH  float64
	height float64
}

func (p *pdfPainter) measure(par Paragraph, width float64) paragraphLayout {
	if len(par.Runs) == 0 {
		return paragraphLayout{}
	}
	size := 0.0
	for _, r := range par.Runs {
		size = max(size, r.Size)
	}
	lineH := lineHeight(size, par.LineSpacing)
	p.setFont(par.Runs[0].TextStyle)
	lines := len(p.pdf.SplitText(p.text(par.Text()), width))
	return paragraphLayout{lineH: lineH, height: float64(max(lines, 1)) * lineH}
}

func (p *pdfPainter) textBox(tb *TextBox) {
	f := tb.Frame
	if f.W <= 0 || f.H <= 0 || len(tb.Paragraphs) == 0 {
		return
	}
	if tb.Clip {
		p.pdf.ClipRect(f.X, f.Y, f.W, f.H, false)
		defer p.pdf.ClipEnd()
	}

	layouts := make([]paragraphLayout, len(tb.Paragraphs))
	total := 0.0
	for i, par := range tb.Paragraphs {
		width := f.W
		if par.Bullet != BulletNone {
			width -= bulletIndent
		}
		layouts[i] = p.measure(par, width)
		total += layouts[i].height
	}

	y := f.Y
	if total < f.H {
		switch tb.VAlign {
		case VAlignMiddle:
			y += (f.H - total) / 2
		case VAlignBottom:
			y += f.H - total
		}
	}

	for i, par := range tb.Paragraphs {
		lay := layouts[i]
		x, width := f.X, f.W
		if par.Bullet != BulletNone {
			p.bullet(par, x, y+lay.lineH/2)
			x += bulletIndent
			width -= bulletIndent
		}
		p.paragraph(par, x, y, width, lay.lineH)
		y += lay.height
		if y > f.Y+f.H && tb.Clip {
			break
		}
	}
}

func (p *pdfPainter) paragraph(par Paragraph, x, y, width, lineH float64) {
	align := string(par.Align)
	if align == "" {
		align = string(AlignLeft)
	}
	if len(par.Runs) == 1 {
		p.setFont(par.Runs[0].TextStyle)
		p.pdf.SetXY(x, y)
		p.pdf.MultiCell(width, lineH, p.text(par.Runs[0].Text), "", align, false)
		return
	}

	// Mixed styles flow left-aligned between temporary margins.
	p.pdf.SetLeftMargin(x)
	p.pdf.SetRightMargin(p.pageW - x - width)
	p.pdf.SetXY(x, y)
	for _, r := range par.Runs {
		p.setFont(r.TextStyle)
		p.pdf.Write(lineH, p.text(r.Text))
	}
	p.pdf.SetMargins(0, 0, 0)
}

func (p *pdfPainter) bullet(par Paragraph, x, cy float64) {
	c := ColorBlack
	if len(par.Runs) > 0 && par.Runs[0].Color != "" {
		c = par.Runs[0].Color
	}
	switch par.Bullet {
	case BulletDisc:
		p.fillColor(c)
		p.pdf.Circle(x+0.12, cy, 0.035, "F")
	case BulletCheckbox:
		p.drawColor(c)
		p.pdf.SetLineWidth(1 / pointsPerInch)
		p.pdf.Rect(x+0.05, cy-0.08, 0.16, 0.16, "D")
	}
}

func (p *pdfPainter) table(t *Table) {
	if t.BorderWidth > 0 {
		p.pdf.SetLineWidth(t.BorderWidth / pointsPerInch)
	}
	y := t.Y
	for _, row := range t.Rows {
		x := t.X
		for col, cell := range row {
			if col >= len(t.ColWidths) {
				break
			}
			w := t.ColWidths[col]
			p.cell(cell, Frame{x, y, w, t.RowHeight}, t.Border)
			x += w
		}
		y += t.RowHeight
	}
}

func (p *pdfPainter) cell(c Cell, f Frame, border Color) {
	styleStr := ""
	if c.Fill != "" {
		p.fillColor(c.Fill)
		styleStr += "F"
	}
	if border != "" {
		p.drawColor(border)
		styleStr += "D"
	}
	if styleStr != "" {
		p.pdf.Rect(f.X, f.Y, f.W, f.H, styleStr)
	}

	align := c.Align
	if align == "" {
		align = AlignLeft
	}
	p.textBox(&TextBox{
		Frame: f,
		Paragraphs: []Paragraph{{
			Runs:  []Run{{Text: c.Text, TextStyle: c.TextStyle}},
			Align: align,
		}},
		VAlign: VAlignMiddle,
		Clip:   true,
	})
}
