package services

import "strings"

// Slide geometry in inches (16:9 widescreen).
const (
	SlideWidth  = 13.33
	SlideHeight = 7.5
)

// Color is an RGB hex triplet without the leading '#'.
type Color string

const (
	ColorYellow     Color = "FBB900"
	ColorDarkBlue   Color = "1B1A2A"
	ColorBlack      Color = "000000"
	ColorWhite      Color = "FFFFFF"
	ColorRed        Color = "FF0000"
	ColorGray       Color = "E7E6E6"
	ColorLightGray  Color = "F5F5F5"
	ColorGreen      Color = "00B050"
	ColorOrange     Color = "FFC000"
	ColorMediumGray Color = "BFBFBF"
)

// FeasibilityColor maps a tag onto its traffic-light colour.
func FeasibilityColor(f Feasibility) Color {
	switch f {
	case FeasibilityFeasible:
		return ColorGreen
	case FeasibilityConditional:
		return ColorOrange
	case FeasibilityInfeasible:
		return ColorRed
	}
	return ColorMediumGray
}

// Font names the brand typefaces. Renderers substitute what they can embed.
type Font string

const (
	FontTitle  Font = "Avenir Black"
	FontBody   Font = "Avenir Book"
	FontLight  Font = "Avenir Light"
	FontMedium Font = "Avenir Medium"
)

type Align string

const (
	AlignLeft    Align = "L"
	AlignCenter  Align = "C"
	AlignRight   Align = "R"
	AlignJustify Align = "J"
)

type VAlign string

const (
	VAlignTop    VAlign = "T"
	VAlignMiddle VAlign = "M"
	VAlignBottom VAlign = "B"
)

// Frame is a positioned box in slide inches.
type Frame struct {
	X, Y, W, H float64
}

type TextStyle struct {
	Font   Font
	Size   float64 // points
	Color  Color
	Bold   bool
	Italic bool
}

type Run struct {
	Text string
	TextStyle
}

// Bullet is the marker drawn before a paragraph.
type Bullet int

const (
	BulletNone Bullet = iota
	BulletDisc
	BulletCheckbox
)

type Paragraph struct {
	Runs        []Run
	Bullet      Bullet
	Align       Align
	LineSpacing float64 // multiple of the font size; 0 means 1.2
}

func (p Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Element is one positioned item on a slide: *TextBox, *Shape, *Image or *Table.
type Element interface {
	Bounds() Frame
}

// TextBox is a fixed-size text region. Renderers clip overflowing text to
// Frame when Clip is set; the engine always sets it.
type TextBox struct {
	Frame      Frame
	Paragraphs []Paragraph
	VAlign     VAlign
	Clip       bool
}

func (t *TextBox) Bounds() Frame { return t.Frame }

// Text joins the paragraphs with newlines.
func (t *TextBox) Text() string {
	parts := make([]string, len(t.Paragraphs))
	for i, p := range t.Paragraphs {
		parts[i] = p.Text()
	}
	return strings.Join(parts, "\n")
}

type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeRoundRect
)

type Shape struct {
	Kind         ShapeKind
	Frame        Frame
	Fill         Color
	Transparency int     // percent, 0 is opaque
	Line         Color   // empty means no outline
	LineWidth    float64 // points
	Radius       float64 // inches, rounded rectangles only
}

func (s *Shape) Bounds() Frame { return s.Frame }

type Image struct {
	Asset Asset
	Frame Frame
}

func (i *Image) Bounds() Frame { return i.Frame }

type Cell struct {
	Text string
	TextStyle
	Fill  Color
	Align Align
}

// Table rows all share RowHeight; ColWidths sum to the table width.
type Table struct {
	X, Y        float64
	ColWidths   []float64
	RowHeight   float64
	Rows        [][]Cell
	Border      Color
	BorderWidth float64 // points
}

func (t *Table) Width() float64 {
	var w float64
	for _, c := range t.ColWidths {
		w += c
	}
	return w
}

func (t *Table) Bounds() Frame {
	return Frame{X: t.X, Y: t.Y, W: t.Width(), H: t.RowHeight * float64(len(t.Rows))}
}

type SlideKind string

const (
	SlideCover       SlideKind = "cover"
	SlideSection     SlideKind = "section"
	SlideContext     SlideKind = "context"
	SlideTechSpecs   SlideKind = "tech_specs"
	SlidePrediction  SlideKind = "prediction"
	SlideGeneration  SlideKind = "generation"
	SlideChallenges  SlideKind = "challenges"
	SlideEncouraging SlideKind = "encouraging"
	SlidePosition    SlideKind = "position"
	SlideWorkPackage SlideKind = "work_package"
	SlideResources   SlideKind = "resources"
	SlidePlanning    SlideKind = "planning"
	SlideBudget      SlideKind = "budget"
	SlideBackCover   SlideKind = "back_cover"
)

type Slide struct {
	Kind       SlideKind
	Background Color
	Elements   []Element
}

// TextBoxes returns the slide's text regions in drawing order.
func (s Slide) TextBoxes() []*TextBox {
	var out []*TextBox
	for _, e := range s.Elements {
		if tb, ok := e.(*TextBox); ok {
			out = append(out, tb)
		}
	}
	return out
}

// Document is the renderer-independent layout of a proposal deck.
type Document struct {
	Title    string
	Subject  string
	Author   string
	Company  string
	FileStem string
	Width    float64
	Height   float64
	Slides   []Slide

	// Derived values the layout was computed from.
	Budget   BudgetTotals
	Schedule Schedule
}
