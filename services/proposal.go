package services

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// Language selects one of the two supported locales.
type Language string

const (
	LangFR Language = "fr"
	LangEN Language = "en"
)

// ParseLanguage maps a form or header value onto a supported locale.
// Anything unknown falls back to French, the default of the wizard.
func ParseLanguage(s string) Language {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "en":
		return LangEN
	default:
		return LangFR
	}
}

// Feasibility is the traffic-light tag of a technical specification.
type Feasibility string

const (
	FeasibilityFeasible    Feasibility = "feasible"
	FeasibilityConditional Feasibility = "conditional"
	FeasibilityInfeasible  Feasibility = "infeasible"
)

// ParseFeasibility accepts the canonical tags and the colour names used by
// the wizard's select box.
func ParseFeasibility(s string) (Feasibility, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "feasible", "green":
		return FeasibilityFeasible, nil
	case "conditional", "yellow", "orange":
		return FeasibilityConditional, nil
	case "infeasible", "red":
		return FeasibilityInfeasible, nil
	}
	return "", fmt.Errorf("%w: feasibility %q", ErrUnknownField, s)
}

// AssistMode selects how the AI assistant is reached.
type AssistMode string

const (
	AssistModeAPI    AssistMode = "api"
	AssistModeManual AssistMode = "manual"
)

type ClientInfo struct {
	Name      string `yaml:"name"`
	Date      string `yaml:"date"`
	Reference string `yaml:"reference"`
	Validity  string `yaml:"validity"`
}

type TechSpec struct {
	ID          string      `yaml:"id"`
	Text        string      `yaml:"text"`
	Included    bool        `yaml:"included"`
	Feasibility Feasibility `yaml:"feasibility"`
}

type WorkPackage struct {
	ID            string   `yaml:"id"`
	Title         string   `yaml:"title"`
	DurationWeeks int      `yaml:"duration_weeks"`
	Objective     string   `yaml:"objective"`
	Description   string   `yaml:"description"`
	Deliverables  []string `yaml:"deliverables"`
}

type Methodology struct {
	Prediction  string `yaml:"prediction"`
	Generation  string `yaml:"generation"`
	Challenges  string `yaml:"challenges"`
	Encouraging string `yaml:"encouraging_research"`
	Position    string `yaml:"position"`
}

type TeamMember struct {
	Role    string `yaml:"role"`
	Name    string `yaml:"name"`
	Contact string `yaml:"contact"`
}

type Deliverable struct {
	Title  string `yaml:"title"`
	Format string `yaml:"format"`
}

// PlanningConfig.TotalWeeks is derived: work-package weeks plus vacation weeks.
type PlanningConfig struct {
	StartDate     string `yaml:"start_date"`
	VacationWeeks int    `yaml:"vacation_weeks"`
	TotalWeeks    int    `yaml:"total_weeks"`
}

// BudgetConfig.TotalWeeks mirrors PlanningConfig.TotalWeeks.
type BudgetConfig struct {
	DailyRate  float64 `yaml:"daily_rate"`
	FTECount   int     `yaml:"fte_count"`
	TotalWeeks int     `yaml:"total_weeks"`
	VATRate    float64 `yaml:"vat_rate"`
}

type AssistSettings struct {
	APIKey string     `yaml:"-"`
	Mode   AssistMode `yaml:"mode"`
}

// ProposalData is the aggregate root handed wholesale to document generation.
type ProposalData struct {
	Language     Language       `yaml:"language"`
	Client       ClientInfo     `yaml:"client"`
	Context      string         `yaml:"context"`
	Need         string         `yaml:"need"`
	TechSpecs    []TechSpec     `yaml:"tech_specs"`
	Methodology  Methodology    `yaml:"methodology"`
	WorkPackages []WorkPackage  `yaml:"work_packages"`
	Team         []TeamMember   `yaml:"team"`
	Deliverables []Deliverable  `yaml:"deliverables"`
	Planning     PlanningConfig `yaml:"planning"`
	Budget       BudgetConfig   `yaml:"budget"`
	Assist       AssistSettings `yaml:"assist"`
}

const (
	MinWorkPackageWeeks     = 1
	MaxWorkPackageWeeks     = 52
	MaxVacationWeeks        = 12
	MinFTE                  = 1
	MaxFTE                  = 10
	DefaultVATRate          = 20
	DefaultDailyRate        = 1100
	DefaultWorkPackageWeeks = 4
)

var (
	ErrTechSpecNotFound    = errors.New("tech spec not found")
	ErrWorkPackageNotFound = errors.New("work package not found")
	ErrIndexOutOfRange     = errors.New("index out of range")
	ErrUnknownField        = errors.New("unknown field")
	ErrDuplicateID         = errors.New("duplicate identifier")
)

// DefaultProposalData returns the state a fresh wizard session starts from.
func DefaultProposalData(now time.Time) ProposalData {
	return ProposalData{
		Language: LangFR,
		Client: ClientInfo{
			Date: now.Format("2006-01-02"),
		},
		WorkPackages: []WorkPackage{
			{ID: "wp-1", Title: "Work Package 1", DurationWeeks: DefaultWorkPackageWeeks},
			{ID: "wp-2", Title: "Work Package 2", DurationWeeks: DefaultWorkPackageWeeks},
		},
		Team: []TeamMember{
			{Role: "Project Director", Name: "Philippe Robin"},
			{Role: "Project Leader", Name: "Jean-Marin Brunet"},
			{Role: "Development Team"},
		},
		Deliverables: []Deliverable{
			{Title: "Presentation of results and methods", Format: "PDF/PPT"},
			{Title: "Top 15 generated candidates", Format: "Excel"},
		},
		Planning: PlanningConfig{TotalWeeks: 2 * DefaultWorkPackageWeeks},
		Budget: BudgetConfig{
			DailyRate:  DefaultDailyRate,
			FTECount:   1,
			TotalWeeks: 2 * DefaultWorkPackageWeeks,
			VATRate:    DefaultVATRate,
		},
		Assist: AssistSettings{Mode: AssistModeManual},
	}
}

// Clone returns a deep copy, so a snapshot never aliases the live state.
func (d ProposalData) Clone() ProposalData {
	out := d
	out.TechSpecs = append([]TechSpec(nil), d.TechSpecs...)
	out.Team = append([]TeamMember(nil), d.Team...)
	out.Deliverables = append([]Deliverable(nil), d.Deliverables...)
	out.WorkPackages = make([]WorkPackage, len(d.WorkPackages))
	for i, wp := range d.WorkPackages {
		wp.Deliverables = append([]string(nil), wp.Deliverables...)
		out.WorkPackages[i] = wp
	}
	return out
}

// IncludedTechSpecs returns the specs flagged for the document, in insertion order.
func (d ProposalData) IncludedTechSpecs() []TechSpec {
	var out []TechSpec
	for _, s := range d.TechSpecs {
		if s.Included {
			out = append(out, s)
		}
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// finite reports whether v is neither NaN nor an infinity.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
