package services

import (
	"fmt"
	"strings"
	"time"
)

// Proposal is the mutable wizard state. It has exactly one writer (the
// owning session); callers serialize access themselves.
type Proposal struct {
	data   ProposalData
	nextID int
}

// NewProposal starts a proposal from the wizard defaults.
func NewProposal() *Proposal {
	p := &Proposal{data: DefaultProposalData(time.Now())}
	p.nextID = len(p.data.WorkPackages)
	p.recomputeWeeks()
	return p
}

// NewProposalFromData adopts an externally built snapshot (e.g. a YAML file).
// Missing identifiers are assigned, duplicates are rejected and the derived
// week totals are recomputed.
func NewProposalFromData(d ProposalData) (*Proposal, error) {
	p := &Proposal{data: d.Clone()}
	seen := make(map[string]bool)
	for _, s := range p.data.TechSpecs {
		if s.ID == "" {
			continue
		}
		if seen[s.ID] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, s.ID)
		}
		seen[s.ID] = true
	}
	for _, wp := range p.data.WorkPackages {
		if wp.ID == "" {
			continue
		}
		if seen[wp.ID] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, wp.ID)
		}
		seen[wp.ID] = true
	}
	for i := range p.data.TechSpecs {
		if p.data.TechSpecs[i].ID == "" {
			p.data.TechSpecs[i].ID = p.newID("spec")
		}
		if p.data.TechSpecs[i].Feasibility == "" {
			p.data.TechSpecs[i].Feasibility = FeasibilityFeasible
		}
	}
	for i := range p.data.WorkPackages {
		wp := &p.data.WorkPackages[i]
		if wp.ID == "" {
			wp.ID = p.newID("wp")
		}
		wp.DurationWeeks = clampInt(wp.DurationWeeks, MinWorkPackageWeeks, MaxWorkPackageWeeks)
	}
	if p.data.Language != LangEN {
		p.data.Language = LangFR
	}
	if p.data.Assist.Mode != AssistModeAPI {
		p.data.Assist.Mode = AssistModeManual
	}
	p.data.Planning.VacationWeeks = clampInt(p.data.Planning.VacationWeeks, 0, MaxVacationWeeks)
	p.data.Budget.FTECount = clampInt(p.data.Budget.FTECount, MinFTE, MaxFTE)
	if !finite(p.data.Budget.VATRate) {
		p.data.Budget.VATRate = DefaultVATRate
	}
	p.data.Budget.VATRate = clampFloat(p.data.Budget.VATRate, 0, 100)
	if !finite(p.data.Budget.DailyRate) {
		p.data.Budget.DailyRate = DefaultDailyRate
	}
	if p.data.Budget.DailyRate < 0 {
		p.data.Budget.DailyRate = 0
	}
	p.recomputeWeeks()
	return p, nil
}

// Snapshot returns an immutable copy for generation or rendering.
func (p *Proposal) Snapshot() ProposalData {
	return p.data.Clone()
}

// Reset discards every edit and returns to the defaults. The identifier
// counter survives, so ids issued before the reset are never handed out again.
func (p *Proposal) Reset() {
	next := p.nextID
	*p = *NewProposal()
	if next > p.nextID {
		p.nextID = next
	}
}

// newID returns an identifier unused by any tech spec or work package.
func (p *Proposal) newID(prefix string) string {
	for {
		p.nextID++
		id := fmt.Sprintf("%s-%d", prefix, p.nextID)
		if !p.idInUse(id) {
			return id
		}
	}
}

func (p *Proposal) idInUse(id string) bool {
	for _, s := range p.data.TechSpecs {
		if s.ID == id {
			return true
		}
	}
	for _, wp := range p.data.WorkPackages {
		if wp.ID == id {
			return true
		}
	}
	return false
}

// recomputeWeeks writes the derived total into planning and budget.
func (p *Proposal) recomputeWeeks() {
	total := TotalWeeks(p.data.WorkPackages, p.data.Planning.VacationWeeks)
	p.data.Planning.TotalWeeks = total
	p.data.Budget.TotalWeeks = total
}

// Language returns the proposal language.
func (p *Proposal) Language() Language { return p.data.Language }

func (p *Proposal) SetLanguage(lang Language) {
	p.data.Language = lang
}

type ClientPatch struct {
	Name      *string
	Date      *string
	Reference *string
	Validity  *string
}

func (p *Proposal) SetClient(patch ClientPatch) {
	c := &p.data.Client
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Date != nil {
		c.Date = *patch.Date
	}
	if patch.Reference != nil {
		c.Reference = *patch.Reference
	}
	if patch.Validity != nil {
		c.Validity = *patch.Validity
	}
}

func (p *Proposal) SetContext(text string) { p.data.Context = text }
func (p *Proposal) SetNeed(text string)    { p.data.Need = text }

// ── Tech specs ─────────────────────────────────────────────────────────

// AddTechSpec appends an empty, included, feasible spec and returns its id.
func (p *Proposal) AddTechSpec() string {
	return p.AddTechSpecWith("", true, FeasibilityFeasible)
}

func (p *Proposal) AddTechSpecWith(text string, included bool, f Feasibility) string {
	id := p.newID("spec")
	p.data.TechSpecs = append(p.data.TechSpecs, TechSpec{
		ID:          id,
		Text:        text,
		Included:    included,
		Feasibility: f,
	})
	return id
}

// ImportTechSpecs adds one spec per non-blank line of text, in order, and
// returns the new identifiers.
func (p *Proposal) ImportTechSpecs(text string) []string {
	var ids []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ids = append(ids, p.AddTechSpecWith(line, true, FeasibilityFeasible))
	}
	return ids
}

type TechSpecPatch struct {
	Text        *string
	Included    *bool
	Feasibility *Feasibility
}

func (p *Proposal) UpdateTechSpec(id string, patch TechSpecPatch) error {
	for i := range p.data.TechSpecs {
		s := &p.data.TechSpecs[i]
		if s.ID != id {
			continue
		}
		if patch.Text != nil {
			s.Text = *patch.Text
		}
		if patch.Included != nil {
			s.Included = *patch.Included
		}
		if patch.Feasibility != nil {
			s.Feasibility = *patch.Feasibility
		}
		return nil
	}
	return fmt.Errorf("update %q: %w", id, ErrTechSpecNotFound)
}

func (p *Proposal) RemoveTechSpec(id string) error {
	for i, s := range p.data.TechSpecs {
		if s.ID == id {
			p.data.TechSpecs = append(p.data.TechSpecs[:i:i], p.data.TechSpecs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("remove %q: %w", id, ErrTechSpecNotFound)
}

// ── Methodology ────────────────────────────────────────────────────────

// MethodologyField names one of the five methodology texts.
type MethodologyField int

const (
	FieldPrediction MethodologyField = iota
	FieldGeneration
	FieldChallenges
	FieldEncouraging
	FieldPosition
)

// MethodologyFields lists the fields in wizard order.
var MethodologyFields = []MethodologyField{
	FieldPrediction, FieldGeneration, FieldChallenges, FieldEncouraging, FieldPosition,
}

func (f MethodologyField) String() string {
	switch f {
	case FieldPrediction:
		return "prediction"
	case FieldGeneration:
		return "generation"
	case FieldChallenges:
		return "challenges"
	case FieldEncouraging:
		return "encouraging"
	case FieldPosition:
		return "position"
	}
	return fmt.Sprintf("MethodologyField(%d)", int(f))
}

// ParseMethodologyField translates a form key into the field enum.
func ParseMethodologyField(s string) (MethodologyField, error) {
	for _, f := range MethodologyFields {
		if f.String() == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: methodology %q", ErrUnknownField, s)
}

func (p *Proposal) SetMethodology(field MethodologyField, text string) error {
	m := &p.data.Methodology
	switch field {
	case FieldPrediction:
		m.Prediction = text
	case FieldGeneration:
		m.Generation = text
	case FieldChallenges:
		m.Challenges = text
	case FieldEncouraging:
		m.Encouraging = text
	case FieldPosition:
		m.Position = text
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

// Value returns the text currently stored for field.
func (m Methodology) Value(field MethodologyField) string {
	switch field {
	case FieldPrediction:
		return m.Prediction
	case FieldGeneration:
		return m.Generation
	case FieldChallenges:
		return m.Challenges
	case FieldEncouraging:
		return m.Encouraging
	case FieldPosition:
		return m.Position
	}
	return ""
}

// ── Work packages ──────────────────────────────────────────────────────

// AddWorkPackage appends a 4-week package titled after its position.
func (p *Proposal) AddWorkPackage() string {
	id := p.newID("wp")
	p.data.WorkPackages = append(p.data.WorkPackages, WorkPackage{
		ID:            id,
		Title:         fmt.Sprintf("Work Package %d", len(p.data.WorkPackages)+1),
		DurationWeeks: DefaultWorkPackageWeeks,
	})
	p.recomputeWeeks()
	return id
}

func (p *Proposal) RemoveWorkPackage(id string) error {
	for i, wp := range p.data.WorkPackages {
		if wp.ID == id {
			p.data.WorkPackages = append(p.data.WorkPackages[:i:i], p.data.WorkPackages[i+1:]...)
			p.recomputeWeeks()
			return nil
		}
	}
	return fmt.Errorf("remove %q: %w", id, ErrWorkPackageNotFound)
}

type WorkPackagePatch struct {
	Title         *string
	DurationWeeks *int
	Objective     *string
	Description   *string
}

func (p *Proposal) UpdateWorkPackage(id string, patch WorkPackagePatch) error {
	wp, err := p.workPackage(id)
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}
	if patch.Title != nil {
		wp.Title = *patch.Title
	}
	if patch.DurationWeeks != nil {
		wp.DurationWeeks = clampInt(*patch.DurationWeeks, MinWorkPackageWeeks, MaxWorkPackageWeeks)
	}
	if patch.Objective != nil {
		wp.Objective = *patch.Objective
	}
	if patch.Description != nil {
		wp.Description = *patch.Description
	}
	p.recomputeWeeks()
	return nil
}

// AddWorkPackageDeliverable appends an empty placeholder to the package's
// deliverable list and returns its index.
func (p *Proposal) AddWorkPackageDeliverable(id string) (int, error) {
	wp, err := p.workPackage(id)
	if err != nil {
		return 0, fmt.Errorf("add deliverable: %w", err)
	}
	wp.Deliverables = append(wp.Deliverables, "")
	p.recomputeWeeks()
	return len(wp.Deliverables) - 1, nil
}

func (p *Proposal) SetWorkPackageDeliverable(id string, index int, text string) error {
	wp, err := p.workPackage(id)
	if err != nil {
		return fmt.Errorf("set deliverable: %w", err)
	}
	if index < 0 || index >= len(wp.Deliverables) {
		return fmt.Errorf("set deliverable %d of %q: %w", index, id, ErrIndexOutOfRange)
	}
	wp.Deliverables[index] = text
	p.recomputeWeeks()
	return nil
}

func (p *Proposal) RemoveWorkPackageDeliverable(id string, index int) error {
	wp, err := p.workPackage(id)
	if err != nil {
		return fmt.Errorf("remove deliverable: %w", err)
	}
	if index < 0 || index >= len(wp.Deliverables) {
		return fmt.Errorf("remove deliverable %d of %q: %w", index, id, ErrIndexOutOfRange)
	}
	wp.Deliverables = append(wp.Deliverables[:index:index], wp.Deliverables[index+1:]...)
	p.recomputeWeeks()
	return nil
}

func (p *Proposal) workPackage(id string) (*WorkPackage, error) {
	for i := range p.data.WorkPackages {
		if p.data.WorkPackages[i].ID == id {
			return &p.data.WorkPackages[i], nil
		}
	}
	return nil, fmt.Errorf("%q: %w", id, ErrWorkPackageNotFound)
}

// ── Team & deliverables ────────────────────────────────────────────────

func (p *Proposal) SetTeam(team []TeamMember) {
	p.data.Team = append([]TeamMember(nil), team...)
}

func (p *Proposal) AddTeamMember() int {
	p.data.Team = append(p.data.Team, TeamMember{})
	return len(p.data.Team) - 1
}

type TeamMemberPatch struct {
	Role    *string
	Name    *string
	Contact *string
}

func (p *Proposal) UpdateTeamMember(index int, patch TeamMemberPatch) error {
	if index < 0 || index >= len(p.data.Team) {
		return fmt.Errorf("update team member %d: %w", index, ErrIndexOutOfRange)
	}
	m := &p.data.Team[index]
	if patch.Role != nil {
		m.Role = *patch.Role
	}
	if patch.Name != nil {
		m.Name = *patch.Name
	}
	if patch.Contact != nil {
		m.Contact = *patch.Contact
	}
	return nil
}

func (p *Proposal) RemoveTeamMember(index int) error {
	if index < 0 || index >= len(p.data.Team) {
		return fmt.Errorf("remove team member %d: %w", index, ErrIndexOutOfRange)
	}
	p.data.Team = append(p.data.Team[:index:index], p.data.Team[index+1:]...)
	return nil
}

func (p *Proposal) SetDeliverables(items []Deliverable) {
	p.data.Deliverables = append([]Deliverable(nil), items...)
}

func (p *Proposal) AddDeliverable() int {
	p.data.Deliverables = append(p.data.Deliverables, Deliverable{})
	return len(p.data.Deliverables) - 1
}

func (p *Proposal) UpdateDeliverable(index int, d Deliverable) error {
	if index < 0 || index >= len(p.data.Deliverables) {
		return fmt.Errorf("update deliverable %d: %w", index, ErrIndexOutOfRange)
	}
	p.data.Deliverables[index] = d
	return nil
}

func (p *Proposal) RemoveDeliverable(index int) error {
	if index < 0 || index >= len(p.data.Deliverables) {
		return fmt.Errorf("remove deliverable %d: %w", index, ErrIndexOutOfRange)
	}
	p.data.Deliverables = append(p.data.Deliverables[:index:index], p.data.Deliverables[index+1:]...)
	return nil
}

// ── Planning, budget, assist ───────────────────────────────────────────

type PlanningPatch struct {
	StartDate     *string
	VacationWeeks *int
}

func (p *Proposal) SetPlanning(patch PlanningPatch) {
	if patch.StartDate != nil {
		p.data.Planning.StartDate = *patch.StartDate
	}
	if patch.VacationWeeks != nil {
		p.data.Planning.VacationWeeks = clampInt(*patch.VacationWeeks, 0, MaxVacationWeeks)
	}
	p.recomputeWeeks()
}

// BudgetPatch has no TotalWeeks: the budget duration is always derived.
type BudgetPatch struct {
	DailyRate *float64
	FTECount  *int
	VATRate   *float64
}

func (p *Proposal) SetBudget(patch BudgetPatch) {
	b := &p.data.Budget
	if patch.DailyRate != nil && finite(*patch.DailyRate) && *patch.DailyRate >= 0 {
		b.DailyRate = *patch.DailyRate
	}
	if patch.FTECount != nil {
		b.FTECount = clampInt(*patch.FTECount, MinFTE, MaxFTE)
	}
	if patch.VATRate != nil && finite(*patch.VATRate) {
		b.VATRate = clampFloat(*patch.VATRate, 0, 100)
	}
	p.recomputeWeeks()
}

type AssistPatch struct {
	APIKey *string
	Mode   *AssistMode
}

func (p *Proposal) SetAssistSettings(patch AssistPatch) {
	if patch.APIKey != nil {
		p.data.Assist.APIKey = strings.TrimSpace(*patch.APIKey)
	}
	if patch.Mode != nil {
		switch *patch.Mode {
		case AssistModeAPI, AssistModeManual:
			p.data.Assist.Mode = *patch.Mode
		}
	}
}

// Ptr is a small helper for building patches.
func Ptr[T any](v T) *T { return &v }
