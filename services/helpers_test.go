package services

import (
	"bytes"
	"time"
)

var fixedNow = time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

// bytesReader wraps a byte slice in a bytes.Reader for use with excelize.OpenReader.
func bytesReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}

// acmeProposal is the reference scenario: two work packages of 3 and 5
// weeks, 2 FTE at 1000 EUR/day and 20% VAT.
func acmeProposal() ProposalData {
	d := DefaultProposalData(fixedNow)
	d.Language = LangEN
	d.Client = ClientInfo{Name: "Acme / Co.!", Date: "2026-03-02", Reference: "PR1", Validity: "3 months"}
	d.Context = "Acme develops coatings."
	d.Need = "A binder with better adhesion."
	d.TechSpecs = []TechSpec{
		{ID: "ts-1", Text: "Adhesion > 5 MPa", Included: true, Feasibility: FeasibilityFeasible},
		{ID: "ts-2", Text: "Tg below 40 C", Included: true, Feasibility: FeasibilityConditional},
		{ID: "ts-3", Text: "Bio-sourced", Included: false, Feasibility: FeasibilityInfeasible},
	}
	d.WorkPackages = []WorkPackage{
		{ID: "wp-1", Title: "Data collection", DurationWeeks: 3, Objective: "Gather data", Deliverables: []string{"Dataset"}},
		{ID: "wp-2", Title: "Modeling", DurationWeeks: 5, Objective: "Train models", Deliverables: []string{"Models", " "}},
	}
	d.Planning = PlanningConfig{StartDate: "2026-04-06", TotalWeeks: 8}
	d.Budget = BudgetConfig{DailyRate: 1000, FTECount: 2, TotalWeeks: 8, VATRate: 20}
	return d
}
