// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"proposalgen/collections"
	"proposalgen/services"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestExport records an export log entry for session and returns it.
func CreateTestExport(t *testing.T, app *pocketbase.PocketBase, session, fileName, format string, size int) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId(collections.ExportsCollection)
	if err != nil {
		t.Fatalf("failed to find exports collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("session", session)
	record.Set("file_name", fileName)
	record.Set("format", format)
	record.Set("size", size)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test export: %v", err)
	}

	return record
}

// SampleProposal returns a small, fully filled English proposal.
func SampleProposal() services.ProposalData {
	return services.ProposalData{
		Language: services.LangEN,
		Client: services.ClientInfo{
			Name:      "Acme Coatings",
			Date:      "2026-03-02",
			Reference: "PR-7",
			Validity:  "3 months",
		},
		Context: "Acme develops industrial coatings.",
		Need:    "A binder with better adhesion.",
		TechSpecs: []services.TechSpec{
			{ID: "ts-1", Text: "Adhesion > 5 MPa", Included: true, Feasibility: services.FeasibilityFeasible},
			{ID: "ts-2", Text: "Bio-sourced", Included: false, Feasibility: services.FeasibilityInfeasible},
		},
		WorkPackages: []services.WorkPackage{
			{ID: "wp-1", Title: "Data collection", DurationWeeks: 3, Deliverables: []string{"Dataset"}},
			{ID: "wp-2", Title: "Modeling", DurationWeeks: 5},
		},
		Team:         []services.TeamMember{{Role: "Project Leader", Name: "Jane Doe"}},
		Deliverables: []services.Deliverable{{Title: "Report", Format: "PDF"}},
		Planning:     services.PlanningConfig{StartDate: "2026-04-06"},
		Budget:       services.BudgetConfig{DailyRate: 1000, FTECount: 2, VATRate: 20},
		Assist:       services.AssistSettings{Mode: services.AssistModeManual},
	}
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHTMLNotContains checks that body contains none of the fragments.
func AssertHTMLNotContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if strings.Contains(body, frag) {
			t.Errorf("expected HTML not to contain %q", frag)
		}
	}
}

// AssertHXRedirect checks that the response has an HX-Redirect header with the expected URL.
func AssertHXRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected HX-Redirect %q, got %q", expectedURL, headerVal)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
