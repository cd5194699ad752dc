package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"proposalgen/services"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func assertContains(t *testing.T, body string, fragments ...string) {
	t.Helper()
	for _, f := range fragments {
		if !strings.Contains(body, f) {
			t.Errorf("expected output to contain %q", f)
		}
	}
}

func sample() services.ProposalData {
	return services.ProposalData{
		Language: services.LangEN,
		Client:   services.ClientInfo{Name: "Acme", Reference: "R1"},
		Need:     "Better adhesion",
		TechSpecs: []services.TechSpec{
			{ID: "a", Text: "Tg < 40", Included: true, Feasibility: services.FeasibilityConditional},
			{ID: "b", Text: "Low VOC", Included: false, Feasibility: services.FeasibilityFeasible},
		},
		WorkPackages: []services.WorkPackage{
			{ID: "w1", Title: "Data", DurationWeeks: 2, Deliverables: []string{"Dataset"}},
			{ID: "w2", Title: "Model", DurationWeeks: 3},
		},
		Planning: services.PlanningConfig{VacationWeeks: 1},
		Budget:   services.BudgetConfig{DailyRate: 1000, FTECount: 1, VATRate: 20},
	}
}

func TestStepNavigation(t *testing.T) {
	tests := []struct {
		step  Step
		delta int
		want  Step
	}{
		{StepClient, -1, StepClient},
		{StepClient, 1, StepContext},
		{StepBudget, 1, StepPreview},
		{StepPreview, 1, StepPreview},
		{StepMethodology, -1, StepTechSpecs},
	}
	for _, tt := range tests {
		if got := tt.step.Neighbour(tt.delta); got != tt.want {
			t.Errorf("%s.Neighbour(%d) = %s, want %s", tt.step, tt.delta, got, tt.want)
		}
	}

	if s, ok := ParseStep("workpackages"); !ok || s != StepWorkPackages {
		t.Errorf("ParseStep(workpackages) = %q, %t", s, ok)
	}
	if _, ok := ParseStep("nope"); ok {
		t.Error("ParseStep should reject unknown slugs")
	}
	if Step("nope").Index() != -1 {
		t.Error("unknown step should have index -1")
	}
	if StepBudget.Path() != "/steps/budget" {
		t.Errorf("Path = %q", StepBudget.Path())
	}
}

func TestWizardPage(t *testing.T) {
	page := PageData{Lang: services.LangFR, Step: StepTechSpecs, ClientName: "Acme"}
	body := render(t, WizardPage(page, TechSpecsStep(sample()), templ.Raw("<p>assist</p>")))

	assertContains(t, body,
		`<html lang="fr">`,
		`<title>Générateur de propositions - Acme</title>`,
		`<option value="fr" selected>fr</option>`,
		`name="return" value="/steps/techspecs"`,
		`<li class="active"><a href="/steps/techspecs">Cahier des charges</a></li>`,
		`<main id="wizard-content"><h2>Cahier des charges</h2>`,
		`<aside id="assist-panel"><p>assist</p></aside>`,
		`value="prev"`, `value="next"`,
	)
}

func TestWizardPage_ToastScript(t *testing.T) {
	body := render(t, WizardPage(PageData{Lang: services.LangEN, Step: StepClient}, ClientStep(sample()), templ.Raw("")))

	assertContains(t, body,
		`<div id="toast" role="status"></div>`,
		`addEventListener("showToast"`,
		// flash toasts set before a redirect are shown once, then expired
		`document.cookie.match(/(?:^|; )flash_toast=([^;]*)/)`,
		`"flash_toast=; Max-Age=0; path=/"`,
		`decodeURIComponent(m[1].replace(/\+/g," "))`,
	)
}

func TestWizardContent_NavButtons(t *testing.T) {
	first := render(t, WizardContent(PageData{Lang: services.LangEN, Step: StepClient}, ClientStep(sample())))
	if strings.Contains(first, `value="prev"`) {
		t.Error("first step must not offer a previous button")
	}
	assertContains(t, first, `hx-post="/steps/client"`, `action="/steps/client"`, `value="next"`)

	last := render(t, WizardContent(PageData{Lang: services.LangEN, Step: StepPreview}, PreviewStep(PreviewData{Proposal: sample()})))
	if strings.Contains(last, `value="next"`) {
		t.Error("last step must not offer a next button")
	}
}

func TestTechSpecsStep(t *testing.T) {
	body := render(t, TechSpecsStep(sample()))
	assertContains(t, body,
		`name="spec_text_a" value="Tg &lt; 40"`,
		`name="spec_included_a" checked`,
		`<option value="conditional" selected>`,
		`hx-post="/techspecs/b/delete"`,
		`hx-post="/techspecs/import"`,
		`hx-include="#step-form"`,
	)
	if strings.Contains(body, `name="spec_included_b" checked`) {
		t.Error("excluded spec rendered as checked")
	}
}

func TestStepBodyEscapesUserText(t *testing.T) {
	d := sample()
	d.Client.Name = `<script>alert("x")</script>`
	d.Context = "a & b"
	for _, step := range []Step{StepClient, StepContext, StepPreview} {
		body := render(t, StepBody(step, PreviewData{Proposal: d}))
		if strings.Contains(body, "<script>") {
			t.Errorf("%s: unescaped client name", step)
		}
	}
	assertContains(t, render(t, ContextStep(d)), "a &amp; b</textarea>")
}

func TestWorkPackagesStep(t *testing.T) {
	body := render(t, WorkPackagesStep(sample()))
	assertContains(t, body,
		`<legend>WP1</legend>`, `<legend>WP2</legend>`,
		`name="wp_weeks_w1" value="2" min="1" max="52"`,
		`name="wp_deliverable_w1_0" value="Dataset"`,
		`hx-post="/workpackages/w1/deliverables/0/delete"`,
		`hx-post="/workpackages/w2/deliverables/add"`,
		`hx-post="/workpackages/add"`,
	)
}

func TestGanttPreview(t *testing.T) {
	d := sample()
	sched := services.BuildSchedule(d.WorkPackages, d.Planning.VacationWeeks)
	body := render(t, GanttPreview(services.LangEN, sched))

	if got := strings.Count(body, "<tr>"); got != 3 {
		t.Errorf("rows = %d, want 3", got)
	}
	if got := strings.Count(body, `<td class="bar">`); got != 5 {
		t.Errorf("bar cells = %d, want 5", got)
	}
	if got := strings.Count(body, `<td class="vacation">`); got != 1 {
		t.Errorf("vacation cells = %d, want 1", got)
	}
	if got := strings.Count(body, "<td"); got != 3*6 {
		t.Errorf("cells = %d, want 18", got)
	}
	assertContains(t, body, "<th>WP1: Data</th>", "<th>WP2: Model</th>")
}

func TestPreviewStep(t *testing.T) {
	data := PreviewData{
		Proposal: sample(),
		Recent:   []ExportLogEntry{{FileName: "deck.pdf", Format: "deck", Size: "12 kB", When: "1 minute ago"}},
	}
	body := render(t, PreviewStep(data))
	assertContains(t, body,
		"1 specifications included",
		`href="/export/deck"`, `href="/export/budget"`, `href="/export/brief"`,
		"deck.pdf (deck, 12 kB, 1 minute ago)",
	)

	data.Proposal.Client.Name = " "
	body = render(t, PreviewStep(data))
	assertContains(t, body, "Enter a client name before exporting.", "Not filled")
	if strings.Contains(body, "href=\"/export/") {
		t.Error("exports must be disabled without a client name")
	}
}

func TestAssistPanel(t *testing.T) {
	v := AssistView{
		Lang:     services.LangEN,
		Mode:     services.AssistModeManual,
		Skill:    services.SkillMarketing,
		Messages: []services.Message{{Role: services.RoleUser, Content: "hi <there>"}},
	}
	body := render(t, AssistPanel(v))
	assertContains(t, body,
		`<option value="marketing"`,
		`hx-post="/assist/prompt"`,
		`<div class="user">hi &lt;there&gt;</div>`,
		`hx-post="/assist/clear"`,
	)
	if strings.Contains(body, `hx-post="/assist/apply"`) || strings.Contains(body, `name="api_key"`) {
		t.Error("manual panel without a reply should not offer apply or key input")
	}

	v.Prompt = "PROMPT"
	v.PendingInput = "hi"
	v.CanApply = true
	body = render(t, AssistPanel(v))
	assertContains(t, body, `hx-post="/assist/paste"`, ">PROMPT</textarea>", `name="message" value="hi"`,
		`hx-post="/assist/apply"`, `<option value="context" selected>`)

	v = AssistView{Lang: services.LangEN, Mode: services.AssistModeAPI, HasKey: true}
	body = render(t, AssistPanel(v))
	assertContains(t, body, `hx-post="/assist/send"`, `name="api_key"`, "&#10003;")
}
