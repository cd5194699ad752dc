package templates

import (
	"strings"

	"github.com/a-h/templ"

	"proposalgen/services"
)

func ClientStep(d services.ProposalData) templ.Component {
	t := tr(d.Language)
	return component(func(h *htmlWriter) {
		h.raw(`<p class="hint">`)
		h.text(t("client.helpText"))
		h.raw(`</p>`)
		h.field(t("client.name"), "client_name", d.Client.Name, t("client.namePlaceholder"))
		h.raw(`<label class="field"><span>`)
		h.text(t("client.date"))
		h.raw(`</span><input type="date" name="client_date"`)
		h.attr("value", d.Client.Date)
		h.raw(`></label>`)
		h.field(t("client.reference"), "client_reference", d.Client.Reference, "")
		h.field(t("client.validity"), "client_validity", d.Client.Validity, "")
	})
}

func ContextStep(d services.ProposalData) templ.Component {
	t := tr(d.Language)
	return component(func(h *htmlWriter) {
		h.textarea(t("context.contextLabel"), "context", d.Context, t("context.contextPlaceholder"), 6)
		h.raw(`<p class="hint">`)
		h.text(t("context.contextHint"))
		h.raw(`</p>`)
		h.textarea(t("context.needLabel"), "need", d.Need, t("context.needPlaceholder"), 6)
	})
}

var feasibilityOptions = []struct {
	value services.Feasibility
	key   string
}{
	{services.FeasibilityFeasible, "techSpecs.feasible"},
	{services.FeasibilityConditional, "techSpecs.conditional"},
	{services.FeasibilityInfeasible, "techSpecs.notFeasible"},
}

func TechSpecsStep(d services.ProposalData) templ.Component {
	t := tr(d.Language)
	return component(func(h *htmlWriter) {
		h.raw(`<p class="hint">`)
		h.text(t("techSpecs.description"))
		h.raw(`</p><div class="specs">`)
		for _, s := range d.TechSpecs {
			h.raw(`<div class="row card"`)
			h.attr("id", "spec-"+s.ID)
			h.raw(`><label><input type="checkbox" value="on"`)
			h.attr("name", "spec_included_"+s.ID)
			h.raw(checked(s.Included), `> `)
			h.text(t("techSpecs.included"))
			h.raw(`</label><input type="text"`)
			h.attr("name", "spec_text_"+s.ID)
			h.attr("value", s.Text)
			h.attr("placeholder", t("techSpecs.specPlaceholder"))
			h.raw(`><select`)
			h.attr("name", "spec_feasibility_"+s.ID)
			h.attr("class", string(s.Feasibility))
			h.raw(`>`)
			for _, o := range feasibilityOptions {
				h.raw(`<option`)
				h.attr("value", string(o.value))
				h.raw(selected(o.value == s.Feasibility), `>`)
				h.text(t(o.key))
				h.raw(`</option>`)
			}
			h.raw(`</select>`)
			h.actionButton("/techspecs/"+s.ID+"/delete", t("common.delete"), "danger")
			h.raw(`</div>`)
		}
		h.raw(`</div>`)
		h.actionButton("/techspecs/add", t("techSpecs.addSpec"), "")
		h.raw(`<div class="card">`)
		h.textarea(t("techSpecs.importLabel"), "import_text", "", "", 4)
		h.actionButton("/techspecs/import", t("techSpecs.import"), "")
		h.raw(`</div><div class="card"><label class="field"><span>`)
		h.text(t("techSpecs.uploadLabel"))
		h.raw(`</span><input type="file" name="spec_file" accept=".csv,.xlsx"></label>`)
		h.raw(`<button type="button" hx-post="/techspecs/upload" hx-include="#step-form" hx-encoding="multipart/form-data" hx-target="#wizard-content">`)
		h.text(t("techSpecs.upload"))
		h.raw(`</button></div>`)
	})
}

var methodologyLabels = map[services.MethodologyField]string{
	services.FieldPrediction:  "methodology.prediction",
	services.FieldGeneration:  "methodology.generation",
	services.FieldChallenges:  "methodology.challenges",
	services.FieldEncouraging: "methodology.encouragingResearch",
	services.FieldPosition:    "methodology.position",
}

func MethodologyStep(d services.ProposalData) templ.Component {
	t := tr(d.Language)
	return component(func(h *htmlWriter) {
		h.raw(`<p class="hint">`)
		h.text(t("methodology.hint"))
		h.raw(`</p>`)
		for _, f := range services.MethodologyFields {
			h.textarea(t(methodologyLabels[f]), f.String(), d.Methodology.Value(f), t("methodology.placeholder"), 5)
		}
	})
}

func WorkPackagesStep(d services.ProposalData) templ.Component {
	t := tr(d.Language)
	return component(func(h *htmlWriter) {
		for i, wp := range d.WorkPackages {
			h.raw(`<fieldset class="card"`)
			h.attr("id", "wp-"+wp.ID)
			h.raw(`><legend>WP`, itoa(i+1), `</legend>`)
			h.field(t("studyContent.wpTitle"), "wp_title_"+wp.ID, wp.Title, "")
			h.numberField(t("studyContent.duration")+" ("+t("studyContent.weeks")+")", "wp_weeks_"+wp.ID,
				itoa(wp.DurationWeeks), services.MinWorkPackageWeeks, services.MaxWorkPackageWeeks, "1")
			h.textarea(t("studyContent.objective"), "wp_objective_"+wp.ID, wp.Objective, "", 2)
			h.textarea(t("studyContent.description"), "wp_description_"+wp.ID, wp.Description, "", 3)
			h.raw(`<div class="deliverables"><span>`)
			h.text(t("studyContent.deliverables"))
			h.raw(`</span>`)
			for j, dl := range wp.Deliverables {
				h.raw(`<div class="row"><input type="text"`)
				h.attr("name", "wp_deliverable_"+wp.ID+"_"+itoa(j))
				h.attr("value", dl)
				h.raw(`>`)
				h.actionButton("/workpackages/"+wp.ID+"/deliverables/"+itoa(j)+"/delete", t("common.delete"), "danger")
				h.raw(`</div>`)
			}
			h.actionButton("/workpackages/"+wp.ID+"/deliverables/add", t("studyContent.addDeliverable"), "")
			h.raw(`</div>`)
			h.actionButton("/workpackages/"+wp.ID+"/delete", t("common.delete"), "danger")
			h.raw(`</fieldset>`)
		}
		h.actionButton("/workpackages/add", t("studyContent.addWP"), "")
	})
}

func ResourcesStep(d services.ProposalData) templ.Component {
	t := tr(d.Language)
	return component(func(h *htmlWriter) {
		h.raw(`<h3>`)
		h.text(t("resources.teamTitle"))
		h.raw(`</h3>`)
		for i, m := range d.Team {
			n := itoa(i)
			h.raw(`<div class="row card">`)
			h.field(t("resources.rolePlaceholder"), "team_role_"+n, m.Role, "")
			h.field(t("resources.namePlaceholder"), "team_name_"+n, m.Name, "")
			h.field(t("resources.contactPlaceholder"), "team_contact_"+n, m.Contact, "")
			h.actionButton("/resources/team/"+n+"/delete", t("common.delete"), "danger")
			h.raw(`</div>`)
		}
		h.actionButton("/resources/team/add", t("resources.addMember"), "")

		h.raw(`<h3>`)
		h.text(t("resources.deliverablesTitle"))
		h.raw(`</h3>`)
		for i, dl := range d.Deliverables {
			n := itoa(i)
			h.raw(`<div class="row card">`)
			h.field(t("resources.deliverableTitlePlaceholder"), "deliverable_title_"+n, dl.Title, "")
			h.field(t("resources.formatPlaceholder"), "deliverable_format_"+n, dl.Format, "")
			h.actionButton("/resources/deliverables/"+n+"/delete", t("common.delete"), "danger")
			h.raw(`</div>`)
		}
		h.actionButton("/resources/deliverables/add", t("resources.addDeliverable"), "")
	})
}

func PlanningStep(d services.ProposalData) templ.Component {
	t := tr(d.Language)
	sched := services.BuildSchedule(d.WorkPackages, d.Planning.VacationWeeks)
	return component(func(h *htmlWriter) {
		h.raw(`<label class="field"><span>`)
		h.text(t("planning.startDate"))
		h.raw(`</span><input type="date" name="start_date"`)
		h.attr("value", d.Planning.StartDate)
		h.raw(`></label>`)
		h.numberField(t("planning.vacationWeeks"), "vacation_weeks", itoa(d.Planning.VacationWeeks), 0, services.MaxVacationWeeks, "1")

		h.raw(`<p>`)
		h.text(t("planning.workWeeks") + ": " + itoa(services.WorkWeeks(d.WorkPackages)))
		h.raw(`<br>`)
		h.text(t("planning.totalWeeks") + ": " + itoa(sched.TotalWeeks))
		h.raw(`</p><h3>`)
		h.text(t("planning.ganttPreview"))
		h.raw(`</h3>`)
		h.child(GanttPreview(d.Language, sched))
	})
}

// GanttPreview draws the schedule as a table with one cell per week.
func GanttPreview(lang services.Language, sched services.Schedule) templ.Component {
	t := tr(lang)
	return component(func(h *htmlWriter) {
		h.raw(`<table class="gantt"><tbody>`)
		for _, bar := range sched.Bars {
			label := bar.Label
			if bar.Vacation {
				label = t("planning.vacationLabel")
			}
			h.raw(`<tr><th>`)
			h.text(label)
			h.raw(`</th>`)
			for w := 0; w < sched.TotalWeeks; w++ {
				switch {
				case w < bar.Start || w >= bar.End():
					h.raw(`<td></td>`)
				case bar.Vacation:
					h.raw(`<td class="vacation"></td>`)
				default:
					h.raw(`<td class="bar"></td>`)
				}
			}
			h.raw(`</tr>`)
		}
		h.raw(`</tbody></table>`)
	})
}

func BudgetStep(d services.ProposalData) templ.Component {
	t := tr(d.Language)
	b := services.BudgetFor(d)
	return component(func(h *htmlWriter) {
		h.numberField(t("budget.dailyRate"), "daily_rate", ftoa(d.Budget.DailyRate), 0, 0, "any")
		h.numberField(t("budget.fteCount"), "fte_count", itoa(d.Budget.FTECount), services.MinFTE, services.MaxFTE, "1")
		h.numberField(t("budget.vatRate"), "vat_rate", ftoa(d.Budget.VATRate), 0, 100, "any")

		h.raw(`<table class="totals"><tbody>`)
		rows := [][2]string{
			{t("budget.weeksOfWork"), itoa(b.TotalWeeks)},
			{t("budget.totalHT"), services.FormatCurrency(b.TotalExcludingTax, d.Language)},
			{t("budget.vat") + " " + services.FormatPercent(b.VATRate), services.FormatCurrency(b.VATAmount, d.Language)},
			{t("budget.totalTTC"), services.FormatCurrency(b.TotalIncludingTax, d.Language)},
		}
		for _, r := range rows {
			h.raw(`<tr><th>`)
			h.text(r[0])
			h.raw(`</th><td>`)
			h.text(r[1])
			h.raw(`</td></tr>`)
		}
		h.raw(`</tbody></table>`)
	})
}

// ExportLogEntry is one line of the recent-exports list.
type ExportLogEntry struct {
	FileName string
	Format   string
	Size     string
	When     string
}

// PreviewData feeds the last wizard step.
type PreviewData struct {
	Proposal services.ProposalData
	Recent   []ExportLogEntry
}

func PreviewStep(data PreviewData) templ.Component {
	d := data.Proposal
	t := tr(d.Language)
	ready := strings.TrimSpace(d.Client.Name) != ""
	return component(func(h *htmlWriter) {
		h.raw(`<dl class="summary"><dt>`)
		h.text(t("client.name"))
		h.raw(`</dt><dd>`)
		h.text(orNotFilled(d.Client.Name, t))
		h.raw(`</dd><dt>`)
		h.text(t("context.needLabel"))
		h.raw(`</dt><dd>`)
		h.text(orNotFilled(d.Need, t))
		h.raw(`</dd><dt>`)
		h.text(t("steps.techSpecs"))
		h.raw(`</dt><dd>`)
		h.text(itoa(len(d.IncludedTechSpecs())) + " " + t("preview.specsCount"))
		h.raw(`</dd><dt>`)
		h.text(t("preview.wpSection"))
		h.raw(`</dt><dd><ul>`)
		for _, wp := range d.WorkPackages {
			h.raw(`<li>`)
			h.text(wp.Title + " (" + itoa(wp.DurationWeeks) + " " + t("studyContent.weeks") + ")")
			h.raw(`</li>`)
		}
		h.raw(`</ul></dd><dt>`)
		h.text(t("preview.teamSection"))
		h.raw(`</dt><dd>`)
		h.text(itoa(len(d.Team)))
		h.raw(`</dd><dt>`)
		h.text(t("budget.totalTTC"))
		h.raw(`</dt><dd>`)
		h.text(services.FormatCurrency(services.BudgetFor(d).TotalIncludingTax, d.Language))
		h.raw(`</dd></dl>`)

		if !ready {
			h.raw(`<p class="warning">`)
			h.text(t("preview.clientRequired"))
			h.raw(`</p>`)
		}
		h.raw(`<div class="exports">`)
		for _, ex := range []struct{ path, key string }{
			{"/export/deck", "preview.exportDeck"},
			{"/export/budget", "preview.exportBudget"},
			{"/export/brief", "preview.exportBrief"},
		} {
			if ready {
				h.raw(`<a class="button primary"`)
				h.attr("href", ex.path)
				h.raw(` hx-boost="false">`)
			} else {
				h.raw(`<a class="button disabled" aria-disabled="true">`)
			}
			h.text(t(ex.key))
			h.raw(`</a> `)
		}
		h.raw(`</div>`)

		if len(data.Recent) > 0 {
			h.raw(`<ul class="recent-exports">`)
			for _, r := range data.Recent {
				h.raw(`<li>`)
				h.text(r.FileName + " (" + r.Format + ", " + r.Size + ", " + r.When + ")")
				h.raw(`</li>`)
			}
			h.raw(`</ul>`)
		}
	})
}

func orNotFilled(s string, t func(string) string) string {
	if strings.TrimSpace(s) == "" {
		return t("preview.notFilled")
	}
	return s
}

// StepBody picks the body component for step.
func StepBody(step Step, data PreviewData) templ.Component {
	d := data.Proposal
	switch step {
	case StepClient:
		return ClientStep(d)
	case StepContext:
		return ContextStep(d)
	case StepTechSpecs:
		return TechSpecsStep(d)
	case StepMethodology:
		return MethodologyStep(d)
	case StepWorkPackages:
		return WorkPackagesStep(d)
	case StepResources:
		return ResourcesStep(d)
	case StepPlanning:
		return PlanningStep(d)
	case StepBudget:
		return BudgetStep(d)
	default:
		return PreviewStep(data)
	}
}
