package templates

import (
	"github.com/a-h/templ"

	"proposalgen/i18n"
	"proposalgen/services"
)

// Step identifies one screen of the wizard.
type Step string

const (
	StepClient       Step = "client"
	StepContext      Step = "context"
	StepTechSpecs    Step = "techspecs"
	StepMethodology  Step = "methodology"
	StepWorkPackages Step = "workpackages"
	StepResources    Step = "resources"
	StepPlanning     Step = "planning"
	StepBudget       Step = "budget"
	StepPreview      Step = "preview"
)

// Steps is the wizard order.
var Steps = []Step{
	StepClient, StepContext, StepTechSpecs, StepMethodology, StepWorkPackages,
	StepResources, StepPlanning, StepBudget, StepPreview,
}

var stepLabels = map[Step]string{
	StepClient:       "steps.clientInfo",
	StepContext:      "steps.context",
	StepTechSpecs:    "steps.techSpecs",
	StepMethodology:  "steps.methodology",
	StepWorkPackages: "steps.studyContent",
	StepResources:    "steps.resources",
	StepPlanning:     "steps.planning",
	StepBudget:       "steps.budget",
	StepPreview:      "steps.preview",
}

// ParseStep returns the step for a URL slug.
func ParseStep(s string) (Step, bool) {
	for _, st := range Steps {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// Index returns the position of s in Steps, or -1.
func (s Step) Index() int {
	for i, st := range Steps {
		if st == s {
			return i
		}
	}
	return -1
}

// Neighbour returns the step delta positions away, clamped to the wizard.
func (s Step) Neighbour(delta int) Step {
	i := s.Index() + delta
	if i < 0 {
		i = 0
	}
	if i >= len(Steps) {
		i = len(Steps) - 1
	}
	return Steps[i]
}

func (s Step) Path() string { return "/steps/" + string(s) }

// PageData is what the page chrome needs besides the step body.
type PageData struct {
	Lang       services.Language
	Step       Step
	ClientName string
}

// WizardPage renders the full document around a step body and the assistant panel.
func WizardPage(page PageData, body, assist templ.Component) templ.Component {
	t := tr(page.Lang)
	return component(func(h *htmlWriter) {
		h.raw(`<!DOCTYPE html><html`)
		h.attr("lang", string(page.Lang))
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(t("app.title"))
		if page.ClientName != "" {
			h.text(" - " + page.ClientName)
		}
		h.raw(`</title><script src="https://unpkg.com/htmx.org@2.0.4"></script><style>`, pageCSS, `</style></head><body>`)

		h.raw(`<header class="topbar"><h1>`)
		h.text(t("app.title"))
		h.raw(`</h1><form method="post" action="/language" class="lang-switch"><label>`)
		h.text(t("app.language"))
		h.raw(` <select name="lang" onchange="this.form.submit()">`)
		for _, l := range i18n.Languages {
			h.raw(`<option`)
			h.attr("value", l)
			h.raw(selected(l == string(page.Lang)), `>`, l, `</option>`)
		}
		h.raw(`</select></label><input type="hidden" name="return"`)
		h.attr("value", page.Step.Path())
		h.raw(`></form></header>`)

		h.raw(`<div class="shell"><nav class="steps"><ol>`)
		for _, st := range Steps {
			class := ""
			if st == page.Step {
				class = "active"
			}
			h.raw(`<li`)
			h.attr("class", class)
			h.raw(`><a`)
			h.attr("href", st.Path())
			h.raw(`>`)
			h.text(t(stepLabels[st]))
			h.raw(`</a></li>`)
		}
		h.raw(`</ol></nav><main id="wizard-content">`)
		h.child(WizardContent(page, body))
		h.raw(`</main><aside id="assist-panel">`)
		h.child(assist)
		h.raw(`</aside></div><div id="toast" role="status"></div><script>`, toastJS, `</script></body></html>`)
	})
}

// WizardContent is the swappable part of a page: the step form and its navigation.
func WizardContent(page PageData, body templ.Component) templ.Component {
	t := tr(page.Lang)
	return component(func(h *htmlWriter) {
		h.raw(`<h2>`)
		h.text(t(stepLabels[page.Step]))
		h.raw(`</h2><form id="step-form" method="post"`)
		h.attr("action", page.Step.Path())
		h.attr("hx-post", page.Step.Path())
		h.raw(` hx-target="#wizard-content">`)
		h.child(body)
		h.raw(`<div class="step-nav">`)
		if page.Step.Index() > 0 {
			h.raw(`<button type="submit" name="nav" value="prev">`)
			h.text(t("common.previous"))
			h.raw(`</button>`)
		}
		h.raw(`<button type="submit" name="nav" value="">`)
		h.text(t("common.save"))
		h.raw(`</button>`)
		if page.Step.Index() < len(Steps)-1 {
			h.raw(`<button type="submit" name="nav" value="next" class="primary">`)
			h.text(t("common.next"))
			h.raw(`</button>`)
		}
		h.raw(`</div></form>`)
	})
}

const pageCSS = `body{font-family:Arial,sans-serif;margin:0;color:#222}
.topbar{display:flex;justify-content:space-between;align-items:center;background:#002060;color:#fff;padding:.5rem 1rem}
.topbar h1{font-size:1.2rem;margin:0}
.shell{display:grid;grid-template-columns:14rem 1fr 22rem;gap:1rem;padding:1rem}
.steps ol{padding-left:1.2rem}.steps li.active a{font-weight:bold;color:#002060}
.field{display:flex;flex-direction:column;margin:.4rem 0}.field span{font-size:.85rem;color:#555}
textarea,input[type=text],input[type=number],input[type=date],select{padding:.3rem;font:inherit}
.row{display:flex;gap:.5rem;align-items:flex-end}.card{border:1px solid #ddd;padding:.6rem;margin:.5rem 0}
.step-nav{margin-top:1rem;display:flex;gap:.5rem}.primary{background:#002060;color:#fff}
.feasible{color:#00B050}.conditional{color:#E6B800}.infeasible{color:#C00000}
.gantt{border-collapse:collapse}.gantt td{width:1.2rem;height:1rem;border:1px solid #eee}
.gantt td.bar{background:#F1C232}.gantt td.vacation{background:#A6A6A6}
.chat .user{background:#eef}.chat .assistant{background:#f4f4f4}.chat div{padding:.4rem;margin:.3rem 0;white-space:pre-wrap}
#toast{position:fixed;bottom:1rem;right:1rem}`

const toastJS = `function showToast(d){var t=document.getElementById("toast");t.textContent=d.message;t.className=d.type;setTimeout(function(){t.textContent=""},4000)}
document.body.addEventListener("showToast",function(e){showToast(e.detail)});
(function(){var m=document.cookie.match(/(?:^|; )flash_toast=([^;]*)/);if(!m)return;document.cookie="flash_toast=; Max-Age=0; path=/";try{showToast(JSON.parse(decodeURIComponent(m[1].replace(/\+/g," "))))}catch(e){}})();`
