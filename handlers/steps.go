package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"proposalgen/i18n"
	"proposalgen/services"
	"proposalgen/templates"
)

// renderStep writes step for the session: the whole page for a regular
// request, only the wizard content for an HTMX swap.
func renderStep(app *pocketbase.PocketBase, e *core.RequestEvent, s *Session, step templates.Step) error {
	d := s.Snapshot()
	data := templates.PreviewData{Proposal: d}
	if step == templates.StepPreview {
		data.Recent = recentExports(app, s.ID, 5)
	}
	page := templates.PageData{Lang: d.Language, Step: step, ClientName: d.Client.Name}
	body := templates.StepBody(step, data)

	var component templ.Component
	if e.Request.Header.Get("HX-Request") == "true" {
		component = templates.WizardContent(page, body)
	} else {
		component = templates.WizardPage(page, body, templates.AssistPanel(assistView(s)))
	}
	return component.Render(e.Request.Context(), e.Response)
}

// goToStep sends the browser to step after a successful POST.
func goToStep(app *pocketbase.PocketBase, e *core.RequestEvent, s *Session, step templates.Step) error {
	if e.Request.Header.Get("HX-Request") == "true" {
		e.Response.Header().Set("HX-Push-Url", step.Path())
		return renderStep(app, e, s, step)
	}
	return e.Redirect(http.StatusFound, step.Path())
}

func HandleHome() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.Redirect(http.StatusFound, templates.Steps[0].Path())
	}
}

func HandleStepPage(app *pocketbase.PocketBase, store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		s := sessionFor(e, store)
		step, ok := templates.ParseStep(e.Request.PathValue("step"))
		if !ok {
			return ErrorToast(e, http.StatusNotFound, s.T("errors.stepNotFound"))
		}
		return renderStep(app, e, s, step)
	}
}

// HandleStepSave applies the submitted step form, then stays on the step or
// moves to the previous/next one depending on the "nav" button.
func HandleStepSave(app *pocketbase.PocketBase, store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		s := sessionFor(e, store)
		step, ok := templates.ParseStep(e.Request.PathValue("step"))
		if !ok {
			return ErrorToast(e, http.StatusNotFound, s.T("errors.stepNotFound"))
		}
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, s.T("errors.invalidForm"))
		}

		s.With(func(p *services.Proposal, _ *services.Conversation) {
			applyStepForm(step, p, e.Request.Form)
		})

		switch e.Request.FormValue("nav") {
		case "next":
			return goToStep(app, e, s, step.Neighbour(1))
		case "prev":
			return goToStep(app, e, s, step.Neighbour(-1))
		}
		SetToast(e, "success", s.T("toast.saved"))
		return goToStep(app, e, s, step)
	}
}

// stepAction builds a handler for a list mutation on step. The submitted
// step form is applied first so pending edits are not lost.
func stepAction(app *pocketbase.PocketBase, store *SessionStore, step templates.Step,
	mutate func(e *core.RequestEvent, p *services.Proposal) error) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		s := sessionFor(e, store)
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, s.T("errors.invalidForm"))
		}
		var err error
		s.With(func(p *services.Proposal, _ *services.Conversation) {
			applyStepForm(step, p, e.Request.Form)
			err = mutate(e, p)
		})
		if err != nil {
			log.Printf("steps: %s action failed: %v", step, err)
			if errors.Is(err, errBadIndex) {
				return ErrorToast(e, http.StatusBadRequest, s.T("errors.invalidIndex"))
			}
			return ErrorToast(e, http.StatusNotFound, s.T("errors.notFound"))
		}
		return goToStep(app, e, s, step)
	}
}

var errBadIndex = errors.New("bad index")

func pathIndex(e *core.RequestEvent) (int, error) {
	n, err := strconv.Atoi(e.Request.PathValue("index"))
	if err != nil {
		return 0, errBadIndex
	}
	return n, nil
}

// ── Tech specs ─────────────────────────────────────────────────────────

func HandleTechSpecAdd(app *pocketbase.PocketBase, store *SessionStore) func(*core.RequestEvent) error {
	return stepAction(app, store, templates.StepTechSpecs, func(_ *core.RequestEvent, p *services.Proposal) error {
		p.AddTechSpec()
		return nil
	})
}

// HandleTechSpecImport adds one spec per non-blank line of import_text.
func HandleTechSpecImport(app *pocketbase.PocketBase, store *SessionStore) func(*core.RequestEvent) error {
	return stepAction(app, store, templates.StepTechSpecs, func(e *core.RequestEvent, p *services.Proposal) error {
		ids := p.ImportTechSpecs(e.Request.FormValue("import_text"))
		if len(ids) > 0 {
			SetToast(e, "success", i18n.Tf(string(p.Language()), "toast.specsImported", "n", strconv.Itoa(len(ids))))
		}
		return nil
	})
}

// maxSpecUpload bounds the size of an uploaded specification sheet.
const maxSpecUpload = 5 << 20

// HandleTechSpecUpload imports specifications from an uploaded CSV or XLSX
// sheet. Rows with unreadable cells are skipped and counted in the toast.
func HandleTechSpecUpload(app *pocketbase.PocketBase, store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		s := sessionFor(e, store)
		if err := e.Request.ParseMultipartForm(maxSpecUpload); err != nil {
			return ErrorToast(e, http.StatusBadRequest, s.T("errors.invalidUpload"))
		}
		file, header, err := e.Request.FormFile("spec_file")
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, s.T("errors.noFile"))
		}
		defer file.Close()

		res, err := services.ParseTechSpecFile(file, header.Filename)
		if err != nil {
			log.Printf("steps: spec upload %s rejected: %v", header.Filename, err)
			if errors.Is(err, services.ErrUnsupportedFile) {
				return ErrorToast(e, http.StatusBadRequest, s.T("errors.unsupportedFile"))
			}
			return ErrorToast(e, http.StatusBadRequest, s.T("errors.unreadableFile"))
		}

		var ids []string
		s.With(func(p *services.Proposal, _ *services.Conversation) {
			applyStepForm(templates.StepTechSpecs, p, e.Request.Form)
			ids = p.ImportTechSpecRows(res.Rows)
		})

		imported := strconv.Itoa(len(ids))
		if len(res.Errors) > 0 {
			for _, rowErr := range res.Errors {
				log.Printf("steps: spec upload %s: %v", header.Filename, rowErr)
			}
			skipped := strconv.Itoa(res.TotalRows - len(res.Rows))
			SetToast(e, "warning", s.T("toast.rowsSkipped", "n", imported, "skipped", skipped))
		} else {
			SetToast(e, "success", s.T("toast.specsImported", "n", imported))
		}
		return goToStep(app, e, s, templates.StepTechSpecs)
	}
}

func HandleTechSpecDelete(app *pocketbase.PocketBase, store *SessionStore) func(*core.RequestEvent) error {
	return stepAction(app, store, templates.StepTechSpecs, func(e *core.RequestEvent, p *services.Proposal) error {
		return p.RemoveTechSpec(e.Request.PathValue("id"))
	})
}

// ── Work packages ──────────────────────────────────────────────────────

func HandleWorkPackageAdd(app *pocketbase.PocketBase, store *SessionStore) func(*core.RequestEvent) error {
	return stepAction(app, store, templates.StepWorkPackages, func(_ *core.RequestEvent, p *services.Proposal) error {
		p.AddWorkPackage()
		return nil
	})
}

func HandleWorkPackageDelete(app *pocketbase.PocketBase, store *SessionStore) func(*core.RequestEvent) error {
	return stepAction(app, store, templates.StepWorkPackages, func(e *core.RequestEvent, p *services.Proposal) error {
		return p.RemoveWorkPackage(e.Request.PathValue("id"))
	})
}

func HandleWorkPackageDeliverableAdd(app *pocketbase.PocketBase, store *SessionStore) func(*core.RequestEvent) error {
	return stepAction(app, store, templates.StepWorkPackages, func(e *core.RequestEvent, p *services.Proposal) error {
		_, err := p.AddWorkPackageDeliverable(e.Request.PathValue("id"))
		return err
	})
}

func HandleWorkPackageDeliverableDelete(app *pocketbase.PocketBase, store *SessionStore) func(*core.RequestEvent) error {
	return stepAction(app, store, templates.StepWorkPackages, func(e *core.RequestEvent, p *services.Proposal) error {
		i, err := pathIndex(e)
		if err != nil {
			return err
		}
		return p.RemoveWorkPackageDeliverable(e.Request.PathValue("id"), i)
	})
}

// ── Team & deliverables ────────────────────────────────────────────────

func HandleTeamMemberAdd(app *pocketbase.PocketBase, store *SessionStore) func(*core.RequestEvent) error {
	return stepAction(app, store, templates.StepResources, func(_ *core.RequestEvent, p *services.Proposal) error {
		p.AddTeamMember()
		return nil
	})
}

func HandleTeamMemberDelete(app *pocketbase.PocketBase, store *SessionStore) func(*core.RequestEvent) error {
	return stepAction(app, store, templates.StepResources, func(e *core.RequestEvent, p *services.Proposal) error {
		i, err := pathIndex(e)
		if err != nil {
			return err
		}
		return p.RemoveTeamMember(i)
	})
}

func HandleDeliverableAdd(app *pocketbase.PocketBase, store *SessionStore) func(*core.RequestEvent) error {
	return stepAction(app, store, templates.StepResources, func(_ *core.RequestEvent, p *services.Proposal) error {
		p.AddDeliverable()
		return nil
	})
}

func HandleDeliverableDelete(app *pocketbase.PocketBase, store *SessionStore) func(*core.RequestEvent) error {
	return stepAction(app, store, templates.StepResources, func(e *core.RequestEvent, p *services.Proposal) error {
		i, err := pathIndex(e)
		if err != nil {
			return err
		}
		return p.RemoveDeliverable(i)
	})
}

// ── Language & reset ───────────────────────────────────────────────────

// HandleLanguage switches the proposal language and returns to the step the
// user was on.
func HandleLanguage(store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		s := sessionFor(e, store)
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, s.T("errors.invalidForm"))
		}
		lang := services.ParseLanguage(e.Request.FormValue("lang"))
		s.With(func(p *services.Proposal, _ *services.Conversation) {
			p.SetLanguage(lang)
		})

		target := templates.Steps[0].Path()
		if ret := e.Request.FormValue("return"); strings.HasPrefix(ret, "/steps/") {
			if _, ok := templates.ParseStep(strings.TrimPrefix(ret, "/steps/")); ok {
				target = ret
			}
		}
		if e.Request.Header.Get("HX-Request") == "true" {
			hxNavigate(e, "HX-Redirect", target)
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, target)
	}
}

// HandleReset discards the proposal and the transcript, keeping the language.
func HandleReset(store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		s := sessionFor(e, store)
		s.mu.Lock()
		lang := s.proposal.Snapshot().Language
		s.proposal.Reset()
		s.proposal.SetLanguage(lang)
		s.conversation.Clear()
		s.pendingInput, s.pendingPrompt, s.lastFailed = "", "", false
		s.mu.Unlock()

		log.Printf("steps: session %s reset", s.ID)
		SetToast(e, "success", s.T("toast.reset"))
		if e.Request.Header.Get("HX-Request") == "true" {
			hxNavigate(e, "HX-Redirect", templates.Steps[0].Path())
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, templates.Steps[0].Path())
	}
}
