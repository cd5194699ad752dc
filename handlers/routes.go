package handlers

import (
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/router"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes binds the wizard, export and assistant routes to r.
// Only that group carries the session middleware, so /metrics and the
// PocketBase API never create wizard sessions.
func RegisterRoutes(r *router.Router[*core.RequestEvent], app *pocketbase.PocketBase, store *SessionStore, newClient ClientFactory) {
	r.GET("/metrics", apis.WrapStdHandler(promhttp.Handler()))

	wizard := r.Group("")
	wizard.BindFunc(SessionMiddleware(store))

	wizard.GET("/", HandleHome())

	// ── Wizard steps ─────────────────────────────────────────
	wizard.GET("/steps/{step}", HandleStepPage(app, store))
	wizard.POST("/steps/{step}", HandleStepSave(app, store))

	// ── Technical specifications ─────────────────────────────
	wizard.POST("/techspecs/add", HandleTechSpecAdd(app, store))
	wizard.POST("/techspecs/import", HandleTechSpecImport(app, store))
	wizard.POST("/techspecs/upload", HandleTechSpecUpload(app, store))
	wizard.POST("/techspecs/{id}/delete", HandleTechSpecDelete(app, store))

	// ── Work packages ────────────────────────────────────────
	wizard.POST("/workpackages/add", HandleWorkPackageAdd(app, store))
	wizard.POST("/workpackages/{id}/delete", HandleWorkPackageDelete(app, store))
	wizard.POST("/workpackages/{id}/deliverables/add", HandleWorkPackageDeliverableAdd(app, store))
	wizard.POST("/workpackages/{id}/deliverables/{index}/delete", HandleWorkPackageDeliverableDelete(app, store))

	// ── Team and deliverables ────────────────────────────────
	wizard.POST("/resources/team/add", HandleTeamMemberAdd(app, store))
	wizard.POST("/resources/team/{index}/delete", HandleTeamMemberDelete(app, store))
	wizard.POST("/resources/deliverables/add", HandleDeliverableAdd(app, store))
	wizard.POST("/resources/deliverables/{index}/delete", HandleDeliverableDelete(app, store))

	// ── Session ──────────────────────────────────────────────
	wizard.POST("/language", HandleLanguage(store))
	wizard.POST("/reset", HandleReset(store))

	// ── Exports ──────────────────────────────────────────────
	wizard.GET("/export/deck", HandleExport(app, store, FormatDeck))
	wizard.GET("/export/budget", HandleExport(app, store, FormatBudget))
	wizard.GET("/export/brief", HandleExport(app, store, FormatBrief))

	// ── AI assistant ─────────────────────────────────────────
	wizard.POST("/assist/settings", HandleAssistSettings(store))
	wizard.POST("/assist/send", HandleAssistSend(store, newClient))
	wizard.POST("/assist/prompt", HandleAssistPrompt(store))
	wizard.POST("/assist/paste", HandleAssistPaste(store))
	wizard.POST("/assist/apply", HandleAssistApply(store))
	wizard.POST("/assist/clear", HandleAssistClear(store))
}
