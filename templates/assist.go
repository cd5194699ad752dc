package templates

import (
	"github.com/a-h/templ"

	"proposalgen/services"
)

// AssistView is the state of the assistant side panel.
type AssistView struct {
	Lang     services.Language
	Mode     services.AssistMode
	HasKey   bool
	Skill    services.Skill
	Messages []services.Message
	// Prompt is the generated manual-mode prompt awaiting a pasted answer.
	Prompt        string
	PendingInput  string
	CanApply      bool
	DefaultTarget services.AssistTarget
}

var assistTargets = []struct {
	target services.AssistTarget
	key    string
}{
	{services.TargetContext, "context.contextLabel"},
	{services.TargetNeed, "context.needLabel"},
	{services.TargetPrediction, "methodology.prediction"},
	{services.TargetGeneration, "methodology.generation"},
	{services.TargetChallenges, "methodology.challenges"},
	{services.TargetEncouraging, "methodology.encouragingResearch"},
	{services.TargetPosition, "methodology.position"},
}

// AssistTargetLabel returns the localized name of the field t.
func AssistTargetLabel(lang services.Language, t services.AssistTarget) string {
	for _, at := range assistTargets {
		if at.target == t {
			return tr(lang)(at.key)
		}
	}
	return t.String()
}

func AssistPanel(v AssistView) templ.Component {
	t := tr(v.Lang)
	return component(func(h *htmlWriter) {
		h.raw(`<h3>`)
		h.text(t("ai.title"))
		h.raw(`</h3>`)

		h.raw(`<form class="assist-settings" hx-post="/assist/settings" hx-target="#assist-panel"><select name="skill">`)
		for _, def := range services.Skills {
			id := def.ID
			h.raw(`<option`)
			h.attr("value", string(id))
			h.attr("title", def.Summary(v.Lang))
			h.raw(selected(id == v.Skill), `>`)
			h.text(def.Label(v.Lang))
			h.raw(`</option>`)
		}
		h.raw(`</select><select name="mode">`)
		for _, m := range []struct {
			mode services.AssistMode
			key  string
		}{{services.AssistModeManual, "settings.clipboardMode"}, {services.AssistModeAPI, "settings.apiMode"}} {
			h.raw(`<option`)
			h.attr("value", string(m.mode))
			h.raw(selected(m.mode == v.Mode), `>`)
			h.text(t(m.key))
			h.raw(`</option>`)
		}
		h.raw(`</select>`)
		if v.Mode == services.AssistModeAPI {
			h.raw(`<input type="password" name="api_key" autocomplete="off"`)
			h.attr("placeholder", t("settings.apiKey"))
			h.attr("title", t("settings.apiKeyHint"))
			h.raw(`>`)
			if v.HasKey {
				h.raw(` &#10003;`)
			}
		}
		h.raw(`<button type="submit">`)
		h.text(t("common.save"))
		h.raw(`</button></form>`)

		h.raw(`<div class="chat">`)
		for _, m := range v.Messages {
			h.raw(`<div`)
			h.attr("class", string(m.Role))
			h.raw(`>`)
			h.text(m.Content)
			h.raw(`</div>`)
		}
		h.raw(`</div>`)

		if v.Mode == services.AssistModeManual && v.Prompt != "" {
			h.raw(`<form hx-post="/assist/paste" hx-target="#assist-panel"><p>`)
			h.text(t("ai.promptGenerated"))
			h.raw(`</p><textarea readonly rows="6" onclick="this.select();navigator.clipboard&&navigator.clipboard.writeText(this.value)">`)
			h.text(v.Prompt)
			h.raw(`</textarea><input type="hidden" name="message"`)
			h.attr("value", v.PendingInput)
			h.raw(`>`)
			h.textarea(t("ai.pasteResponse"), "response", "", t("ai.pasteHere"), 6)
			h.raw(`<button type="submit">`)
			h.text(t("ai.validateResponse"))
			h.raw(`</button></form>`)
		} else {
			action := "/assist/send"
			if v.Mode == services.AssistModeManual {
				action = "/assist/prompt"
			}
			h.raw(`<form hx-target="#assist-panel"`)
			h.attr("hx-post", action)
			h.raw(`><textarea name="message" rows="3"`)
			h.attr("placeholder", t("ai.inputPlaceholder"))
			h.raw(`></textarea><button type="submit">`)
			h.text(t("ai.send"))
			h.raw(`</button></form>`)
		}

		if v.CanApply {
			h.raw(`<form hx-post="/assist/apply" hx-target="#assist-panel"><label>`)
			h.text(t("ai.target"))
			h.raw(` <select name="target">`)
			for _, o := range assistTargets {
				h.raw(`<option`)
				h.attr("value", o.target.String())
				h.raw(selected(o.target == v.DefaultTarget), `>`)
				h.text(t(o.key))
				h.raw(`</option>`)
			}
			h.raw(`</select></label><button type="submit">`)
			h.text(t("ai.insertInProposal"))
			h.raw(`</button></form>`)
		}
		h.raw(`<form hx-post="/assist/clear" hx-target="#assist-panel"><button type="submit">`)
		h.text(t("common.reset"))
		h.raw(`</button></form>`)
	})
}
