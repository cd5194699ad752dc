// Package templates renders the wizard pages as templ components.
package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"proposalgen/i18n"
	"proposalgen/services"
)

// htmlWriter accumulates the first write error so markup code stays linear.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(parts ...string) {
	for _, s := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with the value escaped.
func (h *htmlWriter) attr(name, value string) {
	h.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

func (h *htmlWriter) child(c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

func component(fn func(h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{ctx: ctx, w: w}
		fn(h)
		return h.err
	})
}

func tr(lang services.Language) func(string) string {
	return func(key string) string { return i18n.T(string(lang), key) }
}

func itoa(i int) string { return strconv.Itoa(i) }

func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

func checked(b bool) string {
	if b {
		return " checked"
	}
	return ""
}

func selected(b bool) string {
	if b {
		return " selected"
	}
	return ""
}

// field renders a labelled text input.
func (h *htmlWriter) field(label, name, value, placeholder string) {
	h.raw(`<label class="field"><span>`)
	h.text(label)
	h.raw(`</span><input type="text"`)
	h.attr("name", name)
	h.attr("value", value)
	if placeholder != "" {
		h.attr("placeholder", placeholder)
	}
	h.raw(`></label>`)
}

func (h *htmlWriter) numberField(label, name, value string, min, max int, step string) {
	h.raw(`<label class="field"><span>`)
	h.text(label)
	h.raw(`</span><input type="number"`)
	h.attr("name", name)
	h.attr("value", value)
	if min >= 0 {
		h.attr("min", itoa(min))
	}
	if max > 0 {
		h.attr("max", itoa(max))
	}
	if step != "" {
		h.attr("step", step)
	}
	h.raw(`></label>`)
}

func (h *htmlWriter) textarea(label, name, value, placeholder string, rows int) {
	h.raw(`<label class="field"><span>`)
	h.text(label)
	h.raw(`</span><textarea`)
	h.attr("name", name)
	h.attr("rows", itoa(rows))
	if placeholder != "" {
		h.attr("placeholder", placeholder)
	}
	h.raw(`>`)
	h.text(value)
	h.raw(`</textarea></label>`)
}

// actionButton posts to action without submitting the surrounding step form.
func (h *htmlWriter) actionButton(action, label, class string) {
	h.raw(`<button type="button"`)
	h.attr("class", class)
	h.attr("hx-post", action)
	h.attr("hx-include", "#step-form")
	h.attr("hx-target", "#wizard-content")
	h.raw(`>`)
	h.text(label)
	h.raw(`</button>`)
}
