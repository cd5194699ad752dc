package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"golang.org/x/sync/singleflight"

	"proposalgen/collections"
	"proposalgen/i18n"
	"proposalgen/services"
	"proposalgen/templates"
)

// ExportFormat names one of the downloadable renditions of a proposal.
type ExportFormat string

const (
	FormatDeck   ExportFormat = "deck"
	FormatBudget ExportFormat = "budget"
	FormatBrief  ExportFormat = "brief"
)

// exportGroup collapses concurrent identical exports of one session (double
// clicks, retries) into a single generation.
var exportGroup singleflight.Group

func buildExport(format ExportFormat, d services.ProposalData) (services.Export, error) {
	switch format {
	case FormatDeck:
		return services.ExportProposal(d, services.NewPDFDeckRenderer())
	case FormatBudget:
		return services.ExportBudget(d)
	case FormatBrief:
		return services.ExportBrief(d)
	}
	return services.Export{}, fmt.Errorf("unknown export format %q", format)
}

// HandleExport returns a handler that generates the requested rendition of
// the session's proposal and sends it as a download.
func HandleExport(app *pocketbase.PocketBase, store *SessionStore, format ExportFormat) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		s := sessionFor(e, store)
		d := s.Snapshot()
		lang := string(d.Language)

		if err := services.CheckExportable(d); err != nil {
			exportsTotal.WithLabelValues(string(format), "rejected").Inc()
			return ErrorToast(e, http.StatusBadRequest, i18n.T(lang, "preview.clientRequired"))
		}

		start := time.Now()
		v, err, shared := exportGroup.Do(s.ID+":"+string(format), func() (any, error) {
			ex, err := buildExport(format, d)
			if err != nil {
				return nil, err
			}
			recordExport(app, s.ID, format, d.Client.Name, ex)
			return ex, nil
		})
		exportDuration.WithLabelValues(string(format)).Observe(time.Since(start).Seconds())
		if err != nil {
			log.Printf("export: %s for session %s failed: %v", format, s.ID, err)
			exportsTotal.WithLabelValues(string(format), "error").Inc()
			status := http.StatusInternalServerError
			if errors.Is(err, services.ErrClientNameRequired) {
				status = http.StatusBadRequest
			}
			return ErrorToast(e, status, i18n.T(lang, "errors.exportFailed"))
		}
		ex := v.(services.Export)
		exportsTotal.WithLabelValues(string(format), "ok").Inc()
		log.Printf("export: %s %s (%s, shared=%t)", format, ex.FileName, humanize.Bytes(uint64(len(ex.Content))), shared)

		e.Response.Header().Set("Content-Type", ex.ContentType)
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, ex.FileName))
		e.Response.WriteHeader(http.StatusOK)
		_, err = e.Response.Write(ex.Content)
		return err
	}
}

// recordExport appends an entry to the export log. Failures are logged and
// never block the download.
func recordExport(app *pocketbase.PocketBase, sessionID string, format ExportFormat, client string, ex services.Export) {
	col, err := app.FindCollectionByNameOrId(collections.ExportsCollection)
	if err != nil {
		log.Printf("export: export log unavailable: %v", err)
		return
	}
	rec := core.NewRecord(col)
	rec.Set("session", sessionID)
	rec.Set("file_name", ex.FileName)
	rec.Set("format", string(format))
	rec.Set("client", client)
	rec.Set("slides", ex.Slides)
	rec.Set("size", len(ex.Content))
	if err := app.Save(rec); err != nil {
		log.Printf("export: failed to record %s: %v", ex.FileName, err)
	}
}

// recentExports lists the latest exports of a session, newest first.
func recentExports(app *pocketbase.PocketBase, sessionID string, limit int) []templates.ExportLogEntry {
	records, err := app.FindRecordsByFilter(
		collections.ExportsCollection,
		"session = {:session}",
		"-created", limit, 0,
		map[string]any{"session": sessionID},
	)
	if err != nil {
		log.Printf("export: could not list exports for %s: %v", sessionID, err)
		return nil
	}
	entries := make([]templates.ExportLogEntry, 0, len(records))
	for _, rec := range records {
		when := ""
		if dt := rec.GetDateTime("created"); !dt.IsZero() {
			when = humanize.Time(dt.Time())
		}
		entries = append(entries, templates.ExportLogEntry{
			FileName: rec.GetString("file_name"),
			Format:   rec.GetString("format"),
			Size:     humanize.Bytes(uint64(rec.GetInt("size"))),
			When:     when,
		})
	}
	return entries
}
