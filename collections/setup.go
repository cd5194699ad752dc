package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// ExportsCollection is the audit log of generated files. Proposals
// themselves are never stored.
const ExportsCollection = "exports"

// ExportFormats are the values accepted by the exports.format field.
var ExportFormats = []string{"deck", "budget", "brief"}

// Setup programmatically creates/ensures the exports collection exists.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, ExportsCollection, func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "session", Required: true})
		c.Fields.Add(&core.TextField{Name: "file_name", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "format",
			Required:  true,
			Values:    ExportFormats,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "client", Required: false})
		c.Fields.Add(&core.NumberField{Name: "slides", Required: false, OnlyInt: true})
		c.Fields.Add(&core.NumberField{Name: "size", Required: false, OnlyInt: true})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.AddIndex("idx_exports_session", false, "session", "")
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
