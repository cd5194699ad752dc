package collections_test

import (
	"testing"

	"proposalgen/collections"
	"proposalgen/testhelpers"

	"github.com/pocketbase/pocketbase/core"
)

func TestSetup_ExportsCollectionExists(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, err := app.FindCollectionByNameOrId(collections.ExportsCollection)
	if err != nil {
		t.Fatalf("collection %q not found after Setup(): %v", collections.ExportsCollection, err)
	}
	if col.Name != collections.ExportsCollection {
		t.Errorf("expected collection name %q, got %q", collections.ExportsCollection, col.Name)
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t) // Setup() already called once via NewTestApp

	first, _ := app.FindCollectionByNameOrId(collections.ExportsCollection)

	collections.Setup(app)

	second, err := app.FindCollectionByNameOrId(collections.ExportsCollection)
	if err != nil {
		t.Fatalf("exports missing after second Setup(): %v", err)
	}
	if first.Id != second.Id {
		t.Errorf("exports id changed after second Setup(): %s -> %s", first.Id, second.Id)
	}
}

func TestSetup_ExportsFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId(collections.ExportsCollection)

	for _, f := range []string{"session", "file_name", "format", "client", "slides", "size", "created"} {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("exports: missing field %q", f)
		}
	}

	formatField := col.Fields.GetByName("format")
	sf, ok := formatField.(*core.SelectField)
	if !ok {
		t.Fatal("format field is not a SelectField")
	}
	expected := map[string]bool{"deck": true, "budget": true, "brief": true}
	for _, v := range sf.Values {
		if !expected[v] {
			t.Errorf("unexpected format value: %q", v)
		}
		delete(expected, v)
	}
	for v := range expected {
		t.Errorf("missing format value: %q", v)
	}
}

func TestSetup_ExportRecordRoundTrip(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId(collections.ExportsCollection)

	rec := core.NewRecord(col)
	rec.Set("session", "s-1")
	rec.Set("file_name", "Alysophil_Proposal_Acme_DRAFT.pdf")
	rec.Set("format", "deck")
	rec.Set("slides", 15)
	rec.Set("size", 2048)
	if err := app.Save(rec); err != nil {
		t.Fatalf("save export record: %v", err)
	}

	bad := core.NewRecord(col)
	bad.Set("session", "s-1")
	bad.Set("file_name", "x.pptx")
	bad.Set("format", "pptx")
	if err := app.Save(bad); err == nil {
		t.Error("expected an unknown format to be rejected")
	}
}
