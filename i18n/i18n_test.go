package i18n

import (
	"sort"
	"testing"
)

func TestT(t *testing.T) {
	tests := []struct {
		lang, key, want string
	}{
		{"en", "steps.budget", "Budget"},
		{"fr", "steps.techSpecs", "Cahier des charges"},
		{"FR", "common.next", "Suivant"},
		{"en", "missing.key", "missing.key"},
		{"de", "common.next", "common.next"},
		{"en", "steps", "steps"},
	}
	for _, tt := range tests {
		if got := T(tt.lang, tt.key); got != tt.want {
			t.Errorf("T(%q, %q) = %q, want %q", tt.lang, tt.key, got, tt.want)
		}
	}
}

func TestTf(t *testing.T) {
	tests := []struct {
		lang, key string
		pairs     []string
		want      string
	}{
		{"en", "toast.specsImported", []string{"n", "3"}, "3 specifications imported"},
		{"fr", "toast.rowsSkipped", []string{"n", "2", "skipped", "1"}, "2 spécifications importées, 1 lignes ignorées"},
		{"fr", "toast.inserted", []string{"field", "Contexte"}, "Inséré dans Contexte"},
		{"en", "toast.saved", nil, "Saved"},
		{"en", "toast.specsImported", []string{"n"}, "{n} specifications imported"},
	}
	for _, tt := range tests {
		if got := Tf(tt.lang, tt.key, tt.pairs...); got != tt.want {
			t.Errorf("Tf(%q, %q, %v) = %q, want %q", tt.lang, tt.key, tt.pairs, got, tt.want)
		}
	}
}

func TestLocalesHaveTheSameKeys(t *testing.T) {
	en, fr := Keys("en"), Keys("fr")
	sort.Strings(en)
	sort.Strings(fr)

	if len(en) == 0 {
		t.Fatal("no English keys loaded")
	}
	frSet := make(map[string]bool, len(fr))
	for _, k := range fr {
		frSet[k] = true
	}
	for _, k := range en {
		if !frSet[k] {
			t.Errorf("fr is missing %q", k)
		}
		delete(frSet, k)
	}
	for k := range frSet {
		t.Errorf("en is missing %q", k)
	}
}
