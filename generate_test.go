package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"proposalgen/config"
	"proposalgen/services"
	"proposalgen/testhelpers"
)

func writeProposal(t *testing.T, d services.ProposalData) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "proposal.yaml")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := services.EncodeProposal(f, d); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}

func TestRunGenerate(t *testing.T) {
	out := t.TempDir()
	opts := generateOptions{
		input:  writeProposal(t, testhelpers.SampleProposal()),
		outDir: out,
		budget: true,
		brief:  true,
	}

	paths, err := runGenerate(opts)
	if err != nil {
		t.Fatalf("runGenerate: %v", err)
	}
	want := []string{
		"Alysophil_Proposal_Acme_Coatings_PR-7.pdf",
		"Alysophil_Proposal_Acme_Coatings_PR-7_Budget.xlsx",
		"Alysophil_Proposal_Acme_Coatings_PR-7_Summary.pdf",
	}
	if len(paths) != len(want) {
		t.Fatalf("got %d paths, want %d: %v", len(paths), len(want), paths)
	}
	for i, p := range paths {
		if p != filepath.Join(out, want[i]) {
			t.Errorf("path %d = %s, want %s", i, p, want[i])
		}
		info, err := os.Stat(p)
		if err != nil || info.Size() == 0 {
			t.Errorf("%s missing or empty: %v", p, err)
		}
	}

	entries, _ := os.ReadDir(out)
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".export-") {
			t.Errorf("temporary file left behind: %s", e.Name())
		}
	}
}

func TestRunGenerate_DeckOnly(t *testing.T) {
	out := t.TempDir()
	paths, err := runGenerate(generateOptions{input: writeProposal(t, testhelpers.SampleProposal()), outDir: out})
	if err != nil {
		t.Fatalf("runGenerate: %v", err)
	}
	if len(paths) != 1 || !strings.HasSuffix(paths[0], ".pdf") {
		t.Errorf("paths = %v", paths)
	}
}

func TestRunGenerate_Errors(t *testing.T) {
	d := testhelpers.SampleProposal()
	d.Client.Name = ""
	out := t.TempDir()

	if _, err := runGenerate(generateOptions{input: writeProposal(t, d), outDir: out}); err == nil {
		t.Error("expected an error without a client name")
	}
	entries, _ := os.ReadDir(out)
	if len(entries) != 0 {
		t.Errorf("nothing should be written, found %d entries", len(entries))
	}

	if _, err := runGenerate(generateOptions{input: filepath.Join(out, "missing.yaml"), outDir: out}); err == nil {
		t.Error("expected an error for a missing input file")
	}
}

func TestGenerateCmdFlags(t *testing.T) {
	cmd := newGenerateCmd(&config.Config{Export: config.ExportConfig{Dir: "/tmp/exports"}})
	if got := cmd.Flags().Lookup("out").DefValue; got != "/tmp/exports" {
		t.Errorf("--out default = %q", got)
	}
	for _, name := range []string{"input", "budget", "brief"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("missing flag --%s", name)
		}
	}
}
