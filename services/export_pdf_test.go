package services

import (
	"bytes"
	"testing"
)

func TestGenerateProposalBrief_Acme(t *testing.T) {
	result, err := GenerateProposalBrief(acmeProposal())
	if err != nil {
		t.Fatalf("GenerateProposalBrief() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateProposalBrief() returned empty bytes")
	}
	// PDF files start with %PDF
	if len(result) > 4 && string(result[:5]) != "%PDF-" {
		t.Errorf("result does not start with PDF header, got %q", string(result[:5]))
	}
}

func TestGenerateProposalBrief_French(t *testing.T) {
	d := acmeProposal()
	d.Language = LangFR
	d.Planning.VacationWeeks = 2

	result, err := GenerateProposalBrief(d)
	if err != nil {
		t.Fatalf("GenerateProposalBrief() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateProposalBrief() returned empty bytes")
	}
}

func TestGenerateProposalBrief_Empty(t *testing.T) {
	result, err := GenerateProposalBrief(ProposalData{})
	if err != nil {
		t.Fatalf("GenerateProposalBrief() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateProposalBrief() returned empty bytes")
	}
}

func TestGenerateProposalBrief_KeepsNonLatinGlyphs(t *testing.T) {
	d := acmeProposal()
	d.Client.Name = "CO₂ ≥ η"

	result, err := generateBrief(d, false)
	if err != nil {
		t.Fatalf("generateBrief() error = %v", err)
	}
	if !bytes.Contains(result, utf16BE(d.Client.Name)) {
		t.Errorf("brief does not carry %q unchanged", d.Client.Name)
	}
}
