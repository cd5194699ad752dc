package services

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadProposalFile reads a YAML proposal from path.
func LoadProposalFile(path string) (ProposalData, error) {
	f, err := os.Open(path)
	if err != nil {
		return ProposalData{}, fmt.Errorf("open proposal file: %w", err)
	}
	defer f.Close()
	return DecodeProposal(f)
}

// DecodeProposal parses a YAML proposal. Keys the document omits keep the
// wizard defaults; unknown keys are rejected. Feasibility tags accept the
// colour aliases of the wizard.
func DecodeProposal(r io.Reader) (ProposalData, error) {
	d := DefaultProposalData(time.Now())
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil && err != io.EOF {
		return ProposalData{}, fmt.Errorf("decode proposal: %w", err)
	}
	for i, s := range d.TechSpecs {
		if s.Feasibility == "" {
			continue
		}
		f, err := ParseFeasibility(string(s.Feasibility))
		if err != nil {
			return ProposalData{}, fmt.Errorf("decode proposal: tech spec %d: %w", i+1, err)
		}
		d.TechSpecs[i].Feasibility = f
	}
	if d.Language != "" {
		d.Language = ParseLanguage(string(d.Language))
	}
	return d, nil
}

// EncodeProposal writes d as YAML. The API key is never written.
func EncodeProposal(w io.Writer, d ProposalData) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode proposal: %w", err)
	}
	return enc.Close()
}
