package main

import (
	"fmt"
	"log"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"proposalgen/config"
	"proposalgen/services"
)

type generateOptions struct {
	input  string
	outDir string
	budget bool
	brief  bool
}

// newGenerateCmd builds the offline export command: a proposal YAML file in,
// the deck (and optionally the budget workbook and the brief) out.
func newGenerateCmd(cfg *config.Config) *cobra.Command {
	opts := generateOptions{outDir: cfg.Export.Dir}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate proposal documents from a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := runGenerate(opts)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "proposal YAML file")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", opts.outDir, "output directory")
	cmd.Flags().BoolVar(&opts.budget, "budget", false, "also write the budget workbook")
	cmd.Flags().BoolVar(&opts.brief, "brief", false, "also write the PDF summary")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// runGenerate writes the requested exports and returns their paths in the
// order deck, budget, brief.
func runGenerate(opts generateOptions) ([]string, error) {
	d, err := services.LoadProposalFile(opts.input)
	if err != nil {
		return nil, err
	}
	p, err := services.NewProposalFromData(d)
	if err != nil {
		return nil, fmt.Errorf("invalid proposal %s: %w", opts.input, err)
	}
	d = p.Snapshot()

	builders := []func(services.ProposalData) (services.Export, error){
		func(d services.ProposalData) (services.Export, error) {
			return services.ExportProposal(d, services.NewPDFDeckRenderer())
		},
	}
	if opts.budget {
		builders = append(builders, services.ExportBudget)
	}
	if opts.brief {
		builders = append(builders, services.ExportBrief)
	}

	var paths []string
	for _, build := range builders {
		ex, err := build(d)
		if err != nil {
			return paths, err
		}
		path, err := services.WriteExport(opts.outDir, ex)
		if err != nil {
			return paths, err
		}
		log.Printf("generate: wrote %s (%s)", path, humanize.Bytes(uint64(len(ex.Content))))
		paths = append(paths, path)
	}
	return paths, nil
}
