package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrClientNameRequired blocks an export before anything is rendered or written.
var ErrClientNameRequired = errors.New("client name is required to export")

// Export is a rendered deck ready to be downloaded or written to disk.
type Export struct {
	FileName    string
	ContentType string
	Content     []byte
	Slides      int
}

// CheckExportable reports whether d satisfies the export precondition.
func CheckExportable(d ProposalData) error {
	if strings.TrimSpace(d.Client.Name) == "" {
		return ErrClientNameRequired
	}
	return nil
}

// ExportProposal lays out and renders the deck for d. Renderer failures are
// returned wrapped; no partial content is returned with an error.
func ExportProposal(d ProposalData, r DeckRenderer) (Export, error) {
	if err := CheckExportable(d); err != nil {
		return Export{}, err
	}
	doc := GenerateDeck(d)
	content, err := r.Render(doc)
	if err != nil {
		return Export{}, fmt.Errorf("export proposal: %w", err)
	}
	return Export{
		FileName:    doc.FileStem + r.Extension(),
		ContentType: r.ContentType(),
		Content:     content,
		Slides:      len(doc.Slides),
	}, nil
}

// WriteExport stores ex in dir and returns the final path. The content goes
// to a temporary file first and is renamed into place, so a failed write
// never leaves a partial file under the export name.
func WriteExport(dir string, ex Export) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".export-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { os.Remove(tmpName) }

	if _, err := tmp.Write(ex.Content); err != nil {
		tmp.Close()
		cleanup()
		return "", fmt.Errorf("write export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", fmt.Errorf("close export: %w", err)
	}

	dest := filepath.Join(dir, filepath.Base(ex.FileName))
	if err := os.Rename(tmpName, dest); err != nil {
		cleanup()
		return "", fmt.Errorf("move export into place: %w", err)
	}
	return dest, nil
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportBudget builds the budget workbook under the same precondition and
// naming as the deck.
func ExportBudget(d ProposalData) (Export, error) {
	if err := CheckExportable(d); err != nil {
		return Export{}, err
	}
	content, err := GenerateBudgetWorkbook(d)
	if err != nil {
		return Export{}, fmt.Errorf("export budget: %w", err)
	}
	return Export{
		FileName:    ProposalFileStem(d.Client) + "_Budget.xlsx",
		ContentType: xlsxContentType,
		Content:     content,
	}, nil
}

// ExportBrief builds the one-document PDF summary.
func ExportBrief(d ProposalData) (Export, error) {
	if err := CheckExportable(d); err != nil {
		return Export{}, err
	}
	content, err := GenerateProposalBrief(d)
	if err != nil {
		return Export{}, fmt.Errorf("export brief: %w", err)
	}
	return Export{
		FileName:    ProposalFileStem(d.Client) + "_Summary.pdf",
		ContentType: "application/pdf",
		Content:     content,
	}, nil
}
