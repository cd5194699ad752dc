package services

import "strings"

const draftReference = "DRAFT"

// ProposalFileStem builds the export file name without extension:
// Alysophil_Proposal_<name>_<reference|DRAFT>. Characters outside
// [A-Za-z0-9_-] are replaced by an underscore.
func ProposalFileStem(client ClientInfo) string {
	ref := client.Reference
	if strings.TrimSpace(ref) == "" {
		ref = draftReference
	}
	return "Alysophil_Proposal_" + sanitizeFileComponent(client.Name) + "_" + sanitizeFileComponent(ref)
}

func sanitizeFileComponent(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
