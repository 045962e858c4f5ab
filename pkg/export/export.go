// Package export renders filtered record sets for download. Exporters
// accept an already-filtered slice; they never query the store
// themselves.
package export

import (
	"io"

	"github.com/nextgen-analytics/ilms/pkg/models"
)

// AgreementExporter writes a set of agreements to an output stream.
type AgreementExporter interface {
	ExportAgreements(w io.Writer, agreements []models.Agreement) error
}

// AuditExporter writes a set of audit ledger entries to an output
// stream.
type AuditExporter interface {
	ExportAudit(w io.Writer, entries []models.AuditEntry) error
}
