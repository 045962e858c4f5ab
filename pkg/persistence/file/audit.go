package file

import (
	"context"

	"github.com/nextgen-analytics/ilms/pkg/models"
)

// AuditRepository is the append-only ledger snapshot. New entries are
// prepended so List reads newest first, matching the trail view; nothing
// is ever updated or removed.
type AuditRepository struct {
	records *collection[models.AuditEntry]
}

func (r *AuditRepository) Append(_ context.Context, entry models.AuditEntry) error {
	return r.records.mutate(func(records []models.AuditEntry) ([]models.AuditEntry, error) {
		return append([]models.AuditEntry{entry}, records...), nil
	})
}

func (r *AuditRepository) List(_ context.Context) ([]models.AuditEntry, error) {
	return r.records.snapshot()
}
