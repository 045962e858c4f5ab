package file

import (
	"context"

	"github.com/nextgen-analytics/ilms/pkg/models"
	"github.com/nextgen-analytics/ilms/pkg/persistence"
)

// AgreementRepository stores the canonical agreement collection as one
// snapshot file, newest record first.
type AgreementRepository struct {
	records *collection[models.Agreement]
}

func (r *AgreementRepository) List(_ context.Context) ([]models.Agreement, error) {
	return r.records.snapshot()
}

// GetByID returns the agreement with the given id, or nil when no record
// matches.
func (r *AgreementRepository) GetByID(_ context.Context, id string) (*models.Agreement, error) {
	all, err := r.records.snapshot()
	if err != nil {
		return nil, err
	}

	for i := range all {
		if all[i].ID == id {
			found := all[i].Clone()

			return &found, nil
		}
	}

	return nil, nil
}

// Create prepends the agreement so the collection stays newest-first.
func (r *AgreementRepository) Create(_ context.Context, agreement models.Agreement) error {
	return r.records.mutate(func(records []models.Agreement) ([]models.Agreement, error) {
		for i := range records {
			if records[i].ID == agreement.ID {
				return nil, persistence.NewRepositoryError("Create", CollectionAgreements, agreement.ID, persistence.ErrDuplicateID)
			}
		}

		return append([]models.Agreement{agreement}, records...), nil
	})
}

// Replace swaps the record in place, preserving collection order. A
// missing id is an error, never an insert.
func (r *AgreementRepository) Replace(_ context.Context, id string, agreement models.Agreement) error {
	return r.records.mutate(func(records []models.Agreement) ([]models.Agreement, error) {
		for i := range records {
			if records[i].ID == id {
				next := make([]models.Agreement, len(records))
				copy(next, records)
				next[i] = agreement

				return next, nil
			}
		}

		return nil, persistence.NewRepositoryError("Replace", CollectionAgreements, id, persistence.ErrAgreementNotFound)
	})
}
