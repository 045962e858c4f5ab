package file

import (
	"context"

	"github.com/nextgen-analytics/ilms/pkg/models"
	"github.com/nextgen-analytics/ilms/pkg/persistence"
)

// CaseRepository stores litigation case records, newest first.
type CaseRepository struct {
	records *collection[models.LegalCase]
}

func (r *CaseRepository) List(_ context.Context) ([]models.LegalCase, error) {
	return r.records.snapshot()
}

func (r *CaseRepository) GetByID(_ context.Context, id string) (*models.LegalCase, error) {
	all, err := r.records.snapshot()
	if err != nil {
		return nil, err
	}

	for i := range all {
		if all[i].ID == id {
			found := all[i]

			return &found, nil
		}
	}

	return nil, nil
}

func (r *CaseRepository) Create(_ context.Context, legalCase models.LegalCase) error {
	return r.records.mutate(func(records []models.LegalCase) ([]models.LegalCase, error) {
		for i := range records {
			if records[i].ID == legalCase.ID {
				return nil, persistence.NewRepositoryError("Create", CollectionCases, legalCase.ID, persistence.ErrDuplicateID)
			}
		}

		return append([]models.LegalCase{legalCase}, records...), nil
	})
}

func (r *CaseRepository) Replace(_ context.Context, id string, legalCase models.LegalCase) error {
	return r.records.mutate(func(records []models.LegalCase) ([]models.LegalCase, error) {
		for i := range records {
			if records[i].ID == id {
				next := make([]models.LegalCase, len(records))
				copy(next, records)
				next[i] = legalCase

				return next, nil
			}
		}

		return nil, persistence.NewRepositoryError("Replace", CollectionCases, id, persistence.ErrCaseNotFound)
	})
}
