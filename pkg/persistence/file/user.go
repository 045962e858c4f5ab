package file

import (
	"context"
	"strings"

	"github.com/nextgen-analytics/ilms/pkg/models"
	"github.com/nextgen-analytics/ilms/pkg/persistence"
)

// UserRepository stores system accounts, newest first.
type UserRepository struct {
	records *collection[models.User]
}

func (r *UserRepository) List(_ context.Context) ([]models.User, error) {
	return r.records.snapshot()
}

// GetByEmail matches case-insensitively, or returns nil when no account
// matches.
func (r *UserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	all, err := r.records.snapshot()
	if err != nil {
		return nil, err
	}

	for i := range all {
		if strings.EqualFold(all[i].Email, email) {
			found := all[i]

			return &found, nil
		}
	}

	return nil, nil
}

func (r *UserRepository) Create(_ context.Context, user models.User) error {
	return r.records.mutate(func(records []models.User) ([]models.User, error) {
		for i := range records {
			if records[i].ID == user.ID {
				return nil, persistence.NewRepositoryError("Create", CollectionUsers, user.ID, persistence.ErrDuplicateID)
			}
		}

		return append([]models.User{user}, records...), nil
	})
}

func (r *UserRepository) Replace(_ context.Context, id string, user models.User) error {
	return r.records.mutate(func(records []models.User) ([]models.User, error) {
		for i := range records {
			if records[i].ID == id {
				next := make([]models.User, len(records))
				copy(next, records)
				next[i] = user

				return next, nil
			}
		}

		return nil, persistence.NewRepositoryError("Replace", CollectionUsers, id, persistence.ErrUserNotFound)
	})
}
